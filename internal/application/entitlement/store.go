// Package entitlement mantém, em memória, o conjunto de módulos ativos de uma
// empresa, com mutação otimista reconciliada contra o banco. É a única fonte de
// verdade do processo para gating de módulos: nenhum outro componente escreve
// no conjunto diretamente.
package entitlement

import (
	"context"
	"sync"

	"github.com/uniqerp/uniq-api/internal/domain/entity"
	"github.com/uniqerp/uniq-api/internal/domain/repository"
	"github.com/uniqerp/uniq-api/pkg/logger"
)

// Store estado de entitlement de UMA empresa. Construído via Manager e injetado
// nas camadas superiores; não é um singleton de pacote.
//
// Invariante: em repouso (sem toggle em voo), o conjunto em memória é igual ao
// conjunto persistido da empresa. Um toggle que falha restaura essa igualdade
// por recarga completa, nunca por desfazer pontual (toggles concorrentes tornam
// o desfazer pontual incorreto).
type Store struct {
	mu      sync.Mutex
	modules repository.ModuleRepository
	log     *logger.Logger

	companyID string
	active    map[string]struct{}
	loading   bool

	subs    map[int]chan struct{}
	nextSub int
}

// NewStore cria um store vazio (loading=true) ainda sem empresa vinculada.
func NewStore(modules repository.ModuleRepository, log *logger.Logger) *Store {
	return &Store{
		modules: modules,
		log:     log,
		active:  make(map[string]struct{}),
		loading: true,
		subs:    make(map[int]chan struct{}),
	}
}

// BindCompany vincula o store à empresa da sessão e recarrega o conjunto.
// Deve ser chamado a cada sessão estabelecida: o ID pode diferir do da sessão
// anterior e um ID antigo nunca pode ser usado para carregar ou alternar.
func (s *Store) BindCompany(ctx context.Context, companyID string) error {
	s.mu.Lock()
	s.companyID = companyID
	s.active = make(map[string]struct{})
	s.loading = true
	s.mu.Unlock()
	return s.Reload(ctx)
}

// Reset limpa todo o estado (sessão encerrada).
func (s *Store) Reset() {
	s.mu.Lock()
	s.companyID = ""
	s.active = make(map[string]struct{})
	s.loading = true
	s.mu.Unlock()
	s.notify()
}

// IsModuleActive informa se o módulo está ativo. Códigos do conjunto núcleo são
// sempre ativos e o estado armazenado nunca é consultado para eles. Leitura pura.
func (s *Store) IsModuleActive(code string) bool {
	if entity.IsCoreModule(code) {
		return true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.active[code]
	return ok
}

// ActiveModules devolve uma cópia do conjunto vigente (sem os códigos núcleo).
func (s *Store) ActiveModules() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.active))
	for code := range s.active {
		out = append(out, code)
	}
	return out
}

// Loading informa se o store ainda não completou a primeira carga.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Toggle aplica a mutação otimista e persiste o estado pedido.
//
// Contrato best-effort: se a empresa não estiver resolvida, é um no-op
// silencioso. A falha de persistência não é devolvida ao chamador; ela é
// registrada e dispara uma recarga completa para descartar o estado otimista.
// Quem chama só percebe a falha observando o conjunto revertido.
//
// Toggles duplicados do mesmo código não são deduplicados: a última escrita
// local vence no cache e a última chamada a completar vence no banco
// (last-writer-wins).
func (s *Store) Toggle(ctx context.Context, code string, active bool) {
	s.mu.Lock()
	if s.companyID == "" {
		s.mu.Unlock()
		return
	}
	companyID := s.companyID
	if active {
		s.active[code] = struct{}{}
	} else {
		delete(s.active, code)
	}
	s.mu.Unlock()
	s.notify()

	var err error
	if active {
		err = s.modules.Activate(ctx, companyID, code)
	} else {
		err = s.modules.Deactivate(ctx, companyID, code)
	}
	if err == nil {
		return
	}

	s.log.Error().Err(err).
		Str("company_id", companyID).
		Str("module", code).
		Bool("active", active).
		Msg("persistência do toggle de módulo falhou; recarregando conjunto")
	if rerr := s.Reload(ctx); rerr != nil {
		s.log.Error().Err(rerr).
			Str("company_id", companyID).
			Msg("recarga de reconciliação após toggle falho também falhou")
	}
}

// Reload busca todas as adesões vigentes da empresa e substitui o conjunto por
// inteiro. Empresa ausente/vazia é tratada como zero módulos ativos; em ambos
// os casos o loading termina.
func (s *Store) Reload(ctx context.Context) error {
	s.mu.Lock()
	companyID := s.companyID
	s.mu.Unlock()

	if companyID == "" {
		s.mu.Lock()
		s.active = make(map[string]struct{})
		s.loading = false
		s.mu.Unlock()
		s.notify()
		return nil
	}

	codes, err := s.modules.ListActiveCodes(ctx, companyID)
	if err != nil {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
		return err
	}

	next := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		next[code] = struct{}{}
	}

	s.mu.Lock()
	// Se a empresa mudou enquanto a consulta estava em voo, o resultado é de
	// uma sessão antiga e deve ser descartado.
	if s.companyID != companyID {
		s.mu.Unlock()
		return nil
	}
	s.active = next
	s.loading = false
	s.mu.Unlock()
	s.notify()
	return nil
}

// Subscribe devolve um canal notificado a cada mudança do conjunto e a função
// de cancelamento da assinatura. O canal tem buffer 1: notificações coalescem.
func (s *Store) Subscribe() (<-chan struct{}, func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	ch := make(chan struct{}, 1)
	s.subs[id] = ch
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
	return ch, cancel
}

func (s *Store) notify() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default: // assinante atrasado já tem uma notificação pendente
		}
	}
}
