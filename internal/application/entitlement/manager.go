package entitlement

import (
	"context"
	"sync"

	"github.com/uniqerp/uniq-api/internal/domain/repository"
	"github.com/uniqerp/uniq-api/pkg/logger"
)

// Manager entrega o Store de cada empresa, criando e vinculando sob demanda.
// É o análogo servidor do ciclo sessão-estabelecida/sessão-encerrada: o primeiro
// acesso de uma empresa vincula e carrega; Drop descarta no encerramento.
type Manager struct {
	mu      sync.RWMutex
	stores  map[string]*Store
	modules repository.ModuleRepository
	log     *logger.Logger
}

// NewManager constrói o manager.
func NewManager(modules repository.ModuleRepository, log *logger.Logger) *Manager {
	return &Manager{
		stores:  make(map[string]*Store),
		modules: modules,
		log:     log,
	}
}

// ForCompany devolve o store vigente da empresa, carregando-o na primeira vez.
// Erro só em falha de infraestrutura na carga inicial; nesse caso o store não
// fica em cache e a próxima chamada tenta de novo.
func (m *Manager) ForCompany(ctx context.Context, companyID string) (*Store, error) {
	m.mu.RLock()
	store, ok := m.stores[companyID]
	m.mu.RUnlock()
	if ok {
		return store, nil
	}

	store = NewStore(m.modules, m.log)
	if err := store.BindCompany(ctx, companyID); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// Outra goroutine pode ter vinculado a mesma empresa primeiro.
	if existing, ok := m.stores[companyID]; ok {
		return existing, nil
	}
	m.stores[companyID] = store
	return store, nil
}

// Drop descarta o store da empresa (sessão encerrada ou empresa removida).
func (m *Manager) Drop(companyID string) {
	m.mu.Lock()
	store, ok := m.stores[companyID]
	delete(m.stores, companyID)
	m.mu.Unlock()
	if ok {
		store.Reset()
	}
}
