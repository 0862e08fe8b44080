// Package onboarding implementa a transação multi-etapas de criação de empresa:
// conta → slug → provisionamento atômico → ativação best-effort de módulos,
// com compensação de uma única tentativa quando o provisionamento falha depois
// de a conta já existir.
package onboarding

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/uniqerp/uniq-api/internal/application/dto"
	"github.com/uniqerp/uniq-api/internal/domain"
	"github.com/uniqerp/uniq-api/internal/domain/entity"
	"github.com/uniqerp/uniq-api/internal/domain/repository"
	"github.com/uniqerp/uniq-api/pkg/br"
	"github.com/uniqerp/uniq-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// Outcome desfecho de uma tentativa de onboarding.
type Outcome int

const (
	// Succeeded empresa provisionada; módulos podem ter ficado incompletos.
	Succeeded Outcome = iota + 1
	// FailedTerminal a criação da conta falhou; nada mais foi tentado.
	FailedTerminal
	// FailedRetryable o provisionamento falhou e a compensação limpou a conta:
	// a sessão deve ser descartada e o usuário recomeça do zero.
	FailedRetryable
	// FailedNeedsSupport o provisionamento falhou E a compensação falhou: a
	// conta existe sem empresa; não há retry automático, só suporte.
	FailedNeedsSupport
)

// Result resultado de Run. Err carrega a causa original quando Outcome != Succeeded.
type Result struct {
	Outcome       Outcome
	AccountID     string
	CompanyID     string
	Slug          string
	FailedModules []string // ativações best-effort que falharam (apenas log)
	Err           error
}

// TxRunner executa o provisionamento dentro de uma transação: empresa, endereço,
// cargo padrão e colaborador owner são criados atomicamente ou nada é criado.
type TxRunner interface {
	RunProvisioning(ctx context.Context, fn func(
		companies repository.CompanyRepository,
		roles repository.RoleRepository,
		collaborators repository.CollaboratorRepository,
	) error) error
}

// UseCase orquestra o onboarding.
type UseCase struct {
	accounts repository.AccountRepository
	tx       TxRunner
	modules  repository.ModuleRepository
	log      *logger.Logger
}

// NewUseCase constrói o caso de uso.
func NewUseCase(accounts repository.AccountRepository, tx TxRunner, modules repository.ModuleRepository, log *logger.Logger) *UseCase {
	return &UseCase{accounts: accounts, tx: tx, modules: modules, log: log}
}

// Run executa as etapas em ordem estrita. Nenhuma etapa é pulada em retry: uma
// nova tentativa recomeça da conta (o e-mail duplicado denuncia sobras de uma
// compensação que falhou).
func (uc *UseCase) Run(ctx context.Context, in dto.OnboardingRequest) Result {
	// Etapa 1: identidade autenticável. Falha aqui é terminal.
	accountID, err := uc.createAccount(ctx, in)
	if err != nil {
		return Result{Outcome: FailedTerminal, Err: err}
	}

	// Etapa 2: slug probabilístico (sufixo aleatório, sem conferência prévia).
	slug := br.SlugWithSuffix(in.CompanyName)

	// Etapa 3: provisionamento atômico. Uma colisão de slug ganha um único
	// retry com sufixo novo; qualquer outra falha segue para a compensação.
	companyID, err := uc.provision(ctx, accountID, slug, in)
	if errors.Is(err, domain.ErrDuplicate) {
		slug = br.SlugWithSuffix(in.CompanyName)
		companyID, err = uc.provision(ctx, accountID, slug, in)
	}
	if err != nil {
		return uc.compensate(ctx, accountID, err)
	}

	// Etapa 4: ativação dos módulos selecionados, concorrente e best-effort.
	// Qualquer subconjunto pode falhar sem desfazer as etapas 1–3 e sem
	// bloquear o sucesso; o usuário corrige depois nas configurações.
	failed := uc.activateModules(ctx, companyID, in.Modules)

	return Result{
		Outcome:       Succeeded,
		AccountID:     accountID,
		CompanyID:     companyID,
		Slug:          slug,
		FailedModules: failed,
	}
}

func (uc *UseCase) createAccount(ctx context.Context, in dto.OnboardingRequest) (string, error) {
	existing, err := uc.accounts.GetByEmail(ctx, in.Email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	account := &entity.Account{
		ID:           uuid.New().String(),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: string(hash),
		FullName:     in.FullName,
		CreatedAt:    time.Now(),
	}
	if err := uc.accounts.Create(ctx, account); err != nil {
		return "", err
	}
	return account.ID, nil
}

func (uc *UseCase) provision(ctx context.Context, accountID, slug string, in dto.OnboardingRequest) (string, error) {
	now := time.Now()
	companyID := uuid.New().String()

	err := uc.tx.RunProvisioning(ctx, func(
		companies repository.CompanyRepository,
		roles repository.RoleRepository,
		collaborators repository.CollaboratorRepository,
	) error {
		company := &entity.Company{
			ID:        companyID,
			Name:      in.CompanyName,
			CNPJ:      br.StripDigits(in.CompanyCNPJ),
			Slug:      slug,
			Phone:     br.StripDigits(in.CompanyPhone),
			Email:     in.Email,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := companies.Create(ctx, company); err != nil {
			return err
		}
		address := &entity.CompanyAddress{
			ID:          uuid.New().String(),
			CompanyID:   companyID,
			CEP:         br.StripDigits(in.CEP),
			Logradouro:  in.Logradouro,
			Numero:      in.Numero,
			Complemento: in.Complemento,
			Bairro:      in.Bairro,
			Cidade:      in.Cidade,
			UF:          strings.ToUpper(in.UF),
			CreatedAt:   now,
		}
		if err := companies.CreateAddress(ctx, address); err != nil {
			return err
		}
		role := &entity.Role{
			ID:        uuid.New().String(),
			CompanyID: companyID,
			Name:      "Administrador",
			CreatedAt: now,
		}
		if err := roles.Create(ctx, role); err != nil {
			return err
		}
		owner := &entity.Collaborator{
			ID:              uuid.New().String(),
			CompanyID:       companyID,
			AccountID:       accountID,
			Name:            in.FullName,
			Email:           in.Email,
			Phone:           br.StripDigits(in.Phone),
			RoleID:          role.ID,
			Active:          true,
			AcceptsSchedule: false,
			IsOwner:         true,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		return collaborators.Create(ctx, owner)
	})
	if err != nil {
		return "", err
	}
	return companyID, nil
}

// compensate tenta UMA limpeza da conta órfã. Dois desfechos, sem retry
// automático: compensação ok (recomeçar do zero) ou compensação falha (suporte).
func (uc *UseCase) compensate(ctx context.Context, accountID string, cause error) Result {
	uc.log.Error().Err(cause).
		Str("account_id", accountID).
		Msg("provisionamento da empresa falhou; executando compensação")

	if err := uc.accounts.Delete(ctx, accountID); err != nil {
		uc.log.Error().Err(err).
			Str("account_id", accountID).
			Msg("compensação falhou: conta criada sem empresa, exige suporte")
		return Result{Outcome: FailedNeedsSupport, AccountID: accountID, Err: cause}
	}
	return Result{Outcome: FailedRetryable, Err: cause}
}

func (uc *UseCase) activateModules(ctx context.Context, companyID string, codes []string) []string {
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		failed []string
	)
	for _, code := range codes {
		if _, ok := entity.KnownModules[code]; !ok {
			uc.log.Warn().Str("module", code).Msg("módulo desconhecido ignorado no onboarding")
			continue
		}
		wg.Add(1)
		go func(code string) {
			defer wg.Done()
			if err := uc.modules.Activate(ctx, companyID, code); err != nil {
				uc.log.Error().Err(err).
					Str("company_id", companyID).
					Str("module", code).
					Msg("ativação de módulo falhou durante o onboarding (best-effort)")
				mu.Lock()
				failed = append(failed, code)
				mu.Unlock()
			}
		}(code)
	}
	wg.Wait()
	return failed
}
