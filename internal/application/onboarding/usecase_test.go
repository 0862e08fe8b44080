package onboarding_test

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniqerp/uniq-api/internal/application/dto"
	"github.com/uniqerp/uniq-api/internal/application/onboarding"
	"github.com/uniqerp/uniq-api/internal/domain"
	"github.com/uniqerp/uniq-api/internal/domain/entity"
	"github.com/uniqerp/uniq-api/internal/domain/repository"
	"github.com/uniqerp/uniq-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes dos portos
// ──────────────────────────────────────────────────────────────────────────────

type fakeAccounts struct {
	mu          sync.Mutex
	byEmail     map[string]*entity.Account
	deleteCalls int
	failDelete  bool
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{byEmail: make(map[string]*entity.Account)}
}

func (f *fakeAccounts) Create(ctx context.Context, a *entity.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byEmail[a.Email] = a
	return nil
}

func (f *fakeAccounts) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.byEmail {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccounts) GetByEmail(ctx context.Context, email string) (*entity.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byEmail[email], nil
}

func (f *fakeAccounts) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	if f.failDelete {
		return errors.New("delete falhou")
	}
	for email, a := range f.byEmail {
		if a.ID == id {
			delete(f.byEmail, email)
		}
	}
	return nil
}

// fakeTx executa o provisionamento contra repositórios em memória, com erros
// injetáveis por execução (errs[0] na primeira chamada, errs[1] na segunda...).
type fakeTx struct {
	runs      int
	errs      []error
	companies []*entity.Company
	owners    []*entity.Collaborator
}

func (f *fakeTx) RunProvisioning(ctx context.Context, fn func(
	companies repository.CompanyRepository,
	roles repository.RoleRepository,
	collaborators repository.CollaboratorRepository,
) error) error {
	run := f.runs
	f.runs++
	if run < len(f.errs) && f.errs[run] != nil {
		return f.errs[run]
	}
	companies := &memCompanies{tx: f}
	return fn(companies, &memRoles{}, &memCollaborators{tx: f})
}

type memCompanies struct{ tx *fakeTx }

func (m *memCompanies) Create(ctx context.Context, c *entity.Company) error {
	m.tx.companies = append(m.tx.companies, c)
	return nil
}
func (m *memCompanies) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	return nil, nil
}
func (m *memCompanies) GetBySlug(ctx context.Context, slug string) (*entity.Company, error) {
	return nil, nil
}
func (m *memCompanies) Update(ctx context.Context, c *entity.Company) error { return nil }
func (m *memCompanies) ListIDs(ctx context.Context) ([]string, error)       { return nil, nil }
func (m *memCompanies) CreateAddress(ctx context.Context, a *entity.CompanyAddress) error {
	return nil
}
func (m *memCompanies) GetAddress(ctx context.Context, companyID string) (*entity.CompanyAddress, error) {
	return nil, nil
}

type memRoles struct{}

func (m *memRoles) Create(ctx context.Context, r *entity.Role) error { return nil }
func (m *memRoles) GetByID(ctx context.Context, id string) (*entity.Role, error) {
	return nil, nil
}
func (m *memRoles) ListByCompany(ctx context.Context, companyID string) ([]*entity.Role, error) {
	return nil, nil
}

type memCollaborators struct{ tx *fakeTx }

func (m *memCollaborators) Create(ctx context.Context, c *entity.Collaborator) error {
	m.tx.owners = append(m.tx.owners, c)
	return nil
}
func (m *memCollaborators) GetByID(ctx context.Context, id string) (*entity.Collaborator, error) {
	return nil, nil
}
func (m *memCollaborators) GetByAccountID(ctx context.Context, accountID string) (*entity.Collaborator, error) {
	return nil, nil
}
func (m *memCollaborators) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Collaborator, error) {
	return nil, nil
}
func (m *memCollaborators) Update(ctx context.Context, c *entity.Collaborator) error { return nil }

// fakeActivator implementa ModuleRepository com falhas por código.
type fakeActivator struct {
	mu        sync.Mutex
	activated []string
	failCodes map[string]bool
}

func (f *fakeActivator) ListCatalog(ctx context.Context) ([]*entity.SystemModule, error) {
	return nil, nil
}
func (f *fakeActivator) ListActiveCodes(ctx context.Context, companyID string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.activated...), nil
}
func (f *fakeActivator) Activate(ctx context.Context, companyID, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCodes[code] {
		return errors.New("ativação indisponível")
	}
	f.activated = append(f.activated, code)
	return nil
}
func (f *fakeActivator) Deactivate(ctx context.Context, companyID, code string) error { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func validRequest() dto.OnboardingRequest {
	return dto.OnboardingRequest{
		FullName:    "Maria Souza",
		CPF:         "529.982.247-25",
		Email:       "maria@empresa.com.br",
		Password:    "Senha123",
		Phone:       "(11) 98765-4321",
		CompanyName: "Padaria São João",
		CompanyCNPJ: "11.222.333/0001-81",
		CEP:         "01001-000",
		Logradouro:  "Praça da Sé",
		Numero:      "100",
		Bairro:      "Sé",
		Cidade:      "São Paulo",
		UF:          "sp",
		Modules:     []string{entity.ModuleCRM, entity.ModuleFinance, entity.ModuleStorefront},
	}
}

func newUseCase(accounts *fakeAccounts, tx *fakeTx, activator *fakeActivator) *onboarding.UseCase {
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	return onboarding.NewUseCase(accounts, tx, activator, log)
}

// ──────────────────────────────────────────────────────────────────────────────
// Caminho feliz
// ──────────────────────────────────────────────────────────────────────────────

func TestRun_Sucesso(t *testing.T) {
	accounts := newFakeAccounts()
	tx := &fakeTx{}
	activator := &fakeActivator{}
	uc := newUseCase(accounts, tx, activator)

	res := uc.Run(context.Background(), validRequest())

	require.Equal(t, onboarding.Succeeded, res.Outcome)
	assert.NotEmpty(t, res.AccountID)
	assert.NotEmpty(t, res.CompanyID)
	assert.Regexp(t, regexp.MustCompile(`^padaria-sao-joao-\d{4}$`), res.Slug)
	assert.Empty(t, res.FailedModules)

	require.Len(t, tx.companies, 1)
	assert.Equal(t, res.CompanyID, tx.companies[0].ID)
	assert.Equal(t, "11222333000181", tx.companies[0].CNPJ, "CNPJ persiste sem máscara")

	require.Len(t, tx.owners, 1)
	owner := tx.owners[0]
	assert.True(t, owner.IsOwner)
	assert.Equal(t, res.AccountID, owner.AccountID)
	assert.Equal(t, res.CompanyID, owner.CompanyID)

	assert.ElementsMatch(t, []string{entity.ModuleCRM, entity.ModuleFinance, entity.ModuleStorefront},
		activator.activated)
}

// Dois de três módulos falhando não bloqueiam o sucesso: as etapas 1–3 não são
// desfeitas e o resultado continua Succeeded.
func TestRun_AtivacaoParcialDeModulosNaoBloqueia(t *testing.T) {
	accounts := newFakeAccounts()
	tx := &fakeTx{}
	activator := &fakeActivator{failCodes: map[string]bool{
		entity.ModuleFinance:    true,
		entity.ModuleStorefront: true,
	}}
	uc := newUseCase(accounts, tx, activator)

	res := uc.Run(context.Background(), validRequest())

	require.Equal(t, onboarding.Succeeded, res.Outcome)
	assert.ElementsMatch(t, []string{entity.ModuleFinance, entity.ModuleStorefront}, res.FailedModules)
	assert.Equal(t, []string{entity.ModuleCRM}, activator.activated)
	assert.Zero(t, accounts.deleteCalls, "sucesso não dispara compensação")
}

// Módulos desconhecidos na seleção são ignorados, não causam falha.
func TestRun_ModuloDesconhecidoIgnorado(t *testing.T) {
	accounts := newFakeAccounts()
	tx := &fakeTx{}
	activator := &fakeActivator{}
	uc := newUseCase(accounts, tx, activator)

	in := validRequest()
	in.Modules = []string{entity.ModuleCRM, "modulo-inexistente"}
	res := uc.Run(context.Background(), in)

	require.Equal(t, onboarding.Succeeded, res.Outcome)
	assert.Equal(t, []string{entity.ModuleCRM}, activator.activated)
	assert.Empty(t, res.FailedModules)
}

// ──────────────────────────────────────────────────────────────────────────────
// Falhas
// ──────────────────────────────────────────────────────────────────────────────

// Etapa 1 falha (e-mail duplicado): terminal, nada mais é tentado.
func TestRun_ContaDuplicadaETerminal(t *testing.T) {
	accounts := newFakeAccounts()
	accounts.byEmail["maria@empresa.com.br"] = &entity.Account{ID: "conta-1", Email: "maria@empresa.com.br"}
	tx := &fakeTx{}
	uc := newUseCase(accounts, tx, &fakeActivator{})

	res := uc.Run(context.Background(), validRequest())

	assert.Equal(t, onboarding.FailedTerminal, res.Outcome)
	assert.ErrorIs(t, res.Err, domain.ErrEmailAlreadyExists)
	assert.Zero(t, tx.runs, "provisionamento não deve ser tentado")
	assert.Zero(t, accounts.deleteCalls, "sem compensação em falha terminal")
}

// Provisionamento falha e a compensação limpa a conta: exatamente UMA chamada
// de compensação, conta removida, desfecho retryable.
func TestRun_ProvisionamentoFalhaCompensacaoOk(t *testing.T) {
	accounts := newFakeAccounts()
	tx := &fakeTx{errs: []error{errors.New("deadlock detectado")}}
	activator := &fakeActivator{}
	uc := newUseCase(accounts, tx, activator)

	res := uc.Run(context.Background(), validRequest())

	assert.Equal(t, onboarding.FailedRetryable, res.Outcome)
	assert.Equal(t, 1, accounts.deleteCalls, "exatamente uma compensação")
	assert.Empty(t, accounts.byEmail, "a conta órfã foi removida")
	assert.Empty(t, activator.activated, "nenhum módulo é ativado após falha")
	assert.Empty(t, res.CompanyID, "sem navegação para o dashboard")
}

// Provisionamento falha E a compensação falha: estado que exige suporte.
func TestRun_CompensacaoFalhaExigeSuporte(t *testing.T) {
	accounts := newFakeAccounts()
	accounts.failDelete = true
	tx := &fakeTx{errs: []error{errors.New("timeout")}}
	uc := newUseCase(accounts, tx, &fakeActivator{})

	res := uc.Run(context.Background(), validRequest())

	assert.Equal(t, onboarding.FailedNeedsSupport, res.Outcome)
	assert.Equal(t, 1, accounts.deleteCalls)
	assert.NotEmpty(t, res.AccountID, "a conta órfã fica registrada para o suporte")
	assert.Len(t, accounts.byEmail, 1, "a conta continua existindo sem empresa")
}

// Colisão de slug (violação de unicidade) ganha um único retry com sufixo novo.
func TestRun_ColisaoDeSlugTentaUmaVez(t *testing.T) {
	accounts := newFakeAccounts()
	tx := &fakeTx{errs: []error{domain.ErrDuplicate}}
	uc := newUseCase(accounts, tx, &fakeActivator{})

	res := uc.Run(context.Background(), validRequest())

	require.Equal(t, onboarding.Succeeded, res.Outcome)
	assert.Equal(t, 2, tx.runs, "um retry exato após a colisão")
	assert.Zero(t, accounts.deleteCalls)
}

// Duas colisões seguidas caem na compensação normal.
func TestRun_DuasColisoesCompensam(t *testing.T) {
	accounts := newFakeAccounts()
	tx := &fakeTx{errs: []error{domain.ErrDuplicate, domain.ErrDuplicate}}
	uc := newUseCase(accounts, tx, &fakeActivator{})

	res := uc.Run(context.Background(), validRequest())

	assert.Equal(t, onboarding.FailedRetryable, res.Outcome)
	assert.Equal(t, 2, tx.runs)
	assert.Equal(t, 1, accounts.deleteCalls)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validação das etapas de coleta
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_UmaMensagemPorCampo(t *testing.T) {
	in := dto.OnboardingRequest{
		FullName:    "",
		Email:       "sem-arroba",
		CPF:         "123",
		Password:    "curta",
		CompanyName: "",
		CompanyCNPJ: "11.222.333/0001-80",
		CEP:         "0100",
	}
	errs := onboarding.Validate(in)

	fields := make(map[string]string, len(errs))
	for _, e := range errs {
		_, dup := fields[e.Field]
		assert.False(t, dup, "campo %s com mais de uma mensagem", e.Field)
		fields[e.Field] = e.Message
	}
	for _, f := range []string{"full_name", "email", "cpf", "password", "company_name", "company_cnpj", "cep"} {
		assert.Contains(t, fields, f)
	}
}

func TestValidate_RequisicaoValidaPassa(t *testing.T) {
	assert.Empty(t, onboarding.Validate(validRequest()))
}
