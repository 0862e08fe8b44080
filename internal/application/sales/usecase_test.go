package sales

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uniqerp/uniq-api/internal/application/dto"
	"github.com/uniqerp/uniq-api/internal/domain"
	"github.com/uniqerp/uniq-api/internal/domain/entity"
	"github.com/uniqerp/uniq-api/internal/domain/repository"
)

// ─────────────────────────── fakes ───────────────────────────

type fakeSaleRepo struct {
	sales       map[string]*entity.Sale
	items       map[string][]*entity.SaleItem
	receivables []*entity.Receivable
	failOn      string // "sale" | "item" | "receivable"
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{
		sales: make(map[string]*entity.Sale),
		items: make(map[string][]*entity.SaleItem),
	}
}

func (r *fakeSaleRepo) CreateSale(_ context.Context, sale *entity.Sale) error {
	if r.failOn == "sale" {
		return errors.New("insert falhou")
	}
	r.sales[sale.ID] = sale
	return nil
}

func (r *fakeSaleRepo) CreateItem(_ context.Context, item *entity.SaleItem) error {
	if r.failOn == "item" {
		return errors.New("insert falhou")
	}
	r.items[item.SaleID] = append(r.items[item.SaleID], item)
	return nil
}

func (r *fakeSaleRepo) CreateReceivable(_ context.Context, receivable *entity.Receivable) error {
	if r.failOn == "receivable" {
		return errors.New("insert falhou")
	}
	r.receivables = append(r.receivables, receivable)
	return nil
}

func (r *fakeSaleRepo) GetSale(_ context.Context, id string) (*entity.Sale, error) {
	return r.sales[id], nil
}

func (r *fakeSaleRepo) ListItems(_ context.Context, saleID string) ([]*entity.SaleItem, error) {
	return r.items[saleID], nil
}

// fakeTx simula a transação: em caso de erro descarta tudo que foi gravado.
type fakeTx struct {
	repo *fakeSaleRepo
}

func (t *fakeTx) RunSale(_ context.Context, fn func(sales repository.SaleRepository) error) error {
	staging := newFakeSaleRepo()
	staging.failOn = t.repo.failOn
	if err := fn(staging); err != nil {
		return err
	}
	for id, s := range staging.sales {
		t.repo.sales[id] = s
	}
	for id, list := range staging.items {
		t.repo.items[id] = append(t.repo.items[id], list...)
	}
	t.repo.receivables = append(t.repo.receivables, staging.receivables...)
	return nil
}

type fakeClients struct {
	byID map[string]*entity.Client
}

func (r *fakeClients) Create(context.Context, *entity.Client) error { return nil }
func (r *fakeClients) GetByID(_ context.Context, id string) (*entity.Client, error) {
	return r.byID[id], nil
}
func (r *fakeClients) GetByCompanyAndDocument(context.Context, string, string) (*entity.Client, error) {
	return nil, nil
}
func (r *fakeClients) ListByCompany(context.Context, string, bool, int, int) ([]*entity.Client, error) {
	return nil, nil
}
func (r *fakeClients) Update(context.Context, *entity.Client) error { return nil }

type fakeCompanies struct {
	byID map[string]*entity.Company
}

func (r *fakeCompanies) Create(context.Context, *entity.Company) error { return nil }
func (r *fakeCompanies) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return r.byID[id], nil
}
func (r *fakeCompanies) GetBySlug(context.Context, string) (*entity.Company, error) {
	return nil, nil
}
func (r *fakeCompanies) Update(context.Context, *entity.Company) error { return nil }
func (r *fakeCompanies) ListIDs(context.Context) ([]string, error)    { return nil, nil }
func (r *fakeCompanies) CreateAddress(context.Context, *entity.CompanyAddress) error {
	return nil
}
func (r *fakeCompanies) GetAddress(context.Context, string) (*entity.CompanyAddress, error) {
	return nil, nil
}

type fakePDF struct {
	calls int
}

func (g *fakePDF) GenerateReceipt(context.Context, *entity.Company, *entity.Sale, []*entity.SaleItem) ([]byte, error) {
	g.calls++
	return []byte("%PDF-1.4"), nil
}

func newTestUseCase(repo *fakeSaleRepo) (*UseCase, *fakeClients, *fakeCompanies, *fakePDF) {
	clients := &fakeClients{byID: make(map[string]*entity.Client)}
	companies := &fakeCompanies{byID: map[string]*entity.Company{
		"emp-1": {ID: "emp-1", Name: "Padaria São João", CNPJ: "11222333000181"},
	}}
	pdf := &fakePDF{}
	uc := NewUseCase(&fakeTx{repo: repo}, repo, clients, companies, pdf)
	return uc, clients, companies, pdf
}

func validRequest() dto.RegisterSaleRequest {
	return dto.RegisterSaleRequest{
		Items: []dto.SaleItemInput{
			{ItemID: "prod-1", ItemType: "produto", Name: "Pão francês", Quantity: 10, UnitPrice: "0.75"},
			{ItemID: "serv-1", ItemType: "servico", Name: "Entrega", Quantity: 1, UnitPrice: "12.50"},
		},
		PaymentMethod: entity.PaymentPix,
		Origin:        "pdv",
	}
}

// ─────────────────────────── registro ───────────────────────────

func TestRegister_PersistsSaleItemsAndReceivable(t *testing.T) {
	repo := newFakeSaleRepo()
	uc, _, _, _ := newTestUseCase(repo)

	res, err := uc.Register(context.Background(), "emp-1", validRequest())
	require.NoError(t, err)
	require.True(t, res.Success)

	// 10×0.75 + 1×12.50 = 20.00
	assert.Equal(t, "20.00", res.Total)

	sale := repo.sales[res.SaleID]
	require.NotNil(t, sale)
	assert.Equal(t, "emp-1", sale.CompanyID)
	assert.True(t, sale.Total.Equal(decimal.RequireFromString("20.00")))
	assert.Len(t, repo.items[res.SaleID], 2)

	require.Len(t, repo.receivables, 1)
	rec := repo.receivables[0]
	assert.Equal(t, res.ReceivableID, rec.ID)
	assert.Equal(t, res.SaleID, rec.SaleID)
	assert.True(t, rec.Amount.Equal(sale.Total))
	assert.Equal(t, "pendente", rec.Status)
}

func TestRegister_DecimalTotalsHaveNoFloatDrift(t *testing.T) {
	repo := newFakeSaleRepo()
	uc, _, _, _ := newTestUseCase(repo)

	// 3×0.10 em float64 daria 0.30000000000000004.
	req := dto.RegisterSaleRequest{
		Items: []dto.SaleItemInput{
			{ItemID: "p", ItemType: "produto", Name: "Bala", Quantity: 3, UnitPrice: "0.10"},
		},
		PaymentMethod: entity.PaymentCash,
	}
	res, err := uc.Register(context.Background(), "emp-1", req)
	require.NoError(t, err)
	assert.Equal(t, "0.30", res.Total)
}

func TestRegister_DueDateDefaultsToToday(t *testing.T) {
	repo := newFakeSaleRepo()
	uc, _, _, _ := newTestUseCase(repo)

	_, err := uc.Register(context.Background(), "emp-1", validRequest())
	require.NoError(t, err)

	rec := repo.receivables[0]
	assert.WithinDuration(t, time.Now(), rec.DueDate, time.Minute)
}

func TestRegister_ExplicitDueDate(t *testing.T) {
	repo := newFakeSaleRepo()
	uc, _, _, _ := newTestUseCase(repo)

	req := validRequest()
	req.PaymentMethod = entity.PaymentInvoice
	req.DueDate = "2026-10-01"
	_, err := uc.Register(context.Background(), "emp-1", req)
	require.NoError(t, err)

	rec := repo.receivables[0]
	assert.Equal(t, "2026-10-01", rec.DueDate.Format("2006-01-02"))
}

func TestRegister_RejectsInvalidInput(t *testing.T) {
	repo := newFakeSaleRepo()
	uc, _, _, _ := newTestUseCase(repo)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*dto.RegisterSaleRequest)
	}{
		{"carrinho vazio", func(r *dto.RegisterSaleRequest) { r.Items = nil }},
		{"pagamento desconhecido", func(r *dto.RegisterSaleRequest) { r.PaymentMethod = "cheque" }},
		{"quantidade zero", func(r *dto.RegisterSaleRequest) { r.Items[0].Quantity = 0 }},
		{"preço negativo", func(r *dto.RegisterSaleRequest) { r.Items[0].UnitPrice = "-1.00" }},
		{"preço não numérico", func(r *dto.RegisterSaleRequest) { r.Items[0].UnitPrice = "dez" }},
		{"vencimento malformado", func(r *dto.RegisterSaleRequest) { r.DueDate = "01/10/2026" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			_, err := uc.Register(ctx, "emp-1", req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Empty(t, repo.receivables)
		})
	}
}

func TestRegister_CustomerMustBelongToCompany(t *testing.T) {
	repo := newFakeSaleRepo()
	uc, clients, _, _ := newTestUseCase(repo)
	clients.byID["cli-outro"] = &entity.Client{ID: "cli-outro", CompanyID: "emp-2"}

	req := validRequest()
	req.CustomerID = "cli-outro"
	_, err := uc.Register(context.Background(), "emp-1", req)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	req.CustomerID = "cli-inexistente"
	_, err = uc.Register(context.Background(), "emp-1", req)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegister_TxFailureLeavesNothingBehind(t *testing.T) {
	repo := newFakeSaleRepo()
	repo.failOn = "receivable"
	uc, _, _, _ := newTestUseCase(repo)

	_, err := uc.Register(context.Background(), "emp-1", validRequest())
	require.Error(t, err)
	assert.Empty(t, repo.sales)
	assert.Empty(t, repo.receivables)
}

// ─────────────────────────── comprovante ───────────────────────────

func TestReceiptPDF_GeneratesForOwnSale(t *testing.T) {
	repo := newFakeSaleRepo()
	uc, _, _, pdf := newTestUseCase(repo)

	res, err := uc.Register(context.Background(), "emp-1", validRequest())
	require.NoError(t, err)

	out, err := uc.ReceiptPDF(context.Background(), "emp-1", res.SaleID)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.Equal(t, 1, pdf.calls)
}

func TestReceiptPDF_OtherCompanySaleIsNotFound(t *testing.T) {
	repo := newFakeSaleRepo()
	uc, _, _, pdf := newTestUseCase(repo)

	res, err := uc.Register(context.Background(), "emp-1", validRequest())
	require.NoError(t, err)

	_, err = uc.ReceiptPDF(context.Background(), "emp-2", res.SaleID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, pdf.calls)
}
