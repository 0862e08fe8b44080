// Package sales implementa o fluxo do ponto de venda: o carrinho chega pronto
// do cliente e o registro persiste venda, itens e recebível em uma única
// transação, que passa a ser a fonte de verdade.
package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/uniqerp/uniq-api/internal/application/dto"
	"github.com/uniqerp/uniq-api/internal/domain"
	"github.com/uniqerp/uniq-api/internal/domain/entity"
	"github.com/uniqerp/uniq-api/internal/domain/repository"
)

// TxRunner executa o registro da venda dentro de uma transação.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(sales repository.SaleRepository) error) error
}

// ReceiptGenerator gera o comprovante em PDF de uma venda.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, company *entity.Company, sale *entity.Sale, items []*entity.SaleItem) ([]byte, error)
}

var validPayments = map[string]struct{}{
	entity.PaymentCash:    {},
	entity.PaymentPix:     {},
	entity.PaymentDebit:   {},
	entity.PaymentCredit:  {},
	entity.PaymentInvoice: {},
}

// UseCase casos de uso de venda.
type UseCase struct {
	tx        TxRunner
	sales     repository.SaleRepository
	clients   repository.ClientRepository
	companies repository.CompanyRepository
	pdf       ReceiptGenerator
}

// NewUseCase constrói o caso de uso.
func NewUseCase(
	tx TxRunner,
	sales repository.SaleRepository,
	clients repository.ClientRepository,
	companies repository.CompanyRepository,
	pdf ReceiptGenerator,
) *UseCase {
	return &UseCase{tx: tx, sales: sales, clients: clients, companies: companies, pdf: pdf}
}

// Register valida o carrinho, calcula o total e persiste venda + itens +
// recebível atomicamente. O cliente, se informado, precisa pertencer à empresa.
func (uc *UseCase) Register(ctx context.Context, companyID string, in dto.RegisterSaleRequest) (*dto.RegisterSaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if _, ok := validPayments[in.PaymentMethod]; !ok {
		return nil, domain.ErrInvalidInput
	}

	if in.CustomerID != "" {
		client, err := uc.clients.GetByID(ctx, in.CustomerID)
		if err != nil {
			return nil, err
		}
		if client == nil || client.CompanyID != companyID {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	saleID := uuid.New().String()
	total := decimal.Zero
	items := make([]*entity.SaleItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		price, err := decimal.NewFromString(it.UnitPrice)
		if err != nil || price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item := &entity.SaleItem{
			ID:        uuid.New().String(),
			SaleID:    saleID,
			ItemID:    it.ItemID,
			ItemType:  it.ItemType,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: price,
		}
		total = total.Add(item.Subtotal())
		items = append(items, item)
	}
	total = total.Round(2)

	dueDate := now
	if in.DueDate != "" {
		parsed, err := time.Parse("2006-01-02", in.DueDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		dueDate = parsed
	}

	sale := &entity.Sale{
		ID:            saleID,
		CompanyID:     companyID,
		CustomerID:    in.CustomerID,
		Total:         total,
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
		Origin:        in.Origin,
		CreatedAt:     now,
	}
	receivable := &entity.Receivable{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		SaleID:    saleID,
		Amount:    total,
		DueDate:   dueDate,
		Status:    "pendente",
		CreatedAt: now,
	}

	err := uc.tx.RunSale(ctx, func(sales repository.SaleRepository) error {
		if err := sales.CreateSale(ctx, sale); err != nil {
			return err
		}
		for _, item := range items {
			if err := sales.CreateItem(ctx, item); err != nil {
				return err
			}
		}
		return sales.CreateReceivable(ctx, receivable)
	})
	if err != nil {
		return nil, err
	}

	return &dto.RegisterSaleResponse{
		Success:      true,
		SaleID:       saleID,
		ReceivableID: receivable.ID,
		Total:        total.StringFixed(2),
	}, nil
}

// ReceiptPDF gera o comprovante da venda. A venda precisa pertencer à empresa.
func (uc *UseCase) ReceiptPDF(ctx context.Context, companyID, saleID string) ([]byte, error) {
	sale, err := uc.sales.GetSale(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil || sale.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	items, err := uc.sales.ListItems(ctx, saleID)
	if err != nil {
		return nil, err
	}
	company, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return uc.pdf.GenerateReceipt(ctx, company, sale, items)
}
