package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pagamento aceitos no ponto de venda.
const (
	PaymentCash    = "dinheiro"
	PaymentPix     = "pix"
	PaymentDebit   = "debito"
	PaymentCredit  = "credito"
	PaymentInvoice = "boleto"
)

// Sale venda registrada pelo ponto de venda (unq_venda). O carrinho é estado
// transitório do cliente; só a venda persistida é fonte de verdade.
type Sale struct {
	ID            string
	CompanyID     string
	CustomerID    string // opcional: venda sem cliente identificado
	Total         decimal.Decimal
	PaymentMethod string
	Notes         string
	Origin        string // "pdv", "storefront", ...
	CreatedAt     time.Time
}

// SaleItem linha da venda (unq_venda_item).
type SaleItem struct {
	ID        string
	SaleID    string
	ItemID    string // produto ou serviço referenciado
	ItemType  string // "produto" | "servico"
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Subtotal devolve quantidade × preço unitário.
func (i SaleItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Receivable recebível gerado junto com a venda (unq_recebivel).
type Receivable struct {
	ID        string
	CompanyID string
	SaleID    string
	Amount    decimal.Decimal
	DueDate   time.Time
	Status    string // "pendente" | "recebido"
	CreatedAt time.Time
}
