package repository

import (
	"context"

	"github.com/uniqerp/uniq-api/internal/domain/entity"
)

// SaleRepository define o porto de persistência para vendas, itens e recebíveis.
type SaleRepository interface {
	CreateSale(ctx context.Context, sale *entity.Sale) error
	CreateItem(ctx context.Context, item *entity.SaleItem) error
	CreateReceivable(ctx context.Context, receivable *entity.Receivable) error
	GetSale(ctx context.Context, id string) (*entity.Sale, error)
	ListItems(ctx context.Context, saleID string) ([]*entity.SaleItem, error)
}
