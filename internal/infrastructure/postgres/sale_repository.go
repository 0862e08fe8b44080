package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/uniqerp/uniq-api/internal/domain/entity"
	"github.com/uniqerp/uniq-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementação de SaleRepository sobre unq_venda, unq_venda_item e
// unq_recebivel.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// CreateSale persiste o cabeçalho da venda.
func (r *SaleRepo) CreateSale(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO unq_venda (id, company_id, customer_id, total, payment_method, notes, origin, created_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.CompanyID, sale.CustomerID, sale.Total, sale.PaymentMethod,
		sale.Notes, sale.Origin, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert venda: %w", err)
	}
	return nil
}

// CreateItem persiste uma linha da venda.
func (r *SaleRepo) CreateItem(ctx context.Context, item *entity.SaleItem) error {
	query := `
		INSERT INTO unq_venda_item (id, sale_id, item_id, item_type, name, quantity, unit_price)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.SaleID, item.ItemID, item.ItemType, item.Name, item.Quantity, item.UnitPrice,
	)
	if err != nil {
		return fmt.Errorf("insert item de venda: %w", err)
	}
	return nil
}

// CreateReceivable persiste o recebível gerado junto com a venda.
func (r *SaleRepo) CreateReceivable(ctx context.Context, receivable *entity.Receivable) error {
	query := `
		INSERT INTO unq_recebivel (id, company_id, sale_id, amount, due_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		receivable.ID, receivable.CompanyID, receivable.SaleID, receivable.Amount,
		receivable.DueDate, receivable.Status, receivable.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert recebivel: %w", err)
	}
	return nil
}

// GetSale obtém o cabeçalho de uma venda.
func (r *SaleRepo) GetSale(ctx context.Context, id string) (*entity.Sale, error) {
	query := `
		SELECT id, company_id, COALESCE(customer_id, ''), total, payment_method,
			COALESCE(notes, ''), COALESCE(origin, ''), created_at
		FROM unq_venda WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.CompanyID, &s.CustomerID, &s.Total, &s.PaymentMethod, &s.Notes, &s.Origin, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venda: %w", err)
	}
	return &s, nil
}

// ListItems lista as linhas de uma venda.
func (r *SaleRepo) ListItems(ctx context.Context, saleID string) ([]*entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, COALESCE(item_id, ''), item_type, name, quantity, unit_price
		FROM unq_venda_item WHERE sale_id = $1 ORDER BY name`
	rows, err := r.q.Query(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list itens de venda: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ItemID, &it.ItemType, &it.Name, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan item de venda: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}
