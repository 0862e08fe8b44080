package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/uniqerp/uniq-api/internal/application/onboarding"
	"github.com/uniqerp/uniq-api/internal/application/sales"
	"github.com/uniqerp/uniq-api/internal/domain/repository"
)

var _ onboarding.TxRunner = (*TxRunner)(nil)
var _ sales.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunProvisioning abre uma transação com os repos do provisionamento do
// onboarding (empresa + endereço + cargo + colaborador owner) e faz Commit ou
// Rollback.
func (r *TxRunner) RunProvisioning(ctx context.Context, fn func(
	companies repository.CompanyRepository,
	roles repository.RoleRepository,
	collaborators repository.CollaboratorRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	companies := NewCompanyRepository(tx)
	roles := NewRoleRepository(tx)
	collaborators := NewCollaboratorRepository(tx)

	if err := fn(companies, roles, collaborators); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunSale abre uma transação com o repo de vendas (venda + itens + recebível).
func (r *TxRunner) RunSale(ctx context.Context, fn func(sales repository.SaleRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewSaleRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
