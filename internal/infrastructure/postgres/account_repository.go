package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/uniqerp/uniq-api/internal/domain"
	"github.com/uniqerp/uniq-api/internal/domain/entity"
	"github.com/uniqerp/uniq-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementação de AccountRepository (usável com pool ou tx).
type AccountRepo struct {
	q Querier
}

// NewAccountRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

// Create persiste uma conta de login. E-mail duplicado vira domain.ErrEmailAlreadyExists.
func (r *AccountRepo) Create(ctx context.Context, account *entity.Account) error {
	query := `
		INSERT INTO unq_conta (id, email, password_hash, full_name, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		account.ID, account.Email, account.PasswordHash, account.FullName, account.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert conta: %w", err)
	}
	return nil
}

// GetByID obtém uma conta por ID.
func (r *AccountRepo) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	query := `
		SELECT id, email, password_hash, full_name, created_at
		FROM unq_conta WHERE id = $1`
	var a entity.Account
	err := r.q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Email, &a.PasswordHash, &a.FullName, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get conta: %w", err)
	}
	return &a, nil
}

// GetByEmail obtém uma conta pelo e-mail (já normalizado para minúsculas).
func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (*entity.Account, error) {
	query := `
		SELECT id, email, password_hash, full_name, created_at
		FROM unq_conta WHERE email = $1`
	var a entity.Account
	err := r.q.QueryRow(ctx, query, email).Scan(
		&a.ID, &a.Email, &a.PasswordHash, &a.FullName, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get conta por email: %w", err)
	}
	return &a, nil
}

// Delete remove a conta (compensação do onboarding).
func (r *AccountRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM unq_conta WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete conta: %w", err)
	}
	return nil
}
