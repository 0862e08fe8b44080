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

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementação de CompanyRepository (usável com pool ou tx).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste uma empresa. Slug duplicado vira domain.ErrDuplicate para o
// onboarding poder regenerar o sufixo e tentar de novo.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO unq_empresa (id, name, cnpj, slug, phone, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		company.ID, company.Name, company.CNPJ, company.Slug, company.Phone, company.Email,
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert empresa: %w", err)
	}
	return nil
}

// GetByID obtém uma empresa por ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	query := `
		SELECT id, name, cnpj, slug, phone, email, created_at, updated_at
		FROM unq_empresa WHERE id = $1`
	var c entity.Company
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.CNPJ, &c.Slug, &c.Phone, &c.Email, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa: %w", err)
	}
	return &c, nil
}

// GetBySlug obtém uma empresa pelo slug público.
func (r *CompanyRepo) GetBySlug(ctx context.Context, slug string) (*entity.Company, error) {
	query := `
		SELECT id, name, cnpj, slug, phone, email, created_at, updated_at
		FROM unq_empresa WHERE slug = $1`
	var c entity.Company
	err := r.q.QueryRow(ctx, query, slug).Scan(
		&c.ID, &c.Name, &c.CNPJ, &c.Slug, &c.Phone, &c.Email, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa por slug: %w", err)
	}
	return &c, nil
}

// Update atualiza os dados da empresa.
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	query := `
		UPDATE unq_empresa SET name = $2, cnpj = $3, phone = $4, email = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		company.ID, company.Name, company.CNPJ, company.Phone, company.Email, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update empresa: %w", err)
	}
	return nil
}

// ListIDs devolve os IDs de todas as empresas (usado pelo advisor agendado).
func (r *CompanyRepo) ListIDs(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT id FROM unq_empresa ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list empresas: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan empresa: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// CreateAddress persiste o endereço da sede.
func (r *CompanyRepo) CreateAddress(ctx context.Context, address *entity.CompanyAddress) error {
	query := `
		INSERT INTO unq_empresa_endereco (id, company_id, cep, logradouro, numero, complemento, bairro, cidade, uf, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		address.ID, address.CompanyID, address.CEP, address.Logradouro, address.Numero,
		address.Complemento, address.Bairro, address.Cidade, address.UF, address.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert endereco: %w", err)
	}
	return nil
}

// GetAddress obtém o endereço da sede da empresa.
func (r *CompanyRepo) GetAddress(ctx context.Context, companyID string) (*entity.CompanyAddress, error) {
	query := `
		SELECT id, company_id, cep, logradouro, numero, complemento, bairro, cidade, uf, created_at
		FROM unq_empresa_endereco WHERE company_id = $1`
	var a entity.CompanyAddress
	err := r.q.QueryRow(ctx, query, companyID).Scan(
		&a.ID, &a.CompanyID, &a.CEP, &a.Logradouro, &a.Numero,
		&a.Complemento, &a.Bairro, &a.Cidade, &a.UF, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get endereco: %w", err)
	}
	return &a, nil
}
