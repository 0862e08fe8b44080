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

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementação de ClientRepository sobre me_cliente.
type ClientRepo struct {
	q Querier
}

// NewClientRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `
	id, company_id, name, COALESCE(document, ''), COALESCE(email, ''), COALESCE(phone, ''),
	COALESCE(origin, ''), COALESCE(notes, ''), COALESCE(photo_url, ''),
	COALESCE(cep, ''), COALESCE(logradouro, ''), COALESCE(numero, ''), COALESCE(complemento, ''),
	COALESCE(bairro, ''), COALESCE(cidade, ''), COALESCE(uf, ''),
	active, created_at, updated_at`

// Create persiste um cliente. Documento duplicado na empresa vira domain.ErrDuplicate.
func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	query := `
		INSERT INTO me_cliente (id, company_id, name, document, email, phone, origin, notes, photo_url,
			cep, logradouro, numero, complemento, bairro, cidade, uf, active, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9,
			$10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.CompanyID, c.Name, c.Document, c.Email, c.Phone, c.Origin, c.Notes, c.PhotoURL,
		c.Address.CEP, c.Address.Logradouro, c.Address.Numero, c.Address.Complemento,
		c.Address.Bairro, c.Address.Cidade, c.Address.UF, c.Active, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtém um cliente por ID.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM me_cliente WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// GetByCompanyAndDocument obtém um cliente pela empresa e CPF/CNPJ (sem máscara).
func (r *ClientRepo) GetByCompanyAndDocument(ctx context.Context, companyID, document string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM me_cliente WHERE company_id = $1 AND document = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, companyID, document))
}

// ListByCompany lista clientes da empresa com paginação.
func (r *ClientRepo) ListByCompany(ctx context.Context, companyID string, onlyActive bool, limit, offset int) ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM me_cliente WHERE company_id = $1 AND ($2 = false OR active) ORDER BY name LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, companyID, onlyActive, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update atualiza um cliente.
func (r *ClientRepo) Update(ctx context.Context, c *entity.Client) error {
	query := `
		UPDATE me_cliente
		SET name = $2, document = NULLIF($3, ''), email = $4, phone = $5, origin = $6, notes = $7, photo_url = $8,
			cep = $9, logradouro = $10, numero = $11, complemento = $12, bairro = $13, cidade = $14, uf = $15,
			active = $16, updated_at = $17
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Document, c.Email, c.Phone, c.Origin, c.Notes, c.PhotoURL,
		c.Address.CEP, c.Address.Logradouro, c.Address.Numero, c.Address.Complemento,
		c.Address.Bairro, c.Address.Cidade, c.Address.UF, c.Active, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

func (r *ClientRepo) scanOne(row pgx.Row) (*entity.Client, error) {
	c, err := scanClient(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return c, nil
}

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(
		&c.ID, &c.CompanyID, &c.Name, &c.Document, &c.Email, &c.Phone,
		&c.Origin, &c.Notes, &c.PhotoURL,
		&c.Address.CEP, &c.Address.Logradouro, &c.Address.Numero, &c.Address.Complemento,
		&c.Address.Bairro, &c.Address.Cidade, &c.Address.UF,
		&c.Active, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
