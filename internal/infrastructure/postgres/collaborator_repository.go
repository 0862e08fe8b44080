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

var _ repository.RoleRepository = (*RoleRepo)(nil)
var _ repository.CollaboratorRepository = (*CollaboratorRepo)(nil)

// RoleRepo implementação de RoleRepository sobre me_cargo.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// Create persiste um cargo.
func (r *RoleRepo) Create(ctx context.Context, role *entity.Role) error {
	query := `
		INSERT INTO me_cargo (id, company_id, name, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, role.ID, role.CompanyID, role.Name, role.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cargo: %w", err)
	}
	return nil
}

// GetByID obtém um cargo por ID.
func (r *RoleRepo) GetByID(ctx context.Context, id string) (*entity.Role, error) {
	query := `SELECT id, company_id, name, created_at FROM me_cargo WHERE id = $1`
	var role entity.Role
	err := r.q.QueryRow(ctx, query, id).Scan(&role.ID, &role.CompanyID, &role.Name, &role.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cargo: %w", err)
	}
	return &role, nil
}

// ListByCompany lista os cargos da empresa.
func (r *RoleRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Role, error) {
	query := `SELECT id, company_id, name, created_at FROM me_cargo WHERE company_id = $1 ORDER BY name`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list cargos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.CompanyID, &role.Name, &role.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cargo: %w", err)
		}
		list = append(list, &role)
	}
	return list, rows.Err()
}

// CollaboratorRepo implementação de CollaboratorRepository sobre me_usuario.
type CollaboratorRepo struct {
	q Querier
}

// NewCollaboratorRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCollaboratorRepository(q Querier) *CollaboratorRepo {
	return &CollaboratorRepo{q: q}
}

const collaboratorColumns = `
	id, company_id, COALESCE(account_id, ''), name, COALESCE(email, ''), COALESCE(phone, ''),
	COALESCE(role_id, ''), active, accepts_schedule, is_owner, created_at, updated_at`

// Create persiste um colaborador. account_id e role_id vazios viram NULL.
func (r *CollaboratorRepo) Create(ctx context.Context, c *entity.Collaborator) error {
	query := `
		INSERT INTO me_usuario (id, company_id, account_id, name, email, phone, role_id, active, accepts_schedule, is_owner, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, NULLIF($7, ''), $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.CompanyID, c.AccountID, c.Name, c.Email, c.Phone, c.RoleID,
		c.Active, c.AcceptsSchedule, c.IsOwner, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert colaborador: %w", err)
	}
	return nil
}

// GetByID obtém um colaborador por ID.
func (r *CollaboratorRepo) GetByID(ctx context.Context, id string) (*entity.Collaborator, error) {
	query := `SELECT ` + collaboratorColumns + ` FROM me_usuario WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// GetByAccountID obtém o colaborador vinculado a uma conta de login.
func (r *CollaboratorRepo) GetByAccountID(ctx context.Context, accountID string) (*entity.Collaborator, error) {
	query := `SELECT ` + collaboratorColumns + ` FROM me_usuario WHERE account_id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, accountID))
}

// ListByCompany lista colaboradores da empresa com paginação.
func (r *CollaboratorRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Collaborator, error) {
	query := `SELECT ` + collaboratorColumns + ` FROM me_usuario WHERE company_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list colaboradores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Collaborator
	for rows.Next() {
		var c entity.Collaborator
		if err := rows.Scan(
			&c.ID, &c.CompanyID, &c.AccountID, &c.Name, &c.Email, &c.Phone,
			&c.RoleID, &c.Active, &c.AcceptsSchedule, &c.IsOwner, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan colaborador: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update atualiza um colaborador.
func (r *CollaboratorRepo) Update(ctx context.Context, c *entity.Collaborator) error {
	query := `
		UPDATE me_usuario
		SET name = $2, email = $3, phone = $4, role_id = NULLIF($5, ''), active = $6, accepts_schedule = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Email, c.Phone, c.RoleID, c.Active, c.AcceptsSchedule, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update colaborador: %w", err)
	}
	return nil
}

func (r *CollaboratorRepo) scanOne(row pgx.Row) (*entity.Collaborator, error) {
	var c entity.Collaborator
	err := row.Scan(
		&c.ID, &c.CompanyID, &c.AccountID, &c.Name, &c.Email, &c.Phone,
		&c.RoleID, &c.Active, &c.AcceptsSchedule, &c.IsOwner, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get colaborador: %w", err)
	}
	return &c, nil
}
