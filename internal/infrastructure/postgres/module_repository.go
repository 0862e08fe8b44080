package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/uniqerp/uniq-api/internal/domain/entity"
	"github.com/uniqerp/uniq-api/internal/domain/repository"
)

var _ repository.ModuleRepository = (*ModuleRepo)(nil)
var _ repository.RolePermissionRepository = (*RolePermissionRepo)(nil)

// ModuleRepo implementação de ModuleRepository sobre unq_modulos_sistema e
// unq_empresa_modulos.
type ModuleRepo struct {
	q Querier
}

// NewModuleRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewModuleRepository(q Querier) *ModuleRepo {
	return &ModuleRepo{q: q}
}

// ListCatalog devolve o catálogo global de módulos.
func (r *ModuleRepo) ListCatalog(ctx context.Context) ([]*entity.SystemModule, error) {
	query := `
		SELECT id, code, name, COALESCE(description, ''), monthly_price, annual_price,
			COALESCE(icon, ''), status, COALESCE(features, '{}'), created_at
		FROM unq_modulos_sistema ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list catalogo: %w", err)
	}
	defer rows.Close()
	var list []*entity.SystemModule
	for rows.Next() {
		var m entity.SystemModule
		if err := rows.Scan(
			&m.ID, &m.Code, &m.Name, &m.Description, &m.MonthlyPrice, &m.AnnualPrice,
			&m.Icon, &m.Status, &m.Features, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan modulo: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// ListActiveCodes devolve os códigos de módulo com adesão vigente da empresa.
func (r *ModuleRepo) ListActiveCodes(ctx context.Context, companyID string) ([]string, error) {
	rows, err := r.q.Query(ctx,
		`SELECT module_code FROM unq_empresa_modulos WHERE company_id = $1`, companyID)
	if err != nil {
		return nil, fmt.Errorf("list modulos ativos: %w", err)
	}
	defer rows.Close()
	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scan modulo ativo: %w", err)
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}

// Activate registra a adesão. Ativar um módulo já ativo é no-op (UPSERT).
func (r *ModuleRepo) Activate(ctx context.Context, companyID, code string) error {
	query := `
		INSERT INTO unq_empresa_modulos (id, company_id, module_code, contracted_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (company_id, module_code) DO NOTHING`
	_, err := r.q.Exec(ctx, query, uuid.New().String(), companyID, code)
	if err != nil {
		return fmt.Errorf("activate modulo: %w", err)
	}
	return nil
}

// Deactivate remove fisicamente a adesão; não há cancelamento lógico.
func (r *ModuleRepo) Deactivate(ctx context.Context, companyID, code string) error {
	_, err := r.q.Exec(ctx,
		`DELETE FROM unq_empresa_modulos WHERE company_id = $1 AND module_code = $2`, companyID, code)
	if err != nil {
		return fmt.Errorf("deactivate modulo: %w", err)
	}
	return nil
}

// RolePermissionRepo implementação de RolePermissionRepository sobre unq_cargo_modulos.
type RolePermissionRepo struct {
	q Querier
}

// NewRolePermissionRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewRolePermissionRepository(q Querier) *RolePermissionRepo {
	return &RolePermissionRepo{q: q}
}

// ListCodes devolve os códigos de módulo permitidos para o cargo.
func (r *RolePermissionRepo) ListCodes(ctx context.Context, roleID string) ([]string, error) {
	rows, err := r.q.Query(ctx,
		`SELECT module_code FROM unq_cargo_modulos WHERE role_id = $1`, roleID)
	if err != nil {
		return nil, fmt.Errorf("list permissoes: %w", err)
	}
	defer rows.Close()
	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scan permissao: %w", err)
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}

// Grant permite o módulo para o cargo (idempotente).
func (r *RolePermissionRepo) Grant(ctx context.Context, roleID, code string) error {
	query := `
		INSERT INTO unq_cargo_modulos (id, role_id, module_code, created_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (role_id, module_code) DO NOTHING`
	_, err := r.q.Exec(ctx, query, uuid.New().String(), roleID, code)
	if err != nil {
		return fmt.Errorf("grant permissao: %w", err)
	}
	return nil
}

// Revoke remove a permissão do cargo (idempotente).
func (r *RolePermissionRepo) Revoke(ctx context.Context, roleID, code string) error {
	_, err := r.q.Exec(ctx,
		`DELETE FROM unq_cargo_modulos WHERE role_id = $1 AND module_code = $2`, roleID, code)
	if err != nil {
		return fmt.Errorf("revoke permissao: %w", err)
	}
	return nil
}
