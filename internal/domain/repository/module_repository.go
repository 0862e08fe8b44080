package repository

import (
	"context"

	"github.com/uniqerp/uniq-api/internal/domain/entity"
)

// ModuleRepository define o porto de persistência para o catálogo de módulos e
// as adesões empresa↔módulo.
type ModuleRepository interface {
	ListCatalog(ctx context.Context) ([]*entity.SystemModule, error)
	// ListActiveCodes devolve os códigos de módulo com adesão vigente da empresa.
	ListActiveCodes(ctx context.Context, companyID string) ([]string, error)
	// Activate registra a adesão (UPSERT: ativar um módulo já ativo é no-op).
	Activate(ctx context.Context, companyID, code string) error
	// Deactivate remove fisicamente a linha de adesão; sem histórico.
	Deactivate(ctx context.Context, companyID, code string) error
}

// RolePermissionRepository define o porto para as permissões de módulo por cargo.
type RolePermissionRepository interface {
	ListCodes(ctx context.Context, roleID string) ([]string, error)
	Grant(ctx context.Context, roleID, code string) error
	Revoke(ctx context.Context, roleID, code string) error
}
