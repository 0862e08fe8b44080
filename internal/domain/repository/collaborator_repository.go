package repository

import (
	"context"

	"github.com/uniqerp/uniq-api/internal/domain/entity"
)

// RoleRepository define o porto de persistência para cargos (me_cargo).
type RoleRepository interface {
	Create(ctx context.Context, role *entity.Role) error
	GetByID(ctx context.Context, id string) (*entity.Role, error)
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Role, error)
}

// CollaboratorRepository define o porto de persistência para colaboradores (me_usuario).
type CollaboratorRepository interface {
	Create(ctx context.Context, collaborator *entity.Collaborator) error
	GetByID(ctx context.Context, id string) (*entity.Collaborator, error)
	GetByAccountID(ctx context.Context, accountID string) (*entity.Collaborator, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Collaborator, error)
	Update(ctx context.Context, collaborator *entity.Collaborator) error
}
