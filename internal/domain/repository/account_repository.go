package repository

import (
	"context"

	"github.com/uniqerp/uniq-api/internal/domain/entity"
)

// AccountRepository define o porto de persistência para contas de login (DIP).
// A implementação vive em infrastructure.
type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	GetByID(ctx context.Context, id string) (*entity.Account, error)
	GetByEmail(ctx context.Context, email string) (*entity.Account, error)
	// Delete remove a conta. Usado pela compensação do onboarding quando o
	// provisionamento da empresa falha após a conta já ter sido criada.
	Delete(ctx context.Context, id string) error
}
