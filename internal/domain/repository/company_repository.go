package repository

import (
	"context"

	"github.com/uniqerp/uniq-api/internal/domain/entity"
)

// CompanyRepository define o porto de persistência para Company (DIP).
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	// ListIDs devolve os IDs de todas as empresas; usado pelo advisor agendado.
	ListIDs(ctx context.Context) ([]string, error)
	CreateAddress(ctx context.Context, address *entity.CompanyAddress) error
	GetAddress(ctx context.Context, companyID string) (*entity.CompanyAddress, error)
}
