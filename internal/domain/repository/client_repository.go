package repository

import (
	"context"

	"github.com/uniqerp/uniq-api/internal/domain/entity"
)

// ClientRepository define o porto de persistência para clientes do CRM (me_cliente).
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	GetByCompanyAndDocument(ctx context.Context, companyID, document string) (*entity.Client, error)
	ListByCompany(ctx context.Context, companyID string, onlyActive bool, limit, offset int) ([]*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
}
