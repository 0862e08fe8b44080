package usecase

import (
	"context"

	"github.com/uniqerp/uniq-api/internal/application/dto"
	"github.com/uniqerp/uniq-api/internal/domain/entity"
	"github.com/uniqerp/uniq-api/internal/domain/repository"
)

// CatalogUseCase expõe o catálogo global de módulos da loja.
type CatalogUseCase struct {
	repo repository.ModuleRepository
}

// NewCatalogUseCase constrói o caso de uso.
func NewCatalogUseCase(repo repository.ModuleRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// List devolve o catálogo. isActive marca cada entrada com o estado vigente da
// empresa do chamador (os códigos núcleo aparecem sempre ativos).
func (uc *CatalogUseCase) List(ctx context.Context, isActive func(code string) bool) ([]*dto.SystemModuleResponse, error) {
	catalog, err := uc.repo.ListCatalog(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SystemModuleResponse, 0, len(catalog))
	for _, m := range catalog {
		out = append(out, moduleToResponse(m, isActive(m.Code)))
	}
	return out, nil
}

func moduleToResponse(m *entity.SystemModule, active bool) *dto.SystemModuleResponse {
	return &dto.SystemModuleResponse{
		ID:           m.ID,
		Code:         m.Code,
		Name:         m.Name,
		Description:  m.Description,
		MonthlyPrice: m.MonthlyPrice.StringFixed(2),
		AnnualPrice:  m.AnnualPrice.StringFixed(2),
		Icon:         m.Icon,
		Status:       m.Status,
		Features:     m.Features,
		Active:       active,
	}
}
