package entitlement

import (
	"context"

	"github.com/uniqerp/uniq-api/internal/domain"
	"github.com/uniqerp/uniq-api/internal/domain/entity"
	"github.com/uniqerp/uniq-api/internal/domain/repository"
)

// PermissionService configura, por cargo, quais módulos um colaborador daquele
// cargo pode usar, por cima do entitlement da empresa. Não mantém cache
// otimista: o chamador reflete a mudança na lista que já possui. O gating
// empresa-inteira é aplicado separadamente por quem consome, não aqui.
type PermissionService struct {
	perms repository.RolePermissionRepository
}

// NewPermissionService constrói o serviço.
func NewPermissionService(perms repository.RolePermissionRepository) *PermissionService {
	return &PermissionService{perms: perms}
}

// GetRolePermissions devolve os códigos de módulo permitidos para o cargo.
func (s *PermissionService) GetRolePermissions(ctx context.Context, roleID string) ([]string, error) {
	if roleID == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.perms.ListCodes(ctx, roleID)
}

// ToggleRolePermission persiste uma permissão de módulo para o cargo.
// O controle de acesso (somente cargos equivalentes a dono) é aplicado na
// camada HTTP antes de chegar aqui.
func (s *PermissionService) ToggleRolePermission(ctx context.Context, roleID, code string, active bool) error {
	if roleID == "" {
		return domain.ErrInvalidInput
	}
	if _, ok := entity.KnownModules[code]; !ok {
		return domain.ErrModuleUnknown
	}
	if active {
		return s.perms.Grant(ctx, roleID, code)
	}
	return s.perms.Revoke(ctx, roleID, code)
}

// Permitted informa se (cargo, código) está permitido, independente do
// entitlement da empresa.
func (s *PermissionService) Permitted(ctx context.Context, roleID, code string) (bool, error) {
	codes, err := s.perms.ListCodes(ctx, roleID)
	if err != nil {
		return false, err
	}
	for _, c := range codes {
		if c == code {
			return true, nil
		}
	}
	return false, nil
}
