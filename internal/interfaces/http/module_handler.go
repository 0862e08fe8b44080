package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/uniqerp/uniq-api/internal/application/dto"
	"github.com/uniqerp/uniq-api/internal/application/entitlement"
	"github.com/uniqerp/uniq-api/internal/application/usecase"
	"github.com/uniqerp/uniq-api/internal/domain"
	"github.com/uniqerp/uniq-api/internal/domain/entity"
)

// ModuleHandler trata o catálogo de módulos e a ativação por empresa (protegido).
type ModuleHandler struct {
	catalog *usecase.CatalogUseCase
	manager *entitlement.Manager
}

// NewModuleHandler constrói o handler.
func NewModuleHandler(catalog *usecase.CatalogUseCase, manager *entitlement.Manager) *ModuleHandler {
	return &ModuleHandler{catalog: catalog, manager: manager}
}

// Catalog GET /api/modules — catálogo com o flag de ativo da empresa do token.
func (h *ModuleHandler) Catalog(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	store, err := h.manager.ForCompany(c.Context(), companyID)
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "MODULE_CHECK_FAILED", Message: "não foi possível carregar os módulos da empresa"})
	}
	list, err := h.catalog.List(c.Context(), store.IsModuleActive)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Active GET /api/modules/active — códigos com adesão vigente (sem os núcleo).
func (h *ModuleHandler) Active(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	store, err := h.manager.ForCompany(c.Context(), companyID)
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "MODULE_CHECK_FAILED", Message: "não foi possível carregar os módulos da empresa"})
	}
	return c.JSON(dto.ActiveModulesResponse{Modules: store.ActiveModules()})
}

// Toggle POST /api/modules/toggle — ativa/desativa um módulo da empresa.
//
// A mutação é otimista e best-effort: a resposta devolve o conjunto vigente
// após o toggle; se a persistência falhar, o conjunto devolvido já reflete a
// recarga de reconciliação.
func (h *ModuleHandler) Toggle(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ToggleModuleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if _, ok := entity.KnownModules[in.Code]; !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_MODULE", Message: "código de módulo desconhecido: " + in.Code})
	}
	if entity.IsCoreModule(in.Code) && !in.Active {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CORE_MODULE", Message: "módulos do núcleo não podem ser desativados"})
	}
	store, err := h.manager.ForCompany(c.Context(), companyID)
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "MODULE_CHECK_FAILED", Message: "não foi possível carregar os módulos da empresa"})
	}
	store.Toggle(c.Context(), in.Code, in.Active)
	return c.JSON(dto.ActiveModulesResponse{Modules: store.ActiveModules()})
}

// PermissionHandler trata as permissões de módulo por cargo (protegido, só dono).
type PermissionHandler struct {
	svc *entitlement.PermissionService
}

// NewPermissionHandler constrói o handler.
func NewPermissionHandler(svc *entitlement.PermissionService) *PermissionHandler {
	return &PermissionHandler{svc: svc}
}

// List GET /api/roles/:id/modules
func (h *PermissionHandler) List(c *fiber.Ctx) error {
	roleID := c.Params("id")
	codes, err := h.svc.GetRolePermissions(c.Context(), roleID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cargo obrigatório"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.RolePermissionsResponse{RoleID: roleID, Modules: codes})
}

// Toggle POST /api/roles/:id/modules
func (h *PermissionHandler) Toggle(c *fiber.Ctx) error {
	roleID := c.Params("id")
	var in dto.TogglePermissionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.svc.ToggleRolePermission(c.Context(), roleID, in.Code, in.Active); err != nil {
		if errors.Is(err, domain.ErrModuleUnknown) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_MODULE", Message: "código de módulo desconhecido: " + in.Code})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cargo obrigatório"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	codes, err := h.svc.GetRolePermissions(c.Context(), roleID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.RolePermissionsResponse{RoleID: roleID, Modules: codes})
}
