package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/uniqerp/uniq-api/internal/application/dto"
	"github.com/uniqerp/uniq-api/internal/application/entitlement"
)

// entitlementSource é o contrato mínimo do middleware para obter o store de
// entitlement da empresa. Implementado por *entitlement.Manager; a interface
// evita acoplamento direto no router de teste.
type entitlementSource interface {
	ForCompany(ctx context.Context, companyID string) (*entitlement.Store, error)
}

// RequireModule devolve um middleware Fiber que verifica se a empresa do token
// tem o módulo ativo. Usar DEPOIS de AuthMiddleware (precisa de LocalCompanyID).
//
// Comportamento:
//   - 401 Unauthorized → sem company_id no token.
//   - 503 Service Unavailable → falha de infraestrutura na carga do entitlement.
//   - 403 Forbidden → módulo não contratado.
func RequireModule(code string, source entitlementSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		companyID := GetCompanyID(c)
		if companyID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "company_id ausente no token",
			})
		}

		store, err := source.ForCompany(c.Context(), companyID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "MODULE_CHECK_FAILED",
				Message: "não foi possível verificar o módulo, tente mais tarde",
			})
		}

		if !store.IsModuleActive(code) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "MODULE_DISABLED",
				Message: "o módulo '" + code + "' não está ativo para esta empresa",
			})
		}

		return c.Next()
	}
}
