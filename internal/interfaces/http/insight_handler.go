package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/uniqerp/uniq-api/internal/application/dto"
	"github.com/uniqerp/uniq-api/internal/application/insights"
)

// InsightHandler dispara o advisor de CRM sob demanda (protegido; além do
// agendamento via cron).
type InsightHandler struct {
	advisor *insights.Advisor
}

// NewInsightHandler constrói o handler.
func NewInsightHandler(advisor *insights.Advisor) *InsightHandler {
	return &InsightHandler{advisor: advisor}
}

// Run POST /api/insights/run — executa o advisor para a empresa do token.
func (h *InsightHandler) Run(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	res, err := h.advisor.Generate(c.Context(), companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(res)
}
