package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/uniqerp/uniq-api/internal/application/dto"
	"github.com/uniqerp/uniq-api/internal/domain"
	"github.com/uniqerp/uniq-api/internal/infrastructure/viacep"
)

// CEPHandler trata a consulta de endereço por CEP (público; usado no onboarding).
type CEPHandler struct {
	client *viacep.Client
}

// NewCEPHandler constrói o handler.
func NewCEPHandler(client *viacep.Client) *CEPHandler {
	return &CEPHandler{client: client}
}

// Lookup GET /api/cep/:cep
func (h *CEPHandler) Lookup(c *fiber.Ctx) error {
	res, err := h.client.Lookup(c.Context(), c.Params("cep"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_CEP", Message: "CEP precisa ter 8 dígitos"})
		}
		if errors.Is(err, domain.ErrCEPNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "CEP_NOT_FOUND", Message: "CEP não encontrado"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "CEP_LOOKUP_FAILED", Message: "consulta de CEP indisponível"})
	}
	return c.JSON(res)
}
