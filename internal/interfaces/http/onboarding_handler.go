package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/uniqerp/uniq-api/internal/application/dto"
	"github.com/uniqerp/uniq-api/internal/application/onboarding"
	"github.com/uniqerp/uniq-api/internal/domain"
	"github.com/uniqerp/uniq-api/pkg/jwt"
)

// OnboardingHandler trata a criação de empresa (cadastro multi-etapas, público).
type OnboardingHandler struct {
	uc     *onboarding.UseCase
	secret string
	issuer string
	expMin int
}

// NewOnboardingHandler constrói o handler.
func NewOnboardingHandler(uc *onboarding.UseCase, secret, issuer string, expMin int) *OnboardingHandler {
	return &OnboardingHandler{uc: uc, secret: secret, issuer: issuer, expMin: expMin}
}

// Create POST /api/onboarding
//
// Desfechos:
//   - 201 → empresa provisionada (módulos podem ter ficado incompletos, ver failed_modules)
//   - 409 → e-mail já cadastrado
//   - 422 → validação de campos
//   - 500 PROVISIONING_FAILED → compensação ok; o cliente pode tentar de novo do zero
//   - 500 NEEDS_SUPPORT → conta criada sem empresa e a limpeza falhou
func (h *OnboardingHandler) Create(c *fiber.Ctx) error {
	var in dto.OnboardingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if fields := onboarding.Validate(in); len(fields) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{Code: "VALIDATION", Fields: fields})
	}

	result := h.uc.Run(c.Context(), in)
	switch result.Outcome {
	case onboarding.Succeeded:
		token, err := jwt.Generate(h.secret, result.AccountID, result.CompanyID, "owner", h.issuer, h.expMin)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(dto.OnboardingResponse{
			Token:         token,
			AccountID:     result.AccountID,
			CompanyID:     result.CompanyID,
			Slug:          result.Slug,
			FailedModules: result.FailedModules,
		})
	case onboarding.FailedTerminal:
		if errors.Is(result.Err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "já existe uma conta com este e-mail"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "ACCOUNT_CREATE_FAILED", Message: "não foi possível criar a conta"})
	case onboarding.FailedNeedsSupport:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "NEEDS_SUPPORT", Message: "cadastro incompleto; entre em contato com o suporte"})
	default: // FailedRetryable
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PROVISIONING_FAILED", Message: "não foi possível criar a empresa; tente novamente"})
	}
}
