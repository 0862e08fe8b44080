package http

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/uniqerp/uniq-api/internal/application/dto"
	"github.com/uniqerp/uniq-api/internal/infrastructure/webhook"
)

// WebhookHandler trata o proxy de webhooks: recebe o payload do cliente e o
// entrega à automação upstream sem expor a URL dela.
type WebhookHandler struct {
	forwarder *webhook.Forwarder
}

// NewWebhookHandler constrói o handler.
func NewWebhookHandler(forwarder *webhook.Forwarder) *WebhookHandler {
	return &WebhookHandler{forwarder: forwarder}
}

// forwardRequest corpo aceito no proxy: o campo body é repassado como está.
type forwardRequest struct {
	Body json.RawMessage `json:"body"`
}

// forwardResponse resposta do proxy com a resposta crua do upstream.
type forwardResponse struct {
	Success     bool            `json:"success"`
	N8NResponse json.RawMessage `json:"n8n_response,omitempty"`
}

// Forward POST /api/webhooks/forward
//
//   - 200 → {success: true, n8n_response: ...}
//   - 400 → corpo inválido ou sem campo body
//   - 502 → upstream indisponível ou respondeu não-2xx
//   - 503 → encaminhamento desabilitado (sem URL configurada)
func (h *WebhookHandler) Forward(c *fiber.Ctx) error {
	if !h.forwarder.Enabled() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "FORWARD_DISABLED", Message: "encaminhamento de webhook não configurado"})
	}
	var in forwardRequest
	if err := json.Unmarshal(c.Body(), &in); err != nil || len(in.Body) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo precisa ser JSON com o campo body"})
	}

	upstream, err := h.forwarder.Forward(c.Context(), in.Body)
	if err != nil {
		if errors.Is(err, webhook.ErrUpstream) {
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM_FAILED", Message: "falha ao entregar o webhook"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	// A resposta do upstream pode não ser JSON; nesse caso vai como string.
	resp := forwardResponse{Success: true}
	if json.Valid(upstream) {
		resp.N8NResponse = upstream
	} else if len(upstream) > 0 {
		quoted, _ := json.Marshal(string(upstream))
		resp.N8NResponse = quoted
	}
	return c.JSON(resp)
}
