// Package viacep implementa o cliente da API pública ViaCEP para consulta de
// endereço por CEP.
package viacep

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/uniqerp/uniq-api/internal/application/dto"
	"github.com/uniqerp/uniq-api/internal/domain"
	"github.com/uniqerp/uniq-api/pkg/br"
)

// Client consulta o ViaCEP. Um único http.Client compartilhado com timeout.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient constrói o cliente. baseURL sem barra final (ex. https://viacep.com.br).
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// viacepPayload espelha a resposta do ViaCEP. Erro vem como {"erro": true}
// com status 200, não como status HTTP.
type viacepPayload struct {
	CEP        string `json:"cep"`
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	IBGE       string `json:"ibge"`
	Erro       bool   `json:"erro"`
}

// Lookup consulta um CEP. CEP malformado vira domain.ErrInvalidInput; CEP
// inexistente vira domain.ErrCEPNotFound.
func (c *Client) Lookup(ctx context.Context, cep string) (*dto.CEPResponse, error) {
	digits := br.StripDigits(cep)
	if len(digits) != 8 {
		return nil, domain.ErrInvalidInput
	}

	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, digits)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("viacep: montar requisição: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("viacep: consultar CEP: %w", err)
	}
	defer resp.Body.Close()

	// O ViaCEP devolve 400 para CEP malformado que passou pela validação local.
	if resp.StatusCode == http.StatusBadRequest {
		return nil, domain.ErrInvalidInput
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("viacep: status inesperado %d", resp.StatusCode)
	}

	var payload viacepPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("viacep: decodificar resposta: %w", err)
	}
	if payload.Erro {
		return nil, domain.ErrCEPNotFound
	}

	return &dto.CEPResponse{
		CEP:        payload.CEP,
		Logradouro: payload.Logradouro,
		Bairro:     payload.Bairro,
		Localidade: payload.Localidade,
		UF:         payload.UF,
		IBGE:       payload.IBGE,
	}, nil
}
