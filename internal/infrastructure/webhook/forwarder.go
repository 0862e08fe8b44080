// Package webhook implementa o proxy de webhooks: o backend encaminha o corpo
// recebido para uma URL fixa de automação (n8n), escondendo a URL do cliente.
package webhook

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrUpstream indica que a entrega ao webhook upstream falhou (rede ou status
// não-2xx). O handler traduz para 502.
var ErrUpstream = errors.New("falha ao entregar o webhook upstream")

// Forwarder encaminha payloads para a URL upstream configurada.
type Forwarder struct {
	url  string
	http *http.Client
}

// NewForwarder constrói o forwarder. url vazia desabilita o encaminhamento.
func NewForwarder(url string) *Forwarder {
	return &Forwarder{
		url:  url,
		http: &http.Client{Timeout: 15 * time.Second},
	}
}

// Enabled informa se há URL upstream configurada.
func (f *Forwarder) Enabled() bool {
	return f.url != ""
}

// Forward entrega o corpo como JSON ao upstream e devolve a resposta dele.
// Qualquer falha de rede ou status não-2xx vira ErrUpstream.
func (f *Forwarder) Forward(ctx context.Context, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("webhook: montar requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: ler resposta: %v", ErrUpstream, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}
	return payload, nil
}
