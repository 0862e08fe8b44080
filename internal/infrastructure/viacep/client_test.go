package viacep

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uniqerp/uniq-api/internal/domain"
)

func TestLookup_KnownCEP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ws/01001000/json/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"cep": "01001-000",
			"logradouro": "Praça da Sé",
			"bairro": "Sé",
			"localidade": "São Paulo",
			"uf": "SP",
			"ibge": "3550308"
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	// A máscara é aceita na entrada; só os dígitos vão para a URL.
	res, err := c.Lookup(context.Background(), "01001-000")
	require.NoError(t, err)
	assert.Equal(t, "01001-000", res.CEP)
	assert.Equal(t, "Praça da Sé", res.Logradouro)
	assert.Equal(t, "Sé", res.Bairro)
	assert.Equal(t, "São Paulo", res.Localidade)
	assert.Equal(t, "SP", res.UF)
}

func TestLookup_UnknownCEPReturnsErroFlag(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// O ViaCEP sinaliza CEP inexistente com 200 + {"erro": true}.
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"erro": true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Lookup(context.Background(), "99999999")
	assert.ErrorIs(t, err, domain.ErrCEPNotFound)
}

func TestLookup_MalformedCEPFailsBeforeRequest(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	for _, cep := range []string{"", "123", "0100100", "010010001"} {
		_, err := c.Lookup(context.Background(), cep)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cep %q", cep)
	}
	assert.False(t, called)
}

func TestLookup_UpstreamBadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Lookup(context.Background(), "01001000")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLookup_UpstreamServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Lookup(context.Background(), "01001000")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrCEPNotFound)
}
