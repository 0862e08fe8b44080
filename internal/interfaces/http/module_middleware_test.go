package http_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniqerp/uniq-api/internal/application/entitlement"
	"github.com/uniqerp/uniq-api/internal/domain/entity"
	apphttp "github.com/uniqerp/uniq-api/internal/interfaces/http"
	"github.com/uniqerp/uniq-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake do repositório de módulos
// ──────────────────────────────────────────────────────────────────────────────

type fakeModuleRepo struct {
	mu      sync.Mutex
	active  map[string][]string // companyID → códigos ativos
	listErr error
}

func (f *fakeModuleRepo) ListCatalog(ctx context.Context) ([]*entity.SystemModule, error) {
	return nil, nil
}

func (f *fakeModuleRepo) ListActiveCodes(ctx context.Context, companyID string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.active[companyID], nil
}

func (f *fakeModuleRepo) Activate(ctx context.Context, companyID, code string) error {
	return nil
}

func (f *fakeModuleRepo) Deactivate(ctx context.Context, companyID, code string) error {
	return nil
}

func buildModuleApp(t *testing.T, repo *fakeModuleRepo, code string) *fiber.App {
	t.Helper()
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	manager := entitlement.NewManager(repo, log)

	app := fiber.New()
	app.Get("/gated",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireModule(code, manager),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)
	return app
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireModule
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireModule_ModuloAtivoPassa(t *testing.T) {
	repo := &fakeModuleRepo{active: map[string][]string{
		testCompanyID: {entity.ModuleCRM},
	}}
	app := buildModuleApp(t, repo, entity.ModuleCRM)

	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	req.Header.Set("Authorization", tokenForRole(t, "owner"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireModule_ModuloInativoRecebe403(t *testing.T) {
	repo := &fakeModuleRepo{active: map[string][]string{}}
	app := buildModuleApp(t, repo, entity.ModuleStorefront)

	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	req.Header.Set("Authorization", tokenForRole(t, "owner"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MODULE_DISABLED")
}

func TestRequireModule_ModuloNucleoSempreAtivo(t *testing.T) {
	// Mesmo sem nenhuma adesão persistida, os módulos núcleo passam.
	repo := &fakeModuleRepo{active: map[string][]string{}}
	app := buildModuleApp(t, repo, entity.ModuleSettings)

	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	req.Header.Set("Authorization", tokenForRole(t, "vendedor"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireModule_FalhaDeCargaRecebe503(t *testing.T) {
	repo := &fakeModuleRepo{listErr: errors.New("conexão recusada")}
	app := buildModuleApp(t, repo, entity.ModuleCRM)

	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	req.Header.Set("Authorization", tokenForRole(t, "owner"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MODULE_CHECK_FAILED")
}

func TestRequireModule_FalhaNaoFicaEmCache(t *testing.T) {
	// Depois de uma falha de carga, a próxima requisição tenta de novo e passa.
	repo := &fakeModuleRepo{
		active:  map[string][]string{testCompanyID: {entity.ModuleCRM}},
		listErr: errors.New("timeout"),
	}
	app := buildModuleApp(t, repo, entity.ModuleCRM)
	auth := tokenForRole(t, "owner")

	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	req.Header.Set("Authorization", auth)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	repo.mu.Lock()
	repo.listErr = nil
	repo.mu.Unlock()

	req = httptest.NewRequest(http.MethodGet, "/gated", nil)
	req.Header.Set("Authorization", auth)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireModule_SemTokenRecebe401(t *testing.T) {
	repo := &fakeModuleRepo{}
	app := buildModuleApp(t, repo, entity.ModuleCRM)

	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
