package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/uniqerp/uniq-api/internal/application/auth"
	"github.com/uniqerp/uniq-api/internal/application/entitlement"
	"github.com/uniqerp/uniq-api/internal/application/insights"
	"github.com/uniqerp/uniq-api/internal/application/onboarding"
	"github.com/uniqerp/uniq-api/internal/application/sales"
	"github.com/uniqerp/uniq-api/internal/application/usecase"
	"github.com/uniqerp/uniq-api/internal/domain/entity"
	"github.com/uniqerp/uniq-api/internal/infrastructure/viacep"
	"github.com/uniqerp/uniq-api/internal/infrastructure/webhook"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	OnboardingUC   *onboarding.UseCase
	ClientUC       *usecase.ClientUseCase
	CollaboratorUC *usecase.CollaboratorUseCase
	CatalogUC      *usecase.CatalogUseCase
	SaleUC         *sales.UseCase
	Advisor        *insights.Advisor
	Entitlements   *entitlement.Manager
	Permissions    *entitlement.PermissionService
	ViaCEP         *viacep.Client
	Forwarder      *webhook.Forwarder
	JWTSecret      string
	JWTIssuer      string
	JWTExpMinutes  int
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público; o cadastro acontece só pelo onboarding)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Onboarding (público)
	onboardingHandler := NewOnboardingHandler(deps.OnboardingUC, deps.JWTSecret, deps.JWTIssuer, deps.JWTExpMinutes)
	api.Post("/onboarding", onboardingHandler.Create)

	// Consulta de CEP (público; o formulário do onboarding usa antes do login)
	cepHandler := NewCEPHandler(deps.ViaCEP)
	api.Get("/cep/:cep", cepHandler.Lookup)

	// Proxy de webhooks (público, com CORS aberto: chamado direto do navegador)
	webhookHandler := NewWebhookHandler(deps.Forwarder)
	webhooks := api.Group("/webhooks", cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "POST,OPTIONS",
		AllowHeaders: "Content-Type",
	}))
	webhooks.Post("/forward", webhookHandler.Forward)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo e ativação de módulos
	moduleHandler := NewModuleHandler(deps.CatalogUC, deps.Entitlements)
	modules := protected.Group("/modules")
	modules.Get("/", moduleHandler.Catalog)
	modules.Get("/active", moduleHandler.Active)
	modules.Post("/toggle", moduleHandler.Toggle)

	// Permissões de módulo por cargo (somente dono)
	permissionHandler := NewPermissionHandler(deps.Permissions)
	roles := protected.Group("/roles", RequireOwner())
	roles.Get("/:id/modules", permissionHandler.List)
	roles.Post("/:id/modules", permissionHandler.Toggle)

	// Clientes do CRM (exige módulo crm ativo)
	clientHandler := NewClientHandler(deps.ClientUC)
	clients := protected.Group("/clients", RequireModule(entity.ModuleCRM, deps.Entitlements))
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Deactivate)

	// Colaboradores (exige módulo team ativo)
	collaboratorHandler := NewCollaboratorHandler(deps.CollaboratorUC)
	collaborators := protected.Group("/collaborators", RequireModule(entity.ModuleTeam, deps.Entitlements))
	collaborators.Post("/", collaboratorHandler.Create)
	collaborators.Get("/", collaboratorHandler.List)
	collaborators.Put("/:id", collaboratorHandler.Update)

	// Ponto de venda (exige módulo storefront ativo)
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup := protected.Group("/sales", RequireModule(entity.ModuleStorefront, deps.Entitlements))
	salesGroup.Post("/", saleHandler.Register)
	salesGroup.Get("/:id/receipt", saleHandler.Receipt)

	// Advisor de CRM sob demanda (exige módulo crm ativo)
	insightHandler := NewInsightHandler(deps.Advisor)
	protected.Post("/insights/run", RequireModule(entity.ModuleCRM, deps.Entitlements), insightHandler.Run)
}
