package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"

	"github.com/uniqerp/uniq-api/internal/application/auth"
	"github.com/uniqerp/uniq-api/internal/application/entitlement"
	"github.com/uniqerp/uniq-api/internal/application/insights"
	"github.com/uniqerp/uniq-api/internal/application/onboarding"
	"github.com/uniqerp/uniq-api/internal/application/sales"
	"github.com/uniqerp/uniq-api/internal/application/usecase"
	infrapdf "github.com/uniqerp/uniq-api/internal/infrastructure/pdf"
	"github.com/uniqerp/uniq-api/internal/infrastructure/postgres"
	"github.com/uniqerp/uniq-api/internal/infrastructure/viacep"
	"github.com/uniqerp/uniq-api/internal/infrastructure/webhook"
	httpRouter "github.com/uniqerp/uniq-api/internal/interfaces/http"
	"github.com/uniqerp/uniq-api/pkg/config"
	"github.com/uniqerp/uniq-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com o PostgreSQL")
	}
	defer pool.Close()

	accountRepo := postgres.NewAccountRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	collaboratorRepo := postgres.NewCollaboratorRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	moduleRepo := postgres.NewModuleRepository(pool)
	permissionRepo := postgres.NewRolePermissionRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	crmRepo := postgres.NewCRMRepository(pool)
	insightRepo := postgres.NewInsightRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	entitlements := entitlement.NewManager(moduleRepo, log)
	permissions := entitlement.NewPermissionService(permissionRepo)

	authUC := auth.NewAuthUseCase(accountRepo, collaboratorRepo, roleRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	onboardingUC := onboarding.NewUseCase(accountRepo, txRunner, moduleRepo, log)
	clientUC := usecase.NewClientUseCase(clientRepo)
	collaboratorUC := usecase.NewCollaboratorUseCase(collaboratorRepo, roleRepo)
	catalogUC := usecase.NewCatalogUseCase(moduleRepo)
	saleUC := sales.NewUseCase(txRunner, saleRepo, clientRepo, companyRepo, infrapdf.NewReceiptGenerator())
	advisor := insights.NewAdvisor(crmRepo, insightRepo, companyRepo, log)

	viacepClient := viacep.NewClient(cfg.ViaCEP.BaseURL)
	forwarder := webhook.NewForwarder(cfg.Webhook.ForwardURL)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "UNIQ ERP API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		OnboardingUC:   onboardingUC,
		ClientUC:       clientUC,
		CollaboratorUC: collaboratorUC,
		CatalogUC:      catalogUC,
		SaleUC:         saleUC,
		Advisor:        advisor,
		Entitlements:   entitlements,
		Permissions:    permissions,
		ViaCEP:         viacepClient,
		Forwarder:      forwarder,
		JWTSecret:      cfg.JWT.Secret,
		JWTIssuer:      cfg.JWT.Issuer,
		JWTExpMinutes:  cfg.JWT.Expiration,
	})

	// Advisor agendado: varre todas as empresas no horário configurado.
	var scheduler *cron.Cron
	if cfg.Advisor.CronSpec != "" {
		scheduler = cron.New()
		if _, err := scheduler.AddFunc(cfg.Advisor.CronSpec, func() {
			advisor.GenerateAll(context.Background())
		}); err != nil {
			log.Fatal().Err(err).Str("spec", cfg.Advisor.CronSpec).Msg("expressão cron do advisor inválida")
		}
		scheduler.Start()
		log.Info().Str("spec", cfg.Advisor.CronSpec).Msg("advisor agendado")
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	if scheduler != nil {
		scheduler.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
