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

	"github.com/0DarkSoul/sistema-oficina/internal/application/analytics"
	"github.com/0DarkSoul/sistema-oficina/internal/application/appsettings"
	"github.com/0DarkSoul/sistema-oficina/internal/application/auth"
	"github.com/0DarkSoul/sistema-oficina/internal/application/documents"
	"github.com/0DarkSoul/sistema-oficina/internal/application/registry"
	"github.com/0DarkSoul/sistema-oficina/internal/application/subscription"
	"github.com/0DarkSoul/sistema-oficina/internal/application/workorder"
	"github.com/0DarkSoul/sistema-oficina/internal/infrastructure/payments"
	infrapdf "github.com/0DarkSoul/sistema-oficina/internal/infrastructure/pdf"
	"github.com/0DarkSoul/sistema-oficina/internal/infrastructure/postgres"
	httpRouter "github.com/0DarkSoul/sistema-oficina/internal/interfaces/http"
	"github.com/0DarkSoul/sistema-oficina/pkg/config"
	"github.com/0DarkSoul/sistema-oficina/pkg/logger"
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
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	vehicleRepo := postgres.NewVehicleRepository(pool)
	orderRepo := postgres.NewWorkOrderRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	customerUC := registry.NewCustomerUseCase(customerRepo)
	vehicleUC := registry.NewVehicleUseCase(vehicleRepo, customerRepo)
	workOrderUC := workorder.NewUseCase(orderRepo, customerRepo, vehicleRepo)
	settingsUC := appsettings.NewUseCase(settingsRepo)
	analyticsUC := analytics.NewUseCase(orderRepo, customerRepo, vehicleRepo, settingsRepo)

	// Gateway de pagamento: sem token a renovação fica restrita a códigos de
	// licença, a API sobe mesmo assim.
	var gateway subscription.PaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payment.AccessToken, cfg.Payment.Mock, log)
	if err != nil {
		log.Warn().Err(err).Msg("gateway de pagamento desabilitado")
	} else {
		gateway = mpGateway
	}
	subscriptionUC := subscription.NewUseCase(userRepo, transactionRepo, gateway)

	// PDF: via impressa da OS e relatório financeiro
	documentsUC := documents.NewUseCase(
		orderRepo, customerRepo, vehicleRepo,
		settingsUC, analyticsUC,
		infrapdf.NewMarotoWorkOrderGenerator(),
		infrapdf.NewMarotoReportGenerator(),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Sistema Oficina API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		CustomerUC:     customerUC,
		VehicleUC:      vehicleUC,
		WorkOrderUC:    workOrderUC,
		AnalyticsUC:    analyticsUC,
		SettingsUC:     settingsUC,
		SubscriptionUC: subscriptionUC,
		DocumentsUC:    documentsUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
