package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/0DarkSoul/sistema-oficina/internal/application/analytics"
	"github.com/0DarkSoul/sistema-oficina/internal/application/appsettings"
	"github.com/0DarkSoul/sistema-oficina/internal/application/auth"
	"github.com/0DarkSoul/sistema-oficina/internal/application/documents"
	"github.com/0DarkSoul/sistema-oficina/internal/application/registry"
	"github.com/0DarkSoul/sistema-oficina/internal/application/subscription"
	"github.com/0DarkSoul/sistema-oficina/internal/application/workorder"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC         *auth.UseCase
	CustomerUC     *registry.CustomerUseCase
	VehicleUC      *registry.VehicleUseCase
	WorkOrderUC    *workorder.UseCase
	AnalyticsUC    *analytics.UseCase
	SettingsUC     *appsettings.UseCase
	SubscriptionUC *subscription.UseCase
	DocumentsUC    *documents.UseCase
	JWTSecret      string
}

// Router registra as rotas da API. Auth é público; perfil e assinatura exigem
// token; o restante exige também assinatura vigente.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas autenticadas (Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/me", authHandler.Me)

	// Assinatura: fora do guard para o usuário expirado conseguir renovar
	subs := protected.Group("/subscription")
	subscriptionHandler := NewSubscriptionHandler(deps.SubscriptionUC)
	subs.Get("/status", subscriptionHandler.Status)
	subs.Post("/redeem", subscriptionHandler.Redeem)
	subs.Post("/payment", subscriptionHandler.Pay)

	// Rotas da oficina: exigem assinatura vigente (trial ou plano ativo)
	workshop := protected.Group("/", SubscriptionMiddleware(deps.SubscriptionUC))

	customers := workshop.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Save)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.Get)

	vehicles := workshop.Group("/vehicles")
	vehicleHandler := NewVehicleHandler(deps.VehicleUC)
	vehicles.Post("/", vehicleHandler.Save)
	vehicles.Get("/", vehicleHandler.List)

	orders := workshop.Group("/work-orders")
	workOrderHandler := NewWorkOrderHandler(deps.WorkOrderUC, deps.DocumentsUC)
	orders.Get("/catalog", workOrderHandler.Catalog)
	orders.Post("/", workOrderHandler.Create)
	orders.Get("/", workOrderHandler.List)
	orders.Get("/:id", workOrderHandler.Get)
	orders.Put("/:id", workOrderHandler.Update)
	orders.Post("/:id/services", workOrderHandler.AddService)
	orders.Put("/:id/services/:index", workOrderHandler.UpdateService)
	orders.Delete("/:id/services/:index", workOrderHandler.RemoveService)
	orders.Put("/:id/discount", workOrderHandler.SetDiscount)
	orders.Get("/:id/pdf", workOrderHandler.DownloadPDF)

	dashboardHandler := NewDashboardHandler(deps.AnalyticsUC, deps.DocumentsUC)
	workshop.Get("/dashboard", dashboardHandler.Dashboard)
	reports := workshop.Group("/reports")
	reports.Get("/financial", dashboardHandler.Report)
	reports.Get("/financial/pdf", dashboardHandler.ReportPDF)

	settings := workshop.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", settingsHandler.Save)
}
