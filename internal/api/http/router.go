package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/supplychain-dashboard/internal/api/http/handlers"
	"github.com/spec-kit/supplychain-dashboard/internal/auth"
	"github.com/spec-kit/supplychain-dashboard/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	Admin     *handlers.AdminHandler
	Supplier  *handlers.SupplierHandler
	Consumer  *handlers.ConsumerHandler
	Logistics *handlers.LogisticsHandler
	Guard     *auth.Guard
}

// RegisterHealthRoutes wires probes. They run before the session middleware.
func RegisterHealthRoutes(app *fiber.App, h *handlers.HealthHandler) {
	app.Get("/health/live", h.Live)
	app.Get("/health/ready", h.Ready)
	app.Get("/health/metrics", h.Metrics)
}

// RegisterRoutes wires the dashboard pages. Every role view is behind the guard.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Auth.LoginPage)
	app.Post("/", cfg.Auth.Login)
	app.Get("/signup", cfg.Auth.SignupPage)
	app.Post("/signup", cfg.Auth.Signup)
	app.Post("/logout", cfg.Auth.Logout)

	admin := app.Group("/admin", cfg.Guard.RequireRole(domain.RoleAdmin))
	admin.Get("/", cfg.Admin.Home)
	admin.Get("/products", cfg.Admin.Products)
	admin.Get("/shipments", cfg.Admin.Shipments)
	admin.Get("/anomalies", cfg.Admin.Anomalies)

	supplier := app.Group("/supplier", cfg.Guard.RequireRole(domain.RoleSupplier))
	supplier.Get("/", cfg.Supplier.Home)
	supplier.Get("/register-product", cfg.Supplier.RegisterPage)
	supplier.Post("/register-product", cfg.Supplier.Register)

	consumer := app.Group("/consumer", cfg.Guard.RequireRole(domain.RoleConsumer))
	consumer.Get("/", cfg.Consumer.Buy)
	consumer.Post("/cart", cfg.Consumer.AddToCart)
	consumer.Post("/cart/remove", cfg.Consumer.RemoveFromCart)
	consumer.Post("/checkout", cfg.Consumer.Checkout)
	consumer.Get("/verify", cfg.Consumer.VerifyPage)
	consumer.Post("/verify", cfg.Consumer.Verify)
	consumer.Get("/orders", cfg.Consumer.Orders)
	consumer.Get("/orders/:id/ledger", cfg.Consumer.Ledger)

	logistic := app.Group("/logistic", cfg.Guard.RequireRole(domain.RoleLogistics))
	logistic.Get("/", cfg.Logistics.Dashboard)
	logistic.Post("/orders/:id/advance", cfg.Logistics.Advance)
}
