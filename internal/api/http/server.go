package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"go.uber.org/zap"

	"github.com/spec-kit/supplychain-dashboard/internal/api/http/views"
	"github.com/spec-kit/supplychain-dashboard/internal/observability"
	"github.com/spec-kit/supplychain-dashboard/internal/session"
)

// ServerConfig bundles what NewServer needs.
type ServerConfig struct {
	AppName        string
	Logger         *zap.Logger
	Metrics        *observability.Metrics
	RequestTimeout time.Duration
	// CookieKey is a base64 AES key for encrypting cookies; empty disables encryption.
	CookieKey string
	Sessions  *session.Manager
	Routes    RouteConfig
}

// NewServer assembles the Fiber app: views, global middlewares, probes, the
// session layer and the dashboard routes, in that order.
func NewServer(cfg ServerConfig) (*fiber.App, error) {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	engine := views.New(cfg.AppName)
	if err := engine.Load(); err != nil {
		return nil, fmt.Errorf("load views: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               cfg.AppName,
		Views:                 engine,
		ViewsLayout:           views.LayoutName,
		DisableStartupMessage: true,
	})
	RegisterMiddlewares(app, cfg.Logger, cfg.Metrics, cfg.RequestTimeout)
	RegisterHealthRoutes(app, cfg.Routes.Health)

	if cfg.CookieKey != "" {
		app.Use(encryptcookie.New(encryptcookie.Config{Key: cfg.CookieKey}))
	}
	app.Use(cfg.Sessions.Middleware())
	RegisterRoutes(app, cfg.Routes)
	return app, nil
}
