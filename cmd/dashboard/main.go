package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/supplychain-dashboard/internal/api/http"
	"github.com/spec-kit/supplychain-dashboard/internal/api/http/handlers"
	"github.com/spec-kit/supplychain-dashboard/internal/auth"
	"github.com/spec-kit/supplychain-dashboard/internal/backend"
	"github.com/spec-kit/supplychain-dashboard/internal/config"
	"github.com/spec-kit/supplychain-dashboard/internal/events"
	"github.com/spec-kit/supplychain-dashboard/internal/observability"
	"github.com/spec-kit/supplychain-dashboard/internal/persistence"
	"github.com/spec-kit/supplychain-dashboard/internal/service"
	"github.com/spec-kit/supplychain-dashboard/internal/session"
	"github.com/spec-kit/supplychain-dashboard/internal/worker"
)

const sessionPurgeInterval = 15 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.App, cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, closeStore := openSessionStore(ctx, cfg, logger)
	defer closeStore()

	cookieKey := cfg.Session.CookieKey
	if cookieKey == "" {
		cookieKey = encryptcookie.GenerateKey()
		logger.Warn("SESSION_COOKIE_KEY not set; using a random key, sessions will not survive a restart")
	}

	metrics := observability.NewMetrics()
	client := backend.NewClient(cfg.Backend.BaseURL,
		backend.WithTimeout(cfg.Backend.Timeout()),
		backend.WithLogger(logger),
		backend.WithMetrics(metrics),
	)

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartNotificationWorker(service.NewNotificationService(dispatcher, logger, metrics))

	authService := service.NewAuthService(service.AuthDependencies{
		API:        client,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	products := service.NewProductService(client, dispatcher)
	shipments := service.NewShipmentService(client, dispatcher)
	base := handlers.NewBase(authService, logger)

	app, err := httptransport.NewServer(httptransport.ServerConfig{
		AppName:        cfg.App.Name,
		Logger:         logger,
		Metrics:        metrics,
		RequestTimeout: cfg.App.RequestTimeout(),
		CookieKey:      cookieKey,
		Sessions: session.NewManager(store, session.ManagerConfig{
			CookieName: cfg.Session.CookieName,
			TTL:        cfg.Session.TTL(),
			Secure:     cfg.Session.CookieSecure,
		}, logger),
		Routes: httptransport.RouteConfig{
			Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, map[string]handlers.Pinger{
				"session_store": store,
				"backend":       client,
			}, metrics),
			Auth:     handlers.NewAuthHandler(base, authService),
			Admin:    handlers.NewAdminHandler(base, products, shipments),
			Supplier: handlers.NewSupplierHandler(base, products),
			Consumer: handlers.NewConsumerHandler(base, handlers.ConsumerDependencies{
				Products:     products,
				Checkout:     service.NewCheckoutService(client, dispatcher, logger),
				Shipments:    shipments,
				Verification: service.NewVerificationService(client),
			}),
			Logistics: handlers.NewLogisticsHandler(base, shipments),
			Guard:     auth.NewGuard(auth.DefaultLoginPath),
		},
	})
	if err != nil {
		logger.Fatal("failed to build server", zap.Error(err))
	}

	go func() {
		logger.Info("dashboard listening",
			zap.String("addr", cfg.App.Addr()),
			zap.String("backend", client.BaseURL()),
			zap.String("session_store", cfg.Session.Store),
		)
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	cancel()
	_ = app.Shutdown()
}

// openSessionStore connects the configured session backend. The returned
// func releases it.
func openSessionStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (session.Store, func()) {
	switch cfg.Session.Store {
	case config.StoreRedis:
		rdb := persistence.NewRedis(ctx, cfg.Redis, logger)
		return session.NewRedisStore(rdb.Client), rdb.Close

	case config.StorePostgres:
		pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			logger.Fatal("failed to connect postgres", zap.Error(err))
		}
		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pg.Pool, logger); err != nil {
				logger.Fatal("failed to run migrations", zap.Error(err))
			}
		}
		store := session.NewPostgresStore(pg.Pool)
		purged := worker.StartSessionPurger(ctx, store, sessionPurgeInterval, logger)
		return store, func() {
			<-purged
			pg.Close()
		}

	default:
		logger.Warn("using in-memory session store; sessions are lost on restart")
		return session.NewMemoryStore(), func() {}
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
