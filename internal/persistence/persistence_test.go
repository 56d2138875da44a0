package persistence

import (
	"context"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/supplychain-dashboard/internal/config"
)

func TestMigrationFilesAreEmbeddedInOrder(t *testing.T) {
	names, err := migrationFiles()
	if err != nil {
		t.Fatalf("list migrations: %v", err)
	}
	if len(names) == 0 || names[0] != "001_dashboard_sessions.sql" {
		t.Fatalf("unexpected migrations %v", names)
	}
	body, err := migrationFS.ReadFile("migrations/" + names[0])
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(body), "dashboard_sessions") {
		t.Fatalf("session table migration missing")
	}
}

func TestRunMigrationsWithoutPoolIsNoop(t *testing.T) {
	if err := RunMigrations(context.Background(), nil, zap.NewNop()); err != nil {
		t.Fatalf("expected no-op, got %v", err)
	}
}

func TestPoolConfigAppliesLimits(t *testing.T) {
	if _, err := poolConfig(config.PostgresConfig{}); err == nil {
		t.Fatalf("expected error for empty dsn")
	}
	cfg, err := poolConfig(config.PostgresConfig{DSN: "postgres://u:p@localhost:5432/dashboard", MaxConns: 7, MinConns: 1})
	if err != nil {
		t.Fatalf("pool config: %v", err)
	}
	if cfg.MaxConns != 7 || cfg.MinConns != 1 {
		t.Fatalf("limits not applied: %d %d", cfg.MaxConns, cfg.MinConns)
	}
}

func TestNewRedisPing(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	defer mr.Close()

	r := NewRedis(context.Background(), config.RedisConfig{Addr: mr.Addr()}, zap.NewNop())
	defer r.Close()
	if err := r.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}

	var missing *Redis
	if missing.Ping(context.Background()) == nil {
		t.Fatalf("nil client must fail ping")
	}
}
