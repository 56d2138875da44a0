package session

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/spec-kit/supplychain-dashboard/internal/persistence"
)

// newPostgresStoreTest connects to DASHBOARD_TEST_POSTGRES_DSN and applies the
// migrations. Tests are skipped when the variable is unset.
func newPostgresStoreTest(t *testing.T) *PostgresStore {
	t.Helper()
	dsn := os.Getenv("DASHBOARD_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("DASHBOARD_TEST_POSTGRES_DSN not set")
	}
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)
	if err := persistence.RunMigrations(ctx, pool, zap.NewNop()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewPostgresStore(pool)
}

func TestPostgresStoreRoundTripAndPurge(t *testing.T) {
	store := newPostgresStoreTest(t)
	ctx := context.Background()
	key := StoreKey("pg-" + t.Name())
	t.Cleanup(func() { _ = store.Delete(context.Background(), key) })

	if err := store.Save(ctx, key, sampleRecord(), time.Hour); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load(ctx, key)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Token != "tok" || got.Cart.Len() != 1 || len(got.Flashes) != 1 {
		t.Fatalf("unexpected record %+v", got)
	}

	store.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	if _, err := store.Load(ctx, key); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected expired session to be missing, got %v", err)
	}
	n, err := store.PurgeExpired(ctx)
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if n < 1 {
		t.Fatalf("expected the expired row to be purged, got %d", n)
	}
}
