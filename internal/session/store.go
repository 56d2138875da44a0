package session

import (
	"context"
	"encoding/hex"
	"errors"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/spec-kit/supplychain-dashboard/internal/cart"
)

// ErrNotFound is returned by stores for unknown or expired sessions.
var ErrNotFound = errors.New("session not found")

const keyPrefix = "dashboard:session:"

// Record is the persisted state of one browser session.
type Record struct {
	Token   string    `json:"token,omitempty"`
	Cart    cart.Cart `json:"cart"`
	Flashes []Flash   `json:"flashes,omitempty"`
}

func (r Record) empty() bool {
	return r.Token == "" && r.Cart.Empty() && len(r.Flashes) == 0
}

func (r Record) clone() Record {
	out := Record{Token: r.Token, Cart: r.Cart.Clone()}
	if len(r.Flashes) > 0 {
		out.Flashes = append([]Flash(nil), r.Flashes...)
	}
	return out
}

// Store persists session records by key.
type Store interface {
	Load(ctx context.Context, key string) (Record, error)
	Save(ctx context.Context, key string, rec Record, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// StoreKey derives the store key for a cookie id. Only the digest is stored,
// so reading the store does not yield usable cookie values.
func StoreKey(id string) string {
	sum := blake2b.Sum256([]byte(id))
	return keyPrefix + hex.EncodeToString(sum[:])
}
