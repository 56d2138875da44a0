package session

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const localsKey = "session"

// Manager binds browser cookies to stored sessions.
type Manager struct {
	store      Store
	cookieName string
	ttl        time.Duration
	secure     bool
	logger     *zap.Logger
}

// ManagerConfig configures the session cookie.
type ManagerConfig struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// NewManager builds a manager over store.
func NewManager(store Store, cfg ManagerConfig, logger *zap.Logger) *Manager {
	if cfg.CookieName == "" {
		cfg.CookieName = "token"
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 7 * 24 * time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		store:      store,
		cookieName: cfg.CookieName,
		ttl:        cfg.TTL,
		secure:     cfg.Secure,
		logger:     logger,
	}
}

// Middleware loads the session of the request, exposes it through FromCtx and
// FromContext, and persists it once the handler chain returns.
func (m *Manager) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := m.Load(c.UserContext(), c.Cookies(m.cookieName))
		c.Locals(localsKey, sess)
		c.SetUserContext(WithContext(c.UserContext(), sess))

		err := c.Next()

		if commitErr := m.commit(c, sess); commitErr != nil {
			m.logger.Error("persist session", zap.Error(commitErr))
		}
		return err
	}
}

// Load resolves id to a session, starting a fresh one when id is empty,
// unknown or expired.
func (m *Manager) Load(ctx context.Context, id string) *Session {
	if id == "" {
		return newSession(uuid.NewString(), Record{}, true)
	}
	rec, err := m.store.Load(ctx, StoreKey(id))
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			m.logger.Warn("load session", zap.Error(err))
		}
		return newSession(uuid.NewString(), Record{}, true)
	}
	return newSession(id, rec, false)
}

func (m *Manager) commit(c *fiber.Ctx, sess *Session) error {
	if !sess.dirty {
		return nil
	}
	ctx := c.UserContext()
	key := StoreKey(sess.id)

	if !sess.isNew {
		latest, err := m.store.Load(ctx, key)
		switch {
		case err == nil:
			sess.rec = sess.mergeInto(latest)
		case errors.Is(err, ErrNotFound):
			sess.rec = sess.mergeInto(Record{})
		default:
			m.logger.Warn("reload session before save", zap.Error(err))
		}
	}

	if sess.rec.empty() {
		if sess.isNew {
			return nil
		}
		c.Cookie(&fiber.Cookie{
			Name:     m.cookieName,
			Value:    "",
			Path:     "/",
			Expires:  time.Unix(0, 0),
			HTTPOnly: true,
			Secure:   m.secure,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		return m.store.Delete(ctx, key)
	}

	if err := m.store.Save(ctx, key, sess.rec, m.ttl); err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     m.cookieName,
		Value:    sess.id,
		Path:     "/",
		Expires:  time.Now().Add(m.ttl),
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	sess.committed()
	return nil
}

// FromCtx returns the session loaded by Middleware.
func FromCtx(c *fiber.Ctx) *Session {
	sess, _ := c.Locals(localsKey).(*Session)
	return sess
}
