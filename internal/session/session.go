package session

import (
	"context"

	"github.com/spec-kit/supplychain-dashboard/internal/cart"
)

// Level classifies a flash notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Flash is a one-shot notification shown on the next rendered page.
type Flash struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// Session is the state of one browser. A Session belongs to a single request
// and is not safe for concurrent use.
//
// Besides the current record a Session remembers what it was loaded with and
// which changes it made, so that saving can replay those changes on top of
// whatever another request stored in the meantime.
type Session struct {
	id    string
	rec   Record
	isNew bool
	dirty bool

	base         Record
	tokenSet     bool
	cartReset    bool
	flashesTaken bool
	added        []Flash
}

func newSession(id string, rec Record, isNew bool) *Session {
	return &Session{id: id, rec: rec, isNew: isNew, base: rec.clone()}
}

// ID returns the cookie id of the session.
func (s *Session) ID() string {
	return s.id
}

// Get returns the stored access token, if any.
func (s *Session) Get() (string, bool) {
	if s.rec.Token == "" {
		return "", false
	}
	return s.rec.Token, true
}

// Set stores token, replacing whatever token was there before.
func (s *Session) Set(token string) {
	s.rec.Token = token
	s.tokenSet = true
	s.dirty = true
}

// Clear logs the browser out: the token and the cart are dropped. Pending
// notifications survive so the next page can still show them.
func (s *Session) Clear() {
	s.rec.Token = ""
	s.rec.Cart.Clear()
	s.tokenSet = true
	s.cartReset = true
	s.dirty = true
}

// Cart returns a copy of the consumer's cart.
func (s *Session) Cart() cart.Cart {
	return s.rec.Cart.Clone()
}

// SetCart replaces the cart.
func (s *Session) SetCart(c cart.Cart) {
	s.rec.Cart = c.Clone()
	s.dirty = true
}

// Notify queues a notification for the next rendered page.
func (s *Session) Notify(level Level, message string) {
	f := Flash{Level: level, Message: message}
	s.rec.Flashes = append(s.rec.Flashes, f)
	s.added = append(s.added, f)
	s.dirty = true
}

// Flashes returns and consumes the queued notifications.
func (s *Session) Flashes() []Flash {
	if len(s.rec.Flashes) == 0 {
		return nil
	}
	out := s.rec.Flashes
	s.rec.Flashes = nil
	s.flashesTaken = true
	s.added = nil
	s.dirty = true
	return out
}

// mergeInto replays this session's changes onto latest, the record currently
// in the store. Cart edits apply per product; consumed notifications are
// removed and new ones appended.
func (s *Session) mergeInto(latest Record) Record {
	out := latest.clone()
	if s.tokenSet {
		out.Token = s.rec.Token
	}
	if s.cartReset {
		out.Cart.Clear()
	}
	for _, p := range s.base.Cart.Items {
		if !s.rec.Cart.Contains(p.ID) {
			out.Cart.Remove(p.ID)
		}
	}
	for _, p := range s.rec.Cart.Items {
		if !s.base.Cart.Contains(p.ID) {
			out.Cart.Add(p)
		}
	}
	if s.flashesTaken {
		out.Flashes = withoutFlashes(out.Flashes, s.base.Flashes)
	}
	out.Flashes = append(out.Flashes, s.added...)
	return out
}

// committed marks the current record as the stored state.
func (s *Session) committed() {
	s.base = s.rec.clone()
	s.isNew = false
	s.dirty = false
	s.tokenSet = false
	s.cartReset = false
	s.flashesTaken = false
	s.added = nil
}

// withoutFlashes drops one occurrence of each flash in seen from flashes.
func withoutFlashes(flashes, seen []Flash) []Flash {
	pending := append([]Flash(nil), seen...)
	var out []Flash
	for _, f := range flashes {
		matched := false
		for i, p := range pending {
			if p == f {
				pending = append(pending[:i], pending[i+1:]...)
				matched = true
				break
			}
		}
		if !matched {
			out = append(out, f)
		}
	}
	return out
}

type ctxKey struct{}

// WithContext stores sess in ctx.
func WithContext(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, sess)
}

// FromContext returns the session stored by WithContext.
func FromContext(ctx context.Context) *Session {
	sess, _ := ctx.Value(ctxKey{}).(*Session)
	return sess
}
