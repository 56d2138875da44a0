package auth

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/supplychain-dashboard/internal/domain"
	"github.com/spec-kit/supplychain-dashboard/internal/session"
)

// DefaultLoginPath is the view unauthorized visitors are sent to.
const DefaultLoginPath = "/"

// GuardState is the progress of one guard evaluation.
type GuardState int

const (
	GuardUnchecked GuardState = iota
	GuardAuthorized
	GuardRedirecting
)

func (s GuardState) String() string {
	switch s {
	case GuardAuthorized:
		return "authorized"
	case GuardRedirecting:
		return "redirecting"
	default:
		return "unchecked"
	}
}

// Decision is the outcome of a guard check.
type Decision struct {
	State    GuardState
	Claims   Claims
	Redirect string
	// Err is set when the token was present but could not be decoded.
	Err error
}

// Guard gates role-specific views on the role claim of the session token.
// It filters what the UI shows; it is not an access-control boundary.
type Guard struct {
	loginPath string
}

// NewGuard builds a guard redirecting to loginPath.
func NewGuard(loginPath string) *Guard {
	if loginPath == "" {
		loginPath = DefaultLoginPath
	}
	return &Guard{loginPath: loginPath}
}

// Check decides whether a view requiring role may render for token.
func (g *Guard) Check(token string, present bool, required domain.Role) Decision {
	redirect := Decision{State: GuardRedirecting, Redirect: g.loginPath}
	if !present {
		return redirect
	}
	claims, err := DecodeClaims(token)
	if err != nil {
		redirect.Err = err
		return redirect
	}
	if claims.Role != required {
		return redirect
	}
	return Decision{State: GuardAuthorized, Claims: claims}
}

// RequireRole runs Check on every request to a protected route. Nothing is
// cached between requests, so a cleared session is noticed on the next one.
func (g *Guard) RequireRole(required domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := session.FromCtx(c)
		var (
			token   string
			present bool
		)
		if sess != nil {
			token, present = sess.Get()
		}

		decision := g.Check(token, present, required)
		if decision.State != GuardAuthorized {
			if decision.Err != nil && sess != nil {
				sess.Clear()
			}
			return c.Redirect(decision.Redirect, http.StatusFound)
		}

		setPrincipal(c, decision.Claims)
		return c.Next()
	}
}
