package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/supplychain-dashboard/internal/session"
)

const principalKey = "auth_principal"

func setPrincipal(c *fiber.Ctx, claims Claims) {
	c.Locals(principalKey, claims)
}

// PrincipalFromContext returns the claims a guard authorized for this request.
func PrincipalFromContext(c *fiber.Ctx) (Claims, bool) {
	claims, ok := c.Locals(principalKey).(Claims)
	return claims, ok
}

// SessionClaims decodes the token of sess, if any. Public views use it to
// render the menu; failures simply mean "no menu".
func SessionClaims(sess *session.Session) (Claims, bool) {
	if sess == nil {
		return Claims{}, false
	}
	token, ok := sess.Get()
	if !ok {
		return Claims{}, false
	}
	claims, err := DecodeClaims(token)
	if err != nil {
		return Claims{}, false
	}
	return claims, true
}
