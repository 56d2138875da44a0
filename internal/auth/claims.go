package auth

import (
	"errors"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/supplychain-dashboard/internal/domain"
	apperrors "github.com/spec-kit/supplychain-dashboard/pkg/util/errorutil"
)

// Claims are the fields the dashboard reads from an access token.
type Claims struct {
	Role      domain.Role
	Subject   string
	ExpiresAt time.Time
}

// tokenClaims mirrors the backend's JWT payload: {"sub", "role", "exp"}.
type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

var parser = jwt.NewParser()

// DecodeClaims reads the claims of token without verifying its signature or
// expiry. The result only drives navigation; the backend authorizes every
// request independently.
func DecodeClaims(token string) (Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Claims{}, apperrors.NewDecodeError("token absent", nil)
	}

	var tc tokenClaims
	if _, _, err := parser.ParseUnverified(token, &tc); err != nil {
		return Claims{}, apperrors.NewDecodeError("token malformed", err)
	}
	if tc.Role == "" {
		return Claims{}, apperrors.NewDecodeError("token missing role claim", errors.New("role"))
	}
	if tc.Subject == "" {
		return Claims{}, apperrors.NewDecodeError("token missing subject claim", errors.New("sub"))
	}

	claims := Claims{Role: domain.Role(tc.Role), Subject: tc.Subject}
	if tc.ExpiresAt != nil {
		claims.ExpiresAt = tc.ExpiresAt.Time
	}
	return claims, nil
}
