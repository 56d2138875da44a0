package handlers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/supplychain-dashboard/internal/api/dto"
	"github.com/spec-kit/supplychain-dashboard/internal/auth"
	"github.com/spec-kit/supplychain-dashboard/internal/domain"
	"github.com/spec-kit/supplychain-dashboard/internal/service"
	"github.com/spec-kit/supplychain-dashboard/internal/session"
	apperrors "github.com/spec-kit/supplychain-dashboard/pkg/util/errorutil"
)

// AuthHandler serves the login, signup and logout pages.
type AuthHandler struct {
	*Base
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(base *Base, authService *service.AuthService) *AuthHandler {
	return &AuthHandler{Base: base, auth: authService}
}

// LoginPage handles GET /. Logged-in users go straight to their dashboard.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	if claims, ok := auth.SessionClaims(session.FromCtx(c)); ok {
		if home := auth.HomePath(claims.Role); home != "" {
			return c.Redirect(home, http.StatusFound)
		}
	}
	return h.render(c, "login", "Login", nil)
}

// Login handles POST /.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var form dto.LoginForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid form")
	}

	claims, err := h.auth.Login(c.UserContext(), session.FromCtx(c), form.Email, form.Password)
	if err != nil {
		de := apperrors.ToDomainError(err)
		state := formState{values: map[string]string{"email": form.Email}}
		if de.Code == apperrors.CodeValidation {
			state.errors = apperrors.FieldErrors(err)
		} else {
			notify(c, session.LevelError, de.Message)
		}
		c.Status(de.HTTPStatus)
		return h.renderForm(c, "login", "Login", nil, state)
	}

	notify(c, session.LevelSuccess, "Login successful!")
	home := auth.HomePath(claims.Role)
	if home == "" {
		notify(c, session.LevelWarning, fmt.Sprintf("There is no dashboard for the %s role yet.", claims.Role))
		home = auth.DefaultLoginPath
	}
	return c.Redirect(home, http.StatusFound)
}

// SignupPage handles GET /signup.
func (h *AuthHandler) SignupPage(c *fiber.Ctx) error {
	return h.render(c, "signup", "Sign up", domain.SignupRoles)
}

// Signup handles POST /signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var form dto.SignupForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid form")
	}

	_, err := h.auth.Signup(c.UserContext(), service.SignupInput{
		Username: form.Username,
		Email:    form.Email,
		Password: form.Password,
		Role:     domain.Role(form.Role),
	})
	if err != nil {
		return h.failedForm(c, err, "signup", "Sign up", domain.SignupRoles, form.Values())
	}

	notify(c, session.LevelSuccess, "Signup successful! Please log in.")
	return c.Redirect(auth.DefaultLoginPath, http.StatusFound)
}

// Logout handles POST /logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if sess := session.FromCtx(c); sess != nil {
		h.auth.Logout(c.UserContext(), sess)
	}
	return c.Redirect(auth.DefaultLoginPath, http.StatusFound)
}
