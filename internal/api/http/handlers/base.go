package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/supplychain-dashboard/internal/api/http/views"
	"github.com/spec-kit/supplychain-dashboard/internal/auth"
	"github.com/spec-kit/supplychain-dashboard/internal/observability"
	"github.com/spec-kit/supplychain-dashboard/internal/service"
	"github.com/spec-kit/supplychain-dashboard/internal/session"
	apperrors "github.com/spec-kit/supplychain-dashboard/pkg/util/errorutil"
)

// Base holds what every page handler needs: rendering and the handling of
// failed backend calls.
type Base struct {
	auth   *service.AuthService
	logger *zap.Logger
}

// NewBase builds the shared handler base.
func NewBase(authService *service.AuthService, logger *zap.Logger) *Base {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Base{auth: authService, logger: logger}
}

// formState carries submitted values and their validation messages.
type formState struct {
	values map[string]string
	errors map[string]string
}

func (b *Base) render(c *fiber.Ctx, view, title string, data any) error {
	return b.renderForm(c, view, title, data, formState{})
}

func (b *Base) renderForm(c *fiber.Ctx, view, title string, data any, form formState) error {
	page := views.Page{
		Title:  title,
		Path:   c.Path(),
		Errors: form.errors,
		Form:   form.values,
		Data:   data,
	}

	sess := session.FromCtx(c)
	claims, ok := auth.PrincipalFromContext(c)
	if !ok {
		claims, ok = auth.SessionClaims(sess)
	}
	if ok {
		page.Subject = claims.Subject
		page.Role = claims.Role
		page.Nav = auth.NavigationFor(claims.Role)
	}
	if sess != nil {
		page.Flashes = sess.Flashes()
	}
	return c.Render(view, page)
}

// expire ends a session the backend no longer accepts and sends the browser
// to the login page.
func (b *Base) expire(c *fiber.Ctx) error {
	if sess := session.FromCtx(c); sess != nil {
		b.auth.Expire(c.UserContext(), sess, service.ReasonBackend401)
	}
	return c.Redirect(auth.DefaultLoginPath, http.StatusFound)
}

// notifyFailure queues err as an error notification for the next page.
func (b *Base) notifyFailure(c *fiber.Ctx, err error) {
	de := apperrors.ToDomainError(err)
	if de.HTTPStatus >= http.StatusInternalServerError && de.Code != apperrors.CodeNetwork {
		b.logger.Error("page action failed",
			zap.String("request_id", observability.RequestID(c)),
			zap.String("path", c.Path()),
			zap.Error(err))
	}
	if sess := session.FromCtx(c); sess != nil {
		sess.Notify(session.LevelError, de.Message)
	}
}

// failedForm answers a rejected form submission. A rejected token ends the
// session; validation problems are rendered inline; anything else becomes a
// notification. The form is rendered again with the submitted values.
func (b *Base) failedForm(c *fiber.Ctx, err error, view, title string, data any, values map[string]string) error {
	if apperrors.IsUnauthorized(err) {
		return b.expire(c)
	}
	de := apperrors.ToDomainError(err)
	form := formState{values: values}
	if de.Code == apperrors.CodeValidation {
		form.errors = apperrors.FieldErrors(err)
	} else {
		b.notifyFailure(c, err)
	}
	c.Status(de.HTTPStatus)
	return b.renderForm(c, view, title, data, form)
}

func notify(c *fiber.Ctx, level session.Level, message string) {
	if sess := session.FromCtx(c); sess != nil {
		sess.Notify(level, message)
	}
}

// bearer returns the session token; guarded routes always have one.
func bearer(c *fiber.Ctx) string {
	sess := session.FromCtx(c)
	if sess == nil {
		return ""
	}
	token, _ := sess.Get()
	return token
}
