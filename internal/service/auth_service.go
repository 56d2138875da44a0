package service

import (
	"context"
	"net/mail"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/supplychain-dashboard/internal/auth"
	"github.com/spec-kit/supplychain-dashboard/internal/backend"
	"github.com/spec-kit/supplychain-dashboard/internal/domain"
	"github.com/spec-kit/supplychain-dashboard/internal/events"
	"github.com/spec-kit/supplychain-dashboard/internal/session"
	apperrors "github.com/spec-kit/supplychain-dashboard/pkg/util/errorutil"
)

// Session-related reasons carried by events.
const (
	ReasonUserLogout = "user_logout"
	ReasonBackend401 = "backend_unauthorized"
)

// AuthService coordinates login, signup and logout flows.
type AuthService struct {
	api        AuthAPI
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// AuthDependencies bundles collaborators of AuthService.
type AuthDependencies struct {
	API        AuthAPI
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(deps AuthDependencies) *AuthService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{api: deps.API, dispatcher: deps.Dispatcher, logger: logger}
}

// SignupInput describes account creation.
type SignupInput struct {
	Username string
	Email    string
	Password string
	Role     domain.Role
}

// Login exchanges credentials for a token and stores it in sess. The returned
// claims decide where the browser lands.
func (s *AuthService) Login(ctx context.Context, sess *session.Session, email, password string) (auth.Claims, error) {
	email = strings.TrimSpace(email)
	fields := map[string]any{}
	if email == "" {
		fields["email"] = "Email is required"
	}
	if password == "" {
		fields["password"] = "Password is required"
	}
	if len(fields) > 0 {
		return auth.Claims{}, apperrors.NewValidationError("Please fill in all fields", fields)
	}

	resp, err := s.api.Login(ctx, backend.LoginRequest{Username: email, Password: password})
	if err != nil {
		return auth.Claims{}, err
	}
	claims, err := auth.DecodeClaims(resp.AccessToken)
	if err != nil {
		s.logger.Warn("login returned an undecodable token", zap.Error(err))
		return auth.Claims{}, err
	}

	sess.Set(resp.AccessToken)
	publishEvent(ctx, s.dispatcher, events.EventLogin, events.Actor{Subject: claims.Subject, Role: claims.Role}, events.SessionPayload{SessionID: sess.ID()})
	return claims, nil
}

// Signup creates an account. It does not log the new user in.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (domain.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)

	fields := map[string]any{}
	if in.Username == "" {
		fields["username"] = "Username is required"
	}
	if in.Email == "" {
		fields["email"] = "Email is required"
	} else if _, err := mail.ParseAddress(in.Email); err != nil {
		fields["email"] = "Email is not valid"
	}
	if in.Password == "" {
		fields["password"] = "Password is required"
	}
	if in.Role == "" {
		in.Role = domain.RoleConsumer
	}
	if !in.Role.Valid() {
		fields["role"] = "Role is not valid"
	}
	if len(fields) > 0 {
		return domain.User{}, apperrors.NewValidationError("Please correct the highlighted fields", fields)
	}

	return s.api.Signup(ctx, backend.SignupRequest{
		Email:    in.Email,
		Username: in.Username,
		Password: in.Password,
		Role:     in.Role,
	})
}

// Logout clears sess. It is the only way a token leaves the session on request.
func (s *AuthService) Logout(ctx context.Context, sess *session.Session) {
	s.end(ctx, sess, events.EventLogout, ReasonUserLogout)
	sess.Notify(session.LevelSuccess, "Logged out successfully!")
}

// Expire clears sess after the backend rejected its token, and tells the user why.
func (s *AuthService) Expire(ctx context.Context, sess *session.Session, reason string) {
	s.end(ctx, sess, events.EventSessionExpired, reason)
	sess.Notify(session.LevelWarning, "Your session has expired. Please log in again.")
}

func (s *AuthService) end(ctx context.Context, sess *session.Session, eventType events.EventType, reason string) {
	token, _ := sess.Get()
	actor := tokenActor(token)
	sess.Clear()
	publishEvent(ctx, s.dispatcher, eventType, actor, events.SessionPayload{SessionID: sess.ID(), Reason: reason})
}
