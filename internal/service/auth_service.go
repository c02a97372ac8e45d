package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/campusconnect/campus-service/internal/auth"
	"github.com/campusconnect/campus-service/internal/config"
	"github.com/campusconnect/campus-service/internal/domain"
	"github.com/campusconnect/campus-service/internal/events"
	"github.com/campusconnect/campus-service/internal/repository"
	apperrors "github.com/campusconnect/campus-service/pkg/util"
)

// dummyDigest is compared against when the username does not exist, so the
// unknown-user path costs one bcrypt verification just like the wrong-password
// path. It is a digest of no password anyone knows.
const dummyDigest = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// AuthService coordinates registration, login and token introspection.
type AuthService struct {
	accounts   repository.AccountRepository
	tokens     *auth.TokenManager
	limiter    *auth.LoginLimiter
	dispatcher events.Dispatcher
	bcryptCost int
}

// AuthDependencies encapsulates collaborator requirements for auth service.
type AuthDependencies struct {
	AccountRepo repository.AccountRepository
	Limiter     *auth.LoginLimiter
	Dispatcher  events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		accounts:   deps.AccountRepo,
		tokens:     auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLHours),
		limiter:    deps.Limiter,
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// TokenManager exposes the shared issuing/verifying capability.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}

// RegisterInput carries registration fields. The campus is part of the
// account record, not of any later request payload.
type RegisterInput struct {
	Username string
	Password string
	Role     domain.Role
	CampusID string
	Email    string
	FullName string
}

// Register creates a new account with a hashed credential. No token is
// issued; the caller logs in afterwards.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.Account, error) {
	if !domain.ValidRole(input.Role) {
		return nil, apperrors.NewValidationError("unknown role", map[string]any{"role": input.Role})
	}

	if _, err := s.accounts.GetByUsername(ctx, input.Username); err == nil {
		return nil, apperrors.NewDuplicateIdentifier(input.Username)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Username:     input.Username,
		PasswordHash: hash,
		Role:         input.Role,
		CampusID:     input.CampusID,
		Email:        input.Email,
		FullName:     input.FullName,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		// lost a race on the unique index
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, apperrors.NewDuplicateIdentifier(input.Username)
		}
		return nil, err
	}

	s.publish(ctx, events.EventAccountRegistered, account.Username, events.AccountRegisteredPayload{
		Role:     account.Role,
		CampusID: account.CampusID,
	})
	return account, nil
}

// Login authenticates a credential pair and issues a token. Unknown user
// and wrong password collapse to one error value and comparable timing.
func (s *AuthService) Login(ctx context.Context, username, password, addr string) (*domain.Account, string, time.Time, error) {
	if !s.limiter.Allow(ctx, username, addr) {
		return nil, "", time.Time{}, apperrors.NewDomainError(
			"RATE_LIMITED", "too many login attempts", http.StatusTooManyRequests, nil)
	}

	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			_ = auth.ComparePassword(dummyDigest, password)
			s.publish(ctx, events.EventLoginFailed, username, events.LoginFailedPayload{Reason: "unknown user", Addr: addr})
			return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
		}
		return nil, "", time.Time{}, err
	}

	if err := auth.ComparePassword(account.PasswordHash, password); err != nil {
		s.publish(ctx, events.EventLoginFailed, username, events.LoginFailedPayload{Reason: "wrong password", Addr: addr})
		return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
	}

	token, expiresAt, err := s.tokens.Issue(account)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	s.publish(ctx, events.EventLoginSucceeded, username, events.LoginSucceededPayload{
		Role:      account.Role,
		CampusID:  account.CampusID,
		ExpiresAt: expiresAt,
	})
	return account, token, expiresAt, nil
}

// Introspect verifies a token without mutating any state.
func (s *AuthService) Introspect(tokenStr string) (*auth.Claims, error) {
	return s.tokens.Verify(tokenStr)
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, username string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Username:  username,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
