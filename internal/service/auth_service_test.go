package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/campusconnect/campus-service/internal/config"
	"github.com/campusconnect/campus-service/internal/domain"
	"github.com/campusconnect/campus-service/internal/events"
	"github.com/campusconnect/campus-service/internal/repository"
	apperrors "github.com/campusconnect/campus-service/pkg/util"
)

type fakeAccountRepo struct {
	createFn        func(ctx context.Context, account *domain.Account) error
	getByUsernameFn func(ctx context.Context, username string) (*domain.Account, error)
}

func (f *fakeAccountRepo) Create(ctx context.Context, account *domain.Account) error {
	return f.createFn(ctx, account)
}

func (f *fakeAccountRepo) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	return f.getByUsernameFn(ctx, username)
}

// memoryAccountRepo keeps accounts in a map, matching the unique-username
// behavior of the real store.
type memoryAccountRepo struct {
	accounts map[string]*domain.Account
}

func newMemoryAccountRepo() *memoryAccountRepo {
	return &memoryAccountRepo{accounts: make(map[string]*domain.Account)}
}

func (m *memoryAccountRepo) Create(_ context.Context, account *domain.Account) error {
	if _, exists := m.accounts[account.Username]; exists {
		return repository.ErrDuplicateUsername
	}
	copied := *account
	m.accounts[account.Username] = &copied
	return nil
}

func (m *memoryAccountRepo) GetByUsername(_ context.Context, username string) (*domain.Account, error) {
	account, ok := m.accounts[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *account
	return &copied, nil
}

func testAuthConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:     "test-signing-secret",
			TokenTTLHours: 24,
			BcryptCost:    4,
		},
	}
}

func newTestAuthService(repo repository.AccountRepository, dispatcher events.Dispatcher) *AuthService {
	return NewAuthService(testAuthConfig(), AuthDependencies{
		AccountRepo: repo,
		Dispatcher:  dispatcher,
	})
}

func errorCode(t *testing.T, err error) string {
	t.Helper()
	var de *apperrors.DomainError
	if !errors.As(err, &de) {
		t.Fatalf("expected DomainError, got %v", err)
	}
	return de.Code
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newMemoryAccountRepo()
	svc := newTestAuthService(repo, nil)
	ctx := context.Background()

	account, err := svc.Register(ctx, RegisterInput{
		Username: "alice",
		Password: "correct horse",
		Role:     domain.RoleFaculty,
		CampusID: "CAMPUS_A",
		Email:    "alice@example.edu",
		FullName: "Alice Verma",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if account.PasswordHash == "" || account.PasswordHash == "correct horse" {
		t.Fatal("stored credential must be a hash")
	}

	loggedIn, token, expiresAt, err := svc.Login(ctx, "alice", "correct horse", "10.0.0.1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" || expiresAt.IsZero() {
		t.Fatal("login must return a token with an expiry")
	}
	if loggedIn.Username != "alice" {
		t.Errorf("expected alice, got %q", loggedIn.Username)
	}

	claims, err := svc.Introspect(token)
	if err != nil {
		t.Fatalf("introspect: %v", err)
	}
	if claims.Subject != "alice" || claims.Role != domain.RoleFaculty || claims.CampusID != "CAMPUS_A" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc := newTestAuthService(newMemoryAccountRepo(), nil)

	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "alice",
		Password: "pw",
		Role:     domain.Role("superuser"),
		CampusID: "CAMPUS_A",
	})
	if code := errorCode(t, err); code != "VALIDATION_FAILED" {
		t.Fatalf("expected VALIDATION_FAILED, got %s", code)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := newMemoryAccountRepo()
	svc := newTestAuthService(repo, nil)
	ctx := context.Background()

	input := RegisterInput{Username: "alice", Password: "pw", Role: domain.RoleStudent, CampusID: "CAMPUS_A"}
	if _, err := svc.Register(ctx, input); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := svc.Register(ctx, input)
	if code := errorCode(t, err); code != "DUPLICATE_IDENTIFIER" {
		t.Fatalf("expected DUPLICATE_IDENTIFIER, got %s", code)
	}
}

func TestRegisterDuplicateRace(t *testing.T) {
	// lookup sees no row but the insert loses the race on the unique index
	repo := &fakeAccountRepo{
		getByUsernameFn: func(context.Context, string) (*domain.Account, error) {
			return nil, pgx.ErrNoRows
		},
		createFn: func(context.Context, *domain.Account) error {
			return repository.ErrDuplicateUsername
		},
	}
	svc := newTestAuthService(repo, nil)

	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "alice", Password: "pw", Role: domain.RoleStudent, CampusID: "CAMPUS_A",
	})
	if code := errorCode(t, err); code != "DUPLICATE_IDENTIFIER" {
		t.Fatalf("expected DUPLICATE_IDENTIFIER, got %s", code)
	}
}

func TestLoginFailuresAreUndifferentiated(t *testing.T) {
	repo := newMemoryAccountRepo()
	svc := newTestAuthService(repo, nil)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{
		Username: "alice", Password: "right password", Role: domain.RoleStudent, CampusID: "CAMPUS_A",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, _, unknownErr := svc.Login(ctx, "nobody", "whatever", "10.0.0.1")
	_, _, _, wrongPwErr := svc.Login(ctx, "alice", "wrong password", "10.0.0.1")

	unknownCode := errorCode(t, unknownErr)
	wrongPwCode := errorCode(t, wrongPwErr)
	if unknownCode != "INVALID_CREDENTIALS" || wrongPwCode != "INVALID_CREDENTIALS" {
		t.Fatalf("expected INVALID_CREDENTIALS for both, got %s and %s", unknownCode, wrongPwCode)
	}
	if unknownErr.Error() != wrongPwErr.Error() {
		t.Fatalf("messages must not distinguish the failure cause: %q vs %q",
			unknownErr.Error(), wrongPwErr.Error())
	}
}

func TestLoginPublishesAuditEvents(t *testing.T) {
	repo := newMemoryAccountRepo()
	dispatcher := events.NewInMemoryDispatcher()

	var seen []events.EventType
	for _, eventType := range []events.EventType{
		events.EventAccountRegistered,
		events.EventLoginSucceeded,
		events.EventLoginFailed,
	} {
		eventType := eventType
		dispatcher.Subscribe(eventType, func(_ context.Context, e events.Event) error {
			seen = append(seen, e.Type)
			return nil
		})
	}

	svc := newTestAuthService(repo, dispatcher)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{
		Username: "alice", Password: "pw", Role: domain.RoleStudent, CampusID: "CAMPUS_A",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, _, _, err := svc.Login(ctx, "alice", "pw", "10.0.0.1"); err != nil {
		t.Fatalf("login: %v", err)
	}
	svc.Login(ctx, "alice", "bad", "10.0.0.1")

	want := []events.EventType{events.EventAccountRegistered, events.EventLoginSucceeded, events.EventLoginFailed}
	if len(seen) != len(want) {
		t.Fatalf("expected %d events, got %v", len(want), seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("event %d: expected %s, got %s", i, want[i], seen[i])
		}
	}
}
