package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/campusconnect/campus-service/internal/api/http/handlers"
	"github.com/campusconnect/campus-service/internal/auth"
	"github.com/campusconnect/campus-service/internal/config"
	"github.com/campusconnect/campus-service/internal/domain"
	"github.com/campusconnect/campus-service/internal/observability"
	"github.com/campusconnect/campus-service/internal/repository"
	"github.com/campusconnect/campus-service/internal/service"
)

type stubAccountRepo struct {
	accounts map[string]*domain.Account
}

func (s *stubAccountRepo) Create(_ context.Context, account *domain.Account) error {
	if _, exists := s.accounts[account.Username]; exists {
		return repository.ErrDuplicateUsername
	}
	copied := *account
	s.accounts[account.Username] = &copied
	return nil
}

func (s *stubAccountRepo) GetByUsername(_ context.Context, username string) (*domain.Account, error) {
	account, ok := s.accounts[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *account
	return &copied, nil
}

type stubLibraryRepo struct {
	books  map[string]*domain.Book
	nextID int
}

func (s *stubLibraryRepo) CreateBook(_ context.Context, book *domain.Book) error {
	s.nextID++
	book.ID = fmt.Sprintf("book-%d", s.nextID)
	copied := *book
	s.books[book.ID] = &copied
	return nil
}

func (s *stubLibraryRepo) ListBooks(_ context.Context, campusID string) ([]domain.Book, error) {
	var out []domain.Book
	for _, book := range s.books {
		if book.CampusID == campusID {
			out = append(out, *book)
		}
	}
	return out, nil
}

func (s *stubLibraryRepo) GetBook(_ context.Context, id, campusID string) (*domain.Book, error) {
	book, ok := s.books[id]
	if !ok || book.CampusID != campusID {
		return nil, pgx.ErrNoRows
	}
	copied := *book
	return &copied, nil
}

func (s *stubLibraryRepo) AdjustAvailableCopies(_ context.Context, id, campusID string, delta int) error {
	book, ok := s.books[id]
	if !ok || book.CampusID != campusID {
		return pgx.ErrNoRows
	}
	book.AvailableCopies += delta
	return nil
}

func (s *stubLibraryRepo) CreateIssue(context.Context, *domain.BookIssue) error { return nil }

func (s *stubLibraryRepo) GetIssue(context.Context, string, string) (*domain.BookIssue, error) {
	return nil, pgx.ErrNoRows
}

func (s *stubLibraryRepo) MarkReturned(context.Context, string, string, time.Time, domain.IssueStatus, float64) error {
	return pgx.ErrNoRows
}

func (s *stubLibraryRepo) ListIssues(context.Context, string) ([]domain.BookIssue, error) {
	return nil, nil
}

func newTestApp() *fiber.App {
	cfg := config.Config{
		Auth: config.AuthConfig{
			JWTSecret:     "router-test-secret",
			TokenTTLHours: 24,
			BcryptCost:    4,
		},
	}

	authService := service.NewAuthService(cfg, service.AuthDependencies{
		AccountRepo: &stubAccountRepo{accounts: make(map[string]*domain.Account)},
	})
	libraryService := service.NewLibraryService(&stubLibraryRepo{books: make(map[string]*domain.Book)})

	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler("campus-service", "test", nil, nil),
		Auth:           handlers.NewAuthHandler(authService),
		Academics:      handlers.NewAcademicsHandler(service.NewAcademicsService(nil)),
		Finance:        handlers.NewFinanceHandler(service.NewFinanceService(nil)),
		Hostel:         handlers.NewHostelHandler(service.NewHostelService(nil)),
		Library:        handlers.NewLibraryHandler(libraryService),
		HR:             handlers.NewHRHandler(service.NewHRService(nil)),
		AuthMiddleware: auth.NewMiddleware(authService.TokenManager()),
	})
	return app
}

func jsonRequest(t *testing.T, app *fiber.App, method, target, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s %s: %v", method, target, err)
	}
	defer resp.Body.Close()

	decoded := map[string]any{}
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("decode response %s: %v", raw, err)
		}
	}
	return resp.StatusCode, decoded
}

func registerAndLogin(t *testing.T, app *fiber.App, username, role, campusID string) string {
	t.Helper()

	status, _ := jsonRequest(t, app, nethttp.MethodPost, "/api/auth/register", "", map[string]any{
		"username":  username,
		"password":  "pw-" + username,
		"role":      role,
		"campus_id": campusID,
	})
	if status != nethttp.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d", username, status)
	}

	status, body := jsonRequest(t, app, nethttp.MethodPost, "/api/auth/login", "", map[string]any{
		"username": username,
		"password": "pw-" + username,
	})
	if status != nethttp.StatusOK {
		t.Fatalf("login %s: expected 200, got %d", username, status)
	}
	data, _ := body["data"].(map[string]any)
	token, _ := data["token"].(string)
	if token == "" {
		t.Fatalf("login %s: no token in response %v", username, body)
	}
	return token
}

func TestHealthLive(t *testing.T) {
	app := newTestApp()
	status, body := jsonRequest(t, app, nethttp.MethodGet, "/health/live", "", nil)
	if status != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if body["status"] != "alive" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestRegisterDoesNotLeakDigest(t *testing.T) {
	app := newTestApp()
	status, body := jsonRequest(t, app, nethttp.MethodPost, "/api/auth/register", "", map[string]any{
		"username":  "alice",
		"password":  "secret-pw",
		"role":      "staff",
		"campus_id": "CAMPUS_A",
	})
	if status != nethttp.StatusCreated {
		t.Fatalf("expected 201, got %d: %v", status, body)
	}

	encoded, _ := json.Marshal(body)
	if bytes.Contains(encoded, []byte("secret-pw")) || bytes.Contains(encoded, []byte("$2a$")) {
		t.Fatalf("response leaks credential material: %s", encoded)
	}
}

func TestRegisterDuplicateOverHTTP(t *testing.T) {
	app := newTestApp()
	registerAndLogin(t, app, "alice", "staff", "CAMPUS_A")

	status, body := jsonRequest(t, app, nethttp.MethodPost, "/api/auth/register", "", map[string]any{
		"username":  "alice",
		"password":  "another-pw",
		"role":      "student",
		"campus_id": "CAMPUS_B",
	})
	if status != nethttp.StatusConflict {
		t.Fatalf("expected 409, got %d: %v", status, body)
	}
	errBody, _ := body["error"].(map[string]any)
	if errBody["code"] != "DUPLICATE_IDENTIFIER" {
		t.Fatalf("expected DUPLICATE_IDENTIFIER, got %v", body)
	}
}

func TestLoginFailureOverHTTP(t *testing.T) {
	app := newTestApp()
	registerAndLogin(t, app, "alice", "staff", "CAMPUS_A")

	for name, creds := range map[string]map[string]any{
		"wrong password": {"username": "alice", "password": "nope"},
		"unknown user":   {"username": "nobody", "password": "nope"},
	} {
		status, body := jsonRequest(t, app, nethttp.MethodPost, "/api/auth/login", "", creds)
		if status != nethttp.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", name, status)
		}
		errBody, _ := body["error"].(map[string]any)
		if errBody["code"] != "INVALID_CREDENTIALS" {
			t.Fatalf("%s: expected INVALID_CREDENTIALS, got %v", name, body)
		}
	}
}

func TestValidateEndpoint(t *testing.T) {
	app := newTestApp()
	token := registerAndLogin(t, app, "alice", "staff", "CAMPUS_A")

	status, body := jsonRequest(t, app, nethttp.MethodGet, "/api/auth/validate", token, nil)
	if status != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if body["valid"] != true {
		t.Fatalf("expected valid token, got %v", body)
	}
	claims, _ := body["claims"].(map[string]any)
	if claims["sub"] != "alice" || claims["campus_id"] != "CAMPUS_A" {
		t.Fatalf("unexpected claims %v", claims)
	}

	status, body = jsonRequest(t, app, nethttp.MethodGet, "/api/auth/validate", "not-a-token", nil)
	if status != nethttp.StatusUnauthorized || body["valid"] != false {
		t.Fatalf("expected invalid verdict, got %d %v", status, body)
	}
}

func TestUnmatchedRouteIsNotFound(t *testing.T) {
	app := newTestApp()

	status, body := jsonRequest(t, app, nethttp.MethodGet, "/nope", "", nil)
	if status != nethttp.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
	errBody, _ := body["error"].(map[string]any)
	if errBody["code"] != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND for an unmatched route, got %v", body)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := newTestApp()

	status, body := jsonRequest(t, app, nethttp.MethodGet, "/api/books", "", nil)
	if status != nethttp.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
	errBody, _ := body["error"].(map[string]any)
	if errBody["code"] != "UNAUTHORIZED" {
		t.Fatalf("expected UNAUTHORIZED, got %v", body)
	}
}

func TestCampusScopingOverHTTP(t *testing.T) {
	app := newTestApp()
	tokenA := registerAndLogin(t, app, "staff-a", "staff", "CAMPUS_A")
	tokenB := registerAndLogin(t, app, "staff-b", "staff", "CAMPUS_B")

	// the forged campus_id field below is not part of the payload schema
	// and must be ignored; the record lands in the caller's campus
	status, body := jsonRequest(t, app, nethttp.MethodPost, "/api/books", tokenA, map[string]any{
		"isbn":         "978-0",
		"title":        "Campus A Holdings",
		"total_copies": 1,
		"campus_id":    "CAMPUS_B",
	})
	if status != nethttp.StatusCreated {
		t.Fatalf("add book: expected 201, got %d: %v", status, body)
	}

	status, body = jsonRequest(t, app, nethttp.MethodGet, "/api/books", tokenB, nil)
	if status != nethttp.StatusOK {
		t.Fatalf("list books: expected 200, got %d", status)
	}
	if data, ok := body["data"].([]any); ok && len(data) != 0 {
		t.Fatalf("campus B must not see campus A's books: %v", data)
	}

	status, body = jsonRequest(t, app, nethttp.MethodGet, "/api/books", tokenA, nil)
	if status != nethttp.StatusOK {
		t.Fatalf("list books: expected 200, got %d", status)
	}
	data, _ := body["data"].([]any)
	if len(data) != 1 {
		t.Fatalf("campus A should see exactly its one book, got %v", body["data"])
	}
}

func TestWritePolicyOverHTTP(t *testing.T) {
	app := newTestApp()
	studentToken := registerAndLogin(t, app, "student-1", "student", "CAMPUS_A")

	status, body := jsonRequest(t, app, nethttp.MethodPost, "/api/books", studentToken, map[string]any{
		"isbn":         "978-9",
		"title":        "Not Allowed",
		"total_copies": 1,
	})
	if status != nethttp.StatusForbidden {
		t.Fatalf("expected 403 for student book write, got %d: %v", status, body)
	}
}
