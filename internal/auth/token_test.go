package auth

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/campusconnect/campus-service/internal/domain"
)

const testSecret = "test-signing-secret"

func testAccount() *domain.Account {
	return &domain.Account{
		Username: "alice",
		Role:     domain.RoleAdmin,
		CampusID: "CAMPUS_A",
	}
}

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, 24)

	token, expiresAt, err := tm.Issue(testAccount())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if until := time.Until(expiresAt); until < 23*time.Hour || until > 25*time.Hour {
		t.Fatalf("expected ~24h horizon, got %v", until)
	}

	claims, err := tm.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Subject != "alice" {
		t.Errorf("expected subject alice, got %q", claims.Subject)
	}
	if claims.Role != domain.RoleAdmin {
		t.Errorf("expected role admin, got %q", claims.Role)
	}
	if claims.CampusID != "CAMPUS_A" {
		t.Errorf("expected campus CAMPUS_A, got %q", claims.CampusID)
	}
}

func signedToken(t *testing.T, secret string, expiresAt time.Time) string {
	t.Helper()
	claims := &Claims{
		Role:     domain.RoleStaff,
		CampusID: "CAMPUS_A",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return token
}

func TestVerifyExpiryBoundary(t *testing.T) {
	tm := NewTokenManager(testSecret, 24)

	// still valid strictly before expires-at
	if _, err := tm.Verify(signedToken(t, testSecret, time.Now().Add(5*time.Second))); err != nil {
		t.Fatalf("token before expiry should verify: %v", err)
	}

	// now >= expires-at is expired
	if _, err := tm.Verify(signedToken(t, testSecret, time.Now())); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired at the boundary, got %v", err)
	}
	if _, err := tm.Verify(signedToken(t, testSecret, time.Now().Add(-time.Hour))); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager(testSecret, 24)
	token := signedToken(t, "some-other-secret", time.Now().Add(time.Hour))

	if _, err := tm.Verify(token); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	tm := NewTokenManager(testSecret, 24)
	token, _, err := tm.Issue(testAccount())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	flipped := "A"
	if strings.HasSuffix(token, "A") {
		flipped = "B"
	}
	tampered := token[:len(token)-1] + flipped

	if _, err := tm.Verify(tampered); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}
}

func TestVerifyRejectsTamperedClaims(t *testing.T) {
	tm := NewTokenManager(testSecret, 24)
	token, _, err := tm.Issue(testAccount())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape")
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	var claims map[string]any
	if err := json.Unmarshal(payload, &claims); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}

	// a forged campus must be caught by the signature check
	claims["campus_id"] = "CAMPUS_B"
	forged, err := json.Marshal(claims)
	if err != nil {
		t.Fatalf("marshal forged payload: %v", err)
	}
	parts[1] = base64.RawURLEncoding.EncodeToString(forged)

	if _, err := tm.Verify(strings.Join(parts, ".")); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("expected ErrBadSignature for forged claims, got %v", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	tm := NewTokenManager(testSecret, 24)

	for _, token := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
		if _, err := tm.Verify(token); !errors.Is(err, ErrTokenMalformed) {
			t.Errorf("token %q: expected ErrTokenMalformed, got %v", token, err)
		}
	}
}

func TestVerifyRejectsWrongSigningMethod(t *testing.T) {
	tm := NewTokenManager(testSecret, 24)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := tm.Verify(token); err == nil {
		t.Fatal("expected verification failure for non-HS256 token")
	}
}
