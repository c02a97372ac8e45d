package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/campusconnect/campus-service/internal/domain"
	apperrors "github.com/campusconnect/campus-service/pkg/util"
)

const principalKey = "auth_principal"

// Principal is the per-request identity derived from a verified token. It is
// read-only for the remainder of the request and never persisted.
type Principal struct {
	Username string
	Role     domain.Role
	CampusID string
}

// Middleware gates protected routes. It verifies the bearer token inline
// (no storage lookup) and attaches the resulting Principal to the request.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs the gate.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Handle enforces authentication. A missing, malformed, forged or expired
// token each yield the same unauthorized response; no partial claim
// information is ever exposed on failure.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("unauthorized")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("unauthorized")
	}

	claims, err := m.tokens.Verify(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("unauthorized")
	}

	c.Locals(principalKey, &Principal{
		Username: claims.Subject,
		Role:     claims.Role,
		CampusID: claims.CampusID,
	})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated identity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
