package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/campusconnect/campus-service/internal/api/dto"
	"github.com/campusconnect/campus-service/internal/domain"
	"github.com/campusconnect/campus-service/internal/service"
)

// AuthHandler exposes registration, login and token introspection.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" || req.Role == "" || req.CampusID == "" {
		return fiber.NewError(http.StatusBadRequest, "username, password, role, campus_id required")
	}

	account, err := h.auth.Register(c.Context(), service.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Role:     domain.Role(req.Role),
		CampusID: req.CampusID,
		Email:    req.Email,
		FullName: req.FullName,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"message": "account registered",
			"user":    publicProfile(account),
		},
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "username and password required")
	}

	account, token, expiresAt, err := h.auth.Login(c.Context(), req.Username, req.Password, c.IP())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": dto.TokenResponse{
			Token:     token,
			ExpiresAt: expiresAt,
			User:      publicProfile(account),
		},
	})
}

// Validate handles GET /api/auth/validate. It verifies a presented token
// and reports its claims without touching any state.
func (h *AuthHandler) Validate(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return c.Status(http.StatusUnauthorized).JSON(dto.IntrospectResponse{Valid: false})
	}

	claims, err := h.auth.Introspect(parts[1])
	if err != nil {
		return c.Status(http.StatusUnauthorized).JSON(dto.IntrospectResponse{Valid: false})
	}

	return c.JSON(dto.IntrospectResponse{
		Valid: true,
		Claims: map[string]any{
			"sub":       claims.Subject,
			"role":      claims.Role,
			"campus_id": claims.CampusID,
			"iat":       claims.IssuedAt,
			"exp":       claims.ExpiresAt,
		},
	})
}

func publicProfile(account *domain.Account) dto.UserInfo {
	return dto.UserInfo{
		Username: account.Username,
		Role:     string(account.Role),
		CampusID: account.CampusID,
		Email:    account.Email,
		FullName: account.FullName,
	}
}
