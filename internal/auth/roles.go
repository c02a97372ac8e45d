package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campusconnect/campus-service/internal/domain"
	apperrors "github.com/campusconnect/campus-service/pkg/util"
)

// WritePolicy is the per-module role table for mutating operations. Reads
// require authentication only. Changing who may write to a module is a
// one-line edit here, not a handler change.
var WritePolicy = map[string][]domain.Role{
	"courses":     {domain.RoleAdmin, domain.RoleFaculty},
	"enrollments": {domain.RoleAdmin, domain.RoleFaculty, domain.RoleStaff},
	"attendance":  {domain.RoleAdmin, domain.RoleFaculty},
	"fees":        {domain.RoleAdmin},
	"payments":    {domain.RoleAdmin, domain.RoleStaff},
	"invoices":    {domain.RoleAdmin, domain.RoleStaff},
	"rooms":       {domain.RoleAdmin, domain.RoleStaff},
	"allocations": {domain.RoleAdmin, domain.RoleStaff},
	"maintenance": {domain.RoleAdmin, domain.RoleStaff, domain.RoleStudent},
	"books":       {domain.RoleAdmin, domain.RoleStaff},
	"issues":      {domain.RoleAdmin, domain.RoleStaff},
	"faculty":     {domain.RoleAdmin},
	"leave":       {domain.RoleAdmin, domain.RoleFaculty},
	"approvals":   {domain.RoleAdmin},
	"payroll":     {domain.RoleAdmin},
}

// RequireRole ensures the principal holds one of the allowed roles. With no
// roles given it only requires an authenticated caller.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("unauthorized")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[principal.Role]; !exists {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}

// RequireWrite looks up the module's write policy and enforces it.
func RequireWrite(module string) fiber.Handler {
	return RequireRole(WritePolicy[module]...)
}
