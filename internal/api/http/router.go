package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campusconnect/campus-service/internal/api/http/handlers"
	"github.com/campusconnect/campus-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Academics      *handlers.AcademicsHandler
	Finance        *handlers.FinanceHandler
	Hostel         *handlers.HostelHandler
	Library        *handlers.LibraryHandler
	HR             *handlers.HRHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Everything under /api except the auth
// endpoints sits behind the token gate; mutating routes additionally pass
// the per-module write policy.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/api/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/validate", cfg.Auth.Validate)

	api := app.Group("/api", cfg.AuthMiddleware.Handle)

	api.Get("/courses", cfg.Academics.ListCourses)
	api.Post("/courses", auth.RequireWrite("courses"), cfg.Academics.CreateCourse)
	api.Get("/enrollments", cfg.Academics.ListEnrollments)
	api.Post("/enrollments", auth.RequireWrite("enrollments"), cfg.Academics.CreateEnrollment)
	api.Get("/attendance", cfg.Academics.ListAttendance)
	api.Post("/attendance", auth.RequireWrite("attendance"), cfg.Academics.MarkAttendance)

	api.Get("/fees", cfg.Finance.ListFees)
	api.Post("/fees", auth.RequireWrite("fees"), cfg.Finance.CreateFee)
	api.Get("/payments", cfg.Finance.ListPayments)
	api.Post("/payments", auth.RequireWrite("payments"), cfg.Finance.RecordPayment)
	api.Get("/invoices", cfg.Finance.ListInvoices)
	api.Post("/invoices", auth.RequireWrite("invoices"), cfg.Finance.CreateInvoice)

	api.Get("/rooms", cfg.Hostel.ListRooms)
	api.Post("/rooms", auth.RequireWrite("rooms"), cfg.Hostel.CreateRoom)
	api.Get("/allocations", cfg.Hostel.ListAllocations)
	api.Post("/allocations", auth.RequireWrite("allocations"), cfg.Hostel.AllocateRoom)
	api.Get("/maintenance", cfg.Hostel.ListMaintenance)
	api.Post("/maintenance", auth.RequireWrite("maintenance"), cfg.Hostel.ReportMaintenance)

	api.Get("/books", cfg.Library.ListBooks)
	api.Post("/books", auth.RequireWrite("books"), cfg.Library.AddBook)
	api.Get("/issues", cfg.Library.ListIssues)
	api.Post("/issue", auth.RequireWrite("issues"), cfg.Library.IssueBook)
	api.Post("/return", auth.RequireWrite("issues"), cfg.Library.ReturnBook)

	api.Get("/faculty", cfg.HR.ListFaculty)
	api.Post("/faculty", auth.RequireWrite("faculty"), cfg.HR.AddFaculty)
	api.Get("/leave", cfg.HR.ListLeave)
	api.Post("/leave", auth.RequireWrite("leave"), cfg.HR.RequestLeave)
	api.Put("/leave/approve", auth.RequireWrite("approvals"), cfg.HR.DecideLeave)
	api.Get("/payroll", cfg.HR.ListPayroll)
	api.Post("/payroll", auth.RequireWrite("payroll"), cfg.HR.GeneratePayroll)
}
