package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/campusconnect/campus-service/internal/api/dto"
	"github.com/campusconnect/campus-service/internal/auth"
	"github.com/campusconnect/campus-service/internal/service"
	apperrors "github.com/campusconnect/campus-service/pkg/util"
)

const dateLayout = "2006-01-02"

// requirePrincipal fetches the verified identity set by the auth gate.
func requirePrincipal(c *fiber.Ctx) (*auth.Principal, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return nil, apperrors.NewUnauthorized("unauthorized")
	}
	return principal, nil
}

// AcademicsHandler exposes course, enrollment and attendance endpoints.
type AcademicsHandler struct {
	academics *service.AcademicsService
}

// NewAcademicsHandler constructs handler.
func NewAcademicsHandler(academicsService *service.AcademicsService) *AcademicsHandler {
	return &AcademicsHandler{academics: academicsService}
}

// CreateCourse handles POST /api/courses.
func (h *AcademicsHandler) CreateCourse(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	var req dto.CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Code == "" || req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "code and name required")
	}

	course, err := h.academics.CreateCourse(c.Context(), principal, service.CourseInput{
		Code:       req.Code,
		Name:       req.Name,
		Department: req.Department,
		Credits:    req.Credits,
		Semester:   req.Semester,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": course})
}

// ListCourses handles GET /api/courses.
func (h *AcademicsHandler) ListCourses(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	courses, err := h.academics.ListCourses(c.Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": courses})
}

// CreateEnrollment handles POST /api/enrollments.
func (h *AcademicsHandler) CreateEnrollment(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	var req dto.EnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.StudentID == "" || req.CourseID == "" {
		return fiber.NewError(http.StatusBadRequest, "student_id and course_id required")
	}

	enrollment, err := h.academics.Enroll(c.Context(), principal, req.StudentID, req.CourseID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": enrollment})
}

// ListEnrollments handles GET /api/enrollments.
func (h *AcademicsHandler) ListEnrollments(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	enrollments, err := h.academics.ListEnrollments(c.Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": enrollments})
}

// MarkAttendance handles POST /api/attendance.
func (h *AcademicsHandler) MarkAttendance(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	var req dto.AttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.StudentID == "" || req.CourseID == "" {
		return fiber.NewError(http.StatusBadRequest, "student_id and course_id required")
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	attendance, err := h.academics.MarkAttendance(c.Context(), principal, req.StudentID, req.CourseID, date, req.Present)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": attendance})
}

// ListAttendance handles GET /api/attendance.
func (h *AcademicsHandler) ListAttendance(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	records, err := h.academics.ListAttendance(c.Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": records})
}
