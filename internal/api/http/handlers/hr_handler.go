package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/campusconnect/campus-service/internal/api/dto"
	"github.com/campusconnect/campus-service/internal/service"
)

// HRHandler exposes faculty, leave and payroll endpoints.
type HRHandler struct {
	hr *service.HRService
}

// NewHRHandler constructs handler.
func NewHRHandler(hrService *service.HRService) *HRHandler {
	return &HRHandler{hr: hrService}
}

// AddFaculty handles POST /api/faculty.
func (h *HRHandler) AddFaculty(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	var req dto.FacultyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.EmployeeID == "" || req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "employee_id and name required")
	}

	faculty, err := h.hr.AddFaculty(c.Context(), principal, service.FacultyInput{
		EmployeeID:  req.EmployeeID,
		Name:        req.Name,
		Department:  req.Department,
		Designation: req.Designation,
		Email:       req.Email,
		BaseSalary:  req.BaseSalary,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": faculty})
}

// ListFaculty handles GET /api/faculty.
func (h *HRHandler) ListFaculty(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	members, err := h.hr.ListFaculty(c.Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": members})
}

// RequestLeave handles POST /api/leave.
func (h *HRHandler) RequestLeave(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	var req dto.LeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.FacultyID == "" || req.LeaveType == "" {
		return fiber.NewError(http.StatusBadRequest, "faculty_id and leave_type required")
	}
	fromDate, err := time.Parse(dateLayout, req.FromDate)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "from_date must be YYYY-MM-DD")
	}
	toDate, err := time.Parse(dateLayout, req.ToDate)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "to_date must be YYYY-MM-DD")
	}

	request, err := h.hr.RequestLeave(c.Context(), principal, service.LeaveInput{
		FacultyID: req.FacultyID,
		LeaveType: req.LeaveType,
		FromDate:  fromDate,
		ToDate:    toDate,
		Reason:    req.Reason,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": request})
}

// ListLeave handles GET /api/leave.
func (h *HRHandler) ListLeave(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	requests, err := h.hr.ListLeaveRequests(c.Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": requests})
}

// DecideLeave handles PUT /api/leave/approve.
func (h *HRHandler) DecideLeave(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	var req dto.LeaveDecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.RequestID == "" {
		return fiber.NewError(http.StatusBadRequest, "request_id required")
	}

	if err := h.hr.DecideLeave(c.Context(), principal, req.RequestID, req.Approve); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "leave request updated"}})
}

// GeneratePayroll handles POST /api/payroll.
func (h *HRHandler) GeneratePayroll(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	var req dto.PayrollRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.FacultyID == "" || req.Year == 0 {
		return fiber.NewError(http.StatusBadRequest, "faculty_id and year required")
	}

	payroll, err := h.hr.GeneratePayroll(c.Context(), principal, req.FacultyID, req.Month, req.Year, req.Allowances, req.Deductions)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": payroll})
}

// ListPayroll handles GET /api/payroll.
func (h *HRHandler) ListPayroll(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	records, err := h.hr.ListPayroll(c.Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": records})
}
