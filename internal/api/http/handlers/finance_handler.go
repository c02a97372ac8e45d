package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/campusconnect/campus-service/internal/api/dto"
	"github.com/campusconnect/campus-service/internal/domain"
	"github.com/campusconnect/campus-service/internal/service"
)

// FinanceHandler exposes fee, payment and invoice endpoints.
type FinanceHandler struct {
	finance *service.FinanceService
}

// NewFinanceHandler constructs handler.
func NewFinanceHandler(financeService *service.FinanceService) *FinanceHandler {
	return &FinanceHandler{finance: financeService}
}

// CreateFee handles POST /api/fees.
func (h *FinanceHandler) CreateFee(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	var req dto.FeeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" || req.Amount <= 0 {
		return fiber.NewError(http.StatusBadRequest, "name and positive amount required")
	}
	dueDate, err := time.Parse(dateLayout, req.DueDate)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "due_date must be YYYY-MM-DD")
	}

	fee, err := h.finance.CreateFee(c.Context(), principal, service.FeeInput{
		Name:     req.Name,
		Amount:   req.Amount,
		Semester: req.Semester,
		DueDate:  dueDate,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fee})
}

// ListFees handles GET /api/fees.
func (h *FinanceHandler) ListFees(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	fees, err := h.finance.ListFees(c.Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fees})
}

// RecordPayment handles POST /api/payments.
func (h *FinanceHandler) RecordPayment(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	var req dto.PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.StudentID == "" || req.FeeID == "" || req.Amount <= 0 {
		return fiber.NewError(http.StatusBadRequest, "student_id, fee_id and positive amount required")
	}

	payment, err := h.finance.RecordPayment(c.Context(), principal, req.StudentID, req.FeeID, req.Amount, domain.PaymentMethod(req.Method))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": payment})
}

// ListPayments handles GET /api/payments.
func (h *FinanceHandler) ListPayments(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	payments, err := h.finance.ListPayments(c.Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": payments})
}

// CreateInvoice handles POST /api/invoices.
func (h *FinanceHandler) CreateInvoice(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	var req dto.InvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.StudentID == "" {
		return fiber.NewError(http.StatusBadRequest, "student_id required")
	}

	invoice, err := h.finance.CreateInvoice(c.Context(), principal, req.StudentID, req.Items)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": invoice})
}

// ListInvoices handles GET /api/invoices.
func (h *FinanceHandler) ListInvoices(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	invoices, err := h.finance.ListInvoices(c.Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": invoices})
}
