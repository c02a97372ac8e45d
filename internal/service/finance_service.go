package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/campusconnect/campus-service/internal/auth"
	"github.com/campusconnect/campus-service/internal/domain"
	"github.com/campusconnect/campus-service/internal/repository"
	apperrors "github.com/campusconnect/campus-service/pkg/util"
)

// FinanceService manages fee structures, payments and invoices for the
// caller's campus.
type FinanceService struct {
	repo repository.FinanceRepository
}

// NewFinanceService builds the service.
func NewFinanceService(repo repository.FinanceRepository) *FinanceService {
	return &FinanceService{repo: repo}
}

// FeeInput carries fee structure fields.
type FeeInput struct {
	Name     string
	Amount   float64
	Semester int
	DueDate  time.Time
}

// CreateFee defines a fee structure on the caller's campus.
func (s *FinanceService) CreateFee(ctx context.Context, principal *auth.Principal, input FeeInput) (*domain.FeeStructure, error) {
	fee := &domain.FeeStructure{
		Name:     input.Name,
		Amount:   input.Amount,
		Semester: input.Semester,
		DueDate:  input.DueDate,
		CampusID: principal.CampusID,
	}
	if err := s.repo.CreateFee(ctx, fee); err != nil {
		return nil, err
	}
	return fee, nil
}

// ListFees returns the caller's campus fee structures.
func (s *FinanceService) ListFees(ctx context.Context, principal *auth.Principal) ([]domain.FeeStructure, error) {
	return s.repo.ListFees(ctx, principal.CampusID)
}

// RecordPayment records a payment against a fee of the caller's campus and
// assigns a receipt number.
func (s *FinanceService) RecordPayment(ctx context.Context, principal *auth.Principal, studentID, feeID string, amount float64, method domain.PaymentMethod) (*domain.Payment, error) {
	if _, err := s.repo.GetFee(ctx, feeID, principal.CampusID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("fee structure", nil)
		}
		return nil, err
	}

	payment := &domain.Payment{
		StudentID: studentID,
		FeeID:     feeID,
		Amount:    amount,
		Method:    method,
		Receipt:   "RCP-" + uuid.NewString(),
		CampusID:  principal.CampusID,
	}
	if err := s.repo.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// ListPayments returns the caller's campus payments.
func (s *FinanceService) ListPayments(ctx context.Context, principal *auth.Principal) ([]domain.Payment, error) {
	return s.repo.ListPayments(ctx, principal.CampusID)
}

// CreateInvoice aggregates billable items for a student; the total is
// computed server-side from the items.
func (s *FinanceService) CreateInvoice(ctx context.Context, principal *auth.Principal, studentID string, items []domain.InvoiceItem) (*domain.Invoice, error) {
	if len(items) == 0 {
		return nil, apperrors.NewValidationError("invoice needs at least one item", nil)
	}

	var total float64
	for _, item := range items {
		total += item.Amount
	}

	invoice := &domain.Invoice{
		StudentID: studentID,
		Items:     items,
		Total:     total,
		Status:    domain.InvoiceStatusPending,
		CampusID:  principal.CampusID,
	}
	if err := s.repo.CreateInvoice(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// ListInvoices returns the caller's campus invoices.
func (s *FinanceService) ListInvoices(ctx context.Context, principal *auth.Principal) ([]domain.Invoice, error) {
	return s.repo.ListInvoices(ctx, principal.CampusID)
}
