package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/campusconnect/campus-service/internal/auth"
	"github.com/campusconnect/campus-service/internal/domain"
	"github.com/campusconnect/campus-service/internal/repository"
	apperrors "github.com/campusconnect/campus-service/pkg/util"
)

// HRService manages faculty records, leave and payroll for the caller's
// campus.
type HRService struct {
	repo repository.HRRepository
}

// NewHRService builds the service.
func NewHRService(repo repository.HRRepository) *HRService {
	return &HRService{repo: repo}
}

// FacultyInput carries faculty creation fields.
type FacultyInput struct {
	EmployeeID  string
	Name        string
	Department  string
	Designation string
	Email       string
	BaseSalary  float64
}

// AddFaculty adds an employment record to the caller's campus.
func (s *HRService) AddFaculty(ctx context.Context, principal *auth.Principal, input FacultyInput) (*domain.Faculty, error) {
	faculty := &domain.Faculty{
		EmployeeID:  input.EmployeeID,
		Name:        input.Name,
		Department:  input.Department,
		Designation: input.Designation,
		Email:       input.Email,
		BaseSalary:  input.BaseSalary,
		CampusID:    principal.CampusID,
	}
	if err := s.repo.CreateFaculty(ctx, faculty); err != nil {
		return nil, err
	}
	return faculty, nil
}

// ListFaculty returns the caller's campus faculty.
func (s *HRService) ListFaculty(ctx context.Context, principal *auth.Principal) ([]domain.Faculty, error) {
	return s.repo.ListFaculty(ctx, principal.CampusID)
}

// LeaveInput carries leave request fields.
type LeaveInput struct {
	FacultyID string
	LeaveType string
	FromDate  time.Time
	ToDate    time.Time
	Reason    string
}

// RequestLeave files a leave request for a faculty member of the caller's
// campus.
func (s *HRService) RequestLeave(ctx context.Context, principal *auth.Principal, input LeaveInput) (*domain.LeaveRequest, error) {
	if input.ToDate.Before(input.FromDate) {
		return nil, apperrors.NewValidationError("to_date precedes from_date", nil)
	}
	if _, err := s.repo.GetFaculty(ctx, input.FacultyID, principal.CampusID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("faculty", nil)
		}
		return nil, err
	}

	request := &domain.LeaveRequest{
		FacultyID: input.FacultyID,
		LeaveType: input.LeaveType,
		FromDate:  input.FromDate,
		ToDate:    input.ToDate,
		Reason:    input.Reason,
		Status:    domain.LeaveStatusPending,
		CampusID:  principal.CampusID,
	}
	if err := s.repo.CreateLeaveRequest(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

// ListLeaveRequests returns the caller's campus leave requests.
func (s *HRService) ListLeaveRequests(ctx context.Context, principal *auth.Principal) ([]domain.LeaveRequest, error) {
	return s.repo.ListLeaveRequests(ctx, principal.CampusID)
}

// DecideLeave approves or rejects a pending leave request.
func (s *HRService) DecideLeave(ctx context.Context, principal *auth.Principal, requestID string, approve bool) error {
	status := domain.LeaveStatusRejected
	if approve {
		status = domain.LeaveStatusApproved
	}
	if err := s.repo.SetLeaveStatus(ctx, requestID, principal.CampusID, status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("leave request", nil)
		}
		return err
	}
	return nil
}

// GeneratePayroll computes one month's salary for a faculty member:
// net = base + allowances - deductions.
func (s *HRService) GeneratePayroll(ctx context.Context, principal *auth.Principal, facultyID string, month, year int, allowances, deductions float64) (*domain.Payroll, error) {
	if month < 1 || month > 12 {
		return nil, apperrors.NewValidationError("month out of range", map[string]any{"month": month})
	}

	faculty, err := s.repo.GetFaculty(ctx, facultyID, principal.CampusID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("faculty", nil)
		}
		return nil, err
	}

	payroll := &domain.Payroll{
		FacultyID:  faculty.ID,
		Month:      month,
		Year:       year,
		BaseSalary: faculty.BaseSalary,
		Allowances: allowances,
		Deductions: deductions,
		NetSalary:  faculty.BaseSalary + allowances - deductions,
		CampusID:   principal.CampusID,
	}
	if err := s.repo.CreatePayroll(ctx, payroll); err != nil {
		return nil, err
	}
	return payroll, nil
}

// ListPayroll returns the caller's campus payroll records.
func (s *HRService) ListPayroll(ctx context.Context, principal *auth.Principal) ([]domain.Payroll, error) {
	return s.repo.ListPayroll(ctx, principal.CampusID)
}
