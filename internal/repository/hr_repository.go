package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusconnect/campus-service/internal/domain"
)

// HRRepository persists faculty records, leave requests and payroll,
// campus-scoped throughout.
type HRRepository interface {
	CreateFaculty(ctx context.Context, faculty *domain.Faculty) error
	ListFaculty(ctx context.Context, campusID string) ([]domain.Faculty, error)
	GetFaculty(ctx context.Context, id, campusID string) (*domain.Faculty, error)
	CreateLeaveRequest(ctx context.Context, request *domain.LeaveRequest) error
	ListLeaveRequests(ctx context.Context, campusID string) ([]domain.LeaveRequest, error)
	SetLeaveStatus(ctx context.Context, id, campusID string, status domain.LeaveStatus) error
	CreatePayroll(ctx context.Context, payroll *domain.Payroll) error
	ListPayroll(ctx context.Context, campusID string) ([]domain.Payroll, error)
}

type hrRepository struct {
	pool *pgxpool.Pool
}

// NewHRRepository returns a Postgres-backed implementation.
func NewHRRepository(pool *pgxpool.Pool) HRRepository {
	return &hrRepository{pool: pool}
}

func (r *hrRepository) CreateFaculty(ctx context.Context, faculty *domain.Faculty) error {
	const query = `
        INSERT INTO faculty (employee_id, name, department, designation, email, base_salary, campus_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, joined_at`

	return r.pool.QueryRow(ctx, query,
		faculty.EmployeeID,
		faculty.Name,
		faculty.Department,
		faculty.Designation,
		faculty.Email,
		faculty.BaseSalary,
		faculty.CampusID,
	).Scan(&faculty.ID, &faculty.JoinedAt)
}

func (r *hrRepository) ListFaculty(ctx context.Context, campusID string) ([]domain.Faculty, error) {
	const query = `
        SELECT id, employee_id, name, department, designation, email, base_salary, campus_id, joined_at
        FROM faculty WHERE campus_id=$1 ORDER BY name`

	rows, err := r.pool.Query(ctx, query, campusID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.Faculty
	for rows.Next() {
		var f domain.Faculty
		if err := rows.Scan(&f.ID, &f.EmployeeID, &f.Name, &f.Department, &f.Designation, &f.Email, &f.BaseSalary, &f.CampusID, &f.JoinedAt); err != nil {
			return nil, err
		}
		members = append(members, f)
	}
	return members, rows.Err()
}

func (r *hrRepository) GetFaculty(ctx context.Context, id, campusID string) (*domain.Faculty, error) {
	const query = `
        SELECT id, employee_id, name, department, designation, email, base_salary, campus_id, joined_at
        FROM faculty WHERE id=$1 AND campus_id=$2`

	var f domain.Faculty
	if err := r.pool.QueryRow(ctx, query, id, campusID).Scan(
		&f.ID, &f.EmployeeID, &f.Name, &f.Department, &f.Designation, &f.Email, &f.BaseSalary, &f.CampusID, &f.JoinedAt,
	); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *hrRepository) CreateLeaveRequest(ctx context.Context, request *domain.LeaveRequest) error {
	const query = `
        INSERT INTO leave_requests (faculty_id, leave_type, from_date, to_date, reason, status, campus_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		request.FacultyID,
		request.LeaveType,
		request.FromDate,
		request.ToDate,
		request.Reason,
		request.Status,
		request.CampusID,
	).Scan(&request.ID, &request.CreatedAt)
}

func (r *hrRepository) ListLeaveRequests(ctx context.Context, campusID string) ([]domain.LeaveRequest, error) {
	const query = `
        SELECT id, faculty_id, leave_type, from_date, to_date, reason, status, campus_id, created_at
        FROM leave_requests WHERE campus_id=$1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, campusID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.LeaveRequest
	for rows.Next() {
		var lr domain.LeaveRequest
		if err := rows.Scan(&lr.ID, &lr.FacultyID, &lr.LeaveType, &lr.FromDate, &lr.ToDate, &lr.Reason, &lr.Status, &lr.CampusID, &lr.CreatedAt); err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}

func (r *hrRepository) SetLeaveStatus(ctx context.Context, id, campusID string, status domain.LeaveStatus) error {
	const query = `
        UPDATE leave_requests SET status=$1
        WHERE id=$2 AND campus_id=$3`

	cmd, err := r.pool.Exec(ctx, query, status, id, campusID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *hrRepository) CreatePayroll(ctx context.Context, payroll *domain.Payroll) error {
	const query = `
        INSERT INTO payroll (faculty_id, month, year, base_salary, allowances, deductions, net_salary, campus_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		payroll.FacultyID,
		payroll.Month,
		payroll.Year,
		payroll.BaseSalary,
		payroll.Allowances,
		payroll.Deductions,
		payroll.NetSalary,
		payroll.CampusID,
	).Scan(&payroll.ID, &payroll.CreatedAt)
}

func (r *hrRepository) ListPayroll(ctx context.Context, campusID string) ([]domain.Payroll, error) {
	const query = `
        SELECT id, faculty_id, month, year, base_salary, allowances, deductions, net_salary, campus_id, created_at
        FROM payroll WHERE campus_id=$1 ORDER BY year DESC, month DESC`

	rows, err := r.pool.Query(ctx, query, campusID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.Payroll
	for rows.Next() {
		var p domain.Payroll
		if err := rows.Scan(&p.ID, &p.FacultyID, &p.Month, &p.Year, &p.BaseSalary, &p.Allowances, &p.Deductions, &p.NetSalary, &p.CampusID, &p.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, p)
	}
	return records, rows.Err()
}
