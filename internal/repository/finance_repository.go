package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusconnect/campus-service/internal/domain"
)

// FinanceRepository persists fee structures, payments and invoices,
// campus-scoped throughout.
type FinanceRepository interface {
	CreateFee(ctx context.Context, fee *domain.FeeStructure) error
	ListFees(ctx context.Context, campusID string) ([]domain.FeeStructure, error)
	GetFee(ctx context.Context, id, campusID string) (*domain.FeeStructure, error)
	CreatePayment(ctx context.Context, payment *domain.Payment) error
	ListPayments(ctx context.Context, campusID string) ([]domain.Payment, error)
	CreateInvoice(ctx context.Context, invoice *domain.Invoice) error
	ListInvoices(ctx context.Context, campusID string) ([]domain.Invoice, error)
}

type financeRepository struct {
	pool *pgxpool.Pool
}

// NewFinanceRepository returns a Postgres-backed implementation.
func NewFinanceRepository(pool *pgxpool.Pool) FinanceRepository {
	return &financeRepository{pool: pool}
}

func (r *financeRepository) CreateFee(ctx context.Context, fee *domain.FeeStructure) error {
	const query = `
        INSERT INTO fee_structures (name, amount, semester, due_date, campus_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		fee.Name,
		fee.Amount,
		fee.Semester,
		fee.DueDate,
		fee.CampusID,
	).Scan(&fee.ID, &fee.CreatedAt)
}

func (r *financeRepository) ListFees(ctx context.Context, campusID string) ([]domain.FeeStructure, error) {
	const query = `
        SELECT id, name, amount, semester, due_date, campus_id, created_at
        FROM fee_structures WHERE campus_id=$1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, campusID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fees []domain.FeeStructure
	for rows.Next() {
		var f domain.FeeStructure
		if err := rows.Scan(&f.ID, &f.Name, &f.Amount, &f.Semester, &f.DueDate, &f.CampusID, &f.CreatedAt); err != nil {
			return nil, err
		}
		fees = append(fees, f)
	}
	return fees, rows.Err()
}

func (r *financeRepository) GetFee(ctx context.Context, id, campusID string) (*domain.FeeStructure, error) {
	const query = `
        SELECT id, name, amount, semester, due_date, campus_id, created_at
        FROM fee_structures WHERE id=$1 AND campus_id=$2`

	var f domain.FeeStructure
	if err := r.pool.QueryRow(ctx, query, id, campusID).Scan(
		&f.ID, &f.Name, &f.Amount, &f.Semester, &f.DueDate, &f.CampusID, &f.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *financeRepository) CreatePayment(ctx context.Context, payment *domain.Payment) error {
	const query = `
        INSERT INTO payments (student_id, fee_id, amount, method, receipt, campus_id)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, paid_at`

	return r.pool.QueryRow(ctx, query,
		payment.StudentID,
		payment.FeeID,
		payment.Amount,
		payment.Method,
		payment.Receipt,
		payment.CampusID,
	).Scan(&payment.ID, &payment.PaidAt)
}

func (r *financeRepository) ListPayments(ctx context.Context, campusID string) ([]domain.Payment, error) {
	const query = `
        SELECT id, student_id, fee_id, amount, method, receipt, campus_id, paid_at
        FROM payments WHERE campus_id=$1 ORDER BY paid_at DESC`

	rows, err := r.pool.Query(ctx, query, campusID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.StudentID, &p.FeeID, &p.Amount, &p.Method, &p.Receipt, &p.CampusID, &p.PaidAt); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *financeRepository) CreateInvoice(ctx context.Context, invoice *domain.Invoice) error {
	items, err := json.Marshal(invoice.Items)
	if err != nil {
		return err
	}

	const query = `
        INSERT INTO invoices (student_id, items, total, status, campus_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		invoice.StudentID,
		items,
		invoice.Total,
		invoice.Status,
		invoice.CampusID,
	).Scan(&invoice.ID, &invoice.CreatedAt)
}

func (r *financeRepository) ListInvoices(ctx context.Context, campusID string) ([]domain.Invoice, error) {
	const query = `
        SELECT id, student_id, items, total, status, campus_id, created_at
        FROM invoices WHERE campus_id=$1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, campusID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []domain.Invoice
	for rows.Next() {
		var inv domain.Invoice
		var items []byte
		if err := rows.Scan(&inv.ID, &inv.StudentID, &items, &inv.Total, &inv.Status, &inv.CampusID, &inv.CreatedAt); err != nil {
			return nil, err
		}
		if len(items) > 0 {
			if err := json.Unmarshal(items, &inv.Items); err != nil {
				return nil, err
			}
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}
