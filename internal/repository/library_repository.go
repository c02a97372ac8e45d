package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusconnect/campus-service/internal/domain"
)

// LibraryRepository persists books and loan records, campus-scoped
// throughout.
type LibraryRepository interface {
	CreateBook(ctx context.Context, book *domain.Book) error
	ListBooks(ctx context.Context, campusID string) ([]domain.Book, error)
	GetBook(ctx context.Context, id, campusID string) (*domain.Book, error)
	AdjustAvailableCopies(ctx context.Context, id, campusID string, delta int) error
	CreateIssue(ctx context.Context, issue *domain.BookIssue) error
	GetIssue(ctx context.Context, id, campusID string) (*domain.BookIssue, error)
	MarkReturned(ctx context.Context, id, campusID string, returnDate time.Time, status domain.IssueStatus, fine float64) error
	ListIssues(ctx context.Context, campusID string) ([]domain.BookIssue, error)
}

type libraryRepository struct {
	pool *pgxpool.Pool
}

// NewLibraryRepository returns a Postgres-backed implementation.
func NewLibraryRepository(pool *pgxpool.Pool) LibraryRepository {
	return &libraryRepository{pool: pool}
}

func (r *libraryRepository) CreateBook(ctx context.Context, book *domain.Book) error {
	const query = `
        INSERT INTO books (isbn, title, author, category, total_copies, available_copies, campus_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		book.ISBN,
		book.Title,
		book.Author,
		book.Category,
		book.TotalCopies,
		book.AvailableCopies,
		book.CampusID,
	).Scan(&book.ID, &book.CreatedAt)
}

func (r *libraryRepository) ListBooks(ctx context.Context, campusID string) ([]domain.Book, error) {
	const query = `
        SELECT id, isbn, title, author, category, total_copies, available_copies, campus_id, created_at
        FROM books WHERE campus_id=$1 ORDER BY title`

	rows, err := r.pool.Query(ctx, query, campusID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []domain.Book
	for rows.Next() {
		var b domain.Book
		if err := rows.Scan(&b.ID, &b.ISBN, &b.Title, &b.Author, &b.Category, &b.TotalCopies, &b.AvailableCopies, &b.CampusID, &b.CreatedAt); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *libraryRepository) GetBook(ctx context.Context, id, campusID string) (*domain.Book, error) {
	const query = `
        SELECT id, isbn, title, author, category, total_copies, available_copies, campus_id, created_at
        FROM books WHERE id=$1 AND campus_id=$2`

	var b domain.Book
	if err := r.pool.QueryRow(ctx, query, id, campusID).Scan(
		&b.ID, &b.ISBN, &b.Title, &b.Author, &b.Category, &b.TotalCopies, &b.AvailableCopies, &b.CampusID, &b.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *libraryRepository) AdjustAvailableCopies(ctx context.Context, id, campusID string, delta int) error {
	const query = `
        UPDATE books SET available_copies = available_copies + $1
        WHERE id=$2 AND campus_id=$3`

	cmd, err := r.pool.Exec(ctx, query, delta, id, campusID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *libraryRepository) CreateIssue(ctx context.Context, issue *domain.BookIssue) error {
	const query = `
        INSERT INTO book_issues (book_id, book_title, student_id, issue_date, due_date, status, fine_amount, campus_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		issue.BookID,
		issue.BookTitle,
		issue.StudentID,
		issue.IssueDate,
		issue.DueDate,
		issue.Status,
		issue.FineAmount,
		issue.CampusID,
	).Scan(&issue.ID)
}

func (r *libraryRepository) GetIssue(ctx context.Context, id, campusID string) (*domain.BookIssue, error) {
	const query = `
        SELECT id, book_id, book_title, student_id, issue_date, due_date, return_date, status, fine_amount, campus_id
        FROM book_issues WHERE id=$1 AND campus_id=$2`

	var issue domain.BookIssue
	if err := r.pool.QueryRow(ctx, query, id, campusID).Scan(
		&issue.ID, &issue.BookID, &issue.BookTitle, &issue.StudentID,
		&issue.IssueDate, &issue.DueDate, &issue.ReturnDate,
		&issue.Status, &issue.FineAmount, &issue.CampusID,
	); err != nil {
		return nil, err
	}
	return &issue, nil
}

func (r *libraryRepository) MarkReturned(ctx context.Context, id, campusID string, returnDate time.Time, status domain.IssueStatus, fine float64) error {
	const query = `
        UPDATE book_issues SET return_date=$1, status=$2, fine_amount=$3
        WHERE id=$4 AND campus_id=$5`

	cmd, err := r.pool.Exec(ctx, query, returnDate, status, fine, id, campusID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *libraryRepository) ListIssues(ctx context.Context, campusID string) ([]domain.BookIssue, error) {
	const query = `
        SELECT id, book_id, book_title, student_id, issue_date, due_date, return_date, status, fine_amount, campus_id
        FROM book_issues WHERE campus_id=$1 ORDER BY issue_date DESC`

	rows, err := r.pool.Query(ctx, query, campusID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var issues []domain.BookIssue
	for rows.Next() {
		var issue domain.BookIssue
		if err := rows.Scan(
			&issue.ID, &issue.BookID, &issue.BookTitle, &issue.StudentID,
			&issue.IssueDate, &issue.DueDate, &issue.ReturnDate,
			&issue.Status, &issue.FineAmount, &issue.CampusID,
		); err != nil {
			return nil, err
		}
		issues = append(issues, issue)
	}
	return issues, rows.Err()
}
