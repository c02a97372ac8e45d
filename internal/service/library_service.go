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

// finePerDay is charged for each day a returned book is overdue.
const finePerDay = 5.0

// LibraryService manages books and loans for the caller's campus.
type LibraryService struct {
	repo repository.LibraryRepository
	now  func() time.Time
}

// NewLibraryService builds the service.
func NewLibraryService(repo repository.LibraryRepository) *LibraryService {
	return &LibraryService{repo: repo, now: time.Now}
}

// BookInput carries book creation fields.
type BookInput struct {
	ISBN        string
	Title       string
	Author      string
	Category    string
	TotalCopies int
}

// AddBook adds a title to the caller's campus library.
func (s *LibraryService) AddBook(ctx context.Context, principal *auth.Principal, input BookInput) (*domain.Book, error) {
	if input.TotalCopies <= 0 {
		return nil, apperrors.NewValidationError("total_copies must be positive", nil)
	}
	book := &domain.Book{
		ISBN:            input.ISBN,
		Title:           input.Title,
		Author:          input.Author,
		Category:        input.Category,
		TotalCopies:     input.TotalCopies,
		AvailableCopies: input.TotalCopies,
		CampusID:        principal.CampusID,
	}
	if err := s.repo.CreateBook(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

// ListBooks returns the caller's campus books.
func (s *LibraryService) ListBooks(ctx context.Context, principal *auth.Principal) ([]domain.Book, error) {
	return s.repo.ListBooks(ctx, principal.CampusID)
}

// IssueBook loans one copy to a student for the given number of days.
func (s *LibraryService) IssueBook(ctx context.Context, principal *auth.Principal, bookID, studentID string, days int) (*domain.BookIssue, error) {
	if days <= 0 {
		return nil, apperrors.NewValidationError("days must be positive", nil)
	}

	book, err := s.repo.GetBook(ctx, bookID, principal.CampusID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("book", nil)
		}
		return nil, err
	}
	if book.AvailableCopies <= 0 {
		return nil, apperrors.NewConflict("book not available", map[string]any{"book_id": bookID})
	}

	issueDate := s.now()
	issue := &domain.BookIssue{
		BookID:    book.ID,
		BookTitle: book.Title,
		StudentID: studentID,
		IssueDate: issueDate,
		DueDate:   issueDate.AddDate(0, 0, days),
		Status:    domain.IssueStatusIssued,
		CampusID:  principal.CampusID,
	}
	if err := s.repo.CreateIssue(ctx, issue); err != nil {
		return nil, err
	}
	if err := s.repo.AdjustAvailableCopies(ctx, book.ID, principal.CampusID, -1); err != nil {
		return nil, err
	}
	return issue, nil
}

// ReturnBook closes a loan, charging finePerDay for each overdue day.
func (s *LibraryService) ReturnBook(ctx context.Context, principal *auth.Principal, issueID string) (*domain.BookIssue, error) {
	issue, err := s.repo.GetIssue(ctx, issueID, principal.CampusID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("issue record", nil)
		}
		return nil, err
	}
	if issue.Status != domain.IssueStatusIssued {
		return nil, apperrors.NewConflict("book already returned", map[string]any{"issue_id": issueID})
	}

	returnDate := s.now()
	fine := OverdueFine(issue.DueDate, returnDate)
	status := domain.IssueStatusReturned
	// any late return is flagged, even when the whole-day fine rounds to zero
	if returnDate.After(issue.DueDate) {
		status = domain.IssueStatusReturnedWithFine
	}

	if err := s.repo.MarkReturned(ctx, issue.ID, principal.CampusID, returnDate, status, fine); err != nil {
		return nil, err
	}
	if err := s.repo.AdjustAvailableCopies(ctx, issue.BookID, principal.CampusID, 1); err != nil {
		return nil, err
	}

	issue.ReturnDate = &returnDate
	issue.Status = status
	issue.FineAmount = fine
	return issue, nil
}

// ListIssues returns the caller's campus loan records.
func (s *LibraryService) ListIssues(ctx context.Context, principal *auth.Principal) ([]domain.BookIssue, error) {
	return s.repo.ListIssues(ctx, principal.CampusID)
}

// OverdueFine computes the fine for a return after the due date. Returns on
// or before the due date are free.
func OverdueFine(dueDate, returnDate time.Time) float64 {
	if !returnDate.After(dueDate) {
		return 0
	}
	overdueDays := int(returnDate.Sub(dueDate).Hours() / 24)
	return float64(overdueDays) * finePerDay
}
