package domain

import "time"

// Book is a library holding with copy counts.
type Book struct {
	ID              string
	ISBN            string
	Title           string
	Author          string
	Category        string
	TotalCopies     int
	AvailableCopies int
	CampusID        string
	CreatedAt       time.Time
}

// IssueStatus tracks the lifecycle of a book loan.
type IssueStatus string

const (
	IssueStatusIssued           IssueStatus = "issued"
	IssueStatusReturned         IssueStatus = "returned"
	IssueStatusReturnedWithFine IssueStatus = "returned_with_fine"
)

// BookIssue records a loan of one book copy to a student.
type BookIssue struct {
	ID         string
	BookID     string
	BookTitle  string
	StudentID  string
	IssueDate  time.Time
	DueDate    time.Time
	ReturnDate *time.Time
	Status     IssueStatus
	FineAmount float64
	CampusID   string
}
