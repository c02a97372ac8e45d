package dto

// BookRequest payload for adding a book.
type BookRequest struct {
	ISBN        string `json:"isbn"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Category    string `json:"category"`
	TotalCopies int    `json:"total_copies"`
}

// IssueRequest payload for issuing a book.
type IssueRequest struct {
	BookID    string `json:"book_id"`
	StudentID string `json:"student_id"`
	Days      int    `json:"days"`
}

// ReturnRequest payload for returning a book.
type ReturnRequest struct {
	IssueID string `json:"issue_id"`
}
