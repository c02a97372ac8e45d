package dto

import "github.com/campusconnect/campus-service/internal/domain"

// FeeRequest payload for a fee structure.
type FeeRequest struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Semester int     `json:"semester"`
	DueDate  string  `json:"due_date"`
}

// PaymentRequest payload for recording a payment.
type PaymentRequest struct {
	StudentID string  `json:"student_id"`
	FeeID     string  `json:"fee_id"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
}

// InvoiceRequest payload for creating an invoice.
type InvoiceRequest struct {
	StudentID string               `json:"student_id"`
	Items     []domain.InvoiceItem `json:"items"`
}
