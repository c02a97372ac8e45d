package domain

import "time"

// FeeStructure defines a recurring fee for a course/semester combination.
type FeeStructure struct {
	ID        string
	Name      string
	Amount    float64
	Semester  int
	DueDate   time.Time
	CampusID  string
	CreatedAt time.Time
}

// PaymentMethod is the closed set of accepted payment channels.
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodOnline PaymentMethod = "online"
)

// Payment records a fee payment by a student.
type Payment struct {
	ID        string
	StudentID string
	FeeID     string
	Amount    float64
	Method    PaymentMethod
	Receipt   string
	CampusID  string
	PaidAt    time.Time
}

// InvoiceItem is one line of an invoice.
type InvoiceItem struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// InvoiceStatus tracks settlement of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// Invoice aggregates billable items for a student.
type Invoice struct {
	ID        string
	StudentID string
	Items     []InvoiceItem
	Total     float64
	Status    InvoiceStatus
	CampusID  string
	CreatedAt time.Time
}
