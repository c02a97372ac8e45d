package domain

import "time"

// Faculty is an employment record for teaching staff.
type Faculty struct {
	ID          string
	EmployeeID  string
	Name        string
	Department  string
	Designation string
	Email       string
	BaseSalary  float64
	CampusID    string
	JoinedAt    time.Time
}

// LeaveStatus tracks approval of a leave request.
type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

// LeaveRequest is a faculty absence request awaiting approval.
type LeaveRequest struct {
	ID        string
	FacultyID string
	LeaveType string
	FromDate  time.Time
	ToDate    time.Time
	Reason    string
	Status    LeaveStatus
	CampusID  string
	CreatedAt time.Time
}

// Payroll is one month's computed salary for a faculty member.
type Payroll struct {
	ID         string
	FacultyID  string
	Month      int
	Year       int
	BaseSalary float64
	Allowances float64
	Deductions float64
	NetSalary  float64
	CampusID   string
	CreatedAt  time.Time
}
