package dto

// FacultyRequest payload for adding a faculty record.
type FacultyRequest struct {
	EmployeeID  string  `json:"employee_id"`
	Name        string  `json:"name"`
	Department  string  `json:"department"`
	Designation string  `json:"designation"`
	Email       string  `json:"email"`
	BaseSalary  float64 `json:"base_salary"`
}

// LeaveRequest payload for requesting leave.
type LeaveRequest struct {
	FacultyID string `json:"faculty_id"`
	LeaveType string `json:"leave_type"`
	FromDate  string `json:"from_date"`
	ToDate    string `json:"to_date"`
	Reason    string `json:"reason"`
}

// LeaveDecisionRequest payload for approving or rejecting leave.
type LeaveDecisionRequest struct {
	RequestID string `json:"request_id"`
	Approve   bool   `json:"approve"`
}

// PayrollRequest payload for generating payroll.
type PayrollRequest struct {
	FacultyID  string  `json:"faculty_id"`
	Month      int     `json:"month"`
	Year       int     `json:"year"`
	Allowances float64 `json:"allowances"`
	Deductions float64 `json:"deductions"`
}
