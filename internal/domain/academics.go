package domain

import "time"

// Course is a campus-scoped course offering.
type Course struct {
	ID         string
	Code       string
	Name       string
	Department string
	Credits    int
	Semester   int
	CampusID   string
	CreatedAt  time.Time
}

// EnrollmentStatus tracks the lifecycle of an enrollment.
type EnrollmentStatus string

const (
	EnrollmentStatusActive    EnrollmentStatus = "active"
	EnrollmentStatusCompleted EnrollmentStatus = "completed"
	EnrollmentStatusDropped   EnrollmentStatus = "dropped"
)

// Enrollment links a student to a course within one campus.
type Enrollment struct {
	ID         string
	StudentID  string
	CourseID   string
	CourseName string
	Status     EnrollmentStatus
	CampusID   string
	EnrolledAt time.Time
}

// Attendance records a single presence mark for a student in a course.
type Attendance struct {
	ID        string
	StudentID string
	CourseID  string
	Date      time.Time
	Present   bool
	CampusID  string
	CreatedAt time.Time
}
