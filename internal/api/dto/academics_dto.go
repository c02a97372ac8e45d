package dto

// CourseRequest payload for course creation. There is deliberately no
// campus field on resource payloads; the campus comes from the token.
type CourseRequest struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Credits    int    `json:"credits"`
	Semester   int    `json:"semester"`
}

// EnrollmentRequest payload for enrolling a student.
type EnrollmentRequest struct {
	StudentID string `json:"student_id"`
	CourseID  string `json:"course_id"`
}

// AttendanceRequest payload for marking attendance.
type AttendanceRequest struct {
	StudentID string `json:"student_id"`
	CourseID  string `json:"course_id"`
	Date      string `json:"date"`
	Present   bool   `json:"present"`
}
