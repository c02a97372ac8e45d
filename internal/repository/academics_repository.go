package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusconnect/campus-service/internal/domain"
)

// AcademicsRepository persists courses, enrollments and attendance. Every
// read and write carries an explicit campus predicate sourced from the
// caller's verified claims.
type AcademicsRepository interface {
	CreateCourse(ctx context.Context, course *domain.Course) error
	ListCourses(ctx context.Context, campusID string) ([]domain.Course, error)
	GetCourse(ctx context.Context, id, campusID string) (*domain.Course, error)
	CreateEnrollment(ctx context.Context, enrollment *domain.Enrollment) error
	ListEnrollments(ctx context.Context, campusID string) ([]domain.Enrollment, error)
	CreateAttendance(ctx context.Context, attendance *domain.Attendance) error
	ListAttendance(ctx context.Context, campusID string) ([]domain.Attendance, error)
}

type academicsRepository struct {
	pool *pgxpool.Pool
}

// NewAcademicsRepository returns a Postgres-backed implementation.
func NewAcademicsRepository(pool *pgxpool.Pool) AcademicsRepository {
	return &academicsRepository{pool: pool}
}

func (r *academicsRepository) CreateCourse(ctx context.Context, course *domain.Course) error {
	const query = `
        INSERT INTO courses (code, name, department, credits, semester, campus_id)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		course.Code,
		course.Name,
		course.Department,
		course.Credits,
		course.Semester,
		course.CampusID,
	).Scan(&course.ID, &course.CreatedAt)
}

func (r *academicsRepository) ListCourses(ctx context.Context, campusID string) ([]domain.Course, error) {
	const query = `
        SELECT id, code, name, department, credits, semester, campus_id, created_at
        FROM courses WHERE campus_id=$1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, campusID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []domain.Course
	for rows.Next() {
		var c domain.Course
		if err := rows.Scan(&c.ID, &c.Code, &c.Name, &c.Department, &c.Credits, &c.Semester, &c.CampusID, &c.CreatedAt); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

func (r *academicsRepository) GetCourse(ctx context.Context, id, campusID string) (*domain.Course, error) {
	const query = `
        SELECT id, code, name, department, credits, semester, campus_id, created_at
        FROM courses WHERE id=$1 AND campus_id=$2`

	var c domain.Course
	if err := r.pool.QueryRow(ctx, query, id, campusID).Scan(
		&c.ID, &c.Code, &c.Name, &c.Department, &c.Credits, &c.Semester, &c.CampusID, &c.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *academicsRepository) CreateEnrollment(ctx context.Context, enrollment *domain.Enrollment) error {
	const query = `
        INSERT INTO enrollments (student_id, course_id, course_name, status, campus_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, enrolled_at`

	return r.pool.QueryRow(ctx, query,
		enrollment.StudentID,
		enrollment.CourseID,
		enrollment.CourseName,
		enrollment.Status,
		enrollment.CampusID,
	).Scan(&enrollment.ID, &enrollment.EnrolledAt)
}

func (r *academicsRepository) ListEnrollments(ctx context.Context, campusID string) ([]domain.Enrollment, error) {
	const query = `
        SELECT id, student_id, course_id, course_name, status, campus_id, enrolled_at
        FROM enrollments WHERE campus_id=$1 ORDER BY enrolled_at DESC`

	rows, err := r.pool.Query(ctx, query, campusID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []domain.Enrollment
	for rows.Next() {
		var e domain.Enrollment
		if err := rows.Scan(&e.ID, &e.StudentID, &e.CourseID, &e.CourseName, &e.Status, &e.CampusID, &e.EnrolledAt); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}

func (r *academicsRepository) CreateAttendance(ctx context.Context, attendance *domain.Attendance) error {
	const query = `
        INSERT INTO attendance (student_id, course_id, date, present, campus_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		attendance.StudentID,
		attendance.CourseID,
		attendance.Date,
		attendance.Present,
		attendance.CampusID,
	).Scan(&attendance.ID, &attendance.CreatedAt)
}

func (r *academicsRepository) ListAttendance(ctx context.Context, campusID string) ([]domain.Attendance, error) {
	const query = `
        SELECT id, student_id, course_id, date, present, campus_id, created_at
        FROM attendance WHERE campus_id=$1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, campusID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.Attendance
	for rows.Next() {
		var a domain.Attendance
		if err := rows.Scan(&a.ID, &a.StudentID, &a.CourseID, &a.Date, &a.Present, &a.CampusID, &a.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}
