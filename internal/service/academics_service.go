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

// AcademicsService manages courses, enrollments and attendance. The campus
// on every record comes from the caller's verified claims, never from a
// request payload.
type AcademicsService struct {
	repo repository.AcademicsRepository
}

// NewAcademicsService builds the service.
func NewAcademicsService(repo repository.AcademicsRepository) *AcademicsService {
	return &AcademicsService{repo: repo}
}

// CourseInput carries course creation fields.
type CourseInput struct {
	Code       string
	Name       string
	Department string
	Credits    int
	Semester   int
}

// CreateCourse adds a course to the caller's campus.
func (s *AcademicsService) CreateCourse(ctx context.Context, principal *auth.Principal, input CourseInput) (*domain.Course, error) {
	course := &domain.Course{
		Code:       input.Code,
		Name:       input.Name,
		Department: input.Department,
		Credits:    input.Credits,
		Semester:   input.Semester,
		CampusID:   principal.CampusID,
	}
	if err := s.repo.CreateCourse(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// ListCourses returns the caller's campus courses.
func (s *AcademicsService) ListCourses(ctx context.Context, principal *auth.Principal) ([]domain.Course, error) {
	return s.repo.ListCourses(ctx, principal.CampusID)
}

// Enroll registers a student on a course of the caller's campus. A course
// belonging to another campus is indistinguishable from a missing one.
func (s *AcademicsService) Enroll(ctx context.Context, principal *auth.Principal, studentID, courseID string) (*domain.Enrollment, error) {
	course, err := s.repo.GetCourse(ctx, courseID, principal.CampusID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("course", nil)
		}
		return nil, err
	}

	enrollment := &domain.Enrollment{
		StudentID:  studentID,
		CourseID:   course.ID,
		CourseName: course.Name,
		Status:     domain.EnrollmentStatusActive,
		CampusID:   principal.CampusID,
	}
	if err := s.repo.CreateEnrollment(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

// ListEnrollments returns the caller's campus enrollments.
func (s *AcademicsService) ListEnrollments(ctx context.Context, principal *auth.Principal) ([]domain.Enrollment, error) {
	return s.repo.ListEnrollments(ctx, principal.CampusID)
}

// MarkAttendance records presence for a student in a course.
func (s *AcademicsService) MarkAttendance(ctx context.Context, principal *auth.Principal, studentID, courseID string, date time.Time, present bool) (*domain.Attendance, error) {
	attendance := &domain.Attendance{
		StudentID: studentID,
		CourseID:  courseID,
		Date:      date,
		Present:   present,
		CampusID:  principal.CampusID,
	}
	if err := s.repo.CreateAttendance(ctx, attendance); err != nil {
		return nil, err
	}
	return attendance, nil
}

// ListAttendance returns the caller's campus attendance records.
func (s *AcademicsService) ListAttendance(ctx context.Context, principal *auth.Principal) ([]domain.Attendance, error) {
	return s.repo.ListAttendance(ctx, principal.CampusID)
}
