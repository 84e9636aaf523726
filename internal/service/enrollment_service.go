package service

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campusware/registrar/internal/models"
	"github.com/campusware/registrar/internal/store"
	appErrors "github.com/campusware/registrar/pkg/errors"
)

// EnrollRequest describes enrollment creation.
type EnrollRequest struct {
	StudentID string `validate:"required"`
	CourseID  string `validate:"required"`
}

// EnrollmentService orchestrates enrollment workflows.
type EnrollmentService struct {
	store     *store.Store
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEnrollmentService constructs an EnrollmentService.
func NewEnrollmentService(st *store.Store, validate *validator.Validate, logger *zap.Logger) *EnrollmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{store: st, validator: validate, logger: logger}
}

// Enroll registers a student in a course. At most one enrollment with status
// "enrolled" may exist per (student, course) pair; a student who dropped may
// enroll again.
func (s *EnrollmentService) Enroll(req EnrollRequest) (*models.Enrollment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid enrollment payload")
	}
	student, ok := s.store.FindUserByID(req.StudentID)
	if !ok || student.Role != models.RoleStudent {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	if _, ok := s.store.FindCourse(req.CourseID); !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	if s.store.IsEnrolled(req.StudentID, req.CourseID) {
		return nil, appErrors.Clone(appErrors.ErrConflict, "student already enrolled in course")
	}

	enrollment := models.Enrollment{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
		Status:    models.EnrollmentStatusEnrolled,
	}
	s.store.Enrollments.Insert(enrollment)
	s.logger.Info("student enrolled", zap.String("student", req.StudentID), zap.String("course", req.CourseID))
	return &enrollment, nil
}

// UpdateStatus closes out the active enrollment for the pair, setting it to
// completed or dropped; finalGrade is the free-text course grade recorded on
// completion. There must be an enrollment with status "enrolled" to update.
func (s *EnrollmentService) UpdateStatus(studentID, courseID string, status models.EnrollmentStatus, finalGrade string) error {
	switch status {
	case models.EnrollmentStatusCompleted, models.EnrollmentStatusDropped:
	default:
		return appErrors.Clone(appErrors.ErrValidation, "status must be completed or dropped")
	}

	updated := s.store.Enrollments.UpdateFirst(
		func(e models.Enrollment) bool {
			return e.StudentID == studentID && e.CourseID == courseID && e.Status == models.EnrollmentStatusEnrolled
		},
		func(e *models.Enrollment) {
			e.Status = status
			e.Grade = finalGrade
		},
	)
	if !updated {
		return appErrors.Clone(appErrors.ErrNotFound, "no active enrollment for student and course")
	}
	s.logger.Info("enrollment status updated",
		zap.String("student", studentID), zap.String("course", courseID), zap.String("status", string(status)))
	return nil
}

// Roster returns every enrollment for the course in load order.
func (s *EnrollmentService) Roster(courseID string) []models.Enrollment {
	return s.store.EnrollmentsByCourse(courseID)
}

// ByStudent returns every enrollment of the student in load order.
func (s *EnrollmentService) ByStudent(studentID string) []models.Enrollment {
	return s.store.EnrollmentsByStudent(studentID)
}
