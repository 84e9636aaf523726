package service

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campusware/registrar/internal/models"
	"github.com/campusware/registrar/internal/store"
	appErrors "github.com/campusware/registrar/pkg/errors"
)

// MarkAttendanceRequest describes one attendance entry. TeacherID is the
// caller marking attendance.
type MarkAttendanceRequest struct {
	StudentID string `validate:"required"`
	CourseID  string `validate:"required"`
	TeacherID string `validate:"required"`
	Date      string `validate:"required,excludesall=0x2C"`
	Status    string `validate:"required,oneof=present absent late"`
}

// AttendanceService covers attendance marking and views. Attendance records
// are append-only; the same (student, course, date) may be marked repeatedly
// and every entry is kept.
type AttendanceService struct {
	store     *store.Store
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAttendanceService constructs an AttendanceService.
func NewAttendanceService(st *store.Store, validate *validator.Validate, logger *zap.Logger) *AttendanceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceService{store: st, validator: validate, logger: logger}
}

// Mark appends one attendance record. The course must be taught by the
// caller and the student actively enrolled in it.
func (s *AttendanceService) Mark(req MarkAttendanceRequest) (*models.Attendance, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid attendance payload")
	}
	course, ok := s.store.FindCourse(req.CourseID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	if course.TeacherID != req.TeacherID {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "course is not taught by this teacher")
	}
	if !s.store.IsEnrolled(req.StudentID, req.CourseID) {
		return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "student not enrolled in course")
	}

	record := models.Attendance{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
		Date:      req.Date,
		Status:    models.AttendanceStatus(req.Status),
	}
	s.store.Attendance.Insert(record)
	s.logger.Info("attendance marked",
		zap.String("student", req.StudentID), zap.String("course", req.CourseID), zap.String("status", req.Status))
	return &record, nil
}

// ByStudent returns the student's attendance records in load order.
func (s *AttendanceService) ByStudent(studentID string) []models.Attendance {
	return s.store.AttendanceByStudent(studentID)
}

// ByCourse returns the course's attendance records in load order.
func (s *AttendanceService) ByCourse(courseID string) []models.Attendance {
	return s.store.AttendanceByCourse(courseID)
}
