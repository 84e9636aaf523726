package service

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campusware/registrar/internal/models"
	"github.com/campusware/registrar/internal/store"
	appErrors "github.com/campusware/registrar/pkg/errors"
	"github.com/campusware/registrar/pkg/idgen"
)

const examIDPrefix = "EX"

// CreateExamRequest describes exam creation. TeacherID is the caller; the
// exam identifier is allocated, not chosen.
type CreateExamRequest struct {
	CourseID   string `validate:"required,excludesall=0x2C"`
	TeacherID  string `validate:"required"`
	Name       string `validate:"required,excludesall=0x2C"`
	Date       string `validate:"required,excludesall=0x2C"`
	Time       string `validate:"required,excludesall=0x2C"`
	Type       string `validate:"required,oneof=midterm final quiz assignment"`
	TotalMarks int    `validate:"gt=0"`
}

// ExamService covers exam management for course teachers.
type ExamService struct {
	store     *store.Store
	validator *validator.Validate
	logger    *zap.Logger
}

// NewExamService constructs an ExamService.
func NewExamService(st *store.Store, validate *validator.Validate, logger *zap.Logger) *ExamService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExamService{store: st, validator: validate, logger: logger}
}

// Create adds an exam for a course owned by the calling teacher.
func (s *ExamService) Create(req CreateExamRequest) (*models.Exam, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid exam payload")
	}
	course, ok := s.store.FindCourse(req.CourseID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	if course.TeacherID != req.TeacherID {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "course is not taught by this teacher")
	}

	ids := make([]string, 0, s.store.Exams.Len())
	for _, e := range s.store.Exams.All() {
		ids = append(ids, e.ID)
	}

	exam := models.Exam{
		ID:         idgen.NextID(examIDPrefix, ids),
		CourseID:   req.CourseID,
		Name:       req.Name,
		Date:       req.Date,
		Time:       req.Time,
		Type:       models.ExamType(req.Type),
		TotalMarks: req.TotalMarks,
	}
	s.store.Exams.Insert(exam)
	s.logger.Info("exam created", zap.String("id", exam.ID), zap.String("course", exam.CourseID))
	return &exam, nil
}

// ListByCourse returns the exams held for one course.
func (s *ExamService) ListByCourse(courseID string) []models.Exam {
	return s.store.ExamsByCourse(courseID)
}

// Delete removes an exam owned by the calling teacher. Grades referencing it
// are left untouched; deletes do not cascade.
func (s *ExamService) Delete(examID, teacherID string) error {
	exam, ok := s.store.FindExam(examID)
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "exam not found")
	}
	course, ok := s.store.FindCourse(exam.CourseID)
	if ok && course.TeacherID != teacherID {
		return appErrors.Clone(appErrors.ErrForbidden, "exam belongs to another teacher's course")
	}
	if !s.store.Exams.Remove(examID) {
		return appErrors.Clone(appErrors.ErrNotFound, "exam not found")
	}
	s.logger.Info("exam deleted", zap.String("id", examID))
	return nil
}
