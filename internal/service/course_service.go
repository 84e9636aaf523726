package service

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campusware/registrar/internal/models"
	"github.com/campusware/registrar/internal/store"
	appErrors "github.com/campusware/registrar/pkg/errors"
)

// CreateCourseRequest describes course creation with a caller-chosen
// identifier (e.g. CS101).
type CreateCourseRequest struct {
	ID           string `validate:"required,excludesall=0x2C"`
	Name         string `validate:"required,excludesall=0x2C"`
	TeacherID    string `validate:"required,excludesall=0x2C"`
	DepartmentID string `validate:"required,excludesall=0x2C"`
	SemesterID   string `validate:"required,excludesall=0x2C"`
	Credits      int    `validate:"gte=0"`
	Schedule     string `validate:"excludesall=0x2C"`
	MaxStudents  int    `validate:"gte=0"`
}

// CourseService covers course management.
type CourseService struct {
	store     *store.Store
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService constructs a CourseService.
func NewCourseService(st *store.Store, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{store: st, validator: validate, logger: logger}
}

// Create adds a course after checking identifier uniqueness and that the
// teacher, department and semester references resolve. The teacher reference
// must carry the teacher role.
func (s *CourseService) Create(req CreateCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid course payload")
	}
	if _, exists := s.store.FindCourse(req.ID); exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "course ID already exists")
	}
	teacher, ok := s.store.FindUserByID(req.TeacherID)
	if !ok || teacher.Role != models.RoleTeacher {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
	}
	if _, ok := s.store.FindDepartment(req.DepartmentID); !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "department not found")
	}
	if _, ok := s.store.FindSemester(req.SemesterID); !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "semester not found")
	}

	course := models.Course{
		ID:           req.ID,
		Name:         req.Name,
		TeacherID:    req.TeacherID,
		DepartmentID: req.DepartmentID,
		SemesterID:   req.SemesterID,
		Credits:      req.Credits,
		Schedule:     req.Schedule,
		MaxStudents:  req.MaxStudents,
	}
	s.store.Courses.Insert(course)
	s.logger.Info("course created", zap.String("id", course.ID), zap.String("teacher", course.TeacherID))
	return &course, nil
}

// List returns every course in load order.
func (s *CourseService) List() []models.Course {
	return s.store.Courses.All()
}

// ListByTeacher returns the courses taught by one teacher.
func (s *CourseService) ListByTeacher(teacherID string) []models.Course {
	return s.store.CoursesByTeacher(teacherID)
}

// Delete removes a course. Exams, enrollments and attendance referencing it
// are left untouched and may dangle; deletes do not cascade.
func (s *CourseService) Delete(id string) error {
	if !s.store.Courses.Remove(id) {
		return appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	s.logger.Info("course deleted", zap.String("id", id))
	return nil
}
