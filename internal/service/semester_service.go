package service

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campusware/registrar/internal/models"
	"github.com/campusware/registrar/internal/store"
	appErrors "github.com/campusware/registrar/pkg/errors"
)

// CreateSemesterRequest describes semester creation with a caller-chosen
// identifier.
type CreateSemesterRequest struct {
	ID        string `validate:"required,excludesall=0x2C"`
	Name      string `validate:"required,excludesall=0x2C"`
	StartDate string `validate:"required,excludesall=0x2C"`
	EndDate   string `validate:"required,excludesall=0x2C"`
	Status    string `validate:"required,oneof=active completed upcoming"`
}

// SemesterService covers semester management.
type SemesterService struct {
	store     *store.Store
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSemesterService constructs a SemesterService.
func NewSemesterService(st *store.Store, validate *validator.Validate, logger *zap.Logger) *SemesterService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SemesterService{store: st, validator: validate, logger: logger}
}

// Create adds a semester after checking identifier uniqueness.
func (s *SemesterService) Create(req CreateSemesterRequest) (*models.Semester, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid semester payload")
	}
	if _, exists := s.store.FindSemester(req.ID); exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "semester ID already exists")
	}
	semester := models.Semester{
		ID:        req.ID,
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    models.SemesterStatus(req.Status),
	}
	s.store.Semesters.Insert(semester)
	s.logger.Info("semester created", zap.String("id", semester.ID))
	return &semester, nil
}

// List returns every semester in load order.
func (s *SemesterService) List() []models.Semester {
	return s.store.Semesters.All()
}

// UpdateStatus mutates a semester's status in place.
func (s *SemesterService) UpdateStatus(id string, status models.SemesterStatus) error {
	switch status {
	case models.SemesterStatusActive, models.SemesterStatusCompleted, models.SemesterStatusUpcoming:
	default:
		return appErrors.Clone(appErrors.ErrValidation, "unknown semester status")
	}
	if !s.store.Semesters.Update(id, func(sem *models.Semester) { sem.Status = status }) {
		return appErrors.Clone(appErrors.ErrNotFound, "semester not found")
	}
	s.logger.Info("semester status updated", zap.String("id", id), zap.String("status", string(status)))
	return nil
}

// Delete removes a semester. Courses referencing it keep their semester ID;
// deletes do not cascade.
func (s *SemesterService) Delete(id string) error {
	if !s.store.Semesters.Remove(id) {
		return appErrors.Clone(appErrors.ErrNotFound, "semester not found")
	}
	s.logger.Info("semester deleted", zap.String("id", id))
	return nil
}
