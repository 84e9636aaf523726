package service

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campusware/registrar/internal/models"
	"github.com/campusware/registrar/internal/store"
	appErrors "github.com/campusware/registrar/pkg/errors"
)

// CreateDepartmentRequest describes department creation. The identifier is
// chosen by the caller, not allocated.
type CreateDepartmentRequest struct {
	ID          string `validate:"required,excludesall=0x2C"`
	Name        string `validate:"required,excludesall=0x2C"`
	HeadOfDept  string `validate:"excludesall=0x2C"`
	Description string `validate:"excludesall=0x2C"`
}

// DepartmentService covers department management.
type DepartmentService struct {
	store     *store.Store
	validator *validator.Validate
	logger    *zap.Logger
}

// NewDepartmentService constructs a DepartmentService.
func NewDepartmentService(st *store.Store, validate *validator.Validate, logger *zap.Logger) *DepartmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DepartmentService{store: st, validator: validate, logger: logger}
}

// Create adds a department after checking identifier uniqueness.
func (s *DepartmentService) Create(req CreateDepartmentRequest) (*models.Department, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid department payload")
	}
	if _, exists := s.store.FindDepartment(req.ID); exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "department ID already exists")
	}
	dept := models.Department{
		ID:          req.ID,
		Name:        req.Name,
		HeadOfDept:  req.HeadOfDept,
		Description: req.Description,
	}
	s.store.Departments.Insert(dept)
	s.logger.Info("department created", zap.String("id", dept.ID))
	return &dept, nil
}

// List returns every department in load order.
func (s *DepartmentService) List() []models.Department {
	return s.store.Departments.All()
}

// Delete removes a department. Users and courses referencing it keep their
// department ID; deletes do not cascade.
func (s *DepartmentService) Delete(id string) error {
	if !s.store.Departments.Remove(id) {
		return appErrors.Clone(appErrors.ErrNotFound, "department not found")
	}
	s.logger.Info("department deleted", zap.String("id", id))
	return nil
}
