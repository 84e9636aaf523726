package service

import (
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campusware/registrar/internal/models"
	"github.com/campusware/registrar/internal/store"
	appErrors "github.com/campusware/registrar/pkg/errors"
	"github.com/campusware/registrar/pkg/idgen"
)

// CreateUserRequest describes an admin-created account.
type CreateUserRequest struct {
	Username     string `validate:"required,excludesall=0x2C"`
	Password     string `validate:"required,min=4"`
	Role         string `validate:"required,oneof=student teacher"`
	Name         string `validate:"required,excludesall=0x2C"`
	Email        string `validate:"required,excludesall=0x2C"`
	Phone        string `validate:"excludesall=0x2C"`
	Address      string `validate:"excludesall=0x2C"`
	DepartmentID string `validate:"excludesall=0x2C"`
}

// UserService covers the admin-side account operations.
type UserService struct {
	store     *store.Store
	hasher    passwordHasher
	validator *validator.Validate
	logger    *zap.Logger
}

// NewUserService constructs a UserService.
func NewUserService(st *store.Store, hasher passwordHasher, validate *validator.Validate, logger *zap.Logger) *UserService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{store: st, hasher: hasher, validator: validate, logger: logger}
}

// Create registers a teacher or student on behalf of an administrator.
func (s *UserService) Create(req CreateUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid user payload")
	}
	if _, exists := s.store.FindUser(req.Username); exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "username already exists")
	}
	if req.DepartmentID != "" {
		if _, ok := s.store.FindDepartment(req.DepartmentID); !ok {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "department not found")
		}
	}

	prefix := studentIDPrefix
	if req.Role == string(models.RoleTeacher) {
		prefix = teacherIDPrefix
	}
	ids := make([]string, 0, s.store.Users.Len())
	for _, u := range s.store.Users.All() {
		ids = append(ids, u.ID)
	}

	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to hash password")
	}

	user := models.User{
		ID:           idgen.NextID(prefix, ids),
		Username:     req.Username,
		PasswordHash: digest,
		Role:         models.UserRole(req.Role),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		DepartmentID: req.DepartmentID,
		DateJoined:   time.Now().Unix(),
	}
	s.store.Users.Insert(user)
	s.logger.Info("user created", zap.String("id", user.ID), zap.String("role", req.Role))
	return &user, nil
}

// List returns every account in load order.
func (s *UserService) List() []models.User {
	return s.store.Users.All()
}

// Delete removes an account by identifier. Records referencing the user
// (courses, enrollments, grades, attendance) are left untouched and may
// dangle; deletes do not cascade.
func (s *UserService) Delete(id string) error {
	if id == store.DefaultAdminID {
		return appErrors.Clone(appErrors.ErrForbidden, "the bootstrap administrator cannot be deleted")
	}
	if !s.store.Users.Remove(id) {
		return appErrors.Clone(appErrors.ErrNotFound, "user not found")
	}
	s.logger.Info("user deleted", zap.String("id", id))
	return nil
}
