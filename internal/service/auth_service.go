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

// ID prefixes for self-registered accounts.
const (
	studentIDPrefix = "STU"
	teacherIDPrefix = "TCH"
)

type passwordHasher interface {
	Hash(plain string) (string, error)
	Verify(digest, plain string) bool
}

// Session identifies the authenticated user for the current interactive run.
type Session struct {
	User models.User
}

// SignUpRequest describes a self-registration. Free-text fields must not
// contain the record field separator.
type SignUpRequest struct {
	Username     string `validate:"required,excludesall=0x2C"`
	Password     string `validate:"required,min=4"`
	Role         string `validate:"required,oneof=student teacher"`
	Name         string `validate:"required,excludesall=0x2C"`
	Email        string `validate:"required,excludesall=0x2C"`
	Phone        string `validate:"excludesall=0x2C"`
	Address      string `validate:"excludesall=0x2C"`
	DepartmentID string `validate:"excludesall=0x2C"`
}

// AuthService handles signup, login and password changes.
type AuthService struct {
	store     *store.Store
	hasher    passwordHasher
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAuthService constructs an AuthService.
func NewAuthService(st *store.Store, hasher passwordHasher, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{store: st, hasher: hasher, validator: validate, logger: logger}
}

// SignUp registers a new student or teacher account. The username must be
// unused; a department, when given, must exist. The account identifier is
// allocated from the role prefix over the current user ID set.
func (s *AuthService) SignUp(req SignUpRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid signup payload")
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
	s.logger.Info("user registered", zap.String("id", user.ID), zap.String("role", req.Role))
	return &user, nil
}

// Login authenticates by username and password, comparing digests only.
func (s *AuthService) Login(username, password string) (*Session, error) {
	user, ok := s.store.FindUser(username)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
	}
	if !s.hasher.Verify(user.PasswordHash, password) {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
	}
	s.logger.Info("login", zap.String("id", user.ID), zap.String("role", string(user.Role)))
	return &Session{User: user}, nil
}

// ChangePassword replaces the caller's digest after verifying the current
// password.
func (s *AuthService) ChangePassword(userID, current, next string) error {
	user, ok := s.store.FindUserByID(userID)
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "user not found")
	}
	if !s.hasher.Verify(user.PasswordHash, current) {
		return appErrors.Clone(appErrors.ErrInvalidCredentials, "current password does not match")
	}
	if len(next) < 4 {
		return appErrors.Clone(appErrors.ErrValidation, "new password too short")
	}
	digest, err := s.hasher.Hash(next)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to hash password")
	}
	s.store.Users.Update(userID, func(u *models.User) {
		u.PasswordHash = digest
	})
	return nil
}
