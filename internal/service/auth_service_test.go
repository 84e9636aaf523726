package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusware/registrar/internal/models"
	appErrors "github.com/campusware/registrar/pkg/errors"
)

func TestSignUpAllocatesStudentID(t *testing.T) {
	s := newTestStore(t)
	svc := NewAuthService(s, fakeHasher{}, nil, nil)

	user, err := svc.SignUp(SignUpRequest{
		Username: "student1",
		Password: "pass123",
		Role:     "student",
		Name:     "Alice Johnson",
		Email:    "alice.j@student.edu",
	})
	require.NoError(t, err)
	assert.Equal(t, "STU001", user.ID)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.Equal(t, "digest:pass123", user.PasswordHash)
	assert.NotZero(t, user.DateJoined)

	second, err := svc.SignUp(SignUpRequest{
		Username: "student2",
		Password: "pass123",
		Role:     "student",
		Name:     "Bob Wilson",
		Email:    "bob.w@student.edu",
	})
	require.NoError(t, err)
	assert.Equal(t, "STU002", second.ID)
}

func TestSignUpTeacherPrefix(t *testing.T) {
	s := newTestStore(t)
	svc := NewAuthService(s, fakeHasher{}, nil, nil)

	user, err := svc.SignUp(SignUpRequest{
		Username: "teacher1",
		Password: "pass123",
		Role:     "teacher",
		Name:     "Dr. John Smith",
		Email:    "john.smith@university.edu",
	})
	require.NoError(t, err)
	assert.Equal(t, "TCH001", user.ID)
}

func TestSignUpRejectsDuplicateUsername(t *testing.T) {
	s := newTestStore(t)
	svc := NewAuthService(s, fakeHasher{}, nil, nil)

	_, err := svc.SignUp(SignUpRequest{Username: "admin", Password: "pass123", Role: "student", Name: "A", Email: "a@b.c"})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrConflict))
	// State unchanged: only the bootstrap admin exists.
	assert.Equal(t, 1, s.Users.Len())
}

func TestSignUpRejectsUnknownDepartment(t *testing.T) {
	s := newTestStore(t)
	svc := NewAuthService(s, fakeHasher{}, nil, nil)

	_, err := svc.SignUp(SignUpRequest{
		Username: "student1", Password: "pass123", Role: "student",
		Name: "A", Email: "a@b.c", DepartmentID: "GHOST",
	})
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}

func TestSignUpRejectsSeparatorInFields(t *testing.T) {
	s := newTestStore(t)
	svc := NewAuthService(s, fakeHasher{}, nil, nil)

	_, err := svc.SignUp(SignUpRequest{
		Username: "student1", Password: "pass123", Role: "student",
		Name: "Johnson, Alice", Email: "a@b.c",
	})
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
}

func TestLogin(t *testing.T) {
	s := newTestStore(t)
	svc := NewAuthService(s, fakeHasher{}, nil, nil)

	session, err := svc.Login("admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, session.User.Role)

	_, err = svc.Login("admin", "wrong")
	assert.True(t, appErrors.Is(err, appErrors.ErrInvalidCredentials))

	_, err = svc.Login("ghost", "admin123")
	assert.True(t, appErrors.Is(err, appErrors.ErrInvalidCredentials))
}

func TestChangePassword(t *testing.T) {
	s := newTestStore(t)
	svc := NewAuthService(s, fakeHasher{}, nil, nil)

	admin, ok := s.FindUser("admin")
	require.True(t, ok)

	require.Error(t, svc.ChangePassword(admin.ID, "wrong", "newpass"))
	require.NoError(t, svc.ChangePassword(admin.ID, "admin123", "newpass"))

	_, err := svc.Login("admin", "newpass")
	assert.NoError(t, err)
}
