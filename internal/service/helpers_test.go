package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campusware/registrar/internal/models"
	"github.com/campusware/registrar/internal/store"
)

// fakeHasher keeps service tests fast and digests inspectable.
type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) {
	return "digest:" + plain, nil
}

func (fakeHasher) Verify(digest, plain string) bool {
	return strings.TrimPrefix(digest, "digest:") == plain
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(t.TempDir(), store.Options{
		AdminUsername: "admin",
		AdminPassword: "admin123",
		HashPassword:  fakeHasher{}.Hash,
	})
	require.NoError(t, err)
	return s
}

// seedTeachingFixture loads the store with one teacher, one student and one
// course ready for enrollment and grading scenarios.
func seedTeachingFixture(t *testing.T, s *store.Store) {
	t.Helper()
	s.Users.Insert(models.User{ID: "TCH001", Username: "teacher1", Role: models.RoleTeacher, Name: "Dr. John Smith", DateJoined: 1})
	s.Users.Insert(models.User{ID: "STU001", Username: "student1", Role: models.RoleStudent, Name: "Alice Johnson", DateJoined: 1})
	s.Departments.Insert(models.Department{ID: "CSE", Name: "Computer Science"})
	s.Semesters.Insert(models.Semester{ID: "FALL2025", Name: "Fall 2025", Status: models.SemesterStatusActive})
	s.Courses.Insert(models.Course{ID: "CS101", Name: "Introduction to Computer Science", TeacherID: "TCH001", DepartmentID: "CSE", SemesterID: "FALL2025", Credits: 3, MaxStudents: 30})
}
