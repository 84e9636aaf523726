package menu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusware/registrar/internal/models"
	"github.com/campusware/registrar/internal/service"
	"github.com/campusware/registrar/internal/store"
)

type scriptHasher struct{}

func (scriptHasher) Hash(plain string) (string, error) { return "digest:" + plain, nil }
func (scriptHasher) Verify(digest, plain string) bool {
	return strings.TrimPrefix(digest, "digest:") == plain
}

func newTestShell(t *testing.T, script string) (*Menu, *bytes.Buffer, *store.Store) {
	t.Helper()
	st, err := store.Open(t.TempDir(), store.Options{
		AdminUsername: "admin",
		AdminPassword: "admin123",
		HashPassword:  scriptHasher{}.Hash,
	})
	require.NoError(t, err)

	hasher := scriptHasher{}
	svc := Services{
		Auth:        service.NewAuthService(st, hasher, nil, nil),
		Users:       service.NewUserService(st, hasher, nil, nil),
		Departments: service.NewDepartmentService(st, nil, nil),
		Semesters:   service.NewSemesterService(st, nil, nil),
		Courses:     service.NewCourseService(st, nil, nil),
		Exams:       service.NewExamService(st, nil, nil),
		Enrollments: service.NewEnrollmentService(st, nil, nil),
		Grades:      service.NewGradeService(st, nil, nil),
		Attendance:  service.NewAttendanceService(st, nil, nil),
	}

	out := &bytes.Buffer{}
	return New(st, svc, strings.NewReader(script), out, nil), out, st
}

func TestRunExitSavesAndStops(t *testing.T) {
	m, out, _ := newTestShell(t, "3\n")
	require.NoError(t, m.Run())
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestRunSavesWhenInputEnds(t *testing.T) {
	m, _, _ := newTestShell(t, "")
	require.NoError(t, m.Run())
}

func TestLoginRejectsBadPassword(t *testing.T) {
	m, out, _ := newTestShell(t, "1\nadmin\nwrong\n3\n")
	require.NoError(t, m.Run())
	assert.Contains(t, out.String(), "Error:")
	assert.NotContains(t, out.String(), "Welcome")
}

func TestSignupThenStudentEnrolls(t *testing.T) {
	// Entry menu: sign up, log in as the new student, enroll in CS101,
	// log out and exit.
	script := strings.Join([]string{
		"2",                       // sign up
		"carol", "pass123", "student", "Carol Brown", "carol.b@student.edu", "", "", "CSE",
		"1",            // login
		"carol", "pass123",
		"3", "CS101",   // enroll
		"9",            // logout
		"3",            // exit
	}, "\n") + "\n"

	m, out, st := newTestShell(t, script)
	st.Users.Insert(models.User{ID: "TCH001", Username: "teacher1", Role: models.RoleTeacher, Name: "Dr. John Smith"})
	st.Departments.Insert(models.Department{ID: "CSE", Name: "Computer Science"})
	st.Semesters.Insert(models.Semester{ID: "FALL2025", Name: "Fall 2025", Status: models.SemesterStatusActive})
	st.Courses.Insert(models.Course{ID: "CS101", Name: "Introduction to Computer Science", TeacherID: "TCH001", DepartmentID: "CSE", SemesterID: "FALL2025", Credits: 3})

	require.NoError(t, m.Run())

	assert.Contains(t, out.String(), "Account created. Your ID is STU001.")
	assert.Contains(t, out.String(), "Welcome, Carol Brown!")
	assert.Contains(t, out.String(), "Enrolled.")
	assert.True(t, st.IsEnrolled("STU001", "CS101"))
}

func TestAdminListsUsers(t *testing.T) {
	script := strings.Join([]string{
		"1", "admin", "admin123", // login
		"1",      // manage users
		"1",      // list
		"4",      // back
		"8",      // logout
		"3",      // exit
	}, "\n") + "\n"

	m, out, _ := newTestShell(t, script)
	require.NoError(t, m.Run())
	assert.Contains(t, out.String(), "admin001")
}
