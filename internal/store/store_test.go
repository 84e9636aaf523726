package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusware/registrar/internal/models"
)

func testHash(plain string) (string, error) {
	return "digest:" + plain, nil
}

func openTestStore(t *testing.T, dir string) *Store {
	t.Helper()
	s, err := Open(dir, Options{
		AdminUsername: "admin",
		AdminPassword: "admin123",
		HashPassword:  testHash,
	})
	require.NoError(t, err)
	return s
}

func TestOpenBootstrapsDefaultAdmin(t *testing.T) {
	dir := t.TempDir()
	s := openTestStore(t, dir)

	require.Equal(t, 1, s.Users.Len())
	admin, ok := s.FindUser("admin")
	require.True(t, ok)
	assert.Equal(t, DefaultAdminID, admin.ID)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.Equal(t, "digest:admin123", admin.PasswordHash)

	// The bootstrap record is persisted immediately.
	data, err := os.ReadFile(filepath.Join(dir, "users.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "admin001,admin,")
}

func TestOpenDoesNotBootstrapWhenUsersExist(t *testing.T) {
	dir := t.TempDir()
	s := openTestStore(t, dir)
	s.Users.Insert(models.User{ID: "STU001", Username: "student1", Role: models.RoleStudent, DateJoined: 1})
	require.NoError(t, s.SaveAll())

	reopened := openTestStore(t, dir)
	assert.Equal(t, 2, reopened.Users.Len())
}

func TestSaveAllRoundTripsEveryCollection(t *testing.T) {
	dir := t.TempDir()
	s := openTestStore(t, dir)

	s.Departments.Insert(models.Department{ID: "CSE", Name: "Computer Science", HeadOfDept: "Dr. A", Description: "d"})
	s.Semesters.Insert(models.Semester{ID: "FALL2025", Name: "Fall 2025", StartDate: "2025-08-15", EndDate: "2025-12-15", Status: models.SemesterStatusActive})
	s.Courses.Insert(models.Course{ID: "CS101", Name: "Intro", TeacherID: "TCH001", DepartmentID: "CSE", SemesterID: "FALL2025", Credits: 3, Schedule: "MWF 9-10", MaxStudents: 30})
	s.Exams.Insert(models.Exam{ID: "EX001", CourseID: "CS101", Name: "Midterm", Date: "2025-10-15", Time: "10:00-12:00", Type: models.ExamTypeMidterm, TotalMarks: 100})
	s.Grades.Insert(models.Grade{StudentID: "STU001", ExamID: "EX001", MarksObtained: 85, LetterGrade: "B+", Comments: "Good work"})
	s.Enrollments.Insert(models.Enrollment{StudentID: "STU001", CourseID: "CS101", Status: models.EnrollmentStatusEnrolled})
	s.Attendance.Insert(models.Attendance{StudentID: "STU001", CourseID: "CS101", Date: "2025-08-15", Status: models.AttendancePresent})
	require.NoError(t, s.SaveAll())

	r := openTestStore(t, dir)
	assert.Equal(t, 1, r.Departments.Len())
	assert.Equal(t, 1, r.Semesters.Len())
	assert.Equal(t, 1, r.Courses.Len())
	assert.Equal(t, 1, r.Exams.Len())
	assert.Equal(t, 1, r.Grades.Len())
	assert.Equal(t, 1, r.Enrollments.Len())
	assert.Equal(t, 1, r.Attendance.Len())

	grade, ok := r.FindGrade("STU001", "EX001")
	require.True(t, ok)
	assert.Equal(t, 85, grade.MarksObtained)
	assert.Equal(t, "B+", grade.LetterGrade)
}

func TestSemesterStatusUpdateSurvivesReload(t *testing.T) {
	dir := t.TempDir()
	s := openTestStore(t, dir)
	s.Semesters.Insert(models.Semester{ID: "FALL2025", Name: "Fall 2025", Status: models.SemesterStatusUpcoming})

	ok := s.Semesters.Update("FALL2025", func(sm *models.Semester) {
		sm.Status = models.SemesterStatusActive
	})
	require.True(t, ok)
	require.NoError(t, s.SaveAll())

	r := openTestStore(t, dir)
	sem, found := r.FindSemester("FALL2025")
	require.True(t, found)
	assert.Equal(t, models.SemesterStatusActive, sem.Status)
}
