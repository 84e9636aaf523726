package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusware/registrar/internal/models"
)

func fixtureStore(t *testing.T) *Store {
	t.Helper()
	s := openTestStore(t, t.TempDir())
	s.Users.Insert(models.User{ID: "TCH001", Username: "teacher1", Role: models.RoleTeacher, Name: "Dr. John Smith"})
	s.Users.Insert(models.User{ID: "STU001", Username: "student1", Role: models.RoleStudent, Name: "Alice Johnson"})
	s.Courses.Insert(models.Course{ID: "CS101", Name: "Intro", TeacherID: "TCH001"})
	s.Courses.Insert(models.Course{ID: "CS201", Name: "Data Structures", TeacherID: "TCH001"})
	s.Courses.Insert(models.Course{ID: "MATH201", Name: "Calculus II", TeacherID: "TCH002"})
	s.Exams.Insert(models.Exam{ID: "EX001", CourseID: "CS101", TotalMarks: 100})
	s.Exams.Insert(models.Exam{ID: "EX002", CourseID: "CS101", TotalMarks: 150})
	s.Exams.Insert(models.Exam{ID: "EX003", CourseID: "MATH201", TotalMarks: 25})
	s.Grades.Insert(models.Grade{StudentID: "STU001", ExamID: "EX001", MarksObtained: 85, LetterGrade: "B+"})
	s.Grades.Insert(models.Grade{StudentID: "STU001", ExamID: "EX002", MarksObtained: 120, LetterGrade: "A-"})
	s.Enrollments.Insert(models.Enrollment{StudentID: "STU001", CourseID: "CS101", Status: models.EnrollmentStatusEnrolled})
	s.Enrollments.Insert(models.Enrollment{StudentID: "STU001", CourseID: "MATH201", Status: models.EnrollmentStatusDropped})
	s.Attendance.Insert(models.Attendance{StudentID: "STU001", CourseID: "CS101", Date: "2025-08-15", Status: models.AttendancePresent})
	s.Attendance.Insert(models.Attendance{StudentID: "STU001", CourseID: "CS101", Date: "2025-08-16", Status: models.AttendanceLate})
	return s
}

func TestFindUserByUsernameAndID(t *testing.T) {
	s := fixtureStore(t)

	u, ok := s.FindUser("teacher1")
	require.True(t, ok)
	assert.Equal(t, "TCH001", u.ID)

	u, ok = s.FindUserByID("STU001")
	require.True(t, ok)
	assert.Equal(t, "student1", u.Username)

	_, ok = s.FindUser("ghost")
	assert.False(t, ok)
}

func TestCoursesByTeacherPreservesOrder(t *testing.T) {
	s := fixtureStore(t)

	courses := s.CoursesByTeacher("TCH001")
	require.Len(t, courses, 2)
	assert.Equal(t, "CS101", courses[0].ID)
	assert.Equal(t, "CS201", courses[1].ID)

	assert.Empty(t, s.CoursesByTeacher("TCH999"))
}

func TestExamsByCourse(t *testing.T) {
	s := fixtureStore(t)

	exams := s.ExamsByCourse("CS101")
	require.Len(t, exams, 2)
	assert.Equal(t, "EX001", exams[0].ID)
	assert.Equal(t, "EX002", exams[1].ID)
}

func TestEnrollmentAndGradeDerivations(t *testing.T) {
	s := fixtureStore(t)

	enrollments := s.EnrollmentsByStudent("STU001")
	require.Len(t, enrollments, 2)

	grades := s.GradesByStudent("STU001")
	require.Len(t, grades, 2)
	assert.Equal(t, "EX001", grades[0].ExamID)

	roster := s.EnrollmentsByCourse("CS101")
	require.Len(t, roster, 1)
	assert.Equal(t, "STU001", roster[0].StudentID)
}

func TestIsEnrolledCountsOnlyEnrolledStatus(t *testing.T) {
	s := fixtureStore(t)

	assert.True(t, s.IsEnrolled("STU001", "CS101"))
	// Dropped enrollment does not count.
	assert.False(t, s.IsEnrolled("STU001", "MATH201"))
	assert.False(t, s.IsEnrolled("STU999", "CS101"))
}

func TestAttendanceDerivations(t *testing.T) {
	s := fixtureStore(t)

	byStudent := s.AttendanceByStudent("STU001")
	require.Len(t, byStudent, 2)
	assert.Equal(t, "2025-08-15", byStudent[0].Date)

	byCourse := s.AttendanceByCourse("CS101")
	assert.Len(t, byCourse, 2)
}
