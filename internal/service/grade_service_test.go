package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusware/registrar/internal/models"
	appErrors "github.com/campusware/registrar/pkg/errors"
)

func TestLetterGradeBoundaries(t *testing.T) {
	cases := []struct {
		marks, total int
		want         string
	}{
		{90, 100, "A+"},
		{8999, 10000, "A"},
		{85, 100, "A"},
		{80, 100, "A-"},
		{75, 100, "B+"},
		{70, 100, "B"},
		{65, 100, "B-"},
		{60, 100, "C+"},
		{55, 100, "C"},
		{50, 100, "C-"},
		{4999, 10000, "F"},
		{0, 100, "F"},
		{100, 100, "A+"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, LetterGrade(tc.marks, tc.total), "marks=%d total=%d", tc.marks, tc.total)
	}
}

func examFixture(t *testing.T) (*GradeService, *EnrollmentService) {
	t.Helper()
	s := newTestStore(t)
	seedTeachingFixture(t, s)
	s.Exams.Insert(models.Exam{ID: "EX001", CourseID: "CS101", Name: "Midterm Exam", Type: models.ExamTypeMidterm, TotalMarks: 100})
	return NewGradeService(s, nil, nil), NewEnrollmentService(s, nil, nil)
}

func TestEnterGradeEndToEnd(t *testing.T) {
	grades, enrollments := examFixture(t)
	_, err := enrollments.Enroll(EnrollRequest{StudentID: "STU001", CourseID: "CS101"})
	require.NoError(t, err)

	grade, err := grades.Enter(EnterGradeRequest{
		StudentID: "STU001", ExamID: "EX001", TeacherID: "TCH001", Marks: 85, Comments: "Good work",
	})
	require.NoError(t, err)
	assert.Equal(t, "B+", grade.LetterGrade)

	got := grades.ByStudent("STU001")
	require.Len(t, got, 1)
	assert.Equal(t, *grade, got[0])
}

func TestEnterGradeUpsertsPair(t *testing.T) {
	grades, enrollments := examFixture(t)
	_, err := enrollments.Enroll(EnrollRequest{StudentID: "STU001", CourseID: "CS101"})
	require.NoError(t, err)

	_, err = grades.Enter(EnterGradeRequest{StudentID: "STU001", ExamID: "EX001", TeacherID: "TCH001", Marks: 60})
	require.NoError(t, err)
	updated, err := grades.Enter(EnterGradeRequest{StudentID: "STU001", ExamID: "EX001", TeacherID: "TCH001", Marks: 92, Comments: "Retake"})
	require.NoError(t, err)

	got := grades.ByStudent("STU001")
	require.Len(t, got, 1)
	assert.Equal(t, 92, got[0].MarksObtained)
	assert.Equal(t, "A-", got[0].LetterGrade)
	assert.Equal(t, "Retake", got[0].Comments)
	assert.Equal(t, updated.LetterGrade, got[0].LetterGrade)
}

func TestEnterGradeRejectsOutOfRangeMarks(t *testing.T) {
	grades, enrollments := examFixture(t)
	_, err := enrollments.Enroll(EnrollRequest{StudentID: "STU001", CourseID: "CS101"})
	require.NoError(t, err)

	_, err = grades.Enter(EnterGradeRequest{StudentID: "STU001", ExamID: "EX001", TeacherID: "TCH001", Marks: 101})
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
	assert.Empty(t, grades.ByStudent("STU001"))
}

func TestEnterGradeRequiresEnrollment(t *testing.T) {
	grades, _ := examFixture(t)

	_, err := grades.Enter(EnterGradeRequest{StudentID: "STU001", ExamID: "EX001", TeacherID: "TCH001", Marks: 50})
	assert.True(t, appErrors.Is(err, appErrors.ErrPreconditionFailed))
}

func TestEnterGradeRequiresCourseOwnership(t *testing.T) {
	grades, enrollments := examFixture(t)
	_, err := enrollments.Enroll(EnrollRequest{StudentID: "STU001", CourseID: "CS101"})
	require.NoError(t, err)

	_, err = grades.Enter(EnterGradeRequest{StudentID: "STU001", ExamID: "EX001", TeacherID: "TCH999", Marks: 50})
	assert.True(t, appErrors.Is(err, appErrors.ErrForbidden))
}

func TestStudentRowsJoinCourseAndExam(t *testing.T) {
	grades, enrollments := examFixture(t)
	_, err := enrollments.Enroll(EnrollRequest{StudentID: "STU001", CourseID: "CS101"})
	require.NoError(t, err)
	_, err = grades.Enter(EnterGradeRequest{StudentID: "STU001", ExamID: "EX001", TeacherID: "TCH001", Marks: 85})
	require.NoError(t, err)

	rows := grades.StudentRows("STU001")
	require.Len(t, rows, 1)
	assert.Equal(t, "Introduction to Computer Science", rows[0].CourseName)
	assert.Equal(t, "Midterm Exam", rows[0].ExamName)
	assert.Equal(t, 100, rows[0].TotalMarks)
	assert.Equal(t, "B+", rows[0].LetterGrade)
}
