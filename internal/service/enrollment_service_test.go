package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusware/registrar/internal/models"
	appErrors "github.com/campusware/registrar/pkg/errors"
)

func TestEnrollAndExclusivity(t *testing.T) {
	s := newTestStore(t)
	seedTeachingFixture(t, s)
	svc := NewEnrollmentService(s, nil, nil)

	enrollment, err := svc.Enroll(EnrollRequest{StudentID: "STU001", CourseID: "CS101"})
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentStatusEnrolled, enrollment.Status)
	assert.True(t, s.IsEnrolled("STU001", "CS101"))

	// A second active enrollment for the same pair is rejected.
	_, err = svc.Enroll(EnrollRequest{StudentID: "STU001", CourseID: "CS101"})
	assert.True(t, appErrors.Is(err, appErrors.ErrConflict))
	assert.Equal(t, 1, s.Enrollments.Len())
}

func TestReEnrollAfterDrop(t *testing.T) {
	s := newTestStore(t)
	seedTeachingFixture(t, s)
	svc := NewEnrollmentService(s, nil, nil)

	_, err := svc.Enroll(EnrollRequest{StudentID: "STU001", CourseID: "CS101"})
	require.NoError(t, err)
	require.NoError(t, svc.UpdateStatus("STU001", "CS101", models.EnrollmentStatusDropped, ""))
	assert.False(t, s.IsEnrolled("STU001", "CS101"))

	// Dropping cleared the active record, so enrolling again succeeds.
	_, err = svc.Enroll(EnrollRequest{StudentID: "STU001", CourseID: "CS101"})
	require.NoError(t, err)
	assert.True(t, s.IsEnrolled("STU001", "CS101"))
	assert.Equal(t, 2, s.Enrollments.Len())
}

func TestUpdateStatusTargetsActiveRecord(t *testing.T) {
	s := newTestStore(t)
	seedTeachingFixture(t, s)
	svc := NewEnrollmentService(s, nil, nil)

	_, err := svc.Enroll(EnrollRequest{StudentID: "STU001", CourseID: "CS101"})
	require.NoError(t, err)
	require.NoError(t, svc.UpdateStatus("STU001", "CS101", models.EnrollmentStatusDropped, ""))
	_, err = svc.Enroll(EnrollRequest{StudentID: "STU001", CourseID: "CS101"})
	require.NoError(t, err)

	// Completing must close the new active record, not touch the dropped one.
	require.NoError(t, svc.UpdateStatus("STU001", "CS101", models.EnrollmentStatusCompleted, "A-"))
	all := svc.ByStudent("STU001")
	require.Len(t, all, 2)
	assert.Equal(t, models.EnrollmentStatusDropped, all[0].Status)
	assert.Equal(t, models.EnrollmentStatusCompleted, all[1].Status)
	assert.Equal(t, "A-", all[1].Grade)
}

func TestUpdateStatusWithoutActiveEnrollment(t *testing.T) {
	s := newTestStore(t)
	seedTeachingFixture(t, s)
	svc := NewEnrollmentService(s, nil, nil)

	err := svc.UpdateStatus("STU001", "CS101", models.EnrollmentStatusCompleted, "A")
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}

func TestEnrollRejectsUnknownStudentOrCourse(t *testing.T) {
	s := newTestStore(t)
	seedTeachingFixture(t, s)
	svc := NewEnrollmentService(s, nil, nil)

	_, err := svc.Enroll(EnrollRequest{StudentID: "STU999", CourseID: "CS101"})
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))

	_, err = svc.Enroll(EnrollRequest{StudentID: "STU001", CourseID: "GHOST"})
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))

	// Teachers cannot be enrolled as students.
	_, err = svc.Enroll(EnrollRequest{StudentID: "TCH001", CourseID: "CS101"})
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}
