package models

// EnrollmentStatus represents the lifecycle of an enrollment.
type EnrollmentStatus string

// Possible enrollment statuses.
const (
	EnrollmentStatusEnrolled  EnrollmentStatus = "enrolled"
	EnrollmentStatusCompleted EnrollmentStatus = "completed"
	EnrollmentStatusDropped   EnrollmentStatus = "dropped"
)

// Enrollment registers a student in a course. Grade holds the free-text final
// grade assigned when the course is completed. A student has at most one
// enrollment with status "enrolled" per course; completed or dropped records
// for the same pair may accumulate.
type Enrollment struct {
	StudentID string
	CourseID  string
	Grade     string
	Status    EnrollmentStatus
}

// Key returns the composite lookup key for the enrollment.
func (e Enrollment) Key() string {
	return e.StudentID + "/" + e.CourseID
}

// EnrollmentKey builds the composite key for a (student, course) pair.
func EnrollmentKey(studentID, courseID string) string {
	return studentID + "/" + courseID
}

// MarshalLine encodes the enrollment for its persisted file.
func (e Enrollment) MarshalLine() string {
	return joinLine(e.StudentID, e.CourseID, e.Grade, string(e.Status))
}

// UnmarshalEnrollmentLine decodes one persisted line.
func UnmarshalEnrollmentLine(line string) (Enrollment, bool) {
	fields, ok := splitLine(line, 4)
	if !ok {
		return Enrollment{}, false
	}
	return Enrollment{
		StudentID: fields[0],
		CourseID:  fields[1],
		Grade:     fields[2],
		Status:    EnrollmentStatus(fields[3]),
	}, true
}
