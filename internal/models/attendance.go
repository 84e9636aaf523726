package models

// AttendanceStatus marks a student's presence for one class date.
type AttendanceStatus string

// Possible attendance statuses.
const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
)

// Attendance is an append-only record; it has no key and is never updated.
type Attendance struct {
	StudentID string
	CourseID  string
	Date      string
	Status    AttendanceStatus
}

// MarshalLine encodes the attendance record for its persisted file.
func (a Attendance) MarshalLine() string {
	return joinLine(a.StudentID, a.CourseID, a.Date, string(a.Status))
}

// UnmarshalAttendanceLine decodes one persisted line.
func UnmarshalAttendanceLine(line string) (Attendance, bool) {
	fields, ok := splitLine(line, 4)
	if !ok {
		return Attendance{}, false
	}
	return Attendance{
		StudentID: fields[0],
		CourseID:  fields[1],
		Date:      fields[2],
		Status:    AttendanceStatus(fields[3]),
	}, true
}
