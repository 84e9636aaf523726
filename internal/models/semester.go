package models

// SemesterStatus represents the lifecycle of a semester.
type SemesterStatus string

// Possible semester statuses.
const (
	SemesterStatusActive    SemesterStatus = "active"
	SemesterStatusCompleted SemesterStatus = "completed"
	SemesterStatusUpcoming  SemesterStatus = "upcoming"
)

// Semester is an academic term that courses are offered in.
type Semester struct {
	ID        string
	Name      string
	StartDate string
	EndDate   string
	Status    SemesterStatus
}

// MarshalLine encodes the semester for its persisted file.
func (s Semester) MarshalLine() string {
	return joinLine(s.ID, s.Name, s.StartDate, s.EndDate, string(s.Status))
}

// UnmarshalSemesterLine decodes one persisted line.
func UnmarshalSemesterLine(line string) (Semester, bool) {
	fields, ok := splitLine(line, 5)
	if !ok {
		return Semester{}, false
	}
	return Semester{
		ID:        fields[0],
		Name:      fields[1],
		StartDate: fields[2],
		EndDate:   fields[3],
		Status:    SemesterStatus(fields[4]),
	}, true
}
