package models

import "strconv"

// Course is a class offering taught by one teacher within a department and
// semester. Schedule is free text, e.g. "Mon-Wed-Fri 9:00-10:00".
type Course struct {
	ID           string
	Name         string
	TeacherID    string
	DepartmentID string
	SemesterID   string
	Credits      int
	Schedule     string
	MaxStudents  int
}

// MarshalLine encodes the course for its persisted file.
func (c Course) MarshalLine() string {
	return joinLine(
		c.ID,
		c.Name,
		c.TeacherID,
		c.DepartmentID,
		c.SemesterID,
		strconv.Itoa(c.Credits),
		c.Schedule,
		strconv.Itoa(c.MaxStudents),
	)
}

// UnmarshalCourseLine decodes one persisted line.
func UnmarshalCourseLine(line string) (Course, bool) {
	fields, ok := splitLine(line, 8)
	if !ok {
		return Course{}, false
	}
	credits, err := strconv.Atoi(fields[5])
	if err != nil {
		return Course{}, false
	}
	maxStudents, err := strconv.Atoi(fields[7])
	if err != nil {
		return Course{}, false
	}
	return Course{
		ID:           fields[0],
		Name:         fields[1],
		TeacherID:    fields[2],
		DepartmentID: fields[3],
		SemesterID:   fields[4],
		Credits:      credits,
		Schedule:     fields[6],
		MaxStudents:  maxStudents,
	}, true
}
