package models

import "strconv"

// Grade records a student's marks for one exam. The (StudentID, ExamID) pair
// is unique: re-entering marks updates the existing record in place.
type Grade struct {
	StudentID     string
	ExamID        string
	MarksObtained int
	LetterGrade   string
	Comments      string
}

// Key returns the composite lookup key for the grade.
func (g Grade) Key() string {
	return g.StudentID + "/" + g.ExamID
}

// GradeKey builds the composite key for a (student, exam) pair.
func GradeKey(studentID, examID string) string {
	return studentID + "/" + examID
}

// MarshalLine encodes the grade for its persisted file.
func (g Grade) MarshalLine() string {
	return joinLine(
		g.StudentID,
		g.ExamID,
		strconv.Itoa(g.MarksObtained),
		g.LetterGrade,
		g.Comments,
	)
}

// UnmarshalGradeLine decodes one persisted line.
func UnmarshalGradeLine(line string) (Grade, bool) {
	fields, ok := splitLine(line, 5)
	if !ok {
		return Grade{}, false
	}
	marks, err := strconv.Atoi(fields[2])
	if err != nil {
		return Grade{}, false
	}
	return Grade{
		StudentID:     fields[0],
		ExamID:        fields[1],
		MarksObtained: marks,
		LetterGrade:   fields[3],
		Comments:      fields[4],
	}, true
}
