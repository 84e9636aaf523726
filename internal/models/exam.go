package models

import "strconv"

// ExamType classifies an assessment.
type ExamType string

// Possible exam types.
const (
	ExamTypeMidterm    ExamType = "midterm"
	ExamTypeFinal      ExamType = "final"
	ExamTypeQuiz       ExamType = "quiz"
	ExamTypeAssignment ExamType = "assignment"
)

// Exam is an assessment held for one course.
type Exam struct {
	ID         string
	CourseID   string
	Name       string
	Date       string
	Time       string
	Type       ExamType
	TotalMarks int
}

// MarshalLine encodes the exam for its persisted file.
func (e Exam) MarshalLine() string {
	return joinLine(
		e.ID,
		e.CourseID,
		e.Name,
		e.Date,
		e.Time,
		string(e.Type),
		strconv.Itoa(e.TotalMarks),
	)
}

// UnmarshalExamLine decodes one persisted line.
func UnmarshalExamLine(line string) (Exam, bool) {
	fields, ok := splitLine(line, 7)
	if !ok {
		return Exam{}, false
	}
	total, err := strconv.Atoi(fields[6])
	if err != nil {
		return Exam{}, false
	}
	return Exam{
		ID:         fields[0],
		CourseID:   fields[1],
		Name:       fields[2],
		Date:       fields[3],
		Time:       fields[4],
		Type:       ExamType(fields[5]),
		TotalMarks: total,
	}, true
}
