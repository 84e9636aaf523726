package service

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campusware/registrar/internal/models"
	"github.com/campusware/registrar/internal/store"
	appErrors "github.com/campusware/registrar/pkg/errors"
)

// LetterGrade maps a marks fraction onto the fixed percentage ladder. Lower
// band bounds are inclusive: exactly 90% is A+, exactly 50% is C-.
func LetterGrade(marks, totalMarks int) string {
	percentage := float64(marks) / float64(totalMarks) * 100
	switch {
	case percentage >= 90:
		return "A+"
	case percentage >= 85:
		return "A"
	case percentage >= 80:
		return "A-"
	case percentage >= 75:
		return "B+"
	case percentage >= 70:
		return "B"
	case percentage >= 65:
		return "B-"
	case percentage >= 60:
		return "C+"
	case percentage >= 55:
		return "C"
	case percentage >= 50:
		return "C-"
	default:
		return "F"
	}
}

// EnterGradeRequest describes marks entry for one (student, exam) pair.
// TeacherID is the caller entering the marks.
type EnterGradeRequest struct {
	StudentID string `validate:"required"`
	ExamID    string `validate:"required"`
	TeacherID string `validate:"required"`
	Marks     int    `validate:"gte=0"`
	Comments  string `validate:"excludesall=0x2C"`
}

// GradeRow joins a grade with its course and exam for display.
type GradeRow struct {
	CourseID    string
	CourseName  string
	ExamName    string
	Marks       int
	TotalMarks  int
	LetterGrade string
	Comments    string
	StudentID   string
	StudentName string
}

// GradeService covers marks entry and grade views.
type GradeService struct {
	store     *store.Store
	validator *validator.Validate
	logger    *zap.Logger
}

// NewGradeService constructs a GradeService.
func NewGradeService(st *store.Store, validate *validator.Validate, logger *zap.Logger) *GradeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GradeService{store: st, validator: validate, logger: logger}
}

// Enter records marks for a student on an exam. The exam's course must be
// taught by the caller and the student actively enrolled in it; marks must
// fall within [0, totalMarks]. Entering marks for a pair that already has a
// grade updates the existing record in place, so the pair stays unique.
func (s *GradeService) Enter(req EnterGradeRequest) (*models.Grade, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid grade payload")
	}
	exam, ok := s.store.FindExam(req.ExamID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "exam not found")
	}
	course, ok := s.store.FindCourse(exam.CourseID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	if course.TeacherID != req.TeacherID {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "course is not taught by this teacher")
	}
	if !s.store.IsEnrolled(req.StudentID, course.ID) {
		return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "student not enrolled in course")
	}
	if req.Marks < 0 || req.Marks > exam.TotalMarks {
		return nil, appErrors.Clone(appErrors.ErrValidation, "marks outside valid range")
	}

	grade := models.Grade{
		StudentID:     req.StudentID,
		ExamID:        req.ExamID,
		MarksObtained: req.Marks,
		LetterGrade:   LetterGrade(req.Marks, exam.TotalMarks),
		Comments:      req.Comments,
	}

	if _, exists := s.store.FindGrade(req.StudentID, req.ExamID); exists {
		s.store.Grades.Update(grade.Key(), func(g *models.Grade) {
			g.MarksObtained = grade.MarksObtained
			g.LetterGrade = grade.LetterGrade
			g.Comments = grade.Comments
		})
		s.logger.Info("grade updated", zap.String("student", req.StudentID), zap.String("exam", req.ExamID))
	} else {
		s.store.Grades.Insert(grade)
		s.logger.Info("grade entered", zap.String("student", req.StudentID), zap.String("exam", req.ExamID))
	}
	return &grade, nil
}

// ByStudent returns every grade recorded for the student in load order.
func (s *GradeService) ByStudent(studentID string) []models.Grade {
	return s.store.GradesByStudent(studentID)
}

// StudentRows joins the student's grades with course and exam details for
// display, following the student's enrollments in load order.
func (s *GradeService) StudentRows(studentID string) []GradeRow {
	var rows []GradeRow
	for _, enrollment := range s.store.EnrollmentsByStudent(studentID) {
		course, ok := s.store.FindCourse(enrollment.CourseID)
		if !ok {
			continue
		}
		for _, exam := range s.store.ExamsByCourse(course.ID) {
			grade, ok := s.store.FindGrade(studentID, exam.ID)
			if !ok {
				continue
			}
			rows = append(rows, GradeRow{
				CourseID:    course.ID,
				CourseName:  course.Name,
				ExamName:    exam.Name,
				Marks:       grade.MarksObtained,
				TotalMarks:  exam.TotalMarks,
				LetterGrade: grade.LetterGrade,
				Comments:    grade.Comments,
				StudentID:   studentID,
			})
		}
	}
	return rows
}

// CourseRows joins every grade entered for the course's exams with student
// details, exam by exam.
func (s *GradeService) CourseRows(courseID string) []GradeRow {
	var rows []GradeRow
	for _, exam := range s.store.ExamsByCourse(courseID) {
		for _, grade := range s.store.Grades.All() {
			if grade.ExamID != exam.ID {
				continue
			}
			student, ok := s.store.FindUserByID(grade.StudentID)
			if !ok {
				continue
			}
			rows = append(rows, GradeRow{
				CourseID:    courseID,
				ExamName:    exam.Name,
				Marks:       grade.MarksObtained,
				TotalMarks:  exam.TotalMarks,
				LetterGrade: grade.LetterGrade,
				Comments:    grade.Comments,
				StudentID:   student.ID,
				StudentName: student.Name,
			})
		}
	}
	return rows
}
