package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campusware/registrar/internal/models"
	"github.com/campusware/registrar/internal/store"
	appErrors "github.com/campusware/registrar/pkg/errors"
	"github.com/campusware/registrar/pkg/export"
)

// ReportFormat selects the rendered artifact type.
type ReportFormat string

// Supported report formats.
const (
	FormatCSV ReportFormat = "csv"
	FormatPDF ReportFormat = "pdf"
)

type artifactStorage interface {
	Save(filename string, data []byte) (string, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// Summary aggregates entity counts for the admin report view.
type Summary struct {
	Users       int
	Teachers    int
	Students    int
	Departments int
	Semesters   int
	Courses     int
	Exams       int
	Grades      int
	Enrollments int
	Attendance  int
}

// ReportService builds report datasets and persists rendered artifacts.
type ReportService struct {
	store   *store.Store
	storage artifactStorage
	csv     csvRenderer
	pdf     pdfRenderer
	logger  *zap.Logger
}

// NewReportService constructs a ReportService.
func NewReportService(st *store.Store, storage artifactStorage, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{
		store:   st,
		storage: storage,
		csv:     export.NewCSVExporter(),
		pdf:     export.NewPDFExporter(),
		logger:  logger,
	}
}

// Transcript builds the student's transcript: one row per enrollment with
// credits and the free-text final grade, plus attempted/earned totals. A
// non-empty final grade other than F earns the course credits.
func (s *ReportService) Transcript(studentID string) (export.Dataset, string, error) {
	student, ok := s.store.FindUserByID(studentID)
	if !ok || student.Role != models.RoleStudent {
		return export.Dataset{}, "", appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}

	data := export.Dataset{Headers: []string{"Course ID", "Course Name", "Credits", "Grade", "Status"}}
	attempted, earned := 0, 0
	for _, enrollment := range s.store.EnrollmentsByStudent(studentID) {
		course, ok := s.store.FindCourse(enrollment.CourseID)
		if !ok {
			continue
		}
		data.Append(course.ID, course.Name, strconv.Itoa(course.Credits), enrollment.Grade, string(enrollment.Status))
		attempted += course.Credits
		if enrollment.Grade != "" && enrollment.Grade != "F" {
			earned += course.Credits
		}
	}
	data.Footer = []string{
		fmt.Sprintf("Total Credits Attempted: %d", attempted),
		fmt.Sprintf("Total Credits Earned: %d", earned),
	}
	title := fmt.Sprintf("Official Transcript - %s (%s)", student.Name, student.ID)
	return data, title, nil
}

// Roster builds the course roster: one row per enrollment with student
// details.
func (s *ReportService) Roster(courseID string) (export.Dataset, string, error) {
	course, ok := s.store.FindCourse(courseID)
	if !ok {
		return export.Dataset{}, "", appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}

	data := export.Dataset{Headers: []string{"Student ID", "Name", "Grade", "Status"}}
	for _, enrollment := range s.store.EnrollmentsByCourse(courseID) {
		name := ""
		if student, ok := s.store.FindUserByID(enrollment.StudentID); ok {
			name = student.Name
		}
		data.Append(enrollment.StudentID, name, enrollment.Grade, string(enrollment.Status))
	}
	return data, fmt.Sprintf("Course Roster - %s", course.Name), nil
}

// GradeSheet builds the per-exam grade table for a course.
func (s *ReportService) GradeSheet(courseID string) (export.Dataset, string, error) {
	course, ok := s.store.FindCourse(courseID)
	if !ok {
		return export.Dataset{}, "", appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}

	data := export.Dataset{Headers: []string{"Student ID", "Student Name", "Exam", "Marks", "Grade", "Comments"}}
	for _, exam := range s.store.ExamsByCourse(courseID) {
		for _, grade := range s.store.Grades.All() {
			if grade.ExamID != exam.ID {
				continue
			}
			name := ""
			if student, ok := s.store.FindUserByID(grade.StudentID); ok {
				name = student.Name
			}
			data.Append(grade.StudentID, name, exam.Name,
				fmt.Sprintf("%d/%d", grade.MarksObtained, exam.TotalMarks), grade.LetterGrade, grade.Comments)
		}
	}
	return data, fmt.Sprintf("Grades - %s", course.Name), nil
}

// Render writes the dataset to storage in the requested format and returns
// the artifact path. Filenames carry a random suffix so repeated exports
// never overwrite each other.
func (s *ReportService) Render(data export.Dataset, title, kind string, format ReportFormat) (string, error) {
	var payload []byte
	var err error
	switch format {
	case FormatCSV:
		payload, err = s.csv.Render(data)
	case FormatPDF:
		payload, err = s.pdf.Render(data, title)
	default:
		return "", appErrors.Clone(appErrors.ErrValidation, "unsupported report format")
	}
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to render report")
	}

	filename := fmt.Sprintf("%s_%s_%s.%s", kind, time.Now().Format("20060102"), uuid.NewString()[:8], format)
	path, err := s.storage.Save(filename, payload)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to store report")
	}
	s.logger.Info("report written", zap.String("kind", kind), zap.String("path", path))
	return path, nil
}

// Totals counts every collection for the admin overview.
func (s *ReportService) Totals() Summary {
	sum := Summary{
		Users:       s.store.Users.Len(),
		Departments: s.store.Departments.Len(),
		Semesters:   s.store.Semesters.Len(),
		Courses:     s.store.Courses.Len(),
		Exams:       s.store.Exams.Len(),
		Grades:      s.store.Grades.Len(),
		Enrollments: s.store.Enrollments.Len(),
		Attendance:  s.store.Attendance.Len(),
	}
	for _, u := range s.store.Users.All() {
		switch u.Role {
		case models.RoleTeacher:
			sum.Teachers++
		case models.RoleStudent:
			sum.Students++
		}
	}
	return sum
}
