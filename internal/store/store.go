// Package store holds the eight record collections and their flat-file
// persistence. All entity lifetimes are owned here; consumers receive the
// Store by reference and never keep long-lived copies of its records.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/campusware/registrar/internal/models"
)

// Backing file names, one per record kind.
const (
	usersFile       = "users.csv"
	departmentsFile = "departments.csv"
	semestersFile   = "semesters.csv"
	coursesFile     = "courses.csv"
	examsFile       = "exams.csv"
	gradesFile      = "grades.csv"
	enrollmentsFile = "enrollments.csv"
	attendanceFile  = "attendance.csv"
)

// DefaultAdminID is the fixed identifier of the synthesized bootstrap admin.
const DefaultAdminID = "admin001"

// Options configures Store construction.
type Options struct {
	// AdminUsername and AdminPassword seed the default administrator that is
	// synthesized when the user collection loads empty.
	AdminUsername string
	AdminPassword string

	// HashPassword digests the bootstrap admin password. Required.
	HashPassword func(plain string) (string, error)

	Logger *zap.Logger
}

// Store owns the eight collections behind one lifecycle:
// Open -> operations -> SaveAll.
type Store struct {
	dir    string
	logger *zap.Logger

	Users       *Collection[models.User]
	Departments *Collection[models.Department]
	Semesters   *Collection[models.Semester]
	Courses     *Collection[models.Course]
	Exams       *Collection[models.Exam]
	Grades      *Collection[models.Grade]
	Enrollments *Collection[models.Enrollment]
	Attendance  *Collection[models.Attendance]
}

// Open creates the data directory if needed, builds the collections and loads
// every backing file. An empty user collection is bootstrapped with a single
// default administrator, which is persisted immediately.
func Open(dir string, opts Options) (*Store, error) {
	if opts.HashPassword == nil {
		return nil, fmt.Errorf("store: HashPassword option is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	s := &Store{dir: dir, logger: logger}
	s.Users = NewCollection(filepath.Join(dir, usersFile), Codec[models.User]{
		Marshal:   models.User.MarshalLine,
		Unmarshal: models.UnmarshalUserLine,
	}, func(u models.User) string { return u.ID }, logger)
	s.Departments = NewCollection(filepath.Join(dir, departmentsFile), Codec[models.Department]{
		Marshal:   models.Department.MarshalLine,
		Unmarshal: models.UnmarshalDepartmentLine,
	}, func(d models.Department) string { return d.ID }, logger)
	s.Semesters = NewCollection(filepath.Join(dir, semestersFile), Codec[models.Semester]{
		Marshal:   models.Semester.MarshalLine,
		Unmarshal: models.UnmarshalSemesterLine,
	}, func(sm models.Semester) string { return sm.ID }, logger)
	s.Courses = NewCollection(filepath.Join(dir, coursesFile), Codec[models.Course]{
		Marshal:   models.Course.MarshalLine,
		Unmarshal: models.UnmarshalCourseLine,
	}, func(c models.Course) string { return c.ID }, logger)
	s.Exams = NewCollection(filepath.Join(dir, examsFile), Codec[models.Exam]{
		Marshal:   models.Exam.MarshalLine,
		Unmarshal: models.UnmarshalExamLine,
	}, func(e models.Exam) string { return e.ID }, logger)
	s.Grades = NewCollection(filepath.Join(dir, gradesFile), Codec[models.Grade]{
		Marshal:   models.Grade.MarshalLine,
		Unmarshal: models.UnmarshalGradeLine,
	}, models.Grade.Key, logger)
	s.Enrollments = NewCollection(filepath.Join(dir, enrollmentsFile), Codec[models.Enrollment]{
		Marshal:   models.Enrollment.MarshalLine,
		Unmarshal: models.UnmarshalEnrollmentLine,
	}, models.Enrollment.Key, logger)
	s.Attendance = NewCollection(filepath.Join(dir, attendanceFile), Codec[models.Attendance]{
		Marshal:   models.Attendance.MarshalLine,
		Unmarshal: models.UnmarshalAttendanceLine,
	}, func(models.Attendance) string { return "" }, logger)

	if err := s.LoadAll(); err != nil {
		return nil, err
	}

	if s.Users.Len() == 0 {
		if err := s.bootstrapAdmin(opts); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Dir returns the data directory the store persists into.
func (s *Store) Dir() string {
	return s.dir
}

// LoadAll reloads every collection from disk.
func (s *Store) LoadAll() error {
	loads := []func() error{
		s.Users.Load,
		s.Departments.Load,
		s.Semesters.Load,
		s.Courses.Load,
		s.Exams.Load,
		s.Grades.Load,
		s.Enrollments.Load,
		s.Attendance.Load,
	}
	for _, load := range loads {
		if err := load(); err != nil {
			return err
		}
	}
	return nil
}

// SaveAll flushes every collection to disk, returning the first write error.
func (s *Store) SaveAll() error {
	saves := []func() error{
		s.Users.Save,
		s.Departments.Save,
		s.Semesters.Save,
		s.Courses.Save,
		s.Exams.Save,
		s.Grades.Save,
		s.Enrollments.Save,
		s.Attendance.Save,
	}
	for _, save := range saves {
		if err := save(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) bootstrapAdmin(opts Options) error {
	username := opts.AdminUsername
	if username == "" {
		username = "admin"
	}
	digest, err := opts.HashPassword(opts.AdminPassword)
	if err != nil {
		return fmt.Errorf("hash bootstrap admin password: %w", err)
	}
	s.Users.Insert(models.User{
		ID:           DefaultAdminID,
		Username:     username,
		PasswordHash: digest,
		Role:         models.RoleAdmin,
		Name:         "System Administrator",
		Email:        "admin@university.edu",
		DateJoined:   time.Now().Unix(),
	})
	s.logger.Info("no users on disk, bootstrapped default administrator",
		zap.String("username", username))
	return s.Users.Save()
}
