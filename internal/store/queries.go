package store

import "github.com/campusware/registrar/internal/models"

// Lookups and derivations are linear scans over the relevant collection.
// First match wins and source order is preserved, so results are stable
// across calls between mutations.

// FindUser returns the user with the given username.
func (s *Store) FindUser(username string) (models.User, bool) {
	for _, u := range s.Users.All() {
		if u.Username == username {
			return u, true
		}
	}
	return models.User{}, false
}

// FindUserByID returns the user with the given identifier.
func (s *Store) FindUserByID(id string) (models.User, bool) {
	return s.Users.Find(id)
}

// FindDepartment returns the department with the given identifier.
func (s *Store) FindDepartment(id string) (models.Department, bool) {
	return s.Departments.Find(id)
}

// FindSemester returns the semester with the given identifier.
func (s *Store) FindSemester(id string) (models.Semester, bool) {
	return s.Semesters.Find(id)
}

// FindCourse returns the course with the given identifier.
func (s *Store) FindCourse(id string) (models.Course, bool) {
	return s.Courses.Find(id)
}

// FindExam returns the exam with the given identifier.
func (s *Store) FindExam(id string) (models.Exam, bool) {
	return s.Exams.Find(id)
}

// FindGrade returns the grade for one (student, exam) pair.
func (s *Store) FindGrade(studentID, examID string) (models.Grade, bool) {
	return s.Grades.Find(models.GradeKey(studentID, examID))
}

// CoursesByTeacher returns every course taught by the teacher, in source order.
func (s *Store) CoursesByTeacher(teacherID string) []models.Course {
	var out []models.Course
	for _, c := range s.Courses.All() {
		if c.TeacherID == teacherID {
			out = append(out, c)
		}
	}
	return out
}

// ExamsByCourse returns every exam held for the course, in source order.
func (s *Store) ExamsByCourse(courseID string) []models.Exam {
	var out []models.Exam
	for _, e := range s.Exams.All() {
		if e.CourseID == courseID {
			out = append(out, e)
		}
	}
	return out
}

// EnrollmentsByStudent returns every enrollment of the student regardless of
// status, in source order.
func (s *Store) EnrollmentsByStudent(studentID string) []models.Enrollment {
	var out []models.Enrollment
	for _, e := range s.Enrollments.All() {
		if e.StudentID == studentID {
			out = append(out, e)
		}
	}
	return out
}

// EnrollmentsByCourse returns the course roster: every enrollment for the
// course regardless of status, in source order.
func (s *Store) EnrollmentsByCourse(courseID string) []models.Enrollment {
	var out []models.Enrollment
	for _, e := range s.Enrollments.All() {
		if e.CourseID == courseID {
			out = append(out, e)
		}
	}
	return out
}

// GradesByStudent returns every grade recorded for the student, in source
// order.
func (s *Store) GradesByStudent(studentID string) []models.Grade {
	var out []models.Grade
	for _, g := range s.Grades.All() {
		if g.StudentID == studentID {
			out = append(out, g)
		}
	}
	return out
}

// AttendanceByStudent returns the student's attendance records, in source
// order.
func (s *Store) AttendanceByStudent(studentID string) []models.Attendance {
	var out []models.Attendance
	for _, a := range s.Attendance.All() {
		if a.StudentID == studentID {
			out = append(out, a)
		}
	}
	return out
}

// AttendanceByCourse returns the course's attendance records, in source order.
func (s *Store) AttendanceByCourse(courseID string) []models.Attendance {
	var out []models.Attendance
	for _, a := range s.Attendance.All() {
		if a.CourseID == courseID {
			out = append(out, a)
		}
	}
	return out
}

// IsEnrolled reports whether an enrollment with status exactly "enrolled"
// exists for the pair. Completed and dropped enrollments do not count.
func (s *Store) IsEnrolled(studentID, courseID string) bool {
	for _, e := range s.Enrollments.All() {
		if e.StudentID == studentID && e.CourseID == courseID && e.Status == models.EnrollmentStatusEnrolled {
			return true
		}
	}
	return false
}
