// Package seed loads a deterministic demo fixture so a fresh installation
// has data to explore from every role.
package seed

import (
	"time"

	"go.uber.org/zap"

	"github.com/campusware/registrar/internal/models"
	"github.com/campusware/registrar/internal/store"
	appErrors "github.com/campusware/registrar/pkg/errors"
)

// Apply replaces the academic collections with the demo fixture and persists
// everything. Seeded users are inserted only when their ID is free, so the
// bootstrap admin and any accounts created earlier survive a re-seed.
func Apply(st *store.Store, hash func(string) (string, error), logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	digest, err := hash("pass123")
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to hash seed password")
	}
	joined := time.Now().Unix()

	users := []models.User{
		{ID: "TCH001", Username: "teacher1", PasswordHash: digest, Role: models.RoleTeacher, Name: "Dr. John Smith", Email: "john.smith@university.edu", Phone: "123-456-7890", Address: "123 University Ave", DepartmentID: "CSE", DateJoined: joined},
		{ID: "TCH002", Username: "teacher2", PasswordHash: digest, Role: models.RoleTeacher, Name: "Prof. Jane Doe", Email: "jane.doe@university.edu", Phone: "123-456-7891", Address: "124 University Ave", DepartmentID: "MATH", DateJoined: joined},
		{ID: "STU001", Username: "student1", PasswordHash: digest, Role: models.RoleStudent, Name: "Alice Johnson", Email: "alice.j@student.edu", Phone: "123-456-7892", Address: "125 Campus St", DepartmentID: "CSE", DateJoined: joined},
		{ID: "STU002", Username: "student2", PasswordHash: digest, Role: models.RoleStudent, Name: "Bob Wilson", Email: "bob.w@student.edu", Phone: "123-456-7893", Address: "126 Campus St", DepartmentID: "CSE", DateJoined: joined},
		{ID: "STU003", Username: "student3", PasswordHash: digest, Role: models.RoleStudent, Name: "Carol Brown", Email: "carol.b@student.edu", Phone: "123-456-7894", Address: "127 Campus St", DepartmentID: "MATH", DateJoined: joined},
		{ID: "STU004", Username: "student4", PasswordHash: digest, Role: models.RoleStudent, Name: "David Lee", Email: "david.l@student.edu", Phone: "123-456-7895", Address: "128 Campus St", DepartmentID: "MATH", DateJoined: joined},
	}
	for _, u := range users {
		if _, exists := st.FindUserByID(u.ID); !exists {
			st.Users.Insert(u)
		}
	}

	st.Departments.Replace([]models.Department{
		{ID: "CSE", Name: "Computer Science & Engineering", HeadOfDept: "Dr. Alice Smith", Description: "Computer Science Department"},
		{ID: "MATH", Name: "Mathematics", HeadOfDept: "Dr. Bob Johnson", Description: "Mathematics Department"},
	})

	st.Semesters.Replace([]models.Semester{
		{ID: "FALL2025", Name: "Fall 2025", StartDate: "2025-08-15", EndDate: "2025-12-15", Status: models.SemesterStatusActive},
		{ID: "SPRING2026", Name: "Spring 2026", StartDate: "2026-01-15", EndDate: "2026-05-15", Status: models.SemesterStatusUpcoming},
	})

	st.Courses.Replace([]models.Course{
		{ID: "CS101", Name: "Introduction to Computer Science", TeacherID: "TCH001", DepartmentID: "CSE", SemesterID: "FALL2025", Credits: 3, Schedule: "Mon-Wed-Fri 9:00-10:00", MaxStudents: 30},
		{ID: "MATH201", Name: "Calculus II", TeacherID: "TCH002", DepartmentID: "MATH", SemesterID: "FALL2025", Credits: 4, Schedule: "Tue-Thu 10:00-11:30", MaxStudents: 25},
	})

	st.Exams.Replace([]models.Exam{
		{ID: "EX001", CourseID: "CS101", Name: "Midterm Exam", Date: "2025-10-15", Time: "10:00-12:00", Type: models.ExamTypeMidterm, TotalMarks: 100},
		{ID: "EX002", CourseID: "CS101", Name: "Final Exam", Date: "2025-12-10", Time: "14:00-17:00", Type: models.ExamTypeFinal, TotalMarks: 150},
		{ID: "EX003", CourseID: "MATH201", Name: "Quiz 1", Date: "2025-09-20", Time: "10:00-10:30", Type: models.ExamTypeQuiz, TotalMarks: 25},
	})

	st.Enrollments.Replace([]models.Enrollment{
		{StudentID: "STU001", CourseID: "CS101", Status: models.EnrollmentStatusEnrolled},
		{StudentID: "STU002", CourseID: "CS101", Status: models.EnrollmentStatusEnrolled},
		{StudentID: "STU003", CourseID: "MATH201", Status: models.EnrollmentStatusEnrolled},
		{StudentID: "STU004", CourseID: "MATH201", Status: models.EnrollmentStatusEnrolled},
	})

	st.Grades.Replace([]models.Grade{
		{StudentID: "STU001", ExamID: "EX001", MarksObtained: 85, LetterGrade: "B+", Comments: "Good work"},
		{StudentID: "STU002", ExamID: "EX001", MarksObtained: 92, LetterGrade: "A-", Comments: "Excellent"},
		{StudentID: "STU003", ExamID: "EX003", MarksObtained: 20, LetterGrade: "A-", Comments: "Satisfactory"},
	})

	st.Attendance.Replace([]models.Attendance{
		{StudentID: "STU001", CourseID: "CS101", Date: "2025-08-15", Status: models.AttendancePresent},
		{StudentID: "STU002", CourseID: "CS101", Date: "2025-08-15", Status: models.AttendancePresent},
		{StudentID: "STU003", CourseID: "MATH201", Date: "2025-08-15", Status: models.AttendanceAbsent},
	})

	if err := st.SaveAll(); err != nil {
		return err
	}
	logger.Info("demo fixture seeded",
		zap.Int("users", st.Users.Len()),
		zap.Int("courses", st.Courses.Len()),
	)
	return nil
}
