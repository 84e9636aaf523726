package menu

import (
	"fmt"

	"github.com/campusware/registrar/internal/models"
	"github.com/campusware/registrar/internal/service"
)

func (m *Menu) runTeacher(session *service.Session) {
	teacherID := session.User.ID
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "--- Teacher Menu ---")
		fmt.Fprintln(m.out, "1. My Courses")
		fmt.Fprintln(m.out, "2. Course Roster")
		fmt.Fprintln(m.out, "3. Create Exam")
		fmt.Fprintln(m.out, "4. My Exams")
		fmt.Fprintln(m.out, "5. Delete Exam")
		fmt.Fprintln(m.out, "6. Enter Grade")
		fmt.Fprintln(m.out, "7. Course Grades")
		fmt.Fprintln(m.out, "8. Mark Attendance")
		fmt.Fprintln(m.out, "9. Course Attendance")
		fmt.Fprintln(m.out, "10. Update Enrollment Status")
		fmt.Fprintln(m.out, "11. Change Password")
		fmt.Fprintln(m.out, "12. Logout")

		choice, ok := m.readChoice()
		if !ok {
			return
		}
		switch choice {
		case 1:
			for _, c := range m.svc.Courses.ListByTeacher(teacherID) {
				fmt.Fprintf(m.out, "%-8s %-40s sem=%s credits=%d\n", c.ID, c.Name, c.SemesterID, c.Credits)
			}
		case 2:
			courseID := m.readLine("Course ID")
			for _, e := range m.svc.Enrollments.Roster(courseID) {
				name := ""
				if u, ok := m.store.FindUserByID(e.StudentID); ok {
					name = u.Name
				}
				fmt.Fprintf(m.out, "%-8s %-24s [%s]\n", e.StudentID, name, e.Status)
			}
		case 3:
			req := service.CreateExamRequest{
				CourseID:   m.readLine("Course ID"),
				TeacherID:  teacherID,
				Name:       m.readLine("Exam name"),
				Date:       m.readLine("Date (YYYY-MM-DD)"),
				Time:       m.readLine("Time"),
				Type:       m.readLine("Type (midterm/final/quiz/assignment)"),
				TotalMarks: m.readInt("Total marks"),
			}
			exam, err := m.svc.Exams.Create(req)
			if err != nil {
				m.printErr(err)
				break
			}
			fmt.Fprintf(m.out, "Exam %s created.\n", exam.ID)
		case 4:
			for _, c := range m.svc.Courses.ListByTeacher(teacherID) {
				for _, e := range m.svc.Exams.ListByCourse(c.ID) {
					fmt.Fprintf(m.out, "%-6s %-8s %-20s %s %s  /%d\n", e.ID, e.CourseID, e.Name, e.Date, e.Time, e.TotalMarks)
				}
			}
		case 5:
			if err := m.svc.Exams.Delete(m.readLine("Exam ID"), teacherID); err != nil {
				m.printErr(err)
				break
			}
			fmt.Fprintln(m.out, "Exam deleted.")
		case 6:
			req := service.EnterGradeRequest{
				StudentID: m.readLine("Student ID"),
				ExamID:    m.readLine("Exam ID"),
				TeacherID: teacherID,
				Marks:     m.readInt("Marks obtained"),
				Comments:  m.readLine("Comments"),
			}
			grade, err := m.svc.Grades.Enter(req)
			if err != nil {
				m.printErr(err)
				break
			}
			fmt.Fprintf(m.out, "Recorded %d marks, letter grade %s.\n", grade.MarksObtained, grade.LetterGrade)
		case 7:
			courseID := m.readLine("Course ID")
			for _, row := range m.svc.Grades.CourseRows(courseID) {
				fmt.Fprintf(m.out, "%-8s %-24s %-20s %d/%d  %s\n",
					row.StudentID, row.StudentName, row.ExamName, row.Marks, row.TotalMarks, row.LetterGrade)
			}
		case 8:
			req := service.MarkAttendanceRequest{
				StudentID: m.readLine("Student ID"),
				CourseID:  m.readLine("Course ID"),
				TeacherID: teacherID,
				Date:      m.readLine("Date (YYYY-MM-DD)"),
				Status:    m.readLine("Status (present/absent/late)"),
			}
			if _, err := m.svc.Attendance.Mark(req); err != nil {
				m.printErr(err)
				break
			}
			fmt.Fprintln(m.out, "Attendance marked.")
		case 9:
			courseID := m.readLine("Course ID")
			for _, a := range m.svc.Attendance.ByCourse(courseID) {
				fmt.Fprintf(m.out, "%-8s %s  %s\n", a.StudentID, a.Date, a.Status)
			}
		case 10:
			studentID := m.readLine("Student ID")
			courseID := m.readLine("Course ID")
			status := m.readLine("New status (completed/dropped)")
			finalGrade := m.readLine("Final grade (blank to keep)")
			if err := m.svc.Enrollments.UpdateStatus(studentID, courseID, models.EnrollmentStatus(status), finalGrade); err != nil {
				m.printErr(err)
				break
			}
			fmt.Fprintln(m.out, "Enrollment updated.")
		case 11:
			m.changePassword(teacherID)
		case 12:
			return
		default:
			fmt.Fprintln(m.out, "Invalid choice.")
		}
	}
}
