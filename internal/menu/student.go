package menu

import (
	"fmt"

	"github.com/campusware/registrar/internal/service"
)

func (m *Menu) runStudent(session *service.Session) {
	studentID := session.User.ID
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "--- Student Menu ---")
		fmt.Fprintln(m.out, "1. My Profile")
		fmt.Fprintln(m.out, "2. Available Courses")
		fmt.Fprintln(m.out, "3. Enroll in Course")
		fmt.Fprintln(m.out, "4. My Enrollments")
		fmt.Fprintln(m.out, "5. My Grades")
		fmt.Fprintln(m.out, "6. My Attendance")
		fmt.Fprintln(m.out, "7. Export Transcript")
		fmt.Fprintln(m.out, "8. Change Password")
		fmt.Fprintln(m.out, "9. Logout")

		choice, ok := m.readChoice()
		if !ok {
			return
		}
		switch choice {
		case 1:
			u := session.User
			if fresh, ok := m.store.FindUserByID(studentID); ok {
				u = fresh
			}
			fmt.Fprintf(m.out, "ID: %s\nUsername: %s\nName: %s\nEmail: %s\nPhone: %s\nAddress: %s\nDepartment: %s\n",
				u.ID, u.Username, u.Name, u.Email, u.Phone, u.Address, u.DepartmentID)
		case 2:
			for _, c := range m.svc.Courses.List() {
				fmt.Fprintf(m.out, "%-8s %-40s teacher=%s sem=%s credits=%d\n",
					c.ID, c.Name, c.TeacherID, c.SemesterID, c.Credits)
			}
		case 3:
			req := service.EnrollRequest{
				StudentID: studentID,
				CourseID:  m.readLine("Course ID"),
			}
			if _, err := m.svc.Enrollments.Enroll(req); err != nil {
				m.printErr(err)
				break
			}
			fmt.Fprintln(m.out, "Enrolled.")
		case 4:
			for _, e := range m.svc.Enrollments.ByStudent(studentID) {
				line := fmt.Sprintf("%-8s [%s]", e.CourseID, e.Status)
				if e.Grade != "" {
					line += "  final grade " + e.Grade
				}
				fmt.Fprintln(m.out, line)
			}
		case 5:
			for _, row := range m.svc.Grades.StudentRows(studentID) {
				fmt.Fprintf(m.out, "%-8s %-30s %-20s %d/%d  %s  %s\n",
					row.CourseID, row.CourseName, row.ExamName, row.Marks, row.TotalMarks, row.LetterGrade, row.Comments)
			}
		case 6:
			for _, a := range m.svc.Attendance.ByStudent(studentID) {
				fmt.Fprintf(m.out, "%-8s %s  %s\n", a.CourseID, a.Date, a.Status)
			}
		case 7:
			data, title, err := m.svc.Reports.Transcript(studentID)
			if err != nil {
				m.printErr(err)
				break
			}
			m.exportReport(data, title, "transcript")
		case 8:
			m.changePassword(studentID)
		case 9:
			return
		default:
			fmt.Fprintln(m.out, "Invalid choice.")
		}
	}
}
