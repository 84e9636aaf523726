package menu

import (
	"fmt"

	"github.com/campusware/registrar/internal/models"
	"github.com/campusware/registrar/internal/service"
	"github.com/campusware/registrar/pkg/export"
)

func (m *Menu) runAdmin(session *service.Session) {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "--- Admin Menu ---")
		fmt.Fprintln(m.out, "1. Manage Users")
		fmt.Fprintln(m.out, "2. Manage Departments")
		fmt.Fprintln(m.out, "3. Manage Semesters")
		fmt.Fprintln(m.out, "4. Manage Courses")
		fmt.Fprintln(m.out, "5. Reports")
		fmt.Fprintln(m.out, "6. Backup Data")
		fmt.Fprintln(m.out, "7. Change Password")
		fmt.Fprintln(m.out, "8. Logout")

		choice, ok := m.readChoice()
		if !ok {
			return
		}
		switch choice {
		case 1:
			m.adminUsers()
		case 2:
			m.adminDepartments()
		case 3:
			m.adminSemesters()
		case 4:
			m.adminCourses()
		case 5:
			m.adminReports()
		case 6:
			path, err := m.svc.Backups.Run()
			if err != nil {
				m.printErr(err)
				break
			}
			fmt.Fprintf(m.out, "Backup written to %s\n", path)
		case 7:
			m.changePassword(session.User.ID)
		case 8:
			return
		default:
			fmt.Fprintln(m.out, "Invalid choice.")
		}
	}
}

func (m *Menu) adminUsers() {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "--- Users ---")
		fmt.Fprintln(m.out, "1. List Users")
		fmt.Fprintln(m.out, "2. Add User")
		fmt.Fprintln(m.out, "3. Delete User")
		fmt.Fprintln(m.out, "4. Back")

		choice, ok := m.readChoice()
		if !ok {
			return
		}
		switch choice {
		case 1:
			for _, u := range m.svc.Users.List() {
				fmt.Fprintf(m.out, "%s  %-10s %-8s %s\n", u.ID, u.Username, u.Role, u.Name)
			}
		case 2:
			req := service.CreateUserRequest{
				Username:     m.readLine("Username"),
				Password:     m.readLine("Password"),
				Role:         m.readLine("Role (student/teacher)"),
				Name:         m.readLine("Full name"),
				Email:        m.readLine("Email"),
				Phone:        m.readLine("Phone"),
				Address:      m.readLine("Address"),
				DepartmentID: m.readLine("Department ID"),
			}
			user, err := m.svc.Users.Create(req)
			if err != nil {
				m.printErr(err)
				break
			}
			fmt.Fprintf(m.out, "User %s created.\n", user.ID)
		case 3:
			if err := m.svc.Users.Delete(m.readLine("User ID")); err != nil {
				m.printErr(err)
				break
			}
			fmt.Fprintln(m.out, "User deleted.")
		case 4:
			return
		default:
			fmt.Fprintln(m.out, "Invalid choice.")
		}
	}
}

func (m *Menu) adminDepartments() {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "--- Departments ---")
		fmt.Fprintln(m.out, "1. List Departments")
		fmt.Fprintln(m.out, "2. Add Department")
		fmt.Fprintln(m.out, "3. Delete Department")
		fmt.Fprintln(m.out, "4. Back")

		choice, ok := m.readChoice()
		if !ok {
			return
		}
		switch choice {
		case 1:
			for _, d := range m.svc.Departments.List() {
				fmt.Fprintf(m.out, "%-8s %-40s %s\n", d.ID, d.Name, d.HeadOfDept)
			}
		case 2:
			req := service.CreateDepartmentRequest{
				ID:          m.readLine("Department ID"),
				Name:        m.readLine("Name"),
				HeadOfDept:  m.readLine("Head of department"),
				Description: m.readLine("Description"),
			}
			if _, err := m.svc.Departments.Create(req); err != nil {
				m.printErr(err)
				break
			}
			fmt.Fprintln(m.out, "Department created.")
		case 3:
			if err := m.svc.Departments.Delete(m.readLine("Department ID")); err != nil {
				m.printErr(err)
				break
			}
			fmt.Fprintln(m.out, "Department deleted.")
		case 4:
			return
		default:
			fmt.Fprintln(m.out, "Invalid choice.")
		}
	}
}

func (m *Menu) adminSemesters() {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "--- Semesters ---")
		fmt.Fprintln(m.out, "1. List Semesters")
		fmt.Fprintln(m.out, "2. Add Semester")
		fmt.Fprintln(m.out, "3. Update Status")
		fmt.Fprintln(m.out, "4. Delete Semester")
		fmt.Fprintln(m.out, "5. Back")

		choice, ok := m.readChoice()
		if !ok {
			return
		}
		switch choice {
		case 1:
			for _, s := range m.svc.Semesters.List() {
				fmt.Fprintf(m.out, "%-12s %-16s %s to %s  [%s]\n", s.ID, s.Name, s.StartDate, s.EndDate, s.Status)
			}
		case 2:
			req := service.CreateSemesterRequest{
				ID:        m.readLine("Semester ID"),
				Name:      m.readLine("Name"),
				StartDate: m.readLine("Start date (YYYY-MM-DD)"),
				EndDate:   m.readLine("End date (YYYY-MM-DD)"),
				Status:    m.readLine("Status (active/completed/upcoming)"),
			}
			if _, err := m.svc.Semesters.Create(req); err != nil {
				m.printErr(err)
				break
			}
			fmt.Fprintln(m.out, "Semester created.")
		case 3:
			id := m.readLine("Semester ID")
			status := m.readLine("New status (active/completed/upcoming)")
			if err := m.svc.Semesters.UpdateStatus(id, models.SemesterStatus(status)); err != nil {
				m.printErr(err)
				break
			}
			fmt.Fprintln(m.out, "Status updated.")
		case 4:
			if err := m.svc.Semesters.Delete(m.readLine("Semester ID")); err != nil {
				m.printErr(err)
				break
			}
			fmt.Fprintln(m.out, "Semester deleted.")
		case 5:
			return
		default:
			fmt.Fprintln(m.out, "Invalid choice.")
		}
	}
}

func (m *Menu) adminCourses() {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "--- Courses ---")
		fmt.Fprintln(m.out, "1. List Courses")
		fmt.Fprintln(m.out, "2. Add Course")
		fmt.Fprintln(m.out, "3. Delete Course")
		fmt.Fprintln(m.out, "4. Back")

		choice, ok := m.readChoice()
		if !ok {
			return
		}
		switch choice {
		case 1:
			for _, c := range m.svc.Courses.List() {
				fmt.Fprintf(m.out, "%-8s %-40s teacher=%s dept=%s sem=%s credits=%d\n",
					c.ID, c.Name, c.TeacherID, c.DepartmentID, c.SemesterID, c.Credits)
			}
		case 2:
			req := service.CreateCourseRequest{
				ID:           m.readLine("Course ID"),
				Name:         m.readLine("Name"),
				TeacherID:    m.readLine("Teacher ID"),
				DepartmentID: m.readLine("Department ID"),
				SemesterID:   m.readLine("Semester ID"),
				Credits:      m.readInt("Credits"),
				Schedule:     m.readLine("Schedule"),
				MaxStudents:  m.readInt("Max students"),
			}
			if _, err := m.svc.Courses.Create(req); err != nil {
				m.printErr(err)
				break
			}
			fmt.Fprintln(m.out, "Course created.")
		case 3:
			if err := m.svc.Courses.Delete(m.readLine("Course ID")); err != nil {
				m.printErr(err)
				break
			}
			fmt.Fprintln(m.out, "Course deleted.")
		case 4:
			return
		default:
			fmt.Fprintln(m.out, "Invalid choice.")
		}
	}
}

func (m *Menu) adminReports() {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "--- Reports ---")
		fmt.Fprintln(m.out, "1. System Summary")
		fmt.Fprintln(m.out, "2. Export Student Transcript")
		fmt.Fprintln(m.out, "3. Export Course Roster")
		fmt.Fprintln(m.out, "4. Export Course Grade Sheet")
		fmt.Fprintln(m.out, "5. Back")

		choice, ok := m.readChoice()
		if !ok {
			return
		}
		switch choice {
		case 1:
			s := m.svc.Reports.Totals()
			fmt.Fprintf(m.out, "Users: %d (teachers %d, students %d)\n", s.Users, s.Teachers, s.Students)
			fmt.Fprintf(m.out, "Departments: %d  Semesters: %d  Courses: %d\n", s.Departments, s.Semesters, s.Courses)
			fmt.Fprintf(m.out, "Exams: %d  Grades: %d  Enrollments: %d  Attendance: %d\n", s.Exams, s.Grades, s.Enrollments, s.Attendance)
		case 2:
			id := m.readLine("Student ID")
			data, title, err := m.svc.Reports.Transcript(id)
			if err != nil {
				m.printErr(err)
				break
			}
			m.exportReport(data, title, "transcript")
		case 3:
			id := m.readLine("Course ID")
			data, title, err := m.svc.Reports.Roster(id)
			if err != nil {
				m.printErr(err)
				break
			}
			m.exportReport(data, title, "roster")
		case 4:
			id := m.readLine("Course ID")
			data, title, err := m.svc.Reports.GradeSheet(id)
			if err != nil {
				m.printErr(err)
				break
			}
			m.exportReport(data, title, "gradesheet")
		case 5:
			return
		default:
			fmt.Fprintln(m.out, "Invalid choice.")
		}
	}
}

// exportReport asks for a format, renders the dataset and prints where the
// artifact landed.
func (m *Menu) exportReport(data export.Dataset, title, kind string) {
	format := m.readLine("Format (csv/pdf)")
	path, err := m.svc.Reports.Render(data, title, kind, service.ReportFormat(format))
	if err != nil {
		m.printErr(err)
		return
	}
	fmt.Fprintf(m.out, "Report written to %s\n", path)
}
