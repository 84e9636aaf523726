// Package menu implements the interactive console shell. Menus only collect
// input and print results; every rule lives in the service layer.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/campusware/registrar/internal/models"
	"github.com/campusware/registrar/internal/service"
	"github.com/campusware/registrar/internal/store"
)

// Services bundles everything the shell dispatches to.
type Services struct {
	Auth        *service.AuthService
	Users       *service.UserService
	Departments *service.DepartmentService
	Semesters   *service.SemesterService
	Courses     *service.CourseService
	Exams       *service.ExamService
	Enrollments *service.EnrollmentService
	Grades      *service.GradeService
	Attendance  *service.AttendanceService
	Reports     *service.ReportService
	Backups     *service.BackupService
}

// Menu drives the login loop and the per-role menus.
type Menu struct {
	store  *store.Store
	svc    Services
	in     *bufio.Scanner
	out    io.Writer
	logger *zap.Logger
}

// New builds a Menu reading from in and printing to out.
func New(st *store.Store, svc Services, in io.Reader, out io.Writer, logger *zap.Logger) *Menu {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Menu{
		store:  st,
		svc:    svc,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
	}
}

// Run loops over the entry menu until the user exits or input ends. All
// collections are persisted on the way out.
func (m *Menu) Run() error {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "=== University Management System ===")
		fmt.Fprintln(m.out, "1. Login")
		fmt.Fprintln(m.out, "2. Sign Up")
		fmt.Fprintln(m.out, "3. Exit")

		choice, ok := m.readChoice()
		if !ok {
			break
		}
		switch choice {
		case 1:
			m.login()
		case 2:
			m.signup()
		case 3:
			fmt.Fprintln(m.out, "Goodbye!")
			return m.store.SaveAll()
		default:
			fmt.Fprintln(m.out, "Invalid choice.")
		}
	}
	return m.store.SaveAll()
}

func (m *Menu) login() {
	username := m.readLine("Username")
	password := m.readLine("Password")

	session, err := m.svc.Auth.Login(username, password)
	if err != nil {
		m.printErr(err)
		return
	}
	fmt.Fprintf(m.out, "Welcome, %s!\n", session.User.Name)
	m.logger.Info("user logged in", zap.String("user_id", session.User.ID), zap.String("role", string(session.User.Role)))

	switch session.User.Role {
	case models.RoleAdmin:
		m.runAdmin(session)
	case models.RoleTeacher:
		m.runTeacher(session)
	case models.RoleStudent:
		m.runStudent(session)
	}
}

func (m *Menu) signup() {
	req := service.SignUpRequest{
		Username:     m.readLine("Username"),
		Password:     m.readLine("Password"),
		Role:         m.readLine("Role (student/teacher)"),
		Name:         m.readLine("Full name"),
		Email:        m.readLine("Email"),
		Phone:        m.readLine("Phone"),
		Address:      m.readLine("Address"),
		DepartmentID: m.readLine("Department ID"),
	}
	user, err := m.svc.Auth.SignUp(req)
	if err != nil {
		m.printErr(err)
		return
	}
	fmt.Fprintf(m.out, "Account created. Your ID is %s.\n", user.ID)
}

func (m *Menu) changePassword(userID string) {
	current := m.readLine("Current password")
	next := m.readLine("New password")
	if err := m.svc.Auth.ChangePassword(userID, current, next); err != nil {
		m.printErr(err)
		return
	}
	fmt.Fprintln(m.out, "Password changed.")
}

// readChoice reads one line and parses it as a menu number. The second
// return value is false when input is exhausted.
func (m *Menu) readChoice() (int, bool) {
	fmt.Fprint(m.out, "Choice: ")
	if !m.in.Scan() {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(m.in.Text()))
	if err != nil {
		return -1, true
	}
	return n, true
}

func (m *Menu) readLine(label string) string {
	fmt.Fprintf(m.out, "%s: ", label)
	if !m.in.Scan() {
		return ""
	}
	return strings.TrimSpace(m.in.Text())
}

func (m *Menu) readInt(label string) int {
	for {
		raw := m.readLine(label)
		if raw == "" {
			return 0
		}
		n, err := strconv.Atoi(raw)
		if err == nil {
			return n
		}
		fmt.Fprintln(m.out, "Enter a number.")
	}
}

func (m *Menu) printErr(err error) {
	fmt.Fprintf(m.out, "Error: %v\n", err)
}
