package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/campusware/registrar/internal/menu"
	"github.com/campusware/registrar/internal/service"
	"github.com/campusware/registrar/internal/store"
	"github.com/campusware/registrar/pkg/config"
	"github.com/campusware/registrar/pkg/logger"
	"github.com/campusware/registrar/pkg/password"
	"github.com/campusware/registrar/pkg/storage"
)

// app holds everything a command needs after bootstrap.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	store  *store.Store
	hasher *password.Hasher
	svc    menu.Services
}

// buildApp loads configuration, opens the store and wires the services.
// Commands share this instead of each repeating the bootstrap.
func buildApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if dir, _ := cmd.Flags().GetString("data-dir"); dir != "" {
		cfg.DataDir = dir
	}

	log, err := logger.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	hasher := password.NewHasher(cfg.Auth.BcryptCost)
	st, err := store.Open(cfg.DataDir, store.Options{
		AdminUsername: cfg.Auth.AdminUsername,
		AdminPassword: cfg.Auth.AdminPassword,
		HashPassword:  hasher.Hash,
		Logger:        log,
	})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	exports, err := storage.NewLocalStorage(cfg.ExportDir)
	if err != nil {
		return nil, fmt.Errorf("init export storage: %w", err)
	}
	backups, err := storage.NewLocalStorage(cfg.BackupDir)
	if err != nil {
		return nil, fmt.Errorf("init backup storage: %w", err)
	}

	return &app{
		cfg:    cfg,
		logger: log,
		store:  st,
		hasher: hasher,
		svc: menu.Services{
			Auth:        service.NewAuthService(st, hasher, nil, log),
			Users:       service.NewUserService(st, hasher, nil, log),
			Departments: service.NewDepartmentService(st, nil, log),
			Semesters:   service.NewSemesterService(st, nil, log),
			Courses:     service.NewCourseService(st, nil, log),
			Exams:       service.NewExamService(st, nil, log),
			Enrollments: service.NewEnrollmentService(st, nil, log),
			Grades:      service.NewGradeService(st, nil, log),
			Attendance:  service.NewAttendanceService(st, nil, log),
			Reports:     service.NewReportService(st, exports, log),
			Backups:     service.NewBackupService(st, backups, log),
		},
	}, nil
}

var rootCmd = &cobra.Command{
	Use:   "registrar",
	Short: "University record management console",
	Long: `registrar manages users, departments, semesters, courses, exams,
enrollments, grades and attendance over plain text data files.

Running it without a subcommand starts the interactive console.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(cmd)
		if err != nil {
			return err
		}
		defer a.logger.Sync() //nolint:errcheck
		shell := menu.New(a.store, a.svc, os.Stdin, os.Stdout, a.logger)
		return shell.Run()
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("data-dir", "d", "", "Override the data directory")
}
