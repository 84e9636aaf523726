package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/campusware/registrar/internal/service"
	"github.com/campusware/registrar/pkg/export"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render reports to CSV or PDF",
}

var exportTranscriptCmd = &cobra.Command{
	Use:   "transcript <student-id>",
	Short: "Export a student transcript",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd, "transcript", func(a *app) (export.Dataset, string, error) {
			return a.svc.Reports.Transcript(args[0])
		})
	},
}

var exportRosterCmd = &cobra.Command{
	Use:   "roster <course-id>",
	Short: "Export a course roster",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd, "roster", func(a *app) (export.Dataset, string, error) {
			return a.svc.Reports.Roster(args[0])
		})
	},
}

var exportGradeSheetCmd = &cobra.Command{
	Use:   "gradesheet <course-id>",
	Short: "Export a course grade sheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd, "gradesheet", func(a *app) (export.Dataset, string, error) {
			return a.svc.Reports.GradeSheet(args[0])
		})
	},
}

func runExport(cmd *cobra.Command, kind string, build func(*app) (export.Dataset, string, error)) error {
	a, err := buildApp(cmd)
	if err != nil {
		return err
	}
	defer a.logger.Sync() //nolint:errcheck

	data, title, err := build(a)
	if err != nil {
		return err
	}
	path, err := a.svc.Reports.Render(data, title, kind, service.ReportFormat(exportFormat))
	if err != nil {
		return err
	}
	fmt.Println("Report written to", path)
	return nil
}

func init() {
	exportCmd.PersistentFlags().StringVarP(&exportFormat, "format", "f", "csv", "Output format (csv or pdf)")
	exportCmd.AddCommand(exportTranscriptCmd, exportRosterCmd, exportGradeSheetCmd)
	rootCmd.AddCommand(exportCmd)
}
