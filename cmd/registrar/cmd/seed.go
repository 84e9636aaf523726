package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/campusware/registrar/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo fixture",
	Long: `Replace the academic collections with a small demo fixture: two
departments, two semesters, two teachers, four students, two courses,
three exams and sample enrollments, grades and attendance.

Existing user accounts are kept; everything else is overwritten.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(cmd)
		if err != nil {
			return err
		}
		defer a.logger.Sync() //nolint:errcheck
		if err := seed.Apply(a.store, a.hasher.Hash, a.logger); err != nil {
			return err
		}
		fmt.Println("Demo data seeded.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
