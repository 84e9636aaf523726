package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/campusware/registrar/pkg/storage"
)

var backupPrune time.Duration

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Snapshot all data files",
	Long: `Flush every collection and copy the data files into a timestamped
directory under the backup root. With --prune, snapshots older than the
given age are removed afterwards.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(cmd)
		if err != nil {
			return err
		}
		defer a.logger.Sync() //nolint:errcheck
		path, err := a.svc.Backups.Run()
		if err != nil {
			return err
		}
		fmt.Println("Backup written to", path)

		if backupPrune > 0 {
			backups, err := storage.NewLocalStorage(a.cfg.BackupDir)
			if err != nil {
				return err
			}
			removed, err := backups.CleanupOlderThan(backupPrune)
			if err != nil {
				return err
			}
			for _, name := range removed {
				fmt.Println("Pruned", name)
			}
		}
		return nil
	},
}

func init() {
	backupCmd.Flags().DurationVar(&backupPrune, "prune", 0, "Remove snapshots older than this age (e.g. 720h)")
	rootCmd.AddCommand(backupCmd)
}
