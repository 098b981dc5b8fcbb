package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tellerdesk/tellerdesk/internal/store"
)

func newBackupCommand(configPath *string) *cobra.Command {
	backupCmd := &cobra.Command{
		Use:   "backup",
		Short: "Back up or restore the data files",
	}

	backupCmd.AddCommand(&cobra.Command{
		Use:   "create",
		Short: "Copy the data files into a timestamped backup",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			dir, err := store.Backup(a.cfg.Storage.BackupDir, a.cfg.Storage.Paths(), time.Now())
			if err != nil {
				return err
			}
			color.Green("Backup written to %s", dir)
			return nil
		},
	})

	backupCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List available backups",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			names, err := store.ListBackups(a.cfg.Storage.BackupDir)
			if err != nil {
				return err
			}
			for _, n := range names {
				fmt.Println(n)
			}
			return nil
		},
	})

	backupCmd.AddCommand(&cobra.Command{
		Use:   "restore <name>",
		Short: "Restore the data files from a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			dir := filepath.Join(a.cfg.Storage.BackupDir, args[0])
			if err := store.Restore(dir, a.cfg.Storage.Paths()); err != nil {
				return err
			}
			color.Green("Restored from %s", dir)
			return nil
		},
	})

	return backupCmd
}
