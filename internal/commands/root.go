package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tellerdesk/tellerdesk/internal/buildinfo"
	"github.com/tellerdesk/tellerdesk/internal/config"
)

// NewRootCommand creates the root CLI command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "tellerdesk",
		Short:   "File-backed desktop banking with an admin panel",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultFile, "path to tellerdesk.yaml")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newOpenCommand(&configPath))
	rootCmd.AddCommand(newDepositCommand(&configPath))
	rootCmd.AddCommand(newWithdrawCommand(&configPath))
	rootCmd.AddCommand(newBalanceCommand(&configPath))
	rootCmd.AddCommand(newHistoryCommand(&configPath))
	rootCmd.AddCommand(newAdminCommand(&configPath))
	rootCmd.AddCommand(newBackupCommand(&configPath))

	return rootCmd
}
