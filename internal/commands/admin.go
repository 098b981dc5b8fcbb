package commands

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tellerdesk/tellerdesk/internal/export"
)

func newAdminCommand(configPath *string) *cobra.Command {
	var username string
	var password string

	adminCmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrator operations",
	}

	adminCmd.PersistentFlags().StringVar(&username, "username", "", "admin username (required)")
	_ = adminCmd.MarkPersistentFlagRequired("username")
	adminCmd.PersistentFlags().StringVar(&password, "password", "", "admin password (prompted if empty)")

	// Each admin invocation authenticates fresh, so every session shows
	// up as a Login entry in the audit log.
	login := func() (*app, error) {
		a, err := loadApp(*configPath)
		if err != nil {
			return nil, err
		}
		if password == "" {
			password, err = promptPassword("Admin password")
			if err != nil {
				return nil, err
			}
		}
		_, ok, err := a.admin.Authenticate(username, password)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.New("admin authentication denied")
		}
		return a, nil
	}

	adminCmd.AddCommand(newAdminListUsersCommand(login))
	adminCmd.AddCommand(newAdminRemoveUserCommand(login, &username))
	adminCmd.AddCommand(newAdminTransactionsCommand(login))
	adminCmd.AddCommand(newAdminLogCommand(login))
	adminCmd.AddCommand(newAdminExportCommand(login))

	return adminCmd
}

func newAdminListUsersCommand(login func() (*app, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "list-users",
		Short: "List all accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := login()
			if err != nil {
				return err
			}
			users := a.admin.ListUsers()
			numbers := make([]string, 0, len(users))
			for n := range users {
				numbers = append(numbers, n)
			}
			sort.Strings(numbers)
			for _, n := range numbers {
				acct := users[n]
				fmt.Printf("%s  %-20s  balance %s  (%d transactions)\n",
					acct.Number, acct.Name, acct.Balance.StringFixed(2), len(acct.Transactions))
			}
			return nil
		},
	}
}

func newAdminRemoveUserCommand(login func() (*app, error), username *string) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-user <account>",
		Short: "Remove an account and its history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := login()
			if err != nil {
				return err
			}
			ok, err := a.admin.RemoveUser(*username, args[0])
			if err != nil {
				return err
			}
			if !ok {
				color.Red("Account %s not found", args[0])
				return nil
			}
			color.Green("Account %s removed", args[0])
			return nil
		},
	}
}

func newAdminTransactionsCommand(login func() (*app, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "transactions <account>",
		Short: "Show an account's transaction history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := login()
			if err != nil {
				return err
			}
			for _, tx := range a.admin.UserTransactions(args[0]) {
				fmt.Printf("%s  %-10s  %10s  balance %s\n", tx.Date, tx.Type, tx.Amount.StringFixed(2), tx.Balance.StringFixed(2))
			}
			return nil
		},
	}
}

func newAdminLogCommand(login func() (*app, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "Show the admin audit log",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := login()
			if err != nil {
				return err
			}
			for _, e := range a.admin.AuditLog() {
				fmt.Printf("%s  %-12s  %-12s  %s\n", e.Timestamp, e.AdminUsername, e.Action, e.Details)
			}
			return nil
		},
	}
}

func newAdminExportCommand(login func() (*app, error)) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export {statement <account> | audit}",
		Short: "Export a statement or the audit log as CSV",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := login()
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			defer f.Close()

			switch args[0] {
			case "statement":
				if len(args) != 2 {
					return errors.New("export statement requires an account number")
				}
				if err := export.WriteStatement(f, args[1], a.admin.UserTransactions(args[1])); err != nil {
					return err
				}
			case "audit":
				if err := export.WriteAuditLog(f, a.admin.AuditLog()); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown export target %q", args[0])
			}
			color.Green("Wrote %s", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "export.csv", "output file")
	return cmd
}
