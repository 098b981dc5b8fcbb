package commands

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tellerdesk/tellerdesk/internal/model"
)

func newOpenCommand(configPath *string) *cobra.Command {
	var name string
	var password string

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			if password == "" {
				password, err = promptPassword("Account password")
				if err != nil {
					return err
				}
			}
			number, err := a.banking.CreateAccount(name, password)
			if err != nil {
				return err
			}
			color.Green("Account %s opened for %s", number, name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "account holder name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted if empty)")

	return cmd
}

// authenticatedAccount resolves and authenticates the account named by the
// first positional argument, prompting for the password if needed.
func authenticatedAccount(a *app, number, password string) (model.Account, error) {
	if password == "" {
		var err error
		password, err = promptPassword("Account password")
		if err != nil {
			return model.Account{}, err
		}
	}
	acct, ok := a.banking.Authenticate(number, password)
	if !ok {
		return model.Account{}, errors.New("authentication denied")
	}
	return acct, nil
}

func newDepositCommand(configPath *string) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "deposit <account> <amount>",
		Short: "Deposit into an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			if _, err := authenticatedAccount(a, args[0], password); err != nil {
				return err
			}
			amount, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("parsing amount %q: %w", args[1], err)
			}
			ok, err := a.banking.Deposit(args[0], amount)
			if err != nil {
				return err
			}
			if !ok {
				color.Red("Deposit failed: account not found")
				return nil
			}
			acct, _ := a.accounts.Get(args[0])
			color.Green("Deposited %s. Balance: %s", amount.StringFixed(2), acct.Balance.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "account password (prompted if empty)")
	return cmd
}

func newWithdrawCommand(configPath *string) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "withdraw <account> <amount>",
		Short: "Withdraw from an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			if _, err := authenticatedAccount(a, args[0], password); err != nil {
				return err
			}
			amount, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("parsing amount %q: %w", args[1], err)
			}
			ok, err := a.banking.Withdraw(args[0], amount)
			if err != nil {
				return err
			}
			if !ok {
				color.Red("Withdrawal failed: insufficient funds")
				return nil
			}
			acct, _ := a.accounts.Get(args[0])
			color.Green("Withdrew %s. Balance: %s", amount.StringFixed(2), acct.Balance.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "account password (prompted if empty)")
	return cmd
}

func newBalanceCommand(configPath *string) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "balance <account>",
		Short: "Show an account balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			acct, err := authenticatedAccount(a, args[0], password)
			if err != nil {
				return err
			}
			fmt.Printf("Account %s (%s): %s\n", acct.Number, acct.Name, acct.Balance.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "account password (prompted if empty)")
	return cmd
}

func newHistoryCommand(configPath *string) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "history <account>",
		Short: "Show an account's transaction history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			if _, err := authenticatedAccount(a, args[0], password); err != nil {
				return err
			}
			for _, tx := range a.banking.History(args[0]) {
				fmt.Printf("%s  %-10s  %10s  balance %s\n", tx.Date, tx.Type, tx.Amount.StringFixed(2), tx.Balance.StringFixed(2))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "account password (prompted if empty)")
	return cmd
}
