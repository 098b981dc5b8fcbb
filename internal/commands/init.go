package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tellerdesk/tellerdesk/internal/auth"
	"github.com/tellerdesk/tellerdesk/internal/config"
	"github.com/tellerdesk/tellerdesk/internal/model"
	"github.com/tellerdesk/tellerdesk/internal/store"
)

func newInitCommand() *cobra.Command {
	var username string
	var password string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a tellerdesk directory and seed the first admin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			if username == "" {
				fmt.Fprint(os.Stderr, "Admin username: ")
				line, err := bufio.NewReader(os.Stdin).ReadString('\n')
				if err != nil {
					return fmt.Errorf("reading username: %w", err)
				}
				username = strings.TrimSpace(line)
			}
			if password == "" {
				password, err = promptPassword("Admin password")
				if err != nil {
					return err
				}
				confirm, err := promptPassword("Confirm admin password")
				if err != nil {
					return err
				}
				if password != confirm {
					return errors.New("passwords do not match")
				}
			}

			return runInit(absDir, username, password)
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "admin username (prompted if empty)")
	cmd.Flags().StringVar(&password, "password", "", "admin password (prompted if empty)")

	return cmd
}

func runInit(dir, username, password string) error {
	if username == "" || password == "" {
		return errors.New("admin username and password are required")
	}

	cfgPath := filepath.Join(dir, config.DefaultFile)
	cfg, err := config.Load(cfgPath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = config.Default(dir)
		if err := config.Save(cfgPath, cfg); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Storage.AccountsFile), 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	// The bootstrap never overwrites an existing admins document.
	if _, err := os.Stat(cfg.Storage.AdminsFile); err == nil {
		fmt.Println("Admin file already exists. Skipping initial admin creation.")
		return nil
	}

	verifier, err := auth.ForScheme(cfg.Auth.Scheme)
	if err != nil {
		return err
	}
	stored, err := verifier.Hash(password)
	if err != nil {
		return err
	}

	admins := store.NewAdminStore(cfg.Storage.AdminsFile)
	admins.Put(model.Admin{Username: username, Password: stored})
	if err := admins.Save(); err != nil {
		return err
	}

	fmt.Printf("Initialized tellerdesk at %s with admin %q\n", dir, username)
	return nil
}
