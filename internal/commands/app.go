package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/tellerdesk/tellerdesk/internal/auth"
	"github.com/tellerdesk/tellerdesk/internal/config"
	"github.com/tellerdesk/tellerdesk/internal/logging"
	"github.com/tellerdesk/tellerdesk/internal/service"
	"github.com/tellerdesk/tellerdesk/internal/store"
)

// app bundles the loaded stores and services behind a command.
type app struct {
	cfg      *config.Config
	log      *slog.Logger
	accounts *store.AccountStore
	admins   *store.AdminStore
	audit    *store.AuditLog
	banking  *service.BankingService
	admin    *service.AdminService
}

// loadApp reads config, loads all three documents, and wires the
// services. A corrupt document fails here, before any operation runs.
func loadApp(configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = config.Default(".")
	} else if err != nil {
		return nil, err
	}

	log := logging.Init(os.Stderr, cfg.Log.Level, cfg.Log.Format)

	verifier, err := auth.ForScheme(cfg.Auth.Scheme)
	if err != nil {
		return nil, err
	}

	accounts := store.NewAccountStore(cfg.Storage.AccountsFile)
	if err := accounts.Load(); err != nil {
		return nil, fmt.Errorf("loading accounts: %w", err)
	}
	admins := store.NewAdminStore(cfg.Storage.AdminsFile)
	if err := admins.Load(); err != nil {
		return nil, fmt.Errorf("loading admins: %w", err)
	}
	audit := store.NewAuditLog(cfg.Storage.AuditLogFile)
	if err := audit.Load(); err != nil {
		return nil, fmt.Errorf("loading audit log: %w", err)
	}

	return &app{
		cfg:      cfg,
		log:      log,
		accounts: accounts,
		admins:   admins,
		audit:    audit,
		banking:  service.NewBankingService(accounts, verifier, log),
		admin:    service.NewAdminService(admins, accounts, audit, verifier, log),
	}, nil
}

// promptPassword reads a password without echo when stdin is a terminal,
// falling back to a plain line read otherwise (tests, pipes).
func promptPassword(label string) (string, error) {
	fmt.Fprintf(os.Stderr, "%s: ", label)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(raw), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
