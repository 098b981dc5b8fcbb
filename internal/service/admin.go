package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/tellerdesk/tellerdesk/internal/auth"
	"github.com/tellerdesk/tellerdesk/internal/ledger"
	"github.com/tellerdesk/tellerdesk/internal/model"
	"github.com/tellerdesk/tellerdesk/internal/store"
)

// AdminService orchestrates admin authentication, account removal and
// audit logging. It shares the AccountStore with BankingService and owns
// the audit log; every successful admin action appends exactly one entry.
type AdminService struct {
	admins   *store.AdminStore
	accounts *store.AccountStore
	audit    *store.AuditLog
	verifier auth.Verifier
	log      *slog.Logger

	// Clock supplies audit timestamps. Tests may replace it.
	Clock func() time.Time
}

// NewAdminService wires an AdminService to its stores and password
// verifier.
func NewAdminService(admins *store.AdminStore, accounts *store.AccountStore, audit *store.AuditLog, verifier auth.Verifier, log *slog.Logger) *AdminService {
	return &AdminService{
		admins:   admins,
		accounts: accounts,
		audit:    audit,
		verifier: verifier,
		log:      log,
		Clock:    time.Now,
	}
}

// Authenticate checks admin credentials. Success appends a Login entry to
// the audit log and persists it; denial appends nothing. The error is
// non-nil only when the audit log cannot be written.
func (s *AdminService) Authenticate(username, password string) (model.Admin, bool, error) {
	admin, ok := s.admins.Get(username)
	if !ok || !s.verifier.Verify(password, admin.Password) {
		return model.Admin{}, false, nil
	}

	entry := model.NewAuditEntry(username, model.ActionLogin, "Admin logged into the system", s.Clock())
	if err := s.audit.Append(entry); err != nil {
		return model.Admin{}, false, err
	}
	s.log.Info("admin login", "admin", username)
	return admin, true, nil
}

// RemoveUser hard-deletes an account, persists the store, and appends one
// audit entry naming the removed holder. An absent account is a no-op
// returning (false, nil) with no entry. If the audit entry cannot be
// written after the removal was persisted, the result is (true, err): the
// removal is durable and the error covers only the missing audit record.
func (s *AdminService) RemoveUser(adminUsername, number string) (bool, error) {
	removed, ok, err := s.accounts.Remove(number)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	details := fmt.Sprintf("Removed user account %s (%s)", number, removed.Name)
	entry := model.NewAuditEntry(adminUsername, model.ActionRemoveUser, details, s.Clock())
	if err := s.audit.Append(entry); err != nil {
		s.log.Error("user removed but audit entry not written", "admin", adminUsername, "account", number, "error", err)
		return true, err
	}
	s.log.Info("user removed", "admin", adminUsername, "account", number, "name", removed.Name)
	return true, nil
}

// ListUsers returns a defensive copy of every account keyed by number.
func (s *AdminService) ListUsers() map[string]model.Account {
	return s.accounts.All()
}

// UserTransactions returns an account's history, empty (not an error) if
// the account is absent.
func (s *AdminService) UserTransactions(number string) []model.Transaction {
	acct, ok := s.accounts.Get(number)
	if !ok {
		return []model.Transaction{}
	}
	return ledger.History(acct)
}

// AuditLog returns the audit entries in chronological order.
func (s *AdminService) AuditLog() []model.AuditEntry {
	return s.audit.Entries()
}
