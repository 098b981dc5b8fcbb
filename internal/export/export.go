// Package export renders account statements and the audit log as CSV for
// use outside the application.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/tellerdesk/tellerdesk/internal/model"
)

// StatementHeader is the CSV header for an account statement.
const StatementHeader = "account_number,type,amount,date,balance"

// AuditHeader is the CSV header for an audit log export.
const AuditHeader = "admin_username,action,details,timestamp"

// WriteStatement writes an account's transactions as CSV, oldest first.
func WriteStatement(w io.Writer, number string, txs []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(StatementHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, tx := range txs {
		row := []string{number, string(tx.Type), tx.Amount.StringFixed(2), tx.Date, tx.Balance.StringFixed(2)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// WriteAuditLog writes audit entries as CSV, oldest first.
func WriteAuditLog(w io.Writer, entries []model.AuditEntry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(AuditHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, e := range entries {
		row := []string{e.AdminUsername, e.Action, e.Details, e.Timestamp}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
