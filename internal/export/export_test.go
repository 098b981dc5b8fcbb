package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tellerdesk/tellerdesk/internal/model"
)

func TestWriteStatement(t *testing.T) {
	txs := []model.Transaction{
		{Type: model.TransactionDeposit, Amount: decimal.RequireFromString("100"), Date: "2025-03-10 09:30:00", Balance: decimal.RequireFromString("100")},
		{Type: model.TransactionWithdrawal, Amount: decimal.RequireFromString("40"), Date: "2025-03-10 09:31:00", Balance: decimal.RequireFromString("60")},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteStatement(&buf, "1000", txs))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"account_number", "type", "amount", "date", "balance"}, records[0])
	assert.Equal(t, []string{"1000", "deposit", "100.00", "2025-03-10 09:30:00", "100.00"}, records[1])
	assert.Equal(t, []string{"1000", "withdrawal", "40.00", "2025-03-10 09:31:00", "60.00"}, records[2])
}

func TestWriteStatement_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteStatement(&buf, "1000", nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1, "header only")
}

func TestWriteAuditLog(t *testing.T) {
	entries := []model.AuditEntry{
		{AdminUsername: "root", Action: "Login", Details: "Admin logged into the system", Timestamp: "2025-03-10 09:30:00"},
		{AdminUsername: "root", Action: "Remove User", Details: "Removed user account 1000 (Alice)", Timestamp: "2025-03-10 09:35:00"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteAuditLog(&buf, entries))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"admin_username", "action", "details", "timestamp"}, records[0])
	assert.Equal(t, "Removed user account 1000 (Alice)", records[2][2])
}
