package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tellerdesk/tellerdesk/internal/model"
)

var testTime = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func freshAccount() *model.Account {
	return &model.Account{Number: "1000", Name: "Alice", Password: "pw1", Transactions: []model.Transaction{}}
}

func TestDeposit(t *testing.T) {
	acct := freshAccount()
	err := Deposit(acct, dec("100.00"), testTime)
	require.NoError(t, err)

	assert.True(t, acct.Balance.Equal(dec("100.00")))
	require.Len(t, acct.Transactions, 1)
	tx := acct.Transactions[0]
	assert.Equal(t, model.TransactionDeposit, tx.Type)
	assert.True(t, tx.Amount.Equal(dec("100.00")))
	assert.True(t, tx.Balance.Equal(dec("100.00")))
	assert.Equal(t, "2025-03-10 09:30:00", tx.Date)
}

func TestDeposit_InvalidAmount(t *testing.T) {
	acct := freshAccount()
	assert.ErrorIs(t, Deposit(acct, decimal.Zero, testTime), ErrInvalidAmount)
	assert.ErrorIs(t, Deposit(acct, dec("-5"), testTime), ErrInvalidAmount)
	assert.True(t, acct.Balance.IsZero())
	assert.Empty(t, acct.Transactions)
}

func TestWithdraw_InsufficientFunds(t *testing.T) {
	acct := freshAccount()
	require.NoError(t, Deposit(acct, dec("100.00"), testTime))

	ok, err := Withdraw(acct, dec("150.00"), testTime)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, acct.Balance.Equal(dec("100.00")), "balance unchanged on failed withdrawal")
	assert.Len(t, acct.Transactions, 1, "no transaction appended on failed withdrawal")
}

func TestWithdraw(t *testing.T) {
	acct := freshAccount()
	require.NoError(t, Deposit(acct, dec("100.00"), testTime))

	ok, err := Withdraw(acct, dec("40.00"), testTime)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, acct.Balance.Equal(dec("60.00")))
	require.Len(t, acct.Transactions, 2)
	assert.Equal(t, model.TransactionWithdrawal, acct.Transactions[1].Type)
	assert.True(t, acct.Transactions[1].Balance.Equal(dec("60.00")))
}

func TestWithdraw_InvalidAmount(t *testing.T) {
	acct := freshAccount()
	require.NoError(t, Deposit(acct, dec("100.00"), testTime))

	_, err := Withdraw(acct, decimal.Zero, testTime)
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.True(t, acct.Balance.Equal(dec("100.00")))
}

func TestWithdraw_ExactBalance(t *testing.T) {
	acct := freshAccount()
	require.NoError(t, Deposit(acct, dec("25.50"), testTime))

	ok, err := Withdraw(acct, dec("25.50"), testTime)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, acct.Balance.IsZero())
}

// The balance after every step equals the running sum of signed amounts
// and the snapshot on the most recent transaction.
func TestRunningSumInvariant(t *testing.T) {
	acct := freshAccount()
	steps := []struct {
		kind   model.TransactionType
		amount string
	}{
		{model.TransactionDeposit, "10.00"},
		{model.TransactionDeposit, "2.50"},
		{model.TransactionWithdrawal, "7.25"},
		{model.TransactionDeposit, "100.00"},
		{model.TransactionWithdrawal, "0.01"},
	}

	sum := decimal.Zero
	for _, step := range steps {
		amount := dec(step.amount)
		if step.kind == model.TransactionDeposit {
			require.NoError(t, Deposit(acct, amount, testTime))
			sum = sum.Add(amount)
		} else {
			ok, err := Withdraw(acct, amount, testTime)
			require.NoError(t, err)
			require.True(t, ok)
			sum = sum.Sub(amount)
		}
		assert.True(t, acct.Balance.Equal(sum), "balance %s != running sum %s", acct.Balance, sum)
		last := acct.Transactions[len(acct.Transactions)-1]
		assert.True(t, last.Balance.Equal(acct.Balance))
	}
	assert.Len(t, acct.Transactions, len(steps))
}

func TestHistory_Copy(t *testing.T) {
	acct := freshAccount()
	require.NoError(t, Deposit(acct, dec("10"), testTime))

	hist := History(*acct)
	require.Len(t, hist, 1)
	hist[0].Amount = dec("999")
	assert.True(t, acct.Transactions[0].Amount.Equal(dec("10")), "history must be a copy")
}
