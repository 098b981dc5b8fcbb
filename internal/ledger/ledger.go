// Package ledger implements per-account balance and transaction-history
// operations. The invariant is that the balance always equals the running
// sum of signed transaction amounts, and the most recent transaction
// carries a snapshot of the balance it produced.
package ledger

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tellerdesk/tellerdesk/internal/model"
)

// ErrInvalidAmount reports a non-positive deposit or withdrawal amount.
var ErrInvalidAmount = errors.New("amount must be greater than zero")

// Deposit increases the balance by amount and appends a deposit
// transaction stamped with now. No upper bound is enforced.
func Deposit(acct *model.Account, amount decimal.Decimal, now time.Time) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	acct.Balance = acct.Balance.Add(amount)
	acct.Transactions = append(acct.Transactions,
		model.NewTransaction(model.TransactionDeposit, amount, acct.Balance, now))
	return nil
}

// Withdraw decreases the balance by amount and appends a withdrawal
// transaction. Insufficient funds is a normal negative outcome and
// returns (false, nil) with the account unchanged; only a non-positive
// amount is an error.
func Withdraw(acct *model.Account, amount decimal.Decimal, now time.Time) (bool, error) {
	if !amount.IsPositive() {
		return false, ErrInvalidAmount
	}
	if acct.Balance.LessThan(amount) {
		return false, nil
	}
	acct.Balance = acct.Balance.Sub(amount)
	acct.Transactions = append(acct.Transactions,
		model.NewTransaction(model.TransactionWithdrawal, amount, acct.Balance, now))
	return true, nil
}

// History returns the account's transactions in chronological order as a
// copy the caller may keep.
func History(acct model.Account) []model.Transaction {
	out := make([]model.Transaction, len(acct.Transactions))
	copy(out, acct.Transactions)
	return out
}
