package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger event.
type TransactionType string

const (
	TransactionDeposit    TransactionType = "deposit"
	TransactionWithdrawal TransactionType = "withdrawal"
)

// TimestampFormat is the second-precision layout used for transaction
// dates and audit timestamps in the persisted documents.
const TimestampFormat = "2006-01-02 15:04:05"

// Transaction is one immutable deposit or withdrawal event. Balance is a
// snapshot of the account balance after the event was applied.
type Transaction struct {
	Type    TransactionType `json:"type"`
	Amount  decimal.Decimal `json:"amount"`
	Date    string          `json:"date"`
	Balance decimal.Decimal `json:"balance"`
}

// NewTransaction stamps a transaction with the given clock time.
func NewTransaction(kind TransactionType, amount, balance decimal.Decimal, now time.Time) Transaction {
	return Transaction{
		Type:    kind,
		Amount:  amount,
		Date:    now.Format(TimestampFormat),
		Balance: balance,
	}
}
