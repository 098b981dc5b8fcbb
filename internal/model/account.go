package model

import "github.com/shopspring/decimal"

// Account represents one client record in the accounts document.
type Account struct {
	Number       string          `json:"account_number"`
	Name         string          `json:"name"`
	Password     string          `json:"password"`
	Balance      decimal.Decimal `json:"balance"`
	Transactions []Transaction   `json:"transactions"`
}

// Clone returns a deep copy so callers can hand out account snapshots
// without exposing the live transaction slice.
func (a Account) Clone() Account {
	cp := a
	cp.Transactions = make([]Transaction, len(a.Transactions))
	copy(cp.Transactions, a.Transactions)
	return cp
}
