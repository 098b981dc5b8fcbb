package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/tellerdesk/tellerdesk/internal/auth"
	"github.com/tellerdesk/tellerdesk/internal/ledger"
	"github.com/tellerdesk/tellerdesk/internal/model"
	"github.com/tellerdesk/tellerdesk/internal/store"
)

// ErrEmptyField reports a missing required field on account creation.
var ErrEmptyField = errors.New("name and password are required")

// BankingService orchestrates account creation, authentication, deposits
// and withdrawals over a single AccountStore. Expected negative outcomes
// (unknown account, wrong password, insufficient funds) are status values,
// not errors.
type BankingService struct {
	accounts *store.AccountStore
	verifier auth.Verifier
	validate *validator.Validate
	log      *slog.Logger

	// Clock supplies transaction timestamps. Tests may replace it.
	Clock func() time.Time
}

// NewBankingService wires a BankingService to its store and password
// verifier.
func NewBankingService(accounts *store.AccountStore, verifier auth.Verifier, log *slog.Logger) *BankingService {
	return &BankingService{
		accounts: accounts,
		verifier: verifier,
		validate: validator.New(),
		log:      log,
		Clock:    time.Now,
	}
}

type createAccountParams struct {
	Name     string `validate:"required"`
	Password string `validate:"required"`
}

// CreateAccount opens a new zero-balance account and returns its number.
func (s *BankingService) CreateAccount(name, password string) (string, error) {
	params := createAccountParams{Name: name, Password: password}
	if err := s.validate.Struct(params); err != nil {
		return "", fmt.Errorf("%w: %v", ErrEmptyField, err)
	}

	stored, err := s.verifier.Hash(password)
	if err != nil {
		return "", err
	}

	number, err := s.accounts.Create(name, stored)
	if err != nil {
		return "", err
	}
	s.log.Info("account created", "account", number, "name", name)
	return number, nil
}

// Authenticate resolves an account and checks its password. Denial is the
// zero Account and false; there is no lockout or rate limiting.
func (s *BankingService) Authenticate(number, password string) (model.Account, bool) {
	acct, ok := s.accounts.Get(number)
	if !ok || !s.verifier.Verify(password, acct.Password) {
		return model.Account{}, false
	}
	return acct, true
}

// Deposit credits an account and persists the store. Returns (false, nil)
// when the account does not exist.
func (s *BankingService) Deposit(number string, amount decimal.Decimal) (bool, error) {
	now := s.Clock()
	ok, err := s.accounts.Update(number, func(acct *model.Account) (bool, error) {
		if err := ledger.Deposit(acct, amount, now); err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		return false, err
	}
	if ok {
		s.log.Info("deposit", "account", number, "amount", amount.String())
	}
	return ok, nil
}

// Withdraw debits an account and persists the store. Returns (false, nil)
// when the account does not exist or funds are insufficient; neither is an
// error.
func (s *BankingService) Withdraw(number string, amount decimal.Decimal) (bool, error) {
	now := s.Clock()
	ok, err := s.accounts.Update(number, func(acct *model.Account) (bool, error) {
		return ledger.Withdraw(acct, amount, now)
	})
	if err != nil {
		return false, err
	}
	if ok {
		s.log.Info("withdrawal", "account", number, "amount", amount.String())
	}
	return ok, nil
}

// History returns an account's transactions in chronological order, empty
// if the account is absent.
func (s *BankingService) History(number string) []model.Transaction {
	acct, ok := s.accounts.Get(number)
	if !ok {
		return []model.Transaction{}
	}
	return ledger.History(acct)
}
