package store

import (
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/tellerdesk/tellerdesk/internal/model"
)

// firstAccountNumber is the number issued to the first account opened in
// an empty store.
const firstAccountNumber = 1000

// AccountStore owns the durable mapping of account number to account
// record. The whole collection lives in memory and is rewritten to disk
// after every mutation. The lock serializes read-mutate-write cycles so a
// caller with asynchronous callbacks cannot interleave two mutations.
type AccountStore struct {
	mu       sync.Mutex
	path     string
	accounts map[string]*model.Account
	next     int
}

// NewAccountStore creates an empty store persisted at path. Call Load
// before use to pick up an existing accounts document.
func NewAccountStore(path string) *AccountStore {
	return &AccountStore{
		path:     path,
		accounts: make(map[string]*model.Account),
		next:     firstAccountNumber,
	}
}

// Load reads the full accounts document into memory. A missing file
// leaves the collection empty. Returns ErrCorrupt if the document cannot
// be parsed or a record is missing a required field.
func (s *AccountStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc map[string]json.RawMessage
	ok, err := readDocument(s.path, &doc)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	accounts := make(map[string]*model.Account, len(doc))
	next := firstAccountNumber
	for number, raw := range doc {
		acct, err := decodeAccount(raw, number)
		if err != nil {
			return err
		}
		accounts[number] = &acct
		if n, err := strconv.Atoi(acct.Number); err == nil && n >= next {
			next = n + 1
		}
	}

	s.accounts = accounts
	s.next = next
	return nil
}

// Save rewrites the whole accounts document.
func (s *AccountStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *AccountStore) saveLocked() error {
	return writeDocument(s.path, s.accounts)
}

// Create allocates the next account number, inserts a zero-balance account
// with empty history, persists, and returns the new number. Field
// validation is the service layer's job.
func (s *AccountStore) Create(name, password string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	number := strconv.Itoa(s.next)
	s.accounts[number] = &model.Account{
		Number:       number,
		Name:         name,
		Password:     password,
		Transactions: []model.Transaction{},
	}
	if err := s.saveLocked(); err != nil {
		delete(s.accounts, number)
		return "", err
	}
	s.next++
	return number, nil
}

// Get returns a snapshot of the account, if present.
func (s *AccountStore) Get(number string) (model.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.accounts[number]
	if !ok {
		return model.Account{}, false
	}
	return acct.Clone(), true
}

// Update runs fn against the live account record under the store lock and
// persists the whole collection if fn reports that it mutated the record.
// Returns (false, nil) when the account is absent or fn declined.
func (s *AccountStore) Update(number string, fn func(*model.Account) (bool, error)) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.accounts[number]
	if !ok {
		return false, nil
	}

	mutated, err := fn(acct)
	if err != nil || !mutated {
		return false, err
	}
	if err := s.saveLocked(); err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes an account and persists. The removed record is returned
// so callers can describe it; history is lost with it.
func (s *AccountStore) Remove(number string) (model.Account, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.accounts[number]
	if !ok {
		return model.Account{}, false, nil
	}
	delete(s.accounts, number)
	if err := s.saveLocked(); err != nil {
		s.accounts[number] = acct
		return model.Account{}, false, err
	}
	return acct.Clone(), true, nil
}

// All returns a defensive copy of the collection keyed by account number.
func (s *AccountStore) All() map[string]model.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]model.Account, len(s.accounts))
	for number, acct := range s.accounts {
		out[number] = acct.Clone()
	}
	return out
}

// Len returns the number of accounts.
func (s *AccountStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.accounts)
}

func decodeAccount(raw json.RawMessage, key string) (model.Account, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return model.Account{}, fmt.Errorf("%w: account %s: %v", ErrCorrupt, key, err)
	}
	ctx := "account " + key
	if err := requireFields(obj, ctx, "account_number", "name", "password", "balance", "transactions"); err != nil {
		return model.Account{}, err
	}

	var acct model.Account
	if err := json.Unmarshal(raw, &acct); err != nil {
		return model.Account{}, fmt.Errorf("%w: account %s: %v", ErrCorrupt, key, err)
	}

	var txs []map[string]json.RawMessage
	if err := json.Unmarshal(obj["transactions"], &txs); err != nil {
		return model.Account{}, fmt.Errorf("%w: account %s transactions: %v", ErrCorrupt, key, err)
	}
	for i, tx := range txs {
		if err := requireFields(tx, fmt.Sprintf("account %s transaction %d", key, i), "type", "amount", "date", "balance"); err != nil {
			return model.Account{}, err
		}
	}
	if acct.Transactions == nil {
		acct.Transactions = []model.Transaction{}
	}
	return acct, nil
}
