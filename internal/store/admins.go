package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/tellerdesk/tellerdesk/internal/model"
)

// AdminStore owns the admins document: a mapping of username to
// credential record. The bootstrap command seeds it directly; AdminService
// only ever reads it.
type AdminStore struct {
	mu     sync.Mutex
	path   string
	admins map[string]model.Admin
}

// NewAdminStore creates an empty store persisted at path.
func NewAdminStore(path string) *AdminStore {
	return &AdminStore{path: path, admins: make(map[string]model.Admin)}
}

// Load reads the full admins document into memory. A missing file leaves
// the collection empty, so a pre-seeded document is optional.
func (s *AdminStore) Load() error {
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

	admins := make(map[string]model.Admin, len(doc))
	for username, raw := range doc {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return fmt.Errorf("%w: admin %s: %v", ErrCorrupt, username, err)
		}
		if err := requireFields(obj, "admin "+username, "username", "password"); err != nil {
			return err
		}
		var admin model.Admin
		if err := json.Unmarshal(raw, &admin); err != nil {
			return fmt.Errorf("%w: admin %s: %v", ErrCorrupt, username, err)
		}
		admins[username] = admin
	}

	s.admins = admins
	return nil
}

// Save rewrites the whole admins document.
func (s *AdminStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeDocument(s.path, s.admins)
}

// Put inserts or replaces an admin record without persisting. Used by the
// bootstrap flow, which saves once after seeding.
func (s *AdminStore) Put(admin model.Admin) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admins[admin.Username] = admin
}

// Get returns the admin record for a username, if present.
func (s *AdminStore) Get(username string) (model.Admin, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	admin, ok := s.admins[username]
	return admin, ok
}

// Len returns the number of admin records.
func (s *AdminStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.admins)
}
