package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/tellerdesk/tellerdesk/internal/model"
)

// AuditLog owns the admin-log document: an append-only sequence of
// administrative actions. Every append rewrites the whole document.
type AuditLog struct {
	mu      sync.Mutex
	path    string
	entries []model.AuditEntry
}

// NewAuditLog creates an empty log persisted at path.
func NewAuditLog(path string) *AuditLog {
	return &AuditLog{path: path}
}

// Load reads the full admin-log document. A missing file leaves the log
// empty. Returns ErrCorrupt on a malformed document.
func (l *AuditLog) Load() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var doc []json.RawMessage
	ok, err := readDocument(l.path, &doc)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	entries := make([]model.AuditEntry, 0, len(doc))
	for i, raw := range doc {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return fmt.Errorf("%w: audit entry %d: %v", ErrCorrupt, i, err)
		}
		if err := requireFields(obj, fmt.Sprintf("audit entry %d", i), "admin_username", "action", "details", "timestamp"); err != nil {
			return err
		}
		var e model.AuditEntry
		if err := json.Unmarshal(raw, &e); err != nil {
			return fmt.Errorf("%w: audit entry %d: %v", ErrCorrupt, i, err)
		}
		entries = append(entries, e)
	}

	l.entries = entries
	return nil
}

// Append adds an entry to the log and rewrites the document. Entries are
// never mutated or removed once appended.
func (l *AuditLog) Append(e model.AuditEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, e)
	if err := writeDocument(l.path, l.entries); err != nil {
		l.entries = l.entries[:len(l.entries)-1]
		return err
	}
	return nil
}

// Entries returns a copy of the log in chronological order.
func (l *AuditLog) Entries() []model.AuditEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.AuditEntry, len(l.entries))
	copy(out, l.entries)
	return out
}
