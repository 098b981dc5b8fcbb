package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
)

func init() {
	// Balances and amounts are stored as bare JSON numbers in the data
	// files, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// readDocument reads and parses a whole JSON document into dst.
// A missing file is not an error; ok reports whether the file existed.
// Any parse failure is wrapped in ErrCorrupt.
func readDocument(path string, dst any) (ok bool, err error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("%w: parsing %s: %v", ErrCorrupt, path, err)
	}
	return true, nil
}

// writeDocument serializes v and replaces the document at path atomically
// with respect to the call: the JSON is written to a temp file first and
// renamed over the old document.
func writeDocument(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", path, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// requireFields checks that a raw JSON object carries every named key.
// The original data files have no schema version, so an absent field means
// the document is damaged, not an older layout to be defaulted.
func requireFields(obj map[string]json.RawMessage, context string, fields ...string) error {
	for _, f := range fields {
		if _, present := obj[f]; !present {
			return fmt.Errorf("%w: %s: missing field %q", ErrCorrupt, context, f)
		}
	}
	return nil
}
