package store

import "errors"

// ErrCorrupt reports a persisted document that could not be parsed or is
// missing required fields. It is fatal to the Load that triggered it; the
// in-memory collection is left untouched.
var ErrCorrupt = errors.New("storage corrupt")
