// Package store persists the ledger's record collections as JSON blobs
// in a local key-value namespace.
package store

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Keys for the three persisted collections.
const (
	KeyVendors         = "vendors"
	KeyMilkEntries     = "milk-entries"
	KeyMonthlySettings = "monthly-settings"
)

// Backend is the raw key-value capability the store is built on.
// Get reports absence via the second return; Set overwrites wholesale.
type Backend interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
}

// Store wraps a Backend with JSON serialization. Load and Save are
// total: a missing key, unparsable bytes, or a failed write degrades to
// the caller's default / a no-op rather than surfacing an error, since
// loss of the persistence medium must never crash calling code.
type Store struct {
	backend Backend
	logW    io.Writer
}

// New creates a Store over the given backend.
func New(b Backend) *Store {
	return &Store{backend: b, logW: os.Stderr}
}

// SetLogWriter redirects degradation warnings, mainly for tests.
func (s *Store) SetLogWriter(w io.Writer) {
	s.logW = w
}

func (s *Store) warnf(format string, args ...any) {
	if s.logW != nil {
		fmt.Fprintf(s.logW, format, args...)
	}
}

// Load returns the collection stored under key, or def when the key is
// absent or its bytes fail to parse.
func Load[T any](s *Store, key string, def T) T {
	raw, ok := s.backend.Get(key)
	if !ok {
		return def
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		s.warnf("  store: unreadable data under %q, using default: %v\n", key, err)
		return def
	}
	return v
}

// Save serializes v and persists it under key, replacing any previous
// value. Failures are logged and swallowed.
func Save[T any](s *Store, key string, v T) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.warnf("  store: cannot encode %q, nothing written: %v\n", key, err)
		return
	}
	if err := s.backend.Set(key, raw); err != nil {
		s.warnf("  store: write of %q failed: %v\n", key, err)
	}
}
