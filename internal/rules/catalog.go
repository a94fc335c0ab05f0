package rules

import (
	"errors"
	"fmt"
	"sort"
)

// #region errors

// ErrNotConfigured is returned when a lift has no catalog entry. This is the
// engine's only raised error; it indicates a caller or deployment bug rather
// than a data-quality issue.
var ErrNotConfigured = errors.New("lift not configured in rule catalog")

// #endregion

// #region catalog-interface

// Catalog resolves a lift identifier to its rule configuration. Implementations
// must be safe for concurrent reads; entries are immutable after load.
type Catalog interface {
	Lookup(lift string) (Entry, error)
	Lifts() []string
	Version() string
}

// #endregion

// #region memory-catalog

// MemoryCatalog is the in-memory Catalog implementation.
type MemoryCatalog struct {
	version string
	entries map[string]Entry
}

// NewMemoryCatalog validates every entry and builds an immutable catalog.
func NewMemoryCatalog(version string, entries []Entry) (*MemoryCatalog, error) {
	m := make(map[string]Entry, len(entries))
	for _, e := range entries {
		if err := ValidateEntry(e); err != nil {
			return nil, fmt.Errorf("catalog entry %q: %w", e.Lift, err)
		}
		if _, dup := m[e.Lift]; dup {
			return nil, fmt.Errorf("catalog entry %q: duplicate lift", e.Lift)
		}
		m[e.Lift] = e
	}
	return &MemoryCatalog{version: version, entries: m}, nil
}

// Lookup returns the entry for a lift or ErrNotConfigured.
func (c *MemoryCatalog) Lookup(lift string) (Entry, error) {
	e, ok := c.entries[lift]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotConfigured, lift)
	}
	return e, nil
}

// Lifts returns the configured lift identifiers in sorted order.
func (c *MemoryCatalog) Lifts() []string {
	lifts := make([]string, 0, len(c.entries))
	for l := range c.entries {
		lifts = append(lifts, l)
	}
	sort.Strings(lifts)
	return lifts
}

// Version returns the catalog-wide version string.
func (c *MemoryCatalog) Version() string {
	return c.version
}

// #endregion
