package adapters

import (
	"sync"

	"resume-composer/internal/logging/types"
)

// MemoryAdapter keeps entries in memory. Used for tests and for the CLI's quiet mode.
type MemoryAdapter struct {
	name    string
	limit   int
	entries []types.LogEntry
	mu      sync.Mutex
}

// NewMemoryAdapter creates a memory adapter holding at most limit entries (0 = unbounded)
func NewMemoryAdapter(name string, limit int) *MemoryAdapter {
	return &MemoryAdapter{name: name, limit: limit}
}

// Write stores a copy of the entry, evicting the oldest when over the limit
func (a *MemoryAdapter) Write(entry *types.LogEntry) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	stored := *entry
	stored.Fields = make(map[string]interface{}, len(entry.Fields))
	for k, v := range entry.Fields {
		stored.Fields[k] = v
	}

	a.entries = append(a.entries, stored)
	if a.limit > 0 && len(a.entries) > a.limit {
		a.entries = a.entries[len(a.entries)-a.limit:]
	}
	return nil
}

// Entries returns a snapshot of the stored entries
func (a *MemoryAdapter) Entries() []types.LogEntry {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]types.LogEntry, len(a.entries))
	copy(out, a.entries)
	return out
}

// Messages returns the messages of stored entries at or above level
func (a *MemoryAdapter) Messages(level types.LogLevel) []string {
	var out []string
	for _, e := range a.Entries() {
		if e.Level >= level {
			out = append(out, e.Message)
		}
	}
	return out
}

// Close is a no-op
func (a *MemoryAdapter) Close() error { return nil }

// Health always succeeds
func (a *MemoryAdapter) Health() error { return nil }

// Name returns the name of the adapter
func (a *MemoryAdapter) Name() string { return a.name }
