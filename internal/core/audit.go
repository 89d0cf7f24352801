package core

import (
	"context"
	"sync"
)

// MemoryAuditSink retains audit entries in memory. The dashboard's
// recent-activity panel reads from it.
type MemoryAuditSink struct {
	mu      sync.Mutex
	entries []AuditEntry
	limit   int
}

// NewMemoryAuditSink constructs a sink keeping at most limit entries; zero or
// negative means unbounded.
func NewMemoryAuditSink(limit int) *MemoryAuditSink {
	return &MemoryAuditSink{limit: limit}
}

// Record implements AuditSink.
func (s *MemoryAuditSink) Record(_ context.Context, entries []AuditEntry) {
	if len(entries) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entries...)
	if s.limit > 0 && len(s.entries) > s.limit {
		s.entries = s.entries[len(s.entries)-s.limit:]
	}
}

// Entries returns a copy of all retained entries, oldest first.
func (s *MemoryAuditSink) Entries() []AuditEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]AuditEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Recent returns up to n entries, newest first.
func (s *MemoryAuditSink) Recent(n int) []AuditEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n <= 0 || len(s.entries) == 0 {
		return nil
	}
	if n > len(s.entries) {
		n = len(s.entries)
	}
	out := make([]AuditEntry, 0, n)
	for i := len(s.entries) - 1; i >= len(s.entries)-n; i-- {
		out = append(out, s.entries[i])
	}
	return out
}
