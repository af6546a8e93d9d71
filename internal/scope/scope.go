package scope

import (
	"strings"
	"sync"
)

// ScopeRecord is the committed project scope.
type ScopeRecord struct {
	ScopeText    string
	Deliverables []string
}

// Record holds the current ScopeRecord. The zero value is empty and ready.
type Record struct {
	mu      sync.RWMutex
	current ScopeRecord
	set     bool
}

// Set replaces the scope text and deliverables. deliverablesRaw holds one
// deliverable per line; lines are trimmed and blank ones dropped.
func (r *Record) Set(scopeText, deliverablesRaw string) ScopeRecord {
	rec := ScopeRecord{
		ScopeText:    scopeText,
		Deliverables: ParseDeliverables(deliverablesRaw),
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = rec
	r.set = true
	return rec.clone()
}

// Get returns a copy of the current record.
func (r *Record) Get() ScopeRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current.clone()
}

// IsSet reports whether Set has been called.
func (r *Record) IsSet() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.set
}

// ParseDeliverables splits raw on line breaks, trimming each line and
// discarding empty ones.
func ParseDeliverables(raw string) []string {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if item := strings.TrimSpace(line); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func (s ScopeRecord) clone() ScopeRecord {
	s.Deliverables = append([]string(nil), s.Deliverables...)
	return s
}
