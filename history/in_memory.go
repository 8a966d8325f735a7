// Package history provides a volatile record of run results. Nothing is
// written to disk; the store exists so summaries and repeated-run statistics
// can be derived within a single process.
package history

import (
	"sync"

	"github.com/hupe1980/exemplar/core"
)

// InMemoryStore is a volatile RunStore implementation keeping results in a
// process local slice. It is safe for concurrent access and best suited for
// tests and CLI sessions. Returned slices are copies to prevent external
// mutation of internal state.
type InMemoryStore struct {
	mu      sync.RWMutex
	results []core.RunResult
}

// NewInMemoryStore constructs an empty in-memory run store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

// Append records a result.
func (s *InMemoryStore) Append(res core.RunResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, res)
	return nil
}

// List returns all recorded results in append order.
func (s *InMemoryStore) List() []core.RunResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.RunResult, len(s.results))
	copy(out, s.results)
	return out
}

// ByUnit returns the recorded results for one unit in append order.
func (s *InMemoryStore) ByUnit(unitID string) []core.RunResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []core.RunResult
	for _, r := range s.results {
		if r.UnitID == unitID {
			out = append(out, r)
		}
	}
	return out
}

// Summary returns aggregate pass/fail counts over all recorded results.
func (s *InMemoryStore) Summary() core.Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sum := core.Summary{Total: len(s.results)}
	for _, r := range s.results {
		if r.Passed {
			sum.Passed++
		} else {
			sum.Failed++
		}
	}
	return sum
}

// Reset drops all recorded results.
func (s *InMemoryStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = nil
}
