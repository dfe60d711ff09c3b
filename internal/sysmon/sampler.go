package sysmon

import "sync"

// Sampler keeps a bounded history of Stats snapshots so the TUI can show a
// short usage trend next to the live value.
type Sampler struct {
	mu      sync.Mutex
	history []Stats
	limit   int
}

// NewSampler creates a sampler retaining at most limit snapshots.
// A non-positive limit defaults to 60 (one minute at the TUI tick rate).
func NewSampler(limit int) *Sampler {
	if limit <= 0 {
		limit = 60
	}
	return &Sampler{limit: limit}
}

// Sample takes a snapshot, appends it to the history and returns it.
func (s *Sampler) Sample() Stats {
	stats := Sample()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, stats)
	if len(s.history) > s.limit {
		s.history = s.history[len(s.history)-s.limit:]
	}
	return stats
}

// History returns a copy of the retained snapshots, oldest first.
func (s *Sampler) History() []Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Stats, len(s.history))
	copy(out, s.history)
	return out
}
