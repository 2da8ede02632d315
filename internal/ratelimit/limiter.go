// Package ratelimit is the admission-control gate applied to every API route:
// a route classifier mapping request paths to quota rules and an in-memory
// sliding-window limiter enforcing them.
package ratelimit

import (
	"sync"
	"time"
)

// Decision is the outcome of one admission check.
type Decision struct {
	Allowed   bool
	Remaining int
	// ResetAt is when the oldest retained event leaves the window, freeing
	// one slot.
	ResetAt time.Time
}

// SlidingWindow is an in-process sliding-window rate limiter. It keeps one
// ordered timestamp sequence per key and is safe for concurrent use.
//
// State is local to the process. Running more than one node multiplies the
// effective quota; a multi-node deployment needs a shared counter store
// behind the same Check contract.
type SlidingWindow struct {
	mu      sync.Mutex
	now     func() time.Time
	buckets map[string][]time.Time
}

// NewSlidingWindow constructs a SlidingWindow with empty state.
func NewSlidingWindow() *SlidingWindow {
	return &SlidingWindow{
		now:     time.Now,
		buckets: make(map[string][]time.Time),
	}
}

// Check admits or rejects one event for key under limit events per window.
// A rejected event is not recorded, so hammering a full bucket does not push
// the reset time further out.
func (s *SlidingWindow) Check(key string, limit int, window time.Duration) Decision {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	cutoff := now.Add(-window)

	// Timestamps are appended in order, so eviction is a prefix trim.
	list := s.buckets[key]
	i := 0
	for i < len(list) && list[i].Before(cutoff) {
		i++
	}
	list = list[i:]

	if len(list) >= limit {
		s.buckets[key] = list
		return Decision{
			Allowed:   false,
			Remaining: 0,
			ResetAt:   list[0].Add(window),
		}
	}

	list = append(list, now)
	s.buckets[key] = list
	return Decision{
		Allowed:   true,
		Remaining: limit - len(list),
		ResetAt:   list[0].Add(window),
	}
}

// Sweep drops keys whose sequences have fully expired relative to maxWindow.
// Call it periodically to bound memory on long-running processes.
func (s *SlidingWindow) Sweep(maxWindow time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxWindow)
	for key, list := range s.buckets {
		if len(list) == 0 || list[len(list)-1].Before(cutoff) {
			delete(s.buckets, key)
		}
	}
}
