// Package ratelimit implements a fixed-window request counter keyed by
// client, held in process memory and injected into the HTTP layer.
package ratelimit

import (
	"sync"
	"time"
)

type window struct {
	start time.Time
	count int
}

// Store counts requests per key over a fixed window. A key's counter
// resets lazily once its window has elapsed; stale keys are swept
// opportunistically so the map does not grow without bound.
type Store struct {
	mu        sync.Mutex
	window    time.Duration
	max       int
	counters  map[string]*window
	lastSweep time.Time
	now       func() time.Time
}

func New(windowSize time.Duration, max int) *Store {
	return &Store{
		window:   windowSize,
		max:      max,
		counters: make(map[string]*window),
		now:      time.Now,
	}
}

// Allow records one request for key and reports whether it is within
// the limit for the current window.
func (s *Store) Allow(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweepLocked(now)

	w, ok := s.counters[key]
	if !ok || now.Sub(w.start) >= s.window {
		s.counters[key] = &window{start: now, count: 1}
		return s.max >= 1
	}

	w.count++
	return w.count <= s.max
}

// Remaining reports how many requests key has left in its current
// window without recording one.
func (s *Store) Remaining(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.counters[key]
	if !ok || s.now().Sub(w.start) >= s.window {
		return s.max
	}
	left := s.max - w.count
	if left < 0 {
		return 0
	}
	return left
}

// sweepLocked drops expired windows at most once per window length.
// Caller must hold the mutex.
func (s *Store) sweepLocked(now time.Time) {
	if now.Sub(s.lastSweep) < s.window {
		return
	}
	for key, w := range s.counters {
		if now.Sub(w.start) >= s.window {
			delete(s.counters, key)
		}
	}
	s.lastSweep = now
}
