// Package message holds generated confirmation messages between the submit
// request that produces them and the later confirmation lookup that displays
// them.
package message

import (
	"errors"
	"sync"
	"time"
)

// ErrDuplicateID is returned when an id is inserted twice. Ids come from
// uuid generation, so a collision signals a caller bug.
var ErrDuplicateID = errors.New("message id already stored")

// Defaults applied when configuration leaves the bounds unset.
const (
	DefaultTTL      = time.Hour
	DefaultCapacity = 10000
)

type entry struct {
	text      string
	expiresAt time.Time
}

// Store is a write-once keyed store bounded by a per-entry TTL and a
// capacity cap. When the cap is reached the entry closest to expiry is
// evicted to make room.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry

	ttl      time.Duration
	capacity int

	now  func() time.Time
	done chan struct{}
	once sync.Once
}

// NewStore creates a store and starts its background sweeper. Non-positive
// bounds fall back to the package defaults.
func NewStore(ttl time.Duration, capacity int) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	s := &Store{
		entries:  make(map[string]entry),
		ttl:      ttl,
		capacity: capacity,
		now:      time.Now,
		done:     make(chan struct{}),
	}
	go s.sweep()
	return s
}

// Put inserts text under id. An expired entry under the same id is treated
// as absent and overwritten.
func (s *Store) Put(id, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if e, ok := s.entries[id]; ok && e.expiresAt.After(now) {
		return ErrDuplicateID
	}
	if _, ok := s.entries[id]; !ok && len(s.entries) >= s.capacity {
		s.evictEarliest()
	}

	s.entries[id] = entry{text: text, expiresAt: now.Add(s.ttl)}
	return nil
}

// Get returns the stored text. Absent, expired, or empty ids yield a normal
// not-found result, never an error.
func (s *Store) Get(id string) (string, bool) {
	if id == "" {
		return "", false
	}

	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()

	if !ok || !e.expiresAt.After(s.now()) {
		return "", false
	}
	return e.text, true
}

// Len reports the number of live entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	now := s.now()
	for _, e := range s.entries {
		if e.expiresAt.After(now) {
			count++
		}
	}
	return count
}

// Close stops the background sweeper. Safe to call more than once.
func (s *Store) Close() {
	s.once.Do(func() { close(s.done) })
}

// evictEarliest removes the entry closest to expiry. Caller holds the lock.
func (s *Store) evictEarliest() {
	var victim string
	var earliest time.Time
	for id, e := range s.entries {
		if victim == "" || e.expiresAt.Before(earliest) {
			victim = id
			earliest = e.expiresAt
		}
	}
	if victim != "" {
		delete(s.entries, victim)
	}
}

func (s *Store) sweep() {
	interval := s.ttl / 2
	if interval > time.Minute {
		interval = time.Minute
	}
	if interval < time.Second {
		interval = time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.mu.Lock()
			now := s.now()
			for id, e := range s.entries {
				if !e.expiresAt.After(now) {
					delete(s.entries, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
