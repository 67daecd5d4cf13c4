package otp

import (
	"sync"
	"time"
)

// Record is a single live OTP for an identity. At most one record exists per
// identity; issuing a new code replaces any prior record.
type Record struct {
	Code      string
	ExpiresAt time.Time
	Attempts  int
}

// Store is the keyed record store behind the ledger. A production deployment
// backs this with an external cache (native per-key expiry, atomic
// increments); MemoryStore is the in-process placeholder.
type Store interface {
	// Get returns the record for identity, or ok=false if none exists.
	Get(identity string) (Record, bool)
	Put(identity string, rec Record)
	Delete(identity string)
}

// MemoryStore is a mutex-guarded in-memory Store.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]Record)}
}

func (s *MemoryStore) Get(identity string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[identity]
	return rec, ok
}

func (s *MemoryStore) Put(identity string, rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[identity] = rec
}

func (s *MemoryStore) Delete(identity string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, identity)
}
