package otp

import (
	"crypto/rand"
	"crypto/subtle"
	"math/big"
	"sync"
	"time"

	"github.com/keerthiramGR/skillbridge-ai/internal/domain"
)

// maxAttempts is the verification ceiling: attempts 1 through maxAttempts may
// match; the next attempt against a live record deletes it and fails with
// domain.ErrTooManyAttempts.
const maxAttempts = 5

// CodeLength is the default OTP length.
const CodeLength = 6

// Generate produces a numeric code of the given length drawn uniformly from
// the digits 0-9.
func Generate(length int) (string, error) {
	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code[i] = '0' + byte(n.Int64())
	}
	return string(code), nil
}

type identityLock struct {
	mu       sync.Mutex
	lastSeen time.Time
}

// Ledger owns the lifecycle of short-lived single-use codes keyed by identity.
// Issue and Verify serialize per identity, so a race between an issuance and a
// verification for the same identity resolves as if one happened strictly
// before the other. The ledger performs no I/O while holding a lock.
type Ledger struct {
	store Store

	mu    sync.Mutex
	locks map[string]*identityLock
}

func NewLedger(store Store) *Ledger {
	l := &Ledger{store: store, locks: make(map[string]*identityLock)}
	go l.cleanup()
	return l
}

func (l *Ledger) identityLock(identity string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.locks[identity]
	if !ok {
		e = &identityLock{}
		l.locks[identity] = e
	}
	e.lastSeen = time.Now()
	return &e.mu
}

// cleanup removes stale identity locks every 5 minutes.
func (l *Ledger) cleanup() {
	for {
		time.Sleep(5 * time.Minute)
		l.evictStale(10 * time.Minute)
	}
}

// evictStale drops lock entries idle longer than the given duration. A lock
// currently held is skipped and picked up on a later sweep.
func (l *Ledger) evictStale(idle time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for id, e := range l.locks {
		if time.Since(e.lastSeen) > idle && e.mu.TryLock() {
			e.mu.Unlock()
			delete(l.locks, id)
		}
	}
}

// Issue unconditionally replaces any existing record for identity with a
// fresh one: zero attempts, expiry now+ttl.
func (l *Ledger) Issue(identity, code string, ttl time.Duration) {
	m := l.identityLock(identity)
	m.Lock()
	defer m.Unlock()
	l.store.Put(identity, Record{
		Code:      code,
		ExpiresAt: time.Now().Add(ttl),
		Attempts:  0,
	})
}

// Verify checks candidate against the live record for identity.
//
// Codes are single-use: a successful match deletes the record, so a replay
// within the TTL window never succeeds twice. An expired record is deleted on
// read. Exceeding the attempt ceiling deletes the record and fails with
// domain.ErrTooManyAttempts — a distinct error so callers surface a rate-limit
// response rather than a plain invalid-code response. Checking an identity
// with no record returns false with no side effect.
func (l *Ledger) Verify(identity, candidate string) (bool, error) {
	m := l.identityLock(identity)
	m.Lock()
	defer m.Unlock()

	rec, ok := l.store.Get(identity)
	if !ok {
		return false, nil
	}

	if time.Now().After(rec.ExpiresAt) {
		l.store.Delete(identity)
		return false, nil
	}

	rec.Attempts++
	if rec.Attempts > maxAttempts {
		l.store.Delete(identity)
		return false, domain.ErrTooManyAttempts
	}

	if subtle.ConstantTimeCompare([]byte(rec.Code), []byte(candidate)) == 1 {
		l.store.Delete(identity)
		return true, nil
	}

	l.store.Put(identity, rec)
	return false, nil
}
