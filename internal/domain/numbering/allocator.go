package numbering

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrExhausted is returned when allocation retries run out. The caller must
// roll back the whole document creation; no row may be left behind with a
// duplicate or missing number.
var ErrExhausted = errors.New("document number allocation exhausted")

// Read-then-increment over "last issued number" is not atomic: two creations
// in the same scope can both observe N and insert N+1. The allocator closes
// the gap twice over: a per-scope mutex held across read+insert serializes
// allocations inside this process, and a bounded retry with exponential
// backoff absorbs conflicts surfacing as unique-key violations (a second
// process, or read-committed reads going stale under load).
const (
	maxAttempts  = 5
	retryBackoff = 25 * time.Millisecond
)

// Allocator serializes document creation per scope prefix. The zero value is
// ready to use; share one instance per process.
type Allocator struct {
	locks sync.Map // scope prefix -> *sync.Mutex
}

// NewAllocator returns an allocator for the use-case wiring in cmd/api.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// scopeLock returns the mutex for a scope, creating it on first use.
func (a *Allocator) scopeLock(prefix string) *sync.Mutex {
	if mu, ok := a.locks.Load(prefix); ok {
		return mu.(*sync.Mutex)
	}
	mu, _ := a.locks.LoadOrStore(prefix, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// Allocate runs attempt under the scope's lock. attempt reads the last issued
// number, computes the next one and inserts the document; it must report a
// number collision by returning errDuplicate unwrapped or wrapped. Allocate
// retries with exponential backoff up to the attempt limit, then fails with
// ErrExhausted. Any other error aborts immediately and is returned as-is.
func (a *Allocator) Allocate(ctx context.Context, scopePrefix string, errDuplicate error, attempt func(ctx context.Context) error) error {
	mu := a.scopeLock(scopePrefix)
	mu.Lock()
	defer mu.Unlock()

	backoff := retryBackoff
	for i := 0; i < maxAttempts; i++ {
		err := attempt(ctx)
		if err == nil {
			return nil
		}
		if !errors.Is(err, errDuplicate) {
			return err
		}
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return ctx.Err()
		}
		backoff *= 2
	}
	return ErrExhausted
}
