package numbering_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishvakarma/studiodesk-api/internal/domain/numbering"
)

var jan2025 = time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)

func TestNext(t *testing.T) {
	tests := []struct {
		name    string
		docType numbering.DocType
		scope   string
		last    string
		want    string
	}{
		{"quotation increments", numbering.DocQuotation, "AARTI", "AARTI/2501/0007", "AARTI/2501/0008"},
		{"quotation first in scope", numbering.DocQuotation, "AARTI", "", "AARTI/2501/0001"},
		{"bill prefix", numbering.DocBill, "AARTI", "INV/AARTI/2501/0012", "INV/AARTI/2501/0013"},
		{"bill first in scope", numbering.DocBill, "INTERIOR", "", "INV/INTERIOR/2501/0001"},
		{"receipt prefix", numbering.DocReceipt, "AARTI", "RCP/AARTI/2501/0099", "RCP/AARTI/2501/0100"},
		{"sequence beyond pad width", numbering.DocQuotation, "AARTI", "AARTI/2501/9999", "AARTI/2501/10000"},
		{"garbage tail restarts", numbering.DocQuotation, "AARTI", "AARTI/2501/x", "AARTI/2501/0001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := numbering.Next(tt.docType, tt.scope, tt.last, jan2025)
			assert.Equal(t, tt.want, got)
		})
	}
}

// The year-month segment comes from the allocation clock, so a December scope
// rolls over to January regardless of what the document's business date says.
func TestNext_MonthlyReset(t *testing.T) {
	dec := time.Date(2024, time.December, 31, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, "AARTI/2412/0004", numbering.Next(numbering.DocQuotation, "AARTI", "AARTI/2412/0003", dec))

	// Same last number, new month: fresh scope, sequence restarts.
	jan := time.Date(2025, time.January, 1, 0, 30, 0, 0, time.UTC)
	assert.Equal(t, "AARTI/2501/0001", numbering.Next(numbering.DocQuotation, "AARTI", "", jan))
}

func TestScopePrefix(t *testing.T) {
	assert.Equal(t, "AARTI/2501", numbering.ScopePrefix(numbering.DocQuotation, "AARTI", jan2025))
	assert.Equal(t, "INV/AARTI/2501", numbering.ScopePrefix(numbering.DocBill, "AARTI", jan2025))
	assert.Equal(t, "RCP/AARTI/2501", numbering.ScopePrefix(numbering.DocReceipt, "AARTI", jan2025))
}

// numberStore imitates the persistence contract: last-number read plus an
// insert that rejects duplicates, with no synchronization of its own beyond
// what a unique index would give.
type numberStore struct {
	mu     sync.Mutex
	issued map[string]bool
	order  []string
}

func (s *numberStore) last() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.order) == 0 {
		return ""
	}
	return s.order[len(s.order)-1]
}

func (s *numberStore) insert(number string, errDuplicate error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.issued[number] {
		return errDuplicate
	}
	s.issued[number] = true
	s.order = append(s.order, number)
	return nil
}

// N concurrent creations in one scope must come out with N distinct, gap-free
// sequence numbers when funneled through the allocator.
func TestAllocator_ConcurrentDistinct(t *testing.T) {
	const n = 32
	var (
		alloc        numbering.Allocator
		errDuplicate = errors.New("duplicate number")
		store        = &numberStore{issued: make(map[string]bool)}
		prefix       = numbering.ScopePrefix(numbering.DocQuotation, "AARTI", jan2025)
	)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := alloc.Allocate(context.Background(), prefix, errDuplicate, func(context.Context) error {
				next := numbering.Next(numbering.DocQuotation, "AARTI", store.last(), jan2025)
				return store.insert(next, errDuplicate)
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	require.Len(t, store.order, n)
	for i := 0; i < n; i++ {
		want := fmt.Sprintf("AARTI/2501/%04d", i+1)
		assert.True(t, store.issued[want], "missing %s", want)
	}
}

// NewAllocator hands out a working allocator for the process-wide wiring.
func TestNewAllocator(t *testing.T) {
	alloc := numbering.NewAllocator()
	require.NotNil(t, alloc)

	errDuplicate := errors.New("duplicate number")
	err := alloc.Allocate(context.Background(), "AARTI/2501", errDuplicate, func(context.Context) error {
		return nil
	})
	assert.NoError(t, err)
}

// When every attempt collides the allocator gives up with ErrExhausted
// instead of spinning forever.
func TestAllocator_Exhausted(t *testing.T) {
	var alloc numbering.Allocator
	errDuplicate := errors.New("duplicate number")

	attempts := 0
	err := alloc.Allocate(context.Background(), "AARTI/2501", errDuplicate, func(context.Context) error {
		attempts++
		return errDuplicate
	})
	require.ErrorIs(t, err, numbering.ErrExhausted)
	assert.Equal(t, 5, attempts)
}

// Non-collision errors abort immediately with no retries.
func TestAllocator_AbortsOnOtherErrors(t *testing.T) {
	var alloc numbering.Allocator
	errDuplicate := errors.New("duplicate number")
	errStore := errors.New("connection lost")

	attempts := 0
	err := alloc.Allocate(context.Background(), "AARTI/2501", errDuplicate, func(context.Context) error {
		attempts++
		return errStore
	})
	require.ErrorIs(t, err, errStore)
	assert.Equal(t, 1, attempts)
}
