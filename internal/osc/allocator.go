package osc

import (
	"fmt"
	"sync"

	"github.com/cbegin/synthcore-go/internal/sample"
)

type tableKey struct {
	kind Kind
	freq Hertz
	duty DutyCycle
}

func (k tableKey) matches(kind Kind, freq Hertz, duty DutyCycle) bool {
	return k.kind == kind && k.duty == duty && k.freq.Equal(freq)
}

// Allocator hands out lookup tables keyed by (kind, frequency, duty cycle)
// so that identically configured oscillators share one buffer. All table
// memory is reserved up front. Entries are never evicted.
//
// Insertion is serialized. Tables returned to callers are never written
// again and may be read from any goroutine.
type Allocator[S sample.Sample] struct {
	mu         sync.Mutex
	sampleRate int
	slab       []S
	keys       []tableKey
}

// NewAllocator reserves room for capacity tables of sampleRate entries.
func NewAllocator[S sample.Sample](sampleRate, capacity int) *Allocator[S] {
	if sampleRate < 0 {
		sampleRate = 0
	}
	if capacity < 0 {
		capacity = 0
	}
	return &Allocator[S]{
		sampleRate: sampleRate,
		slab:       make([]S, sampleRate*capacity),
		keys:       make([]tableKey, 0, capacity),
	}
}

func (a *Allocator[S]) SampleRate() int { return a.sampleRate }
func (a *Allocator[S]) Cap() int        { return cap(a.keys) }

func (a *Allocator[S]) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.keys)
}

// LookupOrAllocate returns the cached table for the key, building it on first
// use. It returns ErrTableFull when a new table is needed and every slot is
// taken; existing entries are unaffected. Duty cycles that produce the same
// wave share a key.
func (a *Allocator[S]) LookupOrAllocate(kind Kind, freq Hertz, duty DutyCycle) (Table[S], error) {
	duty = duty.canonical()
	if kind != Square {
		duty = DutyHalf
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	for i, k := range a.keys {
		if k.matches(kind, freq, duty) {
			return a.slot(i), nil
		}
	}
	if len(a.keys) == cap(a.keys) {
		return Table[S]{}, fmt.Errorf("%w: %d of %d tables in use (%s %v %s)",
			ErrTableFull, len(a.keys), cap(a.keys), kind, freq, duty)
	}

	n := len(a.keys)
	t := a.slot(n)
	if err := BuildTable(t.data, kind, a.sampleRate, freq, duty); err != nil {
		return Table[S]{}, err
	}
	a.keys = append(a.keys, tableKey{kind: kind, freq: freq, duty: duty})
	return t, nil
}

func (a *Allocator[S]) slot(i int) Table[S] {
	lo := i * a.sampleRate
	hi := lo + a.sampleRate
	return Table[S]{data: a.slab[lo:hi:hi]}
}
