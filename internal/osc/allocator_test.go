package osc

import (
	"errors"
	"sync"
	"testing"
)

func TestAllocatorSharesTables(t *testing.T) {
	a := NewAllocator[float32](1000, 2)

	first, err := a.LookupOrAllocate(Square, 100, DutyQuarter)
	if err != nil {
		t.Fatal(err)
	}
	second, err := a.LookupOrAllocate(Square, 100.00003, DutyQuarter)
	if err != nil {
		t.Fatal(err)
	}
	if !first.Shares(second) {
		t.Error("equal keys should share one table")
	}
	if a.Len() != 1 {
		t.Errorf("Len after a hit: got %d, want 1", a.Len())
	}

	third, err := a.LookupOrAllocate(Square, 100, DutyHalf)
	if err != nil {
		t.Fatal(err)
	}
	if third.Shares(first) {
		t.Error("a different duty cycle should get its own table")
	}
	if first.At(2) != 1 || third.At(2) != 1 || first.At(3) != -1 || third.At(3) != 1 {
		t.Error("tables do not reflect their duty cycles")
	}
}

func TestAllocatorFoldsEquivalentDutyCycles(t *testing.T) {
	a := NewAllocator[int8](200, 4)

	half, err := a.LookupOrAllocate(Square, 100, DutyHalf)
	if err != nil {
		t.Fatal(err)
	}
	unnamed, err := a.LookupOrAllocate(Square, 100, DutyCycle(7))
	if err != nil {
		t.Fatal(err)
	}
	if !unnamed.Shares(half) {
		t.Error("an unnamed duty cycle should share the 1/2 table")
	}

	saw, err := a.LookupOrAllocate(Saw, 100, DutyQuarter)
	if err != nil {
		t.Fatal(err)
	}
	saw2, err := a.LookupOrAllocate(Saw, 100, DutyEighth)
	if err != nil {
		t.Fatal(err)
	}
	if !saw.Shares(saw2) {
		t.Error("duty cycle should not split tables for a saw")
	}
	if a.Len() != 2 {
		t.Errorf("Len: got %d, want 2", a.Len())
	}
}

func TestAllocatorFullLeavesEntriesIntact(t *testing.T) {
	a := NewAllocator[int16](500, 1)
	saw, err := a.LookupOrAllocate(Saw, 5, DutyHalf)
	if err != nil {
		t.Fatal(err)
	}
	snapshot := make([]int16, saw.Len())
	for i := range snapshot {
		snapshot[i] = saw.At(i)
	}

	if _, err := a.LookupOrAllocate(Sine, 5, DutyHalf); !errors.Is(err, ErrTableFull) {
		t.Fatalf("got %v, want ErrTableFull", err)
	}
	if a.Len() != 1 || a.Cap() != 1 {
		t.Errorf("Len/Cap after a full insert: %d/%d, want 1/1", a.Len(), a.Cap())
	}
	for i, want := range snapshot {
		if got := saw.At(i); got != want {
			t.Fatalf("entry %d changed from %d to %d", i, want, got)
		}
	}

	again, err := a.LookupOrAllocate(Saw, 5, DutyHalf)
	if err != nil {
		t.Fatalf("hit on a full allocator: %v", err)
	}
	if !again.Shares(saw) {
		t.Error("hit on a full allocator returned a different table")
	}
}

func TestAllocatorFeedsLookupOscillator(t *testing.T) {
	const rate = 2000
	a := NewAllocator[float32](rate, 4)
	tab, err := a.LookupOrAllocate(Triangle, 50, DutyHalf)
	if err != nil {
		t.Fatal(err)
	}
	x, err := NewLookup(rate, tab)
	if err != nil {
		t.Fatal(err)
	}
	y, err := NewLookup(rate, tab)
	if err != nil {
		t.Fatal(err)
	}
	r := NewRuntime[float32](Triangle, rate, 50)
	for i := 0; i < rate; i++ {
		want := r.SampleAt(i)
		if got := x.Sample(); got != want {
			t.Fatalf("index %d: lookup %f, runtime %f", i, got, want)
		}
	}
	// y has its own read position over the same memory.
	if got := y.Sample(); got != tab.At(0) {
		t.Errorf("second reader: got %f, want %f", got, tab.At(0))
	}
}

func TestAllocatorConcurrentInsert(t *testing.T) {
	a := NewAllocator[float32](100, 8)
	var wg sync.WaitGroup
	tables := make([]Table[float32], 16)
	for i := range tables {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tab, err := a.LookupOrAllocate(Kind(i%4), 10, DutyHalf)
			if err != nil {
				t.Error(err)
				return
			}
			tables[i] = tab
		}(i)
	}
	wg.Wait()
	if a.Len() != 4 {
		t.Errorf("Len: got %d, want 4", a.Len())
	}
	for i := 4; i < len(tables); i++ {
		if !tables[i].Shares(tables[i%4]) {
			t.Errorf("goroutine %d did not share the %s table", i, Kind(i%4))
		}
	}
}

func TestAllocatorZeroSampleRate(t *testing.T) {
	a := NewAllocator[float32](0, 1)
	if _, err := a.LookupOrAllocate(Sine, 1, DutyHalf); !errors.Is(err, ErrIncorrectSize) {
		t.Errorf("got %v, want ErrIncorrectSize", err)
	}
	if a.Len() != 0 {
		t.Errorf("failed build left %d entries", a.Len())
	}
}
