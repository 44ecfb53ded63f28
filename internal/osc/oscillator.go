package osc

import "github.com/cbegin/synthcore-go/internal/sample"

// Oscillator produces one sample per call. SampleAt reads the wave at an
// absolute sample index without advancing.
type Oscillator[S sample.Sample] interface {
	Sample() S
	SampleAt(index int) S
}

// Render fills dst with consecutive samples from o.
func Render[S sample.Sample](o Oscillator[S], dst []S) {
	for i := range dst {
		dst[i] = o.Sample()
	}
}

// Runtime computes each sample from its position in the current second: a
// starting phase plus an integer sample counter. Reading the counter through
// the same index formula the tables use keeps Runtime in step with a Lookup
// built for the same frequency, with no accumulated rounding.
type Runtime[S sample.Sample] struct {
	kind       Kind
	sampleRate int
	freq       Hertz
	duty       DutyCycle
	base       float64 // phase at index 0, in [0, 1)
	index      int
}

func NewRuntime[S sample.Sample](k Kind, sampleRate int, freq Hertz) *Runtime[S] {
	return &Runtime[S]{kind: k, sampleRate: sampleRate, freq: freq}
}

func (r *Runtime[S]) Kind() Kind               { return r.kind }
func (r *Runtime[S]) SampleRate() int          { return r.sampleRate }
func (r *Runtime[S]) Frequency() Hertz         { return r.freq }
func (r *Runtime[S]) DutyCycle() DutyCycle     { return r.duty }
func (r *Runtime[S]) SetDutyCycle(d DutyCycle) { r.duty = d }

// SetFrequency changes the frequency without resetting the phase.
func (r *Runtime[S]) SetFrequency(freq Hertz) {
	if freq == r.freq {
		return
	}
	r.base = r.currentPhase()
	r.index = 0
	r.freq = freq
}

func (r *Runtime[S]) Reset() {
	r.base = 0
	r.index = 0
}

// currentPhase is the phase the next Sample reads, in [0, 1).
func (r *Runtime[S]) currentPhase() float64 {
	p := r.base
	if r.sampleRate > 0 {
		p += indexPhase(r.index, r.sampleRate, r.freq)
	}
	return frac(p)
}

func (r *Runtime[S]) Sample() S {
	if r.sampleRate <= 0 {
		return SamplePhase[S](r.kind, r.base, r.duty)
	}
	v := SamplePhase[S](r.kind, r.base+indexPhase(r.index, r.sampleRate, r.freq), r.duty)
	r.index++
	if r.index >= r.sampleRate {
		// One second covers freq cycles; only the fractional part carries.
		r.base = frac(r.base + float64(r.freq))
		r.index = 0
	}
	return v
}

func (r *Runtime[S]) SampleAt(index int) S {
	return SampleIndex[S](r.kind, index, r.sampleRate, r.freq, r.duty)
}

// SampleWithFrequency reads index as if the oscillator ran at freq. The
// oscillator's own frequency and phase are unchanged.
func (r *Runtime[S]) SampleWithFrequency(index int, freq Hertz) S {
	return SampleIndex[S](r.kind, index, r.sampleRate, freq, r.duty)
}

// Lookup reads a prebuilt table, advancing one entry per sample.
type Lookup[S sample.Sample] struct {
	table Table[S]
	index int
}

// NewLookup returns a reader over t, which must have been built for
// sampleRate.
func NewLookup[S sample.Sample](sampleRate int, t Table[S]) (*Lookup[S], error) {
	if t.Len() == 0 || t.Len() != sampleRate {
		return nil, &SizeError{Expected: sampleRate, Actual: t.Len()}
	}
	return &Lookup[S]{table: t}, nil
}

func (l *Lookup[S]) Table() Table[S] { return l.table }
func (l *Lookup[S]) Reset()          { l.index = 0 }

func (l *Lookup[S]) Sample() S {
	v := l.table.data[l.index]
	l.index++
	if l.index >= len(l.table.data) {
		l.index = 0
	}
	return v
}

// SampleAt reads the table at index, wrapped to the table length. Negative
// indexes count back from the end.
func (l *Lookup[S]) SampleAt(index int) S { return l.table.At(index) }
