package osc

import (
	"errors"
	"fmt"
	"math"

	"github.com/cbegin/synthcore-go/internal/sample"
)

var (
	ErrIncorrectSize = errors.New("osc: table length does not match sample rate")
	ErrTableFull     = errors.New("osc: table allocator is full")
)

// SizeError reports a table buffer whose length is not the sample rate.
// errors.Is(err, ErrIncorrectSize) matches it.
type SizeError struct {
	Expected int
	Actual   int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("osc: table length %d, expected %d", e.Actual, e.Expected)
}

func (e *SizeError) Is(target error) bool { return target == ErrIncorrectSize }

// BuildTable fills table with one second of k at freq, one entry per sample
// index. len(table) must equal sampleRate.
func BuildTable[S sample.Sample](table []S, k Kind, sampleRate int, freq Hertz, duty DutyCycle) error {
	if sampleRate <= 0 || len(table) != sampleRate {
		return &SizeError{Expected: sampleRate, Actual: len(table)}
	}
	if k == Sine {
		mult := float64(freq) * 2 * math.Pi / float64(sampleRate)
		for i := range table {
			table[i] = sample.Convert[S](float32(math.Sin(float64(i) * mult)))
		}
		return nil
	}
	for i := range table {
		table[i] = SampleIndex[S](k, i, sampleRate, freq, duty)
	}
	return nil
}

// Table is a read-only handle to a built lookup table. Copies share the
// backing buffer.
type Table[S sample.Sample] struct {
	data []S
}

// NewTable allocates and builds a table that is not owned by any Allocator.
func NewTable[S sample.Sample](k Kind, sampleRate int, freq Hertz, duty DutyCycle) (Table[S], error) {
	if sampleRate <= 0 {
		return Table[S]{}, &SizeError{Expected: sampleRate}
	}
	data := make([]S, sampleRate)
	if err := BuildTable(data, k, sampleRate, freq, duty); err != nil {
		return Table[S]{}, err
	}
	return Table[S]{data: data}, nil
}

func (t Table[S]) Len() int { return len(t.data) }

// At returns the entry at index, wrapped to the table length. Negative
// indexes count back from the end. The zero Table reads as zero.
func (t Table[S]) At(index int) S {
	n := len(t.data)
	if n == 0 {
		var zero S
		return zero
	}
	i := index % n
	if i < 0 {
		i += n
	}
	return t.data[i]
}

// Shares reports whether t and o read the same backing buffer.
func (t Table[S]) Shares(o Table[S]) bool {
	return len(t.data) > 0 && len(o.data) > 0 && &t.data[0] == &o.data[0]
}
