package osc

import (
	"fmt"
	"math"
)

// HertzEpsilon is the tolerance under which two frequencies are the same
// cache key.
const HertzEpsilon = 0.0001

// Hertz is a frequency in cycles per second.
type Hertz float32

// Equal reports whether h and o differ by less than HertzEpsilon.
func (h Hertz) Equal(o Hertz) bool {
	if h.Bits() == o.Bits() {
		return true
	}
	return math.Abs(float64(h)-float64(o)) < HertzEpsilon
}

// Bits returns the float bit pattern of h with -0 folded into +0 and every
// NaN folded into one canonical NaN.
func (h Hertz) Bits() uint32 {
	f := float32(h)
	switch {
	case f == 0:
		return 0
	case f != f:
		return 0x7fc00000
	}
	return math.Float32bits(f)
}

func (h Hertz) Float32() float32 { return float32(h) }
func (h Hertz) Mul(f float32) Hertz {
	return Hertz(float32(h) * f)
}
func (h Hertz) Add(o Hertz) Hertz { return h + o }
func (h Hertz) Sub(o Hertz) Hertz { return h - o }

// PerSample returns the phase increment of h at the given sample rate.
func (h Hertz) PerSample(sampleRate int) float32 {
	return float32(h) / float32(sampleRate)
}

func (h Hertz) String() string {
	return fmt.Sprintf("%gHz", float32(h))
}
