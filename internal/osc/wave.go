// Package osc generates periodic waveforms, either computed per sample or read
// from shared one-period lookup tables.
package osc

import (
	"math"

	"github.com/cbegin/synthcore-go/internal/sample"
)

// Phase waveforms evaluate one cycle at phase p, where p=1 is a full period.
// Only the fractional part of p matters, negative phases included.

// frac returns p wrapped into [0, 1).
func frac(p float64) float64 {
	return p - math.Floor(p)
}

func SinePhase(p float64) float32 {
	return float32(math.Sin(2 * math.Pi * p))
}

func SawPhase(p float64) float32 {
	return float32(1 - frac(p)*2)
}

func TrianglePhase(p float64) float32 {
	slope := frac(p) * 2
	if slope < 1 {
		return float32(-1 + slope*2)
	}
	return float32(3 - slope*2)
}

func SquarePhase(p float64, duty DutyCycle) float32 {
	if frac(p) < float64(duty.Fraction()) {
		return 1
	}
	return -1
}

// Phase evaluates the waveform k at phase p.
func (k Kind) Phase(p float64, duty DutyCycle) float32 {
	switch k {
	case Saw:
		return SawPhase(p)
	case Triangle:
		return TrianglePhase(p)
	case Square:
		return SquarePhase(p, duty)
	default:
		return SinePhase(p)
	}
}

// SamplePhase evaluates k at phase p and converts the result to S.
func SamplePhase[S sample.Sample](k Kind, p float64, duty DutyCycle) S {
	return sample.Convert[S](k.Phase(p, duty))
}

func indexPhase(index, sampleRate int, freq Hertz) float64 {
	return float64(index) * float64(freq) / float64(sampleRate)
}

// SampleIndex evaluates k at the given sample index of a wave with frequency
// freq, sampled at sampleRate.
func SampleIndex[S sample.Sample](k Kind, index, sampleRate int, freq Hertz, duty DutyCycle) S {
	return SamplePhase[S](k, indexPhase(index, sampleRate, freq), duty)
}

func SampleSine[S sample.Sample](index, sampleRate int, freq Hertz) S {
	return sample.Convert[S](SinePhase(indexPhase(index, sampleRate, freq)))
}

func SampleSaw[S sample.Sample](index, sampleRate int, freq Hertz) S {
	return sample.Convert[S](SawPhase(indexPhase(index, sampleRate, freq)))
}

func SampleTriangle[S sample.Sample](index, sampleRate int, freq Hertz) S {
	return sample.Convert[S](TrianglePhase(indexPhase(index, sampleRate, freq)))
}

func SampleSquare[S sample.Sample](index, sampleRate int, freq Hertz, duty DutyCycle) S {
	return sample.Convert[S](SquarePhase(indexPhase(index, sampleRate, freq), duty))
}
