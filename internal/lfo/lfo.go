// Package lfo provides a low-frequency modulation source built on the basic
// oscillator waveforms.
package lfo

import "github.com/cbegin/synthcore-go/internal/osc"

// LFO produces one modulation value per sample. The unit of depth is up to
// the caller (semitones for vibrato, a gain factor for tremolo).
type LFO struct {
	depth  float64
	rateHz float64
	kind   osc.Kind
	phase  float64
}

// Set configures the LFO. Unknown kinds fall back to a triangle.
func (l *LFO) Set(depth, rateHz float64, kind osc.Kind) {
	l.depth = depth
	l.rateHz = rateHz
	if kind < osc.Sine || kind > osc.Square {
		kind = osc.Triangle
	}
	l.kind = kind
}

// Sample advances the LFO by one sample and returns a value in [-depth, +depth].
// Returns 0 if depth or rate is zero.
func (l *LFO) Sample(sampleRate float64) float64 {
	if l.depth == 0 || l.rateHz == 0 || sampleRate == 0 {
		return 0
	}

	v := float64(l.kind.Phase(l.phase, osc.DutyHalf))

	l.phase += l.rateHz / sampleRate
	for l.phase >= 1.0 {
		l.phase -= 1.0
	}
	return v * l.depth
}

// Active returns true if the LFO has non-zero depth and rate.
func (l *LFO) Active() bool {
	return l.depth != 0 && l.rateHz != 0
}

// Reset zeros the LFO phase.
func (l *LFO) Reset() {
	l.phase = 0
}
