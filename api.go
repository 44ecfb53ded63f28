// Package synthcore is a small synthesis core: sample format conversion,
// basic and band-limited oscillators, a shared lookup table cache and an
// ADSR envelope, plus a Voice that combines them for offline rendering and
// realtime audition.
package synthcore

import (
	"github.com/cbegin/synthcore-go/internal/envelope"
	"github.com/cbegin/synthcore-go/internal/music"
	"github.com/cbegin/synthcore-go/internal/osc"
	"github.com/cbegin/synthcore-go/internal/sample"
	"github.com/cbegin/synthcore-go/internal/wavout"
)

type (
	I24 = sample.I24
	U24 = sample.U24
	I48 = sample.I48
	U48 = sample.U48

	Hertz     = osc.Hertz
	Kind      = osc.Kind
	DutyCycle = osc.DutyCycle
	SizeError = osc.SizeError

	Table[S sample.Sample]             = osc.Table[S]
	Oscillator[S sample.Sample]        = osc.Oscillator[S]
	RuntimeOscillator[S sample.Sample] = osc.Runtime[S]
	LookupOscillator[S sample.Sample]  = osc.Lookup[S]
	Allocator[S sample.Sample]         = osc.Allocator[S]
	VariableShape                      = osc.VariableShape

	Envelope       = envelope.Envelope
	EnvelopeParams = envelope.Params
	Stage          = envelope.Stage

	Note  = music.Note
	Depth = wavout.Depth
)

const (
	Sine     = osc.Sine
	Saw      = osc.Saw
	Triangle = osc.Triangle
	Square   = osc.Square

	DutyHalf    = osc.DutyHalf
	DutyEighth  = osc.DutyEighth
	DutyQuarter = osc.DutyQuarter
	DutyThird   = osc.DutyThird

	StageInit    = envelope.StageInit
	StageAttack  = envelope.StageAttack
	StageDecay   = envelope.StageDecay
	StageRelease = envelope.StageRelease

	Depth8       = wavout.Depth8
	Depth16      = wavout.Depth16
	Depth24      = wavout.Depth24
	Depth32      = wavout.Depth32
	DepthFloat32 = wavout.DepthFloat32
)

var (
	ErrTableFull     = osc.ErrTableFull
	ErrIncorrectSize = osc.ErrIncorrectSize
	ErrOutOfRange    = sample.ErrOutOfRange
	ErrOctaveRange   = music.ErrOctaveRange
	ErrInvalidNote   = music.ErrInvalidNote
)

// Convert maps a sample between any two of the fourteen formats.
func Convert[D, S sample.Sample](s S) D { return sample.Convert[D](s) }

func NewRuntimeOscillator[S sample.Sample](k Kind, sampleRate int, freq Hertz) *RuntimeOscillator[S] {
	return osc.NewRuntime[S](k, sampleRate, freq)
}

func NewLookupOscillator[S sample.Sample](sampleRate int, t Table[S]) (*LookupOscillator[S], error) {
	return osc.NewLookup(sampleRate, t)
}

func NewTable[S sample.Sample](k Kind, sampleRate int, freq Hertz, duty DutyCycle) (Table[S], error) {
	return osc.NewTable[S](k, sampleRate, freq, duty)
}

func NewAllocator[S sample.Sample](sampleRate, capacity int) *Allocator[S] {
	return osc.NewAllocator[S](sampleRate, capacity)
}

func NewVariableShape(sampleRate int) *VariableShape { return osc.NewVariableShape(sampleRate) }

func NewEnvelope(sampleRate int, params EnvelopeParams) *Envelope {
	return envelope.New(sampleRate, params)
}

// SampleIndex evaluates waveform k at sample index of a tone at freq.
func SampleIndex[S sample.Sample](k Kind, index, sampleRate int, freq Hertz, duty DutyCycle) S {
	return osc.SampleIndex[S](k, index, sampleRate, freq, duty)
}

func ParseNote(s string) (Note, error) { return music.ParseNote(s) }
