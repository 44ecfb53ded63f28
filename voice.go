package synthcore

import (
	"errors"
	"fmt"
	"math"

	"github.com/cbegin/synthcore-go/internal/envelope"
	"github.com/cbegin/synthcore-go/internal/lfo"
	"github.com/cbegin/synthcore-go/internal/osc"
)

// Source selects the oscillator implementation a Voice plays through.
type Source string

const (
	SourceRuntime  Source = "runtime"
	SourceLookup   Source = "lookup"
	SourceVariable Source = "variable"
)

func ParseSource(s string) (Source, error) {
	switch Source(s) {
	case SourceRuntime, SourceLookup, SourceVariable:
		return Source(s), nil
	}
	return "", fmt.Errorf("unknown oscillator source %q", s)
}

// Patch configures one Voice.
type Patch struct {
	Source Source
	Wave   osc.Kind
	Duty   osc.DutyCycle

	// Variable-shape only.
	Waveshape  float32
	PulseWidth float32
	SyncRatio  float32 // audible/master frequency ratio; 0 disables hard sync

	Envelope envelope.Params

	// Vibrato does not apply to lookup voices, whose tables have a fixed
	// frequency.
	VibratoDepth float64 // semitones
	VibratoRate  float64 // Hz
	VibratoWave  osc.Kind

	Gain float32
}

func DefaultPatch() Patch {
	return Patch{
		Source:      SourceRuntime,
		Wave:        osc.Sine,
		Duty:        osc.DutyHalf,
		PulseWidth:  0.5,
		Envelope:    envelope.DefaultParams(),
		VibratoRate: 5,
		VibratoWave: osc.Sine,
		Gain:        0.5,
	}
}

// Voice is one oscillator shaped by one envelope. It is not safe for
// concurrent use.
type Voice struct {
	sampleRate int
	patch      Patch
	tables     *osc.Allocator[float32]

	freq       osc.Hertz
	lookupFreq osc.Hertz
	runtime    *osc.Runtime[float32]
	lookup     *osc.Lookup[float32]
	variable   *osc.VariableShape
	env        *envelope.Envelope
	vibrato    lfo.LFO
	gate       bool
	fellBack   bool
}

// NewVoice builds a voice. Lookup voices take their tables from tables; a
// nil allocator gives each note a private table.
func NewVoice(sampleRate int, patch Patch, tables *osc.Allocator[float32]) (*Voice, error) {
	if sampleRate <= 0 {
		return nil, errors.New("sampleRate must be positive")
	}
	if tables != nil && tables.SampleRate() != sampleRate {
		return nil, fmt.Errorf("table allocator runs at %d Hz, voice at %d Hz", tables.SampleRate(), sampleRate)
	}
	if _, err := ParseSource(string(patch.Source)); err != nil {
		return nil, err
	}
	v := &Voice{
		sampleRate: sampleRate,
		patch:      patch,
		tables:     tables,
		env:        envelope.New(sampleRate, patch.Envelope),
	}
	v.vibrato.Set(patch.VibratoDepth, patch.VibratoRate, patch.VibratoWave)
	if patch.Source == SourceVariable {
		v.variable = osc.NewVariableShape(sampleRate)
		v.variable.SetWaveshape(patch.Waveshape)
		v.variable.SetPulseWidth(patch.PulseWidth)
		v.variable.SetSync(patch.SyncRatio > 0)
	}
	return v, nil
}

func (v *Voice) Patch() Patch          { return v.patch }
func (v *Voice) Frequency() osc.Hertz  { return v.freq }
func (v *Voice) Stage() envelope.Stage { return v.env.Stage() }

// Table returns the table a lookup voice is playing from.
func (v *Voice) Table() (osc.Table[float32], bool) {
	if v.lookup == nil {
		return osc.Table[float32]{}, false
	}
	return v.lookup.Table(), true
}

// NoteOn raises the gate at freq. A lookup voice whose allocator is full
// plays the note on a runtime oscillator instead; FellBack reports this.
func (v *Voice) NoteOn(freq osc.Hertz) error {
	if err := v.setFrequency(freq); err != nil {
		return err
	}
	v.gate = true
	return nil
}

func (v *Voice) NoteOff() { v.gate = false }

// FellBack reports whether the current lookup note is playing on a runtime
// oscillator because no table slot was free.
func (v *Voice) FellBack() bool { return v.fellBack }

// Active reports whether the gate is high or the release is still sounding.
func (v *Voice) Active() bool { return v.gate || v.env.Active() }

func (v *Voice) setFrequency(freq osc.Hertz) error {
	v.freq = freq
	switch v.patch.Source {
	case SourceVariable:
		v.setVariableFrequency(freq)
	case SourceLookup:
		return v.setLookupFrequency(freq)
	default:
		v.setRuntimeFrequency(freq)
	}
	return nil
}

func (v *Voice) setRuntimeFrequency(freq osc.Hertz) {
	if v.runtime == nil {
		v.runtime = osc.NewRuntime[float32](v.patch.Wave, v.sampleRate, freq)
		v.runtime.SetDutyCycle(v.patch.Duty)
		return
	}
	v.runtime.SetFrequency(freq)
}

func (v *Voice) setVariableFrequency(freq osc.Hertz) {
	if v.patch.SyncRatio > 0 {
		v.variable.SetSyncFrequency(freq)
		v.variable.SetFrequency(freq.Mul(v.patch.SyncRatio))
		return
	}
	v.variable.SetFrequency(freq)
}

func (v *Voice) setLookupFrequency(freq osc.Hertz) error {
	if v.lookup != nil && v.lookupFreq.Equal(freq) {
		return nil
	}
	var (
		tab osc.Table[float32]
		err error
	)
	if v.tables != nil {
		tab, err = v.tables.LookupOrAllocate(v.patch.Wave, freq, v.patch.Duty)
	} else {
		tab, err = osc.NewTable[float32](v.patch.Wave, v.sampleRate, freq, v.patch.Duty)
	}
	if errors.Is(err, osc.ErrTableFull) {
		v.lookup = nil
		v.fellBack = true
		v.setRuntimeFrequency(freq)
		return nil
	}
	if err != nil {
		return err
	}
	l, err := osc.NewLookup(v.sampleRate, tab)
	if err != nil {
		return err
	}
	v.lookup = l
	v.lookupFreq = freq
	v.runtime = nil
	v.fellBack = false
	return nil
}

func (v *Voice) bend() float32 {
	return float32(math.Exp2(v.vibrato.Sample(float64(v.sampleRate)) / 12))
}

// Sample returns the next mono sample.
func (v *Voice) Sample() float32 {
	level := v.env.Process(v.gate)
	var s float32
	switch {
	case v.variable != nil:
		if v.vibrato.Active() {
			v.setVariableFrequency(v.freq.Mul(v.bend()))
		}
		s = v.variable.Sample()
	case v.lookup != nil:
		s = v.lookup.Sample()
	case v.runtime != nil:
		if v.vibrato.Active() {
			v.runtime.SetFrequency(v.freq.Mul(v.bend()))
		}
		s = v.runtime.Sample()
	}
	return s * level * v.patch.Gain
}

// Render fills dst with mono samples.
func (v *Voice) Render(dst []float32) {
	for i := range dst {
		dst[i] = v.Sample()
	}
}

// Process fills dst with interleaved stereo frames, the same sample on both
// channels.
func (v *Voice) Process(dst []float32) {
	for i := 0; i+1 < len(dst); i += 2 {
		s := v.Sample()
		dst[i], dst[i+1] = s, s
	}
}
