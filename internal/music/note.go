// Package music maps note names to frequencies.
package music

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cbegin/synthcore-go/internal/osc"
)

var (
	ErrOctaveRange = errors.New("music: octave out of range")
	ErrInvalidNote = errors.New("music: invalid note")
)

// Pitch is a pitch class. Accidentals are spelled as flats.
type Pitch uint8

const (
	C Pitch = iota
	DFlat
	D
	EFlat
	E
	F
	GFlat
	G
	AFlat
	A
	BFlat
	B
)

// PitchesPerOctave is the number of pitch classes.
const PitchesPerOctave = 12

// Base frequencies of octave 0.
var baseFrequency = [PitchesPerOctave]float32{
	16.35, 17.32, 18.35, 19.45, 20.60, 21.83,
	23.12, 24.50, 25.96, 27.50, 29.14, 30.87,
}

var pitchNames = [PitchesPerOctave]string{
	"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B",
}

func (p Pitch) String() string {
	if p >= PitchesPerOctave {
		return fmt.Sprintf("Pitch(%d)", uint8(p))
	}
	return pitchNames[p]
}

// BaseFrequency returns the frequency of p in octave 0.
func (p Pitch) BaseFrequency() osc.Hertz {
	return osc.Hertz(baseFrequency[p%PitchesPerOctave])
}

// Octave is an octave number from 0 through MaxOctave.
type Octave uint8

const MaxOctave Octave = 15

// NewOctave checks that n names an octave.
func NewOctave(n int) (Octave, error) {
	if n < 0 || n > int(MaxOctave) {
		return 0, fmt.Errorf("%w: %d", ErrOctaveRange, n)
	}
	return Octave(n), nil
}

// Add shifts o by delta octaves.
func (o Octave) Add(delta int) (Octave, error) {
	return NewOctave(int(o) + delta)
}

// Note is a pitch in a specific octave.
type Note struct {
	Pitch  Pitch
	Octave Octave
}

func (n Note) String() string {
	return n.Pitch.String() + strconv.Itoa(int(n.Octave))
}

// Frequency returns the base frequency doubled once per octave.
func (n Note) Frequency() osc.Hertz {
	return n.Pitch.BaseFrequency().Mul(float32(math.Ldexp(1, int(n.Octave))))
}

// Range returns the band around n that is closer to n than to either
// neighbouring semitone.
func (n Note) Range() (lo, hi osc.Hertz) {
	f := n.Frequency()
	return f.Mul(1 - 1/17.462/2), f.Mul(1 + 1/16.8196/2)
}

// Transpose moves n by semitones, crossing octave boundaries as needed.
func (n Note) Transpose(semitones int) (Note, error) {
	abs := int(n.Octave)*PitchesPerOctave + int(n.Pitch) + semitones
	if abs < 0 {
		return Note{}, fmt.Errorf("%w: %s transposed by %d", ErrOctaveRange, n, semitones)
	}
	o, err := NewOctave(abs / PitchesPerOctave)
	if err != nil {
		return Note{}, err
	}
	return Note{Pitch: Pitch(abs % PitchesPerOctave), Octave: o}, nil
}

var noteOffsets = map[byte]int{
	'c': 0, 'd': 2, 'e': 4, 'f': 5, 'g': 7, 'a': 9, 'b': 11,
}

// ParseNote parses a letter, any number of accidentals ('#' or '+' sharp,
// 'b' or '-' flat) and an octave number, as in "A4", "C#3" or "Eb2".
func ParseNote(s string) (Note, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Note{}, fmt.Errorf("%w: empty", ErrInvalidNote)
	}
	base, ok := noteOffsets[lower(s[0])]
	if !ok {
		return Note{}, fmt.Errorf("%w: %q", ErrInvalidNote, s)
	}
	i, shift := 1, 0
	for i < len(s) {
		switch s[i] {
		case '#', '+':
			shift++
		case 'b', '-':
			shift--
		default:
			goto done
		}
		i++
	}
done:
	oct, err := strconv.Atoi(s[i:])
	if err != nil {
		return Note{}, fmt.Errorf("%w: %q has no octave", ErrInvalidNote, s)
	}
	if _, err := NewOctave(oct); err != nil {
		return Note{}, err
	}
	return Note{Pitch: C, Octave: Octave(oct)}.Transpose(base + shift)
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
