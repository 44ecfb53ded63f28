package music

import (
	"errors"
	"math"
	"testing"
)

func TestNoteFrequency(t *testing.T) {
	cases := []struct {
		note Note
		want float64
	}{
		{Note{C, 0}, 16.35},
		{Note{A, 4}, 440},
		{Note{G, 3}, 196},
		{Note{B, 15}, 30.87 * 32768},
	}
	for _, tc := range cases {
		got := float64(tc.note.Frequency())
		if math.Abs(got-tc.want) > tc.want*1e-6 {
			t.Errorf("%s: got %f, want %f", tc.note, got, tc.want)
		}
	}
}

func TestOctaveRange(t *testing.T) {
	if _, err := NewOctave(16); !errors.Is(err, ErrOctaveRange) {
		t.Errorf("NewOctave(16): got %v, want ErrOctaveRange", err)
	}
	if _, err := NewOctave(-1); !errors.Is(err, ErrOctaveRange) {
		t.Errorf("NewOctave(-1): got %v, want ErrOctaveRange", err)
	}
	o, err := Octave(14).Add(1)
	if err != nil || o != MaxOctave {
		t.Errorf("14+1: got %d, %v", o, err)
	}
	if _, err := MaxOctave.Add(1); !errors.Is(err, ErrOctaveRange) {
		t.Errorf("15+1: got %v, want ErrOctaveRange", err)
	}
	if _, err := Octave(0).Add(-1); !errors.Is(err, ErrOctaveRange) {
		t.Errorf("0-1: got %v, want ErrOctaveRange", err)
	}
}

func TestTranspose(t *testing.T) {
	n, err := Note{B, 3}.Transpose(1)
	if err != nil || n != (Note{C, 4}) {
		t.Errorf("B3+1: got %s, %v", n, err)
	}
	n, err = Note{C, 4}.Transpose(-13)
	if err != nil || n != (Note{B, 2}) {
		t.Errorf("C4-13: got %s, %v", n, err)
	}
	if _, err := (Note{C, 0}).Transpose(-1); !errors.Is(err, ErrOctaveRange) {
		t.Errorf("C0-1: got %v, want ErrOctaveRange", err)
	}
}

func TestParseNote(t *testing.T) {
	cases := []struct {
		in   string
		want Note
	}{
		{"A4", Note{A, 4}},
		{"a4", Note{A, 4}},
		{"C#3", Note{DFlat, 3}},
		{"Eb2", Note{EFlat, 2}},
		{"c+5", Note{DFlat, 5}},
		{"B#4", Note{C, 5}},
		{"Cb4", Note{B, 3}},
		{"G10", Note{G, 10}},
	}
	for _, tc := range cases {
		got, err := ParseNote(tc.in)
		if err != nil {
			t.Errorf("ParseNote(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseNote(%q): got %s, want %s", tc.in, got, tc.want)
		}
	}
	for _, bad := range []string{"", "H4", "A", "A#x"} {
		if _, err := ParseNote(bad); !errors.Is(err, ErrInvalidNote) {
			t.Errorf("ParseNote(%q): got %v, want ErrInvalidNote", bad, err)
		}
	}
	if _, err := ParseNote("A16"); !errors.Is(err, ErrOctaveRange) {
		t.Errorf("ParseNote(A16): got %v, want ErrOctaveRange", err)
	}
}

func TestRangeBracketsFrequency(t *testing.T) {
	n := Note{A, 4}
	lo, hi := n.Range()
	f := n.Frequency()
	if !(lo < f && f < hi) {
		t.Errorf("range %v..%v does not contain %v", lo, hi, f)
	}
}
