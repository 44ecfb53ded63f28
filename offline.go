package synthcore

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"github.com/cbegin/synthcore-go/internal/osc"
	"github.com/cbegin/synthcore-go/internal/wavout"
)

// NoteEvent is one note in an offline render. Start and Duration are in
// seconds.
type NoteEvent struct {
	Freq     osc.Hertz
	Start    float64
	Duration float64
}

// DefaultTableCapacity is the number of lookup tables a renderer or player
// shares between its notes.
const DefaultTableCapacity = 32

// RenderVoice plays notes through one voice and returns seconds of mono
// audio. A note that starts while another sounds retriggers the voice, and
// only the most recent note's end releases it.
func RenderVoice(patch Patch, sampleRate int, seconds float64, notes ...NoteEvent) ([]float32, error) {
	if seconds < 0 {
		return nil, errors.New("seconds must not be negative")
	}
	var tables *osc.Allocator[float32]
	if patch.Source == SourceLookup {
		tables = osc.NewAllocator[float32](sampleRate, DefaultTableCapacity)
	}
	v, err := NewVoice(sampleRate, patch, tables)
	if err != nil {
		return nil, err
	}

	edges := make([]noteEdge, 0, 2*len(notes))
	for i, n := range notes {
		start := int(n.Start * float64(sampleRate))
		end := int((n.Start + n.Duration) * float64(sampleRate))
		edges = append(edges, noteEdge{at: start, on: true, note: i}, noteEdge{at: end, note: i})
	}
	sort.SliceStable(edges, func(i, j int) bool {
		if edges[i].at != edges[j].at {
			return edges[i].at < edges[j].at
		}
		return !edges[i].on && edges[j].on
	})

	frames := int(float64(sampleRate) * seconds)
	out := make([]float32, frames)
	pos, sounding := 0, -1
	for _, e := range edges {
		if e.at >= frames {
			break
		}
		if e.at > pos {
			v.Render(out[pos:e.at])
			pos = e.at
		}
		switch {
		case e.on:
			if err := v.NoteOn(notes[e.note].Freq); err != nil {
				return nil, fmt.Errorf("note %d: %w", e.note, err)
			}
			sounding = e.note
		case e.note == sounding:
			v.NoteOff()
			sounding = -1
		}
	}
	v.Render(out[pos:])
	return out, nil
}

// noteEdge is a gate change at sample offset at, owned by notes[note].
type noteEdge struct {
	at   int
	on   bool
	note int
}

// EncodeWAV encodes interleaved samples as a WAV file at the given depth.
func EncodeWAV(samples []float32, sampleRate, channels int, depth wavout.Depth) ([]byte, error) {
	var buf bytes.Buffer
	if err := wavout.Encode(&buf, samples, channels, sampleRate, depth); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
