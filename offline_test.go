package synthcore

import (
	"bytes"
	"io"
	"math"
	"testing"

	wav "github.com/youpy/go-wav"

	"github.com/cbegin/synthcore-go/internal/osc"
	"github.com/cbegin/synthcore-go/internal/wavout"
)

func TestRenderVoiceSchedulesNotes(t *testing.T) {
	const sr = 8000
	patch := sustainPatch(SourceRuntime, osc.Square)
	out, err := RenderVoice(patch, sr, 1, NoteEvent{Freq: 100, Start: 0.25, Duration: 0.25})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != sr {
		t.Fatalf("rendered %d samples, want %d", len(out), sr)
	}
	for i, v := range out[:sr/4] {
		if v != 0 {
			t.Fatalf("sample %d before the note = %f, want 0", i, v)
		}
	}
	if v := out[sr/4+sr/8]; math.Abs(float64(v)) < 0.9 {
		t.Errorf("mid-note sample = %f, want full scale", v)
	}
	for i, v := range out[3*sr/4:] {
		if v != 0 {
			t.Fatalf("sample %d after release = %f, want 0", 3*sr/4+i, v)
		}
	}
}

func TestRenderVoiceOverlappingNotes(t *testing.T) {
	const sr = 8000
	patch := sustainPatch(SourceLookup, osc.Sine)
	out, err := RenderVoice(patch, sr, 1,
		NoteEvent{Freq: 200, Start: 0, Duration: 0.5},
		NoteEvent{Freq: 400, Start: 0.25, Duration: 0.5},
	)
	if err != nil {
		t.Fatal(err)
	}
	// The first note's end must not release the second.
	var peak float32
	for _, v := range out[sr/2+sr/8 : 3*sr/4] {
		peak = max(peak, v)
	}
	if peak < 0.9 {
		t.Errorf("peak while second note sustains = %f, want near 1", peak)
	}
	if got := risingCrossings(out[sr/4 : 3*sr/4]); got < 198 || got > 200 {
		t.Errorf("rising crossings during second note = %d, want about 199", got)
	}
}

func TestRenderVoiceIsDeterministic(t *testing.T) {
	patch := DefaultPatch()
	patch.Source = SourceVariable
	patch.Waveshape = 0.8
	patch.SyncRatio = 1.5
	patch.VibratoDepth = 0.3
	note := NoteEvent{Freq: 220, Start: 0.05, Duration: 0.3}

	a, err := RenderVoice(patch, 48000, 0.5, note)
	if err != nil {
		t.Fatal(err)
	}
	b, err := RenderVoice(patch, 48000, 0.5, note)
	if err != nil {
		t.Fatal(err)
	}
	wa, err := EncodeWAV(a, 48000, 1, wavout.DepthFloat32)
	if err != nil {
		t.Fatal(err)
	}
	wb, err := EncodeWAV(b, 48000, 1, wavout.DepthFloat32)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(wa, wb) {
		t.Fatal("two renders of the same patch differ")
	}
}

func TestRenderVoiceRejectsBadArguments(t *testing.T) {
	if _, err := RenderVoice(DefaultPatch(), 48000, -1); err == nil {
		t.Error("negative duration should fail")
	}
	if _, err := RenderVoice(DefaultPatch(), 0, 1); err == nil {
		t.Error("zero sample rate should fail")
	}
}

func TestEncodeWAV24Bit(t *testing.T) {
	out, err := RenderVoice(sustainPatch(SourceRuntime, osc.Saw), 22050, 0.1, NoteEvent{Freq: 441, Duration: 0.1})
	if err != nil {
		t.Fatal(err)
	}
	data, err := EncodeWAV(out, 22050, 1, wavout.Depth24)
	if err != nil {
		t.Fatal(err)
	}
	r := wav.NewReader(bytes.NewReader(data))
	format, err := r.Format()
	if err != nil {
		t.Fatal(err)
	}
	if format.BitsPerSample != 24 || format.SampleRate != 22050 {
		t.Fatalf("format: %+v", *format)
	}
	n := 0
	for {
		samples, err := r.ReadSamples()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		n += len(samples)
	}
	if n != len(out) {
		t.Errorf("read back %d frames, want %d", n, len(out))
	}
}
