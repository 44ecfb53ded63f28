package synthcore

import (
	"testing"

	"github.com/cbegin/synthcore-go/internal/osc"
)

func TestPlayerMasterVolumeRuntimeAPI(t *testing.T) {
	pl, err := NewPlayer(48000)
	if err != nil {
		t.Fatalf("new player: %v", err)
	}
	if got := pl.MasterVolume(); got != 1 {
		t.Fatalf("default master volume = %v, want 1", got)
	}
	pl.SetMasterVolume(0.35)
	if got := pl.MasterVolume(); got != 0.35 {
		t.Fatalf("master volume = %v, want 0.35", got)
	}
	pl.SetMasterVolume(-2)
	if got := pl.MasterVolume(); got != 0 {
		t.Fatalf("master volume should clamp to 0, got %v", got)
	}
}

func TestPlayerSourceFeedsTap(t *testing.T) {
	var tapped int
	pl, err := NewPlayer(48000, WithSampleTap(func(buf []float32) { tapped += len(buf) }))
	if err != nil {
		t.Fatal(err)
	}
	if err := pl.PlayNote("A4"); err != nil {
		t.Fatal(err)
	}
	buf := make([]float32, 2*4800)
	pl.source.Process(buf)
	if tapped != len(buf) {
		t.Fatalf("tap saw %d samples, want %d", tapped, len(buf))
	}
	var peak float32
	for i := 0; i < len(buf); i += 2 {
		if buf[i] != buf[i+1] {
			t.Fatalf("frame %d: channels differ", i/2)
		}
		if buf[i] > peak {
			peak = buf[i]
		}
	}
	if peak < 0.1 {
		t.Errorf("peak %f after note on, want audible output", peak)
	}

	pl.SetMasterVolume(0)
	pl.source.Process(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("sample %d = %f at zero volume", i, v)
		}
	}
}

func TestPlayerLookupFallsBackWhenTablesRunOut(t *testing.T) {
	patch := DefaultPatch()
	patch.Source = SourceLookup
	pl, err := NewPlayer(8000, WithPatch(patch), WithTableCapacity(1))
	if err != nil {
		t.Fatal(err)
	}
	if err := pl.NoteOn(400); err != nil {
		t.Fatal(err)
	}
	if pl.FellBack() {
		t.Fatal("first note should get a table")
	}
	if err := pl.NoteOn(osc.Hertz(500)); err != nil {
		t.Fatal(err)
	}
	if !pl.FellBack() {
		t.Fatal("second frequency should fall back to a runtime oscillator")
	}
	if err := pl.NoteOn(400); err != nil {
		t.Fatal(err)
	}
	if pl.FellBack() {
		t.Fatal("cached frequency should play from its table again")
	}
}

func TestPlayerRejectsBadNote(t *testing.T) {
	pl, err := NewPlayer(48000)
	if err != nil {
		t.Fatal(err)
	}
	if err := pl.PlayNote("H2"); err == nil {
		t.Error("PlayNote(H2) should fail")
	}
	if pl.Active() {
		t.Error("player should be idle after a rejected note")
	}
	if err := pl.Stop(); err != nil {
		t.Errorf("Stop without Start: %v", err)
	}
}
