package main

import (
	"os"
	"path/filepath"
	"testing"

	wav "github.com/youpy/go-wav"

	"github.com/cbegin/synthcore-go"
	"github.com/cbegin/synthcore-go/internal/osc"
	"github.com/cbegin/synthcore-go/internal/wavout"
)

func testJob(dir string) renderJob {
	return renderJob{
		patch:      synthcore.DefaultPatch(),
		sampleRate: 8000,
		seconds:    0.1,
		note:       synthcore.NoteEvent{Freq: 440, Duration: 0.05},
		depth:      wavout.Depth16,
		outDir:     dir,
	}
}

func TestRenderAllWritesEveryWave(t *testing.T) {
	dir := t.TempDir()
	paths, err := renderAll(testJob(dir), []osc.Kind{osc.Sine, osc.Square})
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 || filepath.Base(paths[1]) != "runtime-square-16.wav" {
		t.Fatalf("paths: %v", paths)
	}
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			t.Fatal(err)
		}
		format, err := wav.NewReader(f).Format()
		f.Close()
		if err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		if format.SampleRate != 8000 || format.BitsPerSample != 16 {
			t.Errorf("%s: format %+v", path, *format)
		}
	}
}

func TestRenderAllReportsWriteFailure(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	if _, err := renderAll(testJob(dir), []osc.Kind{osc.Saw, osc.Triangle}); err == nil {
		t.Fatal("rendering into a missing directory succeeded")
	}
}
