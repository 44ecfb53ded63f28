package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"

	"github.com/cbegin/synthcore-go"
	"github.com/cbegin/synthcore-go/internal/music"
	"github.com/cbegin/synthcore-go/internal/osc"
	"github.com/cbegin/synthcore-go/internal/wavout"
)

func main() {
	var (
		sampleRate = flag.Int("sample-rate", 48000, "output sample rate")
		waves      = flag.String("wave", "sine", "comma separated waveforms: sine|saw|triangle|square")
		source     = flag.String("source", "runtime", "oscillator: runtime|lookup|variable")
		note       = flag.String("note", "A4", "note name, ignored when -freq is set")
		freq       = flag.Float64("freq", 0, "tone frequency in Hz")
		duty       = flag.String("duty", "1/2", "square duty cycle: 1/2|1/3|1/4|1/8")
		seconds    = flag.Float64("seconds", 2, "render length")
		hold       = flag.Float64("hold", 1.5, "seconds before note off")
		depthName  = flag.String("depth", "16", "bit depth: 8|16|24|32|f32")
		outDir     = flag.String("out", ".", "output directory")
		shape      = flag.Float64("shape", 0, "variable oscillator waveshape (0 triangle/saw .. 1 pulse)")
		sync       = flag.Float64("sync", 0, "variable oscillator sync ratio; 0 disables hard sync")
	)
	flag.Parse()
	log.SetFlags(0)

	depth, err := wavout.ParseDepth(*depthName)
	if err != nil {
		log.Fatal(err)
	}
	src, err := synthcore.ParseSource(*source)
	if err != nil {
		log.Fatal(err)
	}
	dc, err := osc.ParseDutyCycle(*duty)
	if err != nil {
		log.Fatal(err)
	}
	hz, err := resolveFrequency(*note, *freq)
	if err != nil {
		log.Fatal(err)
	}
	kinds, err := parseKinds(*waves)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.MkdirAll(*outDir, os.ModePerm); err != nil {
		log.Fatal(err)
	}

	base := synthcore.DefaultPatch()
	base.Source = src
	base.Duty = dc
	base.Waveshape = float32(*shape)
	base.SyncRatio = float32(*sync)
	job := renderJob{
		patch:      base,
		sampleRate: *sampleRate,
		seconds:    *seconds,
		note:       synthcore.NoteEvent{Freq: hz, Duration: *hold},
		depth:      depth,
		outDir:     *outDir,
	}
	if _, err := renderAll(job, kinds); err != nil {
		color.Red("render failed")
		log.Fatal(err)
	}
}

type renderJob struct {
	patch      synthcore.Patch
	sampleRate int
	seconds    float64
	note       synthcore.NoteEvent
	depth      wavout.Depth
	outDir     string
}

// renderAll writes one file per waveform in parallel and returns the paths
// in the order of kinds.
func renderAll(job renderJob, kinds []osc.Kind) ([]string, error) {
	var g errgroup.Group
	paths := make([]string, len(kinds))
	for i, k := range kinds {
		patch := job.patch
		patch.Wave = k
		path := filepath.Join(job.outDir, fmt.Sprintf("%s-%s-%s.wav", patch.Source, k, job.depth))
		paths[i] = path
		g.Go(func() error {
			samples, err := synthcore.RenderVoice(patch, job.sampleRate, job.seconds, job.note)
			if err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
			if err := wavout.WriteFile(path, samples, 1, job.sampleRate, job.depth); err != nil {
				return err
			}
			color.Green("wrote %s (%s at %v, %d samples)", path, k, job.note.Freq, len(samples))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

func resolveFrequency(note string, freq float64) (osc.Hertz, error) {
	if freq > 0 {
		return osc.Hertz(freq), nil
	}
	n, err := music.ParseNote(note)
	if err != nil {
		return 0, err
	}
	return n.Frequency(), nil
}

func parseKinds(s string) ([]osc.Kind, error) {
	var kinds []osc.Kind
	for _, name := range strings.Split(s, ",") {
		k, err := osc.ParseKind(strings.TrimSpace(name))
		if err != nil {
			return nil, fmt.Errorf("invalid -wave %q: %w", name, err)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
