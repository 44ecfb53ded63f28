package main

import (
	"flag"
	"log"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/cbegin/synthcore-go"
	"github.com/cbegin/synthcore-go/internal/osc"
)

const defaultNotes = "C4 E4 G4 C5"

func main() {
	var (
		sampleRate = flag.Int("sample-rate", 48000, "output sample rate")
		source     = flag.String("source", "runtime", "oscillator: runtime|lookup|variable")
		wave       = flag.String("wave", "sine", "waveform: sine|saw|triangle|square")
		duty       = flag.String("duty", "1/2", "square duty cycle: 1/2|1/3|1/4|1/8")
		notes      = flag.String("notes", defaultNotes, "space separated note names")
		hold       = flag.Duration("hold", 400*time.Millisecond, "how long each note is held")
		volume     = flag.Float64("volume", 1.0, "master volume scalar")
		shape      = flag.Float64("shape", 0, "variable oscillator waveshape (0 triangle/saw .. 1 pulse)")
		sync       = flag.Float64("sync", 0, "variable oscillator sync ratio; 0 disables hard sync")
		vibrato    = flag.Float64("vibrato", 0, "vibrato depth in semitones")
		tables     = flag.Int("tables", synthcore.DefaultTableCapacity, "lookup table cache size")
	)
	flag.Parse()
	log.SetFlags(0)

	patch := synthcore.DefaultPatch()
	var err error
	if patch.Source, err = synthcore.ParseSource(*source); err != nil {
		log.Fatal(err)
	}
	if patch.Wave, err = osc.ParseKind(*wave); err != nil {
		log.Fatal(err)
	}
	if patch.Duty, err = osc.ParseDutyCycle(*duty); err != nil {
		log.Fatal(err)
	}
	patch.Waveshape = float32(*shape)
	patch.SyncRatio = float32(*sync)
	patch.VibratoDepth = *vibrato

	pl, err := synthcore.NewPlayer(*sampleRate, synthcore.WithPatch(patch), synthcore.WithTableCapacity(*tables))
	if err != nil {
		log.Fatal(err)
	}
	pl.SetMasterVolume(*volume)
	if err := pl.Start(); err != nil {
		log.Fatal(err)
	}
	defer pl.Stop()

	for _, name := range strings.Fields(*notes) {
		if err := pl.PlayNote(name); err != nil {
			color.Red("skipping %s: %v", name, err)
			continue
		}
		if pl.FellBack() {
			color.Yellow("%s: table cache full, using runtime oscillator", name)
		} else {
			color.Cyan("%s", name)
		}
		time.Sleep(*hold)
		pl.NoteOff()
	}
	for pl.Active() {
		time.Sleep(10 * time.Millisecond)
	}
	color.Green("playback completed")
}
