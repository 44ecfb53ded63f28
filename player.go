package synthcore

import (
	"errors"
	"sync"

	intaudio "github.com/cbegin/synthcore-go/internal/audio"
	"github.com/cbegin/synthcore-go/internal/music"
	"github.com/cbegin/synthcore-go/internal/osc"
)

type PlayerOption func(*playerConfig)

type playerConfig struct {
	patch         Patch
	sampleTap     func([]float32)
	tableCapacity int
}

func defaultPlayerConfig() playerConfig {
	return playerConfig{patch: DefaultPatch(), tableCapacity: DefaultTableCapacity}
}

func WithPatch(patch Patch) PlayerOption {
	return func(cfg *playerConfig) {
		cfg.patch = patch
	}
}

// WithSampleTap installs a callback invoked with each generated stereo buffer.
// The callback runs on the audio thread; keep work brief and non-blocking.
func WithSampleTap(tap func([]float32)) PlayerOption {
	return func(cfg *playerConfig) {
		cfg.sampleTap = tap
	}
}

// WithTableCapacity sets how many lookup tables a lookup patch may build
// before further notes fall back to a runtime oscillator.
func WithTableCapacity(n int) PlayerOption {
	return func(cfg *playerConfig) {
		cfg.tableCapacity = n
	}
}

// Player auditions one voice on the default audio device. The device is only
// opened by Start, so a Player can be configured and driven without one.
type Player struct {
	mu         sync.Mutex
	sampleRate int
	source     *voiceSource
	audio      *intaudio.Player
	volume     float64
}

// voiceSource guards the voice shared between the audio thread and note
// calls, and implements intaudio.SampleSource.
type voiceSource struct {
	mu        sync.Mutex
	voice     *Voice
	gain      float32
	sampleTap func([]float32)
}

func (s *voiceSource) Process(dst []float32) {
	s.mu.Lock()
	s.voice.Process(dst)
	gain := s.gain
	s.mu.Unlock()
	if gain != 1 {
		for i := range dst {
			dst[i] *= gain
		}
	}
	if s.sampleTap != nil {
		s.sampleTap(dst)
	}
}

func NewPlayer(sampleRate int, opts ...PlayerOption) (*Player, error) {
	if sampleRate <= 0 {
		return nil, errors.New("sampleRate must be positive")
	}
	cfg := defaultPlayerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	var tables *osc.Allocator[float32]
	if cfg.patch.Source == SourceLookup {
		tables = osc.NewAllocator[float32](sampleRate, cfg.tableCapacity)
	}
	v, err := NewVoice(sampleRate, cfg.patch, tables)
	if err != nil {
		return nil, err
	}
	return &Player{
		sampleRate: sampleRate,
		source:     &voiceSource{voice: v, gain: 1, sampleTap: cfg.sampleTap},
		volume:     1,
	}, nil
}

// Start opens the audio device and begins streaming the voice.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.audio != nil {
		p.audio.Play()
		return nil
	}
	backend, err := intaudio.NewPlayer(p.sampleRate, p.source)
	if err != nil {
		return err
	}
	p.audio = backend
	p.audio.Play()
	return nil
}

func (p *Player) NoteOn(freq osc.Hertz) error {
	p.source.mu.Lock()
	defer p.source.mu.Unlock()
	return p.source.voice.NoteOn(freq)
}

// PlayNote starts a note given by name, such as "A4" or "c#3".
func (p *Player) PlayNote(name string) error {
	n, err := music.ParseNote(name)
	if err != nil {
		return err
	}
	return p.NoteOn(n.Frequency())
}

func (p *Player) NoteOff() {
	p.source.mu.Lock()
	defer p.source.mu.Unlock()
	p.source.voice.NoteOff()
}

// Active reports whether the voice is still sounding.
func (p *Player) Active() bool {
	p.source.mu.Lock()
	defer p.source.mu.Unlock()
	return p.source.voice.Active()
}

// FellBack reports whether the current note is playing on a runtime
// oscillator because the lookup table cache was full.
func (p *Player) FellBack() bool {
	p.source.mu.Lock()
	defer p.source.mu.Unlock()
	return p.source.voice.FellBack()
}

func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.audio != nil {
		p.audio.Pause()
	}
}

func (p *Player) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.audio == nil {
		return nil
	}
	err := p.audio.Stop()
	p.audio = nil
	return err
}

// SetMasterVolume sets runtime volume scalar. 1.0 is default.
func (p *Player) SetMasterVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}
	p.mu.Lock()
	p.volume = volume
	p.mu.Unlock()
	p.source.mu.Lock()
	p.source.gain = float32(volume)
	p.source.mu.Unlock()
}

func (p *Player) MasterVolume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// PlaybackPosition returns the current output position of the audio driver in
// frames. Returns 0 if not playing.
func (p *Player) PlaybackPosition() int64 {
	p.mu.Lock()
	a := p.audio
	p.mu.Unlock()
	if a == nil {
		return 0
	}
	return int64(a.Position().Seconds() * float64(p.sampleRate))
}
