// Package envelope implements an attack/decay/sustain/release amplitude
// envelope driven by a per-sample gate.
package envelope

import "math"

// silenceFloor is the level decay and release aim at when heading for zero.
// The one-pole approach crosses it in finite time, which ends the stage.
const silenceFloor = -0.01

type Stage int

const (
	StageInit Stage = iota
	StageAttack
	StageDecay
	StageRelease
)

func (s Stage) String() string {
	switch s {
	case StageAttack:
		return "attack"
	case StageDecay:
		return "decay"
	case StageRelease:
		return "release"
	default:
		return "init"
	}
}

type Params struct {
	AttackSec   float32
	AttackShape float32 // 0 is a plain exponential rise; larger values bulge
	DecaySec    float32
	SustainLvl  float32
	ReleaseSec  float32
}

func DefaultParams() Params {
	return Params{
		AttackSec:  0.1,
		DecaySec:   0.1,
		SustainLvl: 0.5,
		ReleaseSec: 0.1,
	}
}

// Envelope holds the state of one voice's envelope. Sustain is not a stage
// of its own: decay approaches the sustain level and holds there while the
// gate stays high.
type Envelope struct {
	sampleRate float32

	attackSec   float32
	attackShape float32
	decaySec    float32
	releaseSec  float32

	attackLevel float32
	sustainLvl  float32

	attackD0  float32
	decayD0   float32
	releaseD0 float32

	stage Stage
	gate  bool
	x     float32
}

func New(sampleRate int, params Params) *Envelope {
	// NaN never equals a requested value, so every setter computes its
	// coefficient once.
	unset := float32(math.NaN())
	e := &Envelope{
		sampleRate:  float32(sampleRate),
		attackSec:   unset,
		attackShape: unset,
		decaySec:    unset,
		releaseSec:  unset,
	}
	e.SetAttackTime(params.AttackSec, params.AttackShape)
	e.SetDecayTime(params.DecaySec)
	e.SetSustainLevel(params.SustainLvl)
	e.SetReleaseTime(params.ReleaseSec)
	return e
}

// coefficient returns the per-sample step that covers ln(ratio) in the given
// time. Non-positive times jump in one sample.
func (e *Envelope) coefficient(seconds float32, logRatio float64) float32 {
	if seconds <= 0 || e.sampleRate <= 0 {
		return 1
	}
	return float32(1 - math.Exp(logRatio/(float64(seconds)*float64(e.sampleRate))))
}

// SetAttackTime sets the rise time to full level. The attack aims past 1.0
// at 9*shape^10 + 0.3*shape + 1.01 and ends when it crosses 1.0, so a larger
// shape gives a straighter ramp.
func (e *Envelope) SetAttackTime(seconds, shape float32) {
	if seconds == e.attackSec && shape == e.attackShape {
		return
	}
	e.attackSec = seconds
	e.attackShape = shape

	s := float64(shape)
	target := 9*math.Pow(s, 10) + 0.3*s + 1.01
	e.attackLevel = float32(target)
	e.attackD0 = e.coefficient(seconds, math.Log(1-1/target))
}

func (e *Envelope) SetDecayTime(seconds float32) {
	if seconds == e.decaySec {
		return
	}
	e.decaySec = seconds
	e.decayD0 = e.coefficient(seconds, -1)
}

func (e *Envelope) SetReleaseTime(seconds float32) {
	if seconds == e.releaseSec {
		return
	}
	e.releaseSec = seconds
	e.releaseD0 = e.coefficient(seconds, -1)
}

// SetSustainLevel clamps level to (0, 1]. Zero or below sustains just under
// silence so that decay still finishes.
func (e *Envelope) SetSustainLevel(level float32) {
	switch {
	case level <= 0:
		e.sustainLvl = silenceFloor
	case level > 1:
		e.sustainLvl = 1
	default:
		e.sustainLvl = level
	}
}

func (e *Envelope) Stage() Stage { return e.stage }
func (e *Envelope) Level() float32 {
	return e.x
}

// Active reports whether the envelope is producing a non-silent level.
func (e *Envelope) Active() bool { return e.stage != StageInit }

// Reset returns to Init at zero with the gate low.
func (e *Envelope) Reset() {
	e.stage = StageInit
	e.gate = false
	e.x = 0
}

// Process advances one sample and returns the level in [0, 1]. A rising gate
// starts the attack from the current level and a falling gate starts the
// release, whatever the stage.
func (e *Envelope) Process(gate bool) float32 {
	if gate && !e.gate {
		e.stage = StageAttack
	} else if !gate && e.gate {
		e.stage = StageRelease
	}
	e.gate = gate

	switch e.stage {
	case StageAttack:
		e.x += e.attackD0 * (e.attackLevel - e.x)
		if e.x > 1 {
			e.x = 1
			e.stage = StageDecay
		}
		return e.x
	case StageDecay, StageRelease:
		d0, target := e.decayD0, e.sustainLvl
		if e.stage == StageRelease {
			d0, target = e.releaseD0, silenceFloor
		}
		e.x += d0 * (target - e.x)
		if e.x < 0 {
			e.x = 0
			e.stage = StageInit
		}
		return e.x
	default:
		return 0
	}
}
