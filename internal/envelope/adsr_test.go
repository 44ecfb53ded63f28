package envelope

import (
	"math"
	"testing"
)

func TestAttackDecayHoldsSustain(t *testing.T) {
	e := New(48000, DefaultParams())

	prev := float32(0)
	peakAt := -1
	for i := 0; i < 48000; i++ {
		x := e.Process(true)
		if peakAt < 0 {
			if x < prev {
				t.Fatalf("attack not monotonic at %d: %f after %f", i, x, prev)
			}
			if e.Stage() == StageDecay {
				peakAt = i
				if x < 0.999 {
					t.Errorf("level entering decay: got %f, want >= 0.999", x)
				}
			}
		} else if x > prev {
			t.Fatalf("decay not monotonic at %d: %f after %f", i, x, prev)
		}
		prev = x
	}
	if peakAt < 0 || peakAt > 5000 {
		t.Fatalf("peak reached at sample %d, want within ~4800", peakAt)
	}
	if math.Abs(float64(prev)-0.5) > 1e-3 {
		t.Errorf("level after one second: got %f, want ~0.5", prev)
	}
	if e.Stage() != StageDecay {
		t.Errorf("stage while sustaining: got %s, want decay", e.Stage())
	}
}

func TestReleaseReturnsToInit(t *testing.T) {
	e := New(48000, DefaultParams())
	for i := 0; i < 48000; i++ {
		e.Process(true)
	}

	prev := e.Level()
	doneAt := -1
	for i := 0; i < 48000; i++ {
		x := e.Process(false)
		if x > prev {
			t.Fatalf("release not monotonic at %d: %f after %f", i, x, prev)
		}
		prev = x
		if e.Stage() == StageInit {
			doneAt = i
			break
		}
	}
	// From 0.5 toward -0.01 with a 4800 sample time constant.
	if doneAt < 0 || doneAt > 20000 {
		t.Fatalf("release finished at %d, want about 19000", doneAt)
	}
	if prev != 0 {
		t.Errorf("level at end of release: got %f, want 0", prev)
	}
	if got := e.Process(false); got != 0 {
		t.Errorf("idle level: got %f, want 0", got)
	}
}

func TestZeroAttackSnaps(t *testing.T) {
	p := DefaultParams()
	p.AttackSec = 0
	e := New(48000, p)
	if got := e.Process(true); got < 0.999 {
		t.Errorf("first sample: got %f, want >= 0.999", got)
	}
	if e.Stage() != StageDecay {
		t.Errorf("stage: got %s, want decay", e.Stage())
	}
}

func TestZeroSustainFinishesDecay(t *testing.T) {
	p := DefaultParams()
	p.SustainLvl = 0
	p.AttackSec = 0.001
	p.DecaySec = 0.01
	e := New(8000, p)
	finished := false
	for i := 0; i < 8000; i++ {
		e.Process(true)
		if e.Stage() == StageInit {
			finished = true
			break
		}
	}
	if !finished {
		t.Fatal("decay toward zero sustain never reached init")
	}
	// Holding the gate does not retrigger.
	for i := 0; i < 100; i++ {
		if got := e.Process(true); got != 0 {
			t.Fatalf("held gate after decay: got %f, want 0", got)
		}
	}
}

func TestRetriggerDuringRelease(t *testing.T) {
	e := New(1000, DefaultParams())
	for i := 0; i < 1000; i++ {
		e.Process(true)
	}
	for i := 0; i < 20; i++ {
		e.Process(false)
	}
	level := e.Level()
	if e.Stage() != StageRelease {
		t.Fatalf("stage: got %s, want release", e.Stage())
	}
	if got := e.Process(true); got < level || e.Stage() != StageAttack {
		t.Errorf("retrigger: got %f in %s, want a rise from %f in attack", got, e.Stage(), level)
	}
}

func TestSustainClamp(t *testing.T) {
	e := New(48000, DefaultParams())
	e.SetSustainLevel(3)
	if e.sustainLvl != 1 {
		t.Errorf("sustain above 1: got %f", e.sustainLvl)
	}
	e.SetSustainLevel(-2)
	if e.sustainLvl != silenceFloor {
		t.Errorf("sustain below 0: got %f", e.sustainLvl)
	}
}

func TestCoefficientsOnlyChangeWithParameters(t *testing.T) {
	e := New(48000, DefaultParams())
	d0 := e.attackD0
	e.SetAttackTime(0.1, 0)
	if e.attackD0 != d0 {
		t.Errorf("same attack time changed the coefficient")
	}
	e.SetAttackTime(0.1, 1)
	if e.attackD0 == d0 {
		t.Errorf("new shape kept the old coefficient")
	}
	if e.attackLevel < 10.3 || e.attackLevel > 10.32 {
		t.Errorf("attack target for shape 1: got %f, want 10.31", e.attackLevel)
	}
	e.SetDecayTime(-1)
	if e.decayD0 != 1 {
		t.Errorf("negative decay time: got coefficient %f, want 1", e.decayD0)
	}
}

func TestNegativeTimesSnap(t *testing.T) {
	e := New(48000, Params{
		AttackSec:   -1,
		AttackShape: -1,
		DecaySec:    -1,
		SustainLvl:  0.5,
		ReleaseSec:  -1,
	})
	for name, d0 := range map[string]float32{
		"attack":  e.attackD0,
		"decay":   e.decayD0,
		"release": e.releaseD0,
	} {
		if d0 != 1 {
			t.Errorf("%s coefficient: got %f, want 1", name, d0)
		}
	}

	if got := e.Process(true); got != 1 || e.Stage() != StageDecay {
		t.Fatalf("first gated sample: got %f in %s, want 1 in decay", got, e.Stage())
	}
	for i := 0; i < 4; i++ {
		if got := e.Process(true); got != 0.5 {
			t.Fatalf("held sample %d: got %f, want sustain 0.5", i, got)
		}
	}
	if got := e.Process(false); got != 0 || e.Stage() != StageInit {
		t.Errorf("release: got %f in %s, want 0 in init", got, e.Stage())
	}
}

func TestProcessDoesNotAllocate(t *testing.T) {
	e := New(48000, DefaultParams())
	gate := false
	allocs := testing.AllocsPerRun(1000, func() {
		gate = !gate
		e.Process(gate)
	})
	if allocs != 0 {
		t.Errorf("Process allocated %.1f times per call", allocs)
	}
}
