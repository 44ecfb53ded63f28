package osc

import (
	"fmt"
	"strings"
)

// Kind selects one of the basic periodic waveforms.
type Kind int

const (
	Sine Kind = iota
	Saw
	Triangle
	Square
)

var kindNames = [...]string{"sine", "saw", "triangle", "square"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind accepts the lower-case names printed by Kind.String.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range kindNames {
		if s == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown waveform %q", s)
}

// DutyCycle is the fraction of a square period spent high. Only the four
// named values exist so that a duty cycle can be part of a cache key.
type DutyCycle uint8

const (
	DutyHalf DutyCycle = iota
	DutyEighth
	DutyQuarter
	DutyThird
)

// Fraction returns the high fraction of the period.
func (d DutyCycle) Fraction() float32 {
	switch d {
	case DutyEighth:
		return 0.125
	case DutyQuarter:
		return 0.25
	case DutyThird:
		return 0.33
	default:
		return 0.5
	}
}

// canonical folds values outside the named set onto DutyHalf, which is how
// Fraction already treats them.
func (d DutyCycle) canonical() DutyCycle {
	if d > DutyThird {
		return DutyHalf
	}
	return d
}

func (d DutyCycle) String() string {
	switch d {
	case DutyEighth:
		return "1/8"
	case DutyQuarter:
		return "1/4"
	case DutyThird:
		return "1/3"
	default:
		return "1/2"
	}
}

// ParseDutyCycle accepts "1/8", "1/4", "1/3" and "1/2" as well as the
// decimal fractions 0.125, 0.25, 0.33 and 0.5.
func ParseDutyCycle(s string) (DutyCycle, error) {
	switch strings.TrimSpace(s) {
	case "1/8", "0.125", ".125":
		return DutyEighth, nil
	case "1/4", "0.25", ".25":
		return DutyQuarter, nil
	case "1/3", "0.33", ".33":
		return DutyThird, nil
	case "1/2", "0.5", ".5":
		return DutyHalf, nil
	}
	return DutyHalf, fmt.Errorf("unknown duty cycle %q", s)
}
