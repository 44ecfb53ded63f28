package sample

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned by the checked constructors of the packed
// integer formats when the value does not fit the declared width.
var ErrOutOfRange = errors.New("sample: value out of range")

const (
	MinI24 = -1 << 23
	MaxI24 = 1<<23 - 1
	MaxU24 = 1<<24 - 1
	MinI48 = -1 << 47
	MaxI48 = 1<<47 - 1
	MaxU48 = 1<<48 - 1
)

// Sample is the set of PCM and floating point formats the conversion engine
// understands.
type Sample interface {
	int8 | int16 | I24 | int32 | I48 | int64 |
		uint8 | uint16 | U24 | uint32 | U48 | uint64 |
		float32 | float64
}

// I24 is a signed 24-bit sample, right-justified in an int32.
type I24 struct{ v int32 }

// NewI24 returns v as an I24, or ErrOutOfRange.
func NewI24(v int32) (I24, error) {
	if v < MinI24 || v > MaxI24 {
		return I24{}, fmt.Errorf("%w: %d does not fit 24 signed bits", ErrOutOfRange, v)
	}
	return I24{v}, nil
}

// WrapI24 keeps the low 24 bits of v and sign-extends them.
func WrapI24(v int32) I24 { return I24{v << 8 >> 8} }

func (s I24) Int32() int32 { return s.v }

// Bits returns the 24-bit two's complement pattern.
func (s I24) Bits() uint32 { return uint32(s.v) & MaxU24 }

// U24 is an unsigned 24-bit sample, right-justified in a uint32.
type U24 struct{ v uint32 }

// NewU24 returns v as a U24, or ErrOutOfRange.
func NewU24(v uint32) (U24, error) {
	if v > MaxU24 {
		return U24{}, fmt.Errorf("%w: %d does not fit 24 unsigned bits", ErrOutOfRange, v)
	}
	return U24{v}, nil
}

// WrapU24 keeps the low 24 bits of v.
func WrapU24(v uint32) U24 { return U24{v & MaxU24} }

func (s U24) Uint32() uint32 { return s.v }
func (s U24) Bits() uint32   { return s.v }

// I48 is a signed 48-bit sample, right-justified in an int64.
type I48 struct{ v int64 }

// NewI48 returns v as an I48, or ErrOutOfRange.
func NewI48(v int64) (I48, error) {
	if v < MinI48 || v > MaxI48 {
		return I48{}, fmt.Errorf("%w: %d does not fit 48 signed bits", ErrOutOfRange, v)
	}
	return I48{v}, nil
}

// WrapI48 keeps the low 48 bits of v and sign-extends them.
func WrapI48(v int64) I48 { return I48{v << 16 >> 16} }

func (s I48) Int64() int64 { return s.v }

// Bits returns the 48-bit two's complement pattern.
func (s I48) Bits() uint64 { return uint64(s.v) & MaxU48 }

// U48 is an unsigned 48-bit sample, right-justified in a uint64.
type U48 struct{ v uint64 }

// NewU48 returns v as a U48, or ErrOutOfRange.
func NewU48(v uint64) (U48, error) {
	if v > MaxU48 {
		return U48{}, fmt.Errorf("%w: %d does not fit 48 unsigned bits", ErrOutOfRange, v)
	}
	return U48{v}, nil
}

// WrapU48 keeps the low 48 bits of v.
func WrapU48(v uint64) U48 { return U48{v & MaxU48} }

func (s U48) Uint64() uint64 { return s.v }
func (s U48) Bits() uint64   { return s.v }

// Precision returns the number of significant bits S can hold. Floats report
// their mantissa width including the implicit bit.
func Precision[S Sample]() int {
	var s S
	switch any(s).(type) {
	case int8, uint8:
		return 8
	case int16, uint16:
		return 16
	case I24, U24, float32:
		return 24
	case int32, uint32:
		return 32
	case I48, U48:
		return 48
	case float64:
		return 53
	default:
		return 64
	}
}
