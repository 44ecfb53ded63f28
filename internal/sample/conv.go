// Package sample converts between the fixed point PCM formats and the
// floating point representation used by the generators.
//
// Integer to integer conversions shift without rounding: widening places the
// source in the high bits, narrowing drops the low bits. Signed and unsigned
// formats differ by a bias of half the range, so signed zero maps to the
// unsigned midpoint.
//
// Float conversions assume -1.0 <= s < 1.0. Outside that range the result is
// not meaningful audio, but it is deterministic: the scaled value is truncated
// toward zero and saturated to the target range, and NaN becomes zero. This
// means +1.0 lands on the format's maximum.
//
// No function here allocates.
package sample

const (
	scale8  = 1 << 7
	scale16 = 1 << 15
	scale24 = 1 << 23
	scale32 = 1 << 31
	scale48 = 1 << 47
	scale64 = 1 << 63

	bias24 = 1 << 23
	bias48 = 1 << 47
)

// scaleToInt maps a float in [-1, 1) to a signed integer of the given width.
func scaleToInt(s float64, bits uint) int64 {
	if s != s {
		return 0
	}
	lo := int64(-1) << (bits - 1)
	hi := ^lo
	limit := -float64(lo)
	v := s * limit
	if v >= limit {
		return hi
	}
	if v <= -limit {
		return lo
	}
	return int64(v)
}

// int8

func I8ToI16(s int8) int16 { return int16(s) << 8 }
func I8ToI24(s int8) I24   { return I24{int32(s) << 16} }
func I8ToI32(s int8) int32 { return int32(s) << 24 }
func I8ToI48(s int8) I48   { return I48{int64(s) << 40} }
func I8ToI64(s int8) int64 { return int64(s) << 56 }
func I8ToU8(s int8) uint8  { return uint8(s) ^ 0x80 }
func I8ToU16(s int8) uint16 {
	return uint16(I8ToU8(s)) << 8
}
func I8ToU24(s int8) U24 { return U24{uint32(I8ToU8(s)) << 16} }
func I8ToU32(s int8) uint32 {
	return uint32(I8ToU8(s)) << 24
}
func I8ToU48(s int8) U48 { return U48{uint64(I8ToU8(s)) << 40} }
func I8ToU64(s int8) uint64 {
	return uint64(I8ToU8(s)) << 56
}
func I8ToF32(s int8) float32 { return float32(s) / scale8 }
func I8ToF64(s int8) float64 { return float64(s) / scale8 }

// int16

func I16ToI8(s int16) int8   { return int8(s >> 8) }
func I16ToI24(s int16) I24   { return I24{int32(s) << 8} }
func I16ToI32(s int16) int32 { return int32(s) << 16 }
func I16ToI48(s int16) I48   { return I48{int64(s) << 32} }
func I16ToI64(s int16) int64 { return int64(s) << 48 }
func I16ToU8(s int16) uint8  { return I8ToU8(I16ToI8(s)) }
func I16ToU16(s int16) uint16 {
	return uint16(s) ^ 0x8000
}
func I16ToU24(s int16) U24 { return U24{uint32(I16ToU16(s)) << 8} }
func I16ToU32(s int16) uint32 {
	return uint32(I16ToU16(s)) << 16
}
func I16ToU48(s int16) U48 { return U48{uint64(I16ToU16(s)) << 32} }
func I16ToU64(s int16) uint64 {
	return uint64(I16ToU16(s)) << 48
}
func I16ToF32(s int16) float32 { return float32(s) / scale16 }
func I16ToF64(s int16) float64 { return float64(s) / scale16 }

// I24

func I24ToI8(s I24) int8   { return int8(s.v >> 16) }
func I24ToI16(s I24) int16 { return int16(s.v >> 8) }
func I24ToI32(s I24) int32 { return s.v << 8 }
func I24ToI48(s I24) I48   { return I48{int64(s.v) << 24} }
func I24ToI64(s I24) int64 { return int64(s.v) << 40 }
func I24ToU8(s I24) uint8  { return I8ToU8(I24ToI8(s)) }
func I24ToU16(s I24) uint16 {
	return I16ToU16(I24ToI16(s))
}
func I24ToU24(s I24) U24 { return U24{uint32(s.v + bias24)} }
func I24ToU32(s I24) uint32 {
	return uint32(s.v+bias24) << 8
}
func I24ToU48(s I24) U48 { return U48{uint64(s.v+bias24) << 24} }
func I24ToU64(s I24) uint64 {
	return uint64(s.v+bias24) << 40
}
func I24ToF32(s I24) float32 { return float32(s.v) / scale24 }
func I24ToF64(s I24) float64 { return float64(s.v) / scale24 }

// int32

func I32ToI8(s int32) int8   { return int8(s >> 24) }
func I32ToI16(s int32) int16 { return int16(s >> 16) }
func I32ToI24(s int32) I24   { return I24{s >> 8} }
func I32ToI48(s int32) I48   { return I48{int64(s) << 16} }
func I32ToI64(s int32) int64 { return int64(s) << 32 }
func I32ToU8(s int32) uint8  { return I8ToU8(I32ToI8(s)) }
func I32ToU16(s int32) uint16 {
	return I16ToU16(I32ToI16(s))
}
func I32ToU24(s int32) U24 { return I24ToU24(I32ToI24(s)) }
func I32ToU32(s int32) uint32 {
	return uint32(s) ^ 0x80000000
}
func I32ToU48(s int32) U48 { return U48{uint64(I32ToU32(s)) << 16} }
func I32ToU64(s int32) uint64 {
	return uint64(I32ToU32(s)) << 32
}
func I32ToF32(s int32) float32 { return float32(s) / scale32 }
func I32ToF64(s int32) float64 { return float64(s) / scale32 }

// I48

func I48ToI8(s I48) int8   { return int8(s.v >> 40) }
func I48ToI16(s I48) int16 { return int16(s.v >> 32) }
func I48ToI24(s I48) I24   { return I24{int32(s.v >> 24)} }
func I48ToI32(s I48) int32 { return int32(s.v >> 16) }
func I48ToI64(s I48) int64 { return s.v << 16 }
func I48ToU8(s I48) uint8  { return I8ToU8(I48ToI8(s)) }
func I48ToU16(s I48) uint16 {
	return I16ToU16(I48ToI16(s))
}
func I48ToU24(s I48) U24 { return I24ToU24(I48ToI24(s)) }
func I48ToU32(s I48) uint32 {
	return I32ToU32(I48ToI32(s))
}
func I48ToU48(s I48) U48 { return U48{uint64(s.v + bias48)} }
func I48ToU64(s I48) uint64 {
	return uint64(s.v+bias48) << 16
}
func I48ToF32(s I48) float32 { return float32(s.v) / scale48 }
func I48ToF64(s I48) float64 { return float64(s.v) / scale48 }

// int64

func I64ToI8(s int64) int8   { return int8(s >> 56) }
func I64ToI16(s int64) int16 { return int16(s >> 48) }
func I64ToI24(s int64) I24   { return I24{int32(s >> 40)} }
func I64ToI32(s int64) int32 { return int32(s >> 32) }
func I64ToI48(s int64) I48   { return I48{s >> 16} }
func I64ToU8(s int64) uint8  { return I8ToU8(I64ToI8(s)) }
func I64ToU16(s int64) uint16 {
	return I16ToU16(I64ToI16(s))
}
func I64ToU24(s int64) U24 { return I24ToU24(I64ToI24(s)) }
func I64ToU32(s int64) uint32 {
	return I32ToU32(I64ToI32(s))
}
func I64ToU48(s int64) U48 { return I48ToU48(I64ToI48(s)) }
func I64ToU64(s int64) uint64 {
	return uint64(s) ^ (1 << 63)
}
func I64ToF32(s int64) float32 { return float32(s) / scale64 }
func I64ToF64(s int64) float64 { return float64(s) / scale64 }

// uint8

func U8ToI8(s uint8) int8   { return int8(s ^ 0x80) }
func U8ToI16(s uint8) int16 { return int16(U8ToI8(s)) << 8 }
func U8ToI24(s uint8) I24   { return I24{int32(U8ToI8(s)) << 16} }
func U8ToI32(s uint8) int32 { return int32(U8ToI8(s)) << 24 }
func U8ToI48(s uint8) I48   { return I48{int64(U8ToI8(s)) << 40} }
func U8ToI64(s uint8) int64 { return int64(U8ToI8(s)) << 56 }
func U8ToU16(s uint8) uint16 {
	return uint16(s) << 8
}
func U8ToU24(s uint8) U24 { return U24{uint32(s) << 16} }
func U8ToU32(s uint8) uint32 {
	return uint32(s) << 24
}
func U8ToU48(s uint8) U48 { return U48{uint64(s) << 40} }
func U8ToU64(s uint8) uint64 {
	return uint64(s) << 56
}
func U8ToF32(s uint8) float32 { return I8ToF32(U8ToI8(s)) }
func U8ToF64(s uint8) float64 { return I8ToF64(U8ToI8(s)) }

// uint16

func U16ToI8(s uint16) int8   { return U8ToI8(U16ToU8(s)) }
func U16ToI16(s uint16) int16 { return int16(s ^ 0x8000) }
func U16ToI24(s uint16) I24   { return I24{int32(U16ToI16(s)) << 8} }
func U16ToI32(s uint16) int32 { return int32(U16ToI16(s)) << 16 }
func U16ToI48(s uint16) I48   { return I48{int64(U16ToI16(s)) << 32} }
func U16ToI64(s uint16) int64 { return int64(U16ToI16(s)) << 48 }
func U16ToU8(s uint16) uint8  { return uint8(s >> 8) }
func U16ToU24(s uint16) U24   { return U24{uint32(s) << 8} }
func U16ToU32(s uint16) uint32 {
	return uint32(s) << 16
}
func U16ToU48(s uint16) U48 { return U48{uint64(s) << 32} }
func U16ToU64(s uint16) uint64 {
	return uint64(s) << 48
}
func U16ToF32(s uint16) float32 { return I16ToF32(U16ToI16(s)) }
func U16ToF64(s uint16) float64 { return I16ToF64(U16ToI16(s)) }

// U24

func U24ToI8(s U24) int8   { return U8ToI8(U24ToU8(s)) }
func U24ToI16(s U24) int16 { return U16ToI16(U24ToU16(s)) }
func U24ToI24(s U24) I24   { return I24{int32(s.v) - bias24} }
func U24ToI32(s U24) int32 { return (int32(s.v) - bias24) << 8 }
func U24ToI48(s U24) I48   { return I48{(int64(s.v) - bias24) << 24} }
func U24ToI64(s U24) int64 { return (int64(s.v) - bias24) << 40 }
func U24ToU8(s U24) uint8  { return uint8(s.v >> 16) }
func U24ToU16(s U24) uint16 {
	return uint16(s.v >> 8)
}
func U24ToU32(s U24) uint32 { return s.v << 8 }
func U24ToU48(s U24) U48    { return U48{uint64(s.v) << 24} }
func U24ToU64(s U24) uint64 {
	return uint64(s.v) << 40
}
func U24ToF32(s U24) float32 { return I24ToF32(U24ToI24(s)) }
func U24ToF64(s U24) float64 { return I24ToF64(U24ToI24(s)) }

// uint32

func U32ToI8(s uint32) int8   { return U8ToI8(U32ToU8(s)) }
func U32ToI16(s uint32) int16 { return U16ToI16(U32ToU16(s)) }
func U32ToI24(s uint32) I24   { return U24ToI24(U32ToU24(s)) }
func U32ToI32(s uint32) int32 { return int32(s ^ 0x80000000) }
func U32ToI48(s uint32) I48   { return I48{int64(U32ToI32(s)) << 16} }
func U32ToI64(s uint32) int64 { return int64(U32ToI32(s)) << 32 }
func U32ToU8(s uint32) uint8  { return uint8(s >> 24) }
func U32ToU16(s uint32) uint16 {
	return uint16(s >> 16)
}
func U32ToU24(s uint32) U24 { return U24{s >> 8} }
func U32ToU48(s uint32) U48 { return U48{uint64(s) << 16} }
func U32ToU64(s uint32) uint64 {
	return uint64(s) << 32
}
func U32ToF32(s uint32) float32 { return I32ToF32(U32ToI32(s)) }
func U32ToF64(s uint32) float64 { return I32ToF64(U32ToI32(s)) }

// U48

func U48ToI8(s U48) int8   { return U8ToI8(U48ToU8(s)) }
func U48ToI16(s U48) int16 { return U16ToI16(U48ToU16(s)) }
func U48ToI24(s U48) I24   { return U24ToI24(U48ToU24(s)) }
func U48ToI32(s U48) int32 { return U32ToI32(U48ToU32(s)) }
func U48ToI48(s U48) I48   { return I48{int64(s.v) - bias48} }
func U48ToI64(s U48) int64 { return (int64(s.v) - bias48) << 16 }
func U48ToU8(s U48) uint8  { return uint8(s.v >> 40) }
func U48ToU16(s U48) uint16 {
	return uint16(s.v >> 32)
}
func U48ToU24(s U48) U24 { return U24{uint32(s.v >> 24)} }
func U48ToU32(s U48) uint32 {
	return uint32(s.v >> 16)
}
func U48ToU64(s U48) uint64  { return s.v << 16 }
func U48ToF32(s U48) float32 { return I48ToF32(U48ToI48(s)) }
func U48ToF64(s U48) float64 { return I48ToF64(U48ToI48(s)) }

// uint64

func U64ToI8(s uint64) int8   { return U8ToI8(U64ToU8(s)) }
func U64ToI16(s uint64) int16 { return U16ToI16(U64ToU16(s)) }
func U64ToI24(s uint64) I24   { return U24ToI24(U64ToU24(s)) }
func U64ToI32(s uint64) int32 { return U32ToI32(U64ToU32(s)) }
func U64ToI48(s uint64) I48   { return U48ToI48(U64ToU48(s)) }
func U64ToI64(s uint64) int64 { return int64(s ^ (1 << 63)) }
func U64ToU8(s uint64) uint8  { return uint8(s >> 56) }
func U64ToU16(s uint64) uint16 {
	return uint16(s >> 48)
}
func U64ToU24(s uint64) U24 { return U24{uint32(s >> 40)} }
func U64ToU32(s uint64) uint32 {
	return uint32(s >> 32)
}
func U64ToU48(s uint64) U48     { return U48{s >> 16} }
func U64ToF32(s uint64) float32 { return I64ToF32(U64ToI64(s)) }
func U64ToF64(s uint64) float64 { return I64ToF64(U64ToI64(s)) }

// float32

func F32ToI8(s float32) int8   { return int8(scaleToInt(float64(s), 8)) }
func F32ToI16(s float32) int16 { return int16(scaleToInt(float64(s), 16)) }
func F32ToI24(s float32) I24   { return I24{int32(scaleToInt(float64(s), 24))} }
func F32ToI32(s float32) int32 { return int32(scaleToInt(float64(s), 32)) }
func F32ToI48(s float32) I48   { return I48{scaleToInt(float64(s), 48)} }
func F32ToI64(s float32) int64 { return scaleToInt(float64(s), 64) }
func F32ToU8(s float32) uint8  { return I8ToU8(F32ToI8(s)) }
func F32ToU16(s float32) uint16 {
	return I16ToU16(F32ToI16(s))
}
func F32ToU24(s float32) U24 { return I24ToU24(F32ToI24(s)) }
func F32ToU32(s float32) uint32 {
	return I32ToU32(F32ToI32(s))
}
func F32ToU48(s float32) U48 { return I48ToU48(F32ToI48(s)) }
func F32ToU64(s float32) uint64 {
	return I64ToU64(F32ToI64(s))
}
func F32ToF64(s float32) float64 { return float64(s) }

// float64

func F64ToI8(s float64) int8   { return int8(scaleToInt(s, 8)) }
func F64ToI16(s float64) int16 { return int16(scaleToInt(s, 16)) }
func F64ToI24(s float64) I24   { return I24{int32(scaleToInt(s, 24))} }
func F64ToI32(s float64) int32 { return int32(scaleToInt(s, 32)) }
func F64ToI48(s float64) I48   { return I48{scaleToInt(s, 48)} }
func F64ToI64(s float64) int64 { return scaleToInt(s, 64) }
func F64ToU8(s float64) uint8  { return I8ToU8(F64ToI8(s)) }
func F64ToU16(s float64) uint16 {
	return I16ToU16(F64ToI16(s))
}
func F64ToU24(s float64) U24 { return I24ToU24(F64ToI24(s)) }
func F64ToU32(s float64) uint32 {
	return I32ToU32(F64ToI32(s))
}
func F64ToU48(s float64) U48 { return I48ToU48(F64ToI48(s)) }
func F64ToU64(s float64) uint64 {
	return I64ToU64(F64ToI64(s))
}
func F64ToF32(s float64) float32 { return float32(s) }
