package sample

// Convert converts s to the format D using the named pairwise conversion.
// Converting a format to itself returns s unchanged.
func Convert[D, S Sample](s S) D {
	switch v := any(s).(type) {
	case int8:
		return fromI8[D](v)
	case int16:
		return fromI16[D](v)
	case I24:
		return fromI24[D](v)
	case int32:
		return fromI32[D](v)
	case I48:
		return fromI48[D](v)
	case int64:
		return fromI64[D](v)
	case uint8:
		return fromU8[D](v)
	case uint16:
		return fromU16[D](v)
	case U24:
		return fromU24[D](v)
	case uint32:
		return fromU32[D](v)
	case U48:
		return fromU48[D](v)
	case uint64:
		return fromU64[D](v)
	case float32:
		return fromF32[D](v)
	case float64:
		return fromF64[D](v)
	}
	panic("unreachable")
}

func fromI8[D Sample](s int8) D {
	var d D
	switch p := any(&d).(type) {
	case *int8:
		*p = s
	case *int16:
		*p = I8ToI16(s)
	case *I24:
		*p = I8ToI24(s)
	case *int32:
		*p = I8ToI32(s)
	case *I48:
		*p = I8ToI48(s)
	case *int64:
		*p = I8ToI64(s)
	case *uint8:
		*p = I8ToU8(s)
	case *uint16:
		*p = I8ToU16(s)
	case *U24:
		*p = I8ToU24(s)
	case *uint32:
		*p = I8ToU32(s)
	case *U48:
		*p = I8ToU48(s)
	case *uint64:
		*p = I8ToU64(s)
	case *float32:
		*p = I8ToF32(s)
	case *float64:
		*p = I8ToF64(s)
	}
	return d
}

func fromI16[D Sample](s int16) D {
	var d D
	switch p := any(&d).(type) {
	case *int8:
		*p = I16ToI8(s)
	case *int16:
		*p = s
	case *I24:
		*p = I16ToI24(s)
	case *int32:
		*p = I16ToI32(s)
	case *I48:
		*p = I16ToI48(s)
	case *int64:
		*p = I16ToI64(s)
	case *uint8:
		*p = I16ToU8(s)
	case *uint16:
		*p = I16ToU16(s)
	case *U24:
		*p = I16ToU24(s)
	case *uint32:
		*p = I16ToU32(s)
	case *U48:
		*p = I16ToU48(s)
	case *uint64:
		*p = I16ToU64(s)
	case *float32:
		*p = I16ToF32(s)
	case *float64:
		*p = I16ToF64(s)
	}
	return d
}

func fromI24[D Sample](s I24) D {
	var d D
	switch p := any(&d).(type) {
	case *int8:
		*p = I24ToI8(s)
	case *int16:
		*p = I24ToI16(s)
	case *I24:
		*p = s
	case *int32:
		*p = I24ToI32(s)
	case *I48:
		*p = I24ToI48(s)
	case *int64:
		*p = I24ToI64(s)
	case *uint8:
		*p = I24ToU8(s)
	case *uint16:
		*p = I24ToU16(s)
	case *U24:
		*p = I24ToU24(s)
	case *uint32:
		*p = I24ToU32(s)
	case *U48:
		*p = I24ToU48(s)
	case *uint64:
		*p = I24ToU64(s)
	case *float32:
		*p = I24ToF32(s)
	case *float64:
		*p = I24ToF64(s)
	}
	return d
}

func fromI32[D Sample](s int32) D {
	var d D
	switch p := any(&d).(type) {
	case *int8:
		*p = I32ToI8(s)
	case *int16:
		*p = I32ToI16(s)
	case *I24:
		*p = I32ToI24(s)
	case *int32:
		*p = s
	case *I48:
		*p = I32ToI48(s)
	case *int64:
		*p = I32ToI64(s)
	case *uint8:
		*p = I32ToU8(s)
	case *uint16:
		*p = I32ToU16(s)
	case *U24:
		*p = I32ToU24(s)
	case *uint32:
		*p = I32ToU32(s)
	case *U48:
		*p = I32ToU48(s)
	case *uint64:
		*p = I32ToU64(s)
	case *float32:
		*p = I32ToF32(s)
	case *float64:
		*p = I32ToF64(s)
	}
	return d
}

func fromI48[D Sample](s I48) D {
	var d D
	switch p := any(&d).(type) {
	case *int8:
		*p = I48ToI8(s)
	case *int16:
		*p = I48ToI16(s)
	case *I24:
		*p = I48ToI24(s)
	case *int32:
		*p = I48ToI32(s)
	case *I48:
		*p = s
	case *int64:
		*p = I48ToI64(s)
	case *uint8:
		*p = I48ToU8(s)
	case *uint16:
		*p = I48ToU16(s)
	case *U24:
		*p = I48ToU24(s)
	case *uint32:
		*p = I48ToU32(s)
	case *U48:
		*p = I48ToU48(s)
	case *uint64:
		*p = I48ToU64(s)
	case *float32:
		*p = I48ToF32(s)
	case *float64:
		*p = I48ToF64(s)
	}
	return d
}

func fromI64[D Sample](s int64) D {
	var d D
	switch p := any(&d).(type) {
	case *int8:
		*p = I64ToI8(s)
	case *int16:
		*p = I64ToI16(s)
	case *I24:
		*p = I64ToI24(s)
	case *int32:
		*p = I64ToI32(s)
	case *I48:
		*p = I64ToI48(s)
	case *int64:
		*p = s
	case *uint8:
		*p = I64ToU8(s)
	case *uint16:
		*p = I64ToU16(s)
	case *U24:
		*p = I64ToU24(s)
	case *uint32:
		*p = I64ToU32(s)
	case *U48:
		*p = I64ToU48(s)
	case *uint64:
		*p = I64ToU64(s)
	case *float32:
		*p = I64ToF32(s)
	case *float64:
		*p = I64ToF64(s)
	}
	return d
}

func fromU8[D Sample](s uint8) D {
	var d D
	switch p := any(&d).(type) {
	case *int8:
		*p = U8ToI8(s)
	case *int16:
		*p = U8ToI16(s)
	case *I24:
		*p = U8ToI24(s)
	case *int32:
		*p = U8ToI32(s)
	case *I48:
		*p = U8ToI48(s)
	case *int64:
		*p = U8ToI64(s)
	case *uint8:
		*p = s
	case *uint16:
		*p = U8ToU16(s)
	case *U24:
		*p = U8ToU24(s)
	case *uint32:
		*p = U8ToU32(s)
	case *U48:
		*p = U8ToU48(s)
	case *uint64:
		*p = U8ToU64(s)
	case *float32:
		*p = U8ToF32(s)
	case *float64:
		*p = U8ToF64(s)
	}
	return d
}

func fromU16[D Sample](s uint16) D {
	var d D
	switch p := any(&d).(type) {
	case *int8:
		*p = U16ToI8(s)
	case *int16:
		*p = U16ToI16(s)
	case *I24:
		*p = U16ToI24(s)
	case *int32:
		*p = U16ToI32(s)
	case *I48:
		*p = U16ToI48(s)
	case *int64:
		*p = U16ToI64(s)
	case *uint8:
		*p = U16ToU8(s)
	case *uint16:
		*p = s
	case *U24:
		*p = U16ToU24(s)
	case *uint32:
		*p = U16ToU32(s)
	case *U48:
		*p = U16ToU48(s)
	case *uint64:
		*p = U16ToU64(s)
	case *float32:
		*p = U16ToF32(s)
	case *float64:
		*p = U16ToF64(s)
	}
	return d
}

func fromU24[D Sample](s U24) D {
	var d D
	switch p := any(&d).(type) {
	case *int8:
		*p = U24ToI8(s)
	case *int16:
		*p = U24ToI16(s)
	case *I24:
		*p = U24ToI24(s)
	case *int32:
		*p = U24ToI32(s)
	case *I48:
		*p = U24ToI48(s)
	case *int64:
		*p = U24ToI64(s)
	case *uint8:
		*p = U24ToU8(s)
	case *uint16:
		*p = U24ToU16(s)
	case *U24:
		*p = s
	case *uint32:
		*p = U24ToU32(s)
	case *U48:
		*p = U24ToU48(s)
	case *uint64:
		*p = U24ToU64(s)
	case *float32:
		*p = U24ToF32(s)
	case *float64:
		*p = U24ToF64(s)
	}
	return d
}

func fromU32[D Sample](s uint32) D {
	var d D
	switch p := any(&d).(type) {
	case *int8:
		*p = U32ToI8(s)
	case *int16:
		*p = U32ToI16(s)
	case *I24:
		*p = U32ToI24(s)
	case *int32:
		*p = U32ToI32(s)
	case *I48:
		*p = U32ToI48(s)
	case *int64:
		*p = U32ToI64(s)
	case *uint8:
		*p = U32ToU8(s)
	case *uint16:
		*p = U32ToU16(s)
	case *U24:
		*p = U32ToU24(s)
	case *uint32:
		*p = s
	case *U48:
		*p = U32ToU48(s)
	case *uint64:
		*p = U32ToU64(s)
	case *float32:
		*p = U32ToF32(s)
	case *float64:
		*p = U32ToF64(s)
	}
	return d
}

func fromU48[D Sample](s U48) D {
	var d D
	switch p := any(&d).(type) {
	case *int8:
		*p = U48ToI8(s)
	case *int16:
		*p = U48ToI16(s)
	case *I24:
		*p = U48ToI24(s)
	case *int32:
		*p = U48ToI32(s)
	case *I48:
		*p = U48ToI48(s)
	case *int64:
		*p = U48ToI64(s)
	case *uint8:
		*p = U48ToU8(s)
	case *uint16:
		*p = U48ToU16(s)
	case *U24:
		*p = U48ToU24(s)
	case *uint32:
		*p = U48ToU32(s)
	case *U48:
		*p = s
	case *uint64:
		*p = U48ToU64(s)
	case *float32:
		*p = U48ToF32(s)
	case *float64:
		*p = U48ToF64(s)
	}
	return d
}

func fromU64[D Sample](s uint64) D {
	var d D
	switch p := any(&d).(type) {
	case *int8:
		*p = U64ToI8(s)
	case *int16:
		*p = U64ToI16(s)
	case *I24:
		*p = U64ToI24(s)
	case *int32:
		*p = U64ToI32(s)
	case *I48:
		*p = U64ToI48(s)
	case *int64:
		*p = U64ToI64(s)
	case *uint8:
		*p = U64ToU8(s)
	case *uint16:
		*p = U64ToU16(s)
	case *U24:
		*p = U64ToU24(s)
	case *uint32:
		*p = U64ToU32(s)
	case *U48:
		*p = U64ToU48(s)
	case *uint64:
		*p = s
	case *float32:
		*p = U64ToF32(s)
	case *float64:
		*p = U64ToF64(s)
	}
	return d
}

func fromF32[D Sample](s float32) D {
	var d D
	switch p := any(&d).(type) {
	case *int8:
		*p = F32ToI8(s)
	case *int16:
		*p = F32ToI16(s)
	case *I24:
		*p = F32ToI24(s)
	case *int32:
		*p = F32ToI32(s)
	case *I48:
		*p = F32ToI48(s)
	case *int64:
		*p = F32ToI64(s)
	case *uint8:
		*p = F32ToU8(s)
	case *uint16:
		*p = F32ToU16(s)
	case *U24:
		*p = F32ToU24(s)
	case *uint32:
		*p = F32ToU32(s)
	case *U48:
		*p = F32ToU48(s)
	case *uint64:
		*p = F32ToU64(s)
	case *float32:
		*p = s
	case *float64:
		*p = F32ToF64(s)
	}
	return d
}

func fromF64[D Sample](s float64) D {
	var d D
	switch p := any(&d).(type) {
	case *int8:
		*p = F64ToI8(s)
	case *int16:
		*p = F64ToI16(s)
	case *I24:
		*p = F64ToI24(s)
	case *int32:
		*p = F64ToI32(s)
	case *I48:
		*p = F64ToI48(s)
	case *int64:
		*p = F64ToI64(s)
	case *uint8:
		*p = F64ToU8(s)
	case *uint16:
		*p = F64ToU16(s)
	case *U24:
		*p = F64ToU24(s)
	case *uint32:
		*p = F64ToU32(s)
	case *U48:
		*p = F64ToU48(s)
	case *uint64:
		*p = F64ToU64(s)
	case *float32:
		*p = F64ToF32(s)
	case *float64:
		*p = s
	}
	return d
}
