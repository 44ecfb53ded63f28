package wavout

import (
	"encoding/binary"
	"math"
)

const formatIEEEFloat = 3

// floatWAV lays out a complete WAVE_FORMAT_IEEE_FLOAT file in memory.
func floatWAV(frames []float32, channels, sampleRate int) []byte {
	dataSize := len(frames) * 4
	blockAlign := channels * 4
	out := make([]byte, headerLen+dataSize)
	copy(out[0:], "RIFF")
	binary.LittleEndian.PutUint32(out[4:], uint32(headerLen-8+dataSize))
	copy(out[8:], "WAVE")
	copy(out[12:], "fmt ")
	binary.LittleEndian.PutUint32(out[16:], 16)
	binary.LittleEndian.PutUint16(out[20:], formatIEEEFloat)
	binary.LittleEndian.PutUint16(out[22:], uint16(channels))
	binary.LittleEndian.PutUint32(out[24:], uint32(sampleRate))
	binary.LittleEndian.PutUint32(out[28:], uint32(sampleRate*blockAlign))
	binary.LittleEndian.PutUint16(out[32:], uint16(blockAlign))
	binary.LittleEndian.PutUint16(out[34:], 32)
	copy(out[36:], "data")
	binary.LittleEndian.PutUint32(out[40:], uint32(dataSize))
	for i, s := range frames {
		binary.LittleEndian.PutUint32(out[headerLen+i*4:], math.Float32bits(s))
	}
	return out
}

const headerLen = 44
