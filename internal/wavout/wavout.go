// Package wavout writes float32 audio as WAV files, either as integer PCM at
// 8 to 32 bits or as IEEE float.
package wavout

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	wav "github.com/youpy/go-wav"

	"github.com/cbegin/synthcore-go/internal/sample"
)

// Depth is the PCM sample width in bits.
type Depth uint16

const (
	Depth8  Depth = 8
	Depth16 Depth = 16
	Depth24 Depth = 24
	Depth32 Depth = 32

	// DepthFloat32 writes IEEE float samples instead of integer PCM.
	DepthFloat32 Depth = 1<<8 | 32
)

func (d Depth) valid() bool {
	switch d {
	case Depth8, Depth16, Depth24, Depth32, DepthFloat32:
		return true
	}
	return false
}

// Bits returns the sample width in bits.
func (d Depth) Bits() int { return int(d & 0xff) }

func (d Depth) String() string {
	if d == DepthFloat32 {
		return "f32"
	}
	return strconv.Itoa(d.Bits())
}

// value returns the integer go-wav expects for depth d. 8-bit WAV data is
// unsigned; wider depths are signed.
func (d Depth) value(v float32) int {
	switch d {
	case Depth8:
		return int(sample.F32ToU8(v))
	case Depth16:
		return int(sample.F32ToI16(v))
	case Depth24:
		return int(sample.F32ToI24(v).Int32())
	default:
		return int(sample.F32ToI32(v))
	}
}

const blockFrames = 4096

// errWriter remembers the first write error, which go-wav does not report.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

// Encode writes interleaved frames with the given channel count (1 or 2) as a
// PCM WAV stream.
func Encode(w io.Writer, frames []float32, channels, sampleRate int, depth Depth) error {
	if channels != 1 && channels != 2 {
		return errors.Errorf("wavout: %d channels not supported", channels)
	}
	if !depth.valid() {
		return errors.Errorf("wavout: depth %d not supported", uint16(depth))
	}
	if sampleRate <= 0 {
		return errors.Errorf("wavout: invalid sample rate %d", sampleRate)
	}
	if len(frames)%channels != 0 {
		return errors.Errorf("wavout: %d samples is not a whole number of %d-channel frames", len(frames), channels)
	}

	if depth == DepthFloat32 {
		_, err := w.Write(floatWAV(frames, channels, sampleRate))
		return errors.Wrap(err, "wavout: write")
	}

	ew := &errWriter{w: w}
	numFrames := len(frames) / channels
	ww := wav.NewWriter(ew, uint32(numFrames), uint16(channels), uint32(sampleRate), uint16(depth.Bits()))

	block := make([]wav.Sample, 0, blockFrames)
	for i := 0; i < numFrames; i++ {
		var s wav.Sample
		for c := 0; c < channels; c++ {
			s.Values[c] = depth.value(frames[i*channels+c])
		}
		block = append(block, s)
		if len(block) == cap(block) || i == numFrames-1 {
			if err := ww.WriteSamples(block); err != nil {
				return errors.Wrap(err, "wavout: write samples")
			}
			block = block[:0]
		}
	}
	if ew.err != nil {
		return errors.Wrap(ew.err, "wavout: write")
	}
	return nil
}

// WriteFile encodes frames into a new file at path.
func WriteFile(path string, frames []float32, channels, sampleRate int, depth Depth) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "wavout: create")
	}
	bw := bufio.NewWriter(f)
	if err := Encode(bw, frames, channels, sampleRate, depth); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return errors.Wrapf(err, "wavout: flush %s", path)
	}
	return errors.Wrapf(f.Close(), "wavout: close %s", path)
}

// ParseDepth accepts "8", "16", "24", "32" and "f32".
func ParseDepth(s string) (Depth, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "8":
		return Depth8, nil
	case "16":
		return Depth16, nil
	case "24":
		return Depth24, nil
	case "32":
		return Depth32, nil
	case "f32", "float", "float32":
		return DepthFloat32, nil
	}
	return 0, errors.Errorf("wavout: depth %q not supported", s)
}
