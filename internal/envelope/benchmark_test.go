package envelope

import "testing"

func BenchmarkEnvelopeProcess(b *testing.B) {
	e := New(48000, DefaultParams())
	buf := make([]float32, 512)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Gate the first half of each block, release the rest.
		for j := range buf {
			buf[j] = e.Process(j < len(buf)/2)
		}
	}
}
