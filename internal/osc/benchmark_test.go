package osc

import "testing"

func BenchmarkVariableShapeSample(b *testing.B) {
	v := NewVariableShape(48000)
	v.SetFrequency(220)
	v.SetSyncFrequency(330)
	v.SetWaveshape(0.7)
	v.SetSync(true)
	buf := make([]float32, 512)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Render(buf)
	}
}

func BenchmarkLookupSample(b *testing.B) {
	tab, err := NewTable[int16](Square, 48000, 440, DutyQuarter)
	if err != nil {
		b.Fatalf("build table: %v", err)
	}
	l, err := NewLookup(48000, tab)
	if err != nil {
		b.Fatalf("lookup: %v", err)
	}
	buf := make([]int16, 512)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Render[int16](l, buf)
	}
}

func BenchmarkRuntimeSample(b *testing.B) {
	r := NewRuntime[int16](Sine, 48000, 440)
	buf := make([]int16, 512)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Render[int16](r, buf)
	}
}
