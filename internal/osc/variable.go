package osc

// maxPhaseStep caps both accumulators at a quarter cycle per sample.
const maxPhaseStep = 0.25

func naiveShape(phase, pw, slopeUp, slopeDown, triangleAmount, squareAmount float32) float32 {
	saw := phase
	var square, triangle float32
	if phase < pw {
		triangle = phase * slopeUp
	} else {
		square = 1
		triangle = 1 - (phase-pw)*slopeDown
	}
	saw += (square - saw) * squareAmount
	saw += (triangle - saw) * triangleAmount
	return saw
}

// Band-limited step residuals. t is the fraction of the sample period that
// has elapsed since the discontinuity.

func thisBlep(t float32) float32 { return 0.5 * t * t }

func nextBlep(t float32) float32 {
	t = 1 - t
	return -0.5 * t * t
}

func nextIntegratedBlep(t float32) float32 {
	t1 := 0.5 * t
	t2 := t1 * t1
	t4 := t2 * t2
	return 0.1875 - t1 + 1.5*t2 - t4
}

func thisIntegratedBlep(t float32) float32 { return nextIntegratedBlep(1 - t) }

// VariableShape is a band-limited oscillator that morphs from
// triangle/saw/ramp (waveshape 0) to pulse (waveshape 1) and can be hard
// synced to a second, inaudible master oscillator.
//
// Output is delayed by one sample so that a discontinuity can be corrected on
// both sides.
type VariableShape struct {
	sampleRate int
	sync       bool

	masterPhase float32
	slavePhase  float32
	nextSample  float32
	previousPW  float32
	high        bool

	masterFreq  float32
	slaveFreq   float32
	requestedPW float32
	pulseWidth  float32
	waveshape   float32
}

// NewVariableShape returns a 440 Hz triangle with sync disabled and the sync
// master at 220 Hz.
func NewVariableShape(sampleRate int) *VariableShape {
	v := &VariableShape{
		sampleRate:  sampleRate,
		previousPW:  0.5,
		requestedPW: 0.5,
		pulseWidth:  0.5,
	}
	v.SetFrequency(440)
	v.SetSyncFrequency(220)
	return v
}

func (v *VariableShape) SampleRate() int { return v.sampleRate }

func (v *VariableShape) step(freq Hertz) float32 {
	if v.sampleRate <= 0 {
		return 0
	}
	f := freq.PerSample(v.sampleRate)
	if f >= maxPhaseStep {
		return maxPhaseStep
	}
	return f
}

// SetFrequency sets the audible frequency.
func (v *VariableShape) SetFrequency(freq Hertz) {
	v.slaveFreq = v.step(freq)
	v.updatePulseWidth()
}

// SetSyncFrequency sets the frequency of the master that resets the audible
// phase while sync is enabled.
func (v *VariableShape) SetSyncFrequency(freq Hertz) {
	v.masterFreq = v.step(freq)
}

func (v *VariableShape) SetSync(enabled bool) { v.sync = enabled }

// SetWaveshape morphs between triangle/saw (0) and pulse (1). Square content
// starts above 0.5; the slope content is gone by then.
func (v *VariableShape) SetWaveshape(shape float32) { v.waveshape = shape }

// SetPulseWidth sets the rising fraction of the slope shape and the high
// fraction of the pulse. It is kept at least two phase steps away from either
// end of the cycle.
func (v *VariableShape) SetPulseWidth(pw float32) {
	v.requestedPW = pw
	v.updatePulseWidth()
}

func (v *VariableShape) PulseWidth() float32 { return v.pulseWidth }

func (v *VariableShape) updatePulseWidth() {
	if v.slaveFreq >= maxPhaseStep {
		v.pulseWidth = 0.5
		return
	}
	v.pulseWidth = min(max(v.requestedPW, 2*v.slaveFreq), 1-2*v.slaveFreq)
}

// Sample returns the next output sample in [-1, 1].
func (v *VariableShape) Sample() float32 {
	thisSample := v.nextSample
	var nextSample float32

	var (
		reset                 bool
		transitionDuringReset bool
		resetTime             float32
	)

	squareAmount := max(v.waveshape-0.5, 0) * 2
	triangleAmount := max(1-v.waveshape*2, 0)
	slopeUp := 1 / v.pulseWidth
	slopeDown := 1 / (1 - v.pulseWidth)

	if v.sync {
		v.masterPhase += v.masterFreq
		if v.masterPhase >= 1 {
			v.masterPhase -= 1
			resetTime = v.masterPhase / v.masterFreq

			phaseAtReset := v.slavePhase + (1-resetTime)*v.slaveFreq
			reset = true
			if phaseAtReset >= 1 {
				phaseAtReset -= 1
				transitionDuringReset = true
			}
			if !v.high && phaseAtReset >= v.pulseWidth {
				transitionDuringReset = true
			}
			value := naiveShape(phaseAtReset, v.pulseWidth, slopeUp, slopeDown, triangleAmount, squareAmount)
			thisSample -= value * thisBlep(resetTime)
			nextSample -= value * nextBlep(resetTime)
		}
	}

	v.slavePhase += v.slaveFreq
	for transitionDuringReset || !reset {
		if !v.high {
			if v.slavePhase < v.pulseWidth {
				break
			}
			t := (v.slavePhase - v.pulseWidth) / (v.previousPW - v.pulseWidth + v.slaveFreq)
			triangleStep := (slopeUp + slopeDown) * v.slaveFreq * triangleAmount

			thisSample += squareAmount * thisBlep(t)
			nextSample += squareAmount * nextBlep(t)
			thisSample -= triangleStep * thisIntegratedBlep(t)
			nextSample -= triangleStep * nextIntegratedBlep(t)
			v.high = true
		}

		if v.high {
			if v.slavePhase < 1 {
				break
			}
			v.slavePhase -= 1
			t := v.slavePhase / v.slaveFreq
			triangleStep := (slopeUp + slopeDown) * v.slaveFreq * triangleAmount

			thisSample -= (1 - triangleAmount) * thisBlep(t)
			nextSample -= (1 - triangleAmount) * nextBlep(t)
			thisSample += triangleStep * thisIntegratedBlep(t)
			nextSample += triangleStep * nextIntegratedBlep(t)
			v.high = false
		}
	}

	if v.sync && reset {
		v.slavePhase = resetTime * v.slaveFreq
		v.high = false
	}

	nextSample += naiveShape(v.slavePhase, v.pulseWidth, slopeUp, slopeDown, triangleAmount, squareAmount)
	v.previousPW = v.pulseWidth
	v.nextSample = nextSample

	return 2*thisSample - 1
}

// Render fills dst with consecutive samples.
func (v *VariableShape) Render(dst []float32) {
	for i := range dst {
		dst[i] = v.Sample()
	}
}

// Reset returns both accumulators and the correction memory to zero.
func (v *VariableShape) Reset() {
	v.masterPhase = 0
	v.slavePhase = 0
	v.nextSample = 0
	v.high = false
	v.previousPW = v.pulseWidth
}
