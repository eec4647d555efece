// Package lfo provides the demo host's parameter-automation oscillator:
// sweeping a circuit parameter (e.g. a resistor value, a switch threshold)
// slowly over time via Tree.SetParam, independent of the audio-rate signal
// path the tree itself runs on.
package lfo

// Waveform selects the shape Sample walks through one sweep period.
type Waveform int

const (
	WaveSaw Waveform = iota
	WaveSquare
	WaveTriangle
)

// Sweep produces one bipolar modulation value per call, intended to be
// fed straight into Tree.SetParam once per audio sample. Unlike an
// audio-rate oscillator it caches its phase increment at Set time, since
// the sweep rate is always far below the Nyquist-sensitive rates the
// circuit tree itself runs at.
type Sweep struct {
	depth float64
	wave  Waveform
	phase float64
	inc   float64
}

// Set configures the sweep: depth is the modulation's peak deviation (in
// the swept parameter's own units; Sample spans [-depth, +depth]), rateHz
// how many sweep cycles per second,
// sampleRate the audio-rate clock Sample will be called at. An invalid
// waveform falls back to WaveTriangle.
func (s *Sweep) Set(depth, rateHz, sampleRate float64, wave Waveform) {
	s.depth = depth
	s.wave = wave
	if wave < WaveSaw || wave > WaveTriangle {
		s.wave = WaveTriangle
	}
	if sampleRate <= 0 {
		s.inc = 0
		return
	}
	s.inc = rateHz / sampleRate
}

// Active reports whether Sample would produce a non-constant-zero signal.
func (s *Sweep) Active() bool {
	return s.depth != 0 && s.inc != 0
}

// Sample advances the sweep by one sample and returns a value in
// [-depth, +depth], or 0 if the sweep is inactive.
func (s *Sweep) Sample() float64 {
	if !s.Active() {
		return 0
	}
	v := bipolar(s.phase, s.wave)
	s.phase += s.inc
	if s.phase >= 1 {
		s.phase -= 1
	}
	return v * s.depth
}

// bipolar maps a phase in [0,1) to a waveform value in [-1,1].
func bipolar(phase float64, wave Waveform) float64 {
	switch wave {
	case WaveSaw:
		return 1 - 2*phase
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	default: // WaveTriangle
		if phase < 0.5 {
			return 4*phase - 1
		}
		return 3 - 4*phase
	}
}
