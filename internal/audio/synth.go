// Package audio synthesizes the game's short sound cues and plays them
// through oto.
package audio

import (
	"encoding/binary"
	"math"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// Cue identifies a sound effect.
type Cue int

const (
	CueGameOver Cue = iota
	CueRestart
)

func (c Cue) String() string {
	switch c {
	case CueGameOver:
		return "game-over"
	case CueRestart:
		return "restart"
	}
	return "unknown"
}

// Render synthesizes c as interleaved stereo float32 LE frames.
func Render(c Cue) []byte {
	switch c {
	case CueGameOver:
		return genGameOver()
	case CueRestart:
		return genRestart()
	}
	return nil
}

// voice is one FM note inside a cue. Onset and length are in seconds.
type voice struct {
	freq    float64
	onset   float64
	length  float64
	ratio   float64 // modulator / carrier
	depth   float64 // peak modulation index
	gain    float64
	bend    float64 // fraction the pitch falls by the end of the note
	attack  float64
	decay   float64
	sustain float64
	release float64
}

// genGameOver: a falling minor third over a low root, staggered so it reads
// as the obstacle landing.
func genGameOver() []byte {
	const length = 0.8
	return mixdown(length, []voice{
		// G4
		{freq: 392.00, onset: 0.00, length: length, ratio: 2, depth: 2.2, gain: 0.3, bend: 0.03, attack: 0.008, decay: 0.25, sustain: 0.3, release: 0.45},
		// Eb4
		{freq: 311.13, onset: 0.12, length: length, ratio: 2, depth: 2.0, gain: 0.3, bend: 0.03, attack: 0.008, decay: 0.25, sustain: 0.3, release: 0.45},
		// C3
		{freq: 130.81, onset: 0.24, length: length, ratio: 1, depth: 0.6, gain: 0.2, bend: 0.05, attack: 0.02, decay: 0.3, sustain: 0.4, release: 0.5},
	})
}

// genRestart: two quick rising tones.
func genRestart() []byte {
	const step = 0.07
	return mixdown(3*step, []voice{
		// C5
		{freq: 523.25, onset: 0, length: 3 * step, ratio: 1, depth: 0.8, gain: 0.3, attack: 0.004, decay: 0.5, sustain: 0.05, release: 0.3},
		// G5
		{freq: 783.99, onset: step, length: 2 * step, ratio: 1, depth: 0.8, gain: 0.3, attack: 0.004, decay: 0.5, sustain: 0.05, release: 0.3},
	})
}

// mixdown renders voices into a buffer of the given length in seconds.
// Voices are cut at the end of the buffer.
func mixdown(length float64, voices []voice) []byte {
	n := int(length * SampleRate)
	mix := make([]float64, n)
	for _, v := range voices {
		start := int(v.onset * SampleRate)
		dur := int(v.length * SampleRate)
		for j := 0; j < dur && start+j < n; j++ {
			t := float64(start+j) / SampleRate
			p := float64(j) / float64(dur)
			env := adsr(p, v.attack, v.decay, v.sustain, v.release)
			freq := v.freq * (1 - p*v.bend)
			mix[start+j] += fm(t, freq, v.ratio, v.depth*env) * env * v.gain
		}
	}
	buf := make([]byte, n*frameBytes)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

const frameBytes = ChannelCount * 4

// putStereoF32 writes sample to both channels of frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	bits := math.Float32bits(float32(sample))
	frame := buf[i*frameBytes:]
	binary.LittleEndian.PutUint32(frame, bits)
	binary.LittleEndian.PutUint32(frame[4:], bits)
}

// softSat is a gentle cubic saturation that never hard-clips.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns the envelope at progress in [0,1]; attack, decay and release
// are fractions of the whole duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}
