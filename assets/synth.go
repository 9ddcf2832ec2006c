package assets

import (
	"encoding/binary"
	"math"
)

const (
	waveSine = iota
	waveSquare
	waveTriangle
	waveNoise
)

// tone is one synthesized clip: a waveform swept from Start to End Hz with
// an attack/release envelope.
type tone struct {
	Wave     int
	Start    float64
	End      float64
	Duration float64
	Attack   float64
	Release  float64
	Gain     float64
}

var clipTones = map[string][]tone{
	"jump":   {{Wave: waveSquare, Start: 320, End: 720, Duration: 0.16, Attack: 0.005, Release: 0.08, Gain: 0.35}},
	"land":   {{Wave: waveTriangle, Start: 420, End: 90, Duration: 0.14, Attack: 0.002, Release: 0.06, Gain: 0.6}},
	"swerve": {{Wave: waveNoise, Start: 0, End: 0, Duration: 0.09, Attack: 0.01, Release: 0.06, Gain: 0.25}},
	"coin": {
		{Wave: waveSine, Start: 988, End: 988, Duration: 0.07, Attack: 0.002, Release: 0.02, Gain: 0.45},
		{Wave: waveSine, Start: 1319, End: 1319, Duration: 0.18, Attack: 0.002, Release: 0.12, Gain: 0.45},
	},
}

func synthesizeClips(sampleRate int) map[string][]byte {
	out := make(map[string][]byte, len(clipTones))
	for name, tones := range clipTones {
		var mono []float64
		for _, t := range tones {
			mono = append(mono, t.render(sampleRate)...)
		}
		out[name] = encodeStereo16(mono)
	}
	return out
}

func (t tone) render(sampleRate int) []float64 {
	n := int(t.Duration * float64(sampleRate))
	buf := make([]float64, n)
	phase := 0.0
	// xorshift keeps the noise deterministic between runs
	seed := uint32(0x9e3779b9)
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := t.Start + (t.End-t.Start)*progress
		var v float64
		switch t.Wave {
		case waveSine:
			v = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				v = 1
			} else {
				v = -1
			}
		case waveTriangle:
			v = 4*math.Abs(phase-0.5) - 1
		case waveNoise:
			seed ^= seed << 13
			seed ^= seed >> 17
			seed ^= seed << 5
			v = float64(seed)/float64(math.MaxUint32)*2 - 1
		}
		buf[i] = v * t.Gain * envelope(i, n, t.Attack, t.Release, sampleRate)

		phase += freq / float64(sampleRate)
		if phase >= 1 {
			phase -= math.Floor(phase)
		}
	}
	return buf
}

func envelope(i, n int, attack, release float64, sampleRate int) float64 {
	a := int(attack * float64(sampleRate))
	r := int(release * float64(sampleRate))
	switch {
	case a > 0 && i < a:
		return float64(i) / float64(a)
	case r > 0 && i >= n-r:
		return float64(n-i) / float64(r)
	default:
		return 1
	}
}

// encodeStereo16 writes signed 16-bit little-endian stereo frames.
func encodeStereo16(mono []float64) []byte {
	out := make([]byte, len(mono)*4)
	for i, v := range mono {
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		s := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(out[i*4:], s)
		binary.LittleEndian.PutUint16(out[i*4+2:], s)
	}
	return out
}
