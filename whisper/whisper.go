// Package whisper synthesizes the whisper sound played by the spooky_sound event.
//
// The sound is white noise shaped by a Hann window and a ~20 Hz tremor,
// rendered as 16-bit little-endian signed mono PCM. No audio asset is needed.
package whisper

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
	"time"
)

const (
	DefaultDuration   = 1500 * time.Millisecond
	DefaultSampleRate = 44100

	// MaxAmplitude is the largest magnitude of a 16-bit sample.
	MaxAmplitude = math.MaxInt16

	bytesPerSample = 2
)

// SampleCount returns the number of samples for d at sampleRate, rounded to
// the nearest integer.
func SampleCount(d time.Duration, sampleRate int) int {
	if d <= 0 || sampleRate <= 0 {
		return 0
	}
	return int(math.Round(float64(d) * float64(sampleRate) / float64(time.Second)))
}

// Envelope returns the amplitude multiplier for sample i of n.
func Envelope(i, n, sampleRate int) float64 {
	if n <= 0 || sampleRate <= 0 {
		return 0
	}
	hann := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n)))
	tremor := 0.6 + 0.4*math.Sin(40*math.Pi*float64(i)/float64(sampleRate))
	return hann * tremor
}

// Generate renders a whisper of duration d. A nil r uses a freshly seeded source,
// so every call sounds slightly different.
func Generate(r *rand.Rand, d time.Duration, sampleRate int) []byte {
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	n := SampleCount(d, sampleRate)
	pcm := make([]byte, n*bytesPerSample)
	for i := 0; i < n; i++ {
		noise := r.Float64()*2 - 1
		v := int16(noise * Envelope(i, n, sampleRate) * MaxAmplitude)
		binary.LittleEndian.PutUint16(pcm[i*bytesPerSample:], uint16(v))
	}
	return pcm
}

// Default renders the standard 1.5s whisper at 44.1kHz.
func Default(r *rand.Rand) []byte {
	return Generate(r, DefaultDuration, DefaultSampleRate)
}

// Decode unpacks little-endian 16-bit PCM. A trailing odd byte is ignored.
func Decode(pcm []byte) []int16 {
	out := make([]int16, len(pcm)/bytesPerSample)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(pcm[i*bytesPerSample:]))
	}
	return out
}
