package audio

import (
	"math"
	"time"
)

// Synth constants
const (
	SampleRate    = 44100
	ClipDuration  = 2 * time.Second
	StrumDelay    = 25 * time.Millisecond
	FadeOut       = 50 * time.Millisecond
	PeakAmplitude = 9000.0
	DecayRate     = 2.5

	bytesPerFrame = 4 // 16-bit stereo
)

// harmonic weights of the plucked tone, fundamental first
var harmonics = []float64{1.0, 0.5, 0.25}

// Synthesize renders a strummed chord as 16-bit little endian stereo PCM.
// Each frequency is one string; strings start StrumDelay apart, low first.
// No frequencies yields silence of the requested length.
func Synthesize(freqs []float64, sampleRate int, d time.Duration) []byte {
	frames := int(float64(sampleRate) * d.Seconds())
	buf := make([]byte, frames*bytesPerFrame)
	if len(freqs) == 0 || frames == 0 {
		return buf
	}

	harmonicSum := 0.0
	for _, w := range harmonics {
		harmonicSum += w
	}
	voiceAmp := PeakAmplitude / float64(len(freqs)) / harmonicSum

	strumFrames := int(float64(sampleRate) * StrumDelay.Seconds())
	fadeFrames := int(float64(sampleRate) * FadeOut.Seconds())
	if fadeFrames > frames {
		fadeFrames = frames
	}

	for i := 0; i < frames; i++ {
		sample := 0.0
		for s, freq := range freqs {
			start := s * strumFrames
			if i < start {
				continue
			}
			t := float64(i-start) / float64(sampleRate)
			envelope := math.Exp(-DecayRate * t)
			for h, w := range harmonics {
				sample += w * math.Sin(2*math.Pi*freq*float64(h+1)*t) * voiceAmp * envelope
			}
		}

		if remaining := frames - i - 1; remaining < fadeFrames {
			sample *= float64(remaining) / float64(fadeFrames)
		}

		v := int16(sample)
		for ch := 0; ch < 2; ch++ {
			idx := i*bytesPerFrame + ch*2
			buf[idx] = byte(v)
			buf[idx+1] = byte(v >> 8)
		}
	}
	return buf
}
