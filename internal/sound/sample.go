package sound

import (
	"encoding/binary"
	"math"
	"time"
)

const (
	sampleRate   = 44100
	channelCount = 2
	bitDepth     = 2 // 16-bit = 2 bytes

	// maxSampleDuration caps loaded samples; a click longer than this is truncated.
	maxSampleDuration = 2 * time.Second
)

// Sample is fully decoded signed 16-bit little-endian stereo PCM.
type Sample struct {
	PCM        []byte
	SampleRate int
}

// Duration returns the playing time of the sample.
func (s Sample) Duration() time.Duration {
	if s.SampleRate <= 0 {
		return 0
	}
	frames := len(s.PCM) / (channelCount * bitDepth)
	return time.Duration(frames) * time.Second / time.Duration(s.SampleRate)
}

// Click synthesizes a short mechanical tick: a 2.4 kHz tone under a fast
// exponential decay, like a detent snapping into place.
func Click(d time.Duration) Sample {
	frames := int(d.Seconds() * sampleRate)
	pcm := make([]byte, frames*channelCount*bitDepth)
	const freq = 2400.0
	for i := 0; i < frames; i++ {
		t := float64(i) / sampleRate
		env := math.Exp(-t * 220)
		v := int16(math.Sin(2*math.Pi*freq*t) * env * 0.6 * 32767)
		for ch := 0; ch < channelCount; ch++ {
			binary.LittleEndian.PutUint16(pcm[(i*channelCount+ch)*bitDepth:], uint16(v))
		}
	}
	return Sample{PCM: pcm, SampleRate: sampleRate}
}

// pcmBuilder accumulates samples of arbitrary depth and channel layout as
// 16-bit stereo.
type pcmBuilder struct {
	limit  int // max frames
	frames int
	buf    []byte
}

func newPCMBuilder(rate int) *pcmBuilder {
	return &pcmBuilder{limit: int(maxSampleDuration.Seconds() * float64(rate))}
}

func (b *pcmBuilder) full() bool { return b.frames >= b.limit }

// addFrame appends one frame of 16-bit channel values. Mono is duplicated,
// channels beyond two are dropped.
func (b *pcmBuilder) addFrame(vals []int) {
	if b.full() || len(vals) == 0 {
		return
	}
	l := clamp16(vals[0])
	r := l
	if len(vals) > 1 {
		r = clamp16(vals[1])
	}
	b.buf = binary.LittleEndian.AppendUint16(b.buf, uint16(l))
	b.buf = binary.LittleEndian.AppendUint16(b.buf, uint16(r))
	b.frames++
}

// scaleTo16 shifts a sample of the given bit depth into 16-bit range.
func scaleTo16(v, bits int) int {
	switch {
	case bits > 16:
		return v >> (bits - 16)
	case bits < 16 && bits > 0:
		return v << (16 - bits)
	}
	return v
}

// floatTo16 converts a [-1, 1] float sample to 16-bit range, clamping overshoot.
func floatTo16(s float32) int {
	if s > 1.0 {
		s = 1.0
	} else if s < -1.0 {
		s = -1.0
	}
	return int(s * 32767)
}

func clamp16(v int) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}
