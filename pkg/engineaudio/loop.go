package engineaudio

import (
	"encoding/binary"
	"math"
	"sync/atomic"
)

const bytesPerFrame = 4 // 16-bit stereo

// loopStream plays interleaved 16-bit stereo PCM forever at a variable rate.
// Read runs on the audio goroutine, the rate is set from the game loop.
type loopStream struct {
	samples []int16
	frames  int
	// base converts source frames to output frames when sample rates differ
	base float64
	pos  float64
	rate atomic.Uint64
}

func newLoopStream(pcm []byte, sourceRate, outputRate int) *loopStream {
	samples := make([]int16, len(pcm)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(pcm[i*2:]))
	}

	l := &loopStream{
		samples: samples,
		frames:  len(samples) / 2,
		base:    float64(sourceRate) / float64(outputRate),
	}
	l.SetRate(1)

	return l
}

// SetRate changes the playback speed, 1 is the original pitch
func (l *loopStream) SetRate(rate float64) {
	l.rate.Store(math.Float64bits(rate))
}

func (l *loopStream) Rate() float64 {
	return math.Float64frombits(l.rate.Load())
}

func (l *loopStream) Read(p []byte) (int, error) {
	n := len(p) / bytesPerFrame
	if l.frames == 0 {
		for i := range p[:n*bytesPerFrame] {
			p[i] = 0
		}
		return n * bytesPerFrame, nil
	}

	step := l.base * l.Rate()
	frames := float64(l.frames)

	for i := 0; i < n; i++ {
		idx := int(l.pos)
		frac := l.pos - float64(idx)
		next := (idx + 1) % l.frames

		for ch := 0; ch < 2; ch++ {
			a := float64(l.samples[idx*2+ch])
			b := float64(l.samples[next*2+ch])
			v := int16(a + (b-a)*frac)
			binary.LittleEndian.PutUint16(p[i*bytesPerFrame+ch*2:], uint16(v))
		}

		l.pos = math.Mod(l.pos+step, frames)
	}

	return n * bytesPerFrame, nil
}
