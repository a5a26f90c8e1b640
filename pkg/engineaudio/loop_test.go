package engineaudio

import (
	"encoding/binary"
	"testing"
)

func pcm(samples ...int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(s))
	}
	return out
}

func frames(b []byte) [][2]int16 {
	out := make([][2]int16, len(b)/bytesPerFrame)
	for i := range out {
		out[i][0] = int16(binary.LittleEndian.Uint16(b[i*4:]))
		out[i][1] = int16(binary.LittleEndian.Uint16(b[i*4+2:]))
	}
	return out
}

func TestLoopStreamWraps(t *testing.T) {
	l := newLoopStream(pcm(100, -100, 200, -200, 300, -300), 44100, 44100)

	buf := make([]byte, 7*bytesPerFrame)
	n, err := l.Read(buf)
	if err != nil || n != len(buf) {
		t.Fatalf("Read = %d, %v", n, err)
	}

	want := []int16{100, 200, 300, 100, 200, 300, 100}
	for i, f := range frames(buf) {
		if f[0] != want[i] || f[1] != -want[i] {
			t.Errorf("frame %d = %v, want [%d %d]", i, f, want[i], -want[i])
		}
	}
}

func TestLoopStreamRate(t *testing.T) {
	l := newLoopStream(pcm(0, 0, 1000, 1000, 2000, 2000, 3000, 3000), 44100, 44100)
	l.SetRate(0.5)

	if l.Rate() != 0.5 {
		t.Fatalf("rate = %v", l.Rate())
	}

	buf := make([]byte, 4*bytesPerFrame)
	l.Read(buf)

	want := []int16{0, 500, 1000, 1500}
	for i, f := range frames(buf) {
		if f[0] != want[i] {
			t.Errorf("frame %d = %d, want %d", i, f[0], want[i])
		}
	}
}

func TestLoopStreamResamples(t *testing.T) {
	// a 22050 source played into a 44100 context is stretched 2x
	l := newLoopStream(pcm(0, 0, 1000, 1000, 2000, 2000), 22050, 44100)

	buf := make([]byte, 3*bytesPerFrame)
	l.Read(buf)

	want := []int16{0, 500, 1000}
	for i, f := range frames(buf) {
		if f[0] != want[i] {
			t.Errorf("frame %d = %d, want %d", i, f[0], want[i])
		}
	}
}

func TestLoopStreamEmpty(t *testing.T) {
	l := newLoopStream(nil, 44100, 44100)

	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}
	n, err := l.Read(buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != 8 {
		t.Errorf("n = %d, want whole frames only", n)
	}
	for i := 0; i < n; i++ {
		if buf[i] != 0 {
			t.Fatalf("byte %d = %d, want silence", i, buf[i])
		}
	}
}
