package engineaudio

import (
	"math"
	"testing"
)

func TestTargets(t *testing.T) {
	testCases := []struct {
		name         string
		forward      bool
		back         bool
		wantThrottle float64
		wantRelease  float64
	}{
		{"forward", true, false, 1, 0},
		{"coasting", false, false, 0, 1},
		{"braking", false, true, 0, 1},
		{"both held", true, true, 1, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			throttle, release := Targets(tc.forward, tc.back)
			if throttle != tc.wantThrottle || release != tc.wantRelease {
				t.Errorf("Targets = %v, %v, want %v, %v", throttle, release, tc.wantThrottle, tc.wantRelease)
			}
		})
	}
}

func TestTargetPitch(t *testing.T) {
	testCases := []struct {
		speed float64
		want  float64
	}{
		{0, 1},
		{10, 1.1},
		{30, 1.3},
		{500, 1.3},
		{-50, 0.8},
	}

	for _, tc := range testCases {
		if got := TargetPitch(tc.speed); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("TargetPitch(%v) = %v, want %v", tc.speed, got, tc.want)
		}
	}
}

func TestMixerCrossfade(t *testing.T) {
	m := NewMixer()

	m.Update(true, false, 0)
	if math.Abs(m.ThrottleVolume-0.1) > 1e-9 {
		t.Errorf("first frame throttle volume = %v, want 0.1", m.ThrottleVolume)
	}
	if m.ReleaseVolume != 0 {
		t.Errorf("release volume = %v, want 0", m.ReleaseVolume)
	}

	for i := 0; i < 200; i++ {
		m.Update(true, false, 0)
	}
	if m.ThrottleVolume < 0.99 || m.ThrottleVolume > 1 {
		t.Errorf("throttle volume should settle at 1, got %v", m.ThrottleVolume)
	}

	for i := 0; i < 200; i++ {
		m.Update(false, false, 0)
	}
	if m.ThrottleVolume > 0.01 || m.ReleaseVolume < 0.99 {
		t.Errorf("coasting should swap loops, got %v / %v", m.ThrottleVolume, m.ReleaseVolume)
	}
}

func TestMixerPitch(t *testing.T) {
	m := NewMixer()

	m.Update(true, false, 20)
	if want := 1 + (1.2-1)*0.05; math.Abs(m.ThrottlePitch-want) > 1e-9 {
		t.Errorf("throttle pitch = %v, want %v", m.ThrottlePitch, want)
	}

	for i := 0; i < 500; i++ {
		m.Update(true, false, 20)
	}
	if math.Abs(m.ThrottlePitch-1.2) > 1e-6 {
		t.Errorf("throttle pitch should settle at 1.2, got %v", m.ThrottlePitch)
	}
	if math.Abs(m.ReleasePitch-1.2*0.85) > 1e-6 {
		t.Errorf("release pitch should settle at %v, got %v", 1.2*0.85, m.ReleasePitch)
	}
}

func TestDistanceGain(t *testing.T) {
	testCases := []struct {
		distance float64
		want     float64
	}{
		{0, 1},
		{5, 1},
		{10, 0.5},
		{20, 0.25},
	}

	for _, tc := range testCases {
		if got := DistanceGain(tc.distance); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("DistanceGain(%v) = %v, want %v", tc.distance, got, tc.want)
		}
	}
}

func TestSilentEngine(t *testing.T) {
	e := Silent()
	if !e.IsSilent() {
		t.Fatal("engine should be silent")
	}

	e.Update(true, false, 10, 1)
	if e.Mixer().ThrottleVolume == 0 {
		t.Error("silent engine should still run the mixer")
	}
	if err := e.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
