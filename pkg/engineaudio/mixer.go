// Package engineaudio crossfades two engine loops from throttle input and
// bends their pitch with speed.
package engineaudio

import "math"

const (
	volumeLerp = 0.1
	pitchLerp  = 0.05

	minPitch      = 0.8
	maxPitch      = 1.3
	pitchPerSpeed = 0.01

	// the off-throttle loop sits a little lower
	releasePitchRatio = 0.85

	// RefDistance is where distance attenuation starts
	RefDistance = 5.0
)

// Mixer holds the per-frame volume and pitch of the throttle and release
// loops. It has no audio dependencies so it can be driven from tests.
type Mixer struct {
	ThrottleVolume float64
	ReleaseVolume  float64
	ThrottlePitch  float64
	ReleasePitch   float64
}

func NewMixer() *Mixer {
	return &Mixer{
		ThrottlePitch: 1,
		ReleasePitch:  1,
	}
}

// Targets returns the volumes the loops fade towards
func Targets(forwardHeld, backHeld bool) (throttle, release float64) {
	if forwardHeld {
		return 1, 0
	}
	// braking and coasting both play the release loop
	return 0, 1
}

// TargetPitch is the throttle loop pitch for a speed
func TargetPitch(speed float64) float64 {
	return clamp(1+speed*pitchPerSpeed, minPitch, maxPitch)
}

// Update moves volumes and pitch one frame towards their targets
func (m *Mixer) Update(forwardHeld, backHeld bool, speed float64) {
	throttle, release := Targets(forwardHeld, backHeld)

	m.ThrottleVolume = clamp(lerp(m.ThrottleVolume, throttle, volumeLerp), 0, 1)
	m.ReleaseVolume = clamp(lerp(m.ReleaseVolume, release, volumeLerp), 0, 1)

	pitch := TargetPitch(speed)
	m.ThrottlePitch = lerp(m.ThrottlePitch, pitch, pitchLerp)
	m.ReleasePitch = lerp(m.ReleasePitch, pitch*releasePitchRatio, pitchLerp)
}

// DistanceGain is the inverse distance attenuation used for positional sound
func DistanceGain(distance float64) float64 {
	d := math.Max(distance, RefDistance)
	return RefDistance / (RefDistance + (d - RefDistance))
}

func lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
