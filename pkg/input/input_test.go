package input

import "testing"

var testSettings = Settings{
	SteerAngle:    0.35,
	DriveForce:    150,
	ReverseForce:  150,
	NeutralBrake:  40,
	LookMagnitude: 3,
}

func held(keys ...Key) Held {
	var h Held
	for _, k := range keys {
		h[k] = true
	}
	return h
}

func TestMap(t *testing.T) {
	testCases := []struct {
		name string
		held Held
		want Command
	}{
		{"idle", held(), Command{BrakeForce: 40}},
		{"forward", held(Forward), Command{EngineForce: 150}},
		{"reverse", held(Back), Command{EngineForce: -150}},
		{"both pedals", held(Forward, Back), Command{BrakeForce: 40}},
		{"left", held(Left, Forward), Command{Steer: 0.35, EngineForce: 150}},
		{"right", held(Right), Command{Steer: -0.35, BrakeForce: 40}},
		{"both steer", held(Left, Right), Command{BrakeForce: 40}},
		{"look left", held(LookLeft), Command{LookOffset: 3, BrakeForce: 40}},
		{"look right", held(LookRight), Command{LookOffset: -3, BrakeForce: 40}},
		{"flip keys do not drive", held(FlipLeft, FlipRight), Command{BrakeForce: 40}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := testSettings.Map(tc.held); got != tc.want {
				t.Errorf("Map() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestControllerTracksHeldKeys(t *testing.T) {
	q := NewQueue()
	c := NewController(testSettings)
	c.Attach(q)

	q.Press(Forward)
	q.Press(LookLeft)

	if cmd := c.Command(); cmd.EngineForce != 150 || cmd.LookOffset != 3 {
		t.Errorf("command = %+v", cmd)
	}

	// look snaps back on release
	q.Release(LookLeft)
	if cmd := c.Command(); cmd.LookOffset != 0 {
		t.Errorf("look offset = %v after release", cmd.LookOffset)
	}

	if !c.JustPressed(Forward) {
		t.Error("forward should be just pressed")
	}

	c.EndFrame()
	if c.JustPressed(Forward) {
		t.Error("edge should clear at end of frame")
	}
	if !c.IsHeld(Forward) {
		t.Error("forward is still held")
	}

	// a repeat down event is not a new press
	q.Press(Forward)
	if c.JustPressed(Forward) {
		t.Error("repeat should not count as a press")
	}
}

func TestControllerCloseReleasesSubscription(t *testing.T) {
	q := NewQueue()
	c := NewController(testSettings)
	c.Attach(q)

	if q.Subscribers() != 1 {
		t.Fatalf("subscribers = %d", q.Subscribers())
	}

	q.Press(Forward)
	c.Close()

	if q.Subscribers() != 0 {
		t.Errorf("subscribers = %d after close", q.Subscribers())
	}

	if c.IsHeld(Forward) {
		t.Error("close should forget held keys")
	}

	q.Press(Back)
	if c.IsHeld(Back) {
		t.Error("closed controller should not see events")
	}

	// closing twice is harmless
	c.Close()
}

func TestAttachReplacesSource(t *testing.T) {
	first, second := NewQueue(), NewQueue()
	c := NewController(testSettings)

	c.Attach(first)
	c.Attach(second)

	if first.Subscribers() != 0 || second.Subscribers() != 1 {
		t.Errorf("subscribers = %d, %d", first.Subscribers(), second.Subscribers())
	}
}

func TestKeyString(t *testing.T) {
	if Forward.String() != "forward" || ToggleCamera.String() != "toggle-camera" || Key(99).String() != "unknown" {
		t.Error("unexpected key names")
	}
}

func TestLookLastPressedWins(t *testing.T) {
	q := NewQueue()
	c := NewController(testSettings)
	c.Attach(q)
	defer c.Close()

	testCases := []struct {
		name string
		key  Key
		down bool
		want float64
	}{
		{"q looks left", LookLeft, true, 3},
		{"e while q held looks right", LookRight, true, -3},
		{"releasing q recenters", LookLeft, false, 0},
		{"q again while e held looks left", LookLeft, true, 3},
		{"releasing e recenters", LookRight, false, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.down {
				q.Press(tc.key)
			} else {
				q.Release(tc.key)
			}
			if got := c.Command().LookOffset; got != tc.want {
				t.Errorf("look offset = %v, want %v", got, tc.want)
			}
		})
	}
}
