package input

// Key is a logical game key, independent of the keyboard layout
type Key int

const (
	Forward Key = iota
	Back
	Left
	Right
	FlipLeft
	FlipRight
	LookLeft
	LookRight
	Start
	Restart
	ToggleCamera
	Quit
	numKeys
)

var keyNames = [numKeys]string{
	"forward", "back", "left", "right",
	"flip-left", "flip-right", "look-left", "look-right",
	"start", "restart", "toggle-camera", "quit",
}

func (k Key) String() string {
	if k < 0 || k >= numKeys {
		return "unknown"
	}
	return keyNames[k]
}

// Held is the set of keys currently down
type Held [numKeys]bool

// Settings are the magnitudes the mapping produces
type Settings struct {
	SteerAngle   float64
	DriveForce   float64
	ReverseForce float64
	NeutralBrake float64
	// LookMagnitude is the camera look offset while q or e is held
	LookMagnitude float64
}

// Command is the per-frame result of mapping held keys
type Command struct {
	Steer       float64
	EngineForce float64
	BrakeForce  float64
	LookOffset  float64
}

// Map turns held keys into a command. Opposing keys cancel out. The
// Controller overrides LookOffset so the last look key pressed wins.
func (s Settings) Map(h Held) Command {
	var cmd Command

	switch {
	case h[Left] && !h[Right]:
		cmd.Steer = s.SteerAngle
	case h[Right] && !h[Left]:
		cmd.Steer = -s.SteerAngle
	}

	switch {
	case h[Forward] && !h[Back]:
		cmd.EngineForce = s.DriveForce
	case h[Back] && !h[Forward]:
		cmd.EngineForce = -s.ReverseForce
	default:
		cmd.BrakeForce = s.NeutralBrake
	}

	switch {
	case h[LookLeft] && !h[LookRight]:
		cmd.LookOffset = s.LookMagnitude
	case h[LookRight] && !h[LookLeft]:
		cmd.LookOffset = -s.LookMagnitude
	}

	return cmd
}
