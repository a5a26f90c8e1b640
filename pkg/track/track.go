package track

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

//go:embed tracks/drift.track
var defaultTrack []byte

var (
	ErrTooFewCheckpoints = errors.New("track: at least two checkpoints are required")
	ErrNoSpawn           = errors.New("track: missing spawn line")
)

// Role tells the race what a checkpoint means for lap progression
type Role int

const (
	// RoleStartFinish starts the race on the first pass and completes laps afterwards
	RoleStartFinish Role = iota
	RoleIntermediate
	// RolePreFinish arms lap completion
	RolePreFinish
)

func (r Role) String() string {
	switch r {
	case RoleStartFinish:
		return "start/finish"
	case RolePreFinish:
		return "pre-finish"
	default:
		return "intermediate"
	}
}

// Checkpoint is a fixed point the car must pass in order
type Checkpoint struct {
	Index    int
	Position mgl64.Vec3
	Role     Role
}

// Box is a static wall. Yaw is the rotation about the vertical axis in radians.
type Box struct {
	Center mgl64.Vec3
	Size   mgl64.Vec3
	Yaw    float64
}

// Sphere is a static round obstacle
type Sphere struct {
	Center mgl64.Vec3
	Radius float64
}

// Pose is where the car is placed on the grid
type Pose struct {
	Position mgl64.Vec3
	Yaw      float64
}

// Track holds everything the race and the physics world need from a circuit
type Track struct {
	Name        string
	Spawn       Pose
	Checkpoints []Checkpoint
	Boxes       []Box
	Spheres     []Sphere
}

// Default returns the built-in drift circuit
func Default() *Track {
	t, err := Parse("drift", bytes.NewReader(defaultTrack))
	if err != nil {
		panic(fmt.Sprintf("track: embedded track is invalid: %v", err))
	}
	return t
}

// LoadFromFile reads a track description from disk
func LoadFromFile(filename string) (*Track, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Parse(strings.TrimSuffix(filename, ".track"), file)
}

// Parse reads the line based track format:
//
//	spawn x y z yawDegrees
//	checkpoint x y z
//	box x y z sizeX sizeY sizeZ yawDegrees
//	sphere radius x y z
//
// Blank lines and lines starting with # are skipped.
func Parse(name string, r io.Reader) (*Track, error) {
	t := &Track{Name: name}
	hasSpawn := false

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		values, err := parseFloats(fields[1:])
		if err != nil {
			return nil, fmt.Errorf("track %s line %d: %w", name, lineNo, err)
		}

		switch fields[0] {
		case "spawn":
			if err := wantFields(values, 4); err != nil {
				return nil, fmt.Errorf("track %s line %d: %w", name, lineNo, err)
			}
			t.Spawn = Pose{
				Position: mgl64.Vec3{values[0], values[1], values[2]},
				Yaw:      mgl64.DegToRad(values[3]),
			}
			hasSpawn = true
		case "checkpoint":
			if err := wantFields(values, 3); err != nil {
				return nil, fmt.Errorf("track %s line %d: %w", name, lineNo, err)
			}
			t.Checkpoints = append(t.Checkpoints, Checkpoint{
				Index:    len(t.Checkpoints),
				Position: mgl64.Vec3{values[0], values[1], values[2]},
			})
		case "box":
			if err := wantFields(values, 7); err != nil {
				return nil, fmt.Errorf("track %s line %d: %w", name, lineNo, err)
			}
			t.Boxes = append(t.Boxes, Box{
				Center: mgl64.Vec3{values[0], values[1], values[2]},
				Size:   mgl64.Vec3{values[3], values[4], values[5]},
				Yaw:    mgl64.DegToRad(values[6]),
			})
		case "sphere":
			if err := wantFields(values, 4); err != nil {
				return nil, fmt.Errorf("track %s line %d: %w", name, lineNo, err)
			}
			t.Spheres = append(t.Spheres, Sphere{
				Radius: values[0],
				Center: mgl64.Vec3{values[1], values[2], values[3]},
			})
		default:
			return nil, fmt.Errorf("track %s line %d: unknown directive %q", name, lineNo, fields[0])
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if !hasSpawn {
		return nil, ErrNoSpawn
	}

	if len(t.Checkpoints) < 2 {
		return nil, ErrTooFewCheckpoints
	}

	assignRoles(t.Checkpoints)

	return t, nil
}

// assignRoles tags the first checkpoint as the line and the last as the one
// that arms lap completion.
func assignRoles(checkpoints []Checkpoint) {
	last := len(checkpoints) - 1
	for i := range checkpoints {
		switch i {
		case 0:
			checkpoints[i].Role = RoleStartFinish
		case last:
			checkpoints[i].Role = RolePreFinish
		default:
			checkpoints[i].Role = RoleIntermediate
		}
	}
}

// Bounds returns the ground plane extent covered by walls and checkpoints
func (t *Track) Bounds() (min, max mgl64.Vec2) {
	min = mgl64.Vec2{math.Inf(1), math.Inf(1)}
	max = mgl64.Vec2{math.Inf(-1), math.Inf(-1)}

	grow := func(x, z float64) {
		min[0], max[0] = math.Min(min[0], x), math.Max(max[0], x)
		min[1], max[1] = math.Min(min[1], z), math.Max(max[1], z)
	}

	for _, b := range t.Boxes {
		grow(b.Center.X(), b.Center.Z())
	}
	for _, s := range t.Spheres {
		grow(s.Center.X(), s.Center.Z())
	}
	for _, c := range t.Checkpoints {
		grow(c.Position.X(), c.Position.Z())
	}
	grow(t.Spawn.Position.X(), t.Spawn.Position.Z())

	return min, max
}

func parseFloats(fields []string) ([]float64, error) {
	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", f, err)
		}
		values[i] = v
	}
	return values, nil
}

func wantFields(values []float64, n int) error {
	if len(values) != n {
		return fmt.Errorf("expected %d values, got %d", n, len(values))
	}
	return nil
}
