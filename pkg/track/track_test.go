package track

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultTrack(t *testing.T) {
	tr := Default()

	if len(tr.Checkpoints) != 8 {
		t.Fatalf("checkpoints = %d, want 8", len(tr.Checkpoints))
	}

	if len(tr.Boxes)+len(tr.Spheres) != 70 {
		t.Errorf("colliders = %d, want 70", len(tr.Boxes)+len(tr.Spheres))
	}

	wantRoles := []Role{
		RoleStartFinish,
		RoleIntermediate, RoleIntermediate, RoleIntermediate,
		RoleIntermediate, RoleIntermediate, RoleIntermediate,
		RolePreFinish,
	}

	for i, cp := range tr.Checkpoints {
		if cp.Index != i {
			t.Errorf("checkpoint %d has index %d", i, cp.Index)
		}
		if cp.Role != wantRoles[i] {
			t.Errorf("checkpoint %d role = %s, want %s", i, cp.Role, wantRoles[i])
		}
	}

	if x := tr.Checkpoints[0].Position.X(); x != -3.95 {
		t.Errorf("start line x = %v, want -3.95", x)
	}
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  error
	}{
		{"no spawn", "checkpoint 0 0 0\ncheckpoint 1 0 0\n", ErrNoSpawn},
		{"one checkpoint", "spawn 0 0 0 0\ncheckpoint 0 0 0\n", ErrTooFewCheckpoints},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.name, strings.NewReader(tc.input))
			if !errors.Is(err, tc.want) {
				t.Errorf("Parse() = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	for _, input := range []string{
		"spawn 0 0 0\n",
		"box 1 2 three 1 1 1 0\n",
		"ramp 1 2 3\n",
	} {
		if _, err := Parse("bad", strings.NewReader(input)); err == nil {
			t.Errorf("Parse(%q) should fail", input)
		}
	}
}

func TestBounds(t *testing.T) {
	tr, err := Parse("tiny", strings.NewReader(`
spawn 0 0 0 0
checkpoint -2 0 1
checkpoint 3 0 -4
sphere 1 5 0 0
`))
	if err != nil {
		t.Fatal(err)
	}

	min, max := tr.Bounds()
	if min.X() != -2 || min.Y() != -4 || max.X() != 5 || max.Y() != 1 {
		t.Errorf("bounds = %v %v", min, max)
	}
}
