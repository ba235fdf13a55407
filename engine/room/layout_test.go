package room

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const minimal = `
name = "cell"
spawn_yaw = 0.0

[poses.intro]
position = [0.0, 5.0, 5.0]
target = [0.0, 0.0, 0.0]

[poses.spawn]
position = [0.0, 2.3, 0.0]
target = [0.0, 2.3, -1.0]

[poses.board]
position = [0.0, 2.0, -2.0]
target = [0.0, 2.0, -3.0]

[poses.map]
position = [1.0, 2.0, 0.0]
target = [2.0, 2.0, 0.0]

[[obstacles]]
name = "crate"
center = [2.5, 0.0]
half_extents = [0.5, 1.0]

[[interactables]]
tag = "board"
min = [-1.0, 1.0, -3.0]
max = [1.0, 3.0, -2.9]
`

func TestDefaultLayout(t *testing.T) {
	l := Default()
	if l.Name != "office" {
		t.Fatalf("Name = %q, want office", l.Name)
	}
	if got := l.Poses.Spawn.Position; got != (mgl32.Vec3{0, 2.3, -8.5}) {
		t.Fatalf("spawn = %v", got)
	}
	if !l.SpawnClear(0.75, 0.1) {
		t.Fatal("default spawn overlaps furniture")
	}

	tags := map[string]bool{}
	for _, it := range l.Interactables() {
		tags[it.Tag] = true
	}
	if !tags["board"] || !tags["map"] {
		t.Fatalf("interactables %v missing board or map", tags)
	}
}

func TestParseMinimal(t *testing.T) {
	l, err := Parse([]byte(minimal))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	obs := l.Obstacles()
	if len(obs) != 1 {
		t.Fatalf("len(Obstacles()) = %d, want 1", len(obs))
	}
	if o := obs[0]; o.Name != "crate" || o.MinX != 2 || o.MaxX != 3 || o.MinZ != -1 || o.MaxZ != 1 {
		t.Fatalf("obstacle = %+v", o)
	}

	it := l.Interactables()
	if len(it) != 1 || it[0].Bounds.Max != (mgl32.Vec3{1, 3, -2.9}) {
		t.Fatalf("interactables = %+v", it)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(string) string
		wantMsg string
	}{
		{
			name:    "syntax error",
			mutate:  appendText("\n[[obstacles]\n"),
			wantMsg: "",
		},
		{
			name:    "unknown key",
			mutate:  replaceText(`name = "crate"`, "name = \"crate\"\nheight = 1.0"),
			wantMsg: "unknown keys",
		},
		{
			name:    "degenerate pose",
			mutate:  replaceText("target = [2.0, 2.0, 0.0]", "target = [1.0, 2.0, 0.0]"),
			wantMsg: `pose "map"`,
		},
		{
			name:    "negative extent",
			mutate:  replaceText("half_extents = [0.5, 1.0]", "half_extents = [-0.5, 1.0]"),
			wantMsg: "crate",
		},
		{
			name:    "duplicate tag",
			mutate:  appendText("\n[[interactables]]\ntag = \"board\"\nmin = [0.0, 0.0, 0.0]\nmax = [1.0, 1.0, 1.0]\n"),
			wantMsg: "duplicate",
		},
		{
			name:    "inverted box",
			mutate:  replaceText("max = [1.0, 3.0, -2.9]", "max = [1.0, 0.5, -2.9]"),
			wantMsg: "min > max",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.mutate(minimal)))
			if !errors.Is(err, ErrInvalidLayout) {
				t.Fatalf("Parse() error = %v, want ErrInvalidLayout", err)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Fatalf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cell.toml")
	if err := os.WriteFile(path, []byte(minimal), 0o644); err != nil {
		t.Fatal(err)
	}

	l, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if l.Name != "cell" {
		t.Fatalf("Name = %q, want cell", l.Name)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, ErrInvalidLayout) {
		t.Fatalf("Load(missing) error = %v, want ErrInvalidLayout", err)
	}
}

func TestSpawnClear(t *testing.T) {
	l, err := Parse([]byte(minimal))
	if err != nil {
		t.Fatal(err)
	}
	if !l.SpawnClear(0.75, 0.1) {
		t.Fatal("spawn at origin reported blocked")
	}
	l.Poses.Spawn.Position = mgl32.Vec3{1.5, 2.3, 0}
	if l.SpawnClear(0.75, 0.1) {
		t.Fatal("spawn next to crate reported clear")
	}
}

func appendText(suffix string) func(string) string {
	return func(s string) string { return s + suffix }
}

func replaceText(old, replacement string) func(string) string {
	return func(s string) string { return strings.Replace(s, old, replacement, 1) }
}
