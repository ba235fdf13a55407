// Package room describes the static scene the navigation core walks through:
// furniture footprints, clickable objects and the scripted camera poses.
package room

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Carmen-Shannon/oxy-room/common"
	"github.com/Carmen-Shannon/oxy-room/engine/camera"
	"github.com/Carmen-Shannon/oxy-room/engine/collision"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidLayout is wrapped by every parse and validation failure.
var ErrInvalidLayout = errors.New("room: invalid layout")

//go:embed default.toml
var defaultLayout []byte

// PoseSpec is a camera pose as written in a layout file.
type PoseSpec struct {
	Position mgl32.Vec3 `toml:"position"`
	Target   mgl32.Vec3 `toml:"target"`
}

// Pose converts the decoded position/target pair to a common.Pose.
func (p PoseSpec) Pose() common.Pose {
	return common.Pose{Position: p.Position, Target: p.Target}
}

// Poses are the scripted camera poses the orchestrator moves between.
type Poses struct {
	Intro PoseSpec `toml:"intro"`
	Spawn PoseSpec `toml:"spawn"`
	Board PoseSpec `toml:"board"`
	Map   PoseSpec `toml:"map"`
}

// ObstacleSpec is a furniture footprint on the floor plane.
type ObstacleSpec struct {
	Name        string     `toml:"name"`
	Center      mgl32.Vec2 `toml:"center"`
	HalfExtents mgl32.Vec2 `toml:"half_extents"`
}

// InteractableSpec is a clickable box tagged with a semantic name.
type InteractableSpec struct {
	Tag string     `toml:"tag"`
	Min mgl32.Vec3 `toml:"min"`
	Max mgl32.Vec3 `toml:"max"`
}

// Layout is a parsed room description.
type Layout struct {
	Name     string  `toml:"name"`
	SpawnYaw float32 `toml:"spawn_yaw"`
	Poses    Poses   `toml:"poses"`

	Furniture []ObstacleSpec     `toml:"obstacles"`
	Tagged    []InteractableSpec `toml:"interactables"`
}

// Default returns the built-in office layout.
//
// Returns:
//   - *Layout: the embedded layout
func Default() *Layout {
	l, err := Parse(defaultLayout)
	if err != nil {
		panic(fmt.Sprintf("room: embedded layout: %v", err))
	}
	return l
}

// Parse decodes and validates a TOML layout. Unknown keys are rejected so typos do not
// silently drop furniture.
//
// Parameters:
//   - data: TOML document
//
// Returns:
//   - *Layout: the parsed layout
//   - error: wrapped ErrInvalidLayout on malformed or inconsistent input
func Parse(data []byte) (*Layout, error) {
	var l Layout
	md, err := toml.Decode(string(data), &l)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLayout, err)
	}
	return finish(&l, md)
}

// Load reads a layout file from disk.
//
// Parameters:
//   - path: path to a TOML layout
//
// Returns:
//   - *Layout: the parsed layout
//   - error: error if the file cannot be read or is invalid
func Load(path string) (*Layout, error) {
	var l Layout
	md, err := toml.DecodeFile(path, &l)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidLayout, path, err)
	}
	return finish(&l, md)
}

func finish(l *Layout, md toml.MetaData) (*Layout, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidLayout, strings.Join(keys, ", "))
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// Validate checks that every pose is usable and every shape has positive extent.
//
// Returns:
//   - error: wrapped ErrInvalidLayout describing the first problem found
func (l *Layout) Validate() error {
	poses := []struct {
		name string
		spec PoseSpec
	}{
		{"intro", l.Poses.Intro},
		{"spawn", l.Poses.Spawn},
		{"board", l.Poses.Board},
		{"map", l.Poses.Map},
	}
	for _, p := range poses {
		pose := p.spec.Pose()
		if !pose.Finite() {
			return fmt.Errorf("%w: pose %q is not finite", ErrInvalidLayout, p.name)
		}
		if pose.Position.Sub(pose.Target).Len() < 1e-4 {
			return fmt.Errorf("%w: pose %q looks at its own position", ErrInvalidLayout, p.name)
		}
	}
	if !common.IsFinite(l.SpawnYaw) {
		return fmt.Errorf("%w: spawn_yaw is not finite", ErrInvalidLayout)
	}

	for i, o := range l.Obstacles() {
		if !o.Valid() {
			return fmt.Errorf("%w: obstacle %d (%q) has negative extent", ErrInvalidLayout, i, o.Name)
		}
	}

	seen := make(map[string]bool, len(l.Tagged))
	for i, it := range l.Tagged {
		if it.Tag == "" {
			return fmt.Errorf("%w: interactable %d has no tag", ErrInvalidLayout, i)
		}
		if seen[it.Tag] {
			return fmt.Errorf("%w: duplicate interactable tag %q", ErrInvalidLayout, it.Tag)
		}
		seen[it.Tag] = true
		for axis := range 3 {
			if !(it.Min[axis] <= it.Max[axis]) {
				return fmt.Errorf("%w: interactable %q has min > max", ErrInvalidLayout, it.Tag)
			}
		}
	}
	return nil
}

// Obstacles converts the furniture footprints for the collision resolver.
//
// Returns:
//   - []collision.Obstacle: one obstacle per footprint
func (l *Layout) Obstacles() []collision.Obstacle {
	out := make([]collision.Obstacle, len(l.Furniture))
	for i, f := range l.Furniture {
		out[i] = collision.NewObstacle(f.Name, f.Center.X(), f.Center.Y(), f.HalfExtents.X(), f.HalfExtents.Y())
	}
	return out
}

// Interactables converts the tagged boxes for forward-ray picking.
//
// Returns:
//   - []camera.Interactable: one interactable per tagged box
func (l *Layout) Interactables() []camera.Interactable {
	out := make([]camera.Interactable, len(l.Tagged))
	for i, t := range l.Tagged {
		out[i] = camera.Interactable{Tag: t.Tag, Bounds: common.AABB{Min: t.Min, Max: t.Max}}
	}
	return out
}

// SpawnClear reports whether a player circle at the spawn pose is outside every padded obstacle.
//
// Parameters:
//   - radius: player circle radius
//   - padding: obstacle padding
//
// Returns:
//   - bool: true if the spawn point is free
func (l *Layout) SpawnClear(radius, padding float32) bool {
	r := collision.NewResolver(collision.WithObstacles(l.Obstacles()...), collision.WithPadding(padding))
	return !r.Penetrates(l.Poses.Spawn.Position, radius)
}
