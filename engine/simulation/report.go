package simulation

import (
	"fmt"
	"time"

	"github.com/Carmen-Shannon/oxy-room/common"
	"github.com/go-gl/mathgl/mgl32"
)

// ViolationKind names the navigation property a frame broke.
type ViolationKind string

const (
	// ViolationCollision means the player circle penetrated a padded obstacle.
	ViolationCollision ViolationKind = "collision"
	// ViolationPitch means pitch reached or passed ±π/2.
	ViolationPitch ViolationKind = "pitch"
	// ViolationNonFinite means the committed pose contained NaN or Inf.
	ViolationNonFinite ViolationKind = "non-finite"
)

// Violation records one frame that broke a navigation property.
type Violation struct {
	Session  int
	Frame    int
	Time     time.Duration
	Kind     ViolationKind
	Position mgl32.Vec3
	Pitch    float32
}

func (v Violation) String() string {
	return fmt.Sprintf("session %d frame %d (%v): %s at %v pitch %.4f",
		v.Session, v.Frame, v.Time, v.Kind, v.Position, v.Pitch)
}

// SessionResult summarises one headless session.
type SessionResult struct {
	ID     int
	Seed   uint64
	Frames int
	// Zooms counts board and map zooms that finished opening.
	Zooms int
	// Interactions counts clicks on tagged objects that do not open a zoom.
	Interactions   int
	CaptureDenials int
	Final          common.Pose
	Violations     []Violation
}

// Report aggregates every session of a run.
type Report struct {
	Sessions []SessionResult
}

// Frames returns the total number of frames simulated.
func (r Report) Frames() int {
	n := 0
	for _, s := range r.Sessions {
		n += s.Frames
	}
	return n
}

// Zooms returns the total number of zooms opened.
func (r Report) Zooms() int {
	n := 0
	for _, s := range r.Sessions {
		n += s.Zooms
	}
	return n
}

// Interactions returns the total number of non-zoom interactions.
func (r Report) Interactions() int {
	n := 0
	for _, s := range r.Sessions {
		n += s.Interactions
	}
	return n
}

// Violations returns every violation across sessions, in session order.
func (r Report) Violations() []Violation {
	var out []Violation
	for _, s := range r.Sessions {
		out = append(out, s.Violations...)
	}
	return out
}

// OK reports whether no session recorded a violation.
func (r Report) OK() bool {
	for _, s := range r.Sessions {
		if len(s.Violations) > 0 {
			return false
		}
	}
	return true
}
