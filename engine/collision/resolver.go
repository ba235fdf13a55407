// Package collision constrains the player silhouette against static room furniture.
package collision

import (
	"log/slog"
	"math"

	"github.com/Carmen-Shannon/oxy-room/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Resolver corrects intended movement so the player circle never penetrates an obstacle.
// The obstacle set is immutable after construction, so a Resolver is safe to share
// between goroutines.
type Resolver interface {
	// Resolve returns the position the player may actually move to.
	// Movement that would penetrate an obstacle slides along the unblocked axis;
	// if neither axis is free the current position is returned. Only X and Z are
	// constrained; Y passes through from intended.
	//
	// Parameters:
	//   - current: last committed position
	//   - intended: desired position for this frame
	//   - radius: player circle radius
	//
	// Returns:
	//   - mgl32.Vec3: corrected position
	Resolve(current, intended mgl32.Vec3, radius float32) mgl32.Vec3

	// Penetrates reports whether a circle at p overlaps any padded obstacle.
	//
	// Parameters:
	//   - p: circle centre
	//   - radius: circle radius
	//
	// Returns:
	//   - bool: true if p is inside some padded footprint
	Penetrates(p mgl32.Vec3, radius float32) bool

	// Obstacles returns a copy of the obstacle set.
	//
	// Returns:
	//   - []Obstacle: the static footprints
	Obstacles() []Obstacle

	// Padding returns the margin added around every footprint.
	//
	// Returns:
	//   - float32: padding in world units
	Padding() float32
}

type resolverImpl struct {
	obstacles []Obstacle
	padding   float32
	logger    *slog.Logger
}

var _ Resolver = &resolverImpl{}

// NewResolver creates a resolver over a fixed obstacle set.
//
// Parameters:
//   - options: functional options to configure the resolver
//
// Returns:
//   - Resolver: the newly created resolver
func NewResolver(options ...ResolverOption) Resolver {
	r := &resolverImpl{
		padding: 0.1,
		logger:  slog.Default(),
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// slide is the outcome of testing one obstacle. Higher values are more restrictive.
type slide int

const (
	slideFull slide = iota
	slideXOnly
	slideZOnly
	slideNone
)

// maxSubsteps bounds the work done for a single oversized move.
const maxSubsteps = 64

func (r *resolverImpl) Resolve(current, intended mgl32.Vec3, radius float32) mgl32.Vec3 {
	if !common.IsFiniteVec3(current) || !common.IsFiniteVec3(intended) {
		r.logger.Debug("collision input not finite, dropping move", "current", current, "intended", intended)
		return current
	}
	dx := intended[0] - current[0]
	dz := intended[2] - current[2]
	horiz := float32(math.Sqrt(float64(dx*dx + dz*dz)))
	if horiz == 0 || len(r.obstacles) == 0 {
		return intended
	}

	// Sweep the circle in steps no longer than half its radius so a large frame
	// delta cannot tunnel through a thin footprint.
	steps := 1
	if maxStep := radius * 0.5; maxStep > 0 && horiz > maxStep {
		steps = min(int(math.Ceil(float64(horiz/maxStep))), maxSubsteps)
	}

	// Each substep continues from wherever the previous one was allowed to reach.
	// While nothing has been corrected the final substep lands exactly on intended.
	stepDelta := intended.Sub(current).Mul(1 / float32(steps))
	pos := current
	corrected := false
	for i := 1; i <= steps; i++ {
		next := pos.Add(stepDelta)
		if i == steps && !corrected {
			next = intended
		}
		got := r.resolveStep(pos, next, radius)
		if got != next {
			corrected = true
		}
		pos = got
	}
	if !common.IsFiniteVec3(pos) {
		r.logger.Debug("collision output not finite, dropping move", "current", current, "intended", intended)
		return current
	}
	return pos
}

// resolveStep applies the full / X-only / Z-only / none slide test for one short move.
func (r *resolverImpl) resolveStep(current, intended mgl32.Vec3, radius float32) mgl32.Vec3 {
	full := intended
	xOnly := mgl32.Vec3{intended[0], intended[1], current[2]}
	zOnly := mgl32.Vec3{current[0], intended[1], intended[2]}

	// Each obstacle is judged on its own; the most restrictive verdict wins.
	worst := slideFull
	for _, o := range r.obstacles {
		var s slide
		switch {
		case !r.blockedBy(o, current, full, radius):
			s = slideFull
		case !r.blockedBy(o, current, xOnly, radius):
			s = slideXOnly
		case !r.blockedBy(o, current, zOnly, radius):
			s = slideZOnly
		default:
			s = slideNone
		}
		worst = max(worst, s)
	}

	// Independent verdicts can disagree (X free for one obstacle, only Z free for
	// another). Accept a candidate only if it clears every obstacle.
	switch worst {
	case slideFull:
		return full
	case slideXOnly:
		return r.firstClear(current, radius, xOnly, zOnly)
	case slideZOnly:
		return r.firstClear(current, radius, zOnly)
	default:
		return mgl32.Vec3{current[0], intended[1], current[2]}
	}
}

// firstClear returns the first candidate that no obstacle blocks, or the current
// XZ position with the intended height if none is clear.
func (r *resolverImpl) firstClear(current mgl32.Vec3, radius float32, candidates ...mgl32.Vec3) mgl32.Vec3 {
	for _, c := range candidates {
		free := true
		for _, o := range r.obstacles {
			if r.blockedBy(o, current, c, radius) {
				free = false
				break
			}
		}
		if free {
			return c
		}
	}
	return mgl32.Vec3{current[0], candidates[0][1], current[2]}
}

// blockedBy reports whether moving to next is forbidden by o. A move that starts
// inside the padded footprint (after a teleport, say) is allowed as long as it
// does not go deeper, so the player can always walk back out.
func (r *resolverImpl) blockedBy(o Obstacle, current, next mgl32.Vec3, radius float32) bool {
	if !o.Blocks(next, radius, r.padding) {
		return false
	}
	if o.Blocks(current, radius, r.padding) {
		return penetrationDepth(o.Inflate(r.padding), next, radius) > penetrationDepth(o.Inflate(r.padding), current, radius)
	}
	return true
}

// penetrationDepth is how far inside the circle reaches, measured from the box
// edge closest to the centre. Only meaningful for overlapping circles.
func penetrationDepth(b Obstacle, p mgl32.Vec3, radius float32) float32 {
	toEdge := min(p[0]-b.MinX, b.MaxX-p[0], p[2]-b.MinZ, b.MaxZ-p[2])
	return toEdge + radius
}

func (r *resolverImpl) Penetrates(p mgl32.Vec3, radius float32) bool {
	for _, o := range r.obstacles {
		if o.Blocks(p, radius, r.padding) {
			return true
		}
	}
	return false
}

func (r *resolverImpl) Obstacles() []Obstacle {
	return append([]Obstacle(nil), r.obstacles...)
}

func (r *resolverImpl) Padding() float32 {
	return r.padding
}
