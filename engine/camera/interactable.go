package camera

import "github.com/Carmen-Shannon/oxy-room/common"

// Interactable is a clickable scene object identified by a semantic tag such as "board" or "map".
type Interactable struct {
	Tag    string
	Bounds common.AABB
}

// Pick returns the tag of the nearest interactable hit by ray within maxDist.
//
// Parameters:
//   - ray: the pick ray, usually the camera's forward ray
//   - items: candidate interactables
//   - maxDist: maximum hit distance
//
// Returns:
//   - string: tag of the nearest hit
//   - bool: false if nothing was hit
func Pick(ray common.Ray, items []Interactable, maxDist float32) (string, bool) {
	best := maxDist
	tag := ""
	hit := false
	for _, it := range items {
		d, ok := common.RayAABB(ray, it.Bounds)
		if ok && d <= best {
			best = d
			tag = it.Tag
			hit = true
		}
	}
	return tag, hit
}
