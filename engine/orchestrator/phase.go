package orchestrator

// Phase is the orchestrator's modal state. Free input and collision run only in PhaseFirstPerson.
type Phase uint8

const (
	PhaseIntro Phase = iota
	PhaseFirstPerson
	PhaseBoardZoom
	PhaseMapZoom
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhaseFirstPerson:
		return "first-person"
	case PhaseBoardZoom:
		return "board-zoom"
	case PhaseMapZoom:
		return "map-zoom"
	default:
		return "unknown"
	}
}

// Zoomed reports whether p is one of the detail-view phases.
func (p Phase) Zoomed() bool {
	return p == PhaseBoardZoom || p == PhaseMapZoom
}

// phaseForTag maps an interactable tag to the zoom it opens.
func phaseForTag(tag string) (Phase, bool) {
	switch tag {
	case "board":
		return PhaseBoardZoom, true
	case "map":
		return PhaseMapZoom, true
	}
	return 0, false
}
