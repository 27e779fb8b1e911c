package components

// Kind distinguishes agent variants for rendering and telemetry.
type Kind uint8

const (
	KindBoid Kind = iota
	KindPredator
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBoid:
		return "boid"
	case KindPredator:
		return "predator"
	default:
		return "unknown"
	}
}

// Boid marks a flocking agent.
type Boid struct {
	PerceptionRadius float64
}

// Predator marks a hunting agent.
type Predator struct {
	CaptureRadius float64
}
