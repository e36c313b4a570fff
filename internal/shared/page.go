package shared

// Phase is the lifecycle state shared by every page controller.
//
//	Idle -> Loading -> {Ready, Failed}
//	Ready -> Submitting -> Ready
//
// Failed is recoverable: calling Load again moves back through Loading.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseReady
	PhaseFailed
	PhaseSubmitting
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	case PhaseSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}
