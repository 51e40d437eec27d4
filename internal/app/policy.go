package app

// AdvancePolicy decides when a held advance key produces a generation.
type AdvancePolicy int

const (
	// EdgeTriggered advances once per key press.
	EdgeTriggered AdvancePolicy = iota
	// Rapid advances on every frame the key is observed held.
	Rapid
)

// PolicyFor maps the rapid_advance config flag to a policy.
func PolicyFor(rapid bool) AdvancePolicy {
	if rapid {
		return Rapid
	}
	return EdgeTriggered
}

// ShouldAdvance reports whether this frame's key state triggers a step.
func (p AdvancePolicy) ShouldAdvance(held, justPressed bool) bool {
	if p == Rapid {
		return held
	}
	return justPressed
}

func (p AdvancePolicy) String() string {
	switch p {
	case EdgeTriggered:
		return "edge"
	case Rapid:
		return "rapid"
	default:
		return "unknown"
	}
}
