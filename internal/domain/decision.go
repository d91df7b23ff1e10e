package domain

// Decision is a human answer to a confirmation prompt. The decision loops
// never perform terminal I/O themselves; they consume one of these values.
type Decision int

const (
	// DecisionApply confirms the destructive operation.
	DecisionApply Decision = iota
	// DecisionDefer declines and marks the targets for later review.
	DecisionDefer
	// DecisionSkip passes over the current target without marking it.
	DecisionSkip
	// DecisionSkipAll passes over every remaining target.
	DecisionSkipAll
)

func (d Decision) String() string {
	switch d {
	case DecisionApply:
		return "apply"
	case DecisionDefer:
		return "defer"
	case DecisionSkip:
		return "skip"
	case DecisionSkipAll:
		return "skip_all"
	default:
		return "unknown"
	}
}

// SafetyResult is the outcome of the prefix-safety check. Missing holds
// candidate hashes absent from the branch log; Blocking holds non-candidate
// hashes that are more recent than some candidate. Safe is true only when
// both are empty and every candidate was found.
type SafetyResult struct {
	Safe     bool
	Missing  []string
	Blocking []string
}
