package commands

import "activityboard/internal/domain"

// ActivitiesLoadedMsg carries a freshly fetched collection
type ActivitiesLoadedMsg struct {
	Collection *domain.Collection
}

// ActivitiesFailedMsg reports a refresh that did not produce a collection
type ActivitiesFailedMsg struct {
	Err error
}

// Outcome classifies a completed mutation
type Outcome int

const (
	OutcomeSucceeded Outcome = iota
	OutcomeRejected
	OutcomeTransportFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeRejected:
		return "rejected"
	default:
		return "transport failed"
	}
}

// MutationResultMsg reports a finished signup or unregister
type MutationResultMsg struct {
	Op       domain.MutationOp
	Activity string
	Email    string
	Outcome  Outcome
	Text     string // status message to show
	Kind     domain.StatusKind
}

// Refreshes reports whether the outcome should trigger a refresh
func (m MutationResultMsg) Refreshes() bool {
	return m.Outcome == OutcomeSucceeded
}
