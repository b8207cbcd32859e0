package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventActivitiesLoaded     EventType = "ActivitiesLoaded"
	EventActivitiesLoadFailed EventType = "ActivitiesLoadFailed"
	EventMutationSucceeded    EventType = "MutationSucceeded"
	EventMutationRejected     EventType = "MutationRejected"
	EventMutationFailed       EventType = "MutationFailed"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ActivitiesLoadedEvent is emitted when a fetch replaced the collection
type ActivitiesLoadedEvent struct {
	Count int
	Names []string
}

func (e ActivitiesLoadedEvent) Type() EventType { return EventActivitiesLoaded }

// ActivitiesLoadFailedEvent is emitted when a fetch did not complete
type ActivitiesLoadFailedEvent struct {
	Err error
}

func (e ActivitiesLoadFailedEvent) Type() EventType { return EventActivitiesLoadFailed }

// MutationSucceededEvent is emitted when the server accepted a signup or unregister
type MutationSucceededEvent struct {
	Op       MutationOp
	Activity string
	Email    string
	Message  string
}

func (e MutationSucceededEvent) Type() EventType { return EventMutationSucceeded }

// MutationRejectedEvent is emitted when the server answered with a non-2xx status
type MutationRejectedEvent struct {
	Op         MutationOp
	Activity   string
	Email      string
	StatusCode int
	Detail     string
}

func (e MutationRejectedEvent) Type() EventType { return EventMutationRejected }

// MutationFailedEvent is emitted when the request never completed
type MutationFailedEvent struct {
	Op       MutationOp
	Activity string
	Email    string
	Err      error
}

func (e MutationFailedEvent) Type() EventType { return EventMutationFailed }
