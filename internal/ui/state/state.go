package state

import (
	"activityboard/internal/domain"
	"activityboard/internal/logic"
)

// SignupForm holds the values of the signup form between edits
type SignupForm struct {
	Email    string
	Activity string // "" while the placeholder option is chosen
}

// AppState contains all the application state
type AppState struct {
	// Activity data
	Store logic.ActivityStore

	// View inputs
	Filter          domain.FilterState
	SortOptionIndex int // highlighted option while the sort selector is open

	// Form state
	Form SignupForm

	// Status slot. Generation increases with every shown message so a hide
	// request from an older message can be recognised and ignored.
	Status           *domain.StatusMessage
	StatusGeneration uint64

	// UI state
	Cursor   int  // index into the visible participant rows
	Loading  bool // a refresh is in flight
	ShowHelp bool
	Width    int
	Height   int
}

// NewAppState creates a new application state around store
func NewAppState(store logic.ActivityStore) *AppState {
	return &AppState{
		Store:  store,
		Height: 24,
	}
}

// Filter accessors

// SetSearch updates the search text
func (s *AppState) SetSearch(text string) {
	s.Filter.Search = text
}

// CycleCategory steps through domain.Categories, wrapping at both ends
func (s *AppState) CycleCategory(delta int) {
	idx := 0
	for i, c := range domain.Categories {
		if c == s.Filter.Category {
			idx = i
			break
		}
	}
	n := len(domain.Categories)
	idx = ((idx+delta)%n + n) % n
	s.Filter.Category = domain.Categories[idx]
}

// SetSort updates the sort key
func (s *AppState) SetSort(key domain.SortKey) {
	s.Filter.Sort = key
}

// Status slot

// ShowStatus replaces the visible message and returns its generation
func (s *AppState) ShowStatus(text string, kind domain.StatusKind) uint64 {
	s.StatusGeneration++
	s.Status = &domain.StatusMessage{Text: text, Kind: kind}
	return s.StatusGeneration
}

// ClearStatus hides the message if generation still identifies it.
// Returns false when a newer message has replaced it.
func (s *AppState) ClearStatus(generation uint64) bool {
	if generation != s.StatusGeneration {
		return false
	}
	s.Status = nil
	return true
}

// Form operations

// ResetForm clears both signup fields
func (s *AppState) ResetForm() {
	s.Form = SignupForm{}
}

// CycleFormActivity moves the form's activity choice through options.
// options is the selector content, placeholder first.
func (s *AppState) CycleFormActivity(options []string, delta int) {
	if len(options) == 0 {
		s.Form.Activity = ""
		return
	}
	idx := 0
	for i, o := range options {
		if o == s.Form.Activity {
			idx = i
			break
		}
	}
	n := len(options)
	idx = ((idx+delta)%n + n) % n
	s.Form.Activity = options[idx]
}

// SyncFormActivity drops a chosen activity that is no longer offered
func (s *AppState) SyncFormActivity(options []string) {
	for _, o := range options {
		if o == s.Form.Activity {
			return
		}
	}
	s.Form.Activity = ""
}
