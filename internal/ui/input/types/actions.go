package types

import "activityboard/internal/domain"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // initial text for text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
	Mode Mode // Which mode owns the text
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

// Command actions
type RefreshAction struct{}

func (a RefreshAction) Type() string { return "refresh" }

type UnregisterAction struct {
	Activity string
	Email    string
}

func (a UnregisterAction) Type() string { return "unregister" }

type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }

// Filter actions
type CycleCategoryAction struct {
	Delta int
}

func (a CycleCategoryAction) Type() string { return "cycle_category" }

type SortByAction struct {
	Key domain.SortKey
}

func (a SortByAction) Type() string { return "sort_by" }

type UpdateSortIndexAction struct {
	Index int
}

func (a UpdateSortIndexAction) Type() string { return "update_sort_index" }

// Form actions
type CycleFormActivityAction struct {
	Delta int
}

func (a CycleFormActivityAction) Type() string { return "cycle_form_activity" }
