package input

import (
	"activityboard/internal/domain"
	"activityboard/internal/ui/state"
	"activityboard/internal/ui/views"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
	Rows  []views.ParticipantRow // visible participant rows in display order
}

// FocusedRow returns the participant row under the cursor
func (c *ModelContext) FocusedRow() (string, string, bool) {
	idx := c.State.Cursor
	if idx < 0 || idx >= len(c.Rows) {
		return "", "", false
	}
	row := c.Rows[idx]
	return row.Activity, row.Email, true
}

// SearchQuery returns the current search text
func (c *ModelContext) SearchQuery() string {
	return c.State.Filter.Search
}

// CurrentSort returns the active sort key
func (c *ModelContext) CurrentSort() domain.SortKey {
	return c.State.Filter.Sort
}

// FormEmail returns the email kept in the signup form
func (c *ModelContext) FormEmail() string {
	return c.State.Form.Email
}
