package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"activityboard/internal/ui/input/types"
)

// SearchMode edits the search text. Every change is applied live.
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", ti),
	}
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.String() == "esc" {
		// Esc drops the search entirely
		return []types.Action{
			types.UpdateTextAction{Text: "", Mode: types.ModeSearch},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
