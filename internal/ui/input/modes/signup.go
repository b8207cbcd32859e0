package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"activityboard/internal/ui/input/types"
)

// SignupMode edits the signup form: the email text and the activity choice.
// Leaving with esc keeps both values for the next time the form opens.
type SignupMode struct {
	TextInputMode
}

func NewSignupMode(ti *textinput.Model) *SignupMode {
	return &SignupMode{
		TextInputMode: NewTextInputMode(types.ModeSignup, "signup", ti),
	}
}

func (m *SignupMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "tab", "down":
		return []types.Action{types.CycleFormActivityAction{Delta: 1}}, true
	case "shift+tab", "up":
		return []types.Action{types.CycleFormActivityAction{Delta: -1}}, true
	case "enter":
		// The model validates and closes the form once the request is sent
		return []types.Action{types.SubmitTextAction{Text: m.value(), Mode: types.ModeSignup}}, true
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
