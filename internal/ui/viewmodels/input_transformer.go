package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"

	"activityboard/internal/ui/input/types"
	"activityboard/internal/ui/views"
)

// InputTransformer maps the input handler's mode onto what the renderer shows
type InputTransformer struct {
	mode      types.Mode
	textInput textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer(textInput textinput.Model) *InputTransformer {
	return &InputTransformer{
		mode:      types.ModeNormal,
		textInput: textInput,
	}
}

// SetMode sets the current input mode
func (it *InputTransformer) SetMode(mode types.Mode) {
	it.mode = mode
}

// SetTextInput replaces the text input snapshot
func (it *InputTransformer) SetTextInput(textInput textinput.Model) {
	it.textInput = textInput
}

// GetInputModeString returns the mode name the renderer switches on
func (it *InputTransformer) GetInputModeString() string {
	switch it.mode {
	case types.ModeSearch:
		return views.InputModeSearch
	case types.ModeSort:
		return views.InputModeSort
	case types.ModeSignup:
		return views.InputModeSignup
	default:
		return ""
	}
}

// TextFor returns the live text input when mode owns it, otherwise stored
func (it *InputTransformer) TextFor(mode types.Mode, stored string) string {
	if it.mode == mode {
		return it.textInput.View()
	}
	return stored
}
