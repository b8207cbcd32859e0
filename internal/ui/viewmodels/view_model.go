package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"activityboard/internal/ui/input/types"
	"activityboard/internal/ui/state"
	"activityboard/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	help             help.Model
	keys             help.KeyMap
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, textInput textinput.Model) *ViewModel {
	return &ViewModel{
		state:            appState,
		help:             help.New(),
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetHelp sets the help model and the bindings it describes
func (vm *ViewModel) SetHelp(helpModel help.Model, keys help.KeyMap) {
	vm.help = helpModel
	vm.keys = keys
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode types.Mode) {
	vm.inputTransformer.SetMode(mode)
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.inputTransformer.SetTextInput(textInput)
}

// BuildViewState creates a ViewState for rendering list
func (vm *ViewModel) BuildViewState(list views.ListView) views.ViewState {
	helpView := ""
	if vm.keys != nil {
		h := vm.help
		h.ShowAll = vm.state.ShowHelp
		h.Width = vm.state.Width
		helpView = h.View(vm.keys)
	}

	return views.ViewState{
		Width:           vm.state.Width,
		Height:          vm.state.Height,
		Filter:          vm.state.Filter,
		List:            list,
		Cursor:          vm.state.Cursor,
		Loading:         vm.state.Loading,
		LoadError:       vm.state.Store.LoadError() != nil,
		Status:          vm.state.Status,
		InputMode:       vm.inputTransformer.GetInputModeString(),
		TextInput:       vm.inputTransformer.TextFor(types.ModeSearch, vm.state.Filter.Search),
		SortOptionIndex: vm.state.SortOptionIndex,
		Form: views.FormView{
			EmailInput: vm.inputTransformer.TextFor(types.ModeSignup, vm.state.Form.Email),
			Activity:   vm.state.Form.Activity,
		},
		HelpView: helpView,
	}
}
