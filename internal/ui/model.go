package ui

import (
	"context"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"activityboard/internal/api"
	"activityboard/internal/config"
	"activityboard/internal/domain"
	"activityboard/internal/eventbus"
	"activityboard/internal/logic"
	"activityboard/internal/ui/commands"
	"activityboard/internal/ui/input"
	inputtypes "activityboard/internal/ui/input/types"
	uilogic "activityboard/internal/ui/logic"
	"activityboard/internal/ui/state"
	"activityboard/internal/ui/viewmodels"
	"activityboard/internal/ui/views"
)

// Model is the single dispatcher: key presses and network completions
// both arrive here as messages and are applied one at a time.
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state

	help          help.Model
	keys          keyMap
	statusTimeout time.Duration
	inPagerMode   bool // tracks if we're currently in pager mode

	// Handlers
	pipeline     *uilogic.Pipeline     // filter and sort
	navigator    *uilogic.Navigator    // cursor movement
	renderer     *views.Renderer       // view renderer
	viewModel    *viewmodels.ViewModel // view model for rendering
	cmdExecutor  *commands.Executor    // command executor
	inputHandler *input.Handler        // input handling
	pager        *PagerOps             // list pager

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(ctx context.Context, cfg *config.Config, client api.Client, store logic.ActivityStore, bus eventbus.EventBus) *Model {
	appState := state.NewAppState(store)
	appState.SetSort(cfg.DefaultSortKey())

	m := &Model{
		bus:           bus,
		config:        cfg,
		state:         appState,
		help:          help.New(),
		keys:          newKeyMap(),
		statusTimeout: cfg.StatusDuration(),
		pipeline:      uilogic.NewPipeline(cfg.Locale),
		navigator:     uilogic.NewNavigator(5),
		renderer:      views.NewRenderer(),
		cmdExecutor:   commands.NewExecutor(ctx, client, bus),
		inputHandler:  input.New(),
		pager:         NewPagerOps(),
	}

	m.viewModel = viewmodels.NewViewModel(appState, *m.inputHandler.GetTextInput())
	m.viewModel.SetHelp(m.help, m.keys)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Init starts the initial fetch
func (m *Model) Init() tea.Cmd {
	return m.refresh()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width
		m.navigator.SetPageSize(msg.Height / 4)
		m.viewModel.SetHelp(m.help, m.keys)
		return m, nil

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}

		ctx := &input.ModelContext{State: m.state, Rows: m.actionableRows(m.currentList())}

		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action, ctx); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		m.reconcile()

		return m, tea.Batch(cmds...)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.state.Width == 0 {
		return "Loading..."
	}

	m.viewModel.SetInputMode(m.inputHandler.CurrentMode())
	m.viewModel.UpdateTextInput(*m.inputHandler.GetTextInput())

	return m.renderer.Render(m.viewModel.BuildViewState(m.currentList()))
}

// currentList runs the pipeline over the store snapshot and projects the result
func (m *Model) currentList() views.ListView {
	entries := m.pipeline.Apply(m.state.Store.Snapshot(), m.state.Filter)
	return views.Project(entries)
}

// actionableRows returns the participant rows keys may act on. While the load
// error replaces the cards none are on screen, so there are none.
func (m *Model) actionableRows(list views.ListView) []views.ParticipantRow {
	if m.state.Store.LoadError() != nil {
		return nil
	}
	return list.Rows()
}

// reconcile keeps the cursor and the form's activity choice valid for the visible list
func (m *Model) reconcile() {
	list := m.currentList()
	m.state.Cursor = uilogic.Clamp(m.state.Cursor, len(m.actionableRows(list)))
	m.state.SyncFormActivity(list.OptionValues())
}

// refresh marks a fetch in flight and starts it
func (m *Model) refresh() tea.Cmd {
	m.state.Loading = true
	return m.cmdExecutor.ExecuteRefresh()
}

// showStatus replaces the status message and schedules its removal
func (m *Model) showStatus(text string, kind domain.StatusKind) tea.Cmd {
	generation := m.state.ShowStatus(text, kind)
	return tea.Tick(m.statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{generation: generation}
	})
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action, ctx *input.ModelContext) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.state.Cursor = m.navigator.Move(m.state.Cursor, len(ctx.Rows), a.Direction)

	case inputtypes.UpdateTextAction:
		switch a.Mode {
		case inputtypes.ModeSearch:
			m.state.SetSearch(a.Text)
		case inputtypes.ModeSignup:
			m.state.Form.Email = a.Text
		}

	case inputtypes.SubmitTextAction:
		switch a.Mode {
		case inputtypes.ModeSearch:
			m.state.SetSearch(a.Text)
		case inputtypes.ModeSignup:
			return m.submitSignup(a.Text, ctx)
		}

	case inputtypes.RefreshAction:
		return m.refresh()

	case inputtypes.UnregisterAction:
		if _, ok := m.state.Store.Snapshot().Get(a.Activity); !ok {
			return nil
		}
		return m.cmdExecutor.ExecuteUnregister(a.Activity, a.Email)

	case inputtypes.CycleCategoryAction:
		m.state.CycleCategory(a.Delta)

	case inputtypes.SortByAction:
		m.state.SetSort(a.Key)

	case inputtypes.UpdateSortIndexAction:
		m.state.SortOptionIndex = a.Index

	case inputtypes.CycleFormActivityAction:
		m.state.CycleFormActivity(m.currentList().OptionValues(), a.Delta)

	case inputtypes.OpenPagerAction:
		return m.listPager(views.RenderPlain(m.currentList()))

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

// submitSignup validates the form and sends the request. The form closes only when a request goes out.
func (m *Model) submitSignup(email string, ctx *input.ModelContext) tea.Cmd {
	m.state.Form.Email = email
	activity := m.state.Form.Activity
	if err := commands.ValidateSignup(activity, email); err != nil {
		log.Printf("signup rejected before sending: %v", err)
		return m.showStatus(commands.ValidationText(err), domain.StatusError)
	}
	m.inputHandler.ChangeMode(inputtypes.ModeNormal, "", ctx)
	return m.cmdExecutor.ExecuteSignup(activity, email)
}

// listPager returns a command that shows the list in the ov pager
func (m *Model) listPager(content string) tea.Cmd {
	if m.program == nil {
		return func() tea.Msg { return pagerMsg{err: errNoProgram} }
	}
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.pager.Show(content)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return pagerMsg{err: err}
	}
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case commands.ActivitiesLoadedMsg:
		m.state.Loading = false
		m.state.Store.ApplyFetch(msg.Collection, nil)
		m.reconcile()
		return m, nil

	case commands.ActivitiesFailedMsg:
		m.state.Loading = false
		m.state.Store.ApplyFetch(nil, msg.Err)
		m.reconcile()
		return m, nil

	case commands.MutationResultMsg:
		log.Printf("mutation %s %q for %q: %s", msg.Op, msg.Activity, msg.Email, msg.Outcome)
		cmds := []tea.Cmd{m.showStatus(msg.Text, msg.Kind)}
		if msg.Refreshes() {
			if msg.Op == domain.OpSignup {
				m.resetForm()
			}
			cmds = append(cmds, m.refresh())
		}
		return m, tea.Batch(cmds...)

	case clearStatusMsg:
		m.state.ClearStatus(msg.generation)
		return m, nil

	case pagerMsg:
		if msg.err != nil {
			log.Printf("Pager failed: %v", msg.err)
			return m, m.showStatus("Could not open the pager", domain.StatusError)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	default:
		// Cursor blink and other text input messages
		return m, m.inputHandler.Update(msg)
	}
}

// resetForm clears the signup form, including the input if the form is open
func (m *Model) resetForm() {
	m.state.ResetForm()
	if m.inputHandler.CurrentMode() == inputtypes.ModeSignup {
		m.inputHandler.GetTextInput().SetValue("")
	}
}
