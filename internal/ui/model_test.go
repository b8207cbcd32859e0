package ui

import (
	"context"
	"net/http"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activityboard/internal/api"
	"activityboard/internal/api/apitest"
	"activityboard/internal/config"
	"activityboard/internal/domain"
	"activityboard/internal/logic"
	"activityboard/internal/ui/commands"
	inputtypes "activityboard/internal/ui/input/types"
	"activityboard/internal/ui/views"
)

func newServer() *apitest.Server {
	return apitest.NewServer(
		[]string{"Chess Club", "Art Class", "Soccer Team", "Math Club"},
		map[string]apitest.Activity{
			"Chess Club":  {Description: "Strategy games", Schedule: "Fridays, 3:30 PM", MaxParticipants: 10, Participants: []string{"a@b.com"}},
			"Art Class":   {Description: "Painting", Schedule: "Mondays, 4:00 PM", MaxParticipants: 8},
			"Soccer Team": {Description: "Outdoor sport", Schedule: "Wednesdays, 4:00 PM", MaxParticipants: 22, Participants: []string{"s@t.com"}},
			"Math Club":   {Description: "Puzzles", Schedule: "Tuesdays, 3:30 PM", MaxParticipants: 6},
		},
	)
}

func newTestModel(t *testing.T, url string) *Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.StatusTimeout = "1ms"
	m := NewModel(context.Background(), cfg, api.NewHTTPClient(url, nil), logic.NewMemoryActivityStore(), nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 80})
	return m
}

// run executes cmd and feeds network completions back into the model.
// Status clear requests are collected instead of applied so tests control timing.
func run(m *Model, cmd tea.Cmd) []clearStatusMsg {
	var clears []clearStatusMsg
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := next().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case clearStatusMsg:
			clears = append(clears, msg)
		case commands.ActivitiesLoadedMsg, commands.ActivitiesFailedMsg, commands.MutationResultMsg:
			_, follow := m.Update(msg)
			queue = append(queue, follow)
		}
	}
	return clears
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends keys in order and runs whatever they trigger
func press(m *Model, keys ...string) []clearStatusMsg {
	var clears []clearStatusMsg
	for _, k := range keys {
		_, cmd := m.Update(keyPress(k))
		clears = append(clears, run(m, cmd)...)
	}
	return clears
}

func visibleNames(m *Model) []string {
	var names []string
	for _, c := range m.currentList().Cards {
		names = append(names, c.Name)
	}
	return names
}

func TestInitLoadsActivities(t *testing.T) {
	srv := newServer()
	defer srv.Close()
	m := newTestModel(t, srv.URL)

	run(m, m.Init())

	assert.False(t, m.state.Loading)
	assert.Equal(t, []string{"Chess Club", "Art Class", "Soccer Team", "Math Club"}, visibleNames(m))
	out := m.View()
	assert.Contains(t, out, "9 spots left")
	assert.Contains(t, out, views.NoParticipantsText)
}

func TestSearchFiltersOnEveryKeystroke(t *testing.T) {
	srv := newServer()
	defer srv.Close()
	m := newTestModel(t, srv.URL)
	run(m, m.Init())

	press(m, "/", "c", "h")
	assert.Equal(t, []string{"Chess Club"}, visibleNames(m))

	press(m, "e", "s", "s", "enter")
	assert.Equal(t, "chess", m.state.Filter.Search)
	out := m.View()
	assert.Contains(t, out, "Chess Club")
	assert.Contains(t, out, "9 spots left")
	assert.NotContains(t, out, "Art Class")

	press(m, "/", "esc")
	assert.Equal(t, "", m.state.Filter.Search)
	assert.Len(t, visibleNames(m), 4)
}

func TestCategoryCycleShowsTeams(t *testing.T) {
	srv := newServer()
	defer srv.Close()
	m := newTestModel(t, srv.URL)
	run(m, m.Init())

	press(m, "c", "c", "c")
	assert.Equal(t, domain.CategoryTeam, m.state.Filter.Category)
	assert.Equal(t, []string{"Soccer Team"}, visibleNames(m))
}

func TestSortSelectAppliesLive(t *testing.T) {
	srv := newServer()
	defer srv.Close()
	m := newTestModel(t, srv.URL)
	run(m, m.Init())

	press(m, "s", "j")
	assert.Equal(t, []string{"Art Class", "Chess Club", "Math Club", "Soccer Team"}, visibleNames(m))

	press(m, "j", "enter")
	assert.Equal(t, domain.SortBySchedule, m.state.Filter.Sort)
	assert.Equal(t, []string{"Chess Club", "Art Class", "Math Club", "Soccer Team"}, visibleNames(m))
}

func TestSignupSuccessResetsFormAndRefreshes(t *testing.T) {
	srv := newServer()
	defer srv.Close()
	m := newTestModel(t, srv.URL)
	run(m, m.Init())
	gets := srv.Hits(http.MethodGet)

	press(m, "n", "x@y.com", "tab", "tab")
	assert.Equal(t, "Art Class", m.state.Form.Activity)
	press(m, "enter")

	assert.Contains(t, srv.Participants("Art Class"), "x@y.com")
	require.NotNil(t, m.state.Status)
	assert.Equal(t, "Signed up x@y.com for Art Class", m.state.Status.Text)
	assert.Equal(t, domain.StatusSuccess, m.state.Status.Kind)
	assert.Equal(t, "", m.state.Form.Email)
	assert.Equal(t, "", m.state.Form.Activity)
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())
	assert.Equal(t, gets+1, srv.Hits(http.MethodGet))
	assert.Contains(t, m.View(), "x@y.com")
}

func TestSignupAlreadyRegisteredKeepsFormWithoutRefresh(t *testing.T) {
	srv := newServer()
	defer srv.Close()
	m := newTestModel(t, srv.URL)
	run(m, m.Init())
	gets := srv.Hits(http.MethodGet)

	press(m, "n", "a@b.com", "tab", "enter")

	require.NotNil(t, m.state.Status)
	assert.Equal(t, "Already registered", m.state.Status.Text)
	assert.Equal(t, domain.StatusError, m.state.Status.Kind)
	assert.Equal(t, "a@b.com", m.state.Form.Email)
	assert.Equal(t, "Chess Club", m.state.Form.Activity)
	assert.Equal(t, gets, srv.Hits(http.MethodGet))
	assert.Equal(t, []string{"a@b.com"}, srv.Participants("Chess Club"))
}

func TestSignupValidationSendsNothing(t *testing.T) {
	srv := newServer()
	defer srv.Close()
	m := newTestModel(t, srv.URL)
	run(m, m.Init())

	press(m, "n", "enter")
	require.NotNil(t, m.state.Status)
	assert.Equal(t, commands.MissingEmailText, m.state.Status.Text)
	assert.Equal(t, inputtypes.ModeSignup, m.inputHandler.CurrentMode())

	press(m, "x@y.com", "enter")
	assert.Equal(t, commands.MissingActivityText, m.state.Status.Text)
	assert.Equal(t, 0, srv.Hits(http.MethodPost))
}

func TestFormActivityDroppedWhenFilteredOut(t *testing.T) {
	srv := newServer()
	defer srv.Close()
	m := newTestModel(t, srv.URL)
	run(m, m.Init())

	press(m, "n", "tab", "esc")
	assert.Equal(t, "Chess Club", m.state.Form.Activity)

	press(m, "c", "c")
	assert.Equal(t, domain.CategoryClass, m.state.Filter.Category)
	assert.Equal(t, "", m.state.Form.Activity)
}

func TestUnregisterFocusedParticipant(t *testing.T) {
	srv := newServer()
	defer srv.Close()
	m := newTestModel(t, srv.URL)
	run(m, m.Init())

	press(m, "down")
	assert.Equal(t, 1, m.state.Cursor)

	press(m, "d")

	assert.Equal(t, []string{"a@b.com"}, srv.Participants("Chess Club"))
	assert.Empty(t, srv.Participants("Soccer Team"))
	require.NotNil(t, m.state.Status)
	assert.Equal(t, "Unregistered s@t.com from Soccer Team", m.state.Status.Text)
	assert.Equal(t, 0, m.state.Cursor)
}

func TestMutationTransportFailureDoesNotRefresh(t *testing.T) {
	srv := newServer()
	defer srv.Close()
	m := newTestModel(t, srv.URL)
	run(m, m.Init())

	m.Update(commands.MutationResultMsg{
		Op:      domain.OpUnregister,
		Outcome: commands.OutcomeTransportFailed,
		Text:    commands.UnregisterFailedText,
		Kind:    domain.StatusError,
	})

	assert.False(t, m.state.Loading)
	require.NotNil(t, m.state.Status)
	assert.Equal(t, commands.UnregisterFailedText, m.state.Status.Text)
}

func TestStaleStatusTimerDoesNotHideNewerMessage(t *testing.T) {
	srv := newServer()
	defer srv.Close()
	m := newTestModel(t, srv.URL)
	run(m, m.Init())

	first := press(m, "n", "a@b.com", "tab", "enter")
	second := press(m, "esc", "n", "enter")
	require.Len(t, first, 1)
	require.Len(t, second, 1)
	require.NotNil(t, m.state.Status)
	newest := m.state.Status.Text

	m.Update(first[0])
	require.NotNil(t, m.state.Status)
	assert.Equal(t, newest, m.state.Status.Text)

	m.Update(second[0])
	assert.Nil(t, m.state.Status)
}

func TestLoadFailureShowsErrorUntilRefreshSucceeds(t *testing.T) {
	srv := newServer()
	defer srv.Close()
	srv.FailListing(true)
	m := newTestModel(t, srv.URL)

	run(m, m.Init())
	assert.Contains(t, m.View(), views.LoadErrorText)
	assert.Equal(t, 0, m.state.Store.Snapshot().Len())

	srv.FailListing(false)
	press(m, "r")
	out := m.View()
	assert.NotContains(t, out, views.LoadErrorText)
	assert.Contains(t, out, "Chess Club")
}

func TestFailedRefreshKeepsPreviousCollection(t *testing.T) {
	srv := newServer()
	defer srv.Close()
	m := newTestModel(t, srv.URL)
	run(m, m.Init())

	srv.FailListing(true)
	press(m, "r")

	assert.Error(t, m.state.Store.LoadError())
	assert.Equal(t, 4, m.state.Store.Snapshot().Len())
}

func TestUnregisterIgnoredWhileLoadErrorShown(t *testing.T) {
	srv := newServer()
	defer srv.Close()
	m := newTestModel(t, srv.URL)
	run(m, m.Init())

	srv.FailListing(true)
	press(m, "r")
	require.Contains(t, m.View(), views.LoadErrorText)
	assert.NotContains(t, m.View(), "a@b.com")

	press(m, "d")
	assert.Equal(t, 0, srv.Hits(http.MethodDelete))
	assert.Equal(t, []string{"a@b.com"}, srv.Participants("Chess Club"))

	srv.FailListing(false)
	press(m, "r", "d")
	assert.Equal(t, 1, srv.Hits(http.MethodDelete))
	assert.Empty(t, srv.Participants("Chess Club"))
}

func TestUnregisterForUnknownActivitySendsNothing(t *testing.T) {
	srv := newServer()
	defer srv.Close()
	m := newTestModel(t, srv.URL)
	run(m, m.Init())

	cmd := m.processAction(inputtypes.UnregisterAction{Activity: "Drama Club", Email: "a@b.com"}, nil)
	assert.Nil(t, cmd)
	assert.Equal(t, 0, srv.Hits(http.MethodDelete))
}

func TestViewIsIdempotent(t *testing.T) {
	srv := newServer()
	defer srv.Close()
	m := newTestModel(t, srv.URL)
	run(m, m.Init())

	assert.Equal(t, m.View(), m.View())
}

func TestPagerWithoutProgramReportsError(t *testing.T) {
	srv := newServer()
	defer srv.Close()
	m := newTestModel(t, srv.URL)
	run(m, m.Init())

	_, cmd := m.Update(keyPress("p"))
	require.NotNil(t, cmd)
	msg := cmd()
	pm, ok := msg.(pagerMsg)
	require.True(t, ok, "got %T", msg)
	assert.ErrorIs(t, pm.err, errNoProgram)

	m.Update(pm)
	require.NotNil(t, m.state.Status)
	assert.Equal(t, domain.StatusError, m.state.Status.Kind)
}

func TestQuit(t *testing.T) {
	srv := newServer()
	defer srv.Close()
	m := newTestModel(t, srv.URL)

	_, cmd := m.Update(keyPress("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
