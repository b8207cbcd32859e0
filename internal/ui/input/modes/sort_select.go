package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"activityboard/internal/domain"
	"activityboard/internal/ui/input/types"
)

type SortSelectMode struct {
	sortIndex     int
	originalIndex int // Remember the original sort when entering
}

func NewSortSelectMode() *SortSelectMode {
	return &SortSelectMode{}
}

func (m *SortSelectMode) Name() string {
	return "sort"
}

func (m *SortSelectMode) Enter(ctx types.Context) []types.Action {
	m.sortIndex = 0
	m.originalIndex = 0
	for i, key := range domain.SortKeys {
		if key == ctx.CurrentSort() {
			m.sortIndex = i
			m.originalIndex = i
			break
		}
	}
	return []types.Action{types.UpdateSortIndexAction{Index: m.sortIndex}}
}

func (m *SortSelectMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

// HandleKey processes key messages for sort selection
func (m *SortSelectMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc", "q":
		// Cancel and restore original sort
		return []types.Action{
			types.SortByAction{Key: domain.SortKeys[m.originalIndex]},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case "enter":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true

	case "up", "k", "left", "h":
		return m.move(-1), true

	case "down", "j", "right", "l":
		return m.move(1), true
	}

	return nil, false
}

// move steps the highlighted option and applies it immediately
func (m *SortSelectMode) move(delta int) []types.Action {
	n := len(domain.SortKeys)
	m.sortIndex = ((m.sortIndex+delta)%n + n) % n
	return []types.Action{
		types.UpdateSortIndexAction{Index: m.sortIndex},
		types.SortByAction{Key: domain.SortKeys[m.sortIndex]},
	}
}
