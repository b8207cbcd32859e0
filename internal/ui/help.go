package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap describes the normal-mode bindings for the help view.
// Key handling itself lives in the input modes.
type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Unregister key.Binding
	Search     key.Binding
	Category   key.Binding
	Sort       key.Binding
	Signup     key.Binding
	Refresh    key.Binding
	Pager      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Unregister: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "unregister")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Category:   key.NewBinding(key.WithKeys("c", "C"), key.WithHelp("c/C", "category")),
		Sort:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Signup:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "sign up")),
		Refresh:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Pager:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pager")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Unregister, k.Search, k.Signup, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Unregister},
		{k.Search, k.Category, k.Sort},
		{k.Signup, k.Refresh, k.Pager},
		{k.Help, k.Quit},
	}
}
