package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"activityboard/internal/domain"
)

// LoadErrorText replaces the activity list after a failed fetch
const LoadErrorText = "Failed to load activities. Please try again later."

// Input modes as reported by the input handler
const (
	InputModeSearch = "search"
	InputModeSort   = "sort"
	InputModeSignup = "signup"
)

// FormView is the signup form as the renderer sees it
type FormView struct {
	EmailInput string // rendered text input, or the stored email when unfocused
	Activity   string // "" for the placeholder
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width           int
	Height          int
	Filter          domain.FilterState
	List            ListView
	Cursor          int
	Loading         bool
	LoadError       bool
	Status          *domain.StatusMessage
	InputMode       string
	TextInput       string // rendered search input while searching
	SortOptionIndex int
	Form            FormView
	HelpView        string
}

// Renderer handles all view rendering
type Renderer struct {
	styles     *Styles
	cardRender *CardRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:     styles,
		cardRender: NewCardRenderer(styles),
	}
}

// Render produces the complete view. The output depends only on state.
func (r *Renderer) Render(state ViewState) string {
	var header strings.Builder

	title := r.styles.Title.Render("activityboard")
	if state.Loading {
		title = fmt.Sprintf("%s  %s", title, r.styles.Dim.Render("↻ Loading"))
	}
	header.WriteString(title)
	header.WriteString("\n")
	header.WriteString(r.renderFilterBar(state))
	header.WriteString("\n")

	switch state.InputMode {
	case InputModeSort:
		header.WriteString(r.renderSortOptions(state.SortOptionIndex))
		header.WriteString("\n")
	case InputModeSignup:
		header.WriteString(r.renderForm(state))
		header.WriteString("\n")
	}

	var footer strings.Builder
	if state.Status != nil {
		footer.WriteString(r.renderStatus(*state.Status))
		footer.WriteString("\n")
	}
	footer.WriteString(r.styles.Help.Render(state.HelpView))

	headerText := header.String()
	footerText := footer.String()

	// Container padding takes one line top and bottom
	available := state.Height - 2 - lineCount(headerText) - lineCount(footerText)
	if available < 3 {
		available = 3
	}

	var body string
	switch {
	case state.LoadError:
		body = r.styles.LoadError.Render(LoadErrorText)
	case len(state.List.Cards) == 0 && state.Loading:
		body = r.styles.Dim.Render("Loading activities...")
	case len(state.List.Cards) == 0:
		body = r.styles.Dim.Render("No activities match the current filters.")
	default:
		body = r.renderList(state, available)
	}

	content := headerText + "\n" + body
	if pad := available - lineCount(body); pad > 0 {
		content += strings.Repeat("\n", pad)
	}
	content += "\n" + footerText

	return r.styles.Main.Render(content)
}

// renderFilterBar shows the three live view inputs
func (r *Renderer) renderFilterBar(state ViewState) string {
	search := state.Filter.Search
	if state.InputMode == InputModeSearch {
		search = state.TextInput
	} else if search == "" {
		search = r.styles.Dim.Render("(none)")
	} else {
		search = r.styles.FilterActive.Render(search)
	}

	category := state.Filter.Category.Label()
	if state.Filter.Category != domain.CategoryAll {
		category = r.styles.FilterActive.Render(category)
	}

	sortLabel := state.Filter.Sort.Label()
	if state.Filter.Sort != domain.SortNone {
		sortLabel = r.styles.FilterActive.Render(sortLabel)
	}

	return r.styles.Filter.Render("Search: ") + search +
		r.styles.Filter.Render("  Category: ") + category +
		r.styles.Filter.Render("  Sort: ") + sortLabel
}

// renderSortOptions renders the sort mode selection interface
func (r *Renderer) renderSortOptions(index int) string {
	var parts []string
	for i, key := range domain.SortKeys {
		label := key.Label()
		if i == index {
			label = r.styles.SelectionBg.Render("[" + label + "]")
		} else {
			label = " " + label + " "
		}
		parts = append(parts, label)
	}
	sortLine := "Sort by: " + strings.Join(parts, " ")
	helpLine := r.styles.Dim.Render("↑/↓ or j/k to change • Enter to accept • Esc to cancel")
	return sortLine + "\n" + helpLine
}

// renderForm renders the signup form box
func (r *Renderer) renderForm(state ViewState) string {
	activity := PlaceholderOption
	for _, o := range state.List.Options {
		if o.Value != "" && o.Value == state.Form.Activity {
			activity = o.Label
			break
		}
	}
	if state.Form.Activity == "" {
		activity = r.styles.Placeholder.Render(activity)
	}

	lines := []string{
		r.styles.Label.Render("Sign up for an activity"),
		"Email:    " + state.Form.EmailInput,
		"Activity: < " + activity + " >",
		r.styles.Dim.Render("tab/↑/↓ change activity • Enter to sign up • Esc to close"),
	}
	return r.styles.FormBox.Render(strings.Join(lines, "\n"))
}

// renderStatus styles the status message by kind
func (r *Renderer) renderStatus(status domain.StatusMessage) string {
	if status.Kind == domain.StatusError {
		return r.styles.StatusError.Render(status.Text)
	}
	return r.styles.StatusSuccess.Render(status.Text)
}

// renderList renders the cards, windowed so the focused row stays visible
func (r *Renderer) renderList(state ViewState, height int) string {
	var all []string
	focus := -1
	row := 0
	for i, card := range state.List.Cards {
		if i > 0 {
			all = append(all, "")
		}
		lines, focusLine := r.cardRender.RenderCard(card, row, state.Cursor)
		if focusLine >= 0 {
			focus = len(all) + focusLine
		}
		all = append(all, lines...)
		row += len(card.Participants)
	}

	if len(all) <= height {
		return strings.Join(all, "\n")
	}

	// Reserve room for the scroll indicators
	window := height - 2
	if window < 1 {
		window = 1
	}
	offset := 0
	if focus >= 0 {
		offset = focus - window/2
	}
	if offset > len(all)-window {
		offset = len(all) - window
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + window

	lines := make([]string, 0, window+2)
	lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", offset)))
	lines = append(lines, all[offset:end]...)
	lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", len(all)-end)))
	return strings.Join(lines, "\n")
}

func lineCount(s string) int {
	return lipgloss.Height(s)
}
