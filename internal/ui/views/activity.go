package views

import (
	"fmt"
	"strings"
)

// CardRenderer handles rendering of activity cards
type CardRenderer struct {
	styles *Styles
}

// NewCardRenderer creates a new card renderer
func NewCardRenderer(styles *Styles) *CardRenderer {
	return &CardRenderer{
		styles: styles,
	}
}

// RenderCard renders one activity card as lines.
// firstRow is the global row index of the card's first participant and
// cursor the focused row, or -1 when no row is focused. focusLine is the
// line index of the focused row within the card, -1 if it is elsewhere.
func (c *CardRenderer) RenderCard(card ActivityCard, firstRow, cursor int) (lines []string, focusLine int) {
	focusLine = -1

	lines = append(lines, c.styles.CardTitle.Render(card.Name))
	if card.Description != "" {
		lines = append(lines, "  "+card.Description)
	}
	lines = append(lines, fmt.Sprintf("  %s %s", c.styles.Label.Render("Schedule:"), card.Schedule))
	lines = append(lines, fmt.Sprintf("  %s %s", c.styles.Label.Render("Availability:"), c.renderSpots(card.SpotsLeft)))
	lines = append(lines, "  "+c.styles.Label.Render("Participants:"))

	if card.Empty() {
		lines = append(lines, "    "+c.styles.Placeholder.Render(NoParticipantsText))
		return lines, focusLine
	}

	for i, row := range card.Participants {
		focused := firstRow+i == cursor
		if focused {
			focusLine = len(lines)
		}
		lines = append(lines, c.renderParticipant(row, focused))
	}
	return lines, focusLine
}

func (c *CardRenderer) renderSpots(spots int) string {
	text := fmt.Sprintf("%d spots left", spots)
	if spots <= 0 {
		return c.styles.SpotsFull.Render(text)
	}
	return c.styles.Spots.Render(text)
}

func (c *CardRenderer) renderParticipant(row ParticipantRow, focused bool) string {
	if !focused {
		return "    " + c.styles.Participant.Render(row.Email)
	}
	marker := c.styles.DeleteMarker.Render("✗")
	return "  > " + c.styles.Focused.Render(row.Email) + " " + marker
}

// RenderPlain renders every card without styling or focus, for the pager
func RenderPlain(view ListView) string {
	plain := NewCardRenderer(PlainStyles())
	var b strings.Builder
	for i, card := range view.Cards {
		if i > 0 {
			b.WriteString("\n")
		}
		lines, _ := plain.RenderCard(card, 0, -1)
		b.WriteString(strings.Join(lines, "\n"))
		b.WriteString("\n")
	}
	return b.String()
}
