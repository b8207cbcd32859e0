package views

import (
	"activityboard/internal/ui/logic"
)

// PlaceholderOption is the leading entry of the activity selector
const PlaceholderOption = "-- Select an activity --"

// NoParticipantsText replaces the roster of an empty activity
const NoParticipantsText = "No participants yet"

// ParticipantRow is one roster line. Activity and Email tag the unregister action.
type ParticipantRow struct {
	Activity string
	Email    string
}

// ActivityCard is the display item for one activity
type ActivityCard struct {
	Name         string
	Description  string
	Schedule     string
	SpotsLeft    int
	Participants []ParticipantRow
}

// Empty reports whether the placeholder replaces the roster
func (c ActivityCard) Empty() bool {
	return len(c.Participants) == 0
}

// SelectOption is one entry of the activity selector
type SelectOption struct {
	Value string
	Label string
}

// ListView is the projection of pipeline output consumed by the renderer
type ListView struct {
	Cards   []ActivityCard
	Options []SelectOption
}

// Project builds the cards and selector options for entries, in order
func Project(entries []logic.Entry) ListView {
	view := ListView{
		Cards:   make([]ActivityCard, 0, len(entries)),
		Options: make([]SelectOption, 0, len(entries)+1),
	}
	view.Options = append(view.Options, SelectOption{Value: "", Label: PlaceholderOption})

	for _, e := range entries {
		card := ActivityCard{
			Name:        e.Name,
			Description: e.Activity.Description,
			Schedule:    e.Activity.Schedule,
			SpotsLeft:   e.Activity.SpotsLeft(),
		}
		for _, email := range e.Activity.Participants {
			card.Participants = append(card.Participants, ParticipantRow{Activity: e.Name, Email: email})
		}
		view.Cards = append(view.Cards, card)
		view.Options = append(view.Options, SelectOption{Value: e.Name, Label: e.Name})
	}
	return view
}

// Rows flattens every participant row in display order. The cursor indexes this slice.
func (v ListView) Rows() []ParticipantRow {
	var rows []ParticipantRow
	for _, c := range v.Cards {
		rows = append(rows, c.Participants...)
	}
	return rows
}

// OptionValues returns the selector values, placeholder first
func (v ListView) OptionValues() []string {
	out := make([]string, 0, len(v.Options))
	for _, o := range v.Options {
		out = append(out, o.Value)
	}
	return out
}
