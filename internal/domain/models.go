package domain

import "strings"

// Activity represents a schedulable offering with a capacity and a roster
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string // registered emails, server order
}

// SpotsLeft returns remaining capacity. Negative when the server reports an overfull roster.
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// Collection is the latest server snapshot keyed by activity name.
// Enumeration follows the order the server listed the activities in.
type Collection struct {
	names []string
	items map[string]Activity
}

// NewCollection creates an empty collection
func NewCollection() *Collection {
	return &Collection{
		items: make(map[string]Activity),
	}
}

// Add appends an activity. A repeated name keeps its first position and takes the new value.
func (c *Collection) Add(a Activity) {
	if _, exists := c.items[a.Name]; !exists {
		c.names = append(c.names, a.Name)
	}
	c.items[a.Name] = a
}

// Get returns the activity with the given name
func (c *Collection) Get(name string) (Activity, bool) {
	if c == nil {
		return Activity{}, false
	}
	a, ok := c.items[name]
	return a, ok
}

// Names returns activity names in enumeration order
func (c *Collection) Names() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.names...)
}

// Entries returns activities in enumeration order
func (c *Collection) Entries() []Activity {
	if c == nil {
		return nil
	}
	out := make([]Activity, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.items[name])
	}
	return out
}

// Len returns the number of activities
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.names)
}

// Category is a display grouping derived from the activity name
type Category string

const (
	CategoryAll   Category = ""
	CategoryClub  Category = "Club"
	CategoryClass Category = "Class"
	CategoryTeam  Category = "Team"
	CategoryOther Category = "Other"
)

// Categories lists the category filter options in display order
var Categories = []Category{CategoryAll, CategoryClub, CategoryClass, CategoryTeam, CategoryOther}

// CategoryOf derives the category from an activity name.
// Club wins over Class, which wins over Team.
func CategoryOf(name string) Category {
	switch {
	case strings.Contains(name, "Club"):
		return CategoryClub
	case strings.Contains(name, "Class"):
		return CategoryClass
	case strings.Contains(name, "Team"):
		return CategoryTeam
	default:
		return CategoryOther
	}
}

// Label returns the text shown in the category selector
func (c Category) Label() string {
	if c == CategoryAll {
		return "All"
	}
	return string(c)
}

// SortKey selects the display order
type SortKey string

const (
	SortNone       SortKey = ""
	SortByName     SortKey = "name"
	SortBySchedule SortKey = "schedule"
)

// SortKeys lists the sort options in display order
var SortKeys = []SortKey{SortNone, SortByName, SortBySchedule}

// ParseSortKey converts a config or input string into a SortKey
func ParseSortKey(s string) (SortKey, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return SortNone, true
	case "name":
		return SortByName, true
	case "schedule":
		return SortBySchedule, true
	default:
		return SortNone, false
	}
}

// Label returns the text shown in the sort selector
func (k SortKey) Label() string {
	switch k {
	case SortByName:
		return "Name"
	case SortBySchedule:
		return "Schedule"
	default:
		return "None"
	}
}

// FilterState holds the three live view inputs
type FilterState struct {
	Search   string
	Category Category
	Sort     SortKey
}

// StatusKind classifies a status message for styling
type StatusKind int

const (
	StatusSuccess StatusKind = iota
	StatusError
)

// StatusMessage is the single transient message shown to the user
type StatusMessage struct {
	Text string
	Kind StatusKind
}

// MutationOp names a roster mutation
type MutationOp string

const (
	OpSignup     MutationOp = "signup"
	OpUnregister MutationOp = "unregister"
)
