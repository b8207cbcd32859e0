package logic

import (
	"strings"

	"activityboard/internal/domain"
)

// Entry is one (name, activity) pair of pipeline output
type Entry struct {
	Name     string
	Activity domain.Activity
}

// MatchesSearch reports whether the query is a case-insensitive substring of
// the activity name or its description. An empty query matches everything.
func MatchesSearch(name string, a domain.Activity, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), q) ||
		strings.Contains(strings.ToLower(a.Description), q)
}

// MatchesCategory reports whether the activity belongs to the selected category
func MatchesCategory(name string, category domain.Category) bool {
	return category == domain.CategoryAll || domain.CategoryOf(name) == category
}

// Filter returns the entries that pass both predicates, in collection order
func Filter(coll *domain.Collection, fs domain.FilterState) []Entry {
	entries := make([]Entry, 0, coll.Len())
	for _, a := range coll.Entries() {
		if MatchesSearch(a.Name, a, fs.Search) && MatchesCategory(a.Name, fs.Category) {
			entries = append(entries, Entry{Name: a.Name, Activity: a})
		}
	}
	return entries
}
