package logic

import (
	"log"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"activityboard/internal/domain"
)

// Sorter orders pipeline entries using locale-aware collation
type Sorter struct {
	tag language.Tag
}

// NewSorter creates a sorter for the given BCP 47 locale. Unknown locales fall back to English.
func NewSorter(locale string) *Sorter {
	tag, err := language.Parse(locale)
	if err != nil {
		log.Printf("Unknown locale %q, falling back to en: %v", locale, err)
		tag = language.English
	}
	return &Sorter{tag: tag}
}

// Sort orders entries in place. SortNone keeps the incoming order; ties keep it too.
func (s *Sorter) Sort(entries []Entry, key domain.SortKey) {
	var field func(Entry) string
	switch key {
	case domain.SortByName:
		field = func(e Entry) string { return e.Name }
	case domain.SortBySchedule:
		field = func(e Entry) string { return e.Activity.Schedule }
	default:
		return
	}

	// A Collator is not safe for concurrent use; one per call.
	c := collate.New(s.tag)
	sort.SliceStable(entries, func(i, j int) bool {
		return c.CompareString(field(entries[i]), field(entries[j])) < 0
	})
}

// Pipeline derives the displayed subset and order from a collection and the filter inputs
type Pipeline struct {
	sorter *Sorter
}

// NewPipeline creates a pipeline that sorts with the given locale
func NewPipeline(locale string) *Pipeline {
	return &Pipeline{sorter: NewSorter(locale)}
}

// Apply filters then sorts. The collection is only read.
func (p *Pipeline) Apply(coll *domain.Collection, fs domain.FilterState) []Entry {
	entries := Filter(coll, fs)
	p.sorter.Sort(entries, fs.Sort)
	return entries
}
