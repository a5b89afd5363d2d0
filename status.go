package docscrape

import (
	"slices"
	"strconv"
)

// ExpectedStatuses is the PEP status vocabulary seeded into every tally.
var ExpectedStatuses = []string{
	"Active",
	"Accepted",
	"Deferred",
	"Draft",
	"Final",
	"Provisional",
	"Rejected",
	"Superseded",
	"Withdrawn",
}

// StatusAbbreviations maps the status letter shown in the PEP index table
// to the page statuses it may stand for. An empty letter means the PEP has
// no status marker in the index.
var StatusAbbreviations = map[string][]string{
	"A": {"Active", "Accepted"},
	"D": {"Deferred"},
	"F": {"Final"},
	"P": {"Provisional"},
	"R": {"Rejected"},
	"S": {"Superseded"},
	"W": {"Withdrawn"},
	"":  {"Draft", "Active"},
}

// StatusMatches reports whether a page status agrees with the index
// abbreviation. Unknown abbreviations never match.
func StatusMatches(abbr, status string) bool {
	expected, ok := StatusAbbreviations[abbr]
	if !ok {
		return false
	}
	return slices.Contains(expected, status)
}

// StatusTally counts statuses in first-seen order, starting from the
// ExpectedStatuses vocabulary at zero.
type StatusTally struct {
	labels []string
	counts map[string]int
}

// NewStatusTally returns a tally seeded with ExpectedStatuses.
func NewStatusTally() *StatusTally {
	t := &StatusTally{counts: make(map[string]int, len(ExpectedStatuses))}
	for _, s := range ExpectedStatuses {
		t.labels = append(t.labels, s)
		t.counts[s] = 0
	}
	return t
}

// Add increments the count for status, appending unseen labels.
func (t *StatusTally) Add(status string) {
	if _, ok := t.counts[status]; !ok {
		t.labels = append(t.labels, status)
	}
	t.counts[status]++
}

// Count returns the count for status.
func (t *StatusTally) Count(status string) int {
	return t.counts[status]
}

// Labels returns the labels in tally order.
func (t *StatusTally) Labels() []string {
	return slices.Clone(t.labels)
}

// Total returns the sum of all per-status counts.
func (t *StatusTally) Total() int {
	var total int
	for _, n := range t.counts {
		total += n
	}
	return total
}

// Table renders the tally as (status, count) rows followed by a Total row.
func (t *StatusTally) Table() *Table {
	table := NewTable("Status", "Count")
	for _, label := range t.labels {
		table.Append(label, strconv.Itoa(t.counts[label]))
	}
	table.Append("Total", strconv.Itoa(t.Total()))
	return table
}
