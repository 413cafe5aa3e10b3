package domain

import (
	"fmt"
	"sort"
)

// AnnotationRecord is one software repository entry together with the
// controlled-vocabulary subject terms attached to it. Records are read-only
// to this tool; they are produced and mutated elsewhere.
type AnnotationRecord struct {
	// ID is the record's opaque identifier in the record store.
	ID string `json:"id"`
	// Owner is the account that owns the repository.
	Owner string `json:"owner"`
	// Name is the repository name.
	Name string `json:"name"`
	// Terms is the ordered list of subject term identifiers. Order is
	// whatever the record store returned; it is never normalised here.
	Terms []string `json:"terms"`
}

// Summary renders the conventional "owner/name (id)" display form.
func (r AnnotationRecord) Summary() string {
	return fmt.Sprintf("%s/%s (%s)", r.Owner, r.Name, r.ID)
}

// TermUsage maps a term identifier to its occurrence count across a record
// set. It is derived data, recomputed on every aggregation pass and never
// persisted.
type TermUsage map[string]int

// TermCount is one entry of a sorted TermUsage listing.
type TermCount struct {
	TermID string
	Count  int
}

// SortedByCount returns the usage entries sorted by descending count.
// Ties are broken by ascending term ID so output is deterministic.
func (u TermUsage) SortedByCount() []TermCount {
	entries := make([]TermCount, 0, len(u))
	for term, count := range u {
		entries = append(entries, TermCount{TermID: term, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].TermID < entries[j].TermID
	})
	return entries
}

// MaxAnnotationResult holds every record tied for the maximum term count.
// An empty record set yields Count 0 and no records.
type MaxAnnotationResult struct {
	// Count is the maximum term-list length found.
	Count int
	// Records are all records whose term list has exactly Count entries.
	Records []AnnotationRecord
}

// TermExplanation is one resolved line of an ExplainTerms listing. Label
// resolution can fail per term without affecting its neighbours, so a line
// carries either a label or the error that prevented one.
type TermExplanation struct {
	TermID string
	Label  string
	// Err is non-nil when the label store had no entry for TermID.
	Err error
}

// String renders "term_id: label", substituting a placeholder when the
// label could not be resolved.
func (e TermExplanation) String() string {
	if e.Err != nil {
		return e.TermID + ": (label unavailable)"
	}
	return e.TermID + ": " + e.Label
}
