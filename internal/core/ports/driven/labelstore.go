package driven

import "context"

// LabelStore resolves controlled-vocabulary term identifiers to their
// human-readable labels. The label store and the record store are separate
// databases, so a term referenced by a record may legitimately have no
// label entry.
type LabelStore interface {
	// Label returns the label for a term identifier. A missing entry is a
	// normal, recoverable condition reported as domain.ErrTermNotFound.
	Label(ctx context.Context, termID string) (string, error)
}

// LabelWriter adds label entries. Only the seed path writes labels.
type LabelWriter interface {
	// SaveLabel stores a label for a term, replacing any existing one.
	SaveLabel(ctx context.Context, termID, label string) error
}
