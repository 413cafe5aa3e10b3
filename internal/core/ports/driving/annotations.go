package driving

import (
	"context"

	"github.com/casics/annotator/internal/core/domain"
)

// AnnotationService aggregates statistics over repository annotation
// records. The query methods taking a record slice are pure functions over
// the snapshot returned by Annotated; the service holds no cross-call state.
type AnnotationService interface {
	// Annotated fetches the snapshot of records carrying at least one term.
	Annotated(ctx context.Context) ([]domain.AnnotationRecord, error)

	// TotalCount returns the number of records in the snapshot.
	TotalCount(records []domain.AnnotationRecord) int

	// TermLabel resolves a single term identifier to its label.
	// Returns domain.ErrTermNotFound when the label store has no entry;
	// callers decide whether to substitute a placeholder or abort.
	TermLabel(ctx context.Context, termID string) (string, error)

	// ExplainTerms resolves labels for the given terms, preserving input
	// order. Each term resolves independently: a missing label yields a
	// line with its error set and does not prevent resolving the others.
	ExplainTerms(ctx context.Context, termIDs []string) []domain.TermExplanation

	// MaxAnnotations returns the maximum term-list length in the snapshot
	// and every record tied for it.
	MaxAnnotations(records []domain.AnnotationRecord) domain.MaxAnnotationResult

	// TermStats counts term occurrences across the snapshot. A term
	// appearing twice in one record's list counts twice.
	TermStats(records []domain.AnnotationRecord) domain.TermUsage

	// FindByTerm returns the records annotated with the given term.
	FindByTerm(ctx context.Context, termID string) ([]domain.AnnotationRecord, error)
}
