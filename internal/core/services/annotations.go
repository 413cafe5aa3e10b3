package services

import (
	"context"
	"fmt"

	"github.com/casics/annotator/internal/core/domain"
	"github.com/casics/annotator/internal/core/ports/driven"
	"github.com/casics/annotator/internal/core/ports/driving"
)

// Ensure AnnotationsService implements the interface.
var _ driving.AnnotationService = (*AnnotationsService)(nil)

// AnnotationsService aggregates statistics over annotation records.
//
// The record-slice methods are pure functions over the snapshot returned by
// Annotated: the service keeps no cross-call state, so a single snapshot
// can feed any combination of listings in one invocation.
type AnnotationsService struct {
	records driven.RecordStore
	labels  driven.LabelStore
}

// NewAnnotationsService creates a new annotation aggregation service.
func NewAnnotationsService(records driven.RecordStore, labels driven.LabelStore) *AnnotationsService {
	return &AnnotationsService{
		records: records,
		labels:  labels,
	}
}

// Annotated fetches the snapshot of records carrying at least one term.
func (s *AnnotationsService) Annotated(ctx context.Context) ([]domain.AnnotationRecord, error) {
	records, err := s.records.Annotated(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching annotated records: %w", err)
	}
	return records, nil
}

// TotalCount returns the number of records in the snapshot.
func (s *AnnotationsService) TotalCount(records []domain.AnnotationRecord) int {
	return len(records)
}

// TermLabel resolves a single term identifier to its label. A missing label
// propagates as domain.ErrTermNotFound; no placeholder is substituted here.
func (s *AnnotationsService) TermLabel(ctx context.Context, termID string) (string, error) {
	label, err := s.labels.Label(ctx, termID)
	if err != nil {
		return "", fmt.Errorf("label for %s: %w", termID, err)
	}
	return label, nil
}

// ExplainTerms resolves labels for the given terms, preserving input order.
// Each term resolves independently: a failed lookup sets that line's Err and
// the remaining terms still resolve.
func (s *AnnotationsService) ExplainTerms(ctx context.Context, termIDs []string) []domain.TermExplanation {
	lines := make([]domain.TermExplanation, 0, len(termIDs))
	for _, termID := range termIDs {
		label, err := s.labels.Label(ctx, termID)
		lines = append(lines, domain.TermExplanation{
			TermID: termID,
			Label:  label,
			Err:    err,
		})
	}
	return lines
}

// MaxAnnotations finds the records with the most terms in a single pass.
// A strictly greater count resets the result set to that record alone; an
// equal count appends, so all tied records are retained.
func (s *AnnotationsService) MaxAnnotations(records []domain.AnnotationRecord) domain.MaxAnnotationResult {
	result := domain.MaxAnnotationResult{}
	for _, record := range records {
		n := len(record.Terms)
		switch {
		case n > result.Count:
			result.Count = n
			result.Records = []domain.AnnotationRecord{record}
		case n == result.Count && n > 0:
			result.Records = append(result.Records, record)
		}
	}
	return result
}

// TermStats counts term occurrences across the snapshot. Repeated terms
// within one record's list are counted each time they appear; the record
// store is trusted to de-duplicate if that is wanted.
func (s *AnnotationsService) TermStats(records []domain.AnnotationRecord) domain.TermUsage {
	counts := make(domain.TermUsage)
	for _, record := range records {
		for _, term := range record.Terms {
			counts[term]++
		}
	}
	return counts
}

// FindByTerm returns the records annotated with the given term.
func (s *AnnotationsService) FindByTerm(ctx context.Context, termID string) ([]domain.AnnotationRecord, error) {
	if termID == "" {
		return nil, domain.ErrInvalidInput
	}
	records, err := s.records.FindByTerm(ctx, termID)
	if err != nil {
		return nil, fmt.Errorf("finding records with term %s: %w", termID, err)
	}
	return records, nil
}
