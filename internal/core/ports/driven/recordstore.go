package driven

import (
	"context"

	"github.com/casics/annotator/internal/core/domain"
)

// RecordStore queries repository annotation records from the backing
// database. Records are read-only to this tool except for the import path,
// which seeds new unannotated entries.
type RecordStore interface {
	// Annotated returns every record whose term list is non-empty.
	// The result is a materialised snapshot: aggregation runs over it
	// without further store access. Query failures are reported as
	// domain.ErrRecordSourceUnavailable.
	Annotated(ctx context.Context) ([]domain.AnnotationRecord, error)

	// FindByTerm returns the records whose term list contains termID.
	FindByTerm(ctx context.Context, termID string) ([]domain.AnnotationRecord, error)
}

// RecordWriter adds entries to the record store. Only the import and seed
// paths write; the aggregation core never does.
type RecordWriter interface {
	// Save stores a record, replacing any existing record with the same ID.
	Save(ctx context.Context, record domain.AnnotationRecord) error

	// Exists reports whether a record with the given ID is present.
	Exists(ctx context.Context, id string) (bool, error)
}
