package driven

import (
	"context"

	"github.com/casics/annotator/internal/core/domain"
)

// RepoLister fetches repository entries from a code-hosting API so they can
// be seeded into the record store for later annotation. Listed entries carry
// no terms.
type RepoLister interface {
	// ListByOwner returns the public repositories of a user or organisation.
	ListByOwner(ctx context.Context, owner string) ([]domain.AnnotationRecord, error)
}
