package driving

import "context"

// ImportService seeds repository entries from a code-hosting API into the
// record store so they can be annotated later.
type ImportService interface {
	// ImportOwner fetches the public repositories of a user or organisation
	// and stores the ones not already present. Returns the number of new
	// entries stored.
	ImportOwner(ctx context.Context, owner string) (int, error)
}
