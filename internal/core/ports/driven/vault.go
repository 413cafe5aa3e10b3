package driven

import (
	"context"

	"github.com/casics/annotator/internal/core/domain"
)

// SecretVault persists service credentials in an opaque key/value secret
// store, keyed by service ID. The vault is a cache: absence of an entry and
// absence of the vault facility itself are both normal conditions.
type SecretVault interface {
	// Get retrieves the stored credential tuple for a service.
	// Returns domain.ErrNotFound if no entry exists and
	// domain.ErrVaultUnavailable if the backend cannot be reached.
	Get(ctx context.Context, serviceID string) (*domain.ServiceCredential, error)

	// Save stores the full credential tuple, overwriting any prior entry.
	// All four fields are written together; there is no partial update.
	Save(ctx context.Context, cred domain.ServiceCredential) error

	// Delete removes the entry for a service. Deleting a missing entry
	// is not an error.
	Delete(ctx context.Context, serviceID string) error
}
