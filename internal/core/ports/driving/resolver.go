package driving

import (
	"context"

	"github.com/casics/annotator/internal/core/domain"
)

// CredentialRequest carries everything one resolution needs: the vault key,
// a human-readable service label for prompts, whatever fields the caller
// supplied explicitly, and the defaults displayed when prompting.
type CredentialRequest struct {
	// ServiceID is the vault key for this service.
	ServiceID string
	// Label names the service in prompt text, e.g. "CASICS".
	Label string

	// Explicit fields. Empty (or 0 for Port) means "not supplied".
	User     string
	Password string
	Host     string
	Port     int

	// Defaults shown when prompting for host and port. User and password
	// prompts never have defaults.
	DefaultHost string
	DefaultPort int
}

// CredentialResolver produces complete, validated service credentials.
//
// Resolution tries three providers in fixed order: explicit arguments, the
// vault cache, then interactive prompting. It is idempotent: identical
// explicit inputs against an unchanged vault yield identical output.
type CredentialResolver interface {
	// Resolve produces a fully populated credential for the requested
	// service. Returns domain.ErrCredentialIncomplete if a required field
	// could not be obtained from any provider.
	Resolve(ctx context.Context, req CredentialRequest) (domain.ServiceCredential, error)

	// Reconcile compares the resolved credential against the vault's
	// current entry and rewrites the full tuple if any field differs or no
	// entry exists. Identical tuples cause zero vault writes. Callers that
	// want the vault left untouched simply skip this call.
	Reconcile(ctx context.Context, cred domain.ServiceCredential) error
}
