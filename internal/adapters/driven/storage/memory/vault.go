package memory

import (
	"context"
	"sync"

	"github.com/casics/annotator/internal/core/domain"
	"github.com/casics/annotator/internal/core/ports/driven"
)

// Ensure Vault implements the interface.
var _ driven.SecretVault = (*Vault)(nil)

// Vault is an in-memory implementation of driven.SecretVault.
// Credentials live only for the process lifetime, which is all tests and
// keyring-less runs need.
type Vault struct {
	mu    sync.RWMutex
	creds map[string]domain.ServiceCredential
}

// NewVault creates a new in-memory secret vault.
func NewVault() *Vault {
	return &Vault{
		creds: make(map[string]domain.ServiceCredential),
	}
}

// Get retrieves the stored credential tuple for a service.
func (v *Vault) Get(_ context.Context, serviceID string) (*domain.ServiceCredential, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	cred, ok := v.creds[serviceID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &cred, nil
}

// Save stores the full credential tuple, overwriting any prior entry.
func (v *Vault) Save(_ context.Context, cred domain.ServiceCredential) error {
	if cred.ServiceID == "" {
		return domain.ErrInvalidInput
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.creds[cred.ServiceID] = cred
	return nil
}

// Delete removes the entry for a service.
func (v *Vault) Delete(_ context.Context, serviceID string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.creds, serviceID)
	return nil
}
