// Package keyring implements driven.SecretVault on the operating system
// keychain via the zalando/go-keyring library. Each service's credential
// tuple is stored as one JSON blob under its service ID, so a save always
// replaces all four fields together.
package keyring

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/casics/annotator/internal/core/domain"
	"github.com/casics/annotator/internal/core/ports/driven"
)

// account is the keychain account name all entries are stored under.
// The vault key that matters is the service ID.
const account = "annotator"

// Ensure Vault implements the interface.
var _ driven.SecretVault = (*Vault)(nil)

// Vault stores service credentials in the OS keychain.
type Vault struct{}

// NewVault creates a new keychain-backed secret vault.
func NewVault() *Vault {
	return &Vault{}
}

// Get retrieves the stored credential tuple for a service. A missing entry
// maps to domain.ErrNotFound; any backend failure (no keychain daemon,
// locked keychain) maps to domain.ErrVaultUnavailable so callers treat it
// as a cache miss.
func (v *Vault) Get(_ context.Context, serviceID string) (*domain.ServiceCredential, error) {
	blob, err := keyring.Get(serviceID, account)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrVaultUnavailable, err)
	}

	var cred domain.ServiceCredential
	if err := json.Unmarshal([]byte(blob), &cred); err != nil {
		// A malformed entry is useless; report it as absent rather than
		// blocking resolution.
		return nil, domain.ErrNotFound
	}
	cred.ServiceID = serviceID
	return &cred, nil
}

// Save stores the full credential tuple, overwriting any prior entry.
func (v *Vault) Save(_ context.Context, cred domain.ServiceCredential) error {
	if cred.ServiceID == "" {
		return domain.ErrInvalidInput
	}

	blob, err := json.Marshal(cred)
	if err != nil {
		return fmt.Errorf("encoding credential for %s: %w", cred.ServiceID, err)
	}
	if err := keyring.Set(cred.ServiceID, account, string(blob)); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrVaultUnavailable, err)
	}
	return nil
}

// Delete removes the entry for a service. Deleting a missing entry is not
// an error.
func (v *Vault) Delete(_ context.Context, serviceID string) error {
	err := keyring.Delete(serviceID, account)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("%w: %v", domain.ErrVaultUnavailable, err)
	}
	return nil
}
