package keyring

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/casics/annotator/internal/core/domain"
)

func TestVault_SaveGetRoundtrip(t *testing.T) {
	keyring.MockInit()
	vault := NewVault()
	ctx := context.Background()

	cred := domain.ServiceCredential{
		ServiceID: "org.casics.casics",
		User:      "bob",
		Password:  "pw",
		Host:      "localhost",
		Port:      27017,
	}

	require.NoError(t, vault.Save(ctx, cred))

	stored, err := vault.Get(ctx, "org.casics.casics")
	require.NoError(t, err)
	assert.Equal(t, cred, *stored)
}

func TestVault_Get_Missing(t *testing.T) {
	keyring.MockInit()
	vault := NewVault()

	_, err := vault.Get(context.Background(), "org.casics.locterms")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVault_Get_BackendUnavailable(t *testing.T) {
	keyring.MockInitWithError(errors.New("no keychain daemon"))
	t.Cleanup(keyring.MockInit)
	vault := NewVault()

	_, err := vault.Get(context.Background(), "org.casics.casics")
	assert.ErrorIs(t, err, domain.ErrVaultUnavailable)
}

func TestVault_Get_MalformedEntry(t *testing.T) {
	keyring.MockInit()
	require.NoError(t, keyring.Set("org.casics.casics", account, "not json"))
	vault := NewVault()

	_, err := vault.Get(context.Background(), "org.casics.casics")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVault_Save_EmptyServiceID(t *testing.T) {
	keyring.MockInit()
	vault := NewVault()

	err := vault.Save(context.Background(), domain.ServiceCredential{User: "bob"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVault_Delete(t *testing.T) {
	keyring.MockInit()
	vault := NewVault()
	ctx := context.Background()

	cred := domain.ServiceCredential{
		ServiceID: "svc", User: "bob", Password: "pw", Host: "h", Port: 1,
	}
	require.NoError(t, vault.Save(ctx, cred))
	require.NoError(t, vault.Delete(ctx, "svc"))

	_, err := vault.Get(ctx, "svc")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Deleting a missing entry is not an error
	assert.NoError(t, vault.Delete(ctx, "svc"))
}
