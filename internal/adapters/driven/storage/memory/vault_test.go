package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casics/annotator/internal/core/domain"
)

func TestNewVault(t *testing.T) {
	vault := NewVault()
	require.NotNil(t, vault)
	assert.NotNil(t, vault.creds)
}

func TestVault_SaveGet(t *testing.T) {
	vault := NewVault()
	ctx := context.Background()

	cred := domain.ServiceCredential{
		ServiceID: "org.casics.casics",
		User:      "bob",
		Password:  "pw",
		Host:      "localhost",
		Port:      27017,
	}

	err := vault.Save(ctx, cred)
	require.NoError(t, err)

	stored, err := vault.Get(ctx, "org.casics.casics")
	require.NoError(t, err)
	assert.Equal(t, cred, *stored)
}

func TestVault_Get_Missing(t *testing.T) {
	vault := NewVault()

	_, err := vault.Get(context.Background(), "org.casics.locterms")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVault_Save_EmptyServiceID(t *testing.T) {
	vault := NewVault()

	err := vault.Save(context.Background(), domain.ServiceCredential{User: "bob"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVault_Save_Overwrites(t *testing.T) {
	vault := NewVault()
	ctx := context.Background()

	first := domain.ServiceCredential{ServiceID: "svc", User: "bob", Password: "pw", Host: "a", Port: 1}
	second := domain.ServiceCredential{ServiceID: "svc", User: "alice", Password: "new", Host: "b", Port: 2}

	require.NoError(t, vault.Save(ctx, first))
	require.NoError(t, vault.Save(ctx, second))

	stored, err := vault.Get(ctx, "svc")
	require.NoError(t, err)
	assert.Equal(t, second, *stored)
}

func TestVault_Delete(t *testing.T) {
	vault := NewVault()
	ctx := context.Background()

	cred := domain.ServiceCredential{ServiceID: "svc", User: "bob", Password: "pw", Host: "h", Port: 1}
	require.NoError(t, vault.Save(ctx, cred))

	err := vault.Delete(ctx, "svc")
	require.NoError(t, err)

	_, err = vault.Get(ctx, "svc")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Deleting a missing entry is not an error
	assert.NoError(t, vault.Delete(ctx, "svc"))
}
