package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCmd_Use(t *testing.T) {
	assert.Equal(t, "find [term-id]", findCmd.Use)
}

func TestFindCmd_RequiresExactlyOneArg(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand("find")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestFindCmd_ReturnsMatchingEntries(t *testing.T) {
	b, cleanup := setupTestServices()
	defer cleanup()
	seedTestRecords(t, b)

	out, err := executeCommand("find", "sh85118553")

	require.NoError(t, err)
	assert.Contains(t, out, "Entries annotated with sh85118553 (Software engineering):")
	assert.Contains(t, out, "alice/widget (1001)")
	assert.Contains(t, out, "carol/deploy (1003)")
	assert.NotContains(t, out, "bob/parser")
	assert.Contains(t, out, "Total: 2")
}

func TestFindCmd_UnknownTerm(t *testing.T) {
	b, cleanup := setupTestServices()
	defer cleanup()
	seedTestRecords(t, b)

	out, err := executeCommand("find", "sh00000000")

	require.NoError(t, err)
	assert.Contains(t, out, `No entries annotated with "sh00000000".`)
}

func TestFindCmd_UnlabelledTermStillListsEntries(t *testing.T) {
	b, cleanup := setupTestServices()
	defer cleanup()
	seedTestRecords(t, b)

	out, err := executeCommand("find", "sh2002004605")

	require.NoError(t, err)
	assert.Contains(t, out, "Entries annotated with sh2002004605:")
	assert.Contains(t, out, "carol/deploy (1003)")
}
