package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTermsCmd_Use(t *testing.T) {
	assert.Equal(t, "terms", termsCmd.Use)
}

func TestTermsCmd_EmptyStore(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand("terms")

	require.NoError(t, err)
	assert.Contains(t, out, "No annotated entries found.")
}

func TestTermsCmd_SortedByUsage(t *testing.T) {
	b, cleanup := setupTestServices()
	defer cleanup()
	seedTestRecords(t, b)

	out, err := executeCommand("terms")

	require.NoError(t, err)
	assert.Contains(t, out, "3: sh85042288 = Electronic data processing")
	assert.Contains(t, out, "2: sh85118553 = Software engineering")
	assert.Contains(t, out, "1: sh2002004605 = (label unavailable)")

	// Most used term first.
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "sh85042288")
}
