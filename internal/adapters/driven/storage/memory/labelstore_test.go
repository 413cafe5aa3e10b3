package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casics/annotator/internal/core/domain"
)

func TestLabelStore_Label(t *testing.T) {
	store := NewLabelStore()
	store.SetLabel("sh85029552", "Computer programs")

	label, err := store.Label(context.Background(), "sh85029552")
	require.NoError(t, err)
	assert.Equal(t, "Computer programs", label)
}

func TestLabelStore_Label_Missing(t *testing.T) {
	store := NewLabelStore()

	_, err := store.Label(context.Background(), "xyz")
	assert.ErrorIs(t, err, domain.ErrTermNotFound)
}
