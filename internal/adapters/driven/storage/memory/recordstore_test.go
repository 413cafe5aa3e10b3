package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casics/annotator/internal/core/domain"
)

func TestRecordStore_Annotated_FiltersUnannotated(t *testing.T) {
	store := NewRecordStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.AnnotationRecord{
		ID: "r1", Owner: "casics", Name: "extractor", Terms: []string{"a", "b"},
	}))
	require.NoError(t, store.Save(ctx, domain.AnnotationRecord{
		ID: "r2", Owner: "casics", Name: "spiral", // no terms
	}))
	require.NoError(t, store.Save(ctx, domain.AnnotationRecord{
		ID: "r3", Owner: "casics", Name: "annotator", Terms: []string{"a"},
	}))

	annotated, err := store.Annotated(ctx)
	require.NoError(t, err)

	require.Len(t, annotated, 2)
	assert.Equal(t, "r1", annotated[0].ID)
	assert.Equal(t, "r3", annotated[1].ID)
}

func TestRecordStore_Annotated_Empty(t *testing.T) {
	store := NewRecordStore()

	annotated, err := store.Annotated(context.Background())
	require.NoError(t, err)
	assert.Empty(t, annotated)
}

func TestRecordStore_FindByTerm(t *testing.T) {
	store := NewRecordStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.AnnotationRecord{
		ID: "r1", Terms: []string{"a", "b"},
	}))
	require.NoError(t, store.Save(ctx, domain.AnnotationRecord{
		ID: "r2", Terms: []string{"c"},
	}))
	require.NoError(t, store.Save(ctx, domain.AnnotationRecord{
		ID: "r3", Terms: []string{"b"},
	}))

	found, err := store.FindByTerm(ctx, "b")
	require.NoError(t, err)

	require.Len(t, found, 2)
	assert.Equal(t, "r1", found[0].ID)
	assert.Equal(t, "r3", found[1].ID)

	none, err := store.FindByTerm(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRecordStore_SaveExists(t *testing.T) {
	store := NewRecordStore()
	ctx := context.Background()

	exists, err := store.Exists(ctx, "r1")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, store.Save(ctx, domain.AnnotationRecord{ID: "r1", Owner: "o", Name: "n"}))

	exists, err = store.Exists(ctx, "r1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRecordStore_Save_EmptyID(t *testing.T) {
	store := NewRecordStore()

	err := store.Save(context.Background(), domain.AnnotationRecord{Owner: "o", Name: "n"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
