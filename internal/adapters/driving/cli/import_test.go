package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casics/annotator/internal/core/domain"
	"github.com/casics/annotator/internal/core/services"
)

// stubRepoLister returns a fixed repository list for any owner.
type stubRepoLister struct {
	repos []domain.AnnotationRecord
}

func (s *stubRepoLister) ListByOwner(_ context.Context, _ string) ([]domain.AnnotationRecord, error) {
	return s.repos, nil
}

func TestImportCmd_Use(t *testing.T) {
	assert.Equal(t, "import [owner]", importCmd.Use)
}

func TestImportCmd_RequiresOwner(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand("import")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestImportCmd_HasTokenFlag(t *testing.T) {
	flag := importCmd.Flags().Lookup("token")
	require.NotNil(t, flag, "token flag should exist")
}

func TestImportCmd_StoresNewEntries(t *testing.T) {
	b, cleanup := setupTestServices()
	defer cleanup()

	lister := &stubRepoLister{repos: []domain.AnnotationRecord{
		{ID: "3001", Owner: "casics", Name: "annotator"},
		{ID: "3002", Owner: "casics", Name: "extractor"},
	}}
	importService = services.NewImporterService(lister, b.records)

	out, err := executeCommand("import", "casics")

	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 new entries for casics.")

	exists, err := b.records.Exists(context.Background(), "3001")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestImportCmd_SkipsExistingEntries(t *testing.T) {
	b, cleanup := setupTestServices()
	defer cleanup()

	// An already-annotated entry keeps its terms across a re-import.
	require.NoError(t, b.records.Save(context.Background(), domain.AnnotationRecord{
		ID: "3001", Owner: "casics", Name: "annotator", Terms: []string{"sh85118553"},
	}))

	lister := &stubRepoLister{repos: []domain.AnnotationRecord{
		{ID: "3001", Owner: "casics", Name: "annotator"},
		{ID: "3002", Owner: "casics", Name: "extractor"},
	}}
	importService = services.NewImporterService(lister, b.records)

	out, err := executeCommand("import", "casics")

	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 new entries for casics.")

	records, err := b.records.Annotated(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"sh85118553"}, records[0].Terms)
}
