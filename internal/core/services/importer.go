package services

import (
	"context"
	"fmt"

	"github.com/casics/annotator/internal/core/domain"
	"github.com/casics/annotator/internal/core/ports/driven"
	"github.com/casics/annotator/internal/core/ports/driving"
	"github.com/casics/annotator/internal/logger"
)

// Ensure ImporterService implements the interface.
var _ driving.ImportService = (*ImporterService)(nil)

// ImporterService seeds repository entries from a code-hosting API into the
// record store. Imported entries carry no terms; annotation happens later
// in the editing UI.
type ImporterService struct {
	lister driven.RepoLister
	writer driven.RecordWriter
}

// NewImporterService creates a new import service.
func NewImporterService(lister driven.RepoLister, writer driven.RecordWriter) *ImporterService {
	return &ImporterService{
		lister: lister,
		writer: writer,
	}
}

// ImportOwner fetches the public repositories of a user or organisation and
// stores the ones not already present. Existing records are never
// overwritten: their annotations must survive a re-import.
func (s *ImporterService) ImportOwner(ctx context.Context, owner string) (int, error) {
	if owner == "" {
		return 0, domain.ErrInvalidInput
	}

	repos, err := s.lister.ListByOwner(ctx, owner)
	if err != nil {
		return 0, fmt.Errorf("listing repositories for %s: %w", owner, err)
	}
	logger.Debug("fetched %d repositories for %s", len(repos), owner)

	stored := 0
	for _, repo := range repos {
		exists, err := s.writer.Exists(ctx, repo.ID)
		if err != nil {
			return stored, fmt.Errorf("checking record %s: %w", repo.ID, err)
		}
		if exists {
			logger.Debug("skipping existing record %s", repo.ID)
			continue
		}
		if err := s.writer.Save(ctx, repo); err != nil {
			return stored, fmt.Errorf("storing record %s: %w", repo.ID, err)
		}
		stored++
	}
	return stored, nil
}
