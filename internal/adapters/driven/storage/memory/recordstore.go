package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/casics/annotator/internal/core/domain"
	"github.com/casics/annotator/internal/core/ports/driven"
)

// Ensure RecordStore implements the interfaces.
var (
	_ driven.RecordStore  = (*RecordStore)(nil)
	_ driven.RecordWriter = (*RecordStore)(nil)
)

// RecordStore is an in-memory implementation of driven.RecordStore and
// driven.RecordWriter.
type RecordStore struct {
	mu      sync.RWMutex
	records map[string]domain.AnnotationRecord
}

// NewRecordStore creates a new in-memory record store.
func NewRecordStore() *RecordStore {
	return &RecordStore{
		records: make(map[string]domain.AnnotationRecord),
	}
}

// Annotated returns every record whose term list is non-empty,
// sorted by ID so snapshots are deterministic.
func (s *RecordStore) Annotated(_ context.Context) ([]domain.AnnotationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.AnnotationRecord, 0, len(s.records))
	for _, record := range s.records {
		if len(record.Terms) > 0 {
			result = append(result, record)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// FindByTerm returns the records whose term list contains termID.
func (s *RecordStore) FindByTerm(_ context.Context, termID string) ([]domain.AnnotationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []domain.AnnotationRecord
	for _, record := range s.records {
		for _, term := range record.Terms {
			if term == termID {
				result = append(result, record)
				break
			}
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Save stores a record, replacing any existing record with the same ID.
func (s *RecordStore) Save(_ context.Context, record domain.AnnotationRecord) error {
	if record.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.ID] = record
	return nil
}

// Exists reports whether a record with the given ID is present.
func (s *RecordStore) Exists(_ context.Context, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.records[id]
	return ok, nil
}
