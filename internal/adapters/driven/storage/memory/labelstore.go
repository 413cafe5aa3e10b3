package memory

import (
	"context"
	"sync"

	"github.com/casics/annotator/internal/core/domain"
	"github.com/casics/annotator/internal/core/ports/driven"
)

// Ensure LabelStore implements the interfaces.
var (
	_ driven.LabelStore  = (*LabelStore)(nil)
	_ driven.LabelWriter = (*LabelStore)(nil)
)

// LabelStore is an in-memory implementation of driven.LabelStore.
type LabelStore struct {
	mu     sync.RWMutex
	labels map[string]string
}

// NewLabelStore creates a new in-memory label store.
func NewLabelStore() *LabelStore {
	return &LabelStore{
		labels: make(map[string]string),
	}
}

// SetLabel stores a label for a term identifier.
func (s *LabelStore) SetLabel(termID, label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.labels[termID] = label
}

// SaveLabel stores a label for a term identifier.
func (s *LabelStore) SaveLabel(_ context.Context, termID, label string) error {
	s.SetLabel(termID, label)
	return nil
}

// Label returns the label for a term identifier.
func (s *LabelStore) Label(_ context.Context, termID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	label, ok := s.labels[termID]
	if !ok {
		return "", domain.ErrTermNotFound
	}
	return label, nil
}
