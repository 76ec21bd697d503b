package memory

import (
	"context"
	"sync"

	"github.com/lodgeworks/stayform/internal/core/domain"
	"github.com/lodgeworks/stayform/internal/core/ports/driven"
)

// Ensure GapStore implements the interface.
var _ driven.GapStore = (*GapStore)(nil)

// GapStore is an in-memory implementation of driven.GapStore. Insertion
// order is preserved for listing.
type GapStore struct {
	mu    sync.RWMutex
	gaps  map[string]domain.KnowledgeGap
	order []string
}

// NewGapStore creates a new in-memory gap store.
func NewGapStore() *GapStore {
	return &GapStore{
		gaps: make(map[string]domain.KnowledgeGap),
	}
}

// Save stores or replaces a gap record.
func (s *GapStore) Save(_ context.Context, gap *domain.KnowledgeGap) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.gaps[gap.ID]; !ok {
		s.order = append(s.order, gap.ID)
	}
	s.gaps[gap.ID] = cloneGap(*gap)
	return nil
}

// Get retrieves a gap by ID.
func (s *GapStore) Get(_ context.Context, id string) (*domain.KnowledgeGap, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	gap, ok := s.gaps[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := cloneGap(gap)
	return &clone, nil
}

// List returns all gaps in insertion order.
func (s *GapStore) List(_ context.Context) ([]domain.KnowledgeGap, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.KnowledgeGap, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, cloneGap(s.gaps[id]))
	}
	return result, nil
}

func cloneGap(gap domain.KnowledgeGap) domain.KnowledgeGap {
	clone := gap
	if gap.Transcript != nil {
		clone.Transcript = append([]domain.TranscriptTurn(nil), gap.Transcript...)
	}
	return clone
}
