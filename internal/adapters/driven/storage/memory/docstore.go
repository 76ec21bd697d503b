package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/lodgeworks/stayform/internal/core/domain"
	"github.com/lodgeworks/stayform/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
// Documents are deep-copied on the way in and out so callers can keep
// mutating their working copies without aliasing the store.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]domain.Document
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		documents: make(map[string]domain.Document),
	}
}

// Save stores or replaces a document.
func (s *DocumentStore) Save(_ context.Context, doc *domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[doc.ID] = cloneDocument(*doc)
	return nil
}

// Get retrieves a document by ID.
func (s *DocumentStore) Get(_ context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := cloneDocument(doc)
	return &clone, nil
}

// Delete removes a document. Deleting an unknown ID is not an error.
func (s *DocumentStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.documents, id)
	return nil
}

// List returns all documents, most recently modified first.
func (s *DocumentStore) List(_ context.Context) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Document, 0, len(s.documents))
	for id := range s.documents {
		result = append(result, cloneDocument(s.documents[id]))
	}
	sortByModified(result)
	return result, nil
}

// ListByCategory returns one category's documents, most recently modified
// first.
func (s *DocumentStore) ListByCategory(
	_ context.Context, category domain.Category,
) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.Document
	for id := range s.documents {
		if s.documents[id].Category == category {
			result = append(result, cloneDocument(s.documents[id]))
		}
	}
	sortByModified(result)
	return result, nil
}

// sortByModified orders newest first, ID as a stable tiebreak so equal
// timestamps list deterministically.
func sortByModified(docs []domain.Document) {
	sort.Slice(docs, func(i, j int) bool {
		if !docs[i].LastModified.Equal(docs[j].LastModified) {
			return docs[i].LastModified.After(docs[j].LastModified)
		}
		return docs[i].ID < docs[j].ID
	})
}

func cloneDocument(doc domain.Document) domain.Document {
	clone := doc
	clone.Fields = make([]domain.Field, len(doc.Fields))
	for i, f := range doc.Fields {
		clone.Fields[i] = cloneField(f)
	}
	return clone
}

func cloneField(f domain.Field) domain.Field {
	clone := f
	if f.Entries != nil {
		clone.Entries = append([]domain.POIEntry(nil), f.Entries...)
	}
	if f.Languages != nil {
		clone.Languages = append([]string(nil), f.Languages...)
	}
	return clone
}
