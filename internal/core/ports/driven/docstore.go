package driven

import (
	"context"

	"github.com/lodgeworks/stayform/internal/core/domain"
)

// DocumentStore persists documents. Implementations must return
// domain.ErrNotFound for unknown IDs and must not retain references to the
// documents they are given.
type DocumentStore interface {
	// Save stores or replaces a document.
	Save(ctx context.Context, doc *domain.Document) error

	// Get retrieves a document by ID.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// Delete removes a document. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error

	// List returns all documents, most recently modified first.
	List(ctx context.Context) ([]domain.Document, error)

	// ListByCategory returns the documents of one category, most recently
	// modified first.
	ListByCategory(ctx context.Context, category domain.Category) ([]domain.Document, error)
}
