package driving

import (
	"context"

	"github.com/lodgeworks/stayform/internal/core/domain"
)

// DocumentService manages the document lifecycle. Completeness and status
// are computed at save time only; between saves a document carries the
// values of its last save.
type DocumentService interface {
	// Create makes a draft document seeded with the category's built-in
	// field template, empty values, completeness 0.
	Create(ctx context.Context, category domain.Category, title string) (*domain.Document, error)

	// Get retrieves a document by ID.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// List returns all documents, most recently modified first.
	List(ctx context.Context) ([]domain.Document, error)

	// ListByCategory returns one category's documents.
	ListByCategory(ctx context.Context, category domain.Category) ([]domain.Document, error)

	// Save recomputes completeness, applies the status rule and persists.
	// With required fields missing and force false it writes nothing and
	// returns *domain.MissingRequiredError so the caller can ask "save
	// anyway?"; force true saves regardless.
	Save(ctx context.Context, doc *domain.Document, force bool) (*domain.Document, error)

	// QuickConfirm marks a document confirmed without editing, allowed
	// only when no required fields are missing.
	QuickConfirm(ctx context.Context, id string) (*domain.Document, error)

	// Rename changes the title without touching fields or status.
	Rename(ctx context.Context, id, title string) error

	// Delete removes a document.
	Delete(ctx context.Context, id string) error
}
