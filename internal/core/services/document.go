package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lodgeworks/stayform/internal/core/domain"
	"github.com/lodgeworks/stayform/internal/core/ports/driven"
	"github.com/lodgeworks/stayform/internal/core/ports/driving"
	"github.com/lodgeworks/stayform/internal/core/taxonomy"
	"github.com/lodgeworks/stayform/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DefaultSource labels documents created by hand in this tool.
const DefaultSource = "manual entry"

// DocumentService manages the document lifecycle.
type DocumentService struct {
	store driven.DocumentStore
	now   func() time.Time
}

// NewDocumentService creates a new document service.
func NewDocumentService(store driven.DocumentStore) *DocumentService {
	return &DocumentService{
		store: store,
		now:   time.Now,
	}
}

// Create makes a draft document seeded with the category's built-in field
// template. Values start empty and completeness starts at zero regardless
// of the template; the first save computes the real score.
func (s *DocumentService) Create(
	ctx context.Context, category domain.Category, title string,
) (*domain.Document, error) {
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, category)
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("document title: %w", domain.ErrBlankName)
	}

	doc := &domain.Document{
		ID:           uuid.NewString(),
		Title:        title,
		Category:     category,
		Fields:       taxonomy.FieldsTemplate(category),
		Status:       domain.StatusDraft,
		Source:       DefaultSource,
		LastModified: s.now(),
		Completeness: 0,
	}

	if err := s.store.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("creating document: %w", err)
	}

	logger.Debug("Created %s document %s (%d template fields)",
		category, doc.ID, len(doc.Fields))
	return doc, nil
}

// Get retrieves a document by ID.
func (s *DocumentService) Get(ctx context.Context, id string) (*domain.Document, error) {
	return s.store.Get(ctx, id)
}

// List returns all documents, most recently modified first.
func (s *DocumentService) List(ctx context.Context) ([]domain.Document, error) {
	return s.store.List(ctx)
}

// ListByCategory returns one category's documents.
func (s *DocumentService) ListByCategory(
	ctx context.Context, category domain.Category,
) ([]domain.Document, error) {
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, category)
	}
	return s.store.ListByCategory(ctx, category)
}

// Save recomputes completeness, applies the status rule and persists. With
// required fields missing and force false it writes nothing and returns
// *domain.MissingRequiredError; force true saves regardless.
func (s *DocumentService) Save(
	ctx context.Context, doc *domain.Document, force bool,
) (*domain.Document, error) {
	logger.Section("Document Save")
	logger.Debug("Saving document %s (force=%t)", doc.ID, force)

	missing := domain.MissingFields(doc.Fields)
	if len(missing) > 0 && !force {
		logger.Debug("Save blocked, %d required fields missing", len(missing))
		return nil, &domain.MissingRequiredError{Fields: missing}
	}

	saved := *doc
	saved.Fields = append([]domain.Field(nil), doc.Fields...)
	saved.Completeness = domain.Completeness(saved.Fields)
	saved.Status = saved.NextStatus(len(missing))
	saved.LastModified = s.now()

	if err := s.store.Save(ctx, &saved); err != nil {
		return nil, fmt.Errorf("saving document %s: %w", doc.ID, err)
	}

	logger.Debug("Saved document %s: status=%s completeness=%d",
		saved.ID, saved.Status, saved.Completeness)
	return &saved, nil
}

// QuickConfirm marks a document confirmed without opening the editor.
// Rejected with *domain.MissingRequiredError while required fields are
// missing; quick-confirming is not a way around the completeness rule.
func (s *DocumentService) QuickConfirm(ctx context.Context, id string) (*domain.Document, error) {
	doc, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	missing := domain.MissingFields(doc.Fields)
	if len(missing) > 0 {
		return nil, &domain.MissingRequiredError{Fields: missing}
	}

	doc.Status = domain.StatusConfirmed
	doc.Completeness = domain.Completeness(doc.Fields)
	doc.LastModified = s.now()

	if err := s.store.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("confirming document %s: %w", id, err)
	}
	return doc, nil
}

// Rename changes the title without touching fields, status or the modified
// timestamp, so renaming does not reorder the document list.
func (s *DocumentService) Rename(ctx context.Context, id, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("document title: %w", domain.ErrBlankName)
	}

	doc, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	doc.Title = title

	if err := s.store.Save(ctx, doc); err != nil {
		return fmt.Errorf("renaming document %s: %w", id, err)
	}
	return nil
}

// Delete removes a document.
func (s *DocumentService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting document %s: %w", id, err)
	}
	logger.Debug("Deleted document %s", id)
	return nil
}
