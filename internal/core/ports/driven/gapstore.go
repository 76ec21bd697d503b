package driven

import (
	"context"

	"github.com/lodgeworks/stayform/internal/core/domain"
)

// GapStore persists knowledge gap records.
type GapStore interface {
	// Save stores or replaces a gap record.
	Save(ctx context.Context, gap *domain.KnowledgeGap) error

	// Get retrieves a gap by ID. Returns domain.ErrNotFound if unknown.
	Get(ctx context.Context, id string) (*domain.KnowledgeGap, error)

	// List returns all gaps in insertion order.
	List(ctx context.Context) ([]domain.KnowledgeGap, error)
}
