package driving

import (
	"context"

	"github.com/lodgeworks/stayform/internal/core/domain"
)

// GapStats aggregates the knowledge-gap backlog by lifecycle status.
type GapStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Resolved int `json:"resolved"`
	Ignored  int `json:"ignored"`
}

// GapSelection is a three-level classification choice for a gap. Deeper
// levels are only meaningful when the levels above them are set.
type GapSelection struct {
	Category   domain.Category
	Section    string
	Subsection string
}

// GapService manages the knowledge-gap backlog: questions guests asked that
// the documents could not answer, waiting to be resolved into structured
// data or dismissed.
type GapService interface {
	// List returns gaps in insertion order. A zero filter returns all;
	// otherwise only gaps with the given status.
	List(ctx context.Context, filter domain.GapStatus) ([]*domain.KnowledgeGap, error)

	// Get returns one gap by ID, or domain.ErrNotFound.
	Get(ctx context.Context, id string) (*domain.KnowledgeGap, error)

	// Resolve marks a pending gap resolved with the given answer text.
	// Terminal gaps are rejected with domain.ErrGapTerminal.
	Resolve(ctx context.Context, id, resolution string) (*domain.KnowledgeGap, error)

	// Ignore marks a pending gap ignored. Terminal gaps are rejected with
	// domain.ErrGapTerminal.
	Ignore(ctx context.Context, id string) (*domain.KnowledgeGap, error)

	// UpdateCategory overrides the gap's classification. It works in any
	// status so records can be recategorised after the fact.
	UpdateCategory(ctx context.Context, id string, sel GapSelection) (*domain.KnowledgeGap, error)

	// Stats returns the backlog counts by status.
	Stats(ctx context.Context) (GapStats, error)

	// SectionOptions lists the classification sections for a category.
	SectionOptions(category domain.Category) []string

	// SubsectionOptions lists the subsections for a category and section.
	SubsectionOptions(category domain.Category, section string) []string

	// NormalizeSelection cascades resets after editing: changing section
	// clears the subsection, and a section or subsection its new parent
	// does not offer is cleared rather than kept stale.
	NormalizeSelection(prev, next GapSelection) GapSelection
}
