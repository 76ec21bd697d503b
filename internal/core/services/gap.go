package services

import (
	"context"
	"fmt"
	"time"

	"github.com/lodgeworks/stayform/internal/core/domain"
	"github.com/lodgeworks/stayform/internal/core/ports/driven"
	"github.com/lodgeworks/stayform/internal/core/ports/driving"
	"github.com/lodgeworks/stayform/internal/core/taxonomy"
	"github.com/lodgeworks/stayform/internal/logger"
)

// Ensure GapService implements the interface.
var _ driving.GapService = (*GapService)(nil)

// GapService manages the knowledge-gap backlog.
type GapService struct {
	store driven.GapStore
	now   func() time.Time
}

// NewGapService creates a new gap service.
func NewGapService(store driven.GapStore) *GapService {
	return &GapService{
		store: store,
		now:   time.Now,
	}
}

// List returns gaps in insertion order, optionally filtered by status.
func (s *GapService) List(
	ctx context.Context, filter domain.GapStatus,
) ([]*domain.KnowledgeGap, error) {
	if filter != "" && !filter.IsValid() {
		return nil, fmt.Errorf("%w: unknown gap status %q", domain.ErrInvalidInput, filter)
	}

	gaps, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing gaps: %w", err)
	}

	out := make([]*domain.KnowledgeGap, 0, len(gaps))
	for i := range gaps {
		if filter != "" && gaps[i].Status != filter {
			continue
		}
		g := gaps[i]
		out = append(out, &g)
	}
	return out, nil
}

// Get returns one gap by ID.
func (s *GapService) Get(ctx context.Context, id string) (*domain.KnowledgeGap, error) {
	return s.store.Get(ctx, id)
}

// Resolve marks a pending gap resolved with the given answer text.
func (s *GapService) Resolve(
	ctx context.Context, id, resolution string,
) (*domain.KnowledgeGap, error) {
	gap, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if gap.Status.IsTerminal() {
		return nil, fmt.Errorf("gap %s is already %s: %w", id, gap.Status, domain.ErrGapTerminal)
	}

	gap.Status = domain.GapResolved
	gap.Resolution = resolution
	gap.ResolvedAt = s.now()
	gap.ResolvedBy = "manual"

	if err := s.store.Save(ctx, gap); err != nil {
		return nil, fmt.Errorf("resolving gap %s: %w", id, err)
	}
	logger.Debug("Resolved gap %s", id)
	return gap, nil
}

// Ignore marks a pending gap ignored.
func (s *GapService) Ignore(ctx context.Context, id string) (*domain.KnowledgeGap, error) {
	gap, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if gap.Status.IsTerminal() {
		return nil, fmt.Errorf("gap %s is already %s: %w", id, gap.Status, domain.ErrGapTerminal)
	}

	gap.Status = domain.GapIgnored

	if err := s.store.Save(ctx, gap); err != nil {
		return nil, fmt.Errorf("ignoring gap %s: %w", id, err)
	}
	logger.Debug("Ignored gap %s", id)
	return gap, nil
}

// UpdateCategory overrides the gap's classification. The suggested values
// stay untouched; the override lands in the confirmed slots. Allowed in any
// status so records can be recategorised after the fact.
func (s *GapService) UpdateCategory(
	ctx context.Context, id string, sel driving.GapSelection,
) (*domain.KnowledgeGap, error) {
	if sel.Category != "" && !sel.Category.IsValid() {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, sel.Category)
	}
	if sel.Section != "" && !contains(s.SectionOptions(sel.Category), sel.Section) {
		return nil, fmt.Errorf("%w: %q is not a section of %s",
			domain.ErrInvalidInput, sel.Section, sel.Category)
	}
	if sel.Subsection != "" &&
		!contains(s.SubsectionOptions(sel.Category, sel.Section), sel.Subsection) {
		return nil, fmt.Errorf("%w: %q is not a subsection of %s / %s",
			domain.ErrInvalidInput, sel.Subsection, sel.Category, sel.Section)
	}

	gap, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	gap.ConfirmedCategory = sel.Category
	gap.ConfirmedSection = sel.Section
	gap.ConfirmedSubsection = sel.Subsection

	if err := s.store.Save(ctx, gap); err != nil {
		return nil, fmt.Errorf("reclassifying gap %s: %w", id, err)
	}
	logger.Debug("Reclassified gap %s as %s / %s / %s",
		id, sel.Category, sel.Section, sel.Subsection)
	return gap, nil
}

// Stats returns the backlog counts by status.
func (s *GapService) Stats(ctx context.Context) (driving.GapStats, error) {
	gaps, err := s.store.List(ctx)
	if err != nil {
		return driving.GapStats{}, fmt.Errorf("listing gaps: %w", err)
	}

	stats := driving.GapStats{Total: len(gaps)}
	for _, g := range gaps {
		switch g.Status {
		case domain.GapPending:
			stats.Pending++
		case domain.GapResolved:
			stats.Resolved++
		case domain.GapIgnored:
			stats.Ignored++
		}
	}
	return stats, nil
}

// SectionOptions lists the classification sections for a category.
func (s *GapService) SectionOptions(category domain.Category) []string {
	return taxonomy.BuiltinSectionNames(category)
}

// SubsectionOptions lists the subsections for a category and section.
func (s *GapService) SubsectionOptions(category domain.Category, section string) []string {
	return taxonomy.SubsectionsFor(category, section)
}

// NormalizeSelection cascades resets after an edit. A section or
// subsection survives a change above it only while its new parent still
// offers it; anything the parent no longer offers is cleared rather than
// kept stale. Changing section always clears the subsection.
func (s *GapService) NormalizeSelection(prev, next driving.GapSelection) driving.GapSelection {
	if next.Category == prev.Category && next.Section != prev.Section {
		next.Subsection = ""
	}

	if next.Section != "" && !contains(s.SectionOptions(next.Category), next.Section) {
		next.Section = ""
		next.Subsection = ""
	}
	if next.Subsection != "" &&
		!contains(s.SubsectionOptions(next.Category, next.Section), next.Subsection) {
		next.Subsection = ""
	}
	return next
}
