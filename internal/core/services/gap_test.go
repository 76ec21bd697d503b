package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lodgeworks/stayform/internal/adapters/driven/storage/memory"
	"github.com/lodgeworks/stayform/internal/core/domain"
	"github.com/lodgeworks/stayform/internal/core/ports/driving"
)

func newGapService(t *testing.T, gaps ...*domain.KnowledgeGap) (*GapService, *memory.GapStore) {
	t.Helper()
	store := memory.NewGapStore()
	for _, g := range gaps {
		require.NoError(t, store.Save(context.Background(), g))
	}
	return NewGapService(store), store
}

func pendingGap(id string) *domain.KnowledgeGap {
	return &domain.KnowledgeGap{
		ID:                id,
		Question:          "Is there a shuttle?",
		Status:            domain.GapPending,
		Priority:          domain.PriorityHigh,
		SuggestedCategory: domain.CategoryFacility,
		SuggestedSection:  "Transport Services",
		Recommendation:    domain.RecommendationAI,
	}
}

func TestGapService_ListAndFilter(t *testing.T) {
	resolved := pendingGap("b")
	resolved.Status = domain.GapResolved
	svc, _ := newGapService(t, pendingGap("a"), resolved, pendingGap("c"))
	ctx := context.Background()

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].ID)

	pending, err := svc.List(ctx, domain.GapPending)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "a", pending[0].ID)
	assert.Equal(t, "c", pending[1].ID)

	_, err = svc.List(ctx, domain.GapStatus("archived"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGapService_Resolve(t *testing.T) {
	svc, store := newGapService(t, pendingGap("gap-1"))
	ctx := context.Background()

	fixed := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	gap, err := svc.Resolve(ctx, "gap-1", "Shuttle runs hourly from 06:00.")
	require.NoError(t, err)
	assert.Equal(t, domain.GapResolved, gap.Status)
	assert.Equal(t, "Shuttle runs hourly from 06:00.", gap.Resolution)
	assert.True(t, gap.ResolvedAt.Equal(fixed))

	stored, err := store.Get(ctx, "gap-1")
	require.NoError(t, err)
	assert.Equal(t, domain.GapResolved, stored.Status)

	// Terminal, no way back.
	_, err = svc.Resolve(ctx, "gap-1", "again")
	assert.ErrorIs(t, err, domain.ErrGapTerminal)
	_, err = svc.Ignore(ctx, "gap-1")
	assert.ErrorIs(t, err, domain.ErrGapTerminal)
}

func TestGapService_Ignore(t *testing.T) {
	svc, _ := newGapService(t, pendingGap("gap-1"))
	ctx := context.Background()

	gap, err := svc.Ignore(ctx, "gap-1")
	require.NoError(t, err)
	assert.Equal(t, domain.GapIgnored, gap.Status)
	assert.True(t, gap.ResolvedAt.IsZero())

	_, err = svc.Ignore(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGapService_UpdateCategory(t *testing.T) {
	svc, _ := newGapService(t, pendingGap("gap-1"))
	ctx := context.Background()

	gap, err := svc.UpdateCategory(ctx, "gap-1", driving.GapSelection{
		Category: domain.CategoryPolicy,
		Section:  "Pets",
	})
	require.NoError(t, err)

	// The suggestion survives the override; display prefers confirmed.
	assert.Equal(t, domain.CategoryFacility, gap.SuggestedCategory)
	assert.Equal(t, domain.CategoryPolicy, gap.ConfirmedCategory)
	assert.Equal(t, domain.CategoryPolicy, gap.DisplayCategory())
	assert.Equal(t, "Pets", gap.DisplaySection())

	// Reclassifying a terminal gap is allowed.
	_, err = svc.Resolve(ctx, "gap-1", "answered")
	require.NoError(t, err)
	_, err = svc.UpdateCategory(ctx, "gap-1", driving.GapSelection{Category: domain.CategoryHotelBase})
	assert.NoError(t, err)
}

func TestGapService_UpdateCategoryValidation(t *testing.T) {
	svc, _ := newGapService(t, pendingGap("gap-1"))
	ctx := context.Background()

	_, err := svc.UpdateCategory(ctx, "gap-1", driving.GapSelection{Category: "bogus"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.UpdateCategory(ctx, "gap-1", driving.GapSelection{
		Category: domain.CategoryPolicy,
		Section:  "Wellness",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.UpdateCategory(ctx, "gap-1", driving.GapSelection{
		Category:   domain.CategoryFacility,
		Section:    "Wellness",
		Subsection: "Bar",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGapService_Stats(t *testing.T) {
	resolved := pendingGap("b")
	resolved.Status = domain.GapResolved
	ignored := pendingGap("c")
	ignored.Status = domain.GapIgnored
	svc, _ := newGapService(t, pendingGap("a"), resolved, ignored)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, driving.GapStats{Total: 3, Pending: 1, Resolved: 1, Ignored: 1}, stats)
}

func TestGapService_Options(t *testing.T) {
	svc, _ := newGapService(t)

	sections := svc.SectionOptions(domain.CategoryFacility)
	assert.Contains(t, sections, "Wellness")
	assert.Contains(t, sections, "Dining")

	subs := svc.SubsectionOptions(domain.CategoryFacility, "Wellness")
	assert.Equal(t, []string{"Spa", "Massage", "Sauna", "Other"}, subs)

	assert.Empty(t, svc.SubsectionOptions(domain.CategoryPolicy, "Pets"))
}

func TestGapService_NormalizeSelection(t *testing.T) {
	svc, _ := newGapService(t)

	prev := driving.GapSelection{
		Category:   domain.CategoryFacility,
		Section:    "Wellness",
		Subsection: "Spa",
	}

	// Changing category resets the deeper levels when the new category
	// does not offer them.
	got := svc.NormalizeSelection(prev, driving.GapSelection{
		Category:   domain.CategoryPolicy,
		Section:    "Wellness",
		Subsection: "Spa",
	})
	assert.Equal(t, driving.GapSelection{Category: domain.CategoryPolicy}, got)

	// A section the new category also offers survives the category change.
	got = svc.NormalizeSelection(
		driving.GapSelection{Category: domain.CategoryFacility, Section: "Basic Information"},
		driving.GapSelection{Category: domain.CategoryRoomType, Section: "Basic Information"},
	)
	assert.Equal(t, driving.GapSelection{
		Category: domain.CategoryRoomType,
		Section:  "Basic Information",
	}, got)

	// Changing section resets only the subsection.
	got = svc.NormalizeSelection(prev, driving.GapSelection{
		Category:   domain.CategoryFacility,
		Section:    "Dining",
		Subsection: "Spa",
	})
	assert.Equal(t, driving.GapSelection{
		Category: domain.CategoryFacility,
		Section:  "Dining",
	}, got)

	// An unchanged valid selection passes through untouched.
	got = svc.NormalizeSelection(prev, prev)
	assert.Equal(t, prev, got)

	// A subsection its section no longer offers is cleared.
	got = svc.NormalizeSelection(prev, driving.GapSelection{
		Category:   domain.CategoryFacility,
		Section:    "Wellness",
		Subsection: "Bar",
	})
	assert.Equal(t, driving.GapSelection{
		Category: domain.CategoryFacility,
		Section:  "Wellness",
	}, got)
}
