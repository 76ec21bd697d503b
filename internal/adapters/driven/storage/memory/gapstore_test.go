package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lodgeworks/stayform/internal/core/domain"
)

func testGap(id, question string) *domain.KnowledgeGap {
	return &domain.KnowledgeGap{
		ID:          id,
		Question:    question,
		Status:      domain.GapPending,
		Priority:    domain.PriorityMedium,
		LastAskedAt: time.Now(),
		Transcript: []domain.TranscriptTurn{
			{Role: "user", Content: question},
		},
	}
}

func TestGapStore_SaveAndGet(t *testing.T) {
	store := NewGapStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testGap("gap-1", "Is breakfast included?")))

	got, err := store.Get(ctx, "gap-1")
	require.NoError(t, err)
	assert.Equal(t, "Is breakfast included?", got.Question)
	assert.Equal(t, domain.GapPending, got.Status)
}

func TestGapStore_GetNotFound(t *testing.T) {
	store := NewGapStore()

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGapStore_ListInsertionOrder(t *testing.T) {
	store := NewGapStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testGap("b", "Second question?")))
	require.NoError(t, store.Save(ctx, testGap("a", "First question?")))
	require.NoError(t, store.Save(ctx, testGap("c", "Third question?")))

	gaps, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, gaps, 3)
	assert.Equal(t, "b", gaps[0].ID)
	assert.Equal(t, "a", gaps[1].ID)
	assert.Equal(t, "c", gaps[2].ID)
}

func TestGapStore_ResaveKeepsPosition(t *testing.T) {
	store := NewGapStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testGap("a", "First?")))
	require.NoError(t, store.Save(ctx, testGap("b", "Second?")))

	updated := testGap("a", "First?")
	updated.Status = domain.GapResolved
	require.NoError(t, store.Save(ctx, updated))

	gaps, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, gaps, 2)
	assert.Equal(t, "a", gaps[0].ID)
	assert.Equal(t, domain.GapResolved, gaps[0].Status)
}

func TestGapStore_NoAliasing(t *testing.T) {
	store := NewGapStore()
	ctx := context.Background()

	gap := testGap("gap-1", "Original?")
	require.NoError(t, store.Save(ctx, gap))

	gap.Transcript[0].Content = "changed"

	got, err := store.Get(ctx, "gap-1")
	require.NoError(t, err)
	assert.Equal(t, "Original?", got.Transcript[0].Content)
}

func TestSeedGaps(t *testing.T) {
	store := NewGapStore()
	ctx := context.Background()

	require.NoError(t, SeedGaps(ctx, store))

	gaps, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, gaps, 4)

	statuses := make(map[domain.GapStatus]int)
	for _, g := range gaps {
		statuses[g.Status]++
		assert.True(t, g.Priority.IsValid())
		assert.True(t, g.Recommendation.IsValid())
	}
	assert.Equal(t, 2, statuses[domain.GapPending])
	assert.Equal(t, 1, statuses[domain.GapResolved])
	assert.Equal(t, 1, statuses[domain.GapIgnored])
}
