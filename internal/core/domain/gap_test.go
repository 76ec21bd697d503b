package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGapStatusTerminal(t *testing.T) {
	assert.False(t, GapPending.IsTerminal())
	assert.True(t, GapResolved.IsTerminal())
	assert.True(t, GapIgnored.IsTerminal())
}

func TestGapDisplayClassification(t *testing.T) {
	gap := KnowledgeGap{
		SuggestedCategory:   CategoryFacility,
		SuggestedSection:    "Wellness",
		SuggestedSubsection: "Spa",
	}

	// Without overrides the suggestion shows.
	assert.Equal(t, CategoryFacility, gap.DisplayCategory())
	assert.Equal(t, "Wellness", gap.DisplaySection())
	assert.Equal(t, "Spa", gap.DisplaySubsection())

	// Overrides win level by level, not all or nothing.
	gap.ConfirmedSection = "Dining"
	assert.Equal(t, CategoryFacility, gap.DisplayCategory())
	assert.Equal(t, "Dining", gap.DisplaySection())
	assert.Equal(t, "Spa", gap.DisplaySubsection())

	gap.ConfirmedCategory = CategoryPolicy
	gap.ConfirmedSubsection = "Bar"
	assert.Equal(t, CategoryPolicy, gap.DisplayCategory())
	assert.Equal(t, "Bar", gap.DisplaySubsection())
}

func TestPOIEntryHelpers(t *testing.T) {
	e := NewPOIEntry()
	assert.NotEmpty(t, e.ID)
	assert.Empty(t, e.Name)

	entries := []POIEntry{{ID: "a"}, {ID: "b"}}
	assert.Equal(t, 1, FindEntry(entries, "b"))
	assert.Equal(t, -1, FindEntry(entries, "z"))
}
