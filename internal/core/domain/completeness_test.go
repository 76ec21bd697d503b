package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteness_NoRequiredFields(t *testing.T) {
	// With nothing required the document is vacuously complete.
	assert.Equal(t, 100, Completeness(nil))
	assert.Equal(t, 100, Completeness([]Field{
		{Key: "a", Label: "A", Type: FieldTypeText},
		{Key: "b", Label: "B", Type: FieldTypeBoolean},
	}))
}

func TestCompleteness_Rounding(t *testing.T) {
	fields := []Field{
		{Key: "a", Label: "A", Type: FieldTypeText, Required: true, Text: "x"},
		{Key: "b", Label: "B", Type: FieldTypeText, Required: true},
		{Key: "c", Label: "C", Type: FieldTypeText, Required: true},
	}
	// 1 of 3 filled rounds to 33, 2 of 3 to 67.
	assert.Equal(t, 33, Completeness(fields))

	fields[1].Text = "y"
	assert.Equal(t, 67, Completeness(fields))

	fields[2].Text = "z"
	assert.Equal(t, 100, Completeness(fields))
}

func TestCompleteness_RequiredBooleanCountsWhenOff(t *testing.T) {
	fields := []Field{
		{Key: "a", Label: "A", Type: FieldTypeBoolean, Required: true},
		{Key: "b", Label: "B", Type: FieldTypeText, Required: true},
	}
	// The off toggle is already an answer; only the text field is missing.
	assert.Equal(t, 50, Completeness(fields))

	missing := MissingFields(fields)
	require.Len(t, missing, 1)
	assert.Equal(t, "b", missing[0].Key)
}

func TestCompleteness_OptionalFieldsDoNotCount(t *testing.T) {
	fields := []Field{
		{Key: "req", Label: "Req", Type: FieldTypeText, Required: true, Text: "x"},
		{Key: "opt", Label: "Opt", Type: FieldTypeText},
	}
	assert.Equal(t, 100, Completeness(fields))
	assert.Empty(t, MissingFields(fields))
}

func TestComputeSectionStats(t *testing.T) {
	group := SectionGroup{
		Name: "Room Amenities",
		Subsections: []SubsectionGroup{
			{Name: "", Fields: []Field{
				{Key: "minibar", Label: "Minibar", Type: FieldTypeBoolean, On: true},
				{Key: "safe", Label: "Safe", Type: FieldTypeBoolean},
				{Key: "view", Label: "View", Type: FieldTypeText, Required: true},
			}},
		},
	}

	stats := ComputeSectionStats(group)
	assert.Equal(t, 3, stats.TotalFields)
	// Display count: only on-toggles and non-blank text count.
	assert.Equal(t, 1, stats.FilledFields)
	// Required gating: the off toggle is not required anyway; the text is.
	assert.Equal(t, 1, stats.RequiredTotal)
	assert.Equal(t, 0, stats.RequiredFilled)
	assert.Equal(t, 1, stats.Missing())
}

func TestMissingFields_PreservesOrder(t *testing.T) {
	fields := []Field{
		{Key: "c", Label: "C", Type: FieldTypeText, Required: true},
		{Key: "a", Label: "A", Type: FieldTypeText, Required: true, Text: "x"},
		{Key: "b", Label: "B", Type: FieldTypePOIList, Required: true},
	}

	missing := MissingFields(fields)
	require.Len(t, missing, 2)
	assert.Equal(t, "c", missing[0].Key)
	assert.Equal(t, "b", missing[1].Key)
}
