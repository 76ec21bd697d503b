package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupBySection_FirstAppearanceOrder(t *testing.T) {
	fields := []Field{
		{Key: "a", Label: "A", Type: FieldTypeText, Section: "Contact"},
		{Key: "b", Label: "B", Type: FieldTypeText, Section: "Basic Information"},
		{Key: "c", Label: "C", Type: FieldTypeText, Section: "Contact"},
	}

	groups := GroupBySection(fields, nil, nil)
	require.Len(t, groups, 2)
	assert.Equal(t, "Contact", groups[0].Name)
	assert.Equal(t, "Basic Information", groups[1].Name)

	// Fields keep collection order within their section.
	contact := groups[0].Fields()
	require.Len(t, contact, 2)
	assert.Equal(t, "a", contact[0].Key)
	assert.Equal(t, "c", contact[1].Key)
}

func TestGroupBySection_FallbackBucket(t *testing.T) {
	fields := []Field{
		{Key: "orphan", Label: "Orphan", Type: FieldTypeText},
		{Key: "named", Label: "Named", Type: FieldTypeText, Section: "Contact"},
	}

	groups := GroupBySection(fields, nil, nil)
	require.Len(t, groups, 2)
	assert.Equal(t, SectionFallback, groups[0].Name)
	assert.Equal(t, "orphan", groups[0].Fields()[0].Key)
}

func TestGroupBySection_Subsections(t *testing.T) {
	fields := []Field{
		{Key: "shower", Label: "Shower", Type: FieldTypeBoolean, Section: "Bathroom", Subsection: "Bathroom Fixtures"},
		{Key: "note", Label: "Note", Type: FieldTypeText, Section: "Bathroom"},
		{Key: "soap", Label: "Soap", Type: FieldTypeBoolean, Section: "Bathroom", Subsection: "Bath Amenities"},
	}

	groups := GroupBySection(fields, nil, nil)
	require.Len(t, groups, 1)
	bathroom := groups[0]
	require.Len(t, bathroom.Subsections, 3)

	// Subsections in first-appearance order; "" holds direct fields.
	assert.Equal(t, "Bathroom Fixtures", bathroom.Subsections[0].Name)
	assert.Equal(t, "", bathroom.Subsections[1].Name)
	assert.Equal(t, "Bath Amenities", bathroom.Subsections[2].Name)

	direct := bathroom.Subsection("")
	require.NotNil(t, direct)
	assert.Equal(t, "note", direct.Fields[0].Key)
}

func TestGroupBySection_EmptyBuckets(t *testing.T) {
	fields := []Field{
		{Key: "a", Label: "A", Type: FieldTypeText, Section: "Wellness", Subsection: "Spa"},
	}
	emptySections := []string{"Rooftop", "Wellness"}
	emptySubsections := map[string][]string{
		"Wellness": {"Hammam", "Spa"},
	}

	groups := GroupBySection(fields, emptySections, emptySubsections)
	require.Len(t, groups, 2)

	// Observed sections first, then injected empty ones; duplicates skipped.
	assert.Equal(t, "Wellness", groups[0].Name)
	assert.Equal(t, "Rooftop", groups[1].Name)
	assert.Empty(t, groups[1].Subsections)

	wellness := groups[0]
	require.NotNil(t, wellness.Subsection("Hammam"))
	assert.Empty(t, wellness.Subsection("Hammam").Fields)
	// "Spa" already existed with its field; not duplicated.
	count := 0
	for _, sub := range wellness.Subsections {
		if sub.Name == "Spa" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestGroupBySection_Empty(t *testing.T) {
	assert.Empty(t, GroupBySection(nil, nil, nil))
}
