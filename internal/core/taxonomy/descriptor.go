package taxonomy

import "github.com/lodgeworks/stayform/internal/core/domain"

// CategoryDescriptor configures the extension engine for one category.
// A single generic engine driven by this table covers every category; the
// flags capture the few behaviors that differ between them.
type CategoryDescriptor struct {
	// Category the descriptor belongs to.
	Category domain.Category

	// SupportsSubsections allows custom subsections under sections.
	SupportsSubsections bool

	// SubsectionPlaceholder creates a placeholder boolean field when a
	// custom subsection is added, so the empty subsection stays visible.
	// Without it the subsection name is tracked with no field.
	SubsectionPlaceholder bool

	// SectionCreatesField creates the section's single poi-list field when
	// a custom section is added, instead of leaving an empty group.
	SectionCreatesField bool
}

var descriptors = map[domain.Category]CategoryDescriptor{
	domain.CategoryHotelBase: {Category: domain.CategoryHotelBase},
	domain.CategoryRoomType: {
		Category:            domain.CategoryRoomType,
		SupportsSubsections: true,
	},
	domain.CategoryFacility: {
		Category:              domain.CategoryFacility,
		SupportsSubsections:   true,
		SubsectionPlaceholder: true,
	},
	domain.CategoryPolicy: {Category: domain.CategoryPolicy},
	domain.CategoryPOI: {
		Category:            domain.CategoryPOI,
		SectionCreatesField: true,
	},
	domain.CategoryCustom: {Category: domain.CategoryCustom},
}

// Descriptor returns the engine configuration for a category. Unknown
// categories get a zero-value descriptor with no subsection support.
func Descriptor(category domain.Category) CategoryDescriptor {
	d, ok := descriptors[category]
	if !ok {
		return CategoryDescriptor{Category: category}
	}
	return d
}
