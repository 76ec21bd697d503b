package taxonomy

import "github.com/lodgeworks/stayform/internal/core/domain"

// SectionSpec declares one built-in section and its allowed subsections.
type SectionSpec struct {
	// Name is the fixed section name.
	Name string

	// Subsections are the allowed second-level names, in display order.
	// Empty for single-level sections.
	Subsections []string
}

// structure is the full built-in catalog, in display order per category.
var structure = map[domain.Category][]SectionSpec{
	domain.CategoryHotelBase: {
		{Name: "Basic Information"},
		{Name: "Contact"},
		{Name: "Core Amenities"},
		{Name: "Opening & Renovation"},
		{Name: "Transport Access"},
	},
	domain.CategoryRoomType: {
		{Name: "Room Type Name"},
		{Name: "Basic Information"},
		{Name: "Bathroom", Subsections: []string{"Bath Amenities", "Bathroom Fixtures"}},
		{Name: "Internet & Communication"},
		{Name: "Layout & Furniture"},
		{Name: "Room Amenities"},
		{Name: "Media & Technology"},
		{Name: "Food & Drink"},
		{Name: "Convenience Services"},
	},
	domain.CategoryFacility: {
		{Name: "Basic Information"},
		{Name: "Front Desk"},
		{Name: "Public Areas"},
		{Name: "Business Services"},
		{Name: "Accessibility"},
		{Name: "Entertainment", Subsections: []string{"Pool", "Card Room", "Game Room", "Screening Room"}},
		{Name: "Transport Services"},
		{Name: "Family & Kids"},
		{Name: "Wellness", Subsections: []string{"Spa", "Massage", "Sauna", "Other"}},
		{Name: "Dining", Subsections: []string{"Restaurant", "Bar", "Cafe", "Other"}},
		{Name: "Sports", Subsections: []string{"Gym", "Yoga", "Other"}},
		{Name: "Cleaning Services"},
		{Name: "Safety & Security"},
	},
	domain.CategoryPolicy: {
		{Name: "Check-in & Check-out"},
		{Name: "Booking Notes"},
		{Name: "Stay Notes"},
		{Name: "Age Restrictions"},
		{Name: "Pets"},
		{Name: "Service Animals"},
		{Name: "Children & Extra Beds"},
		{Name: "Payment Methods"},
		{Name: "Breakfast"},
	},
	domain.CategoryPOI: {
		{Name: "Transport"},
		{Name: "Attractions"},
		{Name: "Food"},
		{Name: "Shopping"},
	},
	domain.CategoryCustom: {
		{Name: "Basic Information"},
	},
}

// SectionsFor returns the ordered built-in sections for a category.
// Unknown categories yield nil.
func SectionsFor(category domain.Category) []SectionSpec {
	specs := structure[category]
	out := make([]SectionSpec, len(specs))
	copy(out, specs)
	return out
}

// SubsectionsFor returns the allowed subsection names of a built-in
// section. Unknown categories or sections, and sections without
// subsections, yield nil rather than an error.
func SubsectionsFor(category domain.Category, section string) []string {
	for _, spec := range structure[category] {
		if spec.Name == section {
			out := make([]string, len(spec.Subsections))
			copy(out, spec.Subsections)
			return out
		}
	}
	return nil
}

// IsBuiltinSection reports whether a section name is declared by the
// registry for the category. Comparison is exact, case sensitive.
func IsBuiltinSection(category domain.Category, section string) bool {
	for _, spec := range structure[category] {
		if spec.Name == section {
			return true
		}
	}
	return false
}

// IsBuiltinSubsection reports whether a subsection is declared under the
// given built-in section.
func IsBuiltinSubsection(category domain.Category, section, subsection string) bool {
	for _, name := range SubsectionsFor(category, section) {
		if name == subsection {
			return true
		}
	}
	return false
}

// BuiltinSectionNames returns just the section names, in display order.
func BuiltinSectionNames(category domain.Category) []string {
	specs := structure[category]
	names := make([]string, len(specs))
	for i, spec := range specs {
		names[i] = spec.Name
	}
	return names
}
