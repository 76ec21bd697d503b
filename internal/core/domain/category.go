package domain

// Category is the top-level document kind. Each category carries its own
// section taxonomy and field-type conventions. It is immutable once a
// Document has been created.
type Category string

// Available document categories.
const (
	// CategoryHotelBase covers hotel-level facts: names, address, contact,
	// star rating, opening year, transport access.
	CategoryHotelBase Category = "hotel_base"

	// CategoryRoomType covers a single room type: layout, amenities,
	// bathroom, media, food and drink.
	CategoryRoomType Category = "room_type"

	// CategoryFacility covers hotel facilities and services: front desk,
	// wellness, dining, sports, accessibility.
	CategoryFacility Category = "facility"

	// CategoryPolicy covers booking and stay policies: check-in/out, pets,
	// children, payment, breakfast.
	CategoryPolicy Category = "policy"

	// CategoryPOI covers nearby points of interest, grouped by kind.
	CategoryPOI Category = "poi"

	// CategoryCustom is a free-form category with no built-in sections.
	CategoryCustom Category = "custom"
)

// IsValid returns true if the category is recognised.
func (c Category) IsValid() bool {
	switch c {
	case CategoryHotelBase, CategoryRoomType, CategoryFacility, CategoryPolicy, CategoryPOI, CategoryCustom:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (c Category) String() string {
	return string(c)
}

// Description returns a human-readable label for the category.
func (c Category) Description() string {
	switch c {
	case CategoryHotelBase:
		return "Hotel Basics"
	case CategoryRoomType:
		return "Room Types"
	case CategoryFacility:
		return "Facilities"
	case CategoryPolicy:
		return "Policies"
	case CategoryPOI:
		return "Nearby POI"
	case CategoryCustom:
		return "Custom"
	default:
		return "Unknown"
	}
}

// AllCategories returns every category in display order.
func AllCategories() []Category {
	return []Category{
		CategoryHotelBase,
		CategoryRoomType,
		CategoryFacility,
		CategoryPolicy,
		CategoryPOI,
		CategoryCustom,
	}
}
