package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lodgeworks/stayform/internal/core/domain"
)

func TestSectionsForEveryCategory(t *testing.T) {
	for _, c := range domain.AllCategories() {
		assert.NotEmpty(t, SectionsFor(c), "category %s has no sections", c)
	}
	assert.Nil(t, SectionsFor(domain.Category("bogus")))
}

func TestSectionsForReturnsCopies(t *testing.T) {
	first := SectionsFor(domain.CategoryFacility)
	first[0].Name = "mutated"
	first[5].Subsections[0] = "mutated"

	fresh := SectionsFor(domain.CategoryFacility)
	assert.Equal(t, "Basic Information", fresh[0].Name)
	assert.Equal(t, "Pool", fresh[5].Subsections[0])
}

func TestSubsectionsFor(t *testing.T) {
	subs := SubsectionsFor(domain.CategoryFacility, "Dining")
	assert.Equal(t, []string{"Restaurant", "Bar", "Cafe", "Other"}, subs)

	assert.Empty(t, SubsectionsFor(domain.CategoryFacility, "Front Desk"))
	assert.Empty(t, SubsectionsFor(domain.CategoryPolicy, "Pets"))
	assert.Empty(t, SubsectionsFor(domain.CategoryFacility, "Nowhere"))
}

func TestIsBuiltin(t *testing.T) {
	assert.True(t, IsBuiltinSection(domain.CategoryRoomType, "Bathroom"))
	assert.False(t, IsBuiltinSection(domain.CategoryRoomType, "Rooftop"))
	// Section names are scoped per category.
	assert.False(t, IsBuiltinSection(domain.CategoryPolicy, "Bathroom"))

	assert.True(t, IsBuiltinSubsection(domain.CategoryRoomType, "Bathroom", "Bath Amenities"))
	assert.False(t, IsBuiltinSubsection(domain.CategoryRoomType, "Bathroom", "Toiletries"))
	assert.False(t, IsBuiltinSubsection(domain.CategoryRoomType, "Room Amenities", "Bath Amenities"))
}

func TestBuiltinSectionNames(t *testing.T) {
	names := BuiltinSectionNames(domain.CategoryPOI)
	assert.Equal(t, []string{"Transport", "Attractions", "Food", "Shopping"}, names)
}

func TestDescriptor(t *testing.T) {
	facility := Descriptor(domain.CategoryFacility)
	assert.True(t, facility.SupportsSubsections)
	assert.True(t, facility.SubsectionPlaceholder)
	assert.False(t, facility.SectionCreatesField)

	room := Descriptor(domain.CategoryRoomType)
	assert.True(t, room.SupportsSubsections)
	assert.False(t, room.SubsectionPlaceholder)

	poi := Descriptor(domain.CategoryPOI)
	assert.False(t, poi.SupportsSubsections)
	assert.True(t, poi.SectionCreatesField)

	hotel := Descriptor(domain.CategoryHotelBase)
	assert.False(t, hotel.SupportsSubsections)

	unknown := Descriptor(domain.Category("bogus"))
	assert.False(t, unknown.SupportsSubsections)
	assert.Equal(t, domain.Category("bogus"), unknown.Category)
}

func TestFieldsTemplate(t *testing.T) {
	for _, c := range domain.AllCategories() {
		fields := FieldsTemplate(c)
		require.NotEmpty(t, fields, "category %s has no template", c)

		seen := make(map[string]bool)
		for _, f := range fields {
			assert.NoError(t, f.Validate(), "category %s field %s", c, f.Key)
			assert.False(t, seen[f.Key], "category %s duplicates key %s", c, f.Key)
			seen[f.Key] = true
			assert.True(t, IsBuiltinSection(c, f.Section),
				"category %s field %s uses unknown section %q", c, f.Key, f.Section)
			if f.Subsection != "" {
				assert.True(t, IsBuiltinSubsection(c, f.Section, f.Subsection),
					"category %s field %s uses unknown subsection %q", c, f.Key, f.Subsection)
			}
		}
	}
}

func TestFieldsTemplateReturnsCopies(t *testing.T) {
	first := FieldsTemplate(domain.CategoryHotelBase)
	first[0].Text = "mutated"

	fresh := FieldsTemplate(domain.CategoryHotelBase)
	assert.Empty(t, fresh[0].Text)
}

func TestFieldsTemplateRequiredKeys(t *testing.T) {
	cases := map[domain.Category][]string{
		domain.CategoryHotelBase: {"hotelName", "address", "description", "country",
			"city", "phone", "starRating", "roomCount"},
		domain.CategoryRoomType: {"roomTypeName", "roomArea", "bedType", "capacity"},
		domain.CategoryFacility: {"facilityName"},
		domain.CategoryPolicy:   {"checkinTime", "checkoutTime", "childrenPolicy", "paymentMethods"},
		domain.CategoryCustom:   {"customTitle", "customContent"},
	}
	for category, keys := range cases {
		fields := FieldsTemplate(category)
		var required []string
		for _, f := range fields {
			if f.Required {
				required = append(required, f.Key)
			}
		}
		assert.ElementsMatch(t, keys, required, "category %s", category)
	}

	// The POI template is entirely optional.
	for _, f := range FieldsTemplate(domain.CategoryPOI) {
		assert.False(t, f.Required)
		assert.Equal(t, domain.FieldTypePOIList, f.Type)
	}
}
