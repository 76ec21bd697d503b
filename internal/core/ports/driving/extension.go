package driving

import "github.com/lodgeworks/stayform/internal/core/domain"

// BooleanFieldParams describes a new toggle field for the two-level
// categories. When WithOptions is set the field is created charged, with
// the fee detail composed from FeeType, FeeAmount and FeeNote.
type BooleanFieldParams struct {
	// Label is the display name; blank labels are rejected.
	Label string

	// Subsection scopes the field inside its section; may be empty.
	Subsection string

	// WithOptions selects boolean-with-options instead of plain boolean.
	WithOptions bool

	// FeeType is how the charge is billed. Ignored unless WithOptions.
	FeeType domain.FeeType

	// FeeAmount is the primary amount string, e.g. "10 EUR".
	FeeAmount string

	// FeeNote is free text appended to the fee description.
	FeeNote string
}

// FacilityFieldParams describes a new facility field: either a chargeable
// toggle or a plain text field, both with optional fee configuration.
type FacilityFieldParams struct {
	// Label is the display name; blank labels are rejected.
	Label string

	// Subsection scopes the field inside its section; may be empty.
	Subsection string

	// Toggle selects a boolean-with-options field; otherwise a text field
	// with Value as its content.
	Toggle bool

	// Value is the initial text for non-toggle fields.
	Value string

	// Charged marks the facility as charged; FeeType, FeeAmount and
	// FeeNote fill in the detail.
	Charged bool

	// FeeType is how the charge is billed.
	FeeType domain.FeeType

	// FeeAmount is the primary amount string.
	FeeAmount string

	// FeeNote is free text appended to the fee description.
	FeeNote string
}

// ExtensionService extends one category's taxonomy for the document being
// edited: custom sections, custom subsections and custom fields layered on
// top of the built-in registry. One instance exists per category; only the
// instance matching the edited document's category is active, the rest are
// strict no-ops. Every mutation is atomic: it fully applies or returns an
// error having changed nothing.
type ExtensionService interface {
	// Category returns the category this engine serves.
	Category() domain.Category

	// Active reports whether the engine currently mutates.
	Active() bool

	// SetActive toggles the engine. Activating does not attach a document.
	SetActive(active bool)

	// Attach binds the engine to a document and seeds custom section and
	// subsection bookkeeping by scanning its fields for names missing from
	// the built-in registry.
	Attach(doc *domain.Document)

	// CustomSections returns the user-created section names, in creation
	// order.
	CustomSections() []string

	// CustomSubsections returns the user-created subsection names under a
	// section, in creation order.
	CustomSubsections(section string) []string

	// AddSection registers a new custom section. The trimmed name must be
	// non-blank and collide with no existing section name, built-in or
	// custom. No field is created; an empty section is representable.
	AddSection(name string) error

	// RemoveSection deletes a custom section, every field in it and every
	// custom subsection under it. Built-in sections are not removable.
	// The caller is responsible for confirming the cascade with the user.
	RemoveSection(name string) error

	// AddSubsection registers a custom subsection under a section, for
	// categories that support two-level taxonomy. A placeholder field is
	// created when the category requires one for visibility.
	AddSubsection(section, name string) error

	// RemoveSubsection deletes a custom subsection and every field in it.
	RemoveSubsection(section, name string) error

	// AddSimpleField appends a custom text field.
	AddSimpleField(section, subsection, label, value string) (*domain.Field, error)

	// AddBooleanField appends a custom toggle field per params.
	AddBooleanField(section string, params BooleanFieldParams) (*domain.Field, error)

	// AddFacilityField appends a custom facility field per params.
	AddFacilityField(section string, params FacilityFieldParams) (*domain.Field, error)

	// RemoveField deletes a custom field by key. Built-in fields are not
	// removable.
	RemoveField(key string) error

	// AddPOIEntry appends an empty entry to a poi-list field and returns
	// it.
	AddPOIEntry(fieldKey string) (*domain.POIEntry, error)

	// UpdatePOIEntry replaces the tag, name and distance of an entry.
	UpdatePOIEntry(fieldKey, entryID string, entry domain.POIEntry) error

	// RemovePOIEntry deletes an entry from a poi-list field.
	RemovePOIEntry(fieldKey, entryID string) error
}
