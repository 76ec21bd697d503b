package domain

import (
	"fmt"
	"strings"
)

// FieldType discriminates the seven field variants. The variant decides
// which value facet of a Field is live and how the fill predicate reads it.
type FieldType string

// Available field types.
const (
	// FieldTypeText is a single-line text value.
	FieldTypeText FieldType = "text"

	// FieldTypeTextarea is a multi-line text value.
	FieldTypeTextarea FieldType = "textarea"

	// FieldTypeNumber is a numeric value entered as text.
	FieldTypeNumber FieldType = "number"

	// FieldTypeBoolean is a plain on/off toggle.
	FieldTypeBoolean FieldType = "boolean"

	// FieldTypeBooleanWithOptions is a toggle that, when on, carries a
	// charge state (FeeStatus/FeeNote/AdditionalNote).
	FieldTypeBooleanWithOptions FieldType = "boolean-with-options"

	// FieldTypeBooleanWithLanguages is a toggle with an ordered list of
	// selected language names.
	FieldTypeBooleanWithLanguages FieldType = "boolean-with-languages"

	// FieldTypeBooleanWithText is a toggle with a free-text note.
	FieldTypeBooleanWithText FieldType = "boolean-with-text"

	// FieldTypePOIList is a list of point-of-interest entries.
	FieldTypePOIList FieldType = "poi-list"
)

// IsValid returns true if the field type is recognised.
func (t FieldType) IsValid() bool {
	switch t {
	case FieldTypeText, FieldTypeTextarea, FieldTypeNumber, FieldTypeBoolean,
		FieldTypeBooleanWithOptions, FieldTypeBooleanWithLanguages,
		FieldTypeBooleanWithText, FieldTypePOIList:
		return true
	default:
		return false
	}
}

// IsBooleanBacked returns true for the toggle variants, whose value facet
// is the On flag.
func (t FieldType) IsBooleanBacked() bool {
	switch t {
	case FieldTypeBoolean, FieldTypeBooleanWithOptions,
		FieldTypeBooleanWithLanguages, FieldTypeBooleanWithText:
		return true
	default:
		return false
	}
}

// IsTextBacked returns true for the variants whose value facet is Text.
func (t FieldType) IsTextBacked() bool {
	switch t {
	case FieldTypeText, FieldTypeTextarea, FieldTypeNumber:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t FieldType) String() string {
	return string(t)
}

// Field is the atomic data-entry unit. Its value is polymorphic over the
// field type; instead of a single untyped value, each variant reads exactly
// one facet:
//
//   - text, textarea, number: Text
//   - boolean, boolean-with-*: On
//   - poi-list: Entries
//
// Extras are live only for their variant:
//
//   - boolean-with-options: FeeStatus, FeeNote, AdditionalNote (composite
//     fee detail, see EncodeFeeDetail)
//   - boolean-with-text: AdditionalNote (free text)
//   - boolean-with-languages: Languages
//
// Validate enforces this facet discipline at construction time.
type Field struct {
	// Key uniquely identifies the field within its document. Built-in keys
	// are stable template identifiers; custom keys are generated.
	Key string `json:"key"`

	// Label is the display name.
	Label string `json:"label"`

	// Type selects the variant.
	Type FieldType `json:"type"`

	// Required drives completeness accounting.
	Required bool `json:"required"`

	// Placeholder is the input hint shown when the field is empty.
	Placeholder string `json:"placeholder,omitempty"`

	// Section names the first-level grouping the field belongs to.
	Section string `json:"section,omitempty"`

	// Subsection names the optional second-level grouping.
	Subsection string `json:"subsection,omitempty"`

	// IsCustom marks user-added fields; only those may be removed.
	IsCustom bool `json:"isCustom,omitempty"`

	// Text is the value facet for text, textarea and number fields.
	Text string `json:"text,omitempty"`

	// On is the value facet for boolean-backed fields.
	On bool `json:"on,omitempty"`

	// Entries is the value facet for poi-list fields.
	Entries []POIEntry `json:"entries,omitempty"`

	// FeeStatus is the charge state for boolean-with-options fields.
	FeeStatus FeeStatus `json:"feeStatus,omitempty"`

	// FeeNote holds the primary fee amount string.
	FeeNote string `json:"feeNote,omitempty"`

	// AdditionalNote holds free text for boolean-with-text fields and the
	// composite fee detail for boolean-with-options fields.
	AdditionalNote string `json:"additionalNote,omitempty"`

	// Languages is the ordered list of selected languages, no duplicates.
	Languages []string `json:"languages,omitempty"`
}

// IsFilled reports whether the field counts as filled. This is the single
// fill predicate used everywhere; do not reimplement it at call sites.
//
// treatBooleanAsFilled selects between the two intended semantics:
//
//   - true: required-field gating. A boolean field is never missing merely
//     because it is off; off is a valid answer.
//   - false: display statistics. Counts how many toggles are actually on.
func (f Field) IsFilled(treatBooleanAsFilled bool) bool {
	switch {
	case f.Type == FieldTypePOIList:
		if len(f.Entries) == 0 {
			return false
		}
		for _, e := range f.Entries {
			if strings.TrimSpace(e.Name) == "" || strings.TrimSpace(e.Distance) == "" {
				return false
			}
		}
		return true

	case f.Type.IsBooleanBacked():
		return treatBooleanAsFilled || f.On

	default:
		return strings.TrimSpace(f.Text) != ""
	}
}

// Validate checks the field's facet discipline: a recognised type, a key and
// label, and no extras set that its variant does not use.
func (f Field) Validate() error {
	if !f.Type.IsValid() {
		return fmt.Errorf("field %q: %w: unknown type %q", f.Key, ErrInvalidInput, f.Type)
	}
	if f.Key == "" {
		return fmt.Errorf("%w: field key must not be empty", ErrInvalidInput)
	}
	if f.Label == "" {
		return fmt.Errorf("field %q: %w: label must not be empty", f.Key, ErrInvalidInput)
	}
	if f.Entries != nil && f.Type != FieldTypePOIList {
		return fmt.Errorf("field %q: %w: entries on non poi-list field", f.Key, ErrInvalidInput)
	}
	if f.Languages != nil && f.Type != FieldTypeBooleanWithLanguages {
		return fmt.Errorf("field %q: %w: languages on %s field", f.Key, ErrInvalidInput, f.Type)
	}
	if (f.FeeStatus != "" || f.FeeNote != "") && f.Type != FieldTypeBooleanWithOptions {
		return fmt.Errorf("field %q: %w: fee detail on %s field", f.Key, ErrInvalidInput, f.Type)
	}
	if !f.FeeStatus.IsValid() {
		return fmt.Errorf("field %q: %w: unknown fee status %q", f.Key, ErrInvalidInput, f.FeeStatus)
	}
	if f.AdditionalNote != "" &&
		f.Type != FieldTypeBooleanWithOptions && f.Type != FieldTypeBooleanWithText {
		return fmt.Errorf("field %q: %w: additional note on %s field", f.Key, ErrInvalidInput, f.Type)
	}
	if f.Text != "" && !f.Type.IsTextBacked() {
		return fmt.Errorf("field %q: %w: text value on %s field", f.Key, ErrInvalidInput, f.Type)
	}
	return nil
}

// AddLanguage appends a language if not already selected. Order of first
// selection is preserved.
func (f *Field) AddLanguage(lang string) {
	for _, l := range f.Languages {
		if l == lang {
			return
		}
	}
	f.Languages = append(f.Languages, lang)
}

// RemoveLanguage drops a language from the selection.
func (f *Field) RemoveLanguage(lang string) {
	kept := f.Languages[:0]
	for _, l := range f.Languages {
		if l != lang {
			kept = append(kept, l)
		}
	}
	f.Languages = kept
}
