package domain

import "time"

// DocumentStatus tracks where a document is in its editing lifecycle.
type DocumentStatus string

// Available document statuses.
const (
	// StatusDraft is a freshly created, never-saved document.
	StatusDraft DocumentStatus = "draft"

	// StatusPending has been saved at least once but still has required
	// fields missing.
	StatusPending DocumentStatus = "pending"

	// StatusConfirmed was saved with every required field filled.
	StatusConfirmed DocumentStatus = "confirmed"
)

// IsValid returns true if the status is recognised.
func (s DocumentStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusConfirmed:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s DocumentStatus) String() string {
	return string(s)
}

// Description returns a human-readable label for the status.
func (s DocumentStatus) Description() string {
	switch s {
	case StatusDraft:
		return "Draft"
	case StatusPending:
		return "Pending"
	case StatusConfirmed:
		return "Confirmed"
	default:
		return "Unknown"
	}
}

// Document aggregates an ordered field collection under one category.
// Field keys are unique within a document, and a section name maps to
// exactly one grouping.
type Document struct {
	// ID is the unique identifier for the document.
	ID string `json:"id"`

	// Title is the human-readable title.
	Title string `json:"title"`

	// Category fixes the taxonomy the document is built on. Immutable
	// after creation.
	Category Category `json:"category"`

	// Fields is the ordered field collection.
	Fields []Field `json:"fields"`

	// Status is the editing lifecycle state.
	Status DocumentStatus `json:"status"`

	// Source is a provenance label, e.g. "manual entry" or an import name.
	Source string `json:"source,omitempty"`

	// LastModified is when the document was last saved.
	LastModified time.Time `json:"lastModified"`

	// Completeness is the 0-100 required-field score, recomputed on save
	// rather than continuously.
	Completeness int `json:"completeness"`
}

// FieldByKey returns a pointer to the field with the given key, or nil.
func (d *Document) FieldByKey(key string) *Field {
	for i := range d.Fields {
		if d.Fields[i].Key == key {
			return &d.Fields[i]
		}
	}
	return nil
}

// NextStatus applies the save-time status rule: a save with no missing
// required fields confirms the document; otherwise a draft becomes pending
// and any other status is kept. Only saves move status, never the
// completeness engine on its own.
func (d *Document) NextStatus(missing int) DocumentStatus {
	if missing == 0 {
		return StatusConfirmed
	}
	if d.Status == StatusDraft {
		return StatusPending
	}
	return d.Status
}
