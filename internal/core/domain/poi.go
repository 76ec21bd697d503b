package domain

import "github.com/google/uuid"

// POIEntry is one point of interest inside a poi-list field. IDs are
// generated once and stay stable for the life of the entry.
type POIEntry struct {
	// ID uniquely identifies the entry within its field's list.
	ID string `json:"id"`

	// Tag is an optional short label, e.g. "metro" or "landmark".
	Tag string `json:"tag,omitempty"`

	// Name is the display name of the place.
	Name string `json:"name"`

	// Distance is the human-entered distance string, e.g. "220m".
	Distance string `json:"distance"`
}

// NewPOIEntry returns an empty entry with a fresh stable ID.
func NewPOIEntry() POIEntry {
	return POIEntry{ID: uuid.NewString()}
}

// FindEntry returns the index of the entry with the given ID, or -1.
func FindEntry(entries []POIEntry, id string) int {
	for i := range entries {
		if entries[i].ID == id {
			return i
		}
	}
	return -1
}
