package domain

import "math"

// SectionStats aggregates fill counts for one section's fields, feeding the
// per-section progress display.
type SectionStats struct {
	// TotalFields is the number of fields in the section.
	TotalFields int

	// FilledFields counts fields filled under display semantics: a toggle
	// counts only when it is on.
	FilledFields int

	// RequiredTotal is the number of required fields.
	RequiredTotal int

	// RequiredFilled counts required fields filled under gating semantics:
	// a toggle always counts.
	RequiredFilled int
}

// Missing returns how many required fields are still unfilled.
func (s SectionStats) Missing() int {
	return s.RequiredTotal - s.RequiredFilled
}

// ComputeSectionStats walks one section group's fields once. The two filled
// counters deliberately use the two fill semantics; see Field.IsFilled.
func ComputeSectionStats(g SectionGroup) SectionStats {
	var stats SectionStats
	for _, sub := range g.Subsections {
		for _, f := range sub.Fields {
			stats.TotalFields++
			if f.IsFilled(false) {
				stats.FilledFields++
			}
			if f.Required {
				stats.RequiredTotal++
				if f.IsFilled(true) {
					stats.RequiredFilled++
				}
			}
		}
	}
	return stats
}

// Completeness scores a field collection 0-100 by its required fields under
// gating semantics. A collection with no required fields is complete by
// definition.
func Completeness(fields []Field) int {
	var required, filled int
	for _, f := range fields {
		if !f.Required {
			continue
		}
		required++
		if f.IsFilled(true) {
			filled++
		}
	}
	if required == 0 {
		return 100
	}
	return int(math.Round(100 * float64(filled) / float64(required)))
}

// MissingFields returns the required fields that are unfilled under gating
// semantics, in collection order.
func MissingFields(fields []Field) []Field {
	var missing []Field
	for _, f := range fields {
		if f.Required && !f.IsFilled(true) {
			missing = append(missing, f)
		}
	}
	return missing
}
