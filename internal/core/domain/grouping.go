package domain

// SectionFallback is the bucket for fields that carry no section name.
const SectionFallback = "Other"

// SubsectionGroup is one second-level bucket of a grouped field collection.
type SubsectionGroup struct {
	// Name is the subsection name; empty for fields directly under the
	// section.
	Name string

	// Fields are the bucket's fields in collection order.
	Fields []Field
}

// SectionGroup is one first-level bucket of a grouped field collection.
// Groups are held in slices because rendering order is the order of first
// appearance in the field collection, which maps cannot preserve.
type SectionGroup struct {
	// Name is the section name.
	Name string

	// Subsections are the second-level buckets in first-appearance order.
	Subsections []SubsectionGroup
}

// Fields returns all fields of the section across its subsections, in
// collection order.
func (g SectionGroup) Fields() []Field {
	var out []Field
	for _, sub := range g.Subsections {
		out = append(out, sub.Fields...)
	}
	return out
}

// Subsection returns the bucket with the given name, or nil.
func (g *SectionGroup) Subsection(name string) *SubsectionGroup {
	for i := range g.Subsections {
		if g.Subsections[i].Name == name {
			return &g.Subsections[i]
		}
	}
	return nil
}

// GroupBySection buckets a flat field collection into an ordered
// section -> subsection -> fields tree for rendering. Fields without a
// section land in the SectionFallback bucket. emptySections and
// emptySubsections inject custom sections and subsections that have no
// fields yet, so they still render as empty groups; they are appended
// after the sections observed in the collection, skipping names already
// present.
func GroupBySection(fields []Field, emptySections []string, emptySubsections map[string][]string) []SectionGroup {
	var groups []SectionGroup
	index := make(map[string]int)

	groupFor := func(section string) *SectionGroup {
		if i, ok := index[section]; ok {
			return &groups[i]
		}
		groups = append(groups, SectionGroup{Name: section})
		index[section] = len(groups) - 1
		return &groups[len(groups)-1]
	}

	for _, f := range fields {
		section := f.Section
		if section == "" {
			section = SectionFallback
		}
		g := groupFor(section)
		sub := g.Subsection(f.Subsection)
		if sub == nil {
			g.Subsections = append(g.Subsections, SubsectionGroup{Name: f.Subsection})
			sub = &g.Subsections[len(g.Subsections)-1]
		}
		sub.Fields = append(sub.Fields, f)
	}

	for _, name := range emptySections {
		groupFor(name)
	}
	for section, subs := range emptySubsections {
		g := groupFor(section)
		for _, name := range subs {
			if g.Subsection(name) == nil {
				g.Subsections = append(g.Subsections, SubsectionGroup{Name: name})
			}
		}
	}

	return groups
}
