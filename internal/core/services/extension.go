package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/lodgeworks/stayform/internal/core/domain"
	"github.com/lodgeworks/stayform/internal/core/ports/driving"
	"github.com/lodgeworks/stayform/internal/core/taxonomy"
	"github.com/lodgeworks/stayform/internal/logger"
)

// Ensure ExtensionEngine implements the interface.
var _ driving.ExtensionService = (*ExtensionEngine)(nil)

// ExtensionEngine extends one category's taxonomy during an editing
// session. Behaviour differences between categories live entirely in the
// taxonomy.CategoryDescriptor; the engine itself is category-agnostic.
//
// The engine mutates the attached document in place. It is not safe for
// concurrent use; one editing session owns it.
type ExtensionEngine struct {
	desc   taxonomy.CategoryDescriptor
	active bool
	doc    *domain.Document

	// customSections and customSubsections track user-created taxonomy in
	// creation order. They are rebuilt from the document on Attach so an
	// empty custom bucket survives only within a session, matching the
	// persistence model where sections exist through their fields.
	customSections    []string
	customSubsections map[string][]string

	now func() time.Time
}

// NewExtensionEngine creates an engine for one category, inactive and with
// no document attached.
func NewExtensionEngine(category domain.Category) *ExtensionEngine {
	return &ExtensionEngine{
		desc:              taxonomy.Descriptor(category),
		customSubsections: make(map[string][]string),
		now:               time.Now,
	}
}

// NewExtensionEngines creates one engine per category, keyed by category.
func NewExtensionEngines() map[domain.Category]*ExtensionEngine {
	engines := make(map[domain.Category]*ExtensionEngine, len(domain.AllCategories()))
	for _, c := range domain.AllCategories() {
		engines[c] = NewExtensionEngine(c)
	}
	return engines
}

// ActivateFor flips exactly one engine in the set active and attaches the
// document to it; every other engine is deactivated and detached.
func ActivateFor(engines map[domain.Category]*ExtensionEngine, doc *domain.Document) *ExtensionEngine {
	var activated *ExtensionEngine
	for c, e := range engines {
		if c == doc.Category {
			e.SetActive(true)
			e.Attach(doc)
			activated = e
		} else {
			e.SetActive(false)
			e.Attach(nil)
		}
	}
	return activated
}

// Category returns the category this engine serves.
func (e *ExtensionEngine) Category() domain.Category {
	return e.desc.Category
}

// Active reports whether the engine currently mutates.
func (e *ExtensionEngine) Active() bool {
	return e.active
}

// SetActive toggles the engine.
func (e *ExtensionEngine) SetActive(active bool) {
	e.active = active
}

// Attach binds the engine to a document and rebuilds the custom section
// and subsection bookkeeping by scanning its fields for names missing from
// the built-in registry. Attaching nil detaches.
func (e *ExtensionEngine) Attach(doc *domain.Document) {
	e.doc = doc
	e.customSections = nil
	e.customSubsections = make(map[string][]string)
	if doc == nil {
		return
	}

	for _, f := range doc.Fields {
		if f.Section != "" && !taxonomy.IsBuiltinSection(e.desc.Category, f.Section) {
			e.recordSection(f.Section)
		}
		if f.Subsection != "" && !taxonomy.IsBuiltinSubsection(e.desc.Category, f.Section, f.Subsection) {
			e.recordSubsection(f.Section, f.Subsection)
		}
	}

	logger.Debug("Attached %s engine: %d custom sections seeded",
		e.desc.Category, len(e.customSections))
}

// CustomSections returns the user-created section names, in creation order.
func (e *ExtensionEngine) CustomSections() []string {
	return append([]string(nil), e.customSections...)
}

// CustomSubsections returns the user-created subsection names under a
// section, in creation order.
func (e *ExtensionEngine) CustomSubsections(section string) []string {
	return append([]string(nil), e.customSubsections[section]...)
}

// AddSection registers a new custom section.
func (e *ExtensionEngine) AddSection(name string) error {
	if !e.ready() {
		return nil
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("section name: %w", domain.ErrBlankName)
	}
	if e.sectionExists(name) {
		return fmt.Errorf("section %q: %w", name, domain.ErrNameTaken)
	}

	if e.desc.SectionCreatesField {
		f := domain.Field{
			Key:      e.newKey(),
			Label:    name,
			Type:     domain.FieldTypePOIList,
			Section:  name,
			IsCustom: true,
			Entries:  []domain.POIEntry{},
		}
		e.doc.Fields = append(e.doc.Fields, f)
	}
	e.recordSection(name)
	return nil
}

// RemoveSection deletes a custom section, every field in it and every
// custom subsection under it.
func (e *ExtensionEngine) RemoveSection(name string) error {
	if !e.ready() {
		return nil
	}
	if taxonomy.IsBuiltinSection(e.desc.Category, name) {
		return fmt.Errorf("section %q: %w", name, domain.ErrBuiltinSection)
	}
	if !contains(e.customSections, name) {
		return fmt.Errorf("section %q: %w", name, domain.ErrNotFound)
	}

	kept := e.doc.Fields[:0]
	removed := 0
	for _, f := range e.doc.Fields {
		if f.Section == name {
			removed++
			continue
		}
		kept = append(kept, f)
	}
	e.doc.Fields = kept
	e.customSections = remove(e.customSections, name)
	delete(e.customSubsections, name)

	logger.Debug("Removed section %q and %d fields", name, removed)
	return nil
}

// AddSubsection registers a custom subsection under a section, for
// categories with a two-level taxonomy.
func (e *ExtensionEngine) AddSubsection(section, name string) error {
	if !e.ready() {
		return nil
	}
	if !e.desc.SupportsSubsections {
		return fmt.Errorf("%w: %s does not support subsections", domain.ErrInvalidInput, e.desc.Category)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("subsection name: %w", domain.ErrBlankName)
	}
	if !e.sectionExists(section) {
		return fmt.Errorf("section %q: %w", section, domain.ErrNotFound)
	}
	if e.subsectionExists(section, name) {
		return fmt.Errorf("subsection %q: %w", name, domain.ErrNameTaken)
	}

	if e.desc.SubsectionPlaceholder {
		// A toggle named after the subsection keeps the otherwise empty
		// group visible across saves.
		f := domain.Field{
			Key:        e.newKey(),
			Label:      name,
			Type:       domain.FieldTypeBoolean,
			Section:    section,
			Subsection: name,
			IsCustom:   true,
		}
		e.doc.Fields = append(e.doc.Fields, f)
	}
	e.recordSubsection(section, name)
	return nil
}

// RemoveSubsection deletes a custom subsection and every field in it.
func (e *ExtensionEngine) RemoveSubsection(section, name string) error {
	if !e.ready() {
		return nil
	}
	if taxonomy.IsBuiltinSubsection(e.desc.Category, section, name) {
		return fmt.Errorf("subsection %q: %w", name, domain.ErrBuiltinSection)
	}
	if !contains(e.customSubsections[section], name) {
		return fmt.Errorf("subsection %q: %w", name, domain.ErrNotFound)
	}

	kept := e.doc.Fields[:0]
	for _, f := range e.doc.Fields {
		if f.Section == section && f.Subsection == name {
			continue
		}
		kept = append(kept, f)
	}
	e.doc.Fields = kept
	e.customSubsections[section] = remove(e.customSubsections[section], name)
	return nil
}

// AddSimpleField appends a custom text field to a section.
func (e *ExtensionEngine) AddSimpleField(
	section, subsection, label, value string,
) (*domain.Field, error) {
	if !e.ready() {
		return nil, nil
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, fmt.Errorf("field label: %w", domain.ErrBlankName)
	}

	f := domain.Field{
		Key:        e.newKey(),
		Label:      label,
		Type:       domain.FieldTypeText,
		Section:    section,
		Subsection: subsection,
		IsCustom:   true,
		Text:       value,
	}
	e.doc.Fields = append(e.doc.Fields, f)
	return e.doc.FieldByKey(f.Key), nil
}

// AddBooleanField appends a custom toggle field. With options requested the
// field is created charged, carrying the fee amount and the encoded fee
// detail.
func (e *ExtensionEngine) AddBooleanField(
	section string, params driving.BooleanFieldParams,
) (*domain.Field, error) {
	if !e.ready() {
		return nil, nil
	}
	label := strings.TrimSpace(params.Label)
	if label == "" {
		return nil, fmt.Errorf("field label: %w", domain.ErrBlankName)
	}

	f := domain.Field{
		Key:        e.newKey(),
		Label:      label,
		Type:       domain.FieldTypeBoolean,
		Section:    section,
		Subsection: params.Subsection,
		IsCustom:   true,
	}
	if params.WithOptions {
		f.Type = domain.FieldTypeBooleanWithOptions
		f.FeeStatus = domain.FeeStatusCharged
		f.FeeNote = params.FeeAmount
		f.AdditionalNote = domain.EncodeFeeDetail(params.FeeType, params.FeeNote)
	}
	e.doc.Fields = append(e.doc.Fields, f)
	return e.doc.FieldByKey(f.Key), nil
}

// AddFacilityField appends a custom facility field: a toggle created
// switched on, or a text field carrying the value. Fee configuration is
// stored in the fee facets for toggles and folded into the text otherwise.
func (e *ExtensionEngine) AddFacilityField(
	section string, params driving.FacilityFieldParams,
) (*domain.Field, error) {
	if !e.ready() {
		return nil, nil
	}
	label := strings.TrimSpace(params.Label)
	if label == "" {
		return nil, fmt.Errorf("field label: %w", domain.ErrBlankName)
	}

	f := domain.Field{
		Key:        e.newKey(),
		Label:      label,
		Section:    section,
		Subsection: params.Subsection,
		IsCustom:   true,
	}
	switch {
	case params.Toggle:
		f.Type = domain.FieldTypeBooleanWithOptions
		f.On = true
		if params.Charged {
			f.FeeStatus = domain.FeeStatusCharged
			f.FeeNote = params.FeeAmount
			f.AdditionalNote = domain.EncodeFeeDetail(params.FeeType, params.FeeNote)
		} else {
			f.FeeStatus = domain.FeeStatusFree
		}
	default:
		f.Type = domain.FieldTypeText
		f.Text = params.Value
		if params.Charged {
			detail := joinNonBlank(", ", params.FeeAmount, params.FeeNote)
			if detail != "" {
				f.Text = joinNonBlank(" ", f.Text,
					fmt.Sprintf("(%s: %s)", params.FeeType.Description(), detail))
			}
		}
	}
	e.doc.Fields = append(e.doc.Fields, f)
	return e.doc.FieldByKey(f.Key), nil
}

// RemoveField deletes a custom field by key.
func (e *ExtensionEngine) RemoveField(key string) error {
	if !e.ready() {
		return nil
	}
	f := e.doc.FieldByKey(key)
	if f == nil {
		return fmt.Errorf("field %q: %w", key, domain.ErrNotFound)
	}
	if !f.IsCustom {
		return fmt.Errorf("field %q: %w", key, domain.ErrNotCustomField)
	}

	kept := e.doc.Fields[:0]
	for _, existing := range e.doc.Fields {
		if existing.Key == key {
			continue
		}
		kept = append(kept, existing)
	}
	e.doc.Fields = kept
	return nil
}

// AddPOIEntry appends an empty entry to a poi-list field and returns it.
func (e *ExtensionEngine) AddPOIEntry(fieldKey string) (*domain.POIEntry, error) {
	if !e.ready() {
		return nil, nil
	}
	f, err := e.poiField(fieldKey)
	if err != nil {
		return nil, err
	}
	f.Entries = append(f.Entries, domain.NewPOIEntry())
	return &f.Entries[len(f.Entries)-1], nil
}

// UpdatePOIEntry replaces the tag, name and distance of an entry. The
// entry's identity is kept.
func (e *ExtensionEngine) UpdatePOIEntry(fieldKey, entryID string, entry domain.POIEntry) error {
	if !e.ready() {
		return nil
	}
	f, err := e.poiField(fieldKey)
	if err != nil {
		return err
	}
	i := domain.FindEntry(f.Entries, entryID)
	if i < 0 {
		return fmt.Errorf("poi entry %q: %w", entryID, domain.ErrNotFound)
	}
	f.Entries[i].Tag = entry.Tag
	f.Entries[i].Name = entry.Name
	f.Entries[i].Distance = entry.Distance
	return nil
}

// RemovePOIEntry deletes an entry from a poi-list field.
func (e *ExtensionEngine) RemovePOIEntry(fieldKey, entryID string) error {
	if !e.ready() {
		return nil
	}
	f, err := e.poiField(fieldKey)
	if err != nil {
		return err
	}
	i := domain.FindEntry(f.Entries, entryID)
	if i < 0 {
		return fmt.Errorf("poi entry %q: %w", entryID, domain.ErrNotFound)
	}
	f.Entries = append(f.Entries[:i], f.Entries[i+1:]...)
	return nil
}

// ready reports whether mutations apply: active with a document attached.
func (e *ExtensionEngine) ready() bool {
	return e.active && e.doc != nil
}

// newKey generates a custom field key. Nanosecond timestamps keep keys
// unique within a session without coordinating with the document store.
func (e *ExtensionEngine) newKey() string {
	return fmt.Sprintf("custom_%d", e.now().UnixNano())
}

func (e *ExtensionEngine) sectionExists(name string) bool {
	return taxonomy.IsBuiltinSection(e.desc.Category, name) || contains(e.customSections, name)
}

func (e *ExtensionEngine) subsectionExists(section, name string) bool {
	return taxonomy.IsBuiltinSubsection(e.desc.Category, section, name) ||
		contains(e.customSubsections[section], name)
}

func (e *ExtensionEngine) recordSection(name string) {
	if !contains(e.customSections, name) {
		e.customSections = append(e.customSections, name)
	}
}

func (e *ExtensionEngine) recordSubsection(section, name string) {
	if !contains(e.customSubsections[section], name) {
		e.customSubsections[section] = append(e.customSubsections[section], name)
	}
}

func (e *ExtensionEngine) poiField(key string) (*domain.Field, error) {
	f := e.doc.FieldByKey(key)
	if f == nil {
		return nil, fmt.Errorf("field %q: %w", key, domain.ErrNotFound)
	}
	if f.Type != domain.FieldTypePOIList {
		return nil, fmt.Errorf("field %q: %w: not a poi-list field", key, domain.ErrInvalidInput)
	}
	return f, nil
}

func contains(list []string, name string) bool {
	for _, s := range list {
		if s == name {
			return true
		}
	}
	return false
}

func remove(list []string, name string) []string {
	kept := list[:0]
	for _, s := range list {
		if s != name {
			kept = append(kept, s)
		}
	}
	return kept
}

func joinNonBlank(sep string, parts ...string) string {
	var filled []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			filled = append(filled, p)
		}
	}
	return strings.Join(filled, sep)
}
