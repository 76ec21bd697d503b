// Package editor provides the document editing view component for the TUI.
// It renders a document's fields grouped by section and subsection, with
// inline editing and taxonomy extension commands.
package editor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lodgeworks/stayform/internal/adapters/driving/tui/messages"
	"github.com/lodgeworks/stayform/internal/adapters/driving/tui/styles"
	"github.com/lodgeworks/stayform/internal/core/domain"
	"github.com/lodgeworks/stayform/internal/core/ports/driving"
)

// mode tracks what the editor is currently doing.
type mode int

const (
	modeBrowse mode = iota
	modeEditValue
	modeAddSection
	modeAddSubsection
	modeAddFieldLabel
	modeAddFieldValue
	modePOIName
	modePOIDistance
	modePOITag
	modeConfirmForce
	modeConfirmRemove
)

// rowKind discriminates the flattened render rows.
type rowKind int

const (
	rowSection rowKind = iota
	rowSubsection
	rowField
)

// row is one line of the flattened section tree.
type row struct {
	kind       rowKind
	section    string
	subsection string
	key        string
	stats      domain.SectionStats
}

// View is the document editor view.
type View struct {
	styles          *styles.Styles
	documentService driving.DocumentService

	doc    *domain.Document
	engine driving.ExtensionService

	rows     []row
	selected int

	mode  mode
	input textinput.Model

	// pendingLabel carries the label between the two add-field steps.
	pendingLabel string
	// pendingEntry carries the entry being filled across the POI steps.
	pendingEntry domain.POIEntry
	pendingKey   string
	// pendingMissing holds the refused save's missing fields.
	pendingMissing []domain.Field

	status string
	width  int
	height int
	ready  bool
}

// NewView creates a new editor view.
func NewView(s *styles.Styles, documentService driving.DocumentService) *View {
	ti := textinput.New()
	ti.CharLimit = 500

	return &View{
		styles:          s,
		documentService: documentService,
		input:           ti,
	}
}

// Init resets transient state. The document is set via SetDocument.
func (v *View) Init() tea.Cmd {
	v.mode = modeBrowse
	v.status = ""
	return nil
}

// SetDocument binds the editor to a document and its category's extension
// engine. The engine is expected to be active and attached already.
func (v *View) SetDocument(doc *domain.Document, engine driving.ExtensionService) {
	v.doc = doc
	v.engine = engine
	v.selected = 0
	v.mode = modeBrowse
	v.status = ""
	v.rebuild()
}

// Document returns the document being edited. Used by tests.
func (v *View) Document() *domain.Document {
	return v.doc
}

// rebuild recomputes the flattened row list from the document's fields and
// the engine's custom taxonomy.
func (v *View) rebuild() {
	v.rows = v.rows[:0]
	if v.doc == nil {
		return
	}

	var emptySections []string
	emptySubsections := map[string][]string{}
	if v.engine != nil {
		emptySections = v.engine.CustomSections()
		for _, s := range v.sectionNames() {
			if subs := v.engine.CustomSubsections(s); len(subs) > 0 {
				emptySubsections[s] = subs
			}
		}
	}

	groups := domain.GroupBySection(v.doc.Fields, emptySections, emptySubsections)
	for _, g := range groups {
		v.rows = append(v.rows, row{
			kind:    rowSection,
			section: g.Name,
			stats:   domain.ComputeSectionStats(g),
		})
		for _, sub := range g.Subsections {
			if sub.Name != "" {
				v.rows = append(v.rows, row{
					kind:       rowSubsection,
					section:    g.Name,
					subsection: sub.Name,
				})
			}
			for _, f := range sub.Fields {
				v.rows = append(v.rows, row{
					kind:       rowField,
					section:    g.Name,
					subsection: sub.Name,
					key:        f.Key,
				})
			}
		}
	}

	if v.selected >= len(v.rows) {
		v.selected = 0
	}
	v.snapToField(1)
}

// sectionNames returns every section name appearing in the document plus
// the engine's custom sections, deduplicated in order.
func (v *View) sectionNames() []string {
	var names []string
	seen := map[string]bool{}
	add := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for _, f := range v.doc.Fields {
		add(f.Section)
	}
	if v.engine != nil {
		for _, s := range v.engine.CustomSections() {
			add(s)
		}
	}
	return names
}

// snapToField moves the cursor in the given direction until it rests on a
// field row, when any field row exists.
func (v *View) snapToField(dir int) {
	if len(v.rows) == 0 {
		v.selected = 0
		return
	}
	i := v.selected
	for i >= 0 && i < len(v.rows) && v.rows[i].kind != rowField {
		i += dir
	}
	if i < 0 || i >= len(v.rows) {
		// Bounce back the other way.
		i = v.selected
		for i >= 0 && i < len(v.rows) && v.rows[i].kind != rowField {
			i -= dir
		}
	}
	if i >= 0 && i < len(v.rows) {
		v.selected = i
	}
}

// currentRow returns the highlighted row, or nil.
func (v *View) currentRow() *row {
	if v.selected < 0 || v.selected >= len(v.rows) {
		return nil
	}
	return &v.rows[v.selected]
}

// currentField returns the highlighted document field, or nil.
func (v *View) currentField() *domain.Field {
	r := v.currentRow()
	if r == nil || r.kind != rowField {
		return nil
	}
	return v.doc.FieldByKey(r.key)
}

// Update handles messages for the editor view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		if v.mode == modeBrowse {
			return v.handleBrowseKey(msg)
		}
		return v.handlePromptKey(msg)

	case messages.DocumentSaved:
		if msg.Err != nil {
			var missing *domain.MissingRequiredError
			if errors.As(msg.Err, &missing) {
				v.pendingMissing = missing.Fields
				v.mode = modeConfirmForce
				return v, nil
			}
			v.status = "Save failed: " + msg.Err.Error()
			return v, nil
		}
		v.doc = msg.Document
		if v.engine != nil {
			v.engine.Attach(v.doc)
		}
		v.rebuild()
		v.status = fmt.Sprintf("Saved. Completeness %d%%, status %s.",
			v.doc.Completeness, v.doc.Status)
		return v, nil
	}

	return v, nil
}

func (v *View) handleBrowseKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	v.status = ""

	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
			v.snapToField(-1)
		}

	case "down", "j":
		if v.selected < len(v.rows)-1 {
			v.selected++
			v.snapToField(1)
		}

	case " ":
		if f := v.currentField(); f != nil && f.Type.IsBooleanBacked() {
			f.On = !f.On
		}

	case "f":
		if f := v.currentField(); f != nil && f.Type == domain.FieldTypeBooleanWithOptions {
			v.cycleFeeStatus(f)
		}

	case "enter", "e":
		return v.startValueEdit()

	case "a":
		if f := v.currentField(); f != nil && v.engine != nil && f.Type == domain.FieldTypePOIList {
			return v.startPOIEntry(f.Key)
		}

	case "S":
		if v.engine != nil {
			return v.prompt(modeAddSection, "Section name"), textinput.Blink
		}

	case "U":
		if r := v.currentRow(); r != nil && v.engine != nil {
			return v.prompt(modeAddSubsection, "Subsection name"), textinput.Blink
		}

	case "F":
		if r := v.currentRow(); r != nil && v.engine != nil {
			return v.prompt(modeAddFieldLabel, "Field label"), textinput.Blink
		}

	case "x":
		if f := v.currentField(); f != nil && v.engine != nil && f.IsCustom {
			v.mode = modeConfirmRemove
		} else if f != nil {
			v.status = "Built-in fields cannot be removed."
		}

	case "ctrl+s", "s":
		return v, v.save(false)

	case "esc", "q":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewDocuments}
		}
	}
	return v, nil
}

func (v *View) handlePromptKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch v.mode {
	case modeConfirmForce:
		switch msg.String() {
		case "y":
			v.mode = modeBrowse
			return v, v.save(true)
		case "n", "esc":
			v.mode = modeBrowse
			v.status = "Not saved."
		}
		return v, nil

	case modeConfirmRemove:
		switch msg.String() {
		case "y":
			v.mode = modeBrowse
			if f := v.currentField(); f != nil {
				if err := v.engine.RemoveField(f.Key); err != nil {
					v.status = err.Error()
				} else {
					v.rebuild()
				}
			}
		case "n", "esc":
			v.mode = modeBrowse
		}
		return v, nil
	}

	switch msg.String() {
	case "enter":
		return v.submitPrompt()
	case "esc":
		v.mode = modeBrowse
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// prompt switches the editor into a text input mode.
func (v *View) prompt(m mode, placeholder string) *View {
	v.mode = m
	v.input.Placeholder = placeholder
	v.input.SetValue("")
	v.input.Focus()
	return v
}

// startValueEdit opens the text input primed with the field's live text
// facet. Toggle-only and poi-list fields have no text facet to edit.
func (v *View) startValueEdit() (*View, tea.Cmd) {
	f := v.currentField()
	if f == nil {
		return v, nil
	}

	switch {
	case f.Type.IsTextBacked():
		v.prompt(modeEditValue, f.Placeholder)
		v.input.SetValue(f.Text)
	case f.Type == domain.FieldTypeBooleanWithText:
		v.prompt(modeEditValue, "Note")
		v.input.SetValue(f.AdditionalNote)
	case f.Type == domain.FieldTypeBooleanWithLanguages:
		v.prompt(modeEditValue, "Languages, comma separated")
		v.input.SetValue(strings.Join(f.Languages, ", "))
	case f.Type == domain.FieldTypeBooleanWithOptions:
		v.prompt(modeEditValue, "Fee amount, e.g. 10 EUR")
		v.input.SetValue(f.FeeNote)
	case f.Type == domain.FieldTypePOIList && v.engine != nil:
		return v.startPOIEntry(f.Key)
	default:
		v.status = "Press space to toggle this field."
		return v, nil
	}
	return v, textinput.Blink
}

func (v *View) startPOIEntry(fieldKey string) (*View, tea.Cmd) {
	entry, err := v.engine.AddPOIEntry(fieldKey)
	if err != nil {
		v.status = err.Error()
		return v, nil
	}
	v.pendingKey = fieldKey
	v.pendingEntry = *entry
	v.prompt(modePOIName, "Place name")
	return v, textinput.Blink
}

func (v *View) submitPrompt() (*View, tea.Cmd) {
	value := strings.TrimSpace(v.input.Value())

	switch v.mode {
	case modeEditValue:
		v.applyValue(value)
		v.mode = modeBrowse

	case modeAddSection:
		v.mode = modeBrowse
		if err := v.engine.AddSection(value); err != nil {
			v.status = err.Error()
		} else {
			v.rebuild()
		}

	case modeAddSubsection:
		v.mode = modeBrowse
		if r := v.currentRow(); r != nil {
			if err := v.engine.AddSubsection(r.section, value); err != nil {
				v.status = err.Error()
			} else {
				v.rebuild()
			}
		}

	case modeAddFieldLabel:
		if value == "" {
			v.status = "Label cannot be blank."
			v.mode = modeBrowse
			return v, nil
		}
		v.pendingLabel = value
		v.prompt(modeAddFieldValue, "Initial value (optional)")
		return v, textinput.Blink

	case modeAddFieldValue:
		v.mode = modeBrowse
		r := v.currentRow()
		if r == nil {
			return v, nil
		}
		if _, err := v.engine.AddSimpleField(r.section, r.subsection, v.pendingLabel, value); err != nil {
			v.status = err.Error()
		} else {
			v.rebuild()
		}

	case modePOIName:
		v.pendingEntry.Name = value
		v.prompt(modePOIDistance, "Distance, e.g. 1.2 km")
		return v, textinput.Blink

	case modePOIDistance:
		v.pendingEntry.Distance = value
		v.prompt(modePOITag, "Tag (optional)")
		return v, textinput.Blink

	case modePOITag:
		v.mode = modeBrowse
		v.pendingEntry.Tag = value
		if err := v.engine.UpdatePOIEntry(v.pendingKey, v.pendingEntry.ID, v.pendingEntry); err != nil {
			v.status = err.Error()
		} else {
			v.rebuild()
		}

	default:
		v.mode = modeBrowse
	}
	return v, nil
}

// applyValue writes the edited text back into the field's live facet.
func (v *View) applyValue(value string) {
	f := v.currentField()
	if f == nil {
		return
	}

	switch {
	case f.Type.IsTextBacked():
		f.Text = value
	case f.Type == domain.FieldTypeBooleanWithText:
		f.AdditionalNote = value
	case f.Type == domain.FieldTypeBooleanWithLanguages:
		f.Languages = nil
		for _, lang := range strings.Split(value, ",") {
			if lang = strings.TrimSpace(lang); lang != "" {
				f.AddLanguage(lang)
			}
		}
	case f.Type == domain.FieldTypeBooleanWithOptions:
		f.FeeNote = value
	}
}

// cycleFeeStatus steps the charge state not stated -> free -> charged and
// back around. Only the charged state may carry detail, so leaving it
// drops the stored amount and fee type.
func (v *View) cycleFeeStatus(f *domain.Field) {
	switch f.FeeStatus {
	case "":
		f.FeeStatus = domain.FeeStatusFree
	case domain.FeeStatusFree:
		f.FeeStatus = domain.FeeStatusCharged
	default:
		f.FeeStatus = ""
		f.FeeNote = ""
		f.AdditionalNote = ""
	}
}

// save persists the document. With force false a document with missing
// required fields is refused so the user can confirm.
func (v *View) save(force bool) tea.Cmd {
	doc := v.doc
	return func() tea.Msg {
		saved, err := v.documentService.Save(context.Background(), doc, force)
		return messages.DocumentSaved{Document: saved, Err: err}
	}
}

// View renders the editor.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}
	if v.doc == nil {
		return v.styles.Muted.Render("No document open.")
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render(v.doc.Title))
	b.WriteString("  ")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("[%s | %s | %d%%]",
		v.doc.Category, v.doc.Status, v.doc.Completeness)))
	b.WriteString("\n\n")

	for i, r := range v.rows {
		switch r.kind {
		case rowSection:
			header := r.section
			if r.stats.TotalFields > 0 {
				header = fmt.Sprintf("%s  (%d/%d filled", r.section, r.stats.FilledFields, r.stats.TotalFields)
				if missing := r.stats.Missing(); missing > 0 {
					header += fmt.Sprintf(", %d required missing", missing)
				}
				header += ")"
			}
			b.WriteString("\n" + v.styles.Subtitle.Render(header) + "\n")

		case rowSubsection:
			b.WriteString("  " + v.styles.Normal.Render(r.subsection) + "\n")

		case rowField:
			f := v.doc.FieldByKey(r.key)
			if f == nil {
				continue
			}
			cursor := "  "
			line := v.fieldLine(f)
			if i == v.selected {
				cursor = "> "
				line = v.styles.Selected.Render(line)
			} else if f.Required && !f.IsFilled(true) {
				line = v.styles.Warning.Render(line)
			} else {
				line = v.styles.Normal.Render(line)
			}
			indent := "  "
			if r.subsection != "" {
				indent = "    "
			}
			b.WriteString(indent + cursor + line + "\n")
		}
	}

	b.WriteString("\n")
	switch v.mode {
	case modeConfirmForce:
		labels := make([]string, 0, len(v.pendingMissing))
		for _, f := range v.pendingMissing {
			labels = append(labels, f.Label)
		}
		b.WriteString(v.styles.Warning.Render(fmt.Sprintf(
			"Missing required: %s. Save anyway? [y/n]", strings.Join(labels, ", "))))
	case modeConfirmRemove:
		if f := v.currentField(); f != nil {
			b.WriteString(v.styles.Warning.Render(
				fmt.Sprintf("Remove field %q? [y/n]", f.Label)))
		}
	case modeBrowse:
		if v.status != "" {
			b.WriteString(v.styles.Success.Render(v.status))
			b.WriteString("\n")
		}
		b.WriteString(v.styles.Help.Render(
			"[Enter] Edit  [Space] Toggle  [s] Save  [a] POI  [F] Field  [S] Section  [U] Subsection  [x] Remove  [Esc] Back"))
	default:
		b.WriteString(v.styles.InputField.Render(v.input.View()))
		b.WriteString("\n" + v.styles.Help.Render("[Enter] Apply  [Esc] Cancel"))
	}

	return b.String()
}

// fieldLine renders one field with its current value preview.
func (v *View) fieldLine(f *domain.Field) string {
	label := f.Label
	if f.Required {
		label += " *"
	}
	return fmt.Sprintf("%-34s %s", truncate(label, 34), truncate(fieldValue(f), 48))
}

// fieldValue renders a field's live value facet for display.
func fieldValue(f *domain.Field) string {
	switch {
	case f.Type == domain.FieldTypePOIList:
		if len(f.Entries) == 0 {
			return "(no entries)"
		}
		parts := make([]string, 0, len(f.Entries))
		for _, e := range f.Entries {
			parts = append(parts, fmt.Sprintf("%s (%s)", e.Name, e.Distance))
		}
		return strings.Join(parts, ", ")

	case f.Type == domain.FieldTypeBooleanWithOptions:
		if !f.On {
			return "no"
		}
		out := "yes"
		switch f.FeeStatus {
		case domain.FeeStatusCharged:
			feeType, note := domain.DecodeFeeDetail(f.AdditionalNote)
			detail := f.FeeNote
			if note != "" {
				detail = strings.TrimSpace(detail + " " + note)
			}
			out += fmt.Sprintf(", charged (%s: %s)", feeType.Description(), detail)
		case domain.FeeStatusFree:
			out += ", free"
		case domain.FeeStatusConditional:
			out += ", conditional"
		}
		return out

	case f.Type == domain.FieldTypeBooleanWithLanguages:
		if !f.On {
			return "no"
		}
		if len(f.Languages) == 0 {
			return "yes"
		}
		return "yes: " + strings.Join(f.Languages, ", ")

	case f.Type == domain.FieldTypeBooleanWithText:
		if !f.On {
			return "no"
		}
		if f.AdditionalNote == "" {
			return "yes"
		}
		return "yes: " + f.AdditionalNote

	case f.Type.IsBooleanBacked():
		if f.On {
			return "yes"
		}
		return "no"

	default:
		if strings.TrimSpace(f.Text) == "" {
			return "(empty)"
		}
		return f.Text
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
