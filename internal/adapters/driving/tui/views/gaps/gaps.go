// Package gaps provides the knowledge-gap triage view component for the
// TUI. It lists the backlog, shows one gap's detail with its transcript and
// drives the resolve, ignore and reclassify operations.
package gaps

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lodgeworks/stayform/internal/adapters/driving/tui/messages"
	"github.com/lodgeworks/stayform/internal/adapters/driving/tui/styles"
	"github.com/lodgeworks/stayform/internal/core/domain"
	"github.com/lodgeworks/stayform/internal/core/ports/driving"
)

// mode tracks what the gaps view is currently doing.
type mode int

const (
	modeList mode = iota
	modeDetail
	modeResolve
	modeReclassifyCategory
	modeReclassifySection
	modeReclassifySubsection
)

// View is the knowledge-gap triage view.
type View struct {
	styles     *styles.Styles
	gapService driving.GapService

	gaps     []*domain.KnowledgeGap
	stats    driving.GapStats
	selected int
	filter   domain.GapStatus

	mode  mode
	input textinput.Model

	// optionSel and options drive the reclassify pickers.
	options   []string
	optionSel int
	// pendingSel accumulates the reclassify choice level by level.
	pendingSel driving.GapSelection

	status  string
	width   int
	height  int
	ready   bool
	loading bool
	err     error
}

// NewView creates a new gaps view.
func NewView(s *styles.Styles, gapService driving.GapService) *View {
	ti := textinput.New()
	ti.Placeholder = "Resolution"
	ti.CharLimit = 500

	return &View{
		styles:     s,
		gapService: gapService,
		input:      ti,
	}
}

// Init starts loading the backlog.
func (v *View) Init() tea.Cmd {
	v.mode = modeList
	v.status = ""
	v.err = nil
	return v.loadGaps()
}

// loadGaps returns a command that loads the backlog and its stats under
// the current filter.
func (v *View) loadGaps() tea.Cmd {
	v.loading = true
	filter := v.filter
	return func() tea.Msg {
		gaps, err := v.gapService.List(context.Background(), filter)
		if err != nil {
			return messages.GapsLoaded{Err: err}
		}
		stats, err := v.gapService.Stats(context.Background())
		return messages.GapsLoaded{Gaps: gaps, Stats: stats, Err: err}
	}
}

// Update handles messages for the gaps view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		switch v.mode {
		case modeList:
			return v.handleListKey(msg)
		case modeDetail:
			return v.handleDetailKey(msg)
		case modeResolve:
			return v.handleResolveKey(msg)
		default:
			return v.handlePickerKey(msg)
		}

	case messages.GapsLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.gaps = msg.Gaps
			v.stats = msg.Stats
			v.err = nil
			if v.selected >= len(v.gaps) {
				v.selected = 0
			}
		}
		return v, nil

	case messages.GapUpdated:
		if msg.Err != nil {
			v.status = msg.Err.Error()
			return v, nil
		}
		if msg.Gap != nil {
			for i, g := range v.gaps {
				if g.ID == msg.Gap.ID {
					v.gaps[i] = msg.Gap
				}
			}
			v.status = fmt.Sprintf("Gap is now %s.", msg.Gap.Status)
		}
		return v, v.loadGaps()
	}

	return v, nil
}

func (v *View) handleListKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	v.status = ""

	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}

	case "down", "j":
		if v.selected < len(v.gaps)-1 {
			v.selected++
		}

	case "enter":
		if v.current() != nil {
			v.mode = modeDetail
		}

	case "f":
		v.cycleFilter()
		v.selected = 0
		return v, v.loadGaps()

	case "r":
		return v, v.loadGaps()

	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}
	return v, nil
}

func (v *View) handleDetailKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	g := v.current()
	if g == nil {
		v.mode = modeList
		return v, nil
	}

	switch msg.String() {
	case "a":
		if g.Status.IsTerminal() {
			v.status = fmt.Sprintf("Gap is already %s.", g.Status)
			return v, nil
		}
		v.mode = modeResolve
		v.input.SetValue("")
		v.input.Focus()
		return v, textinput.Blink

	case "i":
		if g.Status.IsTerminal() {
			v.status = fmt.Sprintf("Gap is already %s.", g.Status)
			return v, nil
		}
		id := g.ID
		v.mode = modeList
		return v, func() tea.Msg {
			updated, err := v.gapService.Ignore(context.Background(), id)
			return messages.GapUpdated{Gap: updated, Err: err}
		}

	case "c":
		v.pendingSel = driving.GapSelection{}
		v.options = categoryNames()
		v.optionSel = 0
		v.mode = modeReclassifyCategory

	case "esc", "q":
		v.mode = modeList
	}
	return v, nil
}

func (v *View) handleResolveKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "enter":
		resolution := strings.TrimSpace(v.input.Value())
		if resolution == "" {
			return v, nil
		}
		g := v.current()
		v.mode = modeList
		if g == nil {
			return v, nil
		}
		id := g.ID
		return v, func() tea.Msg {
			updated, err := v.gapService.Resolve(context.Background(), id, resolution)
			return messages.GapUpdated{Gap: updated, Err: err}
		}
	case "esc":
		v.mode = modeDetail
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) handlePickerKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.optionSel > 0 {
			v.optionSel--
		}
	case "down", "j":
		if v.optionSel < len(v.options)-1 {
			v.optionSel++
		}
	case "enter":
		return v.pickOption()
	case "esc":
		v.mode = modeDetail
	}
	return v, nil
}

// pickOption advances the reclassify flow one level. Every level offers a
// "skip" choice that leaves the deeper levels unset.
func (v *View) pickOption() (*View, tea.Cmd) {
	choice := ""
	if v.optionSel < len(v.options) {
		choice = v.options[v.optionSel]
	}

	switch v.mode {
	case modeReclassifyCategory:
		v.pendingSel.Category = domain.Category(choice)
		v.options = append([]string{}, v.gapService.SectionOptions(v.pendingSel.Category)...)
		v.options = append(v.options, skipOption)
		v.optionSel = 0
		v.mode = modeReclassifySection

	case modeReclassifySection:
		if choice == skipOption {
			return v.submitReclassify()
		}
		v.pendingSel.Section = choice
		subs := v.gapService.SubsectionOptions(v.pendingSel.Category, choice)
		if len(subs) == 0 {
			return v.submitReclassify()
		}
		v.options = append([]string{}, subs...)
		v.options = append(v.options, skipOption)
		v.optionSel = 0
		v.mode = modeReclassifySubsection

	case modeReclassifySubsection:
		if choice != skipOption {
			v.pendingSel.Subsection = choice
		}
		return v.submitReclassify()
	}
	return v, nil
}

const skipOption = "(none)"

func (v *View) submitReclassify() (*View, tea.Cmd) {
	g := v.current()
	v.mode = modeDetail
	if g == nil {
		return v, nil
	}
	id := g.ID
	sel := v.pendingSel
	return v, func() tea.Msg {
		updated, err := v.gapService.UpdateCategory(context.Background(), id, sel)
		return messages.GapUpdated{Gap: updated, Err: err}
	}
}

// cycleFilter steps all -> pending -> resolved -> ignored -> all.
func (v *View) cycleFilter() {
	switch v.filter {
	case "":
		v.filter = domain.GapPending
	case domain.GapPending:
		v.filter = domain.GapResolved
	case domain.GapResolved:
		v.filter = domain.GapIgnored
	default:
		v.filter = ""
	}
}

// current returns the highlighted gap, or nil.
func (v *View) current() *domain.KnowledgeGap {
	if v.selected < 0 || v.selected >= len(v.gaps) {
		return nil
	}
	return v.gaps[v.selected]
}

// View renders the gaps view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Knowledge Gaps"))
	b.WriteString("  ")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf(
		"[%d total: %d pending, %d resolved, %d ignored]",
		v.stats.Total, v.stats.Pending, v.stats.Resolved, v.stats.Ignored)))
	b.WriteString("\n\n")

	switch v.mode {
	case modeDetail, modeResolve:
		v.renderDetail(&b)
	case modeReclassifyCategory, modeReclassifySection, modeReclassifySubsection:
		v.renderPicker(&b)
	default:
		v.renderList(&b)
	}

	return b.String()
}

func (v *View) renderList(b *strings.Builder) {
	if v.loading {
		b.WriteString(v.styles.Muted.Render("Loading..."))
		return
	}
	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n\n" + v.styles.Help.Render("[r] Retry  [Esc] Back"))
		return
	}

	filterLabel := "all"
	if v.filter != "" {
		filterLabel = v.filter.String()
	}
	b.WriteString(v.styles.Subtitle.Render("Filter: " + filterLabel))
	b.WriteString("\n\n")

	if len(v.gaps) == 0 {
		b.WriteString(v.styles.Muted.Render("No gaps under this filter."))
	}
	for i, g := range v.gaps {
		cursor := "  "
		line := fmt.Sprintf("%-8s %-6s %s",
			g.Status, g.Priority, truncate(g.Question, 60))
		if i == v.selected {
			cursor = "> "
			line = v.styles.Selected.Render(line)
		} else {
			line = v.styles.Normal.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render(
		"[Enter] Detail  [f] Filter  [r] Reload  [Esc] Back"))
}

func (v *View) renderDetail(b *strings.Builder) {
	g := v.current()
	if g == nil {
		return
	}

	b.WriteString(v.styles.Subtitle.Render(g.Question))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Normal.Render(fmt.Sprintf("Status:       %s", g.Status)) + "\n")
	b.WriteString(v.styles.Normal.Render(fmt.Sprintf("Priority:     %s", g.Priority)) + "\n")
	b.WriteString(v.styles.Normal.Render("Classified:   "+classificationPath(g)) + "\n")
	if g.FrequencyDescription != "" {
		b.WriteString(v.styles.Normal.Render("Frequency:    "+g.FrequencyDescription) + "\n")
	}
	if g.AIResponse != "" {
		b.WriteString(v.styles.Muted.Render("AI response:  "+g.AIResponse) + "\n")
	}
	if g.Resolution != "" {
		b.WriteString(v.styles.Success.Render("Resolution:   "+g.Resolution) + "\n")
	}

	if len(g.Transcript) > 0 {
		b.WriteString("\n" + v.styles.Subtitle.Render("Transcript") + "\n")
		for _, turn := range g.Transcript {
			b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  %s: %s",
				turn.Role, turn.Content)) + "\n")
		}
	}

	b.WriteString("\n")
	if v.mode == modeResolve {
		b.WriteString(v.styles.InputField.Render(v.input.View()))
		b.WriteString("\n" + v.styles.Help.Render("[Enter] Resolve  [Esc] Cancel"))
		return
	}

	if v.status != "" {
		b.WriteString(v.styles.Warning.Render(v.status) + "\n")
	}
	b.WriteString(v.styles.Help.Render(
		"[a] Answer  [i] Ignore  [c] Reclassify  [Esc] Back"))
}

func (v *View) renderPicker(b *strings.Builder) {
	titles := map[mode]string{
		modeReclassifyCategory:   "Reclassify: pick a category",
		modeReclassifySection:    "Reclassify: pick a section",
		modeReclassifySubsection: "Reclassify: pick a subsection",
	}
	b.WriteString(v.styles.Subtitle.Render(titles[v.mode]))
	b.WriteString("\n\n")

	for i, opt := range v.options {
		cursor := "  "
		line := opt
		if i == v.optionSel {
			cursor = "> "
			line = v.styles.Selected.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}
	b.WriteString("\n" + v.styles.Help.Render("[Enter] Select  [Esc] Cancel"))
}

// classificationPath renders the effective classification of a gap.
func classificationPath(g *domain.KnowledgeGap) string {
	parts := []string{string(g.DisplayCategory())}
	if s := g.DisplaySection(); s != "" {
		parts = append(parts, s)
	}
	if s := g.DisplaySubsection(); s != "" {
		parts = append(parts, s)
	}
	return strings.Join(parts, " / ")
}

func categoryNames() []string {
	categories := domain.AllCategories()
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = string(c)
	}
	return names
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Gaps returns the loaded gaps. Used by tests.
func (v *View) Gaps() []*domain.KnowledgeGap {
	return v.gaps
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
