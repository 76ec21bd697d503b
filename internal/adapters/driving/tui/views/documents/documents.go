// Package documents provides the document list view component for the TUI.
package documents

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

// mode tracks what the list is currently doing.
type mode int

const (
	modeList mode = iota
	modePickCategory
	modeEnterTitle
	modeConfirmDelete
)

// View is the document list view.
type View struct {
	styles          *styles.Styles
	documentService driving.DocumentService

	documents    []domain.Document
	selected     int
	scrollOffset int

	mode        mode
	categories  []domain.Category
	categorySel int
	titleInput  textinput.Model

	width   int
	height  int
	ready   bool
	loading bool
	err     error
}

// NewView creates a new document list view.
func NewView(s *styles.Styles, documentService driving.DocumentService) *View {
	ti := textinput.New()
	ti.Placeholder = "Document title"
	ti.CharLimit = 120

	return &View{
		styles:          s,
		documentService: documentService,
		documents:       []domain.Document{},
		categories:      domain.AllCategories(),
		titleInput:      ti,
	}
}

// Init starts loading the document list.
func (v *View) Init() tea.Cmd {
	v.mode = modeList
	v.err = nil
	return v.loadDocuments()
}

// loadDocuments returns a command that loads all documents.
func (v *View) loadDocuments() tea.Cmd {
	v.loading = true
	return func() tea.Msg {
		docs, err := v.documentService.List(context.Background())
		return messages.DocumentsLoaded{Documents: docs, Err: err}
	}
}

// Update handles messages for the document list view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		switch v.mode {
		case modePickCategory:
			return v.handleCategoryKey(msg)
		case modeEnterTitle:
			return v.handleTitleKey(msg)
		case modeConfirmDelete:
			return v.handleDeleteKey(msg)
		default:
			return v.handleListKey(msg)
		}

	case messages.DocumentsLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.documents = msg.Documents
			v.err = nil
			if v.selected >= len(v.documents) {
				v.selected = 0
			}
		}
		return v, nil

	case messages.DocumentCreated:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		// Open the fresh draft straight in the editor.
		return v, func() tea.Msg {
			return messages.DocumentOpened{Document: msg.Document}
		}

	case messages.DocumentDeleted:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		return v, v.loadDocuments()

	case messages.DocumentSaved:
		if msg.Err == nil && msg.Document != nil {
			return v, v.loadDocuments()
		}
		if msg.Err != nil {
			v.err = msg.Err
		}
		return v, nil
	}

	return v, nil
}

func (v *View) handleListKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}

	case "down", "j":
		if v.selected < len(v.documents)-1 {
			v.selected++
		}

	case "enter":
		if doc := v.current(); doc != nil {
			id := doc.ID
			return v, func() tea.Msg {
				full, err := v.documentService.Get(context.Background(), id)
				if err != nil {
					return messages.DocumentsLoaded{Err: err}
				}
				return messages.DocumentOpened{Document: full}
			}
		}

	case "n":
		v.mode = modePickCategory
		v.categorySel = 0

	case "c":
		if doc := v.current(); doc != nil {
			id := doc.ID
			return v, func() tea.Msg {
				saved, err := v.documentService.QuickConfirm(context.Background(), id)
				return messages.DocumentSaved{Document: saved, Err: err}
			}
		}

	case "x":
		if v.current() != nil {
			v.mode = modeConfirmDelete
		}

	case "r":
		return v, v.loadDocuments()

	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}
	return v, nil
}

func (v *View) handleCategoryKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.categorySel > 0 {
			v.categorySel--
		}
	case "down", "j":
		if v.categorySel < len(v.categories)-1 {
			v.categorySel++
		}
	case "enter":
		v.mode = modeEnterTitle
		v.titleInput.SetValue("")
		v.titleInput.Focus()
		return v, textinput.Blink
	case "esc":
		v.mode = modeList
	}
	return v, nil
}

func (v *View) handleTitleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "enter":
		title := strings.TrimSpace(v.titleInput.Value())
		if title == "" {
			return v, nil
		}
		category := v.categories[v.categorySel]
		v.mode = modeList
		return v, func() tea.Msg {
			doc, err := v.documentService.Create(context.Background(), category, title)
			return messages.DocumentCreated{Document: doc, Err: err}
		}
	case "esc":
		v.mode = modeList
		return v, nil
	}

	var cmd tea.Cmd
	v.titleInput, cmd = v.titleInput.Update(msg)
	return v, cmd
}

func (v *View) handleDeleteKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "y":
		doc := v.current()
		v.mode = modeList
		if doc == nil {
			return v, nil
		}
		id := doc.ID
		return v, func() tea.Msg {
			err := v.documentService.Delete(context.Background(), id)
			return messages.DocumentDeleted{ID: id, Err: err}
		}
	case "n", "esc":
		v.mode = modeList
	}
	return v, nil
}

// current returns the highlighted document, or nil.
func (v *View) current() *domain.Document {
	if v.selected < 0 || v.selected >= len(v.documents) {
		return nil
	}
	return &v.documents[v.selected]
}

// View renders the document list.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Documents"))
	b.WriteString("\n\n")

	switch v.mode {
	case modePickCategory:
		b.WriteString(v.styles.Subtitle.Render("New document: pick a category"))
		b.WriteString("\n\n")
		for i, c := range v.categories {
			cursor := "  "
			line := c.Description()
			if i == v.categorySel {
				cursor = "> "
				line = v.styles.Selected.Render(line)
			}
			b.WriteString(cursor + line + "\n")
		}
		b.WriteString("\n" + v.styles.Help.Render("[Enter] Next  [Esc] Cancel"))
		return b.String()

	case modeEnterTitle:
		b.WriteString(v.styles.Subtitle.Render(
			fmt.Sprintf("New %s document", v.categories[v.categorySel])))
		b.WriteString("\n\n")
		b.WriteString(v.styles.InputField.Render(v.titleInput.View()))
		b.WriteString("\n\n" + v.styles.Help.Render("[Enter] Create  [Esc] Cancel"))
		return b.String()
	}

	if v.loading {
		b.WriteString(v.styles.Muted.Render("Loading..."))
		return b.String()
	}
	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n\n" + v.styles.Help.Render("[r] Retry  [Esc] Back"))
		return b.String()
	}
	if len(v.documents) == 0 {
		b.WriteString(v.styles.Muted.Render("No documents yet. Press n to create one."))
		b.WriteString("\n\n" + v.styles.Help.Render("[n] New  [Esc] Back"))
		return b.String()
	}

	for i, doc := range v.documents {
		cursor := "  "
		line := fmt.Sprintf("%-32s %-14s %-10s %3d%%",
			truncate(doc.Title, 32), doc.Category, doc.Status, doc.Completeness)
		if i == v.selected {
			cursor = "> "
			line = v.styles.Selected.Render(line)
		} else {
			line = v.styles.Normal.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}

	if v.mode == modeConfirmDelete {
		if doc := v.current(); doc != nil {
			b.WriteString("\n")
			b.WriteString(v.styles.Warning.Render(
				fmt.Sprintf("Delete %q? [y/n]", doc.Title)))
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render(
		"[Enter] Edit  [n] New  [c] Confirm  [x] Delete  [r] Reload  [Esc] Back"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Documents returns the loaded documents. Used by tests.
func (v *View) Documents() []domain.Document {
	return v.documents
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
