package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lodgeworks/stayform/internal/adapters/driving/tui/messages"
	"github.com/lodgeworks/stayform/internal/adapters/driving/tui/styles"
	"github.com/lodgeworks/stayform/internal/adapters/driving/tui/views/documents"
	"github.com/lodgeworks/stayform/internal/adapters/driving/tui/views/editor"
	"github.com/lodgeworks/stayform/internal/adapters/driving/tui/views/gaps"
	"github.com/lodgeworks/stayform/internal/adapters/driving/tui/views/menu"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// menuView is the main navigation menu.
	menuView *menu.View

	// documentsView is the document list view component.
	documentsView *documents.View

	// editorView is the document editing view component.
	editorView *editor.View

	// gapsView is the knowledge-gap triage view component.
	gapsView *gaps.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		menuView:      menu.NewView(s),
		documentsView: documents.NewView(s, ports.Document),
		editorView:    editor.NewView(s, ports.Document),
		gapsView:      gaps.NewView(s, ports.Gap),
		currentView:   messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("stayform - Hotel Data Entry"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.documentsView.SetDimensions(msg.Width, msg.Height)
		a.editorView.SetDimensions(msg.Width, msg.Height)
		a.gapsView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
			return a, cmd

		case messages.ViewDocuments:
			a.documentsView, cmd = a.documentsView.Update(msg)
			return a, cmd

		case messages.ViewEditor:
			a.editorView, cmd = a.editorView.Update(msg)
			return a, cmd

		case messages.ViewGaps:
			a.gapsView, cmd = a.gapsView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			// Esc from help goes to menu
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
				return a, nil
			}
			return a, nil
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		// Initialise views when switching to them
		switch msg.View {
		case messages.ViewDocuments:
			return a, a.documentsView.Init()
		case messages.ViewGaps:
			return a, a.gapsView.Init()
		case messages.ViewEditor:
			return a, a.editorView.Init()
		case messages.ViewMenu, messages.ViewHelp:
			// No special initialisation
		}
		return a, nil

	case messages.DocumentOpened:
		// Navigate to the editor with the matching extension engine active.
		engine := a.ports.ActivateExtension(msg.Document)
		a.editorView.SetDocument(msg.Document, engine)
		a.currentView = messages.ViewEditor
		return a, a.editorView.Init()

	case messages.DocumentsLoaded, messages.DocumentCreated, messages.DocumentDeleted:
		a.documentsView, cmd = a.documentsView.Update(msg)
		return a, cmd

	case messages.DocumentSaved:
		// Saves originate in the editor; the documents view refreshes its
		// list from quick confirms.
		if a.currentView == messages.ViewEditor {
			a.editorView, cmd = a.editorView.Update(msg)
			return a, cmd
		}
		a.documentsView, cmd = a.documentsView.Update(msg)
		return a, cmd

	case messages.GapsLoaded, messages.GapUpdated:
		a.gapsView, cmd = a.gapsView.Update(msg)
		return a, cmd
	}

	// Forward other messages to the active view
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewDocuments:
		a.documentsView, cmd = a.documentsView.Update(msg)
	case messages.ViewEditor:
		a.editorView, cmd = a.editorView.Update(msg)
	case messages.ViewGaps:
		a.gapsView, cmd = a.gapsView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewDocuments:
		return a.documentsView.View()
	case messages.ViewEditor:
		return a.editorView.View()
	case messages.ViewGaps:
		return a.gapsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// CurrentView returns the active view type. Used by tests.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back to Menu
  ctrl+c      Quit

Documents:
  j/k, ↑/↓    Navigate documents
  enter       Open in editor
  n           New document
  c           Quick confirm
  x           Delete
  r           Reload

Editor:
  j/k, ↑/↓    Navigate fields
  enter, e    Edit field value
  space       Toggle boolean field
  f           Cycle charge state
  a           Add point of interest
  s, ctrl+s   Save document
  F           Add custom field
  S           Add custom section
  U           Add custom subsection
  x           Remove custom field

Knowledge Gaps:
  j/k, ↑/↓    Navigate gaps
  enter       Open detail
  f           Cycle status filter
  a           Answer (resolve)
  i           Ignore
  c           Reclassify

[esc] back to menu`
}
