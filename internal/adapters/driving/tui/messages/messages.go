// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/lodgeworks/stayform/internal/core/domain"
	"github.com/lodgeworks/stayform/internal/core/ports/driving"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// DocumentsLoaded carries the document list back to the documents view.
type DocumentsLoaded struct {
	Documents []domain.Document
	Err       error
}

// DocumentOpened is sent when a document is selected for editing.
type DocumentOpened struct {
	Document *domain.Document
}

// DocumentCreated carries a freshly created draft back to the model.
type DocumentCreated struct {
	Document *domain.Document
	Err      error
}

// DocumentSaved carries the outcome of a save. Missing holds the unfilled
// required fields when the save was refused and needs confirmation.
type DocumentSaved struct {
	Document *domain.Document
	Missing  []domain.Field
	Err      error
}

// DocumentDeleted carries the outcome of a delete.
type DocumentDeleted struct {
	ID  string
	Err error
}

// GapsLoaded carries the gap backlog back to the gaps view.
type GapsLoaded struct {
	Gaps  []*domain.KnowledgeGap
	Stats driving.GapStats
	Err   error
}

// GapUpdated carries a resolved, ignored or reclassified gap.
type GapUpdated struct {
	Gap *domain.KnowledgeGap
	Err error
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewDocuments lists all documents.
	ViewDocuments
	// ViewEditor edits a single document.
	ViewEditor
	// ViewGaps triages the knowledge-gap backlog.
	ViewGaps
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewDocuments:
		return "documents"
	case ViewEditor:
		return "editor"
	case ViewGaps:
		return "gaps"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}
