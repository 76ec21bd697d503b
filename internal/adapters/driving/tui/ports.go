// Package tui provides an interactive terminal user interface for stayform.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"errors"

	"github.com/lodgeworks/stayform/internal/core/domain"
	"github.com/lodgeworks/stayform/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Document manages the document lifecycle.
	Document driving.DocumentService

	// Gap manages the knowledge-gap backlog.
	Gap driving.GapService

	// Extensions holds one taxonomy extension engine per category. The
	// editor activates the engine matching the opened document.
	Extensions map[domain.Category]driving.ExtensionService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	document driving.DocumentService,
	gap driving.GapService,
	extensions map[domain.Category]driving.ExtensionService,
) *Ports {
	return &Ports{
		Document:   document,
		Gap:        gap,
		Extensions: extensions,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Document == nil {
		return errors.New("document service is required")
	}
	if p.Gap == nil {
		return errors.New("gap service is required")
	}
	if len(p.Extensions) == 0 {
		return errors.New("extension engines are required")
	}
	return nil
}

// ActivateExtension flips the engine matching the document's category
// active and attached; every other engine is deactivated.
func (p *Ports) ActivateExtension(doc *domain.Document) driving.ExtensionService {
	var active driving.ExtensionService
	for category, engine := range p.Extensions {
		if doc != nil && category == doc.Category {
			engine.SetActive(true)
			engine.Attach(doc)
			active = engine
		} else {
			engine.SetActive(false)
			engine.Attach(nil)
		}
	}
	return active
}
