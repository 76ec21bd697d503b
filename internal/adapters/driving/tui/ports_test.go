package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lodgeworks/stayform/internal/adapters/driven/storage/memory"
	"github.com/lodgeworks/stayform/internal/core/domain"
	"github.com/lodgeworks/stayform/internal/core/ports/driving"
	"github.com/lodgeworks/stayform/internal/core/services"
)

func newTestPorts() *Ports {
	extensions := make(map[domain.Category]driving.ExtensionService)
	for category, engine := range services.NewExtensionEngines() {
		extensions[category] = engine
	}
	return NewPorts(
		services.NewDocumentService(memory.NewDocumentStore()),
		services.NewGapService(memory.NewGapStore()),
		extensions,
	)
}

func TestPorts_Validate(t *testing.T) {
	assert.NoError(t, newTestPorts().Validate())
}

func TestPorts_ValidateMissingService(t *testing.T) {
	p := newTestPorts()
	p.Document = nil
	assert.Error(t, p.Validate())

	p = newTestPorts()
	p.Gap = nil
	assert.Error(t, p.Validate())

	p = newTestPorts()
	p.Extensions = nil
	assert.Error(t, p.Validate())
}

func TestPorts_ActivateExtension(t *testing.T) {
	p := newTestPorts()

	doc, err := p.Document.Create(context.Background(), domain.CategoryFacility, "Spa")
	require.NoError(t, err)

	engine := p.ActivateExtension(doc)
	require.NotNil(t, engine)
	assert.Equal(t, domain.CategoryFacility, engine.Category())
	assert.True(t, engine.Active())

	for category, e := range p.Extensions {
		if category != domain.CategoryFacility {
			assert.False(t, e.Active())
		}
	}

	// Activating for another document deactivates the previous engine.
	other, err := p.Document.Create(context.Background(), domain.CategoryPolicy, "Rules")
	require.NoError(t, err)
	next := p.ActivateExtension(other)
	require.NotNil(t, next)
	assert.Equal(t, domain.CategoryPolicy, next.Category())
	assert.False(t, engine.Active())
}
