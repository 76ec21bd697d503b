package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lodgeworks/stayform/internal/adapters/driving/tui/messages"
	"github.com/lodgeworks/stayform/internal/adapters/driving/tui/styles"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMenu_Navigation(t *testing.T) {
	v := NewView(styles.DefaultStyles())
	v.SetDimensions(80, 24)

	assert.Equal(t, 0, v.Selected())

	v, _ = v.Update(key("j"))
	assert.Equal(t, 1, v.Selected())

	v, _ = v.Update(key("k"))
	assert.Equal(t, 0, v.Selected())

	// Cannot move above the first item
	v, _ = v.Update(key("k"))
	assert.Equal(t, 0, v.Selected())
}

func TestMenu_SelectEmitsViewChanged(t *testing.T) {
	v := NewView(styles.DefaultStyles())
	v.SetDimensions(80, 24)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	changed, ok := msg.(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewDocuments, changed.View)
}

func TestMenu_QuitItem(t *testing.T) {
	v := NewView(styles.DefaultStyles())
	v.SetDimensions(80, 24)

	// Last item quits
	for i := 0; i < 3; i++ {
		v, _ = v.Update(key("j"))
	}
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestMenu_QKeyQuits(t *testing.T) {
	v := NewView(styles.DefaultStyles())
	v.SetDimensions(80, 24)

	_, cmd := v.Update(key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestMenu_View(t *testing.T) {
	v := NewView(styles.DefaultStyles())
	v.SetDimensions(80, 24)

	out := v.View()
	assert.Contains(t, out, "Stayform")
	assert.Contains(t, out, "Documents")
	assert.Contains(t, out, "Knowledge Gaps")
	assert.Contains(t, out, "Help")
	assert.Contains(t, out, "Quit")
}
