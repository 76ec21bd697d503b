package gaps

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lodgeworks/stayform/internal/adapters/driven/storage/memory"
	"github.com/lodgeworks/stayform/internal/adapters/driving/tui/messages"
	"github.com/lodgeworks/stayform/internal/adapters/driving/tui/styles"
	"github.com/lodgeworks/stayform/internal/core/domain"
	"github.com/lodgeworks/stayform/internal/core/services"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(v *View, text string) *View {
	for _, r := range text {
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return v
}

// runCmds feeds command results back into the view until none remain.
func runCmds(v *View, cmd tea.Cmd) *View {
	for cmd != nil {
		v, cmd = v.Update(cmd())
	}
	return v
}

// newLoadedView builds a view over a seeded in-memory store and runs the
// initial load synchronously.
func newLoadedView(t *testing.T) *View {
	t.Helper()

	store := memory.NewGapStore()
	require.NoError(t, memory.SeedGaps(context.Background(), store))

	v := NewView(styles.DefaultStyles(), services.NewGapService(store))
	v.SetDimensions(100, 40)

	cmd := v.Init()
	require.NotNil(t, cmd)
	return runCmds(v, cmd)
}

func TestGaps_LoadsOnInit(t *testing.T) {
	v := newLoadedView(t)

	assert.Len(t, v.Gaps(), 4)
	out := v.View()
	assert.Contains(t, out, "4 total: 2 pending, 1 resolved, 1 ignored")
	assert.Contains(t, out, "shuttle")
}

func TestGaps_FilterCycle(t *testing.T) {
	v := newLoadedView(t)

	v, cmd := v.Update(key("f"))
	v = runCmds(v, cmd)
	assert.Contains(t, v.View(), "Filter: pending")
	assert.Len(t, v.Gaps(), 2)

	v, cmd = v.Update(key("f"))
	v = runCmds(v, cmd)
	assert.Contains(t, v.View(), "Filter: resolved")
	assert.Len(t, v.Gaps(), 1)

	v, cmd = v.Update(key("f"))
	v = runCmds(v, cmd)
	assert.Contains(t, v.View(), "Filter: ignored")

	v, cmd = v.Update(key("f"))
	v = runCmds(v, cmd)
	assert.Contains(t, v.View(), "Filter: all")
	assert.Len(t, v.Gaps(), 4)
}

func TestGaps_DetailShowsTranscript(t *testing.T) {
	v := newLoadedView(t)

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	out := v.View()
	assert.Contains(t, out, "Airport transfer")
	assert.Contains(t, out, "Transcript")
	assert.Contains(t, out, "Do you run an airport shuttle?")
	assert.Contains(t, out, "facility / Transport Services")
}

func TestGaps_ResolveFlow(t *testing.T) {
	v := newLoadedView(t)

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	v, _ = v.Update(key("a"))
	v = typeText(v, "Shuttle runs hourly, booking required.")
	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	updated, ok := cmd().(messages.GapUpdated)
	require.True(t, ok)
	require.NoError(t, updated.Err)
	assert.Equal(t, domain.GapResolved, updated.Gap.Status)
	assert.Equal(t, "Shuttle runs hourly, booking required.", updated.Gap.Resolution)

	v = runCmds(v, func() tea.Msg { return updated })
	assert.Contains(t, v.View(), "3 pending")
}

func TestGaps_IgnoreFlow(t *testing.T) {
	v := newLoadedView(t)

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	v, cmd := v.Update(key("i"))
	require.NotNil(t, cmd)

	updated, ok := cmd().(messages.GapUpdated)
	require.True(t, ok)
	require.NoError(t, updated.Err)
	assert.Equal(t, domain.GapIgnored, updated.Gap.Status)
}

func TestGaps_TerminalGapRejectsResolve(t *testing.T) {
	v := newLoadedView(t)

	// Third seeded gap is resolved.
	v, _ = v.Update(key("j"))
	v, _ = v.Update(key("j"))
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	v, cmd := v.Update(key("a"))
	assert.Nil(t, cmd)
	assert.Contains(t, v.View(), "already resolved")

	v, cmd = v.Update(key("i"))
	assert.Nil(t, cmd)
	assert.Contains(t, v.View(), "already resolved")
}

func TestGaps_ReclassifyFlow(t *testing.T) {
	v := newLoadedView(t)

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	v, _ = v.Update(key("c"))
	assert.Contains(t, v.View(), "pick a category")

	// Pick policy (fourth category option).
	for i := 0; i < 3; i++ {
		v, _ = v.Update(key("j"))
	}
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, v.View(), "pick a section")

	// First section option for policy.
	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	updated, ok := cmd().(messages.GapUpdated)
	require.True(t, ok)
	require.NoError(t, updated.Err)
	assert.Equal(t, domain.CategoryPolicy, updated.Gap.ConfirmedCategory)
	assert.NotEmpty(t, updated.Gap.ConfirmedSection)
	// The machine suggestion survives the override.
	assert.Equal(t, domain.CategoryFacility, updated.Gap.SuggestedCategory)
}

func TestGaps_LoadError(t *testing.T) {
	v := newLoadedView(t)

	v, _ = v.Update(messages.GapsLoaded{Err: assert.AnError})
	assert.Contains(t, v.View(), "Error")
}
