package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lodgeworks/stayform/internal/core/domain"
)

// gapID resolves a seeded gap's ID by its question theme.
func gapID(t *testing.T, theme string) string {
	t.Helper()

	gaps, err := gapService.List(context.Background(), "")
	require.NoError(t, err)
	for _, g := range gaps {
		if g.QuestionTheme == theme {
			return g.ID
		}
	}
	t.Fatalf("no seeded gap with theme %q", theme)
	return ""
}

func TestGapCmd_Use(t *testing.T) {
	assert.Equal(t, "gap", gapCmd.Use)
}

func TestGapCmd_HasSubcommands(t *testing.T) {
	commands := gapCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "show")
	assert.Contains(t, commandNames, "resolve")
	assert.Contains(t, commandNames, "ignore")
	assert.Contains(t, commandNames, "reclassify")
	assert.Contains(t, commandNames, "stats")
}

func TestGapListCmd_ListsAll(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "gap", "list")

	assert.NoError(t, err)
	assert.Contains(t, out, "airport shuttle")
	assert.Contains(t, out, "Total: 4 gaps")
}

func TestGapListCmd_FiltersByStatus(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	defer func() { gapStatusFilter = "" }()

	out, err := execute(t, "gap", "list", "--status", "pending")

	assert.NoError(t, err)
	assert.Contains(t, out, "Total: 2 gaps")
	assert.NotContains(t, out, "price-match")
}

func TestGapListCmd_RejectsUnknownStatus(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	defer func() { gapStatusFilter = "" }()

	_, err := execute(t, "gap", "list", "--status", "stale")

	assert.Error(t, err)
}

func TestGapShowCmd_RendersTranscript(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "gap", "show", gapID(t, "Airport transfer"))

	assert.NoError(t, err)
	assert.Contains(t, out, "Conversation:")
	assert.Contains(t, out, "Do you run an airport shuttle?")
	assert.Contains(t, out, "Classified: facility / Transport Services")
}

func TestGapResolveCmd(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	id := gapID(t, "Airport transfer")

	out, err := execute(t, "gap", "resolve", id, "Shuttle runs hourly from 06:00.")

	assert.NoError(t, err)
	assert.Contains(t, out, "Resolved:")

	g, err := gapService.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.GapResolved, g.Status)
	assert.Equal(t, "Shuttle runs hourly from 06:00.", g.Resolution)
}

func TestGapResolveCmd_TerminalGap(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "gap", "resolve", gapID(t, "Bar hours"), "again")

	assert.NoError(t, err)
	assert.Contains(t, out, "already resolved or ignored")
}

func TestGapIgnoreCmd(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "gap", "ignore", gapID(t, "Pets"))

	assert.NoError(t, err)
	assert.Contains(t, out, "Ignored:")
}

func TestGapReclassifyCmd(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	defer func() {
		gapSectionFlag = ""
		gapSubsectionFlg = ""
	}()

	out, err := execute(t, "gap", "reclassify", gapID(t, "Pets"),
		"policy", "--section", "Pets")

	assert.NoError(t, err)
	assert.Contains(t, out, "Reclassified as policy / Pets")
}

func TestGapReclassifyCmd_RejectsUnknownSection(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	defer func() {
		gapSectionFlag = ""
		gapSubsectionFlg = ""
	}()

	_, err := execute(t, "gap", "reclassify", gapID(t, "Pets"),
		"policy", "--section", "Dining")

	assert.Error(t, err)
}

func TestGapStatsCmd(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "gap", "stats")

	assert.NoError(t, err)
	assert.Contains(t, out, "Total: 4")
	assert.Contains(t, out, "Pending: 2")
	assert.Contains(t, out, "Resolved: 1")
	assert.Contains(t, out, "Ignored: 1")
}
