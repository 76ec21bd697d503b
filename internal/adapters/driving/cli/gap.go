package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lodgeworks/stayform/internal/core/domain"
	"github.com/lodgeworks/stayform/internal/core/ports/driving"
)

var gapCmd = &cobra.Command{
	Use:   "gap",
	Short: "Manage knowledge gaps",
	Long: `Triage questions guests asked that the documents could not answer:
resolve them with an answer, dismiss them, or reclassify them into the
right part of the taxonomy.`,
}

var gapListCmd = &cobra.Command{
	Use:   "list",
	Short: "List knowledge gaps",
	Args:  cobra.NoArgs,
	RunE:  runGapList,
}

var gapShowCmd = &cobra.Command{
	Use:   "show [gap-id]",
	Short: "Show a gap with its conversation snippet",
	Args:  cobra.ExactArgs(1),
	RunE:  runGapShow,
}

var gapResolveCmd = &cobra.Command{
	Use:   "resolve [gap-id] [answer]",
	Short: "Resolve a gap with an answer",
	Args:  cobra.ExactArgs(2),
	RunE:  runGapResolve,
}

var gapIgnoreCmd = &cobra.Command{
	Use:   "ignore [gap-id]",
	Short: "Dismiss a gap without an answer",
	Args:  cobra.ExactArgs(1),
	RunE:  runGapIgnore,
}

var gapReclassifyCmd = &cobra.Command{
	Use:   "reclassify [gap-id] [category]",
	Short: "Override a gap's classification",
	Args:  cobra.ExactArgs(2),
	RunE:  runGapReclassify,
}

var gapStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show backlog counts by status",
	Args:  cobra.NoArgs,
	RunE:  runGapStats,
}

// Flags for the gap commands.
var (
	gapStatusFilter  string
	gapSectionFlag   string
	gapSubsectionFlg string
)

func init() {
	gapListCmd.Flags().StringVarP(&gapStatusFilter, "status", "s", "",
		"Filter by status (pending, resolved, ignored)")
	gapReclassifyCmd.Flags().StringVar(&gapSectionFlag, "section", "",
		"Section within the category")
	gapReclassifyCmd.Flags().StringVar(&gapSubsectionFlg, "subsection", "",
		"Subsection within the section")

	gapCmd.AddCommand(gapListCmd)
	gapCmd.AddCommand(gapShowCmd)
	gapCmd.AddCommand(gapResolveCmd)
	gapCmd.AddCommand(gapIgnoreCmd)
	gapCmd.AddCommand(gapReclassifyCmd)
	gapCmd.AddCommand(gapStatsCmd)
	rootCmd.AddCommand(gapCmd)
}

func runGapList(cmd *cobra.Command, _ []string) error {
	if gapService == nil {
		return errors.New("gap service not configured")
	}

	gaps, err := gapService.List(context.Background(), domain.GapStatus(gapStatusFilter))
	if err != nil {
		return fmt.Errorf("failed to list gaps: %w", err)
	}

	if len(gaps) == 0 {
		cmd.Println("No knowledge gaps found")
		return nil
	}

	for _, g := range gaps {
		cmd.Printf("  %s [%s/%s]\n", g.ID, g.Status, g.Priority)
		cmd.Printf("    %s\n", g.Question)
		if cat := g.DisplayCategory(); cat != "" {
			cmd.Printf("    Classified: %s\n", classificationPath(g))
		}
		if g.FrequencyDescription != "" {
			cmd.Printf("    %s\n", g.FrequencyDescription)
		}
		cmd.Println()
	}
	cmd.Printf("Total: %d gaps\n", len(gaps))
	return nil
}

// classificationPath renders the display classification as a path.
func classificationPath(g *domain.KnowledgeGap) string {
	parts := []string{g.DisplayCategory().String()}
	if s := g.DisplaySection(); s != "" {
		parts = append(parts, s)
	}
	if s := g.DisplaySubsection(); s != "" {
		parts = append(parts, s)
	}
	return strings.Join(parts, " / ")
}

func runGapShow(cmd *cobra.Command, args []string) error {
	if gapService == nil {
		return errors.New("gap service not configured")
	}

	g, err := gapService.Get(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get gap: %w", err)
	}

	cmd.Printf("%s\n", g.Question)
	cmd.Printf("Status: %s  Priority: %s  Recommendation: %s\n",
		g.Status, g.Priority, g.Recommendation)
	if g.DisplayCategory() != "" {
		cmd.Printf("Classified: %s\n", classificationPath(g))
	}
	if g.AIResponse != "" {
		cmd.Printf("Assistant answered: %s\n", g.AIResponse)
	}
	if g.Resolution != "" {
		cmd.Printf("Resolution: %s\n", g.Resolution)
	}
	if len(g.Transcript) > 0 {
		cmd.Println("\nConversation:")
		for _, turn := range g.Transcript {
			cmd.Printf("  %s: %s\n", turn.Role, turn.Content)
		}
	}
	return nil
}

func runGapResolve(cmd *cobra.Command, args []string) error {
	if gapService == nil {
		return errors.New("gap service not configured")
	}

	g, err := gapService.Resolve(context.Background(), args[0], args[1])
	if err != nil {
		if errors.Is(err, domain.ErrGapTerminal) {
			cmd.Printf("Gap %s is already resolved or ignored\n", args[0])
			return nil
		}
		return fmt.Errorf("failed to resolve gap: %w", err)
	}
	cmd.Printf("Resolved: %s\n", g.Question)
	return nil
}

func runGapIgnore(cmd *cobra.Command, args []string) error {
	if gapService == nil {
		return errors.New("gap service not configured")
	}

	g, err := gapService.Ignore(context.Background(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrGapTerminal) {
			cmd.Printf("Gap %s is already resolved or ignored\n", args[0])
			return nil
		}
		return fmt.Errorf("failed to ignore gap: %w", err)
	}
	cmd.Printf("Ignored: %s\n", g.Question)
	return nil
}

func runGapReclassify(cmd *cobra.Command, args []string) error {
	if gapService == nil {
		return errors.New("gap service not configured")
	}

	sel := driving.GapSelection{
		Category:   domain.Category(args[1]),
		Section:    gapSectionFlag,
		Subsection: gapSubsectionFlg,
	}
	g, err := gapService.UpdateCategory(context.Background(), args[0], sel)
	if err != nil {
		return fmt.Errorf("failed to reclassify gap: %w", err)
	}
	cmd.Printf("Reclassified as %s\n", classificationPath(g))
	return nil
}

func runGapStats(cmd *cobra.Command, _ []string) error {
	if gapService == nil {
		return errors.New("gap service not configured")
	}

	stats, err := gapService.Stats(context.Background())
	if err != nil {
		return fmt.Errorf("failed to get gap stats: %w", err)
	}

	cmd.Printf("Total: %d\n", stats.Total)
	cmd.Printf("  Pending: %d\n", stats.Pending)
	cmd.Printf("  Resolved: %d\n", stats.Resolved)
	cmd.Printf("  Ignored: %d\n", stats.Ignored)
	return nil
}
