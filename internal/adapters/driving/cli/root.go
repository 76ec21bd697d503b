// Package cli implements the command line driving adapter using cobra.
// Commands talk to the core exclusively through the driving port
// interfaces; wiring happens in main via SetServices.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/lodgeworks/stayform/internal/core/domain"
	"github.com/lodgeworks/stayform/internal/core/ports/driving"
	"github.com/lodgeworks/stayform/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services used by the commands, injected before Execute.
var (
	documentService  driving.DocumentService
	gapService       driving.GapService
	extensionEngines map[domain.Category]driving.ExtensionService
)

// verboseFlag enables debug logging on stderr.
var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "stayform",
	Short: "Structured hotel data entry from the terminal",
	Long: `Stayform manages structured hotel documents: the hotel profile,
room types, facilities, policies and nearby places, each built on a
category taxonomy of sections and subsections.

It also tracks knowledge gaps: questions guests asked that the
documents could not answer, waiting to be resolved into data.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	SilenceUsage: true,
}

// Services bundles the driving ports the commands need.
type Services struct {
	Document   driving.DocumentService
	Gap        driving.GapService
	Extensions map[domain.Category]driving.ExtensionService
}

// SetServices injects the service implementations. Must be called before
// Execute.
func SetServices(s Services) {
	documentService = s.Document
	gapService = s.Gap
	extensionEngines = s.Extensions
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"Enable verbose debug output")
}
