package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lodgeworks/stayform/internal/core/domain"
	"github.com/lodgeworks/stayform/internal/core/ports/driving"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Extend a document's taxonomy",
	Long: `Add or remove custom sections, subsections and fields on a document.
Built-in parts of the taxonomy cannot be removed. Structural edits are
saved immediately; a document with missing required fields stays pending.`,
}

var sectionAddCmd = &cobra.Command{
	Use:   "add [doc-id] [name]",
	Short: "Add a custom section",
	Args:  cobra.ExactArgs(2),
	RunE:  runSectionAdd,
}

var sectionRemoveCmd = &cobra.Command{
	Use:   "remove [doc-id] [name]",
	Short: "Remove a custom section and everything in it",
	Args:  cobra.ExactArgs(2),
	RunE:  runSectionRemove,
}

var sectionAddSubCmd = &cobra.Command{
	Use:   "add-sub [doc-id] [section] [name]",
	Short: "Add a custom subsection",
	Args:  cobra.ExactArgs(3),
	RunE:  runSectionAddSub,
}

var sectionRemoveSubCmd = &cobra.Command{
	Use:   "remove-sub [doc-id] [section] [name]",
	Short: "Remove a custom subsection and its fields",
	Args:  cobra.ExactArgs(3),
	RunE:  runSectionRemoveSub,
}

var sectionAddFieldCmd = &cobra.Command{
	Use:   "add-field [doc-id] [section] [label] [value]",
	Short: "Add a custom text field to a section",
	Args:  cobra.RangeArgs(3, 4),
	RunE:  runSectionAddField,
}

var sectionRemoveFieldCmd = &cobra.Command{
	Use:   "remove-field [doc-id] [field-key]",
	Short: "Remove a custom field",
	Args:  cobra.ExactArgs(2),
	RunE:  runSectionRemoveField,
}

// fieldSubsection scopes add-field inside a subsection.
var fieldSubsection string

func init() {
	sectionAddFieldCmd.Flags().StringVar(&fieldSubsection, "subsection", "",
		"Subsection to place the field in")

	sectionCmd.AddCommand(sectionAddCmd)
	sectionCmd.AddCommand(sectionRemoveCmd)
	sectionCmd.AddCommand(sectionAddSubCmd)
	sectionCmd.AddCommand(sectionRemoveSubCmd)
	sectionCmd.AddCommand(sectionAddFieldCmd)
	sectionCmd.AddCommand(sectionRemoveFieldCmd)
	rootCmd.AddCommand(sectionCmd)
}

// withEngine loads a document, activates its category's extension engine,
// runs the mutation and saves the result.
func withEngine(ctx context.Context, id string, mutate func(*domain.Document, driving.ExtensionService) error) (*domain.Document, error) {
	if documentService == nil || extensionEngines == nil {
		return nil, errors.New("extension engines not configured")
	}

	doc, err := documentService.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	engine, ok := extensionEngines[doc.Category]
	if !ok {
		return nil, fmt.Errorf("no extension engine for category %s", doc.Category)
	}
	engine.SetActive(true)
	engine.Attach(doc)
	defer func() {
		engine.SetActive(false)
		engine.Attach(nil)
	}()

	if err := mutate(doc, engine); err != nil {
		return nil, err
	}

	// Structural edits persist regardless of missing required fields.
	saved, err := documentService.Save(ctx, doc, true)
	if err != nil {
		return nil, fmt.Errorf("failed to save document: %w", err)
	}
	return saved, nil
}

func runSectionAdd(cmd *cobra.Command, args []string) error {
	saved, err := withEngine(context.Background(), args[0],
		func(_ *domain.Document, engine driving.ExtensionService) error {
			return engine.AddSection(args[1])
		})
	if err != nil {
		return err
	}
	cmd.Printf("Added section %q to %s\n", args[1], saved.Title)
	return nil
}

func runSectionRemove(cmd *cobra.Command, args []string) error {
	saved, err := withEngine(context.Background(), args[0],
		func(_ *domain.Document, engine driving.ExtensionService) error {
			return engine.RemoveSection(args[1])
		})
	if err != nil {
		return err
	}
	cmd.Printf("Removed section %q from %s\n", args[1], saved.Title)
	return nil
}

func runSectionAddSub(cmd *cobra.Command, args []string) error {
	saved, err := withEngine(context.Background(), args[0],
		func(_ *domain.Document, engine driving.ExtensionService) error {
			return engine.AddSubsection(args[1], args[2])
		})
	if err != nil {
		return err
	}
	cmd.Printf("Added subsection %q under %q in %s\n", args[2], args[1], saved.Title)
	return nil
}

func runSectionRemoveSub(cmd *cobra.Command, args []string) error {
	saved, err := withEngine(context.Background(), args[0],
		func(_ *domain.Document, engine driving.ExtensionService) error {
			return engine.RemoveSubsection(args[1], args[2])
		})
	if err != nil {
		return err
	}
	cmd.Printf("Removed subsection %q from %s\n", args[2], saved.Title)
	return nil
}

func runSectionAddField(cmd *cobra.Command, args []string) error {
	value := ""
	if len(args) == 4 {
		value = args[3]
	}

	var key string
	saved, err := withEngine(context.Background(), args[0],
		func(_ *domain.Document, engine driving.ExtensionService) error {
			f, err := engine.AddSimpleField(args[1], fieldSubsection, args[2], value)
			if err != nil {
				return err
			}
			key = f.Key
			return nil
		})
	if err != nil {
		return err
	}
	cmd.Printf("Added field %q (%s) to %s\n", args[2], key, saved.Title)
	return nil
}

func runSectionRemoveField(cmd *cobra.Command, args []string) error {
	saved, err := withEngine(context.Background(), args[0],
		func(_ *domain.Document, engine driving.ExtensionService) error {
			return engine.RemoveField(args[1])
		})
	if err != nil {
		return err
	}
	cmd.Printf("Removed field %q from %s\n", args[1], saved.Title)
	return nil
}
