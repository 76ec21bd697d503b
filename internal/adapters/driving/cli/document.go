package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lodgeworks/stayform/internal/core/domain"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Manage hotel documents",
	Long:  `Create, list, view, confirm, rename or delete hotel documents.`,
}

var documentListCmd = &cobra.Command{
	Use:   "list [category]",
	Short: "List documents, optionally by category",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDocumentList,
}

var documentCreateCmd = &cobra.Command{
	Use:   "create [category] [title]",
	Short: "Create a draft document from the category template",
	Args:  cobra.ExactArgs(2),
	RunE:  runDocumentCreate,
}

var documentShowCmd = &cobra.Command{
	Use:   "show [doc-id]",
	Short: "Show a document section by section",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentShow,
}

var documentFillCmd = &cobra.Command{
	Use:   "fill [doc-id] [field-key] [value]",
	Short: "Set a field value and save",
	Long: `Sets the value of one field and saves the document. Text fields take
the value verbatim; boolean fields take on/off.

With required fields still missing the save is refused unless --force
is given; a forced save keeps the document pending.`,
	Args: cobra.ExactArgs(3),
	RunE: runDocumentFill,
}

var documentConfirmCmd = &cobra.Command{
	Use:   "confirm [doc-id]",
	Short: "Confirm a document without editing",
	Long:  `Marks a document confirmed. Refused while required fields are missing.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentConfirm,
}

var documentRenameCmd = &cobra.Command{
	Use:   "rename [doc-id] [title]",
	Short: "Rename a document",
	Args:  cobra.ExactArgs(2),
	RunE:  runDocumentRename,
}

var documentDeleteCmd = &cobra.Command{
	Use:   "delete [doc-id]",
	Short: "Delete a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentDelete,
}

// forceSave is a flag for the fill command.
var forceSave bool

func init() {
	documentFillCmd.Flags().BoolVarP(&forceSave, "force", "f", false,
		"Save even with required fields missing")

	documentCmd.AddCommand(documentListCmd)
	documentCmd.AddCommand(documentCreateCmd)
	documentCmd.AddCommand(documentShowCmd)
	documentCmd.AddCommand(documentFillCmd)
	documentCmd.AddCommand(documentConfirmCmd)
	documentCmd.AddCommand(documentRenameCmd)
	documentCmd.AddCommand(documentDeleteCmd)
	rootCmd.AddCommand(documentCmd)
}

func runDocumentList(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}
	ctx := context.Background()

	var docs []domain.Document
	var err error
	if len(args) == 1 {
		docs, err = documentService.ListByCategory(ctx, domain.Category(args[0]))
	} else {
		docs, err = documentService.List(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Println("No documents found")
		return nil
	}

	for i := range docs {
		cmd.Printf("  %s\n", docs[i].ID)
		cmd.Printf("    Title: %s\n", docs[i].Title)
		cmd.Printf("    Category: %s\n", docs[i].Category.Description())
		cmd.Printf("    Status: %s  Completeness: %d%%\n",
			docs[i].Status.Description(), docs[i].Completeness)
		cmd.Println()
	}
	cmd.Printf("Total: %d documents\n", len(docs))
	return nil
}

func runDocumentCreate(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	doc, err := documentService.Create(context.Background(), domain.Category(args[0]), args[1])
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	cmd.Printf("Created %s document %s (%d template fields)\n",
		doc.Category, doc.ID, len(doc.Fields))
	return nil
}

func runDocumentShow(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	doc, err := documentService.Get(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	cmd.Printf("%s\n", doc.Title)
	cmd.Printf("Category: %s  Status: %s  Completeness: %d%%\n\n",
		doc.Category.Description(), doc.Status.Description(), doc.Completeness)

	for _, group := range domain.GroupBySection(doc.Fields, nil, nil) {
		stats := domain.ComputeSectionStats(group)
		cmd.Printf("%s (%d/%d filled", group.Name, stats.FilledFields, stats.TotalFields)
		if stats.Missing() > 0 {
			cmd.Printf(", %d required missing", stats.Missing())
		}
		cmd.Println(")")

		for _, sub := range group.Subsections {
			indent := "  "
			if sub.Name != "" {
				cmd.Printf("  %s\n", sub.Name)
				indent = "    "
			}
			for _, f := range sub.Fields {
				cmd.Printf("%s%s: %s\n", indent, f.Label, fieldValue(f))
			}
		}
		cmd.Println()
	}
	return nil
}

// fieldValue renders a field's value for terminal output.
func fieldValue(f domain.Field) string {
	switch {
	case f.Type == domain.FieldTypePOIList:
		if len(f.Entries) == 0 {
			return "(no entries)"
		}
		parts := make([]string, len(f.Entries))
		for i, e := range f.Entries {
			parts[i] = fmt.Sprintf("%s (%s)", e.Name, e.Distance)
		}
		return strings.Join(parts, ", ")

	case f.Type.IsBooleanBacked():
		if !f.On {
			return "no"
		}
		out := "yes"
		if f.Type == domain.FieldTypeBooleanWithOptions && f.FeeStatus == domain.FeeStatusCharged {
			feeType, note := domain.DecodeFeeDetail(f.AdditionalNote)
			detail := f.FeeNote
			if note != "" {
				detail = strings.TrimSpace(detail + " " + note)
			}
			out = fmt.Sprintf("yes, charged (%s: %s)", feeType.Description(), detail)
		}
		if f.Type == domain.FieldTypeBooleanWithLanguages && len(f.Languages) > 0 {
			out += ": " + strings.Join(f.Languages, ", ")
		}
		if f.Type == domain.FieldTypeBooleanWithText && f.AdditionalNote != "" {
			out += ": " + f.AdditionalNote
		}
		return out

	default:
		if strings.TrimSpace(f.Text) == "" {
			return "(empty)"
		}
		return f.Text
	}
}

func runDocumentFill(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}
	ctx := context.Background()

	doc, err := documentService.Get(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	field := doc.FieldByKey(args[1])
	if field == nil {
		return fmt.Errorf("no field %q in document %s", args[1], doc.ID)
	}

	value := args[2]
	switch {
	case field.Type == domain.FieldTypePOIList:
		return errors.New("poi-list fields are edited in the TUI")
	case field.Type.IsBooleanBacked():
		switch strings.ToLower(value) {
		case "on", "yes", "true":
			field.On = true
		case "off", "no", "false":
			field.On = false
		default:
			return fmt.Errorf("boolean field %q takes on or off, got %q", field.Key, value)
		}
	default:
		field.Text = value
	}

	saved, err := documentService.Save(ctx, doc, forceSave)
	if err != nil {
		var missing *domain.MissingRequiredError
		if errors.As(err, &missing) {
			cmd.Printf("Not saved: %s\n", missing.Error())
			cmd.Println("Rerun with --force to save anyway")
			return nil
		}
		return fmt.Errorf("failed to save document: %w", err)
	}

	cmd.Printf("Saved. Status: %s, completeness: %d%%\n",
		saved.Status.Description(), saved.Completeness)
	return nil
}

func runDocumentConfirm(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	doc, err := documentService.QuickConfirm(context.Background(), args[0])
	if err != nil {
		var missing *domain.MissingRequiredError
		if errors.As(err, &missing) {
			cmd.Printf("Cannot confirm: %s\n", missing.Error())
			return nil
		}
		return fmt.Errorf("failed to confirm document: %w", err)
	}

	cmd.Printf("Confirmed %s\n", doc.Title)
	return nil
}

func runDocumentRename(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	if err := documentService.Rename(context.Background(), args[0], args[1]); err != nil {
		return fmt.Errorf("failed to rename document: %w", err)
	}
	cmd.Printf("Renamed %s\n", args[0])
	return nil
}

func runDocumentDelete(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	if err := documentService.Delete(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	cmd.Printf("Deleted %s\n", args[0])
	return nil
}
