package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find [term-id]",
	Short: "Find entries annotated with a subject term",
	Args:  cobra.ExactArgs(1),
	RunE:  runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	termID := args[0]

	if annotationService == nil {
		return errors.New("annotation service not configured")
	}

	records, err := annotationService.FindByTerm(cmd.Context(), termID)
	if err != nil {
		return fmt.Errorf("finding entries for %q: %w", termID, err)
	}
	if len(records) == 0 {
		cmd.Printf("No entries annotated with %q.\n", termID)
		return nil
	}

	label, err := annotationService.TermLabel(cmd.Context(), termID)
	if err == nil {
		cmd.Printf("Entries annotated with %s (%s):\n", termID, label)
	} else {
		cmd.Printf("Entries annotated with %s:\n", termID)
	}
	for _, rec := range records {
		cmd.Printf("  %s\n", rec.Summary())
	}
	cmd.Printf("Total: %d\n", len(records))
	return nil
}
