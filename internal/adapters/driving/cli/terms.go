package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/casics/annotator/internal/logger"
)

var termsCmd = &cobra.Command{
	Use:   "terms",
	Short: "Show subject term usage across annotated entries",
	Long: `Counts how often each subject term is used across the annotated
entries and prints the terms with their labels, most used first. A term
occurring twice in one entry counts twice.`,
	Args: cobra.NoArgs,
	RunE: runTerms,
}

func init() {
	rootCmd.AddCommand(termsCmd)
}

func runTerms(cmd *cobra.Command, _ []string) error {
	if annotationService == nil {
		return errors.New("annotation service not configured")
	}

	logger.Progress("Gathering list of annotated repositories ...")
	records, err := annotationService.Annotated(cmd.Context())
	if err != nil {
		return fmt.Errorf("gathering annotated entries: %w", err)
	}
	if len(records) == 0 {
		cmd.Println("No annotated entries found.")
		return nil
	}

	usage := annotationService.TermStats(records)
	for _, tc := range usage.SortedByCount() {
		label, err := annotationService.TermLabel(cmd.Context(), tc.TermID)
		if err != nil {
			label = "(label unavailable)"
		}
		cmd.Printf("  %3d: %s = %s\n", tc.Count, tc.TermID, label)
	}
	return nil
}
