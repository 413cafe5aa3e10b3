package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/casics/annotator/internal/logger"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Summarize the state of the annotations",
	Long: `Reports the total number of annotated entries, the entries carrying
the most terms, and the usage count of every term.`,
	Args: cobra.NoArgs,
	RunE: runSummarize,
}

func init() {
	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(cmd *cobra.Command, _ []string) error {
	if annotationService == nil {
		return errors.New("annotation service not configured")
	}

	logger.Progress("Gathering list of annotated repositories ...")
	records, err := annotationService.Annotated(cmd.Context())
	if err != nil {
		return fmt.Errorf("gathering annotated entries: %w", err)
	}

	cmd.Printf("Total annotated entries: %d\n", annotationService.TotalCount(records))

	max := annotationService.MaxAnnotations(records)
	cmd.Printf("Most terms on a single entry: %d\n", max.Count)
	if len(max.Records) > 0 {
		summaries := make([]string, 0, len(max.Records))
		for _, rec := range max.Records {
			summaries = append(summaries, rec.Summary())
		}
		cmd.Printf("└─ Repo(s) in question (total: %d): %s\n",
			len(max.Records), strings.Join(summaries, ", "))
	}

	usage := annotationService.TermStats(records)
	if len(usage) == 0 {
		return nil
	}
	cmd.Println("Term usage:")
	for _, tc := range usage.SortedByCount() {
		label, err := annotationService.TermLabel(cmd.Context(), tc.TermID)
		if err != nil {
			label = "(label unavailable)"
		}
		cmd.Printf("  %3d: %s = %s\n", tc.Count, tc.TermID, label)
	}
	return nil
}
