package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/casics/annotator/internal/core/domain"
	"github.com/casics/annotator/internal/logger"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List annotated repository entries",
	Long: `Lists every repository entry carrying at least one subject term,
with the term identifiers attached to each entry.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output entries as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if annotationService == nil {
		return errors.New("annotation service not configured")
	}

	logger.Progress("Gathering list of annotated repositories ...")
	records, err := annotationService.Annotated(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing annotated entries: %w", err)
	}

	if listJSON {
		return outputRecordsJSON(cmd, records)
	}
	return outputRecordList(cmd, records)
}

func outputRecordsJSON(cmd *cobra.Command, records []domain.AnnotationRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entries: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputRecordList(cmd *cobra.Command, records []domain.AnnotationRecord) error {
	if len(records) == 0 {
		cmd.Println("No annotated entries found.")
		return nil
	}

	separator := strings.Repeat("-", 70)
	cmd.Println(separator)
	for _, rec := range records {
		cmd.Println(rec.Summary())
		for _, exp := range annotationService.ExplainTerms(cmd.Context(), rec.Terms) {
			cmd.Printf("  %s\n", exp.String())
		}
		cmd.Println(separator)
	}
	cmd.Printf("Total annotated entries: %d\n", annotationService.TotalCount(records))
	return nil
}
