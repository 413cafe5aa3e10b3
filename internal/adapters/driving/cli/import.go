package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	githubadapter "github.com/casics/annotator/internal/adapters/driven/github"
	"github.com/casics/annotator/internal/core/services"
	"github.com/casics/annotator/internal/logger"
)

var importToken string

var importCmd = &cobra.Command{
	Use:   "import [owner]",
	Short: "Import a user's public repositories as unannotated entries",
	Long: `Fetches the public repositories of a GitHub user or organisation
and stores the ones not already present. Existing entries are left
untouched, so re-importing never loses annotations.

A token raises the API rate limit and is read from --token or the
github.token configuration key.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importToken, "token", "", "GitHub API token")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	owner := args[0]

	if importService == nil {
		if recordWriter == nil {
			return errors.New("import service not configured")
		}
		token := importToken
		if token == "" {
			token = configDefault("github.token", "")
		}
		importService = services.NewImporterService(githubadapter.NewLister(token), recordWriter)
	}

	logger.Progress("Importing repositories for %s ...", owner)
	added, err := importService.ImportOwner(cmd.Context(), owner)
	if err != nil {
		return fmt.Errorf("importing repositories for %q: %w", owner, err)
	}

	cmd.Printf("Imported %d new entries for %s.\n", added, owner)
	return nil
}
