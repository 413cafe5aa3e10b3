package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/casics/annotator/internal/core/domain"
)

// seedFile is the TOML layout accepted by the seed command. The terms
// table maps term identifiers to labels; each [[repos]] entry becomes an
// annotation record.
type seedFile struct {
	Terms map[string]string `toml:"terms"`
	Repos []seedRepo        `toml:"repos"`
}

type seedRepo struct {
	ID    string   `toml:"id"`
	Owner string   `toml:"owner"`
	Name  string   `toml:"name"`
	Terms []string `toml:"terms"`
}

var seedCmd = &cobra.Command{
	Use:   "seed [file]",
	Short: "Load term labels and repository entries from a TOML file",
	Long: `Reads a TOML file and stores its term labels and repository
entries in the local database. Entries and labels replace any existing
ones with the same identifier.`,
	Args: cobra.ExactArgs(1),
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	if labelWriter == nil || recordWriter == nil {
		return errors.New("database writers not configured")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading seed file: %w", err)
	}

	var seed seedFile
	if err := toml.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("parsing seed file: %w", err)
	}

	ctx := cmd.Context()
	for termID, label := range seed.Terms {
		if err := labelWriter.SaveLabel(ctx, termID, label); err != nil {
			return fmt.Errorf("storing label for %s: %w", termID, err)
		}
	}
	for _, repo := range seed.Repos {
		if repo.ID == "" {
			return fmt.Errorf("%w: seed entry %s/%s has no id", domain.ErrInvalidInput, repo.Owner, repo.Name)
		}
		rec := domain.AnnotationRecord{
			ID:    repo.ID,
			Owner: repo.Owner,
			Name:  repo.Name,
			Terms: repo.Terms,
		}
		if err := recordWriter.Save(ctx, rec); err != nil {
			return fmt.Errorf("storing entry %s: %w", rec.Summary(), err)
		}
	}

	cmd.Printf("Seeded %d term labels and %d entries.\n", len(seed.Terms), len(seed.Repos))
	return nil
}
