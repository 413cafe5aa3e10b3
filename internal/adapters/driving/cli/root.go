// Package cli implements the command-line interface for the annotator.
// Commands are thin wrappers around the driving port services; all state
// lives in the core and the driven adapters wired up here.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	configfile "github.com/casics/annotator/internal/adapters/driven/config/file"
	"github.com/casics/annotator/internal/adapters/driven/keyring"
	"github.com/casics/annotator/internal/adapters/driven/storage/sqlite"
	"github.com/casics/annotator/internal/adapters/driven/terminal"
	"github.com/casics/annotator/internal/core/ports/driven"
	"github.com/casics/annotator/internal/core/ports/driving"
	"github.com/casics/annotator/internal/core/services"
	"github.com/casics/annotator/internal/logger"
)

// Service identifiers double as vault keys, matching the entries earlier
// CASICS tools created, so an existing keychain keeps working.
const (
	casicsServiceID   = "org.casics.casics"
	loctermsServiceID = "org.casics.locterms"

	defaultHost = "localhost"
	defaultPort = 27017
)

var version = "dev"

// Persistent flag values.
var (
	verbose   bool
	noKeyring bool
	configDir string
	dbPath    string

	casicsUser     string
	casicsPassword string
	casicsHost     string
	casicsPort     int

	loctermsUser     string
	loctermsPassword string
	loctermsHost     string
	loctermsPort     int
)

// Wired services. Tests inject fakes here; Execute wires the real ones.
var (
	configStore       driven.ConfigStore
	credResolver      driving.CredentialResolver
	annotationService driving.AnnotationService
	importService     driving.ImportService
	labelWriter       driven.LabelWriter
	recordWriter      driven.RecordWriter
	secretVault       driven.SecretVault

	store *sqlite.Store
)

var rootCmd = &cobra.Command{
	Use:   "annotator",
	Short: "Annotate software repository entries with subject terms",
	Long: `annotator maintains controlled-vocabulary subject term annotations
on software repository entries and reports statistics about them.

Credentials for the CASICS and LoCTerms database services are resolved
from explicit flags, the OS keychain, and interactive prompts, in that
order. Resolved values are written back to the keychain when they differ
from what is cached (disable with --no-keyring).`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	flags.BoolVar(&noKeyring, "no-keyring", false, "do not read or update the OS keychain")
	flags.StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.annotator)")
	flags.StringVar(&dbPath, "db", "", "path to the local annotation database")

	flags.StringVar(&casicsUser, "casics-user", "", "CASICS database user name")
	flags.StringVar(&casicsPassword, "casics-password", "", "CASICS database user password")
	flags.StringVar(&casicsHost, "casics-host", "", "CASICS database server host")
	flags.IntVar(&casicsPort, "casics-port", 0, "CASICS database connection port number")

	flags.StringVar(&loctermsUser, "locterms-user", "", "LoCTerms database user name")
	flags.StringVar(&loctermsPassword, "locterms-password", "", "LoCTerms database user password")
	flags.StringVar(&loctermsHost, "locterms-host", "", "LoCTerms database server host")
	flags.IntVar(&loctermsPort, "locterms-port", 0, "LoCTerms database connection port number")
}

// Execute runs the root command. The version string comes from the build.
func Execute(v string) error {
	version = v
	defer func() {
		if store != nil {
			_ = store.Close()
		}
	}()
	return rootCmd.Execute()
}

// initServices wires the real adapters into the services. Tests pre-fill
// the service variables, so wiring is skipped when they are already set.
func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if annotationService != nil {
		return nil
	}

	cfg, err := configfile.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	configStore = cfg

	path := dbPath
	if path == "" {
		path = cfg.GetString("database.path")
	}
	s, err := sqlite.NewStore(path)
	if err != nil {
		return fmt.Errorf("opening annotation database: %w", err)
	}
	store = s

	if !noKeyring {
		secretVault = keyring.NewVault()
	}
	credResolver = services.NewResolverService(secretVault, terminal.NewPrompter())
	annotationService = services.NewAnnotationsService(s.RecordStore(), s.LabelStore())
	labelWriter = s.LabelWriter()
	recordWriter = s.RecordWriter()

	return nil
}

// configDefault returns the configured value for key, falling back to the
// built-in default.
func configDefault(configKey, fallback string) string {
	if configStore != nil {
		if v := configStore.GetString(configKey); v != "" {
			return v
		}
	}
	return fallback
}

// configDefaultInt is configDefault for integer values.
func configDefaultInt(configKey string, fallback int) int {
	if configStore != nil {
		if v := configStore.GetInt(configKey); v != 0 {
			return v
		}
	}
	return fallback
}
