package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/casics/annotator/internal/core/domain"
	"github.com/casics/annotator/internal/core/ports/driving"
)

var credentialsCmd = &cobra.Command{
	Use:   "credentials",
	Short: "Manage database service credentials",
	Long: `Resolve and cache the connection credentials for the CASICS and
LoCTerms database services.

Resolution tries explicit flags first, then the OS keychain, then
interactive prompts. The sync subcommand reconciles the keychain with the
resolved values.`,
	RunE: runCredentialsSync,
}

var credentialsSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Resolve both service credentials and update the keychain",
	RunE:  runCredentialsSync,
}

var credentialsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove both service credentials from the keychain",
	RunE:  runCredentialsClear,
}

func init() {
	credentialsCmd.AddCommand(credentialsSyncCmd)
	credentialsCmd.AddCommand(credentialsClearCmd)
	rootCmd.AddCommand(credentialsCmd)
}

// casicsRequest assembles the CASICS resolution request from flags and
// configured defaults.
func casicsRequest() driving.CredentialRequest {
	return driving.CredentialRequest{
		ServiceID:   casicsServiceID,
		Label:       "CASICS",
		User:        casicsUser,
		Password:    casicsPassword,
		Host:        casicsHost,
		Port:        casicsPort,
		DefaultHost: configDefault("casics.host", defaultHost),
		DefaultPort: configDefaultInt("casics.port", defaultPort),
	}
}

// loctermsRequest assembles the LoCTerms resolution request.
func loctermsRequest() driving.CredentialRequest {
	return driving.CredentialRequest{
		ServiceID:   loctermsServiceID,
		Label:       "LoCTerms",
		User:        loctermsUser,
		Password:    loctermsPassword,
		Host:        loctermsHost,
		Port:        loctermsPort,
		DefaultHost: configDefault("locterms.host", defaultHost),
		DefaultPort: configDefaultInt("locterms.port", defaultPort),
	}
}

// resolveBoth resolves the two service credentials in order. The run
// aborts on the first incomplete credential; the second service is not
// attempted without the first.
func resolveBoth(ctx context.Context) (casics, locterms domain.ServiceCredential, err error) {
	casics, err = credResolver.Resolve(ctx, casicsRequest())
	if err != nil {
		return casics, locterms, fmt.Errorf("resolving CASICS credentials: %w", err)
	}
	locterms, err = credResolver.Resolve(ctx, loctermsRequest())
	if err != nil {
		return casics, locterms, fmt.Errorf("resolving LoCTerms credentials: %w", err)
	}

	if !noKeyring {
		// Reconciliation writes the keychain only when values drifted.
		if err := credResolver.Reconcile(ctx, casics); err != nil {
			return casics, locterms, err
		}
		if err := credResolver.Reconcile(ctx, locterms); err != nil {
			return casics, locterms, err
		}
	}
	return casics, locterms, nil
}

func runCredentialsSync(cmd *cobra.Command, _ []string) error {
	if credResolver == nil {
		return errors.New("credential resolver not configured")
	}

	casics, locterms, err := resolveBoth(cmd.Context())
	if err != nil {
		return err
	}

	printCredential(cmd, "CASICS", casics)
	printCredential(cmd, "LoCTerms", locterms)
	if noKeyring {
		cmd.Println("Keychain updates disabled (--no-keyring).")
	}
	return nil
}

func runCredentialsClear(cmd *cobra.Command, _ []string) error {
	if credResolver == nil {
		return errors.New("credential resolver not configured")
	}

	if secretVault == nil {
		cmd.Println("No keychain configured; nothing to clear.")
		return nil
	}
	for _, serviceID := range []string{casicsServiceID, loctermsServiceID} {
		if err := secretVault.Delete(cmd.Context(), serviceID); err != nil {
			return fmt.Errorf("clearing keychain entry for %s: %w", serviceID, err)
		}
		cmd.Printf("Removed keychain entry for %s.\n", serviceID)
	}
	return nil
}

func printCredential(cmd *cobra.Command, label string, cred domain.ServiceCredential) {
	cmd.Printf("[%s]\n", label)
	cmd.Printf("  User: %s\n", cred.User)
	cmd.Printf("  Password: %s\n", maskSecret(cred.Password))
	cmd.Printf("  Host: %s\n", cred.Host)
	cmd.Printf("  Port: %d\n", cred.Port)
}

func maskSecret(secret string) string {
	if len(secret) <= 4 {
		return "****"
	}
	return secret[:2] + "..." + secret[len(secret)-2:]
}
