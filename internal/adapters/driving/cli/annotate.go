package cli

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/casics/annotator/internal/core/domain"
	"github.com/casics/annotator/internal/logger"
)

var (
	annotateDev bool
	annotateDir string
)

var annotateCmd = &cobra.Command{
	Use:   "annotate",
	Short: "Start the browser-based annotation interface",
	Long: `Resolves the credentials for both database services and starts the
node-based annotation interface. The credentials are handed to the child
process through a mode-0600 temporary file named in the ANNOTATOR_CONFIG
environment variable, never on the command line.

With --dev the interface runs under nodemon so it reloads on changes.`,
	Args: cobra.NoArgs,
	RunE: runAnnotate,
}

func init() {
	annotateCmd.Flags().BoolVar(&annotateDev, "dev", false, "run the interface under nodemon")
	annotateCmd.Flags().StringVar(&annotateDir, "ui-dir", ".", "directory containing the interface's index.js")
	rootCmd.AddCommand(annotateCmd)
}

func runAnnotate(cmd *cobra.Command, _ []string) error {
	if credResolver == nil {
		return errors.New("credential resolver not configured")
	}

	casics, locterms, err := resolveBoth(cmd.Context())
	if err != nil {
		return err
	}

	tmpfile, err := writeCredentialFile(casics, locterms)
	if err != nil {
		return err
	}
	defer os.Remove(tmpfile)

	var child *exec.Cmd
	if annotateDev {
		child = exec.CommandContext(cmd.Context(), "nodemon", "--debug", "-e", "js,hbs")
	} else {
		child = exec.CommandContext(cmd.Context(), "node", "index.js")
	}
	child.Dir = annotateDir
	child.Env = append(os.Environ(), "ANNOTATOR_CONFIG="+tmpfile)
	child.Stdout = cmd.OutOrStdout()
	child.Stderr = cmd.ErrOrStderr()
	child.Stdin = os.Stdin

	logger.Debug("starting %s in %s", strings.Join(child.Args, " "), annotateDir)
	if err := child.Run(); err != nil {
		return fmt.Errorf("annotation interface exited: %w", err)
	}
	return nil
}

// writeCredentialFile writes both credentials to a private temporary file
// in INI form and returns its path. The caller removes the file once the
// child process exits.
func writeCredentialFile(casics, locterms domain.ServiceCredential) (string, error) {
	tmpfile, err := os.CreateTemp("", "annotator-*.ini")
	if err != nil {
		return "", fmt.Errorf("creating credential file: %w", err)
	}
	if err := tmpfile.Chmod(0o600); err != nil {
		tmpfile.Close()
		os.Remove(tmpfile.Name())
		return "", fmt.Errorf("restricting credential file permissions: %w", err)
	}

	var b strings.Builder
	writeCredentialSection(&b, "casics", casics)
	writeCredentialSection(&b, "locterms", locterms)

	if _, err := tmpfile.WriteString(b.String()); err != nil {
		tmpfile.Close()
		os.Remove(tmpfile.Name())
		return "", fmt.Errorf("writing credential file: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		os.Remove(tmpfile.Name())
		return "", fmt.Errorf("closing credential file: %w", err)
	}
	return tmpfile.Name(), nil
}

func writeCredentialSection(b *strings.Builder, section string, cred domain.ServiceCredential) {
	fmt.Fprintf(b, "[%s]\n", section)
	fmt.Fprintf(b, "host=%s\n", cred.Host)
	fmt.Fprintf(b, "port=%d\n", cred.Port)
	fmt.Fprintf(b, "user=%s\n", cred.User)
	fmt.Fprintf(b, "password=%s\n", cred.Password)
}
