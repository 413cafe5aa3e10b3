package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/casics/annotator/internal/core/domain"
	"github.com/casics/annotator/internal/core/ports/driven"
	"github.com/casics/annotator/internal/core/ports/driving"
	"github.com/casics/annotator/internal/logger"
)

// Ensure ResolverService implements the interface.
var _ driving.CredentialResolver = (*ResolverService)(nil)

// ResolverService resolves service credentials through a fixed provider
// chain: explicit arguments, then the vault cache, then interactive
// prompting. Each provider either yields a field or declines; a field no
// provider could supply makes the resolution incomplete.
type ResolverService struct {
	vault    driven.SecretVault
	prompter driven.Prompter
}

// NewResolverService creates a new credential resolver.
// The vault parameter is optional (can be nil): without a vault every
// resolution behaves as a cache miss and Reconcile is a no-op. A nil
// prompter makes any resolution needing interaction incomplete.
func NewResolverService(vault driven.SecretVault, prompter driven.Prompter) *ResolverService {
	return &ResolverService{
		vault:    vault,
		prompter: prompter,
	}
}

// Resolve produces a fully populated credential for the requested service.
//
// When all four explicit fields are present they are used verbatim with no
// vault lookup and no prompting. Otherwise vault values fill the gaps
// (explicit fields always win), and anything still missing is prompted for.
// Resolution is idempotent for identical inputs against an unchanged vault.
func (s *ResolverService) Resolve(ctx context.Context, req driving.CredentialRequest) (domain.ServiceCredential, error) {
	if req.ServiceID == "" {
		return domain.ServiceCredential{}, domain.ErrInvalidInput
	}

	cred := domain.ServiceCredential{
		ServiceID: req.ServiceID,
		User:      req.User,
		Password:  req.Password,
		Host:      req.Host,
		Port:      req.Port,
	}
	if cred.Complete() {
		return cred, nil
	}

	s.fillFromVault(ctx, &cred)
	if cred.Complete() {
		return cred, nil
	}

	if err := s.fillFromPrompt(&cred, req); err != nil {
		return domain.ServiceCredential{}, err
	}
	return cred, nil
}

// fillFromVault copies vault-cached values into fields the caller did not
// supply. Any vault failure is a cache miss: resolution falls through to
// prompting and never aborts here.
func (s *ResolverService) fillFromVault(ctx context.Context, cred *domain.ServiceCredential) {
	if s.vault == nil {
		return
	}

	stored, err := s.vault.Get(ctx, cred.ServiceID)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNotFound):
		logger.Debug("no vault entry for %s", cred.ServiceID)
		return
	default:
		logger.Warn("vault lookup for %s failed, continuing without cache: %v", cred.ServiceID, err)
		return
	}

	if cred.User == "" {
		cred.User = stored.User
	}
	if cred.Password == "" {
		cred.Password = stored.Password
	}
	if cred.Host == "" {
		cred.Host = stored.Host
	}
	if cred.Port == 0 {
		cred.Port = stored.Port
	}
}

// fillFromPrompt obtains any still-missing field interactively. Host and
// port prompts display the request defaults; user and password have no
// default and must be non-empty.
func (s *ResolverService) fillFromPrompt(cred *domain.ServiceCredential, req driving.CredentialRequest) error {
	if s.prompter == nil {
		return fmt.Errorf("%s: no interactive terminal: %w", req.Label, domain.ErrCredentialIncomplete)
	}

	if cred.User == "" {
		user, err := s.prompter.ReadString(req.Label+" user name", "")
		if err != nil || user == "" {
			return fmt.Errorf("%s user name: %w", req.Label, domain.ErrCredentialIncomplete)
		}
		cred.User = user
	}

	if cred.Password == "" {
		password, err := s.prompter.ReadSecret(req.Label + " password")
		if err != nil || password == "" {
			return fmt.Errorf("%s password: %w", req.Label, domain.ErrCredentialIncomplete)
		}
		cred.Password = password
	}

	if cred.Host == "" {
		host, err := s.prompter.ReadString(req.Label+" host", req.DefaultHost)
		if err != nil || host == "" {
			return fmt.Errorf("%s host: %w", req.Label, domain.ErrCredentialIncomplete)
		}
		cred.Host = host
	}

	if cred.Port == 0 {
		defaultPort := ""
		if req.DefaultPort > 0 {
			defaultPort = strconv.Itoa(req.DefaultPort)
		}
		answer, err := s.prompter.ReadString(req.Label+" port", defaultPort)
		if err != nil || answer == "" {
			return fmt.Errorf("%s port: %w", req.Label, domain.ErrCredentialIncomplete)
		}
		port, convErr := strconv.Atoi(answer)
		if convErr != nil || port <= 0 {
			return fmt.Errorf("%s port %q: %w", req.Label, answer, domain.ErrCredentialIncomplete)
		}
		cred.Port = port
	}

	return nil
}

// Reconcile writes the resolved tuple back to the vault if it differs from
// what is stored (or nothing is stored). Identical tuples cause zero vault
// writes. The write is all four fields or none.
func (s *ResolverService) Reconcile(ctx context.Context, cred domain.ServiceCredential) error {
	if s.vault == nil {
		return nil
	}
	if cred.ServiceID == "" {
		return domain.ErrInvalidInput
	}

	stored, err := s.vault.Get(ctx, cred.ServiceID)
	if err == nil && stored.Equal(cred) {
		return nil
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		// Vault unreachable: nothing to compare against and a write would
		// fail the same way. Recoverable, so log and move on.
		logger.Warn("vault read for %s failed, skipping reconciliation: %v", cred.ServiceID, err)
		return nil
	}

	if err := s.vault.Save(ctx, cred); err != nil {
		logger.Warn("vault write for %s failed: %v", cred.ServiceID, err)
		return nil
	}
	logger.Debug("vault entry for %s updated", cred.ServiceID)
	return nil
}
