// Package github implements driven.RepoLister over the GitHub REST API.
// It seeds repository entries into the record store; annotation itself
// happens elsewhere.
package github

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/casics/annotator/internal/core/domain"
	"github.com/casics/annotator/internal/core/ports/driven"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// ProactiveRate throttles listing to ~1.2 req/sec, well inside the
	// authenticated API budget.
	ProactiveRate = 1.2

	// PageSize is the listing page size (GitHub's maximum).
	PageSize = 100
)

// Ensure Lister implements the interface.
var _ driven.RepoLister = (*Lister)(nil)

// Lister fetches repository entries from GitHub.
type Lister struct {
	gh      *gh.Client
	limiter *rate.Limiter
}

// NewLister creates a GitHub repository lister. An empty token means
// unauthenticated access, which is enough for public repositories at a
// lower rate limit.
func NewLister(token string) *Lister {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	} else {
		httpClient = &http.Client{}
	}
	httpClient.Timeout = DefaultTimeout

	return &Lister{
		gh:      gh.NewClient(httpClient),
		limiter: rate.NewLimiter(rate.Limit(ProactiveRate), 1),
	}
}

// NewListerWithClient creates a lister around an existing go-github client.
// Useful for testing against a local API server.
func NewListerWithClient(client *gh.Client) *Lister {
	return &Lister{
		gh:      client,
		limiter: rate.NewLimiter(rate.Inf, 1),
	}
}

// ListByOwner returns the public repositories of a user or organisation as
// unannotated records. Forks and archived repositories are skipped; they
// are not annotation targets.
func (l *Lister) ListByOwner(ctx context.Context, owner string) ([]domain.AnnotationRecord, error) {
	opts := &gh.RepositoryListByUserOptions{
		Type:        "owner",
		ListOptions: gh.ListOptions{PerPage: PageSize},
	}

	var records []domain.AnnotationRecord
	for {
		if err := l.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		repos, resp, err := l.gh.Repositories.ListByUser(ctx, owner, opts)
		if err != nil {
			return nil, fmt.Errorf("listing repositories for %s: %w", owner, err)
		}

		for _, repo := range repos {
			if repo.GetFork() || repo.GetArchived() || repo.GetDisabled() {
				continue
			}
			records = append(records, domain.AnnotationRecord{
				ID:    strconv.FormatInt(repo.GetID(), 10),
				Owner: repo.GetOwner().GetLogin(),
				Name:  repo.GetName(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return records, nil
}
