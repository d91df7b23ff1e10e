package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/go-github/v74/github"
	"github.com/sethvargo/go-retry"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/repoclean/repoclean/internal/config"
	"github.com/repoclean/repoclean/internal/domain"
)

const (
	// searchPerPage is the maximum page size the Search API allows.
	searchPerPage = 100
	// searchRate paces Search API requests, which have a much lower
	// secondary limit than the REST API.
	searchRate = rate.Limit(2)

	defaultRetryCount = 3
	defaultRetryDelay = 1 * time.Second
)

// githubRepository is the implementation of the GithubRepository interface.
type githubRepository struct {
	client  *github.Client
	limiter *rate.Limiter
}

// NewGithubRepository creates a new GithubRepository with validation.
func NewGithubRepository(token string) (GithubRepository, error) {
	// Validate token format using the consolidated validator from config package
	if err := config.ValidateGitHubToken(token); err != nil {
		return nil, fmt.Errorf("invalid GitHub token: %w", err)
	}
	// Create OAuth2 client with the validated token
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: strings.TrimSpace(token)},
	)
	tc := oauth2.NewClient(context.Background(), ts)
	return &githubRepository{
		client:  github.NewClient(tc),
		limiter: rate.NewLimiter(searchRate, 1),
	}, nil
}

// withRetry runs call with exponential backoff, retrying only rate-limit
// rejections.
func withRetry(ctx context.Context, call func(ctx context.Context) error) error {
	strategy := retry.WithMaxRetries(defaultRetryCount, retry.NewExponential(defaultRetryDelay))
	return retry.Do(ctx, strategy, func(retryCtx context.Context) error {
		err := call(retryCtx)
		if err == nil {
			return nil
		}
		var rateErr *github.RateLimitError
		var abuseErr *github.AbuseRateLimitError
		if errors.As(err, &rateErr) || errors.As(err, &abuseErr) {
			return retry.RetryableError(err)
		}
		return err
	})
}

// AuthenticatedUser returns the identity behind the configured token.
func (r *githubRepository) AuthenticatedUser(ctx context.Context) (*AuthenticatedUser, error) {
	var user *github.User
	err := withRetry(ctx, func(ctx context.Context) error {
		var err error
		user, _, err = r.client.Users.Get(ctx, "")
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get authenticated user: %w", err)
	}
	return &AuthenticatedUser{
		Login: user.GetLogin(),
		Name:  user.GetName(),
		Email: user.GetEmail(),
	}, nil
}

// SearchCommitsByAuthorAndDate finds every commit authored by the given
// login with a committer date on the given day, across all of GitHub.
// Results come back newest first.
func (r *githubRepository) SearchCommitsByAuthorAndDate(
	ctx context.Context,
	author string,
	date time.Time,
) ([]domain.CommitReference, error) {
	day := date.Format("2006-01-02")
	nextDay := date.AddDate(0, 0, 1).Format("2006-01-02")
	query := fmt.Sprintf("author:%s committer-date:%s..%s", author, day, nextDay)
	opts := &github.SearchOptions{
		Sort:        "committer-date",
		Order:       "desc",
		ListOptions: github.ListOptions{PerPage: searchPerPage},
	}
	var commits []domain.CommitReference
	for {
		if err := r.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		var result *github.CommitsSearchResult
		var resp *github.Response
		err := withRetry(ctx, func(ctx context.Context) error {
			var err error
			result, resp, err = r.client.Search.Commits(ctx, query, opts)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("failed to search commits: %w", err)
		}
		for _, item := range result.Commits {
			commits = append(commits, mapCommitResult(item))
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return commits, nil
}

func mapCommitResult(item *github.CommitResult) domain.CommitReference {
	ref := domain.CommitReference{
		Repository: item.GetRepository().GetFullName(),
		SHA:        item.GetSHA(),
		URL:        item.GetHTMLURL(),
	}
	if commit := item.GetCommit(); commit != nil {
		ref.Message = commit.GetMessage()
		if author := commit.GetAuthor(); author != nil {
			ref.Timestamp = author.GetDate().Format(time.RFC3339)
			ref.AuthorName = author.GetName()
			ref.AuthorEmail = author.GetEmail()
		}
	}
	return ref
}

// ListRepositories enumerates the authenticated user's repositories for the
// given affiliation, most recently updated first.
func (r *githubRepository) ListRepositories(
	ctx context.Context,
	affiliation string,
) ([]domain.RepositoryInfo, error) {
	opts := &github.RepositoryListByAuthenticatedUserOptions{
		Affiliation: affiliation,
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: searchPerPage},
	}
	var repos []domain.RepositoryInfo
	for {
		var page []*github.Repository
		var resp *github.Response
		err := withRetry(ctx, func(ctx context.Context) error {
			var err error
			page, resp, err = r.client.Repositories.ListByAuthenticatedUser(ctx, opts)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list repositories: %w", err)
		}
		for _, repo := range page {
			repos = append(repos, domain.RepositoryInfo{
				Name:        repo.GetName(),
				FullName:    repo.GetFullName(),
				Description: repo.GetDescription(),
				Private:     repo.GetPrivate(),
				Stars:       repo.GetStargazersCount(),
				Forks:       repo.GetForksCount(),
				URL:         repo.GetHTMLURL(),
				UpdatedAt:   repo.GetUpdatedAt().Format(time.RFC3339),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return repos, nil
}

// UpdateDescription patches the repository description.
func (r *githubRepository) UpdateDescription(ctx context.Context, fullName, description string) error {
	owner, repo, err := splitFullName(fullName)
	if err != nil {
		return err
	}
	return withRetry(ctx, func(ctx context.Context) error {
		_, _, err := r.client.Repositories.Edit(ctx, owner, repo, &github.Repository{
			Description: github.Ptr(description),
		})
		if err != nil {
			return fmt.Errorf("failed to update description of %s: %w", fullName, err)
		}
		return nil
	})
}

// UpdateVisibility patches the repository private flag.
func (r *githubRepository) UpdateVisibility(ctx context.Context, fullName string, private bool) error {
	owner, repo, err := splitFullName(fullName)
	if err != nil {
		return err
	}
	return withRetry(ctx, func(ctx context.Context) error {
		_, _, err := r.client.Repositories.Edit(ctx, owner, repo, &github.Repository{
			Private: github.Ptr(private),
		})
		if err != nil {
			return fmt.Errorf("failed to update visibility of %s: %w", fullName, err)
		}
		return nil
	})
}

func splitFullName(fullName string) (string, string, error) {
	if err := config.ValidateRepositoryFullName(fullName); err != nil {
		return "", "", err
	}
	owner, repo, _ := strings.Cut(fullName, "/")
	return owner, repo, nil
}
