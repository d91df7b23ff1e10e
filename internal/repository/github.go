package repository

import (
	"context"
	"time"

	"github.com/repoclean/repoclean/internal/domain"
)

// AuthenticatedUser is the identity behind the supplied token.
type AuthenticatedUser struct {
	Login string
	Name  string
	Email string
}

// GithubRepository defines the interface for GitHub API operations.

type GithubRepository interface {
	AuthenticatedUser(ctx context.Context) (*AuthenticatedUser, error)
	SearchCommitsByAuthorAndDate(ctx context.Context, author string, date time.Time) ([]domain.CommitReference, error)
	ListRepositories(ctx context.Context, affiliation string) ([]domain.RepositoryInfo, error)
	UpdateDescription(ctx context.Context, fullName, description string) error
	UpdateVisibility(ctx context.Context, fullName string, private bool) error
}
