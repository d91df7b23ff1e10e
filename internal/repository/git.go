package repository

import (
	"context"

	"github.com/repoclean/repoclean/internal/domain"
)

// GitRepository defines the interface for Git operations against remote
// repositories.

type GitRepository interface {
	CloneRepository(ctx context.Context, fullName, dir string) (ClonedRepository, error)
}

// ClonedRepository operates on a single local clone. The head log is ordered
// newest first, as the undo safety check expects.
type ClonedRepository interface {
	CurrentBranch(ctx context.Context) (string, error)
	HeadHash(ctx context.Context) (string, error)
	HeadLog(ctx context.Context, limit int) ([]string, error)
	HasCommit(ctx context.Context, sha string) bool
	CommitDetail(ctx context.Context, sha string) (*domain.CommitDetail, error)
	ParentOf(ctx context.Context, sha string) (string, error)
	ConfigureUser(ctx context.Context, name, email string) error
	ResetHard(ctx context.Context, sha string) error
	ForcePushBranch(ctx context.Context, name string) error
}
