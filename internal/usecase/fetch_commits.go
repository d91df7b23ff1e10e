package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/repoclean/repoclean/internal/domain"
	"github.com/repoclean/repoclean/internal/repository"
)

// FetchCommitsUseCase finds every commit authored by the authenticated user
// on a given date, across all repositories visible through the Search API.

type FetchCommitsUseCase struct {
	GithubRepo repository.GithubRepository
}

// Execute runs the use case. The date must be in YYYY-MM-DD form.
func (uc *FetchCommitsUseCase) Execute(
	ctx context.Context,
	date string,
) (*domain.CommitList, *repository.AuthenticatedUser, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, nil, fmt.Errorf("date must be in YYYY-MM-DD format: %w", err)
	}
	user, err := uc.GithubRepo.AuthenticatedUser(ctx)
	if err != nil {
		return nil, nil, err
	}
	commits, err := uc.GithubRepo.SearchCommitsByAuthorAndDate(ctx, user.Login, day)
	if err != nil {
		return nil, nil, err
	}
	return &domain.CommitList{
		Date:         date,
		TotalCommits: len(commits),
		Commits:      commits,
	}, user, nil
}
