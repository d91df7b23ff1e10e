package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/repoclean/repoclean/internal/domain"
	"github.com/repoclean/repoclean/internal/repository"
)

// DeleteCommitsUseCase rewrites a confirmed repository: it verifies the
// candidate commits exist in the clone, moves the branch head to the parent
// of the oldest candidate and force-pushes the result. It assumes the
// prefix-safety check has already passed.

type DeleteCommitsUseCase struct {
	GitName  string
	GitEmail string
}

// Execute runs the rewrite against an already-cloned repository and returns
// the per-repository outcome. It never returns an error: every failure mode
// is recorded in the outcome so the run can continue with other targets.
func (uc *DeleteCommitsUseCase) Execute(
	ctx context.Context,
	clone repository.ClonedRepository,
	repoName string,
	commits []domain.CommitReference,
) *domain.DeletionOutcome {
	outcome := &domain.DeletionOutcome{
		Repository:   repoName,
		TotalCommits: len(commits),
		Status:       domain.StatusPending,
	}
	if err := clone.ConfigureUser(ctx, uc.GitName, uc.GitEmail); err != nil {
		return failOutcome(outcome, fmt.Sprintf("git config failed: %v", err))
	}
	branch, err := clone.CurrentBranch(ctx)
	if err != nil {
		return failOutcome(outcome, fmt.Sprintf("failed to get current branch: %v", err))
	}
	// Verify all commits exist before touching anything.
	valid := true
	for _, c := range commits {
		if !clone.HasCommit(ctx, c.SHA) {
			outcome.CommitDetails = append(outcome.CommitDetails, domain.CommitStatusDetail{
				SHA:     c.SHA,
				Status:  domain.CommitStatusNotFound,
				Message: truncate(c.Message, 60),
			})
			outcome.FailedCommits++
			valid = false
		}
	}
	if !valid {
		return failOutcome(outcome, "some commits were not found")
	}
	oldest := oldestCommit(commits)
	parent, err := clone.ParentOf(ctx, oldest.SHA)
	if err != nil {
		return failOutcome(outcome, fmt.Sprintf("failed to get parent commit: %v", err))
	}
	if err := clone.ResetHard(ctx, parent); err != nil {
		return failOutcome(outcome, fmt.Sprintf("git reset failed: %v", err))
	}
	for _, c := range commits {
		outcome.DeletedCommits++
		outcome.CommitDetails = append(outcome.CommitDetails, domain.CommitStatusDetail{
			SHA:     c.SHA,
			Status:  domain.CommitStatusDeleted,
			Message: truncate(c.Message, 60),
		})
	}
	if err := clone.ForcePushBranch(ctx, branch); err != nil {
		// The local rewrite happened but publishing it did not.
		outcome.Status = domain.StatusPartial
		outcome.ErrorMessage = err.Error()
		return outcome
	}
	outcome.Status = domain.StatusApplied
	return outcome
}

// oldestCommit picks the commit with the earliest author timestamp; its
// parent is where the branch head ends up.
func oldestCommit(commits []domain.CommitReference) domain.CommitReference {
	sorted := make([]domain.CommitReference, len(commits))
	copy(sorted, commits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp < sorted[j].Timestamp
	})
	return sorted[0]
}

func failOutcome(outcome *domain.DeletionOutcome, msg string) *domain.DeletionOutcome {
	outcome.Status = domain.StatusFailed
	outcome.ErrorMessage = msg
	return outcome
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
