package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/repoclean/repoclean/internal/domain"
)

func TestDeleteCommitsUseCase(t *testing.T) {
	uc := &DeleteCommitsUseCase{GitName: "repoclean", GitEmail: "noreply@github.com"}
	commits := []domain.CommitReference{
		{Repository: "alice/widgets", SHA: "c2", Message: "newer", Timestamp: "2026-08-20T12:00:00Z"},
		{Repository: "alice/widgets", SHA: "c1", Message: "older", Timestamp: "2026-08-20T09:00:00Z"},
	}

	t.Run("Should reset to the parent of the oldest commit and force push", func(t *testing.T) {
		clone := &mockClonedRepository{}
		clone.On("ConfigureUser", mock.Anything, "repoclean", "noreply@github.com").Return(nil)
		clone.On("CurrentBranch", mock.Anything).Return("main", nil)
		clone.On("HasCommit", mock.Anything, "c2").Return(true)
		clone.On("HasCommit", mock.Anything, "c1").Return(true)
		clone.On("ParentOf", mock.Anything, "c1").Return("c0", nil)
		clone.On("ResetHard", mock.Anything, "c0").Return(nil)
		clone.On("ForcePushBranch", mock.Anything, "main").Return(nil)

		outcome := uc.Execute(context.Background(), clone, "alice/widgets", commits)
		require.Equal(t, domain.StatusApplied, outcome.Status)
		assert.Equal(t, 2, outcome.DeletedCommits)
		assert.Equal(t, 0, outcome.FailedCommits)
		require.Len(t, outcome.CommitDetails, 2)
		for _, detail := range outcome.CommitDetails {
			assert.Equal(t, domain.CommitStatusDeleted, detail.Status)
		}
		clone.AssertExpectations(t)
	})
	t.Run("Should fail without touching the branch when a commit is missing", func(t *testing.T) {
		clone := &mockClonedRepository{}
		clone.On("ConfigureUser", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		clone.On("CurrentBranch", mock.Anything).Return("main", nil)
		clone.On("HasCommit", mock.Anything, "c2").Return(true)
		clone.On("HasCommit", mock.Anything, "c1").Return(false)

		outcome := uc.Execute(context.Background(), clone, "alice/widgets", commits)
		require.Equal(t, domain.StatusFailed, outcome.Status)
		assert.Equal(t, 1, outcome.FailedCommits)
		require.Len(t, outcome.CommitDetails, 1)
		assert.Equal(t, "c1", outcome.CommitDetails[0].SHA)
		assert.Equal(t, domain.CommitStatusNotFound, outcome.CommitDetails[0].Status)
		clone.AssertNotCalled(t, "ResetHard", mock.Anything, mock.Anything)
		clone.AssertNotCalled(t, "ForcePushBranch", mock.Anything, mock.Anything)
	})
	t.Run("Should report partial status when the push fails after the reset", func(t *testing.T) {
		clone := &mockClonedRepository{}
		clone.On("ConfigureUser", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		clone.On("CurrentBranch", mock.Anything).Return("main", nil)
		clone.On("HasCommit", mock.Anything, mock.Anything).Return(true)
		clone.On("ParentOf", mock.Anything, "c1").Return("c0", nil)
		clone.On("ResetHard", mock.Anything, "c0").Return(nil)
		clone.On("ForcePushBranch", mock.Anything, "main").Return(errors.New("remote rejected"))

		outcome := uc.Execute(context.Background(), clone, "alice/widgets", commits)
		require.Equal(t, domain.StatusPartial, outcome.Status)
		assert.Equal(t, 2, outcome.DeletedCommits)
		assert.Contains(t, outcome.ErrorMessage, "remote rejected")
	})
	t.Run("Should fail when the parent cannot be resolved", func(t *testing.T) {
		clone := &mockClonedRepository{}
		clone.On("ConfigureUser", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		clone.On("CurrentBranch", mock.Anything).Return("main", nil)
		clone.On("HasCommit", mock.Anything, mock.Anything).Return(true)
		clone.On("ParentOf", mock.Anything, "c1").Return("", errors.New("commit has no parent"))

		outcome := uc.Execute(context.Background(), clone, "alice/widgets", commits)
		require.Equal(t, domain.StatusFailed, outcome.Status)
		assert.Contains(t, outcome.ErrorMessage, "parent")
		clone.AssertNotCalled(t, "ResetHard", mock.Anything, mock.Anything)
	})
}
