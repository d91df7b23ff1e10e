package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/repoclean/repoclean/internal/domain"
	"github.com/repoclean/repoclean/internal/repository"
)

func TestFetchCommitsUseCase(t *testing.T) {
	t.Run("Should reject a malformed date before calling the API", func(t *testing.T) {
		gh := &mockGithubRepository{}
		uc := &FetchCommitsUseCase{GithubRepo: gh}

		_, _, err := uc.Execute(context.Background(), "20-08-2026")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "YYYY-MM-DD")
		gh.AssertNotCalled(t, "AuthenticatedUser", mock.Anything)
	})
	t.Run("Should search commits for the authenticated user", func(t *testing.T) {
		day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
		gh := &mockGithubRepository{}
		gh.On("AuthenticatedUser", mock.Anything).
			Return(&repository.AuthenticatedUser{Login: "alice"}, nil)
		gh.On("SearchCommitsByAuthorAndDate", mock.Anything, "alice", day).
			Return([]domain.CommitReference{
				{Repository: "alice/widgets", SHA: "c1"},
				{Repository: "alice/gadgets", SHA: "c2"},
			}, nil)
		uc := &FetchCommitsUseCase{GithubRepo: gh}

		list, user, err := uc.Execute(context.Background(), "2026-08-20")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Login)
		assert.Equal(t, "2026-08-20", list.Date)
		assert.Equal(t, 2, list.TotalCommits)
		require.Len(t, list.Commits, 2)
		gh.AssertExpectations(t)
	})
	t.Run("Should return an empty list when nothing was committed", func(t *testing.T) {
		gh := &mockGithubRepository{}
		gh.On("AuthenticatedUser", mock.Anything).
			Return(&repository.AuthenticatedUser{Login: "alice"}, nil)
		gh.On("SearchCommitsByAuthorAndDate", mock.Anything, "alice", mock.Anything).
			Return([]domain.CommitReference{}, nil)
		uc := &FetchCommitsUseCase{GithubRepo: gh}

		list, _, err := uc.Execute(context.Background(), "2026-08-20")
		require.NoError(t, err)
		assert.Equal(t, 0, list.TotalCommits)
		assert.Empty(t, list.Commits)
	})
}
