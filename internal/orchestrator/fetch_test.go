package orchestrator

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/repoclean/repoclean/internal/console"
	"github.com/repoclean/repoclean/internal/domain"
	"github.com/repoclean/repoclean/internal/repository"
)

func TestFetchOrchestrator(t *testing.T) {
	newFixture := func(t *testing.T, gh *mockGithubRepository) (*FetchOrchestrator, FetchConfig, repository.DocumentStore) {
		t.Helper()
		store := repository.NewJSONDocumentStore(afero.NewOsFs())
		printer := console.NewPrinter(io.Discard, true)
		orch := NewFetchOrchestrator(gh, store, printer, zap.NewNop())
		cfg := FetchConfig{
			Date:       "2026-08-20",
			OutputPath: filepath.Join(t.TempDir(), "commits.json"),
		}
		return orch, cfg, store
	}

	t.Run("Should save the found commits to the output file", func(t *testing.T) {
		gh := &mockGithubRepository{}
		gh.On("AuthenticatedUser", mock.Anything).
			Return(&repository.AuthenticatedUser{Login: "alice"}, nil)
		gh.On("SearchCommitsByAuthorAndDate", mock.Anything, "alice", mock.Anything).
			Return([]domain.CommitReference{
				{Repository: "alice/widgets", SHA: "c1", Message: "one", Timestamp: "2026-08-20T09:00:00Z"},
			}, nil)
		orch, cfg, store := newFixture(t, gh)

		require.NoError(t, orch.Execute(context.Background(), cfg))

		var list domain.CommitList
		require.NoError(t, store.ReadJSON(context.Background(), cfg.OutputPath, &list))
		assert.Equal(t, "2026-08-20", list.Date)
		assert.Equal(t, 1, list.TotalCommits)
		require.Len(t, list.Commits, 1)
		assert.Equal(t, "c1", list.Commits[0].SHA)
	})
	t.Run("Should still write the file when no commits were found", func(t *testing.T) {
		gh := &mockGithubRepository{}
		gh.On("AuthenticatedUser", mock.Anything).
			Return(&repository.AuthenticatedUser{Login: "alice"}, nil)
		gh.On("SearchCommitsByAuthorAndDate", mock.Anything, "alice", mock.Anything).
			Return([]domain.CommitReference{}, nil)
		orch, cfg, store := newFixture(t, gh)

		require.NoError(t, orch.Execute(context.Background(), cfg))

		var list domain.CommitList
		require.NoError(t, store.ReadJSON(context.Background(), cfg.OutputPath, &list))
		assert.Equal(t, 0, list.TotalCommits)
	})
	t.Run("Should fail on an invalid date without writing anything", func(t *testing.T) {
		gh := &mockGithubRepository{}
		orch, cfg, _ := newFixture(t, gh)
		cfg.Date = "not-a-date"

		err := orch.Execute(context.Background(), cfg)
		require.Error(t, err)
		gh.AssertNotCalled(t, "AuthenticatedUser", mock.Anything)
	})
}
