package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/repoclean/repoclean/internal/domain"
	"github.com/repoclean/repoclean/internal/repository"
)

// LoadCommitsUseCase loads the commit references the undo workflow operates
// on. It accepts both the commit-list document written by fetch and the
// skip-list document written by a previous undo run, so skipped commits can
// be retried directly.

type LoadCommitsUseCase struct {
	Store repository.DocumentStore
}

// commitEntry merges the field names of both document shapes.
type commitEntry struct {
	Repository string `json:"repository"`
	CommitID   string `json:"commit_id"`
	CommitSHA  string `json:"commit_sha"`
	Message    string `json:"commit_message"`
	Timestamp  string `json:"timestamp"`
	URL        string `json:"url"`
}

type commitDocument struct {
	Commits        []commitEntry `json:"commits"`
	SkippedCommits []commitEntry `json:"skipped_commits"`
}

// Execute reads the document at path and normalizes it to commit references.
func (uc *LoadCommitsUseCase) Execute(ctx context.Context, path string) ([]domain.CommitReference, error) {
	var doc commitDocument
	if err := uc.Store.ReadJSON(ctx, path, &doc); err != nil {
		return nil, err
	}
	entries := doc.Commits
	if len(entries) == 0 {
		entries = doc.SkippedCommits
	}
	commits := make([]domain.CommitReference, 0, len(entries))
	for _, e := range entries {
		sha := e.CommitID
		if sha == "" {
			sha = e.CommitSHA
		}
		if sha == "" {
			return nil, fmt.Errorf("entry for %q has no commit hash", e.Repository)
		}
		// Older skip lists recorded the repository with a /git suffix.
		repo := strings.TrimSuffix(e.Repository, "/git")
		if repo == "" {
			return nil, fmt.Errorf("entry %s has no repository", domain.ShortSHA(sha))
		}
		commits = append(commits, domain.CommitReference{
			Repository: repo,
			SHA:        sha,
			Message:    e.Message,
			Timestamp:  e.Timestamp,
			URL:        e.URL,
		})
	}
	return commits, nil
}
