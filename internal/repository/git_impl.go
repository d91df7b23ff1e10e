package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	"github.com/go-git/go-git/v5/plumbing/transport/http"

	appconfig "github.com/repoclean/repoclean/internal/config"
	"github.com/repoclean/repoclean/internal/domain"
)

// gitRepository is the implementation of the GitRepository interface.

type gitRepository struct {
	token string
}

// NewGitRepository creates a new GitRepository authenticating with the
// given token. The token never appears in clone URLs, only in the basic
// auth header, so transport errors cannot leak it.
func NewGitRepository(token string) GitRepository {
	return &gitRepository{token: strings.TrimSpace(token)}
}

func (r *gitRepository) auth() *http.BasicAuth {
	if r.token == "" {
		return nil
	}
	// Use x-access-token as username for GitHub token authentication
	return &http.BasicAuth{
		Username: "x-access-token",
		Password: r.token,
	}
}

// CloneRepository clones the repository into dir and returns a handle on
// the clone.
func (r *gitRepository) CloneRepository(ctx context.Context, fullName, dir string) (ClonedRepository, error) {
	if err := appconfig.ValidateRepositoryFullName(fullName); err != nil {
		return nil, err
	}
	repo, err := git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:  fmt.Sprintf("https://github.com/%s.git", fullName),
		Auth: r.auth(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to clone %s: %w", fullName, err)
	}
	return &clonedRepository{repo: repo, auth: r.auth()}, nil
}

// clonedRepository is the implementation of the ClonedRepository interface.
type clonedRepository struct {
	repo *git.Repository
	auth *http.BasicAuth
}

// CurrentBranch returns the name of the checked-out branch.
func (c *clonedRepository) CurrentBranch(_ context.Context) (string, error) {
	head, err := c.repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}
	return head.Name().Short(), nil
}

// HeadHash returns the SHA of the current HEAD commit.
func (c *clonedRepository) HeadHash(_ context.Context) (string, error) {
	head, err := c.repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}
	return head.Hash().String(), nil
}

// HeadLog returns up to limit commit hashes reachable from HEAD, newest
// first. A limit of 0 returns the full history.
func (c *clonedRepository) HeadLog(_ context.Context, limit int) ([]string, error) {
	head, err := c.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to get HEAD: %w", err)
	}
	iter, err := c.repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, fmt.Errorf("failed to read log: %w", err)
	}
	var hashes []string
	err = iter.ForEach(func(commit *object.Commit) error {
		hashes = append(hashes, commit.Hash.String())
		if limit > 0 && len(hashes) >= limit {
			return storer.ErrStop
		}
		return nil
	})
	if err != nil && err != storer.ErrStop {
		return nil, fmt.Errorf("failed to iterate log: %w", err)
	}
	return hashes, nil
}

// HasCommit reports whether the given SHA resolves to a commit in the clone.
func (c *clonedRepository) HasCommit(_ context.Context, sha string) bool {
	_, err := c.repo.CommitObject(plumbing.NewHash(sha))
	return err == nil
}

// CommitDetail returns message, author and changed files for a commit.
func (c *clonedRepository) CommitDetail(_ context.Context, sha string) (*domain.CommitDetail, error) {
	commit, err := c.repo.CommitObject(plumbing.NewHash(sha))
	if err != nil {
		return nil, fmt.Errorf("failed to get commit %s: %w", domain.ShortSHA(sha), err)
	}
	detail := &domain.CommitDetail{
		SHA:     commit.Hash.String(),
		Message: strings.TrimSpace(commit.Message),
		Author:  commit.Author.Name,
		Date:    commit.Author.When.Format("2006-01-02 15:04:05 -0700"),
	}
	stats, err := commit.Stats()
	if err == nil {
		for _, stat := range stats {
			detail.Files = append(detail.Files, stat.Name)
		}
	}
	return detail, nil
}

// ParentOf returns the first parent of the given commit.
func (c *clonedRepository) ParentOf(_ context.Context, sha string) (string, error) {
	commit, err := c.repo.CommitObject(plumbing.NewHash(sha))
	if err != nil {
		return "", fmt.Errorf("failed to get commit %s: %w", domain.ShortSHA(sha), err)
	}
	if commit.NumParents() == 0 {
		return "", fmt.Errorf("commit %s has no parent", domain.ShortSHA(sha))
	}
	parent, err := commit.Parent(0)
	if err != nil {
		return "", fmt.Errorf("failed to get parent of %s: %w", domain.ShortSHA(sha), err)
	}
	return parent.Hash.String(), nil
}

// ConfigureUser sets the git user configuration.
func (c *clonedRepository) ConfigureUser(_ context.Context, name, email string) error {
	cfg, err := c.repo.Config()
	if err != nil {
		return fmt.Errorf("failed to get config: %w", err)
	}
	cfg.User.Name = name
	cfg.User.Email = email
	return c.repo.Storer.SetConfig(cfg)
}

// ResetHard moves the branch head and work tree to the given commit.
func (c *clonedRepository) ResetHard(_ context.Context, sha string) error {
	w, err := c.repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}
	hash, err := c.repo.ResolveRevision(plumbing.Revision(sha))
	if err != nil {
		return fmt.Errorf("failed to resolve revision %s: %w", domain.ShortSHA(sha), err)
	}
	if err := w.Reset(&git.ResetOptions{
		Commit: *hash,
		Mode:   git.HardReset,
	}); err != nil {
		return fmt.Errorf("failed to reset to %s: %w", domain.ShortSHA(sha), err)
	}
	return nil
}

// ForcePushBranch overwrites the remote branch with the local one.
func (c *clonedRepository) ForcePushBranch(ctx context.Context, name string) error {
	err := c.repo.PushContext(ctx, &git.PushOptions{
		RefSpecs: []config.RefSpec{config.RefSpec(fmt.Sprintf("refs/heads/%s:refs/heads/%s", name, name))},
		Auth:     c.auth,
		Force:    true,
	})
	if err != nil && err != git.NoErrAlreadyUpToDate {
		return fmt.Errorf("failed to force push %s: %w", name, err)
	}
	return nil
}
