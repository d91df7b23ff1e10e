package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/repoclean/repoclean/internal/console"
	"github.com/repoclean/repoclean/internal/domain"
	"github.com/repoclean/repoclean/internal/repository"
)

// Mock for GitRepository
type mockGitRepository struct{ mock.Mock }

func (m *mockGitRepository) CloneRepository(
	ctx context.Context,
	fullName, dir string,
) (repository.ClonedRepository, error) {
	args := m.Called(ctx, fullName, dir)
	if clone := args.Get(0); clone != nil {
		return clone.(repository.ClonedRepository), args.Error(1)
	}
	return nil, args.Error(1)
}

// Mock for ClonedRepository
type mockClonedRepository struct{ mock.Mock }

func (m *mockClonedRepository) CurrentBranch(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
func (m *mockClonedRepository) HeadHash(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
func (m *mockClonedRepository) HeadLog(ctx context.Context, limit int) ([]string, error) {
	args := m.Called(ctx, limit)
	if log := args.Get(0); log != nil {
		return log.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockClonedRepository) HasCommit(ctx context.Context, sha string) bool {
	args := m.Called(ctx, sha)
	return args.Bool(0)
}
func (m *mockClonedRepository) CommitDetail(ctx context.Context, sha string) (*domain.CommitDetail, error) {
	args := m.Called(ctx, sha)
	if detail := args.Get(0); detail != nil {
		return detail.(*domain.CommitDetail), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockClonedRepository) ParentOf(ctx context.Context, sha string) (string, error) {
	args := m.Called(ctx, sha)
	return args.String(0), args.Error(1)
}
func (m *mockClonedRepository) ConfigureUser(ctx context.Context, name, email string) error {
	args := m.Called(ctx, name, email)
	return args.Error(0)
}
func (m *mockClonedRepository) ResetHard(ctx context.Context, sha string) error {
	args := m.Called(ctx, sha)
	return args.Error(0)
}
func (m *mockClonedRepository) ForcePushBranch(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

// Mock for GithubRepository
type mockGithubRepository struct{ mock.Mock }

func (m *mockGithubRepository) AuthenticatedUser(ctx context.Context) (*repository.AuthenticatedUser, error) {
	args := m.Called(ctx)
	if user := args.Get(0); user != nil {
		return user.(*repository.AuthenticatedUser), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockGithubRepository) SearchCommitsByAuthorAndDate(
	ctx context.Context,
	author string,
	date time.Time,
) ([]domain.CommitReference, error) {
	args := m.Called(ctx, author, date)
	if commits := args.Get(0); commits != nil {
		return commits.([]domain.CommitReference), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockGithubRepository) ListRepositories(
	ctx context.Context,
	affiliation string,
) ([]domain.RepositoryInfo, error) {
	args := m.Called(ctx, affiliation)
	if repos := args.Get(0); repos != nil {
		return repos.([]domain.RepositoryInfo), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockGithubRepository) UpdateDescription(ctx context.Context, fullName, description string) error {
	args := m.Called(ctx, fullName, description)
	return args.Error(0)
}
func (m *mockGithubRepository) UpdateVisibility(ctx context.Context, fullName string, private bool) error {
	args := m.Called(ctx, fullName, private)
	return args.Error(0)
}

// scriptedPrompter answers prompts from pre-recorded scripts; running out of
// answers is a test bug.
type scriptedPrompter struct {
	decisions []domain.Decision
	confirms  []bool
	inputs    []string
	selects   []string
}

func (p *scriptedPrompter) ConfirmDeletion(string, int) (domain.Decision, error) {
	if len(p.decisions) == 0 {
		return domain.DecisionSkip, fmt.Errorf("unexpected deletion prompt")
	}
	d := p.decisions[0]
	p.decisions = p.decisions[1:]
	return d, nil
}

func (p *scriptedPrompter) Confirm(string) (bool, error) {
	if len(p.confirms) == 0 {
		return false, fmt.Errorf("unexpected confirm prompt")
	}
	c := p.confirms[0]
	p.confirms = p.confirms[1:]
	return c, nil
}

func (p *scriptedPrompter) Input(string) (string, error) {
	if len(p.inputs) == 0 {
		return "", fmt.Errorf("unexpected input prompt")
	}
	s := p.inputs[0]
	p.inputs = p.inputs[1:]
	return s, nil
}

func (p *scriptedPrompter) Select(_ string, _ []console.Option) (string, error) {
	if len(p.selects) == 0 {
		return "", fmt.Errorf("unexpected select prompt")
	}
	s := p.selects[0]
	p.selects = p.selects[1:]
	return s, nil
}
