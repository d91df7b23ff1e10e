package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/repoclean/repoclean/internal/domain"
	"github.com/repoclean/repoclean/internal/repository"
)

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
