package usecase

import (
	"context"

	"github.com/repoclean/repoclean/internal/domain"
	"github.com/repoclean/repoclean/internal/repository"
)

// UpdateDescriptionsUseCase applies one description to every repository.
// Each PATCH is independent: a failure is recorded and the loop continues.

type UpdateDescriptionsUseCase struct {
	GithubRepo repository.GithubRepository
}

// Execute sets description on every repository in repos and returns the
// per-repository change records.
func (uc *UpdateDescriptionsUseCase) Execute(
	ctx context.Context,
	repos []domain.RepositoryInfo,
	description string,
) []domain.MetadataChange {
	changes := make([]domain.MetadataChange, 0, len(repos))
	for _, repo := range repos {
		change := domain.MetadataChange{
			Repository: repo.FullName,
			Field:      domain.FieldDescription,
			OldValue:   repo.Description,
			NewValue:   description,
			Status:     domain.StatusApplied,
		}
		if err := uc.GithubRepo.UpdateDescription(ctx, repo.FullName, description); err != nil {
			change.Status = domain.StatusFailed
			change.Error = err.Error()
		}
		changes = append(changes, change)
	}
	return changes
}

// UpdateVisibilityUseCase flips repository visibility. Repositories already
// in the desired state are reported as skipped, not patched.

type UpdateVisibilityUseCase struct {
	GithubRepo repository.GithubRepository
}

// ExecuteOne updates a single repository and returns its change record.
func (uc *UpdateVisibilityUseCase) ExecuteOne(
	ctx context.Context,
	repo domain.RepositoryInfo,
	private bool,
) domain.MetadataChange {
	newValue := "public"
	if private {
		newValue = "private"
	}
	change := domain.MetadataChange{
		Repository: repo.FullName,
		Field:      domain.FieldVisibility,
		OldValue:   repo.Visibility(),
		NewValue:   newValue,
		Status:     domain.StatusApplied,
	}
	if repo.Private == private {
		change.Status = domain.StatusSkipped
		return change
	}
	if err := uc.GithubRepo.UpdateVisibility(ctx, repo.FullName, private); err != nil {
		change.Status = domain.StatusFailed
		change.Error = err.Error()
	}
	return change
}

// Execute updates every repository in repos to the desired visibility.
func (uc *UpdateVisibilityUseCase) Execute(
	ctx context.Context,
	repos []domain.RepositoryInfo,
	private bool,
) []domain.MetadataChange {
	changes := make([]domain.MetadataChange, 0, len(repos))
	for _, repo := range repos {
		changes = append(changes, uc.ExecuteOne(ctx, repo, private))
	}
	return changes
}
