package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/repoclean/repoclean/internal/console"
	"github.com/repoclean/repoclean/internal/domain"
	"github.com/repoclean/repoclean/internal/repository"
	"github.com/repoclean/repoclean/internal/usecase"
)

// VisibilityConfig contains configuration for the visibility workflow.
// AllPrivate, AllPublic and Export pick a mode directly; when none is given
// the workflow shows an interactive menu.
type VisibilityConfig struct {
	Affiliation string
	OutputPath  string
	ExportPath  string

	AllPrivate bool
	AllPublic  bool
	ExportRun  bool
}

// VisibilityOrchestrator bulk-edits or exports repository visibility.
type VisibilityOrchestrator struct {
	githubRepo repository.GithubRepository
	store      repository.DocumentStore
	prompter   console.Prompter
	printer    *console.Printer
	log        *zap.Logger

	updateUC *usecase.UpdateVisibilityUseCase
}

// NewVisibilityOrchestrator creates a new visibility orchestrator.
func NewVisibilityOrchestrator(
	githubRepo repository.GithubRepository,
	store repository.DocumentStore,
	prompter console.Prompter,
	printer *console.Printer,
	log *zap.Logger,
) *VisibilityOrchestrator {
	return &VisibilityOrchestrator{
		githubRepo: githubRepo,
		store:      store,
		prompter:   prompter,
		printer:    printer,
		log:        log,
		updateUC:   &usecase.UpdateVisibilityUseCase{GithubRepo: githubRepo},
	}
}

// Execute runs the visibility workflow.
func (o *VisibilityOrchestrator) Execute(ctx context.Context, cfg VisibilityConfig) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultWorkflowTimeout)
	defer cancel()

	o.printer.Grey("Listing repositories...")
	repos, err := o.githubRepo.ListRepositories(ctx, cfg.Affiliation)
	if err != nil {
		return err
	}
	o.printer.Success(fmt.Sprintf("Found %d repositories", len(repos)))
	o.printVisibilitySummary(repos)
	o.log.Debug("repositories listed",
		zap.String("affiliation", cfg.Affiliation),
		zap.Int("count", len(repos)))

	mode, err := o.resolveMode(cfg)
	if err != nil {
		return err
	}
	switch mode {
	case "all_private":
		return o.applyAll(ctx, cfg, repos, true)
	case "all_public":
		o.printer.Box("WARNING\nMaking repositories public exposes their full history\nto anyone on the internet. This cannot be partially undone.")
		return o.applyAll(ctx, cfg, repos, false)
	case "individual":
		return o.reviewIndividually(ctx, cfg, repos)
	case "export":
		return o.export(ctx, cfg.ExportPath, repos)
	default:
		o.printer.Println("Nothing to do.")
		return nil
	}
}

func (o *VisibilityOrchestrator) resolveMode(cfg VisibilityConfig) (string, error) {
	switch {
	case cfg.AllPrivate:
		return "all_private", nil
	case cfg.AllPublic:
		return "all_public", nil
	case cfg.ExportRun:
		return "export", nil
	}
	return o.prompter.Select("What do you want to do?", []console.Option{
		{Value: "all_private", Label: "Make ALL repositories private"},
		{Value: "all_public", Label: "Make ALL repositories public"},
		{Value: "individual", Label: "Review repositories one by one"},
		{Value: "export", Label: "Export current visibility to a file"},
		{Value: "exit", Label: "Exit without changes"},
	})
}

func (o *VisibilityOrchestrator) printVisibilitySummary(repos []domain.RepositoryInfo) {
	private := 0
	for _, r := range repos {
		if r.Private {
			private++
		}
	}
	o.printer.Grey(fmt.Sprintf("%d private, %d public", private, len(repos)-private))
}

func (o *VisibilityOrchestrator) applyAll(
	ctx context.Context,
	cfg VisibilityConfig,
	repos []domain.RepositoryInfo,
	private bool,
) error {
	target := "public"
	if private {
		target = "private"
	}
	ok, err := o.prompter.Confirm(fmt.Sprintf("This will make all %d repositories %s. Continue?", len(repos), target))
	if err != nil {
		return err
	}
	if !ok {
		o.printer.Warning("Cancelled, no changes made")
		return nil
	}

	changes := o.updateUC.Execute(ctx, repos, private)
	for _, change := range changes {
		switch change.Status {
		case domain.StatusApplied:
			o.printer.Success(fmt.Sprintf("%s: %s -> %s", change.Repository, change.OldValue, change.NewValue))
		case domain.StatusSkipped:
			o.printer.Grey(fmt.Sprintf("%s: already %s", change.Repository, change.OldValue))
		case domain.StatusFailed:
			o.printer.Error(fmt.Sprintf("Failed %s: %s", change.Repository, change.Error))
		}
	}
	return o.writeReport(ctx, cfg.OutputPath, changes, nil)
}

// reviewIndividually asks per repository whether to flip its visibility.
func (o *VisibilityOrchestrator) reviewIndividually(
	ctx context.Context,
	cfg VisibilityConfig,
	repos []domain.RepositoryInfo,
) error {
	var changes []domain.MetadataChange
	var skipped []domain.SkippedRepository
	for _, repo := range repos {
		opposite := !repo.Private
		target := "public"
		if opposite {
			target = "private"
		}
		ok, err := o.prompter.Confirm(fmt.Sprintf("%s is %s. Make it %s?", repo.FullName, repo.Visibility(), target))
		if err != nil {
			return err
		}
		if !ok {
			skipped = append(skipped, domain.SkippedRepository{
				Repository: repo.FullName,
				Current:    repo.Visibility(),
				Reason:     "declined",
			})
			continue
		}
		change := o.updateUC.ExecuteOne(ctx, repo, opposite)
		changes = append(changes, change)
		if change.Status == domain.StatusFailed {
			o.printer.Error(fmt.Sprintf("Failed %s: %s", change.Repository, change.Error))
		} else {
			o.printer.Success(fmt.Sprintf("%s is now %s", change.Repository, change.NewValue))
		}
	}
	return o.writeReport(ctx, cfg.OutputPath, changes, skipped)
}

func (o *VisibilityOrchestrator) export(
	ctx context.Context,
	path string,
	repos []domain.RepositoryInfo,
) error {
	export := domain.RepositoryExport{
		ExportedAt:   time.Now().Format(time.RFC3339),
		TotalRepos:   len(repos),
		Repositories: repos,
	}
	if err := o.store.WriteJSON(ctx, path, export); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	o.printer.Success(fmt.Sprintf("Exported %d repositories to %s", len(repos), path))
	return nil
}

func (o *VisibilityOrchestrator) writeReport(
	ctx context.Context,
	path string,
	changes []domain.MetadataChange,
	skipped []domain.SkippedRepository,
) error {
	report := &domain.MetadataReport{
		RunID:         uuid.New().String(),
		ExecutionDate: time.Now().Format(time.RFC3339),
		Changes:       changes,
		Skipped:       skipped,
	}
	report.Stats.TotalRepos = len(changes) + len(skipped)
	report.Stats.Skipped = len(skipped)
	for _, change := range changes {
		switch change.Status {
		case domain.StatusApplied:
			report.Stats.Updated++
		case domain.StatusSkipped:
			report.Stats.Skipped++
		case domain.StatusFailed:
			report.Stats.Failed++
		}
	}
	if err := o.store.WriteJSON(ctx, path, report); err != nil {
		return fmt.Errorf("failed to write update report: %w", err)
	}
	o.printer.Println()
	o.printer.Success(fmt.Sprintf("Updated %d, skipped %d, failed %d; report saved to %s",
		report.Stats.Updated, report.Stats.Skipped, report.Stats.Failed, path))
	return nil
}
