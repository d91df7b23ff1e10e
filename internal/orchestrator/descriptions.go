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

// DescriptionsConfig contains configuration for the descriptions workflow.
// Clear, Set and Export pick a mode directly; when none is given the
// workflow shows an interactive menu.
type DescriptionsConfig struct {
	Affiliation string
	OutputPath  string
	ExportPath  string

	Clear     bool
	Set       string
	ExportRun bool
}

// DescriptionsOrchestrator bulk-edits or exports repository descriptions.
type DescriptionsOrchestrator struct {
	githubRepo repository.GithubRepository
	store      repository.DocumentStore
	prompter   console.Prompter
	printer    *console.Printer
	log        *zap.Logger

	updateUC *usecase.UpdateDescriptionsUseCase
}

// NewDescriptionsOrchestrator creates a new descriptions orchestrator.
func NewDescriptionsOrchestrator(
	githubRepo repository.GithubRepository,
	store repository.DocumentStore,
	prompter console.Prompter,
	printer *console.Printer,
	log *zap.Logger,
) *DescriptionsOrchestrator {
	return &DescriptionsOrchestrator{
		githubRepo: githubRepo,
		store:      store,
		prompter:   prompter,
		printer:    printer,
		log:        log,
		updateUC:   &usecase.UpdateDescriptionsUseCase{GithubRepo: githubRepo},
	}
}

// Execute runs the descriptions workflow.
func (o *DescriptionsOrchestrator) Execute(ctx context.Context, cfg DescriptionsConfig) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultWorkflowTimeout)
	defer cancel()

	o.printer.Grey("Listing repositories...")
	repos, err := o.githubRepo.ListRepositories(ctx, cfg.Affiliation)
	if err != nil {
		return err
	}
	o.printer.Success(fmt.Sprintf("Found %d repositories", len(repos)))
	o.log.Debug("repositories listed",
		zap.String("affiliation", cfg.Affiliation),
		zap.Int("count", len(repos)))

	mode, err := o.resolveMode(cfg)
	if err != nil {
		return err
	}
	switch mode {
	case "clear_all":
		return o.applyAll(ctx, cfg, repos, "")
	case "set_all":
		description := cfg.Set
		if description == "" {
			description, err = o.prompter.Input("Enter the description to apply to all repositories:")
			if err != nil {
				return err
			}
		}
		return o.applyAll(ctx, cfg, repos, description)
	case "export":
		return o.export(ctx, cfg.ExportPath, repos)
	default:
		o.printer.Println("Nothing to do.")
		return nil
	}
}

func (o *DescriptionsOrchestrator) resolveMode(cfg DescriptionsConfig) (string, error) {
	switch {
	case cfg.Clear:
		return "clear_all", nil
	case cfg.Set != "":
		return "set_all", nil
	case cfg.ExportRun:
		return "export", nil
	}
	return o.prompter.Select("What do you want to do?", []console.Option{
		{Value: "clear_all", Label: "Clear descriptions on ALL repositories"},
		{Value: "set_all", Label: "Set the same description on ALL repositories"},
		{Value: "export", Label: "Export current descriptions to a file"},
		{Value: "exit", Label: "Exit without changes"},
	})
}

func (o *DescriptionsOrchestrator) applyAll(
	ctx context.Context,
	cfg DescriptionsConfig,
	repos []domain.RepositoryInfo,
	description string,
) error {
	action := fmt.Sprintf("set the description of all %d repositories to %q", len(repos), description)
	if description == "" {
		action = fmt.Sprintf("clear the description of all %d repositories", len(repos))
	}
	ok, err := o.prompter.Confirm(fmt.Sprintf("This will %s. Continue?", action))
	if err != nil {
		return err
	}
	if !ok {
		o.printer.Warning("Cancelled, no changes made")
		return nil
	}

	changes := o.updateUC.Execute(ctx, repos, description)
	report := o.buildReport(changes)
	for _, change := range changes {
		switch change.Status {
		case domain.StatusApplied:
			o.printer.Success(fmt.Sprintf("Updated %s", change.Repository))
		case domain.StatusFailed:
			o.printer.Error(fmt.Sprintf("Failed %s: %s", change.Repository, change.Error))
		}
	}
	if err := o.store.WriteJSON(ctx, cfg.OutputPath, report); err != nil {
		return fmt.Errorf("failed to write update report: %w", err)
	}
	o.printer.Println()
	o.printer.Success(fmt.Sprintf("Updated %d/%d repositories, report saved to %s",
		report.Stats.Updated, report.Stats.TotalRepos, cfg.OutputPath))
	return nil
}

func (o *DescriptionsOrchestrator) export(
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

func (o *DescriptionsOrchestrator) buildReport(changes []domain.MetadataChange) *domain.MetadataReport {
	report := &domain.MetadataReport{
		RunID:         uuid.New().String(),
		ExecutionDate: time.Now().Format(time.RFC3339),
		Changes:       changes,
	}
	report.Stats.TotalRepos = len(changes)
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
	return report
}
