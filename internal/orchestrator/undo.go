package orchestrator

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/repoclean/repoclean/internal/console"
	"github.com/repoclean/repoclean/internal/domain"
	"github.com/repoclean/repoclean/internal/repository"
	"github.com/repoclean/repoclean/internal/usecase"
)

// UndoConfig contains configuration for the undo workflow.
type UndoConfig struct {
	InputPath  string
	OutputPath string
	SkipPath   string
}

// UndoOrchestrator drives the commit-deletion workflow: load the commit
// list, and per repository run the safety check, ask for confirmation and
// apply the rewrite. One repository at a time, no shared state between
// targets; the report and skip list are written once at the end.
type UndoOrchestrator struct {
	gitRepo  repository.GitRepository
	store    repository.DocumentStore
	prompter console.Prompter
	printer  *console.Printer
	log      *zap.Logger

	loadUC   *usecase.LoadCommitsUseCase
	deleteUC *usecase.DeleteCommitsUseCase
}

// NewUndoOrchestrator creates a new undo orchestrator.
func NewUndoOrchestrator(
	gitRepo repository.GitRepository,
	store repository.DocumentStore,
	prompter console.Prompter,
	printer *console.Printer,
	log *zap.Logger,
	gitName, gitEmail string,
) *UndoOrchestrator {
	return &UndoOrchestrator{
		gitRepo:  gitRepo,
		store:    store,
		prompter: prompter,
		printer:  printer,
		log:      log,
		loadUC:   &usecase.LoadCommitsUseCase{Store: store},
		deleteUC: &usecase.DeleteCommitsUseCase{GitName: gitName, GitEmail: gitEmail},
	}
}

// Execute runs the complete undo workflow.
func (o *UndoOrchestrator) Execute(ctx context.Context, cfg UndoConfig) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultWorkflowTimeout)
	defer cancel()
	commits, err := o.loadUC.Execute(ctx, cfg.InputPath)
	if err != nil {
		return err
	}
	o.printer.Success(fmt.Sprintf("Loaded %d commit(s) from %s", len(commits), cfg.InputPath))

	grouped, order := domain.GroupByRepository(commits)
	report := &domain.DeletionReport{
		RunID:           uuid.New().String(),
		ExecutionDate:   time.Now().Format(time.RFC3339),
		Results:         []domain.DeletionOutcome{},
		SkippedForLater: []domain.SkippedReference{},
	}
	report.Stats.TotalRepos = len(order)
	report.Stats.TotalCommits = len(commits)

	o.printer.Box(fmt.Sprintf("COMMIT DELETION PLAN\nTotal repositories: %d\nTotal commits to delete: %d",
		len(order), len(commits)))

	skipAll := false
	for idx, repoName := range order {
		repoCommits := grouped[repoName]
		o.printer.Println()
		o.printer.Box(fmt.Sprintf("Repository %d/%d: %s", idx+1, len(order), repoName))
		if skipAll {
			o.skipRepository(report, repoName, repoCommits, domain.ReasonSkipped)
			continue
		}
		decision, err := o.processRepository(ctx, report, repoName, repoCommits)
		if err != nil {
			return err
		}
		if decision == domain.DecisionSkipAll {
			skipAll = true
		}
	}

	if err := o.store.WriteJSON(ctx, cfg.OutputPath, report); err != nil {
		return fmt.Errorf("failed to write deletion report: %w", err)
	}
	o.printer.Success(fmt.Sprintf("Results saved to %s", cfg.OutputPath))
	if len(report.SkippedForLater) > 0 {
		skipList := domain.SkipList{
			Date:    report.ExecutionDate,
			Commits: report.SkippedForLater,
		}
		if err := o.store.WriteJSON(ctx, cfg.SkipPath, skipList); err != nil {
			return fmt.Errorf("failed to write skip list: %w", err)
		}
		o.printer.Success(fmt.Sprintf("Skipped commits saved to %s", cfg.SkipPath))
	}
	o.printSummary(report.Stats)
	return nil
}

// processRepository walks one repository through the deletion progression:
// clone, safety check, confirmation, rewrite. Failures are recorded on the
// report and never abort the run; only a prompter error does.
func (o *UndoOrchestrator) processRepository(
	ctx context.Context,
	report *domain.DeletionReport,
	repoName string,
	repoCommits []domain.CommitReference,
) (domain.Decision, error) {
	o.printer.Warning(fmt.Sprintf("Found %d commit(s) to delete", len(repoCommits)))
	cloneDir, err := os.MkdirTemp("", "repoclean-*")
	if err != nil {
		return domain.DecisionSkip, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer func() {
		if removeErr := os.RemoveAll(cloneDir); removeErr != nil {
			o.log.Warn("failed to remove clone dir", zap.Error(removeErr))
		}
	}()

	o.printer.Grey("Cloning repository...")
	o.log.Debug("cloning repository", zap.String("repository", repoName))
	cloneCtx, cancel := context.WithTimeout(ctx, CloneTimeout)
	clone, err := o.gitRepo.CloneRepository(cloneCtx, repoName, cloneDir)
	cancel()
	if err != nil {
		o.printer.Error(fmt.Sprintf("Failed to clone repository: %v", err))
		o.log.Warn("clone failed", zap.String("repository", repoName), zap.Error(err))
		report.Results = append(report.Results, domain.DeletionOutcome{
			Repository:   repoName,
			TotalCommits: len(repoCommits),
			Status:       domain.StatusFailed,
			ErrorMessage: err.Error(),
		})
		report.Stats.SkippedRepos++
		report.Stats.SkippedCommits += len(repoCommits)
		return domain.DecisionSkip, nil
	}

	headLog, err := clone.HeadLog(ctx, 0)
	if err != nil {
		o.printer.Error(fmt.Sprintf("Failed to read history: %v", err))
		o.skipRepository(report, repoName, repoCommits, domain.ReasonUnsafe)
		return domain.DecisionSkip, nil
	}
	shas := make([]string, len(repoCommits))
	for i, c := range repoCommits {
		shas[i] = c.SHA
	}
	o.printer.Grey("Performing safety check...")
	safety := usecase.CheckPrefixSafety(headLog, shas)
	if !safety.Safe {
		o.reportUnsafe(ctx, clone, safety)
		report.Results = append(report.Results, domain.DeletionOutcome{
			Repository:   repoName,
			TotalCommits: len(repoCommits),
			Status:       domain.StatusSafetyFailed,
			ErrorMessage: fmt.Sprintf("%d commit(s) missing, %d blocking", len(safety.Missing), len(safety.Blocking)),
		})
		o.skipRepository(report, repoName, repoCommits, domain.ReasonUnsafe)
		return domain.DecisionSkip, nil
	}
	o.printer.Success("Safety check passed: commits are the most recent on the branch")

	o.previewCommits(ctx, clone, repoCommits)
	o.printer.Warning(fmt.Sprintf("WARNING: this will permanently delete %d commit(s) and force push", len(repoCommits)))
	decision, err := o.prompter.ConfirmDeletion(repoName, len(repoCommits))
	if err != nil {
		return decision, fmt.Errorf("confirmation aborted: %w", err)
	}
	switch decision {
	case domain.DecisionApply:
		outcome := o.deleteUC.Execute(ctx, clone, repoName, repoCommits)
		report.Results = append(report.Results, *outcome)
		report.Stats.ProcessedRepos++
		report.Stats.DeletedCommits += outcome.DeletedCommits
		o.reportOutcome(outcome)
	case domain.DecisionDefer:
		o.printer.Warning("Marking commits for later review")
		o.skipRepository(report, repoName, repoCommits, domain.ReasonDeclined)
	default:
		o.printer.Warning("Skipping this repository")
		o.skipRepository(report, repoName, repoCommits, domain.ReasonSkipped)
	}
	return decision, nil
}

// reportUnsafe names the specific commits that prevent deletion.
func (o *UndoOrchestrator) reportUnsafe(
	ctx context.Context,
	clone repository.ClonedRepository,
	safety domain.SafetyResult,
) {
	o.printer.Error("SAFETY CHECK FAILED")
	for _, sha := range safety.Missing {
		o.printer.Error(fmt.Sprintf("  commit not found: %s", domain.ShortSHA(sha)))
	}
	if len(safety.Blocking) > 0 {
		o.printer.Error(fmt.Sprintf("Found %d commit(s) newer than the deletion set; deleting would erase them:",
			len(safety.Blocking)))
		for i, sha := range safety.Blocking {
			if i >= maxBlockingPreview {
				o.printer.Error(fmt.Sprintf("  ... and %d more commits", len(safety.Blocking)-maxBlockingPreview))
				break
			}
			line := domain.ShortSHA(sha)
			if detail, err := clone.CommitDetail(ctx, sha); err == nil {
				line = fmt.Sprintf("%s - %s", line, console.FirstLine(detail.Message))
			}
			o.printer.Error("  - " + line)
		}
	}
	o.printer.Warning("This repository will be automatically skipped.")
}

// previewCommits renders the table of commits about to be deleted.
func (o *UndoOrchestrator) previewCommits(
	ctx context.Context,
	clone repository.ClonedRepository,
	commits []domain.CommitReference,
) {
	headers := []string{"#", "SHA", "Message", "Author", "Files"}
	rows := make([][]string, 0, len(commits))
	for i, c := range commits {
		message := console.Truncate(console.FirstLine(c.Message), 40)
		author := ""
		files := "?"
		if detail, err := clone.CommitDetail(ctx, c.SHA); err == nil {
			message = console.Truncate(console.FirstLine(detail.Message), 40)
			author = console.Truncate(detail.Author, 20)
			files = fmt.Sprintf("%d", len(detail.Files))
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			domain.ShortSHA(c.SHA),
			message,
			author,
			files,
		})
	}
	o.printer.Table(headers, rows)
}

func (o *UndoOrchestrator) skipRepository(
	report *domain.DeletionReport,
	repoName string,
	commits []domain.CommitReference,
	reason string,
) {
	report.Stats.SkippedRepos++
	report.Stats.SkippedCommits += len(commits)
	for _, c := range commits {
		report.SkippedForLater = append(report.SkippedForLater, domain.SkippedReference{
			Repository: repoName,
			SHA:        c.SHA,
			Message:    c.Message,
			Reason:     reason,
		})
	}
}

func (o *UndoOrchestrator) reportOutcome(outcome *domain.DeletionOutcome) {
	switch outcome.Status {
	case domain.StatusApplied:
		o.printer.Success(fmt.Sprintf("Successfully deleted %d commit(s) from %s",
			outcome.DeletedCommits, outcome.Repository))
	case domain.StatusPartial:
		o.printer.Warning(fmt.Sprintf("Partially completed for %s: %s",
			outcome.Repository, outcome.ErrorMessage))
	default:
		o.printer.Error(fmt.Sprintf("Failed to process %s: %s",
			outcome.Repository, outcome.ErrorMessage))
	}
}

func (o *UndoOrchestrator) printSummary(stats domain.DeletionStats) {
	o.printer.Println()
	o.printer.Table([]string{"Metric", "Value"}, [][]string{
		{"Total repositories", fmt.Sprintf("%d", stats.TotalRepos)},
		{"  Processed", fmt.Sprintf("%d", stats.ProcessedRepos)},
		{"  Skipped", fmt.Sprintf("%d", stats.SkippedRepos)},
		{"Total commits", fmt.Sprintf("%d", stats.TotalCommits)},
		{"  Deleted", fmt.Sprintf("%d", stats.DeletedCommits)},
		{"  Skipped for later", fmt.Sprintf("%d", stats.SkippedCommits)},
	})
}
