package orchestrator

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/repoclean/repoclean/internal/console"
	"github.com/repoclean/repoclean/internal/domain"
	"github.com/repoclean/repoclean/internal/repository"
	"github.com/repoclean/repoclean/internal/usecase"
)

// FetchConfig contains configuration for the fetch workflow.
type FetchConfig struct {
	Date       string
	OutputPath string
}

// FetchOrchestrator finds the authenticated user's commits for one day and
// writes them to the commit list document the undo workflow consumes.
type FetchOrchestrator struct {
	store   repository.DocumentStore
	printer *console.Printer
	log     *zap.Logger

	fetchUC *usecase.FetchCommitsUseCase
}

// NewFetchOrchestrator creates a new fetch orchestrator.
func NewFetchOrchestrator(
	githubRepo repository.GithubRepository,
	store repository.DocumentStore,
	printer *console.Printer,
	log *zap.Logger,
) *FetchOrchestrator {
	return &FetchOrchestrator{
		store:   store,
		printer: printer,
		log:     log,
		fetchUC: &usecase.FetchCommitsUseCase{GithubRepo: githubRepo},
	}
}

// Execute runs the complete fetch workflow.
func (o *FetchOrchestrator) Execute(ctx context.Context, cfg FetchConfig) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultWorkflowTimeout)
	defer cancel()

	o.printer.Grey(fmt.Sprintf("Searching commits for %s...", cfg.Date))
	list, user, err := o.fetchUC.Execute(ctx, cfg.Date)
	if err != nil {
		return err
	}
	o.log.Debug("search complete",
		zap.String("login", user.Login),
		zap.Int("commits", list.TotalCommits))
	o.printer.Success(fmt.Sprintf("Authenticated as %s", user.Login))
	o.printer.Println()

	if list.TotalCommits == 0 {
		o.printer.Warning(fmt.Sprintf("No commits found for %s", cfg.Date))
	} else {
		o.printCommits(list)
	}

	if err := o.store.WriteJSON(ctx, cfg.OutputPath, list); err != nil {
		return fmt.Errorf("failed to write commit list: %w", err)
	}
	o.printer.Success(fmt.Sprintf("Saved %d commit(s) to %s", list.TotalCommits, cfg.OutputPath))
	return nil
}

func (o *FetchOrchestrator) printCommits(list *domain.CommitList) {
	grouped, order := domain.GroupByRepository(list.Commits)
	o.printer.Box(fmt.Sprintf("Found %d commit(s) on %s across %d repositories",
		list.TotalCommits, list.Date, len(order)))
	headers := []string{"Repository", "SHA", "Message", "Time"}
	rows := make([][]string, 0, len(list.Commits))
	for _, repoName := range order {
		for _, c := range grouped[repoName] {
			rows = append(rows, []string{
				console.Truncate(repoName, 40),
				domain.ShortSHA(c.SHA),
				console.Truncate(console.FirstLine(c.Message), 50),
				c.Timestamp,
			})
		}
	}
	o.printer.Table(headers, rows)
}
