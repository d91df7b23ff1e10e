package cmd

import (
	"github.com/spf13/cobra"

	"github.com/repoclean/repoclean/internal/orchestrator"
)

func newUndoCmd() *cobra.Command {
	var (
		undoInput  string
		undoOutput string
		undoSkip   string
	)
	cmd := &cobra.Command{
		Use:   "undo",
		Short: "Delete the commits listed in a commit-list file",
		Long: `Delete commits previously saved by the fetch command.

For each repository the tool clones it, verifies that the listed commits
are exactly the most recent ones on the default branch, shows a preview,
and asks for confirmation before rewriting history and force pushing.
Repositories that fail the safety check are skipped automatically;
declined or skipped commits are saved for later review.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newContainer()
			if err != nil {
				return err
			}
			defer func() { _ = c.log.Sync() }()
			gitRepo, err := c.gitRepo()
			if err != nil {
				return err
			}
			orch := orchestrator.NewUndoOrchestrator(
				gitRepo,
				c.store,
				c.prompter,
				c.printer,
				c.log,
				c.cfg.GitName,
				c.cfg.GitEmail,
			)
			return orch.Execute(cmd.Context(), orchestrator.UndoConfig{
				InputPath:  undoInput,
				OutputPath: undoOutput,
				SkipPath:   undoSkip,
			})
		},
	}
	cmd.Flags().StringVarP(&undoInput, "input", "i", orchestrator.DefaultCommitListPath, "Commit list file to process")
	cmd.Flags().StringVarP(&undoOutput, "output", "o", orchestrator.DefaultDeletionReportPath, "Output file for the deletion report")
	cmd.Flags().StringVar(&undoSkip, "skip-file", orchestrator.DefaultSkipListPath, "Output file for skipped commits")
	return cmd
}
