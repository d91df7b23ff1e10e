package cmd

import (
	"github.com/spf13/cobra"

	"github.com/repoclean/repoclean/internal/orchestrator"
)

func newFetchCmd() *cobra.Command {
	var fetchOutput string
	cmd := &cobra.Command{
		Use:   "fetch <date>",
		Short: "Fetch your commits for a given date",
		Long: `Fetch every commit you authored on a given date (YYYY-MM-DD), across all
repositories visible through the GitHub Search API, and save them to a
JSON file the undo command can consume.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newContainer()
			if err != nil {
				return err
			}
			defer func() { _ = c.log.Sync() }()
			ghRepo, err := c.githubRepo()
			if err != nil {
				return err
			}
			orch := orchestrator.NewFetchOrchestrator(ghRepo, c.store, c.printer, c.log)
			return orch.Execute(cmd.Context(), orchestrator.FetchConfig{
				Date:       args[0],
				OutputPath: fetchOutput,
			})
		},
	}
	cmd.Flags().StringVarP(&fetchOutput, "output", "o", orchestrator.DefaultCommitListPath, "Output file for the commit list")
	return cmd
}
