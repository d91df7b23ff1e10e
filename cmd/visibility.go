package cmd

import (
	"github.com/spf13/cobra"

	"github.com/repoclean/repoclean/internal/orchestrator"
)

func newVisibilityCmd() *cobra.Command {
	var (
		visAllPrivate  bool
		visAllPublic   bool
		visExport      bool
		visOutput      string
		visExpOut      string
		visAffiliation string
	)
	cmd := &cobra.Command{
		Use:   "visibility",
		Short: "Bulk-update or export repository visibility",
		Long: `Make every repository you own private or public, review them one by one,
or export the current visibility to a file. Without flags an interactive
menu is shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newContainer()
			if err != nil {
				return err
			}
			defer func() { _ = c.log.Sync() }()
			ghRepo, err := c.githubRepo()
			if err != nil {
				return err
			}
			affiliation := visAffiliation
			if affiliation == "" {
				affiliation = c.cfg.Affiliation
			}
			orch := orchestrator.NewVisibilityOrchestrator(ghRepo, c.store, c.prompter, c.printer, c.log)
			return orch.Execute(cmd.Context(), orchestrator.VisibilityConfig{
				Affiliation: affiliation,
				OutputPath:  visOutput,
				ExportPath:  visExpOut,
				AllPrivate:  visAllPrivate,
				AllPublic:   visAllPublic,
				ExportRun:   visExport,
			})
		},
	}
	cmd.Flags().BoolVar(&visAllPrivate, "all-private", false, "Make all repositories private")
	cmd.Flags().BoolVar(&visAllPublic, "all-public", false, "Make all repositories public")
	cmd.Flags().BoolVar(&visExport, "export", false, "Export current visibility without changing anything")
	cmd.Flags().StringVarP(&visOutput, "output", "o", orchestrator.DefaultVisibilityPath, "Output file for the update report")
	cmd.Flags().StringVar(&visExpOut, "export-file", orchestrator.DefaultVisExportPath, "Output file for exports")
	cmd.Flags().StringVar(&visAffiliation, "affiliation", "", "Repository affiliation: owner, collaborator or organization_member")
	cmd.MarkFlagsMutuallyExclusive("all-private", "all-public", "export")
	return cmd
}
