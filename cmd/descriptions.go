package cmd

import (
	"github.com/spf13/cobra"

	"github.com/repoclean/repoclean/internal/orchestrator"
)

func newDescriptionsCmd() *cobra.Command {
	var (
		descClear       bool
		descSet         string
		descExport      bool
		descOutput      string
		descExpOut      string
		descAffiliation string
	)
	cmd := &cobra.Command{
		Use:   "descriptions",
		Short: "Bulk-update or export repository descriptions",
		Long: `Clear or set the description of every repository you own, or export the
current descriptions to a file. Without flags an interactive menu is shown.`,
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
			affiliation := descAffiliation
			if affiliation == "" {
				affiliation = c.cfg.Affiliation
			}
			orch := orchestrator.NewDescriptionsOrchestrator(ghRepo, c.store, c.prompter, c.printer, c.log)
			return orch.Execute(cmd.Context(), orchestrator.DescriptionsConfig{
				Affiliation: affiliation,
				OutputPath:  descOutput,
				ExportPath:  descExpOut,
				Clear:       descClear,
				Set:         descSet,
				ExportRun:   descExport,
			})
		},
	}
	cmd.Flags().BoolVar(&descClear, "clear", false, "Clear descriptions on all repositories")
	cmd.Flags().StringVar(&descSet, "set", "", "Set this description on all repositories")
	cmd.Flags().BoolVar(&descExport, "export", false, "Export current descriptions without changing anything")
	cmd.Flags().StringVarP(&descOutput, "output", "o", orchestrator.DefaultDescriptionsPath, "Output file for the update report")
	cmd.Flags().StringVar(&descExpOut, "export-file", orchestrator.DefaultDescExportPath, "Output file for exports")
	cmd.Flags().StringVar(&descAffiliation, "affiliation", "", "Repository affiliation: owner, collaborator or organization_member")
	cmd.MarkFlagsMutuallyExclusive("clear", "set", "export")
	return cmd
}
