package cmd

import (
	"github.com/smellscan/smellscan/core"
	"github.com/smellscan/smellscan/internal/contract"
	"github.com/spf13/cobra"
)

// reportCmd renders the full project quality report.
var reportCmd = &cobra.Command{
	Use:   "report [root-path]",
	Short: "Show the full project quality report with suggestions.",
	Long: `Run the complete analysis and render a project-wide quality report.

The report combines:
- Complexity distribution across all analyzed files
- The most complex files ranked by cyclomatic complexity
- Duplication and structural smell findings
- Actionable suggestions grouped by category
- Warnings for files that were skipped or failed extraction

Use markdown output to drop the report straight into a PR comment
or a wiki page.

Examples:
  # Print the report for the current directory
  smellscan report

  # Generate a markdown report for CI
  smellscan report --output markdown --output-file quality.md`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteReport(rootCtx, cfg, loader, store); err != nil {
			contract.LogFatal("Cannot run report analysis", err)
		}
	},
}
