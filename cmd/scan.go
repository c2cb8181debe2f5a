package cmd

import (
	"github.com/smellscan/smellscan/core"
	"github.com/smellscan/smellscan/internal/contract"
	"github.com/spf13/cobra"
)

// scanCmd performs per-file metrics analysis.
var scanCmd = &cobra.Command{
	Use:   "scan [root-path]",
	Short: "Show the files ranked by complexity and maintainability.",
	Long: `Read every source file under the root path and rank files by complexity.

Computes language-agnostic metrics from raw text, helping you:
- Identify the files that are hardest to follow (cyclomatic and cognitive complexity)
- Spot files that are expensive to change (Halstead volume, difficulty, effort)
- Find files drifting out of maintainable territory (maintainability index)
- Track comment coverage across the codebase

No parser and no Git history are needed; any language with braces,
keywords and comments is analyzed the same way.

Examples:
  # Rank the 20 most complex files
  smellscan scan --limit 20

  # Include the extended metric columns
  smellscan scan --detail

  # Restrict analysis to one subtree
  smellscan scan --filter src/server

  # Export findings to CSV for tracking
  smellscan scan --output csv --output-file complexity.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteScan(rootCtx, cfg, loader, store); err != nil {
			contract.LogFatal("Cannot run scan analysis", err)
		}
	},
}
