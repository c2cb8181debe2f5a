package cmd

import (
	"github.com/smellscan/smellscan/core"
	"github.com/smellscan/smellscan/internal/contract"
	"github.com/spf13/cobra"
)

// smellsCmd reports duplication and structural smells.
var smellsCmd = &cobra.Command{
	Use:   "smells [root-path]",
	Short: "Show duplicated blocks, copied functions and similar files.",
	Long: `Detect copy-paste and structural smells across the source tree.

Findings include:
- Exact duplicate blocks found with a sliding window over normalized lines
- Functions with the same name whose bodies match across files
- Whole files that are near-duplicates or closely related
- Functions that are too long or take too many parameters

Duplicate detection works on normalized text, so comments, blank lines
and variable renames do not hide a copy.

Examples:
  # Report all smells under the current directory
  smellscan smells

  # Use a larger window so only bigger blocks count as duplicates
  smellscan smells --window 10

  # Export findings for review tooling
  smellscan smells --output json --output-file smells.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSmells(rootCtx, cfg, loader, store); err != nil {
			contract.LogFatal("Cannot run smells analysis", err)
		}
	},
}
