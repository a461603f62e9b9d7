// Package cheatsheet handles the cheat sheet rendering command
package cheatsheet

import (
	"time"

	"github.com/spf13/cobra"

	"avoronin/cashback-matrix/cmd/common"
	"avoronin/cashback-matrix/cmd/root"
	"avoronin/cashback-matrix/internal/export"
	"avoronin/cashback-matrix/internal/logging"
)

// Cmd represents the cheatsheet command
var Cmd = &cobra.Command{
	Use:   "cheatsheet",
	Short: "Render the per-category winner list",
	Long: `Recompute the reconciliation matrix from the current session and render a
human-readable cheat sheet: for every category, the bank(s) to pick and their
cashback percentage.`,
	Run: cheatsheetFunc,
}

func cheatsheetFunc(cmd *cobra.Command, args []string) {
	log := logging.NewLogrusAdapterFromLogger(root.Log)

	result, _, err := common.Recompute(root.NewStore(), log)
	if err != nil {
		root.Log.Fatalf("Error recomputing matrix: %v", err)
	}

	opts := export.CheatSheetOptions{}
	if root.Cfg != nil {
		opts.DateFormat = root.Cfg.Export.DateFormat
		opts.OrConnector = root.Cfg.Export.OrConnector
	}

	text := export.CheatSheet(result.Rows, time.Now(), opts)
	if err := common.Emit(text, root.Files.Output, log); err != nil {
		root.Log.Fatalf("Error writing cheat sheet: %v", err)
	}
}
