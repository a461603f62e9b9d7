// Package matrix handles the matrix rendering command
package matrix

import (
	"github.com/spf13/cobra"

	"avoronin/cashback-matrix/cmd/common"
	"avoronin/cashback-matrix/cmd/root"
	"avoronin/cashback-matrix/internal/export"
	"avoronin/cashback-matrix/internal/logging"
)

// Cmd represents the matrix command
var Cmd = &cobra.Command{
	Use:   "matrix",
	Short: "Render the category-by-bank matrix as a tab-separated table",
	Long: `Recompute the reconciliation matrix from the current session and render it
as a tab-separated table suitable for pasting into a spreadsheet.`,
	Run: matrixFunc,
}

func matrixFunc(cmd *cobra.Command, args []string) {
	log := logging.NewLogrusAdapterFromLogger(root.Log)

	result, snapshot, err := common.Recompute(root.NewStore(), log)
	if err != nil {
		root.Log.Fatalf("Error recomputing matrix: %v", err)
	}

	text := export.Tabular(result.Rows, snapshot.Banks)
	if err := common.Emit(text, root.Files.Output, log); err != nil {
		root.Log.Fatalf("Error writing matrix: %v", err)
	}
}
