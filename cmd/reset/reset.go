// Package reset handles clearing the session dataset
package reset

import (
	"github.com/spf13/cobra"

	"avoronin/cashback-matrix/cmd/root"
	"avoronin/cashback-matrix/internal/models"
)

// Cmd represents the reset command
var Cmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the session dataset",
	Long:  `Remove all accumulated offers from the session. Bank configuration and the alias table are kept.`,
	Run:   resetFunc,
}

func resetFunc(cmd *cobra.Command, args []string) {
	if err := root.NewStore().SaveEntries([]models.RawEntry{}); err != nil {
		root.Log.Fatalf("Error clearing session: %v", err)
	}
	root.Log.Info("Session cleared")
}
