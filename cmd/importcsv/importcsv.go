// Package importcsv handles CSV import of raw offers
package importcsv

import (
	"github.com/spf13/cobra"

	"avoronin/cashback-matrix/cmd/root"
	"avoronin/cashback-matrix/internal/common"
)

var inputFile string

// Cmd represents the import command
var Cmd = &cobra.Command{
	Use:   "import",
	Short: "Import offers from a CSV file into the session",
	Long: `Append raw offers from a CSV file with bank, category and percent columns.
This is the manual path for data that never went through the recognition
model.`,
	Run: importFunc,
}

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "CSV file to import")
	if err := Cmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}
}

func importFunc(cmd *cobra.Command, args []string) {
	entries, err := common.ReadEntriesFromCSV(inputFile)
	if err != nil {
		root.Log.Fatalf("Error reading CSV file: %v", err)
	}
	if len(entries) == 0 {
		root.Log.Info("No entries in CSV file, session unchanged")
		return
	}

	if err := root.NewStore().AppendEntries(entries); err != nil {
		root.Log.Fatalf("Error saving session: %v", err)
	}
	root.Log.Infof("Imported %d offers into the session", len(entries))
}
