// Package correct handles the dataset correction command
package correct

import (
	"context"

	"github.com/spf13/cobra"

	"avoronin/cashback-matrix/cmd/root"
)

var instruction string

// Cmd represents the correct command
var Cmd = &cobra.Command{
	Use:   "correct",
	Short: "Rewrite the session dataset from a natural-language instruction",
	Long: `Send the current dataset and a correction instruction to the model and
replace the session with the rewritten dataset. When the call fails or the
reply is unparsable, the session stays untouched.`,
	Run: correctFunc,
}

func init() {
	Cmd.Flags().StringVarP(&instruction, "instruction", "n", "", "Correction instruction, e.g. \"remove all VTB offers below 3%\"")
	if err := Cmd.MarkFlagRequired("instruction"); err != nil {
		panic(err)
	}
}

func correctFunc(cmd *cobra.Command, args []string) {
	s := root.NewStore()

	entries, err := s.LoadEntries()
	if err != nil {
		root.Log.Fatalf("Error loading session: %v", err)
	}
	if len(entries) == 0 {
		root.Log.Info("Session is empty, nothing to correct")
		return
	}

	client, err := root.NewOracleClient()
	if err != nil {
		root.Log.Fatalf("Error creating rewrite client: %v", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			root.Log.Warnf("Failed to close client: %v", err)
		}
	}()

	rewritten, err := client.Rewrite(context.Background(), entries, instruction)
	if err != nil {
		root.Log.Fatalf("Correction failed, session unchanged: %v", err)
	}

	if err := s.SaveEntries(rewritten); err != nil {
		root.Log.Fatalf("Error saving session: %v", err)
	}
	root.Log.Infof("Session rewritten: %d offers before, %d after", len(entries), len(rewritten))
}
