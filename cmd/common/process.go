// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"os"

	"avoronin/cashback-matrix/internal/engine"
	"avoronin/cashback-matrix/internal/fileutils"
	"avoronin/cashback-matrix/internal/logging"
	"avoronin/cashback-matrix/internal/store"
)

// Recompute loads the current snapshot from the session store and runs the
// full reconciliation pipeline over it.
func Recompute(s *store.SessionStore, log logging.Logger) (engine.Result, engine.Snapshot, error) {
	entries, err := s.LoadEntries()
	if err != nil {
		return engine.Result{}, engine.Snapshot{}, fmt.Errorf("error loading session: %w", err)
	}

	banks, err := s.LoadBanks()
	if err != nil {
		return engine.Result{}, engine.Snapshot{}, fmt.Errorf("error loading bank configuration: %w", err)
	}

	table, err := s.LoadAliases()
	if err != nil {
		return engine.Result{}, engine.Snapshot{}, fmt.Errorf("error loading alias table: %w", err)
	}

	snapshot := engine.Snapshot{Entries: entries, Banks: banks}
	result := engine.Recompute(snapshot, table)

	log.WithFields(
		logging.Field{Key: "entries", Value: len(entries)},
		logging.Field{Key: "deduped", Value: len(result.Deduped)},
		logging.Field{Key: "rows", Value: len(result.Rows)},
	).Debug("Recomputed matrix")

	return result, snapshot, nil
}

// Emit writes rendered text to the output file, or to stdout when no output
// file was requested.
func Emit(text, outputFile string, log logging.Logger) error {
	if outputFile == "" {
		fmt.Fprint(os.Stdout, text)
		return nil
	}

	if err := fileutils.WriteFile(outputFile, []byte(text)); err != nil {
		return err
	}
	log.WithField(logging.FieldFile, outputFile).Info("Wrote output file")
	return nil
}
