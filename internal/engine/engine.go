package engine

import (
	"avoronin/cashback-matrix/internal/models"
)

// Snapshot is the complete input of one recomputation: the raw entries
// accumulated so far and the bank configuration. The engine never mutates a
// snapshot.
type Snapshot struct {
	Entries []models.RawEntry
	Banks   []models.BankSetting
}

// Result is everything one recomputation produces.
type Result struct {
	// Deduped holds one normalized entry per (bank, category) pair.
	Deduped []models.NormalizedEntry
	// Selected marks the entries that made each bank's top-N cut.
	Selected map[models.EntryKey]bool
	// Rows is the finished matrix with winners resolved, ready for rendering.
	Rows []models.MatrixRow
}

// Recompute runs the full pipeline on a snapshot. It is safe to call on every
// change to entries or configuration; identical snapshots produce identical
// results.
func Recompute(snapshot Snapshot, table AliasTable) Result {
	if table == nil {
		table = DefaultAliasTable()
	}

	normalized := NormalizeAll(snapshot.Entries, table)
	deduped := Dedupe(normalized)
	selected := Select(deduped, snapshot.Banks)
	rows := BuildMatrix(deduped, selected, snapshot.Banks)

	return Result{
		Deduped:  deduped,
		Selected: selected,
		Rows:     rows,
	}
}
