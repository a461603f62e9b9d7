package engine

import (
	"avoronin/cashback-matrix/internal/models"
)

// Dedupe collapses entries sharing a (bank, category key) into one, keeping
// the highest percentage. On an exact tie the first entry in input order
// survives, so repeated runs over the same input produce the same result.
// The display form always travels with the kept percentage.
func Dedupe(entries []models.NormalizedEntry) []models.NormalizedEntry {
	index := make(map[models.EntryKey]int, len(entries))
	deduped := make([]models.NormalizedEntry, 0, len(entries))

	for _, entry := range entries {
		key := entry.Key()
		at, seen := index[key]
		if !seen {
			index[key] = len(deduped)
			deduped = append(deduped, entry)
			continue
		}
		if entry.Percent.GreaterThan(deduped[at].Percent) {
			deduped[at] = entry
		}
	}

	return deduped
}
