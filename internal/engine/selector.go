package engine

import (
	"sort"

	"avoronin/cashback-matrix/internal/models"
)

// Select marks, per enabled bank, the top-N deduplicated entries by
// percentage, where N is the bank's configured limit. Ties keep their
// relative input order (stable sort), so the selection is deterministic for
// a given input order. Disabled banks contribute nothing; a limit of zero
// selects nothing.
func Select(deduped []models.NormalizedEntry, banks []models.BankSetting) map[models.EntryKey]bool {
	limits := make(map[models.Bank]int, len(banks))
	for _, setting := range banks {
		if setting.Enabled {
			limits[setting.Bank] = setting.Limit
		}
	}

	partitions := make(map[models.Bank][]models.NormalizedEntry)
	for _, entry := range deduped {
		if _, enabled := limits[entry.Bank]; enabled {
			partitions[entry.Bank] = append(partitions[entry.Bank], entry)
		}
	}

	selected := make(map[models.EntryKey]bool)
	for bank, entries := range partitions {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Percent.GreaterThan(entries[j].Percent)
		})

		limit := limits[bank]
		if limit < 0 {
			limit = 0
		}
		if limit > len(entries) {
			limit = len(entries)
		}
		for _, entry := range entries[:limit] {
			selected[entry.Key()] = true
		}
	}

	return selected
}
