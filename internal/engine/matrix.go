package engine

import (
	"sort"

	"avoronin/cashback-matrix/internal/models"
)

// BuildMatrix composes the category-by-bank matrix. Rows cover every category
// offered by at least one enabled bank; a category known only from disabled
// banks does not appear at all. Columns follow the configuration order of
// enabled banks. Rows are sorted lexicographically by display category.
//
// When the same category key carries different display spellings across
// banks, the row takes the spelling of the highest-percentage cell, ties
// resolved by column order.
func BuildMatrix(deduped []models.NormalizedEntry, selected map[models.EntryKey]bool, banks []models.BankSetting) []models.MatrixRow {
	enabled := models.EnabledBanks(banks)

	columnOrder := make(map[models.Bank]int, len(enabled))
	for i, setting := range enabled {
		columnOrder[setting.Bank] = i
	}

	byKey := make(map[models.EntryKey]models.NormalizedEntry, len(deduped))
	displays := make(map[string]models.NormalizedEntry)
	for _, entry := range deduped {
		if _, ok := columnOrder[entry.Bank]; !ok {
			continue
		}
		byKey[entry.Key()] = entry

		best, seen := displays[entry.CategoryKey]
		if !seen ||
			entry.Percent.GreaterThan(best.Percent) ||
			(entry.Percent.Equal(best.Percent) && columnOrder[entry.Bank] < columnOrder[best.Bank]) {
			displays[entry.CategoryKey] = entry
		}
	}

	type keyedRow struct {
		key string
		row models.MatrixRow
	}

	keyed := make([]keyedRow, 0, len(displays))
	for categoryKey, display := range displays {
		row := models.MatrixRow{
			Category: display.CategoryDisplay,
			Cells:    make([]models.Cell, 0, len(enabled)),
		}
		for _, setting := range enabled {
			cell := models.Cell{Bank: setting.Bank}
			key := models.EntryKey{Bank: setting.Bank, CategoryKey: categoryKey}
			if entry, ok := byKey[key]; ok {
				cell.Present = true
				cell.Percent = entry.Percent
				cell.Selected = selected[key]
			}
			row.Cells = append(row.Cells, cell)
		}
		ResolveWinners(&row)
		keyed = append(keyed, keyedRow{key: categoryKey, row: row})
	}

	// Secondary sort on the category key keeps the order total even when two
	// distinct keys share a display spelling.
	sort.Slice(keyed, func(i, j int) bool {
		if keyed[i].row.Category != keyed[j].row.Category {
			return keyed[i].row.Category < keyed[j].row.Category
		}
		return keyed[i].key < keyed[j].key
	})

	rows := make([]models.MatrixRow, 0, len(keyed))
	for _, kr := range keyed {
		rows = append(rows, kr.row)
	}
	return rows
}
