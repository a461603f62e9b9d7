// Package export renders a finished matrix as text: a tab-separated table for
// spreadsheet pasting and a human-readable cheat sheet. Both renderings are
// pure functions of the matrix; neither re-derives selections or winners.
package export

import (
	"strings"

	"avoronin/cashback-matrix/internal/models"
)

// Tabular renders the matrix as a tab-separated table. The header names the
// enabled banks in column order; each cell is "N%" or empty when the bank has
// no offer for the category. Selection and winner flags are intentionally not
// encoded here; this is a raw data dump.
func Tabular(rows []models.MatrixRow, banks []models.BankSetting) string {
	var b strings.Builder

	b.WriteString("Category")
	for _, setting := range models.EnabledBanks(banks) {
		b.WriteByte('\t')
		b.WriteString(string(setting.Bank))
	}
	b.WriteByte('\n')

	for _, row := range rows {
		b.WriteString(row.Category)
		for _, cell := range row.Cells {
			b.WriteByte('\t')
			if cell.Present {
				b.WriteString(models.FormatPercent(cell.Percent))
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
