package engine

import (
	"github.com/shopspring/decimal"

	"avoronin/cashback-matrix/internal/models"
)

// ResolveWinners flags the best pick(s) of a row: among selected cells, every
// cell tied at the maximum percentage. Rows with no selected cell get no
// winners. Only the Winner flag is touched; cell values stay as built.
func ResolveWinners(row *models.MatrixRow) {
	var max decimal.Decimal
	found := false
	for _, cell := range row.Cells {
		if !cell.Selected {
			continue
		}
		if !found || cell.Percent.GreaterThan(max) {
			max = cell.Percent
			found = true
		}
	}

	for i := range row.Cells {
		cell := &row.Cells[i]
		cell.Winner = found && cell.Selected && cell.Percent.Equal(max)
	}
}
