package engine_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"avoronin/cashback-matrix/internal/engine"
	"avoronin/cashback-matrix/internal/models"
)

func TestBuildMatrix_ColumnsFollowConfigOrder(t *testing.T) {
	deduped := []models.NormalizedEntry{
		normalized(models.BankTBank, "Такси", 6),
		normalized(models.BankSber, "Такси", 7),
	}
	banks := []models.BankSetting{
		enabledBank(models.BankTBank, 5),
		enabledBank(models.BankSber, 5),
		{Bank: models.BankVTB, Enabled: false, Limit: 5},
	}
	selected := engine.Select(deduped, banks)

	rows := engine.BuildMatrix(deduped, selected, banks)
	require.Len(t, rows, 1)
	require.Len(t, rows[0].Cells, 2)
	assert.Equal(t, models.BankTBank, rows[0].Cells[0].Bank)
	assert.Equal(t, models.BankSber, rows[0].Cells[1].Bank)
}

func TestBuildMatrix_AbsentCells(t *testing.T) {
	deduped := []models.NormalizedEntry{
		normalized(models.BankSber, "Такси", 7),
		normalized(models.BankTBank, "Кафе", 5),
	}
	banks := []models.BankSetting{
		enabledBank(models.BankSber, 5),
		enabledBank(models.BankTBank, 5),
	}
	selected := engine.Select(deduped, banks)

	rows := engine.BuildMatrix(deduped, selected, banks)
	require.Len(t, rows, 2)

	// Rows sort lexicographically: "Кафе" < "Такси".
	assert.Equal(t, "Кафе", rows[0].Category)
	assert.False(t, rows[0].Cells[0].Present) // Sber has no Кафе offer
	assert.True(t, rows[0].Cells[1].Present)

	assert.Equal(t, "Такси", rows[1].Category)
	assert.True(t, rows[1].Cells[0].Present)
	assert.False(t, rows[1].Cells[1].Present)
}

func TestBuildMatrix_DisabledBankCategoriesExcluded(t *testing.T) {
	deduped := []models.NormalizedEntry{
		normalized(models.BankSber, "Такси", 7),
		normalized(models.BankVTB, "АЗС", 10),
	}
	banks := []models.BankSetting{
		enabledBank(models.BankSber, 5),
		{Bank: models.BankVTB, Enabled: false, Limit: 5},
	}
	selected := engine.Select(deduped, banks)

	rows := engine.BuildMatrix(deduped, selected, banks)
	require.Len(t, rows, 1)
	assert.Equal(t, "Такси", rows[0].Category)
	require.Len(t, rows[0].Cells, 1)
}

func TestBuildMatrix_SharedCategoryKeyMergesIntoOneRow(t *testing.T) {
	// Sber spells the category "такси", T-Bank "Такси". Same key, one row;
	// the display follows the highest-percentage cell.
	deduped := []models.NormalizedEntry{
		normalized(models.BankSber, "такси", 7),
		normalized(models.BankTBank, "Такси", 6),
	}
	banks := []models.BankSetting{
		enabledBank(models.BankSber, 5),
		enabledBank(models.BankTBank, 5),
	}
	selected := engine.Select(deduped, banks)

	rows := engine.BuildMatrix(deduped, selected, banks)
	require.Len(t, rows, 1)
	assert.Equal(t, "такси", rows[0].Category)

	sber, ok := rows[0].Cell(models.BankSber)
	require.True(t, ok)
	assert.True(t, sber.Winner)
	tbank, ok := rows[0].Cell(models.BankTBank)
	require.True(t, ok)
	assert.False(t, tbank.Winner)
}

func TestResolveWinners(t *testing.T) {
	pct := func(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

	tests := []struct {
		name    string
		row     models.MatrixRow
		winners []models.Bank
	}{
		{
			name: "single winner",
			row: models.MatrixRow{Cells: []models.Cell{
				{Bank: models.BankSber, Present: true, Percent: pct(7), Selected: true},
				{Bank: models.BankTBank, Present: true, Percent: pct(6), Selected: true},
			}},
			winners: []models.Bank{models.BankSber},
		},
		{
			name: "tie flags all banks at the max",
			row: models.MatrixRow{Cells: []models.Cell{
				{Bank: models.BankSber, Present: true, Percent: pct(5), Selected: true},
				{Bank: models.BankAlfa, Present: true, Percent: pct(5), Selected: true},
			}},
			winners: []models.Bank{models.BankSber, models.BankAlfa},
		},
		{
			name: "unselected cells never win even at a higher percent",
			row: models.MatrixRow{Cells: []models.Cell{
				{Bank: models.BankSber, Present: true, Percent: pct(20), Selected: false},
				{Bank: models.BankTBank, Present: true, Percent: pct(6), Selected: true},
			}},
			winners: []models.Bank{models.BankTBank},
		},
		{
			name: "no selected cells means no winners",
			row: models.MatrixRow{Cells: []models.Cell{
				{Bank: models.BankSber, Present: true, Percent: pct(7)},
			}},
			winners: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine.ResolveWinners(&tt.row)
			assert.Equal(t, tt.winners, tt.row.Winners())
		})
	}
}
