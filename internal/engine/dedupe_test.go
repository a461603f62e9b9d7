package engine_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"avoronin/cashback-matrix/internal/engine"
	"avoronin/cashback-matrix/internal/models"
)

func normalized(bank models.Bank, display string, percent int64) models.NormalizedEntry {
	return models.NormalizedEntry{
		Bank:            bank,
		CategoryKey:     lowerKey(display),
		CategoryDisplay: display,
		Percent:         decimal.NewFromInt(percent),
	}
}

func lowerKey(display string) string {
	entry := engine.Normalize(models.RawEntry{BankName: "x", Category: display}, nil)
	return entry.CategoryKey
}

func TestDedupe_KeepsMaxPercent(t *testing.T) {
	entries := []models.NormalizedEntry{
		normalized(models.BankSber, "Такси", 5),
		normalized(models.BankSber, "такси", 7),
		normalized(models.BankTBank, "Такси", 6),
	}

	deduped := engine.Dedupe(entries)
	require.Len(t, deduped, 2)

	byBank := map[models.Bank]models.NormalizedEntry{}
	for _, e := range deduped {
		byBank[e.Bank] = e
	}

	assert.True(t, byBank[models.BankSber].Percent.Equal(decimal.NewFromInt(7)))
	// Display travels with the kept percentage.
	assert.Equal(t, "такси", byBank[models.BankSber].CategoryDisplay)
	assert.True(t, byBank[models.BankTBank].Percent.Equal(decimal.NewFromInt(6)))
}

func TestDedupe_TieKeepsFirst(t *testing.T) {
	entries := []models.NormalizedEntry{
		normalized(models.BankAlfa, "Кафе", 5),
		normalized(models.BankAlfa, "КАФЕ", 5),
	}

	deduped := engine.Dedupe(entries)
	require.Len(t, deduped, 1)
	assert.Equal(t, "Кафе", deduped[0].CategoryDisplay)
}

func TestDedupe_DistinctBanksStaySeparate(t *testing.T) {
	entries := []models.NormalizedEntry{
		normalized(models.BankSber, "Кафе", 5),
		normalized(models.BankAlfa, "Кафе", 5),
	}

	assert.Len(t, engine.Dedupe(entries), 2)
}

func TestDedupe_MaxInvariant(t *testing.T) {
	// For every key the surviving percentage equals the max over the group.
	entries := []models.NormalizedEntry{
		normalized(models.BankVTB, "АЗС", 3),
		normalized(models.BankVTB, "АЗС", 10),
		normalized(models.BankVTB, "АЗС", 7),
		normalized(models.BankVTB, "Аптеки", 1),
	}

	deduped := engine.Dedupe(entries)
	require.Len(t, deduped, 2)
	for _, e := range deduped {
		if e.CategoryKey == "азс" {
			assert.True(t, e.Percent.Equal(decimal.NewFromInt(10)))
		}
	}
}

func TestDedupe_Empty(t *testing.T) {
	assert.Empty(t, engine.Dedupe(nil))
}
