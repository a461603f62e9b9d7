package oracle_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"avoronin/cashback-matrix/internal/oracle"
)

func TestParseEntries(t *testing.T) {
	reply := `[
		{"bank": "Сбер", "category": "Такси", "percent": 7},
		{"bank": "Т-Банк", "category": "Кафе", "percent": "5%"}
	]`

	entries, err := oracle.ParseEntries(reply)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "Сбер", entries[0].BankName)
	assert.Equal(t, "Такси", entries[0].Category)
	assert.True(t, entries[0].Percent.Equal(decimal.NewFromInt(7)))

	// String percents with a % suffix parse the same as numbers.
	assert.True(t, entries[1].Percent.Equal(decimal.NewFromInt(5)))
}

func TestParseEntries_MarkdownFences(t *testing.T) {
	reply := "Вот извлечённые предложения:\n```json\n" +
		`[{"bank": "Альфа", "category": "АЗС", "percent": "10"}]` +
		"\n```\nГотово."

	entries, err := oracle.ParseEntries(reply)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Альфа", entries[0].BankName)
	assert.True(t, entries[0].Percent.Equal(decimal.NewFromInt(10)))
}

func TestParseEntries_FieldAliases(t *testing.T) {
	reply := `[{"bankName": "ВТБ", "category": "Супермаркеты", "percentage": "3,5"}]`

	entries, err := oracle.ParseEntries(reply)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ВТБ", entries[0].BankName)
	assert.Equal(t, "3.5", entries[0].Percent.String())
}

func TestParseEntries_WhitespaceTrimmed(t *testing.T) {
	reply := `[{"bank": "  Яндекс ", "category": " Еда ", "percent": 8}]`

	entries, err := oracle.ParseEntries(reply)
	require.NoError(t, err)
	assert.Equal(t, "Яндекс", entries[0].BankName)
	assert.Equal(t, "Еда", entries[0].Category)
}

func TestParseEntries_Errors(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"no array at all", "не могу распознать изображение"},
		{"empty reply", ""},
		{"malformed array", `[{"bank": "Сбер", }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := oracle.ParseEntries(tt.reply)
			assert.Error(t, err)
		})
	}
}

func TestParseEntries_EmptyArray(t *testing.T) {
	entries, err := oracle.ParseEntries("[]")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestParseEntries_GarbagePercentBecomesZero(t *testing.T) {
	reply := `[{"bank": "Сбер", "category": "Кафе", "percent": "семь"}]`

	entries, err := oracle.ParseEntries(reply)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Percent.IsZero())
}
