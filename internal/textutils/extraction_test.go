package textutils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"avoronin/cashback-matrix/internal/models"
	"avoronin/cashback-matrix/internal/textutils"
)

func TestExtractOffers(t *testing.T) {
	text := "Такси — 7%\n" +
		"Кафе: 5%\n" +
		"- АЗС 10%\n" +
		"7% на супермаркеты\n" +
		"ничего про кешбэк\n" +
		"\n"

	entries := textutils.ExtractOffers(text, "Сбер")
	require.Len(t, entries, 4)

	assert.Equal(t, "Такси", entries[0].Category)
	assert.Equal(t, "7", entries[0].Percent.String())
	assert.Equal(t, "Сбер", entries[0].BankName)
	assert.Equal(t, "Такси — 7%", entries[0].OriginalText)

	assert.Equal(t, "Кафе", entries[1].Category)
	assert.Equal(t, "АЗС", entries[2].Category)
	assert.Equal(t, "супермаркеты", entries[3].Category)
}

func TestExtractOffers_FractionalAndCommaPercents(t *testing.T) {
	entries := textutils.ExtractOffers("Кафе и рестораны: 7,5%\nКино — 2.5%", "Альфа")
	require.Len(t, entries, 2)
	assert.Equal(t, "Кафе и рестораны", entries[0].Category)
	assert.Equal(t, "7.5", entries[0].Percent.String())
	assert.Equal(t, "2.5", entries[1].Percent.String())
}

func TestExtractOffers_NoOffers(t *testing.T) {
	assert.Empty(t, textutils.ExtractOffers("привет, как дела?", "Сбер"))
	assert.Empty(t, textutils.ExtractOffers("", "Сбер"))
}

func TestExtractOffers_EntriesFeedTheUsualParsing(t *testing.T) {
	entries := textutils.ExtractOffers("Такси — 7%", "Сбербанк")
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Percent.Equal(models.ParsePercent("7")))
}
