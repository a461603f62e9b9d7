package engine

import (
	"strings"

	"github.com/shopspring/decimal"

	"avoronin/cashback-matrix/internal/models"
)

// fallbackCategory labels entries whose category text is empty after
// trimming. Extraction output is untrusted, so empty is tolerated, not
// rejected.
const fallbackCategory = "Без категории"

// Normalize canonicalizes a raw entry: the bank name goes through the alias
// table, the category is trimmed and lower-cased into a grouping key while
// keeping the trimmed original as the display form. Normalizing twice changes
// nothing.
func Normalize(raw models.RawEntry, table AliasTable) models.NormalizedEntry {
	display := strings.TrimSpace(raw.Category)
	if display == "" {
		display = fallbackCategory
	}

	percent := raw.Percent
	if percent.IsNegative() {
		percent = decimal.Zero
	}

	return models.NormalizedEntry{
		Bank:            table.Canonicalize(raw.BankName),
		CategoryKey:     strings.ToLower(display),
		CategoryDisplay: display,
		Percent:         percent,
	}
}

// NormalizeAll normalizes a batch of raw entries, preserving input order.
func NormalizeAll(raw []models.RawEntry, table AliasTable) []models.NormalizedEntry {
	normalized := make([]models.NormalizedEntry, 0, len(raw))
	for _, entry := range raw {
		normalized = append(normalized, Normalize(entry, table))
	}
	return normalized
}
