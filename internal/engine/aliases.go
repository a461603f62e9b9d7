// Package engine implements the cashback matrix reconciliation pipeline:
// normalize, dedupe, select, build matrix, resolve winners. The whole package
// is a pure function of its input snapshot and holds no state between runs.
package engine

import (
	"strings"

	"avoronin/cashback-matrix/internal/models"
)

// AliasRule maps a substring pattern to a canonical bank. Rules are evaluated
// in order; the first match wins.
type AliasRule struct {
	Pattern string      `yaml:"pattern"`
	Bank    models.Bank `yaml:"bank"`
}

// AliasTable is the ordered bank canonicalization table. It is data, not
// logic: new banks and spellings are added as rows, never as code.
type AliasTable []AliasRule

// DefaultAliasTable covers the usual spellings and transliterations seen in
// extraction output. Matching is case-insensitive, so only one casing per
// alias is listed.
func DefaultAliasTable() AliasTable {
	return AliasTable{
		{Pattern: "сбер", Bank: models.BankSber},
		{Pattern: "sber", Bank: models.BankSber},
		{Pattern: "тинькофф", Bank: models.BankTBank},
		{Pattern: "tinkoff", Bank: models.BankTBank},
		{Pattern: "т-банк", Bank: models.BankTBank},
		{Pattern: "тбанк", Bank: models.BankTBank},
		{Pattern: "t-bank", Bank: models.BankTBank},
		{Pattern: "tbank", Bank: models.BankTBank},
		{Pattern: "альфа", Bank: models.BankAlfa},
		{Pattern: "alfa", Bank: models.BankAlfa},
		{Pattern: "alpha", Bank: models.BankAlfa},
		{Pattern: "втб", Bank: models.BankVTB},
		{Pattern: "vtb", Bank: models.BankVTB},
		{Pattern: "яндекс", Bank: models.BankYandex},
		{Pattern: "yandex", Bank: models.BankYandex},
		{Pattern: "ya pay", Bank: models.BankYandex},
	}
}

// Canonicalize maps a free-text bank name onto the canonical enumeration.
// Unknown names map to Other rather than failing.
func (t AliasTable) Canonicalize(bankName string) models.Bank {
	name := strings.ToLower(strings.TrimSpace(bankName))
	for _, rule := range t {
		if strings.Contains(name, strings.ToLower(rule.Pattern)) {
			return rule.Bank
		}
	}
	return models.BankOther
}
