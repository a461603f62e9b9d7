// Package models provides the data structures used throughout the application.
package models

import (
	"github.com/shopspring/decimal"
)

// Bank is a canonical bank tag. Everything past the normalizer works with this
// closed set rather than free-text bank names.
type Bank string

const (
	BankSber   Bank = "Sber"
	BankTBank  Bank = "T-Bank"
	BankAlfa   Bank = "Alfa"
	BankVTB    Bank = "VTB"
	BankYandex Bank = "Yandex"
	BankOther  Bank = "Other"
)

// AllBanks lists the canonical banks in their default configuration order.
func AllBanks() []Bank {
	return []Bank{BankSber, BankTBank, BankAlfa, BankVTB, BankYandex, BankOther}
}

// RawEntry is a single cashback offer as produced by an extraction call.
// Bank name and category are free text in whatever casing and language the
// recognition step emitted; nothing here is trusted or normalized.
type RawEntry struct {
	ID           string          `json:"id" csv:"-"`
	BankName     string          `json:"bank" csv:"bank"`
	Category     string          `json:"category" csv:"category"`
	Percent      decimal.Decimal `json:"percent" csv:"percent"`
	OriginalText string          `json:"original_text,omitempty" csv:"-"`
}

// BankSetting is the per-bank configuration. The order of settings in the
// configuration slice defines the column order of the matrix.
type BankSetting struct {
	Bank    Bank   `yaml:"bank"`
	Enabled bool   `yaml:"enabled"`
	Limit   int    `yaml:"limit"`
	Color   string `yaml:"color,omitempty"`
}

// DefaultBankSettings returns the configuration used when no banks.yaml exists:
// every canonical bank enabled with a limit of 5, except Other which is disabled.
func DefaultBankSettings() []BankSetting {
	settings := make([]BankSetting, 0, len(AllBanks()))
	for _, bank := range AllBanks() {
		settings = append(settings, BankSetting{
			Bank:    bank,
			Enabled: bank != BankOther,
			Limit:   5,
		})
	}
	return settings
}

// EnabledBanks returns the banks that are enabled, in configuration order.
func EnabledBanks(settings []BankSetting) []BankSetting {
	enabled := make([]BankSetting, 0, len(settings))
	for _, s := range settings {
		if s.Enabled {
			enabled = append(enabled, s)
		}
	}
	return enabled
}

// EntryKey identifies one deduplicated offer: a (bank, category key) pair.
type EntryKey struct {
	Bank        Bank
	CategoryKey string
}

// NormalizedEntry is a RawEntry after bank canonicalization and category
// normalization. CategoryKey is used for grouping only; CategoryDisplay keeps
// the original casing for rendering.
type NormalizedEntry struct {
	Bank            Bank
	CategoryKey     string
	CategoryDisplay string
	Percent         decimal.Decimal
}

// Key returns the grouping key of the entry.
func (e NormalizedEntry) Key() EntryKey {
	return EntryKey{Bank: e.Bank, CategoryKey: e.CategoryKey}
}

// Cell is one (category, bank) position of the matrix. Present is false when
// the bank has no offer for the category; Percent, Selected and Winner are
// only meaningful when Present is true.
type Cell struct {
	Bank     Bank
	Present  bool
	Percent  decimal.Decimal
	Selected bool
	Winner   bool
}

// MatrixRow is one category row of the reconciliation matrix. Cells are
// aligned with the enabled banks in configuration order.
type MatrixRow struct {
	Category string
	Cells    []Cell
}

// Winners returns the banks flagged as the best pick for this row, in column
// order. Empty when no cell of the row is selected.
func (r MatrixRow) Winners() []Bank {
	var winners []Bank
	for _, cell := range r.Cells {
		if cell.Winner {
			winners = append(winners, cell.Bank)
		}
	}
	return winners
}

// Cell returns the row's cell for the given bank, or false when the matrix has
// no column for it.
func (r MatrixRow) Cell(bank Bank) (Cell, bool) {
	for _, cell := range r.Cells {
		if cell.Bank == bank {
			return cell, true
		}
	}
	return Cell{}, false
}
