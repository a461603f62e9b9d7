// Package textutils provides offline extraction of cashback offer lines from
// free text, for sessions built without a recognition model.
package textutils

import (
	"regexp"
	"strings"

	"avoronin/cashback-matrix/internal/models"
)

// Offer line shapes seen in practice: "Такси — 7%", "Кафе: 5%", "АЗС 10%",
// "7% на такси". The first matching pattern wins.
var offerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(.+?)\s*[—–:-]\s*(\d+(?:[.,]\d+)?)\s*%`),
	regexp.MustCompile(`^(\d+(?:[.,]\d+)?)\s*%\s*(?:на|за)?\s*(.+)$`),
	regexp.MustCompile(`^(.+?)\s+(\d+(?:[.,]\d+)?)\s*%$`),
}

// percentFirst marks patterns whose first capture group is the percentage
// rather than the category.
var percentFirst = map[int]bool{1: true}

// ExtractOffers parses offer lines out of a free-text comment without calling
// a model. Every offer is attributed to the given bank name; lines that do not
// look like an offer are skipped.
func ExtractOffers(text, bankName string) []models.RawEntry {
	var entries []models.RawEntry

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "-•*· \t"))
		if line == "" {
			continue
		}

		for i, pattern := range offerPatterns {
			matches := pattern.FindStringSubmatch(line)
			if matches == nil {
				continue
			}

			category, percent := matches[1], matches[2]
			if percentFirst[i] {
				category, percent = matches[2], matches[1]
			}

			entries = append(entries, models.RawEntry{
				BankName:     bankName,
				Category:     strings.TrimSpace(category),
				Percent:      models.ParsePercent(percent),
				OriginalText: line,
			})
			break
		}
	}

	return entries
}
