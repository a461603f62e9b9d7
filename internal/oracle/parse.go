package oracle

import (
	"encoding/json"
	"fmt"
	"strings"

	"avoronin/cashback-matrix/internal/models"
)

// wireEntry mirrors the JSON array element the model is asked to produce.
// Field aliases and loose percent typing absorb the usual model drift.
type wireEntry struct {
	Bank       string          `json:"bank"`
	BankName   string          `json:"bankName"`
	Category   string          `json:"category"`
	Percent    json.RawMessage `json:"percent"`
	Percentage json.RawMessage `json:"percentage"`
}

// ParseEntries parses a model reply into raw entries. The reply may wrap the
// JSON array in markdown code fences or surrounding prose; anything without a
// parsable array is an error, and the caller then treats the whole call as
// contributing zero entries.
func ParseEntries(reply string) ([]models.RawEntry, error) {
	payload := extractJSONArray(reply)
	if payload == "" {
		return nil, fmt.Errorf("no JSON array found in model reply")
	}

	var wire []wireEntry
	if err := json.Unmarshal([]byte(payload), &wire); err != nil {
		return nil, fmt.Errorf("error parsing model reply: %w", err)
	}

	entries := make([]models.RawEntry, 0, len(wire))
	for _, w := range wire {
		bank := w.Bank
		if bank == "" {
			bank = w.BankName
		}
		percent := w.Percent
		if percent == nil {
			percent = w.Percentage
		}
		entries = append(entries, models.RawEntry{
			BankName: strings.TrimSpace(bank),
			Category: strings.TrimSpace(w.Category),
			Percent:  models.ParsePercent(rawToString(percent)),
		})
	}

	return entries, nil
}

// extractJSONArray cuts the first top-level JSON array out of the reply,
// tolerating ``` fences and prose around it.
func extractJSONArray(reply string) string {
	start := strings.Index(reply, "[")
	end := strings.LastIndex(reply, "]")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return reply[start : end+1]
}

// rawToString renders a raw JSON value ("7", "\"7%\"", null) as plain text
// for percent parsing.
func rawToString(raw json.RawMessage) string {
	if raw == nil {
		return ""
	}
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return asString
	}
	return string(raw)
}
