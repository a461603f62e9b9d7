package export

import (
	"strings"
	"time"

	"avoronin/cashback-matrix/internal/models"
)

// CheatSheetOptions controls the localized parts of the cheat sheet.
type CheatSheetOptions struct {
	// DateFormat is a Go reference-time layout for the header date.
	DateFormat string
	// OrConnector joins multiple winner banks on one line ("или", "or").
	OrConnector string
}

const cheatSheetFooter = "Конец списка"

// CheatSheet renders the per-category recommendations: one line per row with
// a non-empty winner set, naming the winning bank(s) and their percentage.
// Rows without winners are omitted. The generation time is a parameter so the
// output is reproducible.
func CheatSheet(rows []models.MatrixRow, now time.Time, opts CheatSheetOptions) string {
	if opts.DateFormat == "" {
		opts.DateFormat = "02.01.2006"
	}
	if opts.OrConnector == "" {
		opts.OrConnector = "или"
	}

	var b strings.Builder
	b.WriteString("Кешбэк на ")
	b.WriteString(now.Format(opts.DateFormat))
	b.WriteString("\n\n")

	for _, row := range rows {
		winners := row.Winners()
		if len(winners) == 0 {
			continue
		}

		names := make([]string, 0, len(winners))
		var percent string
		for _, bank := range winners {
			names = append(names, string(bank))
			if cell, ok := row.Cell(bank); ok {
				percent = models.FormatPercent(cell.Percent)
			}
		}

		b.WriteString(row.Category)
		b.WriteString(": ")
		b.WriteString(strings.Join(names, " "+opts.OrConnector+" "))
		if percent != "" {
			b.WriteString(" (")
			b.WriteString(percent)
			b.WriteString(")")
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(cheatSheetFooter)
	b.WriteByte('\n')

	return b.String()
}
