// Package oracle talks to the external recognition services that turn
// screenshots, free-text comments and correction instructions into raw
// entries. Everything coming back is untrusted structured input; the engine
// never depends on this package.
package oracle

import (
	"context"

	"avoronin/cashback-matrix/internal/models"
)

// ExtractionClient turns a screenshot or a free-text comment into raw
// cashback offers. Implementations are fallible and non-deterministic; a
// failed call must return an error and no entries.
type ExtractionClient interface {
	// ExtractFromImage extracts offers from screenshot bytes. format is the
	// image format ("png", "jpeg").
	ExtractFromImage(ctx context.Context, data []byte, format string) ([]models.RawEntry, error)

	// ExtractFromText extracts offers from a free-text comment.
	ExtractFromText(ctx context.Context, comment string) ([]models.RawEntry, error)
}

// RewriteClient rewrites the whole dataset from a natural-language
// instruction. On error the caller keeps the previous dataset untouched.
type RewriteClient interface {
	Rewrite(ctx context.Context, entries []models.RawEntry, instruction string) ([]models.RawEntry, error)
}
