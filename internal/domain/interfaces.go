package domain

import "context"

// DeckService builds a deck from configuration and writes it to outPath,
// returning the path actually written.
type DeckService interface {
	Generate(cfg *DeckConfig, outPath string) (string, error)
}

// ExportService converts a saved deck to another format. A failed or timed
// out conversion returns an error the caller treats as non-fatal.
type ExportService interface {
	ExportPDF(ctx context.Context, pptxPath string) (string, error)
}
