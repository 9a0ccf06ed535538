package app

import (
	"io"

	"github.com/mgk2100/ppt-generator/internal/deck"
	"github.com/mgk2100/ppt-generator/internal/domain"
	"github.com/mgk2100/ppt-generator/internal/export"
	"github.com/mgk2100/ppt-generator/internal/store"
	"github.com/mgk2100/ppt-generator/internal/theme"
)

// Wire bundles the stores and services for the CLI.
type Wire struct {
	Store *store.OutputStore
	Theme *theme.Theme
	Decks domain.DeckService
	PDF   domain.ExportService
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	warn := cfg.Warn
	if warn == nil {
		warn = io.Discard
	}

	outputStore := store.NewOutputStore(cfg.OutputDir)
	th := theme.Resolve(cfg.Theme, cfg.ThemeFile, warn)
	deckSvc := deck.New(th, outputStore, warn)
	pdfSvc := export.NewPDFExporter()

	return &Wire{
		Store: outputStore,
		Theme: th,
		Decks: deckSvc,
		PDF:   pdfSvc,
	}, nil
}
