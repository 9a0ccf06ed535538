package app

import "io"

// Config holds runtime wiring options for building the services.
type Config struct {
	OutputDir string    // where decks are written, e.g. ./output
	Theme     string    // preset name, e.g. default, dark
	ThemeFile string    // optional override file path
	Warn      io.Writer // warning sink; defaults to io.Discard
}
