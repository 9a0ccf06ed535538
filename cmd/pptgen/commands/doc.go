// Package commands defines the pptgen CLI.
//
// Commands
//
//   - (root)     Build a deck from a configuration file or simple mode flags
//   - generate   Alias of the root behavior
//   - themes     List the built-in theme presets
//
// # Implementation
//
// The root command reads an optional .env (PPTGEN_OUTPUT_DIR, PPTGEN_THEME)
// for flag defaults, then builds the dependency graph (output store, resolved
// theme, deck builder, PDF exporter) through internal/app before generating.
//
// The custom fonts used by the default design (현대하모니 M/L) are not
// installed by the tool; decks fall back to the viewer's substitute font when
// they are absent.
package commands
