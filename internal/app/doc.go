// Package app wires application dependencies for the CLI.
//
// It builds the output store, resolved theme, deck builder and PDF exporter
// from Config, exposing them via the Wire struct for commands to use.
package app
