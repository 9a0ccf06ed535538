// Package export converts generated decks to other formats.
package export
