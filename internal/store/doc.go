// Package store manages on-disk output for the generator: the output
// directory, timestamped deck filenames, and whole-file writes. All methods
// are concurrency-safe via internal locking.
package store
