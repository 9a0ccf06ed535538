// Package config loads deck configurations from YAML or JSON files and
// applies the documented defaults before the dispatcher sees them.
package config
