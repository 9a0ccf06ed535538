// Package theme holds the design system: brand color roles, the gradient
// series, font roles, layout metrics, card styles, and the named presets.
// A theme is resolved once per run from defaults, an optional preset, and an
// optional override file, then treated as read-only.
package theme
