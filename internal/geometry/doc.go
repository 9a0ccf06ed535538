// Package geometry holds the pure layout math behind the diagram slides:
// architecture-diagram auto-scaling and centering, connector routing between
// boxes, organization-chart level analysis, and directory-tree text lines.
// Everything here works in inches and is independent of the presentation
// library.
package geometry
