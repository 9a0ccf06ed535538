// Package domain defines the configuration records and service interfaces
// shared across the generator: deck and slide configurations, diagram
// components, tree nodes, and flexible color parsing.
package domain
