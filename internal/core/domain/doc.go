// Package domain defines the core business entities for wordfreq.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - WordCount: A normalised word and how often it occurred
//   - StoreMode: Which frequency store backs a counting run
//   - Report: The ranked result of one counting run
//   - Settings: Resolved configuration for a run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
