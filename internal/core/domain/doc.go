// Package domain defines the core business entities for the annotator.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ServiceCredential: Connection parameters for one backing service
//   - AnnotationRecord: A repository entry with its subject terms
//   - TermUsage: Occurrence counts per term across a record set
//   - MaxAnnotationResult: The records tied for the most terms
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
