// Package domain defines the core business entities for Stayform.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies beyond ID generation and defines the
// fundamental types:
//
//   - Field: An atomic data-entry unit, polymorphic over seven type variants
//   - Document: A structured record owning an ordered field collection
//   - KnowledgeGap: A recorded unanswered question with its own lifecycle
//
// It also hosts the pure predicates the rest of the system is built on:
// the fill predicate, completeness scoring, and section grouping.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package
package domain
