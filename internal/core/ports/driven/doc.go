// Package driven defines the interfaces that core calls OUT to
// infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and storage adapters implement
// them.
//
// # Required Interfaces
//
//   - DocumentStore: document persistence
//   - GapStore: knowledge gap persistence
//   - ConfigStore: application configuration
//
// The reference backing is in-memory; the SQLite adapter provides the same
// contracts with durability.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
