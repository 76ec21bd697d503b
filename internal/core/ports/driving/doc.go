// Package driving defines the interfaces through which presentation
// adapters drive the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The CLI and TUI adapters consume these interfaces; core services
// implement them. Presentation renders core data and forwards user
// intents; it never owns business rules.
//
// # Import Rules
//
//   - Can Import: domain and taxonomy packages only
//   - Cannot Import: services, adapters
package driving
