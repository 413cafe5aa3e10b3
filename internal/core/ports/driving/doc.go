// Package driving defines the interfaces through which external actors
// (the CLI) call INTO the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// Services implement them; the CLI adapter consumes them.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or service package
package driving
