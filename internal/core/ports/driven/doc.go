// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - RecordStore: Queries annotated repository records
//   - LabelStore: Resolves term identifiers to human-readable labels
//   - Prompter: Interactive credential prompting
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can degrade gracefully:
//
//   - SecretVault: Credential caching. An unavailable vault is treated as
//     a cache miss, never as a fatal condition.
//   - RepoLister: Repository import from a code-hosting API. Only the
//     import command needs it.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
