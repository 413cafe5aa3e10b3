// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The resolver service owns the credential provider chain; the annotations
// service is a pure set of query functions over a record snapshot.
package services
