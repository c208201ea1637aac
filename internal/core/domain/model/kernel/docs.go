// Package kernel contains shared value objects used across all domain
// aggregates. These are the building blocks of the domain model: identifiers
// and other primitive wrappers that enforce their own invariants.
package kernel
