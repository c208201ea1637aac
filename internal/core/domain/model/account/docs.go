// Package account models the three marketplace actors (customers, pharmacies
// and couriers) as a single User entity distinguished by Role. The order
// workflow consumes this package for identity and authority checks.
package account
