// Package order contains the purchase workflow aggregate: the Order with its
// line items, the order and prescription status machines, the role-based
// transition authority table, and the courier rejection record.
//
// The aggregate owns all workflow decisions. HTTP handlers and command
// handlers never branch on roles or statuses themselves; they construct an
// Actor and let the aggregate authorize and validate the mutation.
package order
