// Package cart contains the Cart aggregate: a per-customer set of mutable
// line items awaiting checkout.
//
// A customer has at most one cart. Lines are keyed by (product, variant);
// adding an existing key sums quantities, setting a non-positive quantity
// deletes the line, and removal is idempotent. Line prices are snapshots
// taken from the catalog at add time and are re-snapshotted on every add.
// The cart is cleared, not deleted, on successful checkout.
package cart
