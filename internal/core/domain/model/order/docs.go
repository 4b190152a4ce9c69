// Package order contains the Order aggregate and its supporting value
// objects: lifecycle Status, immutable snapshot Line, delivery Contact, and
// the write-once Timeline.
//
// The aggregate owns every lifecycle rule of an order: checkout creates it
// in PENDING, shop assignment moves PENDING to CONFIRMED, delivery
// assignment forces OUT_FOR_DELIVERY and issues a one-time OTP, operators
// may overwrite the status freely for correction workflows, and customers
// may cancel within a fixed window after creation. DELIVERED and CANCELLED
// are terminal for every guarded transition.
package order
