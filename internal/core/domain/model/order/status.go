package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The guarded lifecycle is:
//
//	Pending ──> Confirmed ──> OutForDelivery ──> Delivered
//	    │            │               │
//	    └────────────┴───────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. Note that the operator status
// override (Order.OverrideStatus) deliberately bypasses this graph; see the
// design note there.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a freshly checked-out order,
	// waiting for an administrator to assign a fulfilling shop.
	StatusPending

	// StatusConfirmed indicates a shop has been assigned and is preparing
	// the order.
	StatusConfirmed

	// StatusOutForDelivery indicates a delivery agent has picked up the
	// order and is on the way to the customer.
	StatusOutForDelivery

	// StatusDelivered indicates the order reached the customer. Terminal.
	StatusDelivered

	// StatusCancelled indicates the order was cancelled by the customer or
	// an operator. Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "UNKNOWN",
		StatusPending:        "PENDING",
		StatusConfirmed:      "CONFIRMED",
		StatusOutForDelivery: "OUT_FOR_DELIVERY",
		StatusDelivered:      "DELIVERED",
		StatusCancelled:      "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:        "PENDING",
		StatusConfirmed:      "CONFIRMED",
		StatusOutForDelivery: "OUT_FOR_DELIVERY",
		StatusDelivered:      "DELIVERED",
		StatusCancelled:      "CANCELLED",
	}
}

// getStatusSlugs maps statuses to the lowercase slugs used by the admin
// dashboard, where CONFIRMED is presented as "preparing".
func getStatusSlugs() map[Status]string {
	//nolint:exhaustive // StatusUnknown has no external representation
	return map[Status]string{
		StatusPending:        "pending",
		StatusConfirmed:      "preparing",
		StatusOutForDelivery: "out_for_delivery",
		StatusDelivered:      "delivered",
		StatusCancelled:      "cancelled",
	}
}

// StatusFromString parses the canonical storage form ("PENDING",
// "CONFIRMED", ...). Returns an error for unknown values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// StatusFromSlug parses the admin dashboard form ("pending", "preparing",
// "out_for_delivery", "delivered", "cancelled"). Returns an error for
// unknown values.
func StatusFromSlug(s string) (Status, error) {
	for status, slug := range getStatusSlugs() {
		if slug == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status slug", s))
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical storage form of the status.
// Implements fmt.Stringer; safe to call on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Slug returns the lowercase admin dashboard form of the status.
// Invalid values map to an empty string.
func (s Status) Slug() string {
	return getStatusSlugs()[s]
}

// IsTerminal reports whether the status permits no further guarded
// transitions. Delivered and Cancelled orders are final.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}
