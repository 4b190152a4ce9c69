package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// PaymentMethod is how the customer chose to pay. The method is recorded on
// the order; settlement is outside this core.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined method.
	PaymentMethodUnknown PaymentMethod = iota

	// PaymentMethodCOD is cash on delivery, the default.
	PaymentMethodCOD

	// PaymentMethodOnline is an online payment.
	PaymentMethodOnline
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	//nolint:exhaustive // PaymentMethodUnknown is intentionally excluded
	return map[PaymentMethod]string{
		PaymentMethodCOD:    "COD",
		PaymentMethodOnline: "ONLINE",
	}
}

// PaymentMethodFromString parses "COD" or "ONLINE". An empty string defaults
// to COD, matching storefront behavior; any other value is invalid.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	if s == "" {
		return PaymentMethodCOD, nil
	}
	for method, str := range getPaymentMethodStrings() {
		if str == s {
			return method, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause("paymentMethod",
		fmt.Errorf("%q is not a valid payment method", s))
}

// Validate checks if the PaymentMethod value is valid.
func (m PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the canonical form. Implements fmt.Stringer.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "UNKNOWN"
}

// Mode returns the settlement mode recorded for reporting:
// ONLINE orders settle online, everything else is cash.
func (m PaymentMethod) Mode() string {
	if m == PaymentMethodOnline {
		return "ONLINE"
	}
	return "CASH"
}
