package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
	ErrPhoneIsRequired          = errors.New("phone is required")
	ErrAddressIsRequired        = errors.New("address is required")
	ErrCheckoutItemsAreRequired = errors.New("at least one item is required")
	ErrOfferPriceIsInvalid      = errors.New("offer price must be present and non-negative when a coupon code is set")
)

// CheckoutItem identifies one product being ordered.
// Name and price are resolved from the catalog by the handler.
type CheckoutItem struct {
	ProductID   kernel.UUID
	Quantity    int
	VariantName string
}

// CheckoutCommand represents a request to place an order.
// Guests check out with a nil customer ID; authenticated customers get
// their cart cleared once the order is persisted.
//
// Example:
//
//	items := []CheckoutItem{{ProductID: productID, Quantity: 2}}
//	cmd, err := NewCheckoutCommand(
//	    kernel.NewUUID(), &customerID,
//	    "Asha", "9876543210", "12 MG Road, Bangalore", "ring twice",
//	    nil, "COD", "", nil, items,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout: %w", err)
//	}
//
//	code, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerID    *kernel.UUID
	customerName  string
	phone         string
	address       string
	notes         string
	location      *kernel.GeoPoint
	paymentMethod order.PaymentMethod
	couponCode    string
	offerPrice    *int64
	items         []CheckoutItem

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a command to place an order.
// Validates contact data, item identifiers and quantities, the payment
// method string ("COD", "ONLINE", empty means COD), and coupon consistency.
func NewCheckoutCommand(
	orderID kernel.UUID,
	customerID *kernel.UUID,
	customerName string,
	phone string,
	address string,
	notes string,
	location *kernel.GeoPoint,
	paymentMethod string,
	couponCode string,
	offerPrice *int64,
	items []CheckoutItem,
) (CheckoutCommand, error) {
	checkoutCommand := CheckoutCommand{
		customerName: customerName,
		notes:        notes,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		checkoutCommand.setOrderID(orderID),
		checkoutCommand.setCustomerID(customerID),
		checkoutCommand.setPhone(phone),
		checkoutCommand.setAddress(address),
		checkoutCommand.setLocation(location),
		checkoutCommand.setPaymentMethod(paymentMethod),
		checkoutCommand.setCoupon(couponCode, offerPrice),
		checkoutCommand.setItems(items),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return checkoutCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created under.
func (c CheckoutCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the authenticated customer, or nil for guest checkout.
func (c CheckoutCommand) CustomerID() *kernel.UUID {
	return c.customerID
}

// CustomerName returns the recipient name.
func (c CheckoutCommand) CustomerName() string {
	return c.customerName
}

// Phone returns the contact phone number.
func (c CheckoutCommand) Phone() string {
	return c.phone
}

// Address returns the free-text delivery address.
func (c CheckoutCommand) Address() string {
	return c.address
}

// Notes returns optional delivery instructions.
func (c CheckoutCommand) Notes() string {
	return c.notes
}

// Location returns the structured delivery coordinates, nil when the
// client supplied none. Without them the contact falls back to extracting
// a coordinate pair from the address text.
func (c CheckoutCommand) Location() *kernel.GeoPoint {
	return c.location
}

// PaymentMethod returns the parsed payment method.
func (c CheckoutCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// CouponCode returns the applied coupon code, empty when none.
func (c CheckoutCommand) CouponCode() string {
	return c.couponCode
}

// OfferPrice returns the discounted total that goes with the coupon.
func (c CheckoutCommand) OfferPrice() *int64 {
	return c.offerPrice
}

// Items returns the products being ordered.
func (c CheckoutCommand) Items() []CheckoutItem {
	items := make([]CheckoutItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CheckoutCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CheckoutCommand) setCustomerID(customerID *kernel.UUID) error {
	if customerID == nil {
		return nil
	}

	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CheckoutCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}

func (c *CheckoutCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *CheckoutCommand) setLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}

	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}

func (c *CheckoutCommand) setPaymentMethod(paymentMethod string) error {
	method, err := order.PaymentMethodFromString(paymentMethod)
	if err != nil {
		return err
	}

	c.paymentMethod = method
	return nil
}

func (c *CheckoutCommand) setCoupon(couponCode string, offerPrice *int64) error {
	if couponCode == "" {
		return nil
	}

	if offerPrice == nil || *offerPrice < 0 {
		return ErrOfferPriceIsInvalid
	}

	c.couponCode = couponCode
	c.offerPrice = offerPrice
	return nil
}

func (c *CheckoutCommand) setItems(items []CheckoutItem) error {
	if len(items) == 0 {
		return ErrCheckoutItemsAreRequired
	}

	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return err
		}

		if item.Quantity <= 0 {
			return ErrQuantityIsInvalid
		}
	}

	c.items = make([]CheckoutItem, len(items))
	copy(c.items, items)
	return nil
}
