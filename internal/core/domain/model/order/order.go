package order

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// CancelWindow is how long after creation a customer may cancel their order.
const CancelWindow = 5 * time.Minute

// CustomerCancelReason is the fixed reason recorded for in-window customer
// cancellations.
const CustomerCancelReason = "User requested cancellation within 5 minutes"

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrAgentNameIsRequired is returned when delivery assignment is
	// attempted without an agent name.
	ErrAgentNameIsRequired = errs.NewValueIsRequiredError("delivery agent name")
)

// Order is the aggregate root of the fulfillment lifecycle. It owns the
// status, the priced line snapshots, the shop/agent assignment, and the
// milestone timeline.
//
// Invariants:
//   - Code is assigned once at creation and never changes
//   - Totals satisfy total = subtotal + deliveryFee, and subtotal matches
//     the sum over the snapshot lines
//   - timeline.CreatedAt is set exactly once and never overwritten
//   - the OTP is generated at most once and survives refetches
//   - Delivered and Cancelled are terminal for guarded transitions
//     (customer cancellation); the operator override is deliberately
//     unguarded, see OverrideStatus
type Order struct {
	id              kernel.UUID
	code            string
	contact         Contact
	lines           []Line
	totals          Totals
	paymentMethod   PaymentMethod
	status          Status
	shopID          *kernel.UUID
	deliveryAgent   string
	shopPrice       int64
	shopMargin      int64
	shopPaid        bool
	otp             string
	couponCode      string
	offerPrice      *int64
	timeline        Timeline
	cancelledReason string

	isConstructed bool
}

// NewOrder creates an order in Pending status from checkout input.
//
// Parameters:
//   - id: internal storage identity
//   - code: the generated external "ORDER<seq>" identifier
//   - contact: validated delivery contact
//   - lines: non-empty snapshot lines copied from the cart
//   - totals: priced summary; its subtotal must match the lines
//   - paymentMethod: COD or ONLINE
//   - createdAt: the creation instant stamped into the timeline
//
// Returns a validation error if any input violates an invariant. A returned
// order always starts in StatusPending with only CreatedAt set on its
// timeline.
func NewOrder(
	id kernel.UUID,
	code string,
	contact Contact,
	lines []Line,
	totals Totals,
	paymentMethod PaymentMethod,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		status:        StatusPending,
		timeline:      NewTimeline(createdAt),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCode(code),
		order.setContact(contact),
		order.setLines(lines),
		order.setTotals(totals),
		order.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence without re-running
// creation-time side effects. The stored status, assignment, OTP, and
// timeline are taken as-is after basic validation.
func RestoreOrder(
	id kernel.UUID,
	code string,
	contact Contact,
	lines []Line,
	totals Totals,
	paymentMethod PaymentMethod,
	status Status,
	shopID *kernel.UUID,
	deliveryAgent string,
	shopPrice int64,
	shopMargin int64,
	shopPaid bool,
	otp string,
	couponCode string,
	offerPrice *int64,
	timeline Timeline,
	cancelledReason string,
) (*Order, error) {
	order := &Order{
		status:        status,
		timeline:      timeline,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCode(code),
		order.setContact(contact),
		order.setLines(lines),
		order.setTotals(totals),
		order.setPaymentMethod(paymentMethod),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if shopID != nil {
		if err := shopID.Validate(); err != nil {
			return nil, err
		}
		order.shopID = shopID
	}

	order.deliveryAgent = deliveryAgent
	order.shopPrice = shopPrice
	order.shopMargin = shopMargin
	order.shopPaid = shopPaid
	order.otp = otp
	order.couponCode = couponCode
	order.offerPrice = offerPrice
	order.cancelledReason = cancelledReason
	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the internal storage identity.
func (o *Order) ID() kernel.UUID { return o.id }

// Code returns the external "ORDER<seq>" identifier.
func (o *Order) Code() string { return o.code }

// Contact returns the delivery contact details.
func (o *Order) Contact() Contact { return o.contact }

// Lines returns the snapshot lines. The returned slice is a copy; mutating
// it does not affect the order.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Totals returns the priced summary.
func (o *Order) Totals() Totals { return o.totals }

// PaymentMethod returns how the customer chose to pay.
func (o *Order) PaymentMethod() PaymentMethod { return o.paymentMethod }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// ShopID returns the assigned fulfilling shop, or nil.
func (o *Order) ShopID() *kernel.UUID { return o.shopID }

// DeliveryAgent returns the assigned delivery agent's name, or "".
func (o *Order) DeliveryAgent() string { return o.deliveryAgent }

// ShopPrice returns the price owed to the fulfilling shop.
func (o *Order) ShopPrice() int64 { return o.shopPrice }

// ShopMargin returns the marketplace margin over the shop price.
func (o *Order) ShopMargin() int64 { return o.shopMargin }

// ShopPaid reports whether the shop has been paid out.
func (o *Order) ShopPaid() bool { return o.shopPaid }

// OTP returns the delivery confirmation code, or "" if none was issued yet.
func (o *Order) OTP() string { return o.otp }

// CouponCode returns the applied coupon code, or "".
func (o *Order) CouponCode() string { return o.couponCode }

// OfferPrice returns the discounted offer price, or nil.
func (o *Order) OfferPrice() *int64 { return o.offerPrice }

// Timeline returns the milestone timeline.
func (o *Order) Timeline() Timeline { return o.timeline }

// CancelledReason returns why the order was cancelled, or "".
func (o *Order) CancelledReason() string { return o.cancelledReason }

// BelongsTo reports whether the order is owned by the given customer.
// Guest orders belong to nobody.
func (o *Order) BelongsTo(customerID kernel.UUID) bool {
	return o.contact.CustomerID() != nil && o.contact.CustomerID().IsEqual(customerID)
}

// ApplyCoupon records a coupon code and the resulting offer price. The
// recorded values are informational; totals are not recomputed here.
func (o *Order) ApplyCoupon(code string, offerPrice int64) error {
	if code == "" {
		return errs.NewValueIsRequiredError("coupon code")
	}
	o.couponCode = code
	o.offerPrice = &offerPrice
	return nil
}

// AssignShop designates the fulfilling shop.
//
// shopPrice, when given, replaces the stored shop price. The margin is
// taken from shopMargin when given; otherwise, when shopPrice is given, it
// defaults to total - shopPrice; otherwise it is left unchanged. A Pending
// order advances to Confirmed; any other status is left alone so the shop
// of an in-flight order can be corrected. The assignedShopAt stamp is
// written once.
func (o *Order) AssignShop(shopID kernel.UUID, shopPrice, shopMargin *int64, now time.Time) error {
	if err := shopID.Validate(); err != nil {
		return err
	}

	o.shopID = &shopID
	if shopPrice != nil {
		o.shopPrice = *shopPrice
	}

	switch {
	case shopMargin != nil:
		o.shopMargin = *shopMargin
	case shopPrice != nil && o.totals.Total != 0:
		o.shopMargin = o.totals.Total - *shopPrice
	}

	if o.status == StatusPending {
		o.status = StatusConfirmed
	}

	o.timeline.stampAssignedShop(now)
	return nil
}

// AssignDelivery hands the order to a delivery agent.
//
// The status is forced to OutForDelivery regardless of the prior state —
// this is a deliberate operator override, not a guarded transition, so a
// mis-set order can be pushed back onto the road. A 4-digit OTP is
// generated on the first assignment and never regenerated afterwards.
// assignedShopAt (when a shop is set), assignedDeliveryAt, and pickedUpAt
// are stamped once.
func (o *Order) AssignDelivery(agentName string, now time.Time) error {
	if agentName == "" {
		return ErrAgentNameIsRequired
	}

	o.deliveryAgent = agentName
	o.status = StatusOutForDelivery

	if o.otp == "" {
		o.otp = generateOTP()
	}

	if o.shopID != nil {
		o.timeline.stampAssignedShop(now)
	}
	o.timeline.stampAssignedDelivery(now)
	o.timeline.stampPickedUp(now)
	return nil
}

// OverrideStatus overwrites the status unconditionally.
//
// No transition graph is enforced at this entry point: any status is
// reachable from any status, including backward moves such as Delivered to
// OutForDelivery. This lenience exists for operator correction workflows
// and is intentional recorded behavior, not an oversight to be fixed here.
// deliveredAt is stamped when the target is Delivered; cancelledAt when the
// target is Cancelled.
func (o *Order) OverrideStatus(status Status, now time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status

	switch status { //nolint:exhaustive // only terminal targets carry stamps
	case StatusDelivered:
		o.timeline.stampDelivered(now)
	case StatusCancelled:
		o.timeline.stampCancelled(now)
	}
	return nil
}

// CancelByCustomer cancels the order on the owning customer's request.
//
// The cancellation is accepted only while the order is not already
// cancelled and no more than CancelWindow has elapsed since creation.
// On success the status becomes Cancelled, cancelledAt is stamped, and the
// fixed CustomerCancelReason is recorded.
func (o *Order) CancelByCustomer(now time.Time) error {
	if o.status == StatusCancelled {
		return errs.NewInvalidStateError("order is already cancelled")
	}

	if now.Sub(o.timeline.CreatedAt()) > CancelWindow {
		return errs.NewInvalidStateError("order can only be cancelled within 5 minutes")
	}

	o.status = StatusCancelled
	o.timeline.stampCancelled(now)
	o.cancelledReason = CustomerCancelReason
	return nil
}

// MarkShopPaid records that the fulfilling shop has been paid out.
// The status is not affected.
func (o *Order) MarkShopPaid() {
	o.shopPaid = true
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("order code")
	}
	o.code = code
	return nil
}

func (o *Order) setContact(contact Contact) error {
	if err := contact.Validate(); err != nil {
		return err
	}
	o.contact = contact
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}

func (o *Order) setTotals(totals Totals) error {
	if err := totals.Validate(); err != nil {
		return err
	}

	var subtotal int64
	for _, line := range o.lines {
		subtotal += line.Price() * int64(line.Quantity())
	}
	if subtotal != totals.Subtotal {
		return errs.NewValueIsInvalidErrorWithCause("totals",
			fmt.Errorf("subtotal %d does not match line sum %d", totals.Subtotal, subtotal))
	}

	o.totals = totals
	return nil
}

func (o *Order) setPaymentMethod(paymentMethod PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}
	o.paymentMethod = paymentMethod
	return nil
}

// generateOTP produces a 4-digit delivery confirmation code in [1000, 9999].
func generateOTP() string {
	return fmt.Sprintf("%d", rand.IntN(9000)+1000) //nolint:gosec // not a cryptographic secret
}
