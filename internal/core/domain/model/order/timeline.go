package order

import "time"

// Timeline records when each lifecycle milestone of an order happened.
// CreatedAt is set exactly once at construction. Every other stamp is
// write-once: stamping an already-set field is a no-op, except DeliveredAt
// and CancelledAt which are set at the exact moment of the corresponding
// transition.
type Timeline struct {
	createdAt          time.Time
	assignedShopAt     *time.Time
	assignedDeliveryAt *time.Time
	pickedUpAt         *time.Time
	deliveredAt        *time.Time
	cancelledAt        *time.Time
}

// NewTimeline creates a timeline anchored at the order creation instant.
func NewTimeline(createdAt time.Time) Timeline {
	return Timeline{createdAt: createdAt}
}

// RestoreTimeline reconstructs a timeline from persistence.
func RestoreTimeline(createdAt time.Time, assignedShopAt, assignedDeliveryAt, pickedUpAt, deliveredAt, cancelledAt *time.Time) Timeline {
	return Timeline{
		createdAt:          createdAt,
		assignedShopAt:     assignedShopAt,
		assignedDeliveryAt: assignedDeliveryAt,
		pickedUpAt:         pickedUpAt,
		deliveredAt:        deliveredAt,
		cancelledAt:        cancelledAt,
	}
}

// CreatedAt returns the order creation instant.
func (t Timeline) CreatedAt() time.Time { return t.createdAt }

// AssignedShopAt returns when a shop was first assigned, or nil.
func (t Timeline) AssignedShopAt() *time.Time { return t.assignedShopAt }

// AssignedDeliveryAt returns when a delivery agent was first assigned, or nil.
func (t Timeline) AssignedDeliveryAt() *time.Time { return t.assignedDeliveryAt }

// PickedUpAt returns when the order was picked up, or nil.
func (t Timeline) PickedUpAt() *time.Time { return t.pickedUpAt }

// DeliveredAt returns when the order was delivered, or nil.
func (t Timeline) DeliveredAt() *time.Time { return t.deliveredAt }

// CancelledAt returns when the order was cancelled, or nil.
func (t Timeline) CancelledAt() *time.Time { return t.cancelledAt }

// stampAssignedShop records the shop assignment instant once.
func (t *Timeline) stampAssignedShop(now time.Time) {
	if t.assignedShopAt == nil {
		t.assignedShopAt = &now
	}
}

// stampAssignedDelivery records the delivery assignment instant once.
func (t *Timeline) stampAssignedDelivery(now time.Time) {
	if t.assignedDeliveryAt == nil {
		t.assignedDeliveryAt = &now
	}
}

// stampPickedUp records the pickup instant once.
func (t *Timeline) stampPickedUp(now time.Time) {
	if t.pickedUpAt == nil {
		t.pickedUpAt = &now
	}
}

// stampDelivered records the delivery instant at the moment of the
// transition to Delivered.
func (t *Timeline) stampDelivered(now time.Time) {
	t.deliveredAt = &now
}

// stampCancelled records the cancellation instant at the moment of the
// transition to Cancelled.
func (t *Timeline) stampCancelled(now time.Time) {
	t.cancelledAt = &now
}
