package order

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrContactIsNotConstructed is returned when a Contact was not created
// through the NewContact factory method.
var ErrContactIsNotConstructed = errors.New("Contact must be created via NewContact constructor")

// Contact holds who an order is delivered to and where. CustomerID is nil
// for guest orders. Location carries the parsed delivery coordinates when
// either structured coordinates were supplied at checkout or a coordinate
// pair could be extracted from the free-text address; it is nil otherwise.
type Contact struct { //nolint:recvcheck //using for validation
	customerID *kernel.UUID
	name       string
	phone      string
	address    string
	notes      string
	location   *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewContact creates delivery contact details.
// Phone and address are required; name, notes, customerID, and location are
// optional. When location is nil, a best-effort coordinate pair is extracted
// from the address text.
func NewContact(customerID *kernel.UUID, name, phone, address, notes string, location *kernel.GeoPoint) (Contact, error) {
	contact := Contact{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		contact.setCustomerID(customerID),
		contact.setPhone(phone),
		contact.setAddress(address),
		contact.setLocation(location),
	); err != nil {
		return Contact{}, err
	}

	contact.name = name
	contact.notes = notes
	return contact, nil
}

// Validate ensures the Contact was created through NewContact.
func (c Contact) Validate() error {
	return c.guard.Validate(ErrContactIsNotConstructed)
}

// CustomerID returns the owning customer, or nil for guest orders.
func (c Contact) CustomerID() *kernel.UUID {
	return c.customerID
}

// Name returns the recipient name, possibly empty.
func (c Contact) Name() string {
	return c.name
}

// Phone returns the contact phone number.
func (c Contact) Phone() string {
	return c.phone
}

// Address returns the free-text delivery address.
func (c Contact) Address() string {
	return c.address
}

// Notes returns optional delivery notes.
func (c Contact) Notes() string {
	return c.notes
}

// Location returns the delivery coordinates, or nil when none could be
// resolved.
func (c Contact) Location() *kernel.GeoPoint {
	return c.location
}

func (c *Contact) setCustomerID(customerID *kernel.UUID) error {
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return err
		}
	}
	c.customerID = customerID
	return nil
}

func (c *Contact) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}

func (c *Contact) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = address
	return nil
}

func (c *Contact) setLocation(location *kernel.GeoPoint) error {
	if location != nil {
		if err := location.Validate(); err != nil {
			return err
		}
		c.location = location
		return nil
	}

	// Fallback: the address text may carry a "lat, lng" pair placed there
	// by the storefront.
	if point, ok := kernel.GeoPointFromAddress(c.address); ok {
		c.location = &point
	}
	return nil
}
