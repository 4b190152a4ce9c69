// Package shop contains the read model for fulfilling shops. Shops are
// owned by the catalog, which is an external collaborator; the order core
// only reads them to rank assignment candidates, so Shop is a plain value
// type without lifecycle behavior.
package shop

import (
	"marketplace/internal/core/domain/model/kernel"
)

// Shop is a candidate fulfilling shop as supplied by the catalog.
// Location is nil when the shop has no recorded coordinates; such shops can
// still be assigned, they just cannot be distance-ranked.
type Shop struct {
	ID          kernel.UUID
	Name        string
	Phone       string
	AddressLine string
	Location    *kernel.GeoPoint
	Rating      float64
	Products    []string
	IsActive    bool
}
