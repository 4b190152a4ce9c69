package kernel

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const (
	// LatitudeMin is the minimum valid latitude in degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the maximum valid latitude in degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the minimum valid longitude in degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the maximum valid longitude in degrees.
	LongitudeMax = 180.0

	// earthRadiusKm is the mean Earth radius used by the haversine formula.
	earthRadiusKm = 6371.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. GeoPoints must be created via NewGeoPoint or
// GeoPointFromAddress.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint or GeoPointFromAddress constructors")

// coordinatePattern matches a "lat, lng" decimal pair embedded in free text,
// e.g. "MG Road 12.97, 77.59" or "12.97 77.59".
var coordinatePattern = regexp.MustCompile(`([-+]?[0-9]*\.?[0-9]+)[,\s]+([-+]?[0-9]*\.?[0-9]+)`)

// GeoPoint represents a geographic position with validated latitude and
// longitude in decimal degrees. GeoPoint is an immutable value object; the
// zero value is invalid and fails validation.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(12.9716, 77.5946)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(point) // GeoPoint(12.971600,77.594600)
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with the given coordinates.
// Latitude must be within [-90, 90] and longitude within [-180, 180];
// an out-of-range coordinate returns a validation error.
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLatitude(latitude), point.setLongitude(longitude)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// GeoPointFromAddress extracts a coordinate pair from a free-text address.
// This is the best-effort fallback used when a checkout request carries no
// structured coordinates: the first "number, number" pair found in the text
// is treated as "latitude, longitude". Returns false when the text contains
// no parsable pair or the parsed pair is out of range.
func GeoPointFromAddress(address string) (GeoPoint, bool) {
	match := coordinatePattern.FindStringSubmatch(address)
	if match == nil {
		return GeoPoint{}, false
	}

	latitude, latErr := strconv.ParseFloat(match[1], 64)
	longitude, lngErr := strconv.ParseFloat(match[2], 64)
	if latErr != nil || lngErr != nil {
		return GeoPoint{}, false
	}

	point, err := NewGeoPoint(latitude, longitude)
	if err != nil {
		return GeoPoint{}, false
	}

	return point, true
}

// Validate checks that the GeoPoint was created through a constructor.
// The zero value fails validation.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in decimal degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// String implements fmt.Stringer.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%f,%f)", p.latitude, p.longitude)
}

// IsEqual compares two geo points for coordinate equality.
// Both points must be properly constructed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.latitude == other.latitude && p.longitude == other.longitude, nil
}

// DistanceKm calculates the great-circle distance to another point using the
// haversine formula with a mean Earth radius of 6371 km. The result is
// rounded to two decimal places, which is the precision reported to
// operators during shop assignment.
func (p GeoPoint) DistanceKm(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	dLat := degreesToRadians(other.latitude - p.latitude)
	dLng := degreesToRadians(other.longitude - p.longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degreesToRadians(p.latitude))*
			math.Cos(degreesToRadians(other.latitude))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return math.Round(earthRadiusKm*c*100) / 100, nil
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func (p *GeoPoint) setLatitude(latitude float64) error {
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}

	p.latitude = latitude
	return nil
}

func (p *GeoPoint) setLongitude(longitude float64) error {
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	p.longitude = longitude
	return nil
}
