// Package services contains stateless domain services that coordinate
// logic across aggregates: order pricing and proximity-based shop ranking.
package services
