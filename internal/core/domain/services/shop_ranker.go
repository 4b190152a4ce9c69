package services

import (
	"math/rand/v2"
	"sort"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/shop"
)

// DegradedModeLimit caps how many shops the ranker returns when no distance
// can be resolved and it falls back to a randomized selection.
const DegradedModeLimit = 10

// Candidate is a shop considered for order assignment. DistanceKm is the
// great-circle distance from the order's delivery location, rounded to two
// decimals, or nil when the distance could not be resolved.
type Candidate struct {
	Shop       shop.Shop
	DistanceKm *float64
}

// ShopRanker is a domain service that orders candidate shops for an order
// by geographic proximity.
//
// Ranking rules:
//   - shops with a resolvable distance sort ascending by distance
//   - shops without a resolvable distance sort after all resolved shops,
//     keeping their original relative order
//   - when no distance is resolvable at all (the order has no coordinates,
//     or no shop does), the ranker degrades to a randomized selection of at
//     most DegradedModeLimit shops with nil distances, answering "is any
//     candidate acceptable" instead of failing outright
//   - zero shops produce an empty result, not an error
//
// The random source is injected so degraded-mode behavior is deterministic
// under test.
type ShopRanker struct {
	rnd *rand.Rand
}

// NewShopRanker creates a ranker using the given random source for the
// degraded-mode shuffle.
func NewShopRanker(rnd *rand.Rand) ShopRanker {
	return ShopRanker{rnd: rnd}
}

// Rank produces the distance-ordered candidate list for an order delivered
// at orderLocation (nil when the order has no coordinates).
func (r ShopRanker) Rank(orderLocation *kernel.GeoPoint, shops []shop.Shop) ([]Candidate, error) {
	candidates := make([]Candidate, 0, len(shops))
	if len(shops) == 0 {
		return candidates, nil
	}

	resolved := 0
	for _, s := range shops {
		candidate := Candidate{Shop: s}

		if orderLocation != nil && s.Location != nil {
			distance, err := orderLocation.DistanceKm(*s.Location)
			if err != nil {
				return nil, err
			}
			candidate.DistanceKm = &distance
			resolved++
		}

		candidates = append(candidates, candidate)
	}

	if resolved == 0 {
		return r.degraded(candidates), nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		di, dj := candidates[i].DistanceKm, candidates[j].DistanceKm
		if di == nil {
			return false
		}
		if dj == nil {
			return true
		}
		return *di < *dj
	})

	return candidates, nil
}

// degraded shuffles the candidates and returns at most DegradedModeLimit of
// them, all with nil distances.
func (r ShopRanker) degraded(candidates []Candidate) []Candidate {
	r.rnd.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	if len(candidates) > DegradedModeLimit {
		candidates = candidates[:DegradedModeLimit]
	}
	return candidates
}
