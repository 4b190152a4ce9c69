package ports

import "context"

// OrderSequence allocates public order codes.
// Implementations must be safe under concurrent checkout: two concurrent
// calls never return the same code, even across process restarts.
type OrderSequence interface {
	// NextCode reserves and returns the next order code, e.g. "ORDER1001".
	NextCode(ctx context.Context) (string, error)
}
