package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// firstOrderSeq is the sequence value of the first order ever placed,
// so public codes start at "ORDER1001".
const firstOrderSeq = 1001

// OrderCounterDTO represents the single-row counter table backing order codes.
type OrderCounterDTO struct {
	ID  string `gorm:"primaryKey"`
	Seq int64
}

// TableName specifies the database table name for the order counter.
func (OrderCounterDTO) TableName() string {
	return "order_counters"
}

// GormOrderSequence allocates public order codes from a counter row.
// The allocation is a single upsert-and-increment statement, so concurrent
// checkouts are serialized by the database and never share a code.
type GormOrderSequence struct {
	db *gorm.DB
}

// NewGormOrderSequence creates an order code allocator on the given connection.
func NewGormOrderSequence(db *gorm.DB) *GormOrderSequence {
	return &GormOrderSequence{db: db}
}

// NextCode reserves and returns the next order code.
// Codes are never reused; a checkout that fails after allocation leaves a
// gap in the sequence, which is acceptable.
func (s *GormOrderSequence) NextCode(ctx context.Context) (string, error) {
	var seq int64

	row := s.db.WithContext(ctx).Raw(`
		INSERT INTO order_counters (id, seq)
		VALUES ('order', ?)
		ON CONFLICT (id) DO UPDATE SET seq = order_counters.seq + 1
		RETURNING seq
	`, firstOrderSeq).Row()

	if err := row.Scan(&seq); err != nil {
		return "", err
	}

	return fmt.Sprintf("ORDER%d", seq), nil
}
