// Package counterrepo persists the named sequences behind order numbering.
package counterrepo

import (
	"context"

	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// CounterDTO represents one named durable sequence.
type CounterDTO struct {
	Name string `gorm:"primaryKey"`
	Seq  int64
}

// TableName specifies the database table name for counters.
func (CounterDTO) TableName() string {
	return "counters"
}

// GormCounterRepository implements CounterRepository using GORM.
//
// Unlike the aggregate repositories this one runs on the base connection, not
// inside a unit of work: the increment must commit even when the surrounding
// order save later fails, trading sequence gaps for uniqueness.
type GormCounterRepository struct {
	db *gorm.DB
}

// NewGormCounterRepository creates a new GORM counter repository.
func NewGormCounterRepository(db *gorm.DB) *GormCounterRepository {
	return &GormCounterRepository{db: db}
}

// Next atomically increments the named counter and returns the new value.
// The upsert creates missing counters on first use, so no seeding is needed.
// Concurrent callers serialize on the row lock and never observe the same
// value.
func (r *GormCounterRepository) Next(ctx context.Context, name string) (int64, error) {
	if name == "" {
		return 0, errs.NewValueIsRequiredError("name")
	}

	var seq int64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO counters (name, seq)
		VALUES (?, 1)
		ON CONFLICT (name) DO UPDATE SET seq = counters.seq + 1
		RETURNING seq
	`, name).Scan(&seq).Error
	if err != nil {
		return 0, err
	}

	return seq, nil
}
