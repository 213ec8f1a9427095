// Package ports defines repository interfaces for the storefront core.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are an audit record: there is deliberately no delete operation.
type OrderRepository interface {
	// Add persists a new order aggregate, including its initial history entry.
	// A duplicate order number surfaces the store's unique-index violation;
	// the write path never renumbers.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate with an
	// optimistic version check. A lost race against a concurrent update of
	// the same order fails with errs.ErrConcurrentUpdate so the caller can
	// retry the whole transition.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// including the complete status history.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
