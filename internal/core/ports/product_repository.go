package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products and
// the inventory ledger applied against them.
type ProductRepository interface {
	// Add persists a new product aggregate of either kind.
	Add(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier,
	// including all variant sub-records.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetBySKU resolves a product by target sku: first against root skus,
	// then against variant sub-records. Fails with errs.ErrObjectNotFound
	// when neither resolves.
	GetBySKU(ctx context.Context, sku string) (*product.Product, error)

	// ApplyDelta applies a signed stock/sold delta for the target sku,
	// atomically with respect to concurrent reconciliations against the same
	// product. Both kinds are updated through conditional statements whose
	// WHERE clause carries the non-negative stock guard, so the check and the
	// write are one atomic step; row locks serialize concurrent deltas
	// against the same sku or sibling variants of the same product.
	//
	// Errors: errs.ErrObjectNotFound when no product carries the sku,
	// errs.ErrStateMismatch on a kind/sku mismatch,
	// errs.ErrInsufficientStock on a delta that would drive stock below zero.
	ApplyDelta(ctx context.Context, sku string, qtyDelta, soldDelta int) error
}
