package productrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new product aggregate, including its variant rows.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a product by ID, including all variant rows.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	err := r.db.WithContext(ctx).
		Preload("Variants").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("productID", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetBySKU resolves a product by sku, first against root skus, then against
// variant rows. Every sku on an order must resolve to exactly one product.
func (r *GormProductRepository) GetBySKU(ctx context.Context, sku string) (*product.Product, error) {
	if sku == "" {
		return nil, errs.NewValueIsRequiredError("sku")
	}

	var dto ProductDTO
	err := r.db.WithContext(ctx).
		Preload("Variants").
		First(&dto, "sku = ?", sku).Error
	if err == nil {
		return toDomain(dto)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var variant VariantDTO
	err = r.db.WithContext(ctx).First(&variant, "sku = ?", sku).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("sku", sku)
		}
		return nil, err
	}

	err = r.db.WithContext(ctx).
		Preload("Variants").
		First(&dto, "id = ?", variant.ProductID).Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// ApplyDelta applies a signed stock/sold delta for the target sku.
//
// Both paths use a single conditional UPDATE whose WHERE clause carries the
// non-negative stock guard, so the check and the write are one atomic
// statement: under concurrency the row lock serializes reconciliations and a
// delta that would drive stock negative simply matches no rows. The aggregate
// version is bumped on every delta.
func (r *GormProductRepository) ApplyDelta(ctx context.Context, sku string, qtyDelta, soldDelta int) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}

	// Simple products first: sku lives on the product row itself.
	result := r.db.WithContext(ctx).Exec(`
		UPDATE products
		SET quantity = quantity + ?,
		    total_sold = total_sold + ?,
		    version = version + 1
		WHERE sku = ? AND kind = ? AND quantity + ? >= 0
	`, qtyDelta, soldDelta, sku, int(product.KindSimple), qtyDelta)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var simpleCount int64
	err := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("sku = ? AND kind = ?", sku, int(product.KindSimple)).
		Count(&simpleCount).Error
	if err != nil {
		return err
	}
	if simpleCount > 0 {
		return errs.NewInsufficientStockErrorWithCause("quantity",
			errors.New("stock cannot go below zero"))
	}

	// Variant path: stock moves on the variant row, the shared sold counter
	// and version on the parent.
	result = r.db.WithContext(ctx).Exec(`
		UPDATE product_variants
		SET quantity = quantity + ?
		WHERE sku = ? AND quantity + ? >= 0
	`, qtyDelta, sku, qtyDelta)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var variantCount int64
		err = r.db.WithContext(ctx).Model(&VariantDTO{}).
			Where("sku = ?", sku).
			Count(&variantCount).Error
		if err != nil {
			return err
		}
		if variantCount > 0 {
			return errs.NewInsufficientStockErrorWithCause("quantity",
				errors.New("stock cannot go below zero"))
		}

		// A product row may still carry this sku with the wrong kind, for
		// example hand-edited data marking a root-sku row as variant. That is
		// a data-integrity fault, not a missing product.
		var mismatchCount int64
		err = r.db.WithContext(ctx).Model(&ProductDTO{}).
			Where("sku = ?", sku).
			Count(&mismatchCount).Error
		if err != nil {
			return err
		}
		if mismatchCount > 0 {
			return errs.NewStateMismatchErrorWithCause("sku",
				errors.New("type/sku mismatch"))
		}

		return errs.NewObjectNotFoundError("sku", sku)
	}

	return r.db.WithContext(ctx).Exec(`
		UPDATE products
		SET total_sold = total_sold + ?,
		    version = version + 1
		WHERE id = (SELECT product_id FROM product_variants WHERE sku = ?)
	`, soldDelta, sku).Error
}
