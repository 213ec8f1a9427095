package product

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrVariantIsNotConstructed is returned when a Variant was not created through
// NewVariant or RestoreVariant.
var ErrVariantIsNotConstructed = errors.New("Variant must be created via NewVariant or RestoreVariant")

// Variant is a sub-record of a variant-kind product. Each variant owns its own
// sku and on-hand stock; the cumulative sold counter stays on the parent.
type Variant struct {
	id       kernel.UUID
	sku      string
	size     string
	quantity int
}

// NewVariant creates a variant sub-record with a fresh identifier.
func NewVariant(sku, size string, quantity int) (*Variant, error) {
	return RestoreVariant(kernel.NewUUID(), sku, size, quantity)
}

// RestoreVariant reconstructs a variant from persistence.
func RestoreVariant(id kernel.UUID, sku, size string, quantity int) (*Variant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if sku == "" {
		return nil, errs.NewValueIsRequiredError("sku")
	}
	if quantity < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}

	return &Variant{
		id:       id,
		sku:      sku,
		size:     size,
		quantity: quantity,
	}, nil
}

// ID returns the variant's unique identifier.
func (v *Variant) ID() kernel.UUID {
	return v.id
}

// SKU returns the variant's stock-keeping unit.
func (v *Variant) SKU() string {
	return v.sku
}

// Size returns the variant selector shown to customers.
func (v *Variant) Size() string {
	return v.size
}

// Quantity returns the variant's on-hand stock.
func (v *Variant) Quantity() int {
	return v.quantity
}

// Validate ensures the variant was built through a constructor.
func (v *Variant) Validate() error {
	if v == nil || v.id.Validate() != nil {
		return ErrVariantIsNotConstructed
	}
	return nil
}

// applyQuantityDelta adjusts the variant stock, rejecting a result below zero.
func (v *Variant) applyQuantityDelta(delta int) error {
	next := v.quantity + delta
	if next < 0 {
		return errs.NewInsufficientStockErrorWithCause("quantity",
			fmt.Errorf("stock for sku %s would drop to %d", v.sku, next))
	}
	v.quantity = next
	return nil
}
