package product

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// Domain errors for product operations.
var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through one of the constructors.
	ErrProductIsNotConstructed = errors.New(
		"Product must be created via NewSimpleProduct, NewVariantProduct, or RestoreProduct")
)

// Product is the catalog aggregate targeted by inventory reconciliation.
// Its shape is discriminated by Kind:
//
//   - KindSimple: the product itself carries sku, quantity, and totalSold.
//   - KindVariant: stock lives on the Variant sub-records; totalSold stays on
//     the parent and is shared by all variants.
//
// Every sku that ever appears on an order must resolve to exactly one product,
// either through the root sku or through one variant sub-record. Reconciliation
// must never drive any quantity below zero; that guard lives here, in the
// domain, not only in the store.
type Product struct {
	id        kernel.UUID
	kind      Kind
	name      string
	sku       string
	quantity  int
	totalSold int
	variants  []*Variant
	version   int64

	guard guard.ConstructorGuard
}

// NewSimpleProduct creates a simple-kind product with its own sku and stock.
func NewSimpleProduct(id kernel.UUID, name, sku string, quantity int) (*Product, error) {
	p := &Product{
		kind:  KindSimple,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
	); err != nil {
		return nil, err
	}

	if sku == "" {
		return nil, errs.NewValueIsRequiredError("sku")
	}
	if quantity < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}

	p.sku = sku
	p.quantity = quantity
	return p, nil
}

// NewVariantProduct creates a variant-kind product. At least one variant is
// required and variant skus must not repeat within the product.
func NewVariantProduct(id kernel.UUID, name string, variants []*Variant) (*Product, error) {
	p := &Product{
		kind:  KindVariant,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setVariants(variants),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a product aggregate of either kind from
// persistence, including its optimistic-concurrency version.
func RestoreProduct(
	id kernel.UUID,
	kind Kind,
	name string,
	sku string,
	quantity int,
	totalSold int,
	variants []*Variant,
	version int64,
) (*Product, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	p := &Product{
		kind:  kind,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
	); err != nil {
		return nil, err
	}

	switch kind {
	case KindSimple:
		if sku == "" {
			return nil, errs.NewValueIsRequiredError("sku")
		}
		p.sku = sku
		p.quantity = quantity
	case KindVariant:
		if err := p.setVariants(variants); err != nil {
			return nil, err
		}
	}

	p.totalSold = totalSold
	p.version = version
	return p, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// HasSKU reports whether the target sku resolves to this product, either
// through the root sku or through one of the variant sub-records.
func (p *Product) HasSKU(sku string) bool {
	if p.kind == KindSimple {
		return p.sku == sku
	}
	for _, v := range p.variants {
		if v.SKU() == sku {
			return true
		}
	}
	return false
}

// ApplyDelta applies a signed stock/sold delta for the target sku.
//
// For a simple product the root sku must match; quantity and totalSold move
// together. For a variant product the matching variant's quantity moves and
// the shared parent-level totalSold absorbs the sold delta; sibling variants
// are untouched. Any kind/sku combination that matches neither pattern is a
// data-integrity fault reported as a StateMismatchError; a delta that would
// drive a quantity below zero is an InsufficientStockError instead, since the
// ledger itself is consistent and the delta may succeed later.
func (p *Product) ApplyDelta(sku string, qtyDelta, soldDelta int) error {
	if err := p.Validate(); err != nil {
		return err
	}

	switch p.kind {
	case KindSimple:
		if p.sku != sku {
			return errs.NewStateMismatchErrorWithCause("sku",
				fmt.Errorf("type/sku mismatch: simple product %s does not carry sku %s", p.id, sku))
		}
		next := p.quantity + qtyDelta
		if next < 0 {
			return errs.NewInsufficientStockErrorWithCause("quantity",
				fmt.Errorf("stock for sku %s would drop to %d", sku, next))
		}
		p.quantity = next
		p.totalSold += soldDelta
		return nil

	case KindVariant:
		for _, v := range p.variants {
			if v.SKU() != sku {
				continue
			}
			if err := v.applyQuantityDelta(qtyDelta); err != nil {
				return err
			}
			p.totalSold += soldDelta
			return nil
		}
		return errs.NewStateMismatchErrorWithCause("sku",
			fmt.Errorf("type/sku mismatch: variant product %s has no variant with sku %s", p.id, sku))

	default:
		return errs.NewStateMismatchErrorWithCause("kind",
			fmt.Errorf("product %s has undefined kind %d", p.id, p.kind))
	}
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Kind returns the shape discriminator.
func (p *Product) Kind() Kind {
	return p.kind
}

// Name returns the catalog display name.
func (p *Product) Name() string {
	return p.name
}

// SKU returns the root sku. Empty for variant-kind products.
func (p *Product) SKU() string {
	return p.sku
}

// Quantity returns the on-hand stock of a simple product.
// Always zero for variant-kind products; use Variants instead.
func (p *Product) Quantity() int {
	return p.quantity
}

// TotalSold returns the cumulative units sold. For variant-kind products the
// counter is shared across all variants.
func (p *Product) TotalSold() int {
	return p.totalSold
}

// Variants returns the sub-records of a variant-kind product.
func (p *Product) Variants() []*Variant {
	return p.variants
}

// Version returns the optimistic-concurrency version loaded from storage.
func (p *Product) Version() int64 {
	return p.version
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setVariants(variants []*Variant) error {
	if len(variants) == 0 {
		return errs.NewValueIsRequiredError("variants")
	}

	seen := make(map[string]struct{}, len(variants))
	for _, v := range variants {
		if err := v.Validate(); err != nil {
			return err
		}
		if _, ok := seen[v.SKU()]; ok {
			return errs.NewValueIsInvalidErrorWithCause("variants",
				fmt.Errorf("duplicate variant sku %s", v.SKU()))
		}
		seen[v.SKU()] = struct{}{}
	}

	p.variants = variants
	return nil
}
