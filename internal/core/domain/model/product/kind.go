package product

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Kind discriminates the two product shapes. A simple product carries its own
// sku and stock; a variant product delegates sku and stock to its variants and
// keeps only the cumulative sold counter at the parent level.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	KindUnknown Kind = iota

	// KindSimple is a product with a single sku and its own stock.
	KindSimple

	// KindVariant is a product whose stock lives in per-variant sub-records.
	KindVariant
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown: "unknown",
		KindSimple:  "simple",
		KindVariant: "variant",
	}
}

// KindFromString parses a kind as stored in the catalog.
func KindFromString(s string) (Kind, error) {
	switch s {
	case "simple":
		return KindSimple, nil
	case "variant":
		return KindVariant, nil
	default:
		return KindUnknown, errs.NewValueIsInvalidErrorWithCause(
			"kind", fmt.Errorf("%q is not a valid product kind", s))
	}
}

// Validate checks that the Kind is one of the two defined shapes.
func (k Kind) Validate() error {
	if k != KindSimple && k != KindVariant {
		return errs.NewValueIsInvalidErrorWithCause(
			"kind", fmt.Errorf("%d is not a valid product kind", k))
	}
	return nil
}

// String returns the stored name of the kind.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}
