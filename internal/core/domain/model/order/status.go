package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// Fulfillment flow:
//
//	Processing ──> Confirmed ──> Shipped ──> Delivered
//	     │              │
//	     ├──> Hold ─────┘
//	     └──> Cancelled / Failed / Return
//
// Staff may move an order between any two valid states (terminal states can be
// edited afterwards for corrections), but inventory reconciliation fires only
// on transitions that change the sale classification — see TriggersReconciliation.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Processing is the initial status assigned when an order is placed.
	Processing

	// Confirmed indicates staff accepted the order for fulfillment.
	Confirmed

	// Shipped indicates the order left the warehouse. Counts as a sale.
	Shipped

	// Delivered indicates the order reached the customer. Counts as a sale.
	Delivered

	// Cancelled indicates the order was abandoned before it counted as a sale.
	Cancelled

	// Hold indicates fulfillment is paused pending clarification.
	Hold

	// Failed indicates the delivery attempt failed. Reverses a counted sale.
	Failed

	// Return indicates the customer returned the goods. Reverses a counted sale.
	Return
)

// Classification buckets statuses by their effect on inventory.
type Classification int

const (
	// ClassNeutral statuses leave stock and sold counters untouched.
	ClassNeutral Classification = iota

	// ClassSaleConfirming statuses count the order as sold:
	// stock decreases, the sold counter increases.
	ClassSaleConfirming

	// ClassSaleReversing statuses undo a counted sale:
	// stock is restored, the sold counter decreases.
	ClassSaleReversing
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Processing: "Processing",
		Confirmed:  "Confirmed",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
		Hold:       "Hold",
		Failed:     "Failed",
		Return:     "Return",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Processing: "Processing",
		Confirmed:  "Confirmed",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
		Hold:       "Hold",
		Failed:     "Failed",
		Return:     "Return",
	}
}

// StatusFromString parses a status name as received from callers.
// Returns an error for unknown names, including "Unknown" itself.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Safe to call on any value; invalid values render as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Classification returns the inventory effect bucket of the status.
func (s Status) Classification() Classification {
	switch s {
	case Delivered, Shipped:
		return ClassSaleConfirming
	case Return, Failed:
		return ClassSaleReversing
	default:
		return ClassNeutral
	}
}

// TriggersReconciliation reports whether moving from s to next must apply an
// inventory delta. The trigger is the transition edge, not the destination
// state alone: a transition into a status of the same classification that is
// already in effect (Shipped -> Delivered, or Failed -> Return) must not apply
// the delta a second time.
func (s Status) TriggersReconciliation(next Status) bool {
	if s == next {
		return false
	}
	if next.Classification() == ClassNeutral {
		return false
	}
	return s.Classification() != next.Classification()
}
