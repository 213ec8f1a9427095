package order

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrHistoryIsRequired is returned when restoring an order without history:
	// the history is never empty after creation.
	ErrHistoryIsRequired = errs.NewValueIsRequiredError("statusHistory")
)

// initialHistoryNote is recorded as the first history entry of every new order.
const initialHistoryNote = "Order placed"

// FormatOrderNumber derives the human-readable order number from a fixed
// prefix, the zero-padded sequence value, and the customer's contact
// identifier. The sequence keeps the number unique by construction; it is
// assigned exactly once, at creation, and never recomputed.
func FormatOrderNumber(prefix string, seq int64, contact string) string {
	return fmt.Sprintf("%s-%02d-%s", prefix, seq, contact)
}

// InventoryEffect describes the one-time stock/sold delta an order transition
// requires. QuantityDelta is negative and SoldDelta positive when the order is
// confirmed sold; both signs invert when a counted sale is reversed.
type InventoryEffect struct {
	SKU           string
	QuantityDelta int
	SoldDelta     int
}

// Order is the aggregate root for a customer order. It owns the order number,
// the line item, the lifecycle status, and the append-only status history.
//
// Invariants:
//   - the order number is assigned exactly once, at creation
//   - the history is never empty after creation and only ever grows
//   - the status and history change only through TransitionTo
//   - orders are never deleted (financial/audit record)
type Order struct {
	id            kernel.UUID
	orderNumber   string
	customerName  string
	mobile        string
	address       string
	sku           string
	productName   string
	size          string
	qty           int
	unitPrice     decimal.Decimal
	total         decimal.Decimal
	paymentMethod string
	note          string
	status        Status
	history       []HistoryEntry
	read          bool
	version       int64
	createdAt     time.Time
	updatedAt     time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an order in Processing status with a single history entry
// mirroring it. The total is computed from unit price and quantity.
//
// All required fields are validated; errors are joined so the caller sees
// every violation at once.
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	customerName string,
	mobile string,
	address string,
	sku string,
	productName string,
	size string,
	qty int,
	unitPrice decimal.Decimal,
	paymentMethod string,
	note string,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setCustomerName(customerName),
		o.setMobile(mobile),
		o.setAddress(address),
		o.setSKU(sku),
		o.setProductName(productName),
		o.setQty(qty),
		o.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	o.size = size
	o.paymentMethod = paymentMethod
	o.note = note
	o.total = unitPrice.Mul(decimal.NewFromInt(int64(qty)))
	o.status = Processing

	entry, err := NewHistoryEntry(Processing, initialHistoryNote)
	if err != nil {
		return nil, err
	}
	o.history = []HistoryEntry{entry}

	now := time.Now().UTC()
	o.createdAt = now
	o.updatedAt = now

	return o, nil
}

// RestoreOrder reconstructs an order aggregate from persistence, including its
// status history and optimistic-concurrency version.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	customerName string,
	mobile string,
	address string,
	sku string,
	productName string,
	size string,
	qty int,
	unitPrice decimal.Decimal,
	total decimal.Decimal,
	paymentMethod string,
	note string,
	status Status,
	history []HistoryEntry,
	read bool,
	version int64,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setCustomerName(customerName),
		o.setMobile(mobile),
		o.setAddress(address),
		o.setSKU(sku),
		o.setProductName(productName),
		o.setQty(qty),
		o.setUnitPrice(unitPrice),
		o.setStatus(status),
		o.setHistory(history),
	); err != nil {
		return nil, err
	}

	o.size = size
	o.total = total
	o.paymentMethod = paymentMethod
	o.note = note
	o.read = read
	o.version = version
	o.createdAt = createdAt
	o.updatedAt = updatedAt

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// TransitionTo moves the order into newStatus, appends exactly one history
// entry, and reports the inventory delta the transition requires. A nil
// effect means the transition is neutral for inventory.
//
// The delta is returned rather than applied so the caller can persist the
// order update and the product update as one unit of work: the status must
// not change while inventory state diverges.
func (o *Order) TransitionTo(newStatus Status, note string) (*InventoryEffect, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := newStatus.Validate(); err != nil {
		return nil, err
	}

	var effect *InventoryEffect
	if o.status.TriggersReconciliation(newStatus) {
		stockChange := -o.qty
		if newStatus.Classification() == ClassSaleReversing {
			stockChange = o.qty
		}
		effect = &InventoryEffect{
			SKU:           o.sku,
			QuantityDelta: stockChange,
			SoldDelta:     -stockChange,
		}
	}

	entry, err := NewHistoryEntry(newStatus, note)
	if err != nil {
		return nil, err
	}

	o.status = newStatus
	o.history = append(o.history, entry)
	if newStatus != Processing {
		// Staff acknowledgement: anything past the initial state has been seen.
		o.read = true
	}
	o.updatedAt = time.Now().UTC()

	return effect, nil
}

// MarkRead flags the order as acknowledged by staff.
func (o *Order) MarkRead() {
	o.read = true
	o.updatedAt = time.Now().UTC()
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the immutable human-readable order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// CustomerName returns the customer's name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Mobile returns the customer's contact number.
func (o *Order) Mobile() string {
	return o.mobile
}

// Address returns the shipping address.
func (o *Order) Address() string {
	return o.address
}

// SKU returns the stock-keeping unit the order was placed against.
func (o *Order) SKU() string {
	return o.sku
}

// ProductName returns the display name of the ordered product.
func (o *Order) ProductName() string {
	return o.productName
}

// Size returns the variant selector, empty for simple products.
func (o *Order) Size() string {
	return o.size
}

// Qty returns the ordered quantity.
func (o *Order) Qty() int {
	return o.qty
}

// UnitPrice returns the price per unit.
func (o *Order) UnitPrice() decimal.Decimal {
	return o.unitPrice
}

// Total returns the computed order total.
func (o *Order) Total() decimal.Decimal {
	return o.total
}

// PaymentMethod returns the chosen payment method.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// Note returns the free-text note attached at placement.
func (o *Order) Note() string {
	return o.note
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// History returns the append-only status history, oldest first.
func (o *Order) History() []HistoryEntry {
	return o.history
}

// Read reports whether staff acknowledged the order.
func (o *Order) Read() bool {
	return o.read
}

// Version returns the optimistic-concurrency version loaded from storage.
func (o *Order) Version() int64 {
	return o.version
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = customerName
	return nil
}

func (o *Order) setMobile(mobile string) error {
	if mobile == "" {
		return errs.NewValueIsRequiredError("mobile")
	}
	o.mobile = mobile
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

func (o *Order) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	o.sku = sku
	return nil
}

func (o *Order) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	o.productName = productName
	return nil
}

func (o *Order) setQty(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	o.qty = qty
	return nil
}

func (o *Order) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%s is negative", unitPrice))
	}
	o.unitPrice = unitPrice
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setHistory(history []HistoryEntry) error {
	if len(history) == 0 {
		return ErrHistoryIsRequired
	}
	for _, entry := range history {
		if err := entry.Validate(); err != nil {
			return err
		}
	}
	o.history = history
	return nil
}
