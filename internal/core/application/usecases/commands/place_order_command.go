package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrCustomerNameIsRequired  = errors.New("customer name is required")
	ErrMobileIsRequired        = errors.New("mobile is required")
	ErrAddressIsRequired       = errors.New("address is required")
	ErrSKUIsRequired           = errors.New("sku is required")
	ErrPaymentMethodIsRequired = errors.New("payment method is required")
	ErrQuantityIsInvalid       = errors.New("quantity must be greater than 0")
	ErrUnitPriceIsInvalid      = errors.New("unit price must not be negative")
)

// PlaceOrderCommand represents a request to place a new customer order.
// Encapsulates the customer contact details and the ordered line: sku,
// optional size for variant products, quantity and unit price.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewPlaceOrderCommand(
//	    orderID, "Anna Kovacs", "01711112222", "12 Rose Lane",
//	    "TS-BLK", "M", 2, decimal.NewFromInt(450), "cod", "")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerName  string
	mobile        string
	address       string
	sku           string
	size          string
	quantity      int
	unitPrice     decimal.Decimal
	paymentMethod string
	note          string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates that the order ID is valid, contact fields and sku are not
// empty, quantity is positive and unit price is not negative.
// Size and note are optional.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	customerName string,
	mobile string,
	address string,
	sku string,
	size string,
	quantity int,
	unitPrice decimal.Decimal,
	paymentMethod string,
	note string,
) (PlaceOrderCommand, error) {
	placeCommand := PlaceOrderCommand{
		size:  size,
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		placeCommand.setOrderID(orderID),
		placeCommand.setCustomerName(customerName),
		placeCommand.setMobile(mobile),
		placeCommand.setAddress(address),
		placeCommand.setSKU(sku),
		placeCommand.setQuantity(quantity),
		placeCommand.setUnitPrice(unitPrice),
		placeCommand.setPaymentMethod(paymentMethod),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return placeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerName returns the name of the ordering customer.
func (c PlaceOrderCommand) CustomerName() string {
	return c.customerName
}

// Mobile returns the customer's contact number.
func (c PlaceOrderCommand) Mobile() string {
	return c.mobile
}

// Address returns the delivery address.
func (c PlaceOrderCommand) Address() string {
	return c.address
}

// SKU returns the ordered stock keeping unit.
func (c PlaceOrderCommand) SKU() string {
	return c.sku
}

// Size returns the ordered variant size, empty for simple products.
func (c PlaceOrderCommand) Size() string {
	return c.size
}

// Quantity returns the number of ordered units.
func (c PlaceOrderCommand) Quantity() int {
	return c.quantity
}

// UnitPrice returns the price of a single unit.
func (c PlaceOrderCommand) UnitPrice() decimal.Decimal {
	return c.unitPrice
}

// PaymentMethod returns the customer's chosen payment method.
func (c PlaceOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

// Note returns the optional free-form note attached at placement.
func (c PlaceOrderCommand) Note() string {
	return c.note
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = customerName
	return nil
}

func (c *PlaceOrderCommand) setMobile(mobile string) error {
	if mobile == "" {
		return ErrMobileIsRequired
	}

	c.mobile = mobile
	return nil
}

func (c *PlaceOrderCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *PlaceOrderCommand) setSKU(sku string) error {
	if sku == "" {
		return ErrSKUIsRequired
	}

	c.sku = sku
	return nil
}

func (c *PlaceOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *PlaceOrderCommand) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return ErrUnitPriceIsInvalid
	}

	c.unitPrice = unitPrice
	return nil
}

func (c *PlaceOrderCommand) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return ErrPaymentMethodIsRequired
	}

	c.paymentMethod = paymentMethod
	return nil
}
