package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionOrderCommand represents a request to move an order to a new
// lifecycle status, with an optional note recorded in the history trail.
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	newStatus order.Status
	note      string

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a command to change an order's status.
// Validates that the order ID and the destination status are valid.
// The note is optional.
func NewTransitionOrderCommand(
	orderID kernel.UUID,
	newStatus order.Status,
	note string,
) (TransitionOrderCommand, error) {
	transitionCommand := TransitionOrderCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		transitionCommand.setOrderID(orderID),
		transitionCommand.setNewStatus(newStatus),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return transitionCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionOrderCommandIsNotConstructed if validation fails.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NewStatus returns the destination status.
func (c TransitionOrderCommand) NewStatus() order.Status {
	return c.newStatus
}

// Note returns the optional note for the history entry.
func (c TransitionOrderCommand) Note() string {
	return c.note
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}
