package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

// OrderNumberCounter is the named sequence that backs order numbering.
const OrderNumberCounter = "order_number"

// PlaceOrderCommandHandler handles the business logic for order placement.
// Mints a unique order number from the durable counter, snapshots the
// product name from the catalog and creates the order in "processing" status.
//
// The counter increment runs on its own connection before the order
// transaction. A failure after the increment leaves a gap in the sequence,
// which is accepted; order numbers are never reused.
type PlaceOrderCommandHandler struct {
	counterRepo       ports.CounterRepository
	uowFactory        UoWFactory
	orderNumberPrefix string
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires a CounterRepository for numbering, a UoWFactory for transactional
// persistence and the configured order number prefix.
func NewPlaceOrderCommandHandler(
	counterRepo ports.CounterRepository,
	uowFactory UoWFactory,
	orderNumberPrefix string,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		counterRepo:       counterRepo,
		uowFactory:        uowFactory,
		orderNumberPrefix: orderNumberPrefix,
	}
}

// Handle processes the order placement command.
// Resolves the ordered sku against the catalog, mints the order number and
// persists the order with its initial history entry in one transaction.
// Placement never moves inventory: stock changes only on later status
// transitions. Returns the placed order so callers can render it.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	seq, err := h.counterRepo.Next(ctx, OrderNumberCounter)
	if err != nil {
		return nil, err
	}

	orderNumber := order.FormatOrderNumber(h.orderNumberPrefix, seq, cmd.Mobile())

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	product, err := uow.ProductRepository().GetBySKU(ctx, cmd.SKU())
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		orderNumber,
		cmd.CustomerName(),
		cmd.Mobile(),
		cmd.Address(),
		cmd.SKU(),
		product.Name(),
		cmd.Size(),
		cmd.Quantity(),
		cmd.UnitPrice(),
		cmd.PaymentMethod(),
		cmd.Note(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
