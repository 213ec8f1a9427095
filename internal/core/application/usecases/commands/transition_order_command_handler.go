package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// TransitionOrderCommandHandler handles order lifecycle transitions.
// Loads the order, lets the aggregate decide the inventory effect of the
// status edge and persists both changes in one transaction: a confirmed sale
// and its stock decrement commit together or not at all.
//
// A lost optimistic-lock race surfaces errs.ErrConcurrentUpdate; callers
// are expected to retry the whole command against fresh state.
type TransitionOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewTransitionOrderCommandHandler creates a handler for status transitions.
// Requires a UoWFactory spanning order and product repositories.
func NewTransitionOrderCommandHandler(uowFactory UoWFactory) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition command.
// Same-status transitions still append a history entry but move no stock.
// Returns the updated order so callers can observe the post-transition state
// without a second read.
func (h *TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	effect, err := aggregate.TransitionTo(cmd.NewStatus(), cmd.Note())
	if err != nil {
		return nil, err
	}

	if effect != nil {
		err = uow.ProductRepository().ApplyDelta(ctx, effect.SKU, effect.QuantityDelta, effect.SoldDelta)
		if err != nil {
			return nil, err
		}
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
