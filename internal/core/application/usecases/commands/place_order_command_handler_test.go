package commands_test

import (
	"errors"
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func catalogProduct(t *testing.T) *product.Product {
	t.Helper()
	p, err := product.NewSimpleProduct(kernel.NewUUID(), "Black Tee", "TS-BLK", 50)
	require.NoError(t, err)
	return p
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := validPlaceOrderCommand(t)

	counters := new(MockCounterRepository)
	counters.On("Next", ctx, commands.OrderNumberCounter).Return(int64(7), nil).Once()

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetBySKU", mock.Anything, "TS-BLK").Return(catalogProduct(t), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
			return o.OrderNumber() == "ORD-07-01711112222" &&
				o.ProductName() == "Black Tee" &&
				o.Status() == order.Processing
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(counters, factory, "ORD")
	placed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	// The placed order comes back so callers can render it directly.
	require.NotNil(t, placed)
	assert.Equal(t, "ORD-07-01711112222", placed.OrderNumber())
	assert.Equal(t, "Black Tee", placed.ProductName())
	assert.Equal(t, order.Processing, placed.Status())
	assert.Len(t, placed.History(), 1)

	counters.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PlaceOrderCommand{} // not constructed properly

	h := commands.NewPlaceOrderCommandHandler(new(MockCounterRepository), new(MockUoWFactory), "ORD")
	placed, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Nil(t, placed)
}

func TestPlaceOrderCommandHandler_Handle_CounterError(t *testing.T) {
	ctx := t.Context()
	cmd := validPlaceOrderCommand(t)

	counters := new(MockCounterRepository)
	counters.On("Next", ctx, commands.OrderNumberCounter).
		Return(int64(0), errors.New("counter error")).Once()

	h := commands.NewPlaceOrderCommandHandler(counters, new(MockUoWFactory), "ORD")
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	counters.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_UnknownSKU(t *testing.T) {
	ctx := t.Context()
	cmd := validPlaceOrderCommand(t)

	counters := new(MockCounterRepository)
	counters.On("Next", ctx, commands.OrderNumberCounter).Return(int64(8), nil).Once()

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetBySKU", mock.Anything, "TS-BLK").
			Return(nil, errors.New("not found")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(counters, factory, "ORD")
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := validPlaceOrderCommand(t)

	counters := new(MockCounterRepository)
	counters.On("Next", ctx, commands.OrderNumberCounter).Return(int64(9), nil).Once()

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetBySKU", mock.Anything, "TS-BLK").Return(catalogProduct(t), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(counters, factory, "ORD")
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
