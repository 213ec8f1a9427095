package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetOrderStatusQueryIsNotConstructed = errors.New(
	"GetOrderStatusQuery must be created via NewGetOrderStatusQuery constructor",
)

// GetOrderStatusQuery retrieves the current status of one order together
// with its full status history, oldest entry first.
type GetOrderStatusQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderStatusQuery creates a query for a single order's status trail.
// Validates that the order ID is valid.
func NewGetOrderStatusQuery(orderID kernel.UUID) (GetOrderStatusQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderStatusQuery{}, err
	}

	return GetOrderStatusQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderStatusQueryIsNotConstructed if validation fails.
func (q GetOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusQueryIsNotConstructed)
}

// OrderID returns the identifier of the queried order.
func (q GetOrderStatusQuery) OrderID() kernel.UUID {
	return q.orderID
}

// HistoryItem is a single entry of the status trail projection.
type HistoryItem struct {
	Status    string
	Note      string
	ChangedAt time.Time
}

// GetOrderStatusQueryResponse is the status projection of one order.
type GetOrderStatusQueryResponse struct {
	OrderNumber string
	Status      string
	History     []HistoryItem
}
