package queries

import (
	"context"
	"database/sql"
	"errors"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderStatusQueryHandler reads the status trail of a single order.
// Returns the order number, current status and the complete history in
// chronological order.
type GetOrderStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatusQueryHandler creates a handler for order status queries.
// Requires a GORM database connection for query execution.
func NewGetOrderStatusQueryHandler(db *gorm.DB) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{db: db}
}

// Handle executes the query for one order's status trail.
// Returns errs.ErrObjectNotFound when the order does not exist.
func (h GetOrderStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusQuery,
) (GetOrderStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	var response GetOrderStatusQueryResponse
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT order_number, status
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(&response.OrderNumber, &status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderStatusQueryResponse{},
				errs.NewObjectNotFoundError("orderID", query.OrderID().String())
		}
		return GetOrderStatusQueryResponse{}, err
	}
	response.Status = order.Status(status).String()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, note, changed_at
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY changed_at, id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}
	defer rows.Close()

	response.History = make([]HistoryItem, 0)

	for rows.Next() {
		var item HistoryItem
		var itemStatus int

		if err = rows.Scan(&itemStatus, &item.Note, &item.ChangedAt); err != nil {
			return GetOrderStatusQueryResponse{}, err
		}
		item.Status = order.Status(itemStatus).String()

		response.History = append(response.History, item)
	}

	if err = rows.Err(); err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	return response, nil
}
