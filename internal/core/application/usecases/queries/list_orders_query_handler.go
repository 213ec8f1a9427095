package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads the order list projection from the database.
// Bypasses the domain model entirely: rows are scanned straight into
// summaries, newest orders first.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query and returns one page of orders with paging
// metadata. The search term matches customer name, mobile, product name and
// sku case-insensitively; the status filter is exact.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	where := "1=1"
	args := make([]any, 0, 5)

	if query.Search() != "" {
		where += ` AND (customer_name ILIKE ? OR mobile ILIKE ? OR product_name ILIKE ? OR sku ILIKE ?)`
		pattern := "%" + query.Search() + "%"
		args = append(args, pattern, pattern, pattern, pattern)
	}

	if query.Status() != order.Unknown {
		where += " AND status = ?"
		args = append(args, int(query.Status()))
	}

	var total int64
	err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders WHERE "+where, args...).
		Scan(&total).Error
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.Limit()
	pageArgs := append(args, query.Limit(), offset)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			customer_name,
			mobile,
			address,
			sku,
			product_name,
			size,
			qty,
			unit_price,
			total,
			payment_method,
			note,
			status,
			read,
			created_at
		FROM orders
		WHERE `+where+`
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?
	`, pageArgs...).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	items := make([]OrderSummary, 0, query.Limit())

	for rows.Next() {
		var summary OrderSummary
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&summary.OrderNumber,
			&summary.CustomerName,
			&summary.Mobile,
			&summary.Address,
			&summary.SKU,
			&summary.ProductName,
			&summary.Size,
			&summary.Qty,
			&summary.UnitPrice,
			&summary.Total,
			&summary.PaymentMethod,
			&summary.Note,
			&status,
			&summary.Read,
			&summary.CreatedAt,
		)
		if err != nil {
			return ListOrdersQueryResponse{}, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return ListOrdersQueryResponse{}, idErr
		}
		summary.ID = orderID
		summary.Status = order.Status(status).String()

		items = append(items, summary)
	}

	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	pages := int((total + int64(query.Limit()) - 1) / int64(query.Limit()))

	return ListOrdersQueryResponse{
		Items: items,
		Total: total,
		Page:  query.Page(),
		Pages: pages,
	}, nil
}
