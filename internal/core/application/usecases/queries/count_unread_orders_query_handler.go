package queries

import (
	"context"

	"gorm.io/gorm"
)

// CountUnreadOrdersQueryHandler counts unread orders for operator dashboards.
type CountUnreadOrdersQueryHandler struct {
	db *gorm.DB
}

// NewCountUnreadOrdersQueryHandler creates a handler for unread order counts.
// Requires a GORM database connection for query execution.
func NewCountUnreadOrdersQueryHandler(db *gorm.DB) CountUnreadOrdersQueryHandler {
	return CountUnreadOrdersQueryHandler{db: db}
}

// Handle executes the count query.
func (h CountUnreadOrdersQueryHandler) Handle(
	ctx context.Context,
	query CountUnreadOrdersQuery,
) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM orders WHERE read = FALSE`).
		Scan(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
