// Package queries contains read-only operations for the storefront.
// Implements the Query side of CQRS: handlers read projections straight from
// the database and never load domain aggregates.
package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	// MaxPageSize caps the number of orders returned per page.
	MaxPageSize = 100

	// DefaultPageSize is used when callers do not request a specific limit.
	DefaultPageSize = 20
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
	ErrPageIsInvalid  = errors.New("page must be greater than 0")
	ErrLimitIsInvalid = errors.New("limit must be between 1 and 100")
)

// ListOrdersQuery retrieves a page of orders, newest first.
// Supports an optional case-insensitive search across customer name, mobile,
// product name and sku, and an optional status filter.
//
// Example:
//
//	query, err := NewListOrdersQuery(1, 20, "01711", order.Processing)
//	if err != nil {
//	    return err
//	}
//
//	page, err := handler.Handle(ctx, query)
//	fmt.Printf("showing %d of %d orders\n", len(page.Items), page.Total)
type ListOrdersQuery struct {
	page   int
	limit  int
	search string
	status order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for a page of orders.
// Page is 1-based; limit is capped at MaxPageSize. Pass order.Unknown
// as status to skip the status filter; search may be empty.
func NewListOrdersQuery(page, limit int, search string, status order.Status) (ListOrdersQuery, error) {
	if page < 1 {
		return ListOrdersQuery{}, ErrPageIsInvalid
	}
	if limit < 1 || limit > MaxPageSize {
		return ListOrdersQuery{}, ErrLimitIsInvalid
	}
	if status != order.Unknown {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	return ListOrdersQuery{
		page:   page,
		limit:  limit,
		search: search,
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Page returns the requested 1-based page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// Limit returns the requested page size.
func (q ListOrdersQuery) Limit() int {
	return q.limit
}

// Search returns the free-text search term, empty when unfiltered.
func (q ListOrdersQuery) Search() string {
	return q.search
}

// Status returns the status filter, order.Unknown when unfiltered.
func (q ListOrdersQuery) Status() order.Status {
	return q.status
}

// OrderSummary is a single row of the order list projection.
type OrderSummary struct {
	ID            kernel.UUID
	OrderNumber   string
	CustomerName  string
	Mobile        string
	Address       string
	SKU           string
	ProductName   string
	Size          string
	Qty           int
	UnitPrice     decimal.Decimal
	Total         decimal.Decimal
	PaymentMethod string
	Note          string
	Status        string
	Read          bool
	CreatedAt     time.Time
}

// ListOrdersQueryResponse is one page of the order list with paging metadata.
// Pages is the total page count for the current filter and limit.
type ListOrdersQueryResponse struct {
	Items []OrderSummary
	Total int64
	Page  int
	Pages int
}
