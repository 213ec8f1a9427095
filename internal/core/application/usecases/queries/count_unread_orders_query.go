package queries

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var ErrCountUnreadOrdersQueryIsNotConstructed = errors.New(
	"CountUnreadOrdersQuery must be created via NewCountUnreadOrdersQuery constructor",
)

// CountUnreadOrdersQuery counts orders that no operator has looked at yet.
// An order counts as unread until its first status transition away from
// "processing" or an explicit mark-read.
type CountUnreadOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewCountUnreadOrdersQuery creates a query for the unread order count.
// This is a parameterless query.
func NewCountUnreadOrdersQuery() CountUnreadOrdersQuery {
	return CountUnreadOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrCountUnreadOrdersQueryIsNotConstructed if validation fails.
func (q CountUnreadOrdersQuery) Validate() error {
	return q.guard.Validate(ErrCountUnreadOrdersQueryIsNotConstructed)
}
