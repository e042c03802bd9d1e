// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"applemart/internal/core/domain/model/order"
	"applemart/internal/pkg/errs"
	"applemart/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// SortOrder selects how the order list is sorted by order date.
type SortOrder int

const (
	// SortNewestFirst sorts descending by order date.
	SortNewestFirst SortOrder = iota

	// SortOldestFirst sorts ascending by order date.
	SortOldestFirst
)

// GetOrdersQuery retrieves the session's order list with optional filtering.
// Supports a status filter, a free-text search over order identifier and
// status name, and date sorting.
//
// Example:
//
//	status := order.Pending
//	query, err := NewGetOrdersQuery(&status, "", SortNewestFirst)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrdersQueryHandler(store)
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	statusFilter *order.Status
	search       string
	sortOrder    SortOrder

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query over the order list.
// The status filter is optional; when present it must be a valid status.
func NewGetOrdersQuery(statusFilter *order.Status, search string, sortOrder SortOrder) (GetOrdersQuery, error) {
	if statusFilter != nil {
		if err := statusFilter.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}
	if sortOrder != SortNewestFirst && sortOrder != SortOldestFirst {
		return GetOrdersQuery{}, errs.NewValueIsInvalidError("sortOrder")
	}

	return GetOrdersQuery{
		statusFilter: statusFilter,
		search:       search,
		sortOrder:    sortOrder,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// StatusFilter returns the optional status filter.
func (q GetOrdersQuery) StatusFilter() *order.Status {
	return q.statusFilter
}

// Search returns the free-text search term.
func (q GetOrdersQuery) Search() string {
	return q.search
}

// Sort returns the requested sort order.
func (q GetOrdersQuery) Sort() SortOrder {
	return q.sortOrder
}

// GetOrdersQueryResponse represents one order in the list read model,
// together with the transitions an operator may request from its current
// status (empty for terminal statuses).
type GetOrdersQueryResponse struct {
	ID           int
	Status       order.Status
	NextStatuses []order.Status
	OrderDate    time.Time
	Address      string
	Total        float64
	ShipperID    string
}
