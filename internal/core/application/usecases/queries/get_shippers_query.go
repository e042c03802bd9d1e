package queries

import (
	"errors"

	"applemart/internal/pkg/guard"
)

var ErrGetShippersQueryIsNotConstructed = errors.New(
	"GetShippersQuery must be created via NewGetShippersQuery constructor",
)

// GetShippersQuery retrieves the directory of shippers eligible for
// assignment. Used to populate the shipper picker when an operator moves an
// order from Processing to Shipped.
//
// Example:
//
//	query := NewGetShippersQuery()
//	handler := NewGetShippersQueryHandler(directory)
//	shippers, err := handler.Handle(ctx, query)
type GetShippersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetShippersQuery creates a query for the shipper directory.
func NewGetShippersQuery() GetShippersQuery {
	return GetShippersQuery{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShippersQueryIsNotConstructed if validation fails.
func (q GetShippersQuery) Validate() error {
	return q.guard.Validate(ErrGetShippersQueryIsNotConstructed)
}

// GetShippersQueryResponse represents one shipper available for assignment.
type GetShippersQueryResponse struct {
	ID            string
	Name          string
	PhoneNumber   string
	Email         string
	PendingOrders int
	Role          string
}
