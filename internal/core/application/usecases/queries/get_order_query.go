package queries

import (
	"errors"
	"time"

	"applemart/internal/core/domain/model/order"
	"applemart/internal/pkg/errs"
	"applemart/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order by its backend identifier.
// Unlike the list query this goes straight to the backend, because the detail
// view must reflect the most recent server-side state.
//
// Example:
//
//	query, err := NewGetOrderQuery(42)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderQueryHandler(client)
//	response, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	orderID int

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order.
// The identifier must be positive.
func NewGetOrderQuery(orderID int) (GetOrderQuery, error) {
	if orderID <= 0 {
		return GetOrderQuery{}, errs.NewValueIsInvalidError("orderID")
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() int {
	return q.orderID
}

// GetOrderQueryResponseDetail is one line item in the order detail read model.
type GetOrderQueryResponseDetail struct {
	ID            int
	ProductItemID int
	Quantity      int
	Price         float64
}

// GetOrderQueryResponse is the full order detail read model.
type GetOrderQueryResponse struct {
	ID            int
	Status        order.Status
	NextStatuses  []order.Status
	OrderDate     time.Time
	Address       string
	PaymentMethod string
	Total         float64
	UserID        string
	ShipperID     string
	Details       []GetOrderQueryResponseDetail
}
