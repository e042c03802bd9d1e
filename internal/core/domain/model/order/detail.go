package order

import (
	"fmt"

	"applemart/internal/pkg/errs"
)

// Detail is one line item of an order. It is owned exclusively by its parent
// Order and is never referenced independently.
type Detail struct {
	id            int
	productItemID int
	quantity      int
	price         float64
	isDeleted     bool
}

// NewDetail creates a validated line item.
// Quantity must be positive and the unit price non-negative.
func NewDetail(id, productItemID, quantity int, price float64, isDeleted bool) (Detail, error) {
	if quantity <= 0 {
		return Detail{}, errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if price < 0 {
		return Detail{}, errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%f is negative", price))
	}

	return Detail{
		id:            id,
		productItemID: productItemID,
		quantity:      quantity,
		price:         price,
		isDeleted:     isDeleted,
	}, nil
}

// ID returns the line item identifier.
func (d Detail) ID() int {
	return d.id
}

// ProductItemID returns the purchased product item identifier.
func (d Detail) ProductItemID() int {
	return d.productItemID
}

// Quantity returns the number of units ordered.
func (d Detail) Quantity() int {
	return d.quantity
}

// Price returns the unit price.
func (d Detail) Price() float64 {
	return d.price
}

// IsDeleted returns the backend's soft-delete flag for the line.
func (d Detail) IsDeleted() bool {
	return d.isDeleted
}
