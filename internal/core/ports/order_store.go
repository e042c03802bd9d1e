package ports

import "applemart/internal/core/domain/model/order"

// OrderStore owns the in-memory order collection for one admin session.
// It is the single source of truth the read side serves from; the transition
// executor and the refresh command are its only writers.
//
// Implementations must make each call atomic, but no cross-call coordination
// is provided: concurrent transitions on the same order resolve last-write-wins,
// which is the accepted behavior for a single-user interactive session.
type OrderStore interface {
	// SetAll replaces the whole collection with the given orders.
	SetAll(orders []*order.Order)

	// Replace swaps the stored order with the same identifier for updated.
	// Returns false when no order with that identifier is present; the
	// collection is left unchanged in that case.
	Replace(updated *order.Order) bool

	// Get returns the stored order with the given identifier.
	Get(id int) (*order.Order, bool)

	// All returns a snapshot copy of the collection.
	All() []*order.Order
}
