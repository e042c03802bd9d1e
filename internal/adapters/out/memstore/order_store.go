// Package memstore provides the session-scoped in-memory order collection.
//
// The store is the single owner of the order list the read side serves from.
// The transition executor and the refresh command are its only writers, which
// keeps the merge rules (replace-by-identifier, wholesale refresh) in one
// place instead of scattered across callers.
package memstore

import (
	"sync"

	"applemart/internal/core/domain/model/order"
)

// OrderStore holds the in-memory order collection for one admin session.
//
// Each method is atomic, but there is no cross-call coordination: if two
// transitions for the same order race, the later Replace wins. That
// last-write-wins behavior is accepted for a single-user interactive session.
type OrderStore struct {
	mu     sync.RWMutex
	orders []*order.Order
}

// NewOrderStore creates an empty order store.
func NewOrderStore() *OrderStore {
	return &OrderStore{}
}

// SetAll replaces the whole collection with the given orders.
// A defensive copy of the slice is taken; the orders themselves are shared.
func (s *OrderStore) SetAll(orders []*order.Order) {
	copied := make([]*order.Order, len(orders))
	copy(copied, orders)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = copied
}

// Replace swaps the stored order with updated's identifier for updated.
// Only the matching element changes; every other order keeps its identity.
// Returns false, leaving the collection unchanged, when no order with that
// identifier is present.
func (s *OrderStore) Replace(updated *order.Order) bool {
	if updated == nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, o := range s.orders {
		if o.ID() == updated.ID() {
			s.orders[i] = updated
			return true
		}
	}
	return false
}

// Get returns the stored order with the given identifier.
func (s *OrderStore) Get(id int) (*order.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID() == id {
			return o, true
		}
	}
	return nil, false
}

// All returns a snapshot copy of the collection.
func (s *OrderStore) All() []*order.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*order.Order, len(s.orders))
	copy(out, s.orders)
	return out
}
