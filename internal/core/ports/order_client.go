// Package ports defines the contracts between the application core and its
// adapters: the remote storefront API, the session-scoped order store, and
// the local token store.
package ports

import (
	"context"

	"applemart/internal/core/domain/model/kernel"
	"applemart/internal/core/domain/model/order"
)

// OrderClient is the outbound contract for order data and status-transition
// commands against the storefront backend.
type OrderClient interface {
	// ListOrders fetches and normalizes the caller's order collection.
	// It never fails: transport errors and malformed payloads degrade to an
	// empty slice with diagnostic logging, and records that cannot be coerced
	// into a usable Order are dropped.
	ListOrders(ctx context.Context) []*order.Order

	// GetOrder fetches a single order with its line details.
	// Unlike ListOrders this path fails loudly so detail views can surface errors.
	GetOrder(ctx context.Context, id int) (*order.Order, error)

	// ChangeStatus submits a status-transition command for the order.
	// shipperID is attached only when transitioning into Shipped.
	// On failure the most specific message the backend exposed is returned
	// and the caller must leave its local state untouched.
	ChangeStatus(ctx context.Context, id int, target order.Status, shipperID *kernel.UUID) (*order.Order, error)
}
