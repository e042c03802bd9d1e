package commands

import (
	"context"

	"applemart/internal/core/ports"
)

// RefreshOrdersCommandHandler reloads the session's order collection from
// the backend. Because the list read path never fails, neither does this
// handler: a transport failure shows up as an empty collection, mirroring
// what the backend exposed.
type RefreshOrdersCommandHandler struct {
	orderClient ports.OrderClient
	store       ports.OrderStore
}

// NewRefreshOrdersCommandHandler creates a handler for order-collection refreshes.
func NewRefreshOrdersCommandHandler(orderClient ports.OrderClient, store ports.OrderStore) RefreshOrdersCommandHandler {
	return RefreshOrdersCommandHandler{
		orderClient: orderClient,
		store:       store,
	}
}

// Handle fetches the normalized order collection and replaces the store's
// contents with it.
func (h RefreshOrdersCommandHandler) Handle(ctx context.Context, command RefreshOrdersCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	h.store.SetAll(h.orderClient.ListOrders(ctx))
	return nil
}
