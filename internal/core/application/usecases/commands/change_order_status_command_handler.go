package commands

import (
	"context"

	"applemart/internal/core/ports"
	"applemart/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler orchestrates one status transition end to
// end: it validates the request against the rule table and the transition's
// side inputs before any network call, submits the command to the backend,
// and reconciles the result into the in-memory order collection.
//
// Failure semantics:
//   - illegal transition or missing shipper: rejected synchronously, no side effects
//   - backend rejection or transport failure: the collection is left untouched
//     and the backend's message is surfaced; the command is never retried,
//     because server-side state may have partially advanced
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(client, store)
//	cmd, _ := NewChangeOrderStatusCommand(42, order.Processing, nil)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Transition failed: %v", err)
//	}
type ChangeOrderStatusCommandHandler struct {
	orderClient ports.OrderClient
	store       ports.OrderStore
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
// Requires the backend order client and the session's order store; the
// handler is one of the store's two writers (the refresh command is the other).
func NewChangeOrderStatusCommandHandler(orderClient ports.OrderClient, store ports.OrderStore) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		orderClient: orderClient,
		store:       store,
	}
}

// Handle processes the status-transition command.
//
// The stored order's current status decides which transitions are legal;
// violations and a missing shipper selection for Processing -> Shipped are
// rejected before the backend is contacted. On success the server-returned
// order replaces the stored one (the response is authoritative, not the
// requested values), followed by a full list re-fetch to pick up any other
// server-side derived changes. That re-fetch trades efficiency for
// consistency, which is the right trade at per-session order volumes.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, command ChangeOrderStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	current, ok := h.store.Get(command.OrderID())
	if !ok {
		return errs.NewObjectNotFoundError("orderID", command.OrderID())
	}

	if err := current.ValidateTransition(command.TargetStatus(), command.Shipper()); err != nil {
		return err
	}

	updated, err := h.orderClient.ChangeStatus(ctx, command.OrderID(), command.TargetStatus(), command.Shipper())
	if err != nil {
		return err
	}

	h.store.Replace(updated)
	h.store.SetAll(h.orderClient.ListOrders(ctx))

	return nil
}
