// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, side-input checks, and
// submission to the backend through the outbound ports.
package commands

import (
	"errors"

	"applemart/internal/core/domain/model/kernel"
	"applemart/internal/core/domain/model/order"
	"applemart/internal/pkg/errs"
	"applemart/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a request to move one order to a new
// lifecycle status. It is the ephemeral value object an operator action
// produces: constructed, validated, executed once, and discarded.
//
// The command carries the transition's side input: a shipper selection,
// which the Processing -> Shipped transition requires.
//
// Example:
//
//	cmd, err := NewChangeOrderStatusCommand(42, order.Shipped, &shipperID)
//	if err != nil {
//	    return fmt.Errorf("invalid transition request: %w", err)
//	}
//
//	handler := NewChangeOrderStatusCommandHandler(client, store)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("transition rejected: %w", err)
//	}
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID      int
	targetStatus order.Status
	shipperID    *kernel.UUID

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to request a status transition.
// Validates that the order identifier is positive, the target status is a
// member of the closed status set, and the shipper GUID, when supplied, is
// valid. Whether the transition itself is legal for the order's current
// status is the handler's decision, since it requires the stored order.
func NewChangeOrderStatusCommand(orderID int, targetStatus order.Status, shipperID *kernel.UUID) (ChangeOrderStatusCommand, error) {
	command := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTargetStatus(targetStatus),
		command.setShipper(shipperID),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeOrderStatusCommandIsNotConstructed if validation fails.
func (c *ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(
		ErrChangeOrderStatusCommandIsNotConstructed,
	)
}

// OrderID returns the identifier of the order being transitioned.
func (c ChangeOrderStatusCommand) OrderID() int {
	return c.orderID
}

// TargetStatus returns the requested next status.
func (c ChangeOrderStatusCommand) TargetStatus() order.Status {
	return c.targetStatus
}

// Shipper returns the selected shipper's GUID, or nil when none was chosen.
func (c ChangeOrderStatusCommand) Shipper() *kernel.UUID {
	return c.shipperID
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID int) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("orderID")
	}
	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setTargetStatus(targetStatus order.Status) error {
	if err := targetStatus.Validate(); err != nil {
		return err
	}
	c.targetStatus = targetStatus
	return nil
}

func (c *ChangeOrderStatusCommand) setShipper(shipperID *kernel.UUID) error {
	if shipperID == nil {
		return nil
	}
	if err := shipperID.Validate(); err != nil {
		return err
	}
	c.shipperID = shipperID
	return nil
}
