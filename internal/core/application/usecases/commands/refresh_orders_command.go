package commands

import (
	"errors"

	"applemart/internal/pkg/guard"
)

var ErrRefreshOrdersCommandIsNotConstructed = errors.New(
	"RefreshOrdersCommand must be created via NewRefreshOrdersCommand constructor",
)

// RefreshOrdersCommand triggers a wholesale reload of the in-memory order
// collection from the backend. This is a parameterless command used at
// session start and by the periodic refresh job.
//
// Example:
//
//	cmd := NewRefreshOrdersCommand()
//	handler := NewRefreshOrdersCommandHandler(client, store)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Refresh failed: %v", err)
//	}
type RefreshOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewRefreshOrdersCommand creates a command to reload the order collection.
func NewRefreshOrdersCommand() RefreshOrdersCommand {
	return RefreshOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrRefreshOrdersCommandIsNotConstructed if validation fails.
func (c *RefreshOrdersCommand) Validate() error {
	return c.guard.Validate(
		ErrRefreshOrdersCommandIsNotConstructed,
	)
}
