package queries

import (
	"context"

	"applemart/internal/core/ports"
)

// GetShippersQueryHandler serves the shipper directory. The directory lookup
// never fails; an empty result means no shippers are available, which in turn
// blocks the Processing -> Shipped transition until the backend recovers.
type GetShippersQueryHandler struct {
	directory ports.ShipperDirectory
}

// NewGetShippersQueryHandler creates a handler for shipper directory queries.
func NewGetShippersQueryHandler(directory ports.ShipperDirectory) GetShippersQueryHandler {
	return GetShippersQueryHandler{
		directory: directory,
	}
}

// Handle fetches the shipper directory and maps it to the read model.
func (h GetShippersQueryHandler) Handle(ctx context.Context, query GetShippersQuery) ([]GetShippersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shippers := h.directory.ListShippers(ctx)

	result := make([]GetShippersQueryResponse, 0, len(shippers))
	for _, s := range shippers {
		result = append(result, GetShippersQueryResponse{
			ID:            s.ID().String(),
			Name:          s.Name(),
			PhoneNumber:   s.PhoneNumber(),
			Email:         s.Email(),
			PendingOrders: s.PendingOrders(),
			Role:          s.Role(),
		})
	}

	return result, nil
}
