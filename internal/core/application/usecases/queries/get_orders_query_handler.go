package queries

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"applemart/internal/core/domain/model/order"
	"applemart/internal/core/ports"
)

// GetOrdersQueryHandler serves the order list read model from the session's
// in-memory order store. It never touches the network: freshness is the
// refresh command's responsibility.
type GetOrdersQueryHandler struct {
	store ports.OrderStore
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
func NewGetOrdersQueryHandler(store ports.OrderStore) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{
		store: store,
	}
}

// Handle applies the query's filter, search, and sort to the stored orders.
//
// The search term matches case-insensitively against the order identifier
// rendered as a string and against the status name, so "ship" finds Shipped
// orders and "42" finds order 42. Filter and search compose with AND.
func (h GetOrdersQueryHandler) Handle(_ context.Context, query GetOrdersQuery) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := h.store.All()
	search := strings.ToLower(strings.TrimSpace(query.Search()))

	result := make([]GetOrdersQueryResponse, 0, len(orders))
	for _, o := range orders {
		if query.StatusFilter() != nil && o.Status() != *query.StatusFilter() {
			continue
		}
		if search != "" && !matchesSearch(o, search) {
			continue
		}
		result = append(result, toOrderResponse(o))
	}

	sort.SliceStable(result, func(i, j int) bool {
		if query.Sort() == SortOldestFirst {
			return result[i].OrderDate.Before(result[j].OrderDate)
		}
		return result[i].OrderDate.After(result[j].OrderDate)
	})

	return result, nil
}

func matchesSearch(o *order.Order, search string) bool {
	if strings.Contains(strconv.Itoa(o.ID()), search) {
		return true
	}
	return strings.Contains(strings.ToLower(o.Status().String()), search)
}

func toOrderResponse(o *order.Order) GetOrdersQueryResponse {
	shipperID := ""
	if o.Shipper() != nil {
		shipperID = o.Shipper().String()
	}

	return GetOrdersQueryResponse{
		ID:           o.ID(),
		Status:       o.Status(),
		NextStatuses: o.Status().NextStatuses(),
		OrderDate:    o.OrderDate(),
		Address:      o.Address(),
		Total:        o.Total(),
		ShipperID:    shipperID,
	}
}
