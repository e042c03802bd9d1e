package queries

import (
	"context"

	"applemart/internal/core/domain/model/order"
	"applemart/internal/core/ports"
)

// GetOrderQueryHandler serves the order detail read model straight from the
// backend. A missing order surfaces as errs.ErrObjectNotFound.
type GetOrderQueryHandler struct {
	orderClient ports.OrderClient
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(orderClient ports.OrderClient) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		orderClient: orderClient,
	}
}

// Handle fetches the requested order and maps it to the detail read model.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	o, err := h.orderClient.GetOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return toOrderDetailResponse(o), nil
}

func toOrderDetailResponse(o *order.Order) GetOrderQueryResponse {
	userID := ""
	if o.User() != nil {
		userID = o.User().String()
	}
	shipperID := ""
	if o.Shipper() != nil {
		shipperID = o.Shipper().String()
	}

	details := o.Details()
	detailResponses := make([]GetOrderQueryResponseDetail, 0, len(details))
	for _, d := range details {
		detailResponses = append(detailResponses, GetOrderQueryResponseDetail{
			ID:            d.ID(),
			ProductItemID: d.ProductItemID(),
			Quantity:      d.Quantity(),
			Price:         d.Price(),
		})
	}

	return GetOrderQueryResponse{
		ID:            o.ID(),
		Status:        o.Status(),
		NextStatuses:  o.NextStatuses(),
		OrderDate:     o.OrderDate(),
		Address:       o.Address(),
		PaymentMethod: o.PaymentMethod(),
		Total:         o.Total(),
		UserID:        userID,
		ShipperID:     shipperID,
		Details:       detailResponses,
	}
}
