package applemartapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"applemart/internal/core/domain/model/kernel"
	"applemart/internal/core/domain/model/order"
	"applemart/internal/pkg/errs"
)

// ListOrders fetches the order collection from GET /Order/orders.
//
// The endpoint's envelope shape varies, so the body is resolved through the
// ordered candidate extractors. Each record is coerced with defaults and
// records left with a sentinel identifier or Unknown status are dropped.
// The method never fails: transport errors, non-2xx responses, and unknown
// envelope shapes all degrade to an empty slice with diagnostic logging.
func (c *Client) ListOrders(ctx context.Context) []*order.Order {
	none := []*order.Order{}

	req, err := c.newRequest(ctx, http.MethodGet, "/Order/orders", nil)
	if err != nil {
		c.logFailure(ctx, "list orders", nil, nil, err)
		return none
	}

	body, resp, err := c.send(req)
	if err != nil {
		c.logFailure(ctx, "list orders", resp, body, err)
		return none
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logFailure(ctx, "list orders", resp, body, nil)
		return none
	}

	records := extractCollection(body, "orders")
	if records == nil {
		c.logFailure(ctx, "list orders", resp, body, errors.New("unexpected response structure"))
		return none
	}

	orders := make([]*order.Order, 0, len(records))
	for _, record := range records {
		var dto orderDTO
		if err := json.Unmarshal(record, &dto); err != nil {
			continue
		}
		o, err := dto.toDomain()
		if err != nil {
			// Unusable record, not a failed call.
			continue
		}
		orders = append(orders, o)
	}
	return orders
}

// GetOrder fetches one order with its line details from GET /Order/{id}.
// Unlike ListOrders this path propagates failures, mapping a 404 onto
// errs.ErrObjectNotFound so callers can distinguish a missing order from a
// transport problem.
func (c *Client) GetOrder(ctx context.Context, id int) (*order.Order, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/Order/"+strconv.Itoa(id), nil)
	if err != nil {
		return nil, err
	}

	body, resp, err := c.send(req)
	if err != nil {
		return nil, fmt.Errorf("fetching order %d: %w", id, err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, errs.NewObjectNotFoundError("orderID", id)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching order %d: %s", id,
			backendErrorMessage(body, "HTTP "+strconv.Itoa(resp.StatusCode)))
	}

	var dto orderDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, fmt.Errorf("decoding order %d: %w", id, err)
	}
	return dto.toDomain()
}

// ChangeStatus submits PUT /Admin/{id}/status?NewStatus=S[&ShipperId=G].
//
// The shipper identifier is attached only when transitioning into Shipped,
// matching the backend's contract. On success the server-returned order is
// decoded and returned; the response is authoritative and may carry
// server-side enrichments the requested values lack. On failure the most
// specific message the backend exposed is returned and the caller must leave
// its local collection untouched.
func (c *Client) ChangeStatus(ctx context.Context, id int, target order.Status, shipperID *kernel.UUID) (*order.Order, error) {
	query := url.Values{}
	query.Set("NewStatus", target.String())
	if target == order.Shipped && shipperID != nil {
		query.Set("ShipperId", shipperID.String())
	}

	req, err := c.newRequest(ctx, http.MethodPut, "/Admin/"+strconv.Itoa(id)+"/status", query)
	if err != nil {
		return nil, err
	}

	body, resp, err := c.send(req)
	if err != nil {
		return nil, fmt.Errorf("updating order %d status: %w", id, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.New(backendErrorMessage(body,
			fmt.Sprintf("failed to update order status (HTTP %d)", resp.StatusCode)))
	}

	var dto orderDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, fmt.Errorf("decoding updated order %d: %w", id, err)
	}
	return dto.toDomain()
}
