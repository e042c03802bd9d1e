package applemartapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"applemart/internal/core/domain/model/shipper"
)

// ListShippers fetches the shipper directory from GET /Shipper/all.
//
// The same defensive-extraction pattern as ListOrders applies: the envelope
// is resolved through the candidate extractors, records lacking a usable
// GUID are dropped, and any failure degrades to an empty slice with
// diagnostic logging. Callers must treat an empty result as "no shippers
// available" rather than distinguishing it from a transport error.
func (c *Client) ListShippers(ctx context.Context) []*shipper.Shipper {
	none := []*shipper.Shipper{}

	req, err := c.newRequest(ctx, http.MethodGet, "/Shipper/all", nil)
	if err != nil {
		c.logFailure(ctx, "list shippers", nil, nil, err)
		return none
	}

	body, resp, err := c.send(req)
	if err != nil {
		c.logFailure(ctx, "list shippers", resp, body, err)
		return none
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logFailure(ctx, "list shippers", resp, body, nil)
		return none
	}

	records := extractCollection(body, "shippers")
	if records == nil {
		c.logFailure(ctx, "list shippers", resp, body, errors.New("unexpected response structure"))
		return none
	}

	shippers := make([]*shipper.Shipper, 0, len(records))
	for _, record := range records {
		var dto shipperDTO
		if err := json.Unmarshal(record, &dto); err != nil {
			continue
		}
		s, err := dto.toDomain()
		if err != nil {
			continue
		}
		shippers = append(shippers, s)
	}
	return shippers
}
