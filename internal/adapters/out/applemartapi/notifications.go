package applemartapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"applemart/internal/core/domain/model/notification"
)

// ListNotifications fetches the notification feed from GET /Notification.
//
// The endpoint wraps its collection in the reference-preserving envelope
// ({"$id": "1", "$values": [...]}); extraction handles that alongside the
// other known shapes. Failures degrade to an empty slice with diagnostic
// logging so a polling loop never crashes on a bad network.
func (c *Client) ListNotifications(ctx context.Context) []*notification.Notification {
	none := []*notification.Notification{}

	req, err := c.newRequest(ctx, http.MethodGet, "/Notification", nil)
	if err != nil {
		c.logFailure(ctx, "list notifications", nil, nil, err)
		return none
	}

	body, resp, err := c.send(req)
	if err != nil {
		c.logFailure(ctx, "list notifications", resp, body, err)
		return none
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logFailure(ctx, "list notifications", resp, body, nil)
		return none
	}

	records := extractCollection(body, "notifications")
	if records == nil {
		c.logFailure(ctx, "list notifications", resp, body, errors.New("unexpected response structure"))
		return none
	}

	notifications := make([]*notification.Notification, 0, len(records))
	for _, record := range records {
		var dto notificationDTO
		if err := json.Unmarshal(record, &dto); err != nil {
			continue
		}
		n, err := dto.toDomain()
		if err != nil {
			continue
		}
		notifications = append(notifications, n)
	}
	return notifications
}
