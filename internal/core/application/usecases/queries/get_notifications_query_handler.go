package queries

import (
	"context"

	"applemart/internal/core/ports"
)

// GetNotificationsQueryHandler serves the notification feed read model.
// Soft-deleted notifications are excluded unconditionally.
type GetNotificationsQueryHandler struct {
	feed ports.NotificationFeed
}

// NewGetNotificationsQueryHandler creates a handler for notification queries.
func NewGetNotificationsQueryHandler(feed ports.NotificationFeed) GetNotificationsQueryHandler {
	return GetNotificationsQueryHandler{
		feed: feed,
	}
}

// Handle fetches the feed and maps it to the read model, newest first.
func (h GetNotificationsQueryHandler) Handle(ctx context.Context, query GetNotificationsQuery) ([]GetNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	notifications := h.feed.ListNotifications(ctx)

	result := make([]GetNotificationsQueryResponse, 0, len(notifications))
	for _, n := range notifications {
		if n.IsDeleted() {
			continue
		}
		if query.UnreadOnly() && n.IsRead() {
			continue
		}
		result = append(result, GetNotificationsQueryResponse{
			ID:          n.ID(),
			Header:      n.Header(),
			Content:     n.Content(),
			IsRead:      n.IsRead(),
			CreatedDate: n.CreatedDate(),
		})
	}

	return result, nil
}
