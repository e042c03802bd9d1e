package ports

import (
	"context"

	"applemart/internal/core/domain/model/notification"
	"applemart/internal/core/domain/model/shipper"
)

// ShipperDirectory is the outbound contract for the list of shippers
// eligible for assignment during the Processing -> Shipped transition.
type ShipperDirectory interface {
	// ListShippers fetches and normalizes the shipper directory.
	// Failures degrade to an empty slice with diagnostic logging; callers
	// must treat an empty result as "no shippers available".
	ListShippers(ctx context.Context) []*shipper.Shipper
}

// NotificationFeed is the outbound contract for the user's notification feed.
type NotificationFeed interface {
	// ListNotifications fetches and normalizes the notification feed.
	// Failures degrade to an empty slice with diagnostic logging.
	ListNotifications(ctx context.Context) []*notification.Notification
}
