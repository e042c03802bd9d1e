package queries

import (
	"errors"
	"time"

	"applemart/internal/pkg/guard"
)

var ErrGetNotificationsQueryIsNotConstructed = errors.New(
	"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
)

// GetNotificationsQuery retrieves the user's notification feed, optionally
// narrowed to unread notifications.
//
// Example:
//
//	query := NewGetNotificationsQuery(true)
//	handler := NewGetNotificationsQueryHandler(feed)
//	unread, err := handler.Handle(ctx, query)
type GetNotificationsQuery struct {
	unreadOnly bool

	guard guard.ConstructorGuard
}

// NewGetNotificationsQuery creates a query for the notification feed.
func NewGetNotificationsQuery(unreadOnly bool) GetNotificationsQuery {
	return GetNotificationsQuery{
		unreadOnly: unreadOnly,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetNotificationsQueryIsNotConstructed if validation fails.
func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

// UnreadOnly reports whether read notifications should be excluded.
func (q GetNotificationsQuery) UnreadOnly() bool {
	return q.unreadOnly
}

// GetNotificationsQueryResponse represents one notification in the feed.
type GetNotificationsQueryResponse struct {
	ID          int
	Header      string
	Content     string
	IsRead      bool
	CreatedDate time.Time
}
