// Package notification provides the read model for user notifications.
//
// Notifications are informational records polled from the backend. The client
// never writes them; unusable records are dropped during coercion.
package notification

import (
	"errors"
	"fmt"
	"time"

	"applemart/internal/core/domain/model/kernel"
	"applemart/internal/pkg/errs"
	"applemart/internal/pkg/guard"
)

var (
	// ErrNotificationIsNotConstructed is returned when a Notification was not created
	// through the RestoreNotification factory method.
	ErrNotificationIsNotConstructed = errors.New("Notification must be created via RestoreNotification constructor")
)

// Notification is one message addressed to a user.
type Notification struct {
	id          int
	userID      *kernel.UUID
	header      string
	content     string
	isRead      bool
	isDeleted   bool
	createdDate time.Time

	guard guard.ConstructorGuard
}

// RestoreNotification reconstructs a Notification from externally supplied data.
// The identifier must be positive; everything else is tolerated as-is.
func RestoreNotification(id int, userID *kernel.UUID, header, content string, isRead, isDeleted bool, createdDate time.Time) (*Notification, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("notificationID is invalid", fmt.Errorf("%d is not a positive identifier", id))
	}

	return &Notification{
		id:          id,
		userID:      userID,
		header:      header,
		content:     content,
		isRead:      isRead,
		isDeleted:   isDeleted,
		createdDate: createdDate,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Notification was properly constructed.
func (n *Notification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

// ID returns the notification identifier.
func (n *Notification) ID() int {
	return n.id
}

// User returns the addressed user's GUID, or nil when unknown.
func (n *Notification) User() *kernel.UUID {
	return n.userID
}

// Header returns the notification title.
func (n *Notification) Header() string {
	return n.header
}

// Content returns the notification body.
func (n *Notification) Content() string {
	return n.content
}

// IsRead reports whether the user has read the notification.
func (n *Notification) IsRead() bool {
	return n.isRead
}

// IsDeleted returns the backend's soft-delete flag.
func (n *Notification) IsDeleted() bool {
	return n.isDeleted
}

// CreatedDate returns when the notification was created.
func (n *Notification) CreatedDate() time.Time {
	return n.createdDate
}
