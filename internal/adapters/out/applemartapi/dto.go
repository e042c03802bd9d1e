package applemartapi

import (
	"encoding/json"
	"time"

	"applemart/internal/core/domain/model/kernel"
	"applemart/internal/core/domain/model/notification"
	"applemart/internal/core/domain/model/order"
	"applemart/internal/core/domain/model/shipper"
)

// DTOs mirror the backend's JSON field names. All fields are pointers so
// absent and present-but-zero values can be told apart during coercion:
// missing fields get stated defaults, and records whose defaults leave them
// unusable (sentinel identifier, Unknown status) are dropped by the caller.

const sentinelOrderID = -1

type orderDTO struct {
	OrderID          *int            `json:"orderID"`
	UserID           *string         `json:"userID"`
	ShipperID        *string         `json:"shipperID"`
	OrderDate        *string         `json:"orderDate"`
	Address          *string         `json:"address"`
	PaymentMethod    *string         `json:"paymentMethod"`
	ShippingMethodID *int            `json:"shippingMethodID"`
	Total            *float64        `json:"total"`
	OrderStatus      *string         `json:"orderStatus"`
	VoucherID        *int            `json:"voucherID"`
	IsDeleted        *bool           `json:"isDeleted"`
	OrderDetails     json.RawMessage `json:"orderDetails"`
}

type detailDTO struct {
	OrderDetailID *int     `json:"orderDetailID"`
	ProductItemID *int     `json:"productItemID"`
	Quantity      *int     `json:"quantity"`
	Price         *float64 `json:"price"`
	IsDeleted     *bool    `json:"isDeleted"`
}

type shipperDTO struct {
	ShipperID     *string `json:"shipperID"`
	Name          *string `json:"name"`
	PhoneNumber   *string `json:"phoneNumber"`
	Email         *string `json:"email"`
	PendingOrders *int    `json:"pendingOrders"`
	Role          *string `json:"role"`
}

type notificationDTO struct {
	NotificationID *int    `json:"notificationID"`
	UserID         *string `json:"userID"`
	Header         *string `json:"header"`
	Content        *string `json:"content"`
	IsRead         *bool   `json:"isRead"`
	IsDeleted      *bool   `json:"isDeleted"`
	CreatedDate    *string `json:"createdDate"`
}

// toDomain coerces the raw record into an Order, applying the stated defaults
// for missing fields. Records that end up with the sentinel identifier or an
// Unknown status fail RestoreOrder and are treated as unusable by the caller.
func (d orderDTO) toDomain() (*order.Order, error) {
	id := sentinelOrderID
	if d.OrderID != nil {
		id = *d.OrderID
	}

	status := order.StatusFromString(stringValue(d.OrderStatus, "Unknown"))

	return order.RestoreOrder(id, status, order.Attributes{
		UserID:           parseGUID(d.UserID),
		ShipperID:        parseGUID(d.ShipperID),
		OrderDate:        parseDate(d.OrderDate),
		Address:          stringValue(d.Address, ""),
		PaymentMethod:    stringValue(d.PaymentMethod, ""),
		ShippingMethodID: intValue(d.ShippingMethodID, 0),
		Total:            floatValue(d.Total, 0),
		VoucherID:        d.VoucherID,
		IsDeleted:        boolValue(d.IsDeleted, false),
		Details:          parseDetails(d.OrderDetails),
	})
}

// toDomain coerces a shipper record. Records without a usable GUID or name
// fail RestoreShipper and are dropped by the directory lookup.
func (d shipperDTO) toDomain() (*shipper.Shipper, error) {
	id, err := kernel.UUIDFromString(stringValue(d.ShipperID, ""))
	if err != nil {
		return nil, err
	}

	return shipper.RestoreShipper(
		id,
		stringValue(d.Name, ""),
		stringValue(d.PhoneNumber, ""),
		stringValue(d.Email, ""),
		intValue(d.PendingOrders, 0),
		stringValue(d.Role, ""),
	)
}

// toDomain coerces a notification record.
func (d notificationDTO) toDomain() (*notification.Notification, error) {
	return notification.RestoreNotification(
		intValue(d.NotificationID, sentinelOrderID),
		parseGUID(d.UserID),
		stringValue(d.Header, ""),
		stringValue(d.Content, ""),
		boolValue(d.IsRead, false),
		boolValue(d.IsDeleted, false),
		parseDate(d.CreatedDate),
	)
}

// parseDetails resolves the line-item collection, which arrives either as a
// bare array or wrapped in a reference envelope. Lines that fail validation
// are skipped rather than failing the order.
func parseDetails(raw json.RawMessage) []order.Detail {
	if len(raw) == 0 {
		return nil
	}

	records, ok := rawArray(raw)
	if !ok {
		records, ok = valuesArray(raw)
	}
	if !ok {
		return nil
	}

	details := make([]order.Detail, 0, len(records))
	for _, record := range records {
		var dto detailDTO
		if err := json.Unmarshal(record, &dto); err != nil {
			continue
		}
		detail, err := order.NewDetail(
			intValue(dto.OrderDetailID, 0),
			intValue(dto.ProductItemID, 0),
			intValue(dto.Quantity, 0),
			floatValue(dto.Price, 0),
			boolValue(dto.IsDeleted, false),
		)
		if err != nil {
			continue
		}
		details = append(details, detail)
	}
	return details
}

// parseGUID coerces an optional GUID string; empty and malformed values map to nil.
func parseGUID(s *string) *kernel.UUID {
	if s == nil || *s == "" {
		return nil
	}
	id, err := kernel.UUIDFromString(*s)
	if err != nil {
		return nil
	}
	return &id
}

// parseDate coerces the backend's timestamp formats; unparseable values map
// to the zero time.
func parseDate(s *string) time.Time {
	if s == nil {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, *s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func stringValue(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

func intValue(i *int, fallback int) int {
	if i == nil {
		return fallback
	}
	return *i
}

func floatValue(f *float64, fallback float64) float64 {
	if f == nil {
		return fallback
	}
	return *f
}

func boolValue(b *bool, fallback bool) bool {
	if b == nil {
		return fallback
	}
	return *b
}
