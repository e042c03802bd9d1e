package order

import (
	"errors"
	"fmt"
	"time"

	"applemart/internal/core/domain/model/kernel"
	"applemart/internal/pkg/errs"
	"applemart/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the RestoreOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via RestoreOrder constructor")
)

// Order represents one purchase transaction as known to the admin client.
// It is the aggregate root reconstructed from API payloads; the backend owns
// creation and persistence, while this client only reads orders and requests
// status transitions.
//
// Order maintains these invariants:
//   - Identifier is a positive integer (the coercion sentinel -1 never survives construction)
//   - Status is always a member of the closed Status set; Unknown is rejected
//   - Total is non-negative
//   - An assigned shipper identifier, when present, is a valid GUID
//
// The struct uses private fields to ensure encapsulation; mutation happens
// only on the backend, reached through status-transition commands.
type Order struct {
	// id is the backend's integer identifier for the order
	id int

	// userID is the owning user's GUID (nil until known)
	userID *kernel.UUID

	// shipperID is the assigned shipper's GUID (nil until assigned)
	shipperID *kernel.UUID

	// orderDate is when the order was placed; zero when unparseable
	orderDate time.Time

	// address is the delivery address
	address string

	// paymentMethod is the payment method label
	paymentMethod string

	// shippingMethodID identifies the chosen shipping method
	shippingMethodID int

	// total is the monetary total of the order
	total float64

	// status is the current state in the order lifecycle
	status Status

	// voucherID references an applied voucher (nil when none)
	voucherID *int

	// isDeleted is the backend's soft-delete flag
	isDeleted bool

	// details are the order's line items
	details []Detail

	guard guard.ConstructorGuard
}

// Attributes carries the optional and descriptive fields of an order into
// RestoreOrder. Identity and status are passed separately because they decide
// whether the record is usable at all.
type Attributes struct {
	UserID           *kernel.UUID
	ShipperID        *kernel.UUID
	OrderDate        time.Time
	Address          string
	PaymentMethod    string
	ShippingMethodID int
	Total            float64
	VoucherID        *int
	IsDeleted        bool
	Details          []Detail
}

// RestoreOrder reconstructs an Order from externally supplied data. This is
// the only way to obtain a valid Order, ensuring records that survived the
// defensive payload coercion still satisfy the aggregate's invariants.
//
// Parameters:
//   - id: backend order identifier (must be positive; the -1 sentinel is rejected)
//   - status: current lifecycle state (Unknown is rejected)
//   - attrs: remaining order attributes with coercion defaults already applied
//
// Returns:
//   - *Order: the reconstructed order if all validations pass
//   - error: validation error if the record is unusable
//
// Example:
//
//	o, err := order.RestoreOrder(42, order.Processing, order.Attributes{
//	    Address: "1 Infinite Loop",
//	    Total:   1299,
//	})
//	if err != nil {
//	    // record is unusable, drop it
//	}
func RestoreOrder(id int, status Status, attrs Attributes) (*Order, error) {
	o := &Order{
		userID:           attrs.UserID,
		orderDate:        attrs.OrderDate,
		address:          attrs.Address,
		paymentMethod:    attrs.PaymentMethod,
		shippingMethodID: attrs.ShippingMethodID,
		voucherID:        attrs.VoucherID,
		isDeleted:        attrs.IsDeleted,
		details:          attrs.Details,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setStatus(status),
		o.setTotal(attrs.Total),
		o.setShipper(attrs.ShipperID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through RestoreOrder.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's backend identifier.
func (o *Order) ID() int {
	return o.id
}

// User returns the owning user's GUID, or nil when unknown.
func (o *Order) User() *kernel.UUID {
	return o.userID
}

// Shipper returns the assigned shipper's GUID.
// Returns nil if no shipper is assigned.
func (o *Order) Shipper() *kernel.UUID {
	return o.shipperID
}

// OrderDate returns when the order was placed.
// The zero time means the backend's timestamp could not be parsed.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// Address returns the delivery address.
func (o *Order) Address() string {
	return o.address
}

// PaymentMethod returns the payment method label.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// ShippingMethodID returns the chosen shipping method identifier.
func (o *Order) ShippingMethodID() int {
	return o.shippingMethodID
}

// Total returns the monetary total of the order.
func (o *Order) Total() float64 {
	return o.total
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// VoucherID returns the applied voucher identifier, or nil when none.
func (o *Order) VoucherID() *int {
	return o.voucherID
}

// IsDeleted returns the backend's soft-delete flag.
func (o *Order) IsDeleted() bool {
	return o.isDeleted
}

// Details returns a copy of the order's line items.
func (o *Order) Details() []Detail {
	out := make([]Detail, len(o.details))
	copy(out, o.details)
	return out
}

// NextStatuses returns the statuses legally reachable from the order's
// current status. An empty result means no transition can be requested.
func (o *Order) NextStatuses() []Status {
	return o.status.NextStatuses()
}

// ValidateTransition checks that a requested transition is legal for this
// order and that its side inputs are satisfied, without performing it.
//
// Rules enforced:
//   - target must be a legal next status for the order's current status
//   - Processing -> Shipped additionally requires a valid shipper GUID
//
// Returns:
//   - nil when the transition may be submitted to the backend
//   - error describing the violated rule otherwise
//
// Example:
//
//	if err := o.ValidateTransition(order.Shipped, shipperID); err != nil {
//	    // reject before any network call
//	}
func (o *Order) ValidateTransition(target Status, shipperID *kernel.UUID) error {
	if err := o.status.ValidateTransition(target); err != nil {
		return err
	}

	if o.status.RequiresShipper(target) {
		if shipperID == nil {
			return errs.NewValueIsRequiredError("shipperID")
		}
		if err := shipperID.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// setID validates and sets the order's identifier.
// This is a private method used only during construction.
func (o *Order) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderID is invalid", fmt.Errorf("%d is not a positive identifier", id))
	}
	o.id = id
	return nil
}

// setStatus validates and sets the order's status.
// This is a private method used only during construction.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setTotal validates and sets the order's monetary total.
// This is a private method used only during construction.
func (o *Order) setTotal(total float64) error {
	if total < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total is invalid", fmt.Errorf("%f is negative", total))
	}
	o.total = total
	return nil
}

// setShipper validates and sets the assigned shipper, when present.
// This is a private method used only during construction.
func (o *Order) setShipper(shipperID *kernel.UUID) error {
	if shipperID == nil {
		return nil
	}
	if err := shipperID.Validate(); err != nil {
		return err
	}
	o.shipperID = shipperID
	return nil
}
