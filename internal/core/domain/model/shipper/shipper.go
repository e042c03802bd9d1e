package shipper

import (
	"errors"

	"applemart/internal/core/domain/model/kernel"
	"applemart/internal/pkg/errs"
	"applemart/internal/pkg/guard"
)

var (
	// ErrShipperIsNotConstructed is returned when a Shipper instance was not created
	// through the RestoreShipper factory method.
	ErrShipperIsNotConstructed = errors.New("Shipper must be created via RestoreShipper constructor")
)

// Shipper is a delivery agent eligible for assignment during the
// Processing -> Shipped transition. Shippers are read-only reference data in
// this client: the list is refreshed from the backend per use and never
// mutated locally.
type Shipper struct {
	// id is the shipper's GUID
	id kernel.UUID

	// name is the shipper's display name
	name string

	// phoneNumber is the shipper's contact number
	phoneNumber string

	// email is optional contact information
	email string

	// pendingOrders is the backend-reported count of orders awaiting delivery
	pendingOrders int

	// role is an optional role label from the account system
	role string

	guard guard.ConstructorGuard
}

// RestoreShipper reconstructs a Shipper from externally supplied data.
// A usable shipper needs a valid GUID and a non-empty display name; records
// failing either rule are dropped by the directory lookup rather than
// surfaced as errors.
func RestoreShipper(id kernel.UUID, name, phoneNumber, email string, pendingOrders int, role string) (*Shipper, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Shipper{
		id:            id,
		name:          name,
		phoneNumber:   phoneNumber,
		email:         email,
		pendingOrders: pendingOrders,
		role:          role,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Shipper instance was properly constructed through RestoreShipper.
func (s *Shipper) Validate() error {
	if s == nil {
		return ErrShipperIsNotConstructed
	}
	return s.guard.Validate(ErrShipperIsNotConstructed)
}

// IsEqual compares two shippers by their identifiers.
func (s *Shipper) IsEqual(other *Shipper) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipper's GUID.
func (s *Shipper) ID() kernel.UUID {
	return s.id
}

// Name returns the shipper's display name.
func (s *Shipper) Name() string {
	return s.name
}

// PhoneNumber returns the shipper's contact number.
func (s *Shipper) PhoneNumber() string {
	return s.phoneNumber
}

// Email returns the shipper's email address, empty when not provided.
func (s *Shipper) Email() string {
	return s.email
}

// PendingOrders returns the backend-reported count of undelivered orders.
func (s *Shipper) PendingOrders() int {
	return s.pendingOrders
}

// Role returns the shipper's role label, empty when not provided.
func (s *Shipper) Role() string {
	return s.role
}
