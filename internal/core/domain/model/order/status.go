package order

import (
	"fmt"

	"applemart/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions driven by this client:
//
//	Pending ──┬──> Processing ──> Shipped
//	          └──> Cancelled
//	Delivered ──> Completed
//	RefundRequested ──> Refunded
//
// Shipped, Completed, Refunded, and Cancelled have no outbound transitions
// here. Delivered is reached by a courier-side event outside this client,
// which is why no Shipped -> Delivered edge appears above.
//
// Status is a value object that validates state transitions
// and provides string representations for the wire format and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// Records whose status cannot be parsed are coerced to this value (0)
	// and excluded from further processing.
	Unknown Status = iota

	// Pending is the initial status after checkout, awaiting confirmation.
	Pending

	// Processing indicates the order was confirmed and is being prepared.
	Processing

	// Shipped indicates the order was handed to a shipper for delivery.
	Shipped

	// Delivered indicates the shipper reported the order as delivered.
	Delivered

	// Completed indicates the buyer confirmed receipt.
	Completed

	// RefundRequested indicates the buyer asked for their money back.
	RefundRequested

	// Refunded indicates the refund was paid out.
	Refunded

	// Cancelled indicates the order was cancelled before fulfillment.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "Unknown",
		Pending:         "Pending",
		Processing:      "Processing",
		Shipped:         "Shipped",
		Delivered:       "Delivered",
		Completed:       "Completed",
		RefundRequested: "RefundRequested",
		Refunded:        "Refunded",
		Cancelled:       "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:         "Pending",
		Processing:      "Processing",
		Shipped:         "Shipped",
		Delivered:       "Delivered",
		Completed:       "Completed",
		RefundRequested: "RefundRequested",
		Refunded:        "Refunded",
		Cancelled:       "Cancelled",
	}
}

// getTransitionTable returns the rule table of legal outbound transitions.
// Statuses absent from the table are terminal for this client, or advance
// only through external events (courier delivery confirmation).
func getTransitionTable() map[Status][]Status {
	return map[Status][]Status{
		Pending:         {Processing, Cancelled},
		Processing:      {Shipped},
		Delivered:       {Completed},
		RefundRequested: {Refunded},
	}
}

// StatusFromString maps the wire representation of a status onto the enum.
// Any string that does not name a valid status maps to Unknown, which marks
// the record for exclusion rather than failing the whole payload.
func StatusFromString(s string) Status {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status
		}
	}
	return Unknown
}

// Validate checks if the Status value is valid.
//
// Valid statuses are every named state except Unknown.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (API payloads, request parameters) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns "Unknown" for invalid status values. This method implements the
// fmt.Stringer interface and is safe to call on any Status value. The same
// representation is used as the NewStatus query parameter on the wire.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// NextStatuses returns the set of statuses legally reachable from s.
//
// The lookup is total: statuses with no outbound edges (Shipped, Completed,
// Refunded, Cancelled) and invalid statuses return an empty slice, never an
// error. Callers use an empty result to disable transition actions.
//
// Example:
//
//	for _, next := range order.Pending.NextStatuses() {
//	    fmt.Println(next) // Processing, Cancelled
//	}
func (s Status) NextStatuses() []Status {
	next, ok := getTransitionTable()[s]
	if !ok {
		return []Status{}
	}
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// CanTransitionTo reports whether a transition from s to target is legal
// according to the rule table.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range getTransitionTable()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// ValidateTransition checks that a transition from s to target is legal
// without performing it.
//
// Returns:
//   - nil if the transition is allowed
//   - error with details if the transition is not in the rule table
//
// This method provides pre-validation so illegal transitions are rejected
// before any command is sent to the backend.
func (s Status) ValidateTransition(target Status) error {
	if !s.CanTransitionTo(target) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status transition is invalid",
			fmt.Errorf("%s is not a legal next status for %s", target.String(), s.String()),
		)
	}
	return nil
}

// RequiresShipper reports whether the transition from s to target needs a
// shipper assignment as a side input. Only Processing -> Shipped does: the
// backend expects a ShipperId alongside the status change that hands the
// order to a delivery agent.
func (s Status) RequiresShipper(target Status) bool {
	return s == Processing && target == Shipped
}
