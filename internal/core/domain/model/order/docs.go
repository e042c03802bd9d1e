// Package order provides domain entities and business logic for order
// management in the Apple Mart admin client. It implements the Order
// aggregate with its lifecycle state machine and line items.
//
// The package includes:
//   - Order: The aggregate root reconstructed from API payloads
//   - Status: A state machine that enforces valid order status transitions
//   - Detail: A line item owned by its parent order
//
// Key business rules:
//   - Orders must have a positive identifier and a status from the closed set
//   - Transitions follow the rule table: Pending -> Processing or Cancelled,
//     Processing -> Shipped, Delivered -> Completed, RefundRequested -> Refunded
//   - Processing -> Shipped requires a shipper assignment as a side input
//   - Statuses outside the table have no outbound transitions through this client
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
