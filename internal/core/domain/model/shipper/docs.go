// Package shipper provides the read-only directory entry for delivery agents.
//
// Shippers exist in this client only as selectable side inputs for the
// Processing -> Shipped order transition. They have no lifecycle here: the
// directory is fetched from the backend when needed and records that lack a
// usable identity are silently dropped.
package shipper
