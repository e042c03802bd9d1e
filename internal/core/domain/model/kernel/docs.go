// Package kernel provides shared value objects used across the domain model.
//
// The package currently contains UUID, the typed form of the GUID identifiers
// the storefront backend uses for users and shippers. Value objects here are
// immutable, validated on construction, and free of infrastructure concerns.
package kernel
