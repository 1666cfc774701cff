// Package kernel contains shared value objects used across all domain
// aggregates: strongly typed UUID identifiers and the human-readable
// sequential order number. These types are immutable and validate
// themselves on construction, so aggregates built from them can trust
// their invariants.
package kernel
