// Package services provides domain services that orchestrate business rules
// across multiple domain entities of the service-order lifecycle. It implements
// logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - TransitionGuard: a domain service deciding whether an order may advance
//     to a requested status, based on the order's fields and its evidence records
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
