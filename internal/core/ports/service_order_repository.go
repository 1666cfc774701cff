// Package ports defines repository and collaborator interfaces for the
// service-order domain. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"serviceops/internal/core/domain/model/kernel"
	"serviceops/internal/core/domain/model/serviceorder"
)

// ServiceOrderRepository defines the persistence contract for service order
// aggregates.
type ServiceOrderRepository interface {
	// Add persists a new service order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *serviceorder.ServiceOrder) error

	// Update persists changes to an existing order aggregate using optimistic
	// concurrency: the write only succeeds when the stored row still carries
	// the version the aggregate was loaded with. A concurrent update in
	// between surfaces as errs.ErrVersionIsInvalid and the caller must reload
	// and retry.
	Update(ctx context.Context, aggregate *serviceorder.ServiceOrder) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*serviceorder.ServiceOrder, error)

	// NextSequence reserves and returns the next value of the order-number
	// sequence. Sequence values are never reused, so gaps appear when a
	// creation rolls back.
	NextSequence(ctx context.Context) (int64, error)
}
