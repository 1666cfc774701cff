package ports

import (
	"context"

	"serviceops/internal/core/domain/model/kernel"
)

// InventoryService is the parts-inventory collaborator invoked as a transition
// side effect. Both operations are idempotent per order: replaying a
// transition does not double-book parts.
type InventoryService interface {
	// Reserve earmarks the parts an order needs when the work starts.
	// Reserving an order whose parts are already reserved is a no-op.
	Reserve(ctx context.Context, orderID kernel.UUID) error

	// Deduct converts an order's reservation into a stock deduction when the
	// work completes. Deducting an already-deducted order is a no-op.
	Deduct(ctx context.Context, orderID kernel.UUID) error
}
