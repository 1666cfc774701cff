package ports

import (
	"context"

	"serviceops/internal/core/domain/model/evidence"
	"serviceops/internal/core/domain/model/kernel"
)

// EvidenceRepository defines the persistence contract for evidence records.
// Evidence is immutable once stored: there is no update or delete.
type EvidenceRepository interface {
	// Add persists a new evidence record.
	Add(ctx context.Context, record *evidence.Evidence) error

	// ListByOrder retrieves every evidence record attached to an order,
	// oldest first. Returns an empty slice when the order has none.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*evidence.Evidence, error)
}
