package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
//
// The inventory collaborator is exposed through the unit of work on purpose:
// its bookings live in the same database, so a guard-passed transition and its
// inventory side effect commit or roll back together.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// ServiceOrderRepository returns a ServiceOrderRepository bound to the
	// current transaction.
	ServiceOrderRepository() ServiceOrderRepository

	// EvidenceRepository returns an EvidenceRepository bound to the current
	// transaction.
	EvidenceRepository() EvidenceRepository

	// SurveyRepository returns a SurveyRepository bound to the current
	// transaction.
	SurveyRepository() SurveyRepository

	// InventoryService returns the inventory collaborator bound to the
	// current transaction.
	InventoryService() InventoryService
}
