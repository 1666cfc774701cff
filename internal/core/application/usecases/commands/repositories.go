// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"serviceops/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the service order repository within a transaction.
	OrderRepoFactory interface {
		ServiceOrderRepository() ports.ServiceOrderRepository
	}

	// EvidenceRepoFactory provides access to the evidence repository within a transaction.
	EvidenceRepoFactory interface {
		EvidenceRepository() ports.EvidenceRepository
	}

	// SurveyRepoFactory provides access to the survey repository within a transaction.
	SurveyRepoFactory interface {
		SurveyRepository() ports.SurveyRepository
	}

	// InventoryFactory provides access to the inventory collaborator within a transaction.
	InventoryFactory interface {
		InventoryService() ports.InventoryService
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by commands that only touch the service order aggregate.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// EvidenceUoW manages transactions for evidence uploads, which also need
	// the order repository to verify the owning order exists.
	EvidenceUoW interface {
		TxManager
		OrderRepoFactory
		EvidenceRepoFactory
	}

	// EvidenceUoWFactory creates new evidence unit of work instances.
	EvidenceUoWFactory interface {
		Create() EvidenceUoW
	}

	// SurveyUoW manages transactions for survey maintenance operations.
	SurveyUoW interface {
		TxManager
		SurveyRepoFactory
	}

	// SurveyUoWFactory creates new survey unit of work instances.
	SurveyUoWFactory interface {
		Create() SurveyUoW
	}

	// AdvanceUoW manages transactions for pipeline transitions. Advancing an
	// order touches every collaborator: the order itself, its evidence set
	// for guard evaluation, and the inventory and survey side effects.
	AdvanceUoW interface {
		TxManager
		OrderRepoFactory
		EvidenceRepoFactory
		SurveyRepoFactory
		InventoryFactory
	}

	// AdvanceUoWFactory creates new advance unit of work instances.
	AdvanceUoWFactory interface {
		Create() AdvanceUoW
	}
)
