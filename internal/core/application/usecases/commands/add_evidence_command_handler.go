package commands

import (
	"context"
	"time"

	"serviceops/internal/core/domain/model/evidence"
)

// AddEvidenceCommandHandler handles evidence uploads. The owning order is
// loaded first so a record can never be attached to an order that does not
// exist.
type AddEvidenceCommandHandler struct {
	uowFactory EvidenceUoWFactory
}

// NewAddEvidenceCommandHandler creates a handler for evidence upload
// operations.
func NewAddEvidenceCommandHandler(uowFactory EvidenceUoWFactory) AddEvidenceCommandHandler {
	return AddEvidenceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the evidence upload command.
func (h AddEvidenceCommandHandler) Handle(ctx context.Context, cmd AddEvidenceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.ServiceOrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return err
	}

	record, err := evidence.NewEvidence(
		cmd.EvidenceID(),
		cmd.OrderID(),
		cmd.Kind(),
		cmd.FileName(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.EvidenceRepository().Add(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
