package commands

import (
	"context"
)

// AssignTechnicianCommandHandler handles technician assignment.
// Loads the order, applies the assignment, and saves it with the usual
// optimistic-concurrency check.
type AssignTechnicianCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAssignTechnicianCommandHandler creates a handler for technician
// assignment operations.
func NewAssignTechnicianCommandHandler(uowFactory OrderUoWFactory) AssignTechnicianCommandHandler {
	return AssignTechnicianCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
func (h AssignTechnicianCommandHandler) Handle(ctx context.Context, cmd AssignTechnicianCommand) error {
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

	orderRepo := uow.ServiceOrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AssignTechnician(cmd.Technician()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
