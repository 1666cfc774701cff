package commands

import (
	"context"
)

// SetPhysicalOrderNumberCommandHandler handles capture of the paper
// work-sheet number.
type SetPhysicalOrderNumberCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetPhysicalOrderNumberCommandHandler creates a handler for physical
// order number capture operations.
func NewSetPhysicalOrderNumberCommandHandler(uowFactory OrderUoWFactory) SetPhysicalOrderNumberCommandHandler {
	return SetPhysicalOrderNumberCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the capture command.
func (h SetPhysicalOrderNumberCommandHandler) Handle(ctx context.Context, cmd SetPhysicalOrderNumberCommand) error {
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

	if err = aggregate.SetPhysicalOrderNumber(cmd.PhysicalOrderNumber()); err != nil {
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
