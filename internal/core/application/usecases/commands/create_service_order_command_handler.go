package commands

import (
	"context"

	"serviceops/internal/core/domain/model/kernel"
	"serviceops/internal/core/domain/model/serviceorder"
)

// CreateServiceOrderCommandHandler handles the business logic for opening new
// service orders. Allocates the next OS-##### number from the database
// sequence and creates the aggregate in the request_received status.
type CreateServiceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateServiceOrderCommandHandler creates a handler for order creation
// operations. Requires an OrderUoWFactory for transactional persistence.
func NewCreateServiceOrderCommandHandler(uowFactory OrderUoWFactory) CreateServiceOrderCommandHandler {
	return CreateServiceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// The order number is taken from a database sequence inside the transaction;
// a rolled-back creation leaves a gap in the numbering, never a duplicate.
func (h CreateServiceOrderCommandHandler) Handle(ctx context.Context, cmd CreateServiceOrderCommand) error {
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

	sequence, err := orderRepo.NextSequence(ctx)
	if err != nil {
		return err
	}

	number, err := kernel.NewOrderNumber(sequence)
	if err != nil {
		return err
	}

	aggregate, err := serviceorder.NewServiceOrder(
		cmd.OrderID(),
		number,
		cmd.Company(),
		cmd.ServiceType(),
		cmd.Priority(),
		cmd.Description(),
		cmd.QuotationID(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
