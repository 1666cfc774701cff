package commands

import (
	"context"
	"time"

	"serviceops/internal/core/domain/model/serviceorder"
	"serviceops/internal/core/domain/services"
)

// AdvanceOrderCommandHandler orchestrates a pipeline transition: guard check,
// side effects, then persistence, in that strict order. Any failure at any
// stage leaves the stored status untouched.
//
// Side effects (inventory reservation/deduction, survey creation) run within
// the same database transaction as the status update, under a bounded timeout
// so a stuck collaborator cannot hold the transition open indefinitely.
//
// Example:
//
//	handler := NewAdvanceOrderCommandHandler(uowFactory, transitionGuard, 5*time.Second)
//	cmd, _ := NewAdvanceOrderCommand(orderID)
//	newStatus, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrTechnicianRequired):
//	    // surface the unmet requirement to the operator
//	case errors.Is(err, errs.ErrVersionIsInvalid):
//	    // somebody else advanced the order first; reload and retry
//	case err != nil:
//	    // infrastructure failure
//	default:
//	    // order is now in newStatus
//	}
type AdvanceOrderCommandHandler struct {
	uowFactory        AdvanceUoWFactory
	transitionGuard   services.TransitionGuard
	sideEffectTimeout time.Duration
}

// NewAdvanceOrderCommandHandler creates a handler for pipeline transitions.
// sideEffectTimeout bounds each side-effect call; the guard policy is baked
// into the TransitionGuard at composition time.
func NewAdvanceOrderCommandHandler(
	uowFactory AdvanceUoWFactory,
	transitionGuard services.TransitionGuard,
	sideEffectTimeout time.Duration,
) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory:        uowFactory,
		transitionGuard:   transitionGuard,
		sideEffectTimeout: sideEffectTimeout,
	}
}

// Handle processes the advance command and returns the status the order ended
// up in. The sequence is fixed:
//
//  1. Load the order and its evidence records.
//  2. Evaluate the transition guard; a rejection reports the first unmet
//     requirement and changes nothing.
//  3. Dispatch the target status's side effects under the configured timeout.
//  4. Advance the aggregate and save it with an optimistic-concurrency check.
//
// Persist is the commit point: side effects ran inside the same transaction,
// so a failed save rolls them back with the status.
func (h AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) (serviceorder.Status, error) {
	if err := cmd.Validate(); err != nil {
		return serviceorder.Unknown, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return serviceorder.Unknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.ServiceOrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return serviceorder.Unknown, err
	}

	records, err := uow.EvidenceRepository().ListByOrder(ctx, aggregate.ID())
	if err != nil {
		return serviceorder.Unknown, err
	}

	next, err := aggregate.Status().Next()
	if err != nil {
		return serviceorder.Unknown, err
	}

	if _, err = h.transitionGuard.Check(aggregate, next, records); err != nil {
		return serviceorder.Unknown, err
	}

	if err = h.dispatchSideEffects(ctx, uow, aggregate, next); err != nil {
		return serviceorder.Unknown, err
	}

	if err = aggregate.AdvanceTo(next); err != nil {
		return serviceorder.Unknown, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return serviceorder.Unknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return serviceorder.Unknown, err
	}

	return next, nil
}

// dispatchSideEffects fires the side effects keyed by the target status.
// Each call gets its own bounded context; a timeout aborts the transition
// like any other failure. All three effects are idempotent, so a transition
// replayed after a failed persist does not double-book anything.
func (h AdvanceOrderCommandHandler) dispatchSideEffects(
	ctx context.Context,
	uow AdvanceUoW,
	aggregate *serviceorder.ServiceOrder,
	target serviceorder.Status,
) error {
	effectCtx, cancel := context.WithTimeout(ctx, h.sideEffectTimeout)
	defer cancel()

	switch target {
	case serviceorder.ServiceInProgress:
		return uow.InventoryService().Reserve(effectCtx, aggregate.ID())
	case serviceorder.ServiceCompleted:
		return uow.InventoryService().Deduct(effectCtx, aggregate.ID())
	case serviceorder.SurveySent:
		_, err := uow.SurveyRepository().GetOrCreate(effectCtx, aggregate.ID())
		return err
	default:
		return nil
	}
}
