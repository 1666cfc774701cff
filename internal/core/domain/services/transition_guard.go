package services

import (
	"errors"

	"serviceops/internal/core/domain/model/evidence"
	"serviceops/internal/core/domain/model/serviceorder"
)

// Guard rejection reasons. Each maps one unmet readiness requirement; handlers
// surface them to clients verbatim so the operator knows what to fix.
var (
	// ErrTechnicianRequired is returned when an order tries to enter the
	// operational phase without an assigned technician.
	ErrTechnicianRequired = errors.New("a technician must be assigned before the order enters the operational phase")

	// ErrPhysicalOrderNumberRequired is returned when an order tries to enter
	// the operational phase without a captured physical order number.
	ErrPhysicalOrderNumberRequired = errors.New("the physical order number must be captured before the order enters the operational phase")

	// ErrPhysicalOrderPhotoRequired is returned when an order tries to enter
	// the operational phase without a photo of the physical order sheet.
	ErrPhysicalOrderPhotoRequired = errors.New("a photo of the physical order sheet must be uploaded before the order enters the operational phase")

	// ErrBeforeAfterPhotosRequired is returned when an order tries to reach
	// evidence_uploaded without at least two before/after photos.
	ErrBeforeAfterPhotosRequired = errors.New("at least two before/after photos must be uploaded before evidence is considered complete")

	// ErrPurchaseOrderDocumentRequired is returned when the purchase-order
	// policy is enabled and an order tries to reach quote_accepted without a
	// purchase order document on file.
	ErrPurchaseOrderDocumentRequired = errors.New("a purchase order document must be uploaded before the quote is accepted")
)

// GuardPolicy carries deployment-level toggles for optional guards.
type GuardPolicy struct {
	// RequirePurchaseOrderDocument, when enabled, blocks the transition into
	// quote_accepted until a document evidence record exists. Off by default:
	// most clients authorize work without a formal purchase order.
	RequirePurchaseOrderDocument bool
}

// guardFn checks one readiness requirement for a transition. It receives the
// order and its evidence records and returns nil when the requirement is met.
type guardFn func(order *serviceorder.ServiceOrder, records []*evidence.Evidence) error

// TransitionGuard is a domain service deciding whether a service order may
// advance to a requested status.
//
// Guards are keyed by the TARGET status, not the current one: the question is
// always "is the order ready to BE in that state". For each target the guards
// run in a fixed order and the first unmet requirement wins, so clients see a
// stable, most-fundamental-first rejection reason.
//
// The guard never mutates the order. A nil error from Check means the caller
// may proceed with side effects and ServiceOrder.AdvanceTo.
type TransitionGuard struct {
	guards map[serviceorder.Status][]guardFn
}

// NewTransitionGuard builds the guard table for the given policy.
func NewTransitionGuard(policy GuardPolicy) TransitionGuard {
	guards := make(map[serviceorder.Status][]guardFn)

	// Entering the operational phase requires the fieldwork prerequisites:
	// somebody to do the work, the paper order number, and a photo of the
	// physical order sheet. Checked on every operational-phase target so an
	// order restored mid-pipeline is re-validated on each step.
	operationalGuards := []guardFn{
		requireTechnician,
		requirePhysicalOrderNumber,
		requirePhysicalOrderPhoto,
	}
	for _, status := range serviceorder.PhaseOperational.Statuses() {
		guards[status] = operationalGuards
	}

	guards[serviceorder.EvidenceUploaded] = []guardFn{requireBeforeAfterPhotos}

	if policy.RequirePurchaseOrderDocument {
		guards[serviceorder.QuoteAccepted] = []guardFn{requirePurchaseOrderDocument}
	}

	return TransitionGuard{guards: guards}
}

// Check validates that the order may advance to the given target status.
//
// It first resolves the order's immediate successor (the only legal target)
// and verifies it matches the requested one, then runs the target's guards in
// order. Returns the resolved next status so callers advance to exactly what
// was checked.
func (g TransitionGuard) Check(
	order *serviceorder.ServiceOrder,
	target serviceorder.Status,
	records []*evidence.Evidence,
) (serviceorder.Status, error) {
	if err := order.Validate(); err != nil {
		return serviceorder.Unknown, err
	}

	next, err := order.Status().Next()
	if err != nil {
		return serviceorder.Unknown, err
	}

	if target != next {
		// Delegate the rejection message to the aggregate's own rule.
		return serviceorder.Unknown, order.AdvanceTo(target)
	}

	for _, guard := range g.guards[target] {
		if err := guard(order, records); err != nil {
			return serviceorder.Unknown, err
		}
	}

	return next, nil
}

// IsGuardRejection reports whether the error is one of the named guard
// failures, as opposed to a validation or infrastructure error.
func IsGuardRejection(err error) bool {
	return errors.Is(err, ErrTechnicianRequired) ||
		errors.Is(err, ErrPhysicalOrderNumberRequired) ||
		errors.Is(err, ErrPhysicalOrderPhotoRequired) ||
		errors.Is(err, ErrBeforeAfterPhotosRequired) ||
		errors.Is(err, ErrPurchaseOrderDocumentRequired)
}

func requireTechnician(order *serviceorder.ServiceOrder, _ []*evidence.Evidence) error {
	if order.Technician() == "" {
		return ErrTechnicianRequired
	}
	return nil
}

func requirePhysicalOrderNumber(order *serviceorder.ServiceOrder, _ []*evidence.Evidence) error {
	if order.PhysicalOrderNumber() == "" {
		return ErrPhysicalOrderNumberRequired
	}
	return nil
}

func requirePhysicalOrderPhoto(_ *serviceorder.ServiceOrder, records []*evidence.Evidence) error {
	if evidence.CountOfKinds(records, evidence.PhotoBefore) < 1 {
		return ErrPhysicalOrderPhotoRequired
	}
	return nil
}

func requireBeforeAfterPhotos(_ *serviceorder.ServiceOrder, records []*evidence.Evidence) error {
	if evidence.CountOfKinds(records, evidence.PhotoBefore, evidence.PhotoAfter) < 2 {
		return ErrBeforeAfterPhotosRequired
	}
	return nil
}

func requirePurchaseOrderDocument(_ *serviceorder.ServiceOrder, records []*evidence.Evidence) error {
	if evidence.CountOfKinds(records, evidence.Document) < 1 {
		return ErrPurchaseOrderDocumentRequired
	}
	return nil
}
