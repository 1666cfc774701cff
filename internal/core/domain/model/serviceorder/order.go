package serviceorder

import (
	"errors"
	"fmt"

	"serviceops/internal/core/domain/model/kernel"
	"serviceops/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when a ServiceOrder instance was not
	// created through the NewServiceOrder or RestoreServiceOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("ServiceOrder must be created via NewServiceOrder or RestoreServiceOrder")
)

// ServiceOrder is the aggregate under lifecycle control. It tracks a brake
// retarder sale-and-installation job from the initial client request through
// payment, one pipeline status at a time.
//
// ServiceOrder follows these invariants:
//   - Must have a valid unique identifier and a valid OS-##### number
//   - Status is always a member of the pipeline registry, never Unknown
//   - Status only ever moves to its immediate successor via AdvanceTo
//   - Orders past the commercial phase always carry a technician and a
//     physical order number
//   - Can only be created through NewServiceOrder or RestoreServiceOrder
//
// Whether an advance is permitted (guards over the order's fields and its
// evidence records) is decided outside the aggregate by the transition guard;
// the aggregate itself only enforces the no-skipping rule. The version field
// is an optimistic-concurrency token: the repository refuses to save an
// aggregate whose version no longer matches the stored row.
type ServiceOrder struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// number is the human-readable sequential OS-##### identifier
	number kernel.OrderNumber

	// company is the client the work is performed for
	company string

	// serviceType describes the kind of job (sale, installation, revision)
	serviceType string

	// priority is free-form scheduling guidance, immutable to the state machine
	priority string

	// description is free-form job detail, immutable to the state machine
	description string

	// technician is the assigned field technician; empty until assigned
	technician string

	// physicalOrderNumber is the paper work-sheet number captured on site
	physicalOrderNumber string

	// quotationID is a weak back-reference to the originating quotation
	quotationID *kernel.UUID

	// status is the current position in the lifecycle pipeline
	status Status

	// version is the optimistic-concurrency token checked on save
	version int

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewServiceOrder creates a ServiceOrder in the initial request_received
// status. This is the only way to create a brand-new order; orders loaded
// from persistence go through RestoreServiceOrder instead.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - number: sequential OS-##### number (must be constructed)
//   - company: client name (required)
//   - serviceType: job kind (required)
//   - priority, description: free-form, may be empty
//   - quotationID: optional back-reference to an accepted quotation
func NewServiceOrder(
	id kernel.UUID,
	number kernel.OrderNumber,
	company string,
	serviceType string,
	priority string,
	description string,
	quotationID *kernel.UUID,
) (*ServiceOrder, error) {
	order := &ServiceOrder{
		status:        RequestReceived,
		priority:      priority,
		description:   description,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setNumber(number),
		order.setCompany(company),
		order.setServiceType(serviceType),
		order.setQuotationID(quotationID),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreServiceOrder reconstructs a ServiceOrder from persistence.
// All invariants are re-checked: the status must be a pipeline member, and
// orders past the commercial phase must carry a technician and a physical
// order number.
func RestoreServiceOrder(
	id kernel.UUID,
	number kernel.OrderNumber,
	company string,
	serviceType string,
	priority string,
	description string,
	technician string,
	physicalOrderNumber string,
	quotationID *kernel.UUID,
	status Status,
	version int,
) (*ServiceOrder, error) {
	order := &ServiceOrder{
		priority:      priority,
		description:   description,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setNumber(number),
		order.setCompany(company),
		order.setServiceType(serviceType),
		order.setQuotationID(quotationID),
		order.setStatus(status),
		order.setVersion(version),
	); err != nil {
		return nil, err
	}

	order.technician = technician
	order.physicalOrderNumber = physicalOrderNumber

	if status.Phase() != PhaseCommercial {
		if technician == "" {
			return nil, errs.NewValueIsRequiredErrorWithCause(
				"technician", fmt.Errorf("status %s requires an assigned technician", status),
			)
		}
		if physicalOrderNumber == "" {
			return nil, errs.NewValueIsRequiredErrorWithCause(
				"physical order number", fmt.Errorf("status %s requires a captured physical order number", status),
			)
		}
	}

	return order, nil
}

// Validate ensures the ServiceOrder instance was properly constructed through
// a factory method. Returns ErrOrderIsNotConstructed otherwise.
func (o *ServiceOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *ServiceOrder) IsEqual(other *ServiceOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *ServiceOrder) ID() kernel.UUID {
	return o.id
}

// Number returns the human-readable OS-##### order number.
func (o *ServiceOrder) Number() kernel.OrderNumber {
	return o.number
}

// Company returns the client the work is performed for.
func (o *ServiceOrder) Company() string {
	return o.company
}

// ServiceType returns the kind of job.
func (o *ServiceOrder) ServiceType() string {
	return o.serviceType
}

// Priority returns the free-form scheduling priority.
func (o *ServiceOrder) Priority() string {
	return o.priority
}

// Description returns the free-form job description.
func (o *ServiceOrder) Description() string {
	return o.description
}

// Technician returns the assigned technician, empty when unassigned.
func (o *ServiceOrder) Technician() string {
	return o.technician
}

// PhysicalOrderNumber returns the paper work-sheet number, empty until captured.
func (o *ServiceOrder) PhysicalOrderNumber() string {
	return o.physicalOrderNumber
}

// QuotationID returns the weak back-reference to the originating quotation.
// Returns nil when the order was created directly.
func (o *ServiceOrder) QuotationID() *kernel.UUID {
	return o.quotationID
}

// Status returns the current pipeline status.
func (o *ServiceOrder) Status() Status {
	return o.status
}

// Version returns the optimistic-concurrency token loaded from persistence.
func (o *ServiceOrder) Version() int {
	return o.version
}

// AssignTechnician sets the field technician for the order.
// The only rule here is that the name is non-empty; whether the pipeline may
// proceed without a technician is the transition guard's concern.
func (o *ServiceOrder) AssignTechnician(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("technician")
	}
	o.technician = name
	return nil
}

// SetPhysicalOrderNumber captures the paper work-sheet number.
// Non-empty validation only, mirroring AssignTechnician.
func (o *ServiceOrder) SetPhysicalOrderNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("physical order number")
	}
	o.physicalOrderNumber = number
	return nil
}

// AdvanceTo moves the order to the given status.
//
// The target must be the immediate successor of the current status; the
// aggregate refuses skips, backward motion, and advances past the terminal
// status (ErrPipelineComplete). Guard evaluation happens before this call;
// AdvanceTo is the final, unconditional step of a permitted transition.
func (o *ServiceOrder) AdvanceTo(target Status) error {
	next, err := o.status.Next()
	if err != nil {
		return err
	}

	if target != next {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot advance from %s to %s, next status is %s", o.status, target, next),
		)
	}

	o.status = target
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *ServiceOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setNumber validates and sets the OS-##### order number.
func (o *ServiceOrder) setNumber(number kernel.OrderNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *ServiceOrder) setCompany(company string) error {
	if company == "" {
		return errs.NewValueIsRequiredError("company")
	}
	o.company = company
	return nil
}

func (o *ServiceOrder) setServiceType(serviceType string) error {
	if serviceType == "" {
		return errs.NewValueIsRequiredError("service type")
	}
	o.serviceType = serviceType
	return nil
}

func (o *ServiceOrder) setQuotationID(quotationID *kernel.UUID) error {
	if quotationID != nil {
		if err := quotationID.Validate(); err != nil {
			return err
		}
	}
	o.quotationID = quotationID
	return nil
}

func (o *ServiceOrder) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *ServiceOrder) setVersion(version int) error {
	if version < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"version", fmt.Errorf("%d is negative", version),
		)
	}
	o.version = version
	return nil
}
