package commands

import (
	"errors"

	"serviceops/internal/core/domain/model/kernel"
	"serviceops/internal/pkg/guard"
)

var (
	ErrCreateServiceOrderCommandIsNotConstructed = errors.New(
		"CreateServiceOrderCommand must be created via NewCreateServiceOrderCommand constructor",
	)
	ErrCompanyIsRequired     = errors.New("company is required")
	ErrServiceTypeIsRequired = errors.New("service type is required")
)

// CreateServiceOrderCommand represents a request to open a new service order.
// Encapsulates the client and job details captured when a request comes in;
// the order number is allocated by the handler, not the caller.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateServiceOrderCommand(orderID, "Transportes del Norte", "installation", "high", "Retarder install", nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateServiceOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateServiceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	company     string
	serviceType string
	priority    string
	description string
	quotationID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateServiceOrderCommand creates a command to open a new service order.
// Validates that the order ID is valid and that company and service type are
// not empty. Priority, description and the quotation reference are optional.
func NewCreateServiceOrderCommand(
	orderID kernel.UUID,
	company string,
	serviceType string,
	priority string,
	description string,
	quotationID *kernel.UUID,
) (CreateServiceOrderCommand, error) {
	command := CreateServiceOrderCommand{
		priority:    priority,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCompany(company),
		command.setServiceType(serviceType),
		command.setQuotationID(quotationID),
	); err != nil {
		return CreateServiceOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateServiceOrderCommandIsNotConstructed if validation fails.
func (c CreateServiceOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateServiceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateServiceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Company returns the client the work is performed for.
func (c CreateServiceOrderCommand) Company() string {
	return c.company
}

// ServiceType returns the kind of job.
func (c CreateServiceOrderCommand) ServiceType() string {
	return c.serviceType
}

// Priority returns the free-form scheduling priority.
func (c CreateServiceOrderCommand) Priority() string {
	return c.priority
}

// Description returns the free-form job description.
func (c CreateServiceOrderCommand) Description() string {
	return c.description
}

// QuotationID returns the optional back-reference to an accepted quotation.
func (c CreateServiceOrderCommand) QuotationID() *kernel.UUID {
	return c.quotationID
}

func (c *CreateServiceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateServiceOrderCommand) setCompany(company string) error {
	if company == "" {
		return ErrCompanyIsRequired
	}

	c.company = company
	return nil
}

func (c *CreateServiceOrderCommand) setServiceType(serviceType string) error {
	if serviceType == "" {
		return ErrServiceTypeIsRequired
	}

	c.serviceType = serviceType
	return nil
}

func (c *CreateServiceOrderCommand) setQuotationID(quotationID *kernel.UUID) error {
	if quotationID != nil {
		if err := quotationID.Validate(); err != nil {
			return err
		}
	}

	c.quotationID = quotationID
	return nil
}
