package commands

import (
	"errors"

	"serviceops/internal/core/domain/model/kernel"
	"serviceops/internal/pkg/guard"
)

var (
	ErrAssignTechnicianCommandIsNotConstructed = errors.New(
		"AssignTechnicianCommand must be created via NewAssignTechnicianCommand constructor",
	)
	ErrTechnicianNameIsRequired = errors.New("technician name is required")
)

// AssignTechnicianCommand represents a request to put a field technician on
// an order. Assignment is allowed in any status; whether the pipeline may
// proceed without one is the transition guard's concern.
type AssignTechnicianCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	technician string

	guard guard.ConstructorGuard
}

// NewAssignTechnicianCommand creates a command to assign a technician.
// Validates that the order ID is valid and the name is not empty.
func NewAssignTechnicianCommand(orderID kernel.UUID, technician string) (AssignTechnicianCommand, error) {
	command := AssignTechnicianCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTechnician(technician),
	); err != nil {
		return AssignTechnicianCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignTechnicianCommandIsNotConstructed if validation fails.
func (c AssignTechnicianCommand) Validate() error {
	return c.guard.Validate(ErrAssignTechnicianCommandIsNotConstructed)
}

// OrderID returns the identifier of the order.
func (c AssignTechnicianCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Technician returns the technician's name.
func (c AssignTechnicianCommand) Technician() string {
	return c.technician
}

func (c *AssignTechnicianCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignTechnicianCommand) setTechnician(technician string) error {
	if technician == "" {
		return ErrTechnicianNameIsRequired
	}

	c.technician = technician
	return nil
}
