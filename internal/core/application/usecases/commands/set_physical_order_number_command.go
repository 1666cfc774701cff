package commands

import (
	"errors"

	"serviceops/internal/core/domain/model/kernel"
	"serviceops/internal/pkg/guard"
)

var (
	ErrSetPhysicalOrderNumberCommandIsNotConstructed = errors.New(
		"SetPhysicalOrderNumberCommand must be created via NewSetPhysicalOrderNumberCommand constructor",
	)
	ErrPhysicalOrderNumberIsRequired = errors.New("physical order number is required")
)

// SetPhysicalOrderNumberCommand represents a request to capture the paper
// work-sheet number for an order.
type SetPhysicalOrderNumberCommand struct { //nolint:recvcheck //using for validation
	orderID             kernel.UUID
	physicalOrderNumber string

	guard guard.ConstructorGuard
}

// NewSetPhysicalOrderNumberCommand creates a command to capture the physical
// order number. Validates that the order ID is valid and the number is not
// empty.
func NewSetPhysicalOrderNumberCommand(orderID kernel.UUID, physicalOrderNumber string) (SetPhysicalOrderNumberCommand, error) {
	command := SetPhysicalOrderNumberCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setPhysicalOrderNumber(physicalOrderNumber),
	); err != nil {
		return SetPhysicalOrderNumberCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetPhysicalOrderNumberCommandIsNotConstructed if validation fails.
func (c SetPhysicalOrderNumberCommand) Validate() error {
	return c.guard.Validate(ErrSetPhysicalOrderNumberCommandIsNotConstructed)
}

// OrderID returns the identifier of the order.
func (c SetPhysicalOrderNumberCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PhysicalOrderNumber returns the captured paper work-sheet number.
func (c SetPhysicalOrderNumberCommand) PhysicalOrderNumber() string {
	return c.physicalOrderNumber
}

func (c *SetPhysicalOrderNumberCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SetPhysicalOrderNumberCommand) setPhysicalOrderNumber(number string) error {
	if number == "" {
		return ErrPhysicalOrderNumberIsRequired
	}

	c.physicalOrderNumber = number
	return nil
}
