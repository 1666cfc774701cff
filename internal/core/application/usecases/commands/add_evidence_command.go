package commands

import (
	"errors"

	"serviceops/internal/core/domain/model/evidence"
	"serviceops/internal/core/domain/model/kernel"
	"serviceops/internal/pkg/guard"
)

var (
	ErrAddEvidenceCommandIsNotConstructed = errors.New(
		"AddEvidenceCommand must be created via NewAddEvidenceCommand constructor",
	)
	ErrFileNameIsRequired = errors.New("file name is required")
)

// AddEvidenceCommand represents a request to attach an evidence file
// reference to an order. Evidence can be uploaded in any status; the guards
// count it when the pipeline reaches the states that require it.
type AddEvidenceCommand struct { //nolint:recvcheck //using for validation
	evidenceID kernel.UUID
	orderID    kernel.UUID
	kind       evidence.Kind
	fileName   string

	guard guard.ConstructorGuard
}

// NewAddEvidenceCommand creates a command to attach an evidence record.
// Validates both identifiers, the kind, and that the file name is not empty.
func NewAddEvidenceCommand(
	evidenceID kernel.UUID,
	orderID kernel.UUID,
	kind evidence.Kind,
	fileName string,
) (AddEvidenceCommand, error) {
	command := AddEvidenceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setEvidenceID(evidenceID),
		command.setOrderID(orderID),
		command.setKind(kind),
		command.setFileName(fileName),
	); err != nil {
		return AddEvidenceCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddEvidenceCommandIsNotConstructed if validation fails.
func (c AddEvidenceCommand) Validate() error {
	return c.guard.Validate(ErrAddEvidenceCommandIsNotConstructed)
}

// EvidenceID returns the identifier for the new evidence record.
func (c AddEvidenceCommand) EvidenceID() kernel.UUID {
	return c.evidenceID
}

// OrderID returns the identifier of the owning order.
func (c AddEvidenceCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Kind returns the evidence kind tag.
func (c AddEvidenceCommand) Kind() evidence.Kind {
	return c.kind
}

// FileName returns the stored file name.
func (c AddEvidenceCommand) FileName() string {
	return c.fileName
}

func (c *AddEvidenceCommand) setEvidenceID(evidenceID kernel.UUID) error {
	if err := evidenceID.Validate(); err != nil {
		return err
	}

	c.evidenceID = evidenceID
	return nil
}

func (c *AddEvidenceCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddEvidenceCommand) setKind(kind evidence.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *AddEvidenceCommand) setFileName(fileName string) error {
	if fileName == "" {
		return ErrFileNameIsRequired
	}

	c.fileName = fileName
	return nil
}
