// Package evidence contains the Evidence entity: a stored-file reference
// attached to exactly one service order. Evidence records are immutable once
// created and never transition state themselves; they exist to be counted by
// the transition guards (one before photo to enter the operational phase, two
// before/after photos to mark evidence as uploaded).
package evidence

import (
	"errors"
	"fmt"
	"time"

	"serviceops/internal/core/domain/model/kernel"
	"serviceops/internal/pkg/errs"
)

// ErrEvidenceIsNotConstructed is returned when an Evidence instance was not
// created through the NewEvidence or RestoreEvidence factory methods.
var ErrEvidenceIsNotConstructed = errors.New("Evidence must be created via NewEvidence or RestoreEvidence")

// Kind tags what an evidence file is: a work document or a before/after photo.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	KindUnknown Kind = iota

	// Document is a scanned work document (purchase order, signed sheet).
	Document

	// PhotoBefore is a photo of the vehicle before the work.
	PhotoBefore

	// PhotoAfter is a photo of the vehicle after the work.
	PhotoAfter
)

// getKindStrings returns a map of Kind values to their string representations.
func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown: "unknown",
		Document:    "document",
		PhotoBefore: "photo_before",
		PhotoAfter:  "photo_after",
	}
}

// KindFromString parses the snake_case representation back into a Kind.
func KindFromString(s string) (Kind, error) {
	for kind, str := range getKindStrings() {
		if str == s && kind != KindUnknown {
			return kind, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause(
		"evidence kind", fmt.Errorf("%q is not an evidence kind", s),
	)
}

// Validate checks if the Kind value is valid.
func (k Kind) Validate() error {
	if k < Document || k > PhotoAfter {
		return errs.NewValueIsInvalidErrorWithCause(
			"evidence kind", fmt.Errorf("%d is not a valid evidence kind", k),
		)
	}
	return nil
}

// String returns the snake_case name of the kind.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}

// Evidence is a stored-file reference plus a kind tag, associated to exactly
// one service order. Immutable once created.
type Evidence struct {
	id            kernel.UUID
	orderID       kernel.UUID
	kind          Kind
	fileName      string
	uploadedAt    time.Time
	isConstructed bool
}

// NewEvidence creates an Evidence record for an order.
// All parameters are required; uploadedAt is passed in by the caller so the
// entity stays deterministic under test.
func NewEvidence(
	id kernel.UUID,
	orderID kernel.UUID,
	kind Kind,
	fileName string,
	uploadedAt time.Time,
) (*Evidence, error) {
	record := &Evidence{isConstructed: true}

	if err := errors.Join(
		record.setID(id),
		record.setOrderID(orderID),
		record.setKind(kind),
		record.setFileName(fileName),
		record.setUploadedAt(uploadedAt),
	); err != nil {
		return nil, err
	}

	return record, nil
}

// RestoreEvidence reconstructs an Evidence record from persistence.
func RestoreEvidence(
	id kernel.UUID,
	orderID kernel.UUID,
	kind Kind,
	fileName string,
	uploadedAt time.Time,
) (*Evidence, error) {
	return NewEvidence(id, orderID, kind, fileName, uploadedAt)
}

// Validate ensures the Evidence instance was properly constructed.
func (e *Evidence) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEvidenceIsNotConstructed
	}
	return nil
}

// ID returns the evidence record's unique identifier.
func (e *Evidence) ID() kernel.UUID {
	return e.id
}

// OrderID returns the identifier of the owning service order.
func (e *Evidence) OrderID() kernel.UUID {
	return e.orderID
}

// Kind returns the evidence kind tag.
func (e *Evidence) Kind() Kind {
	return e.kind
}

// FileName returns the stored file name.
func (e *Evidence) FileName() string {
	return e.fileName
}

// UploadedAt returns when the file was uploaded.
func (e *Evidence) UploadedAt() time.Time {
	return e.uploadedAt
}

// CountOfKinds counts the records matching any of the given kinds.
// Used by transition guards, which only ever count evidence.
func CountOfKinds(records []*Evidence, kinds ...Kind) int {
	count := 0
	for _, record := range records {
		for _, kind := range kinds {
			if record.kind == kind {
				count++
				break
			}
		}
	}
	return count
}

func (e *Evidence) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Evidence) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	e.orderID = orderID
	return nil
}

func (e *Evidence) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	e.kind = kind
	return nil
}

func (e *Evidence) setFileName(fileName string) error {
	if fileName == "" {
		return errs.NewValueIsRequiredError("file name")
	}
	e.fileName = fileName
	return nil
}

func (e *Evidence) setUploadedAt(uploadedAt time.Time) error {
	if uploadedAt.IsZero() {
		return errs.NewValueIsRequiredError("uploaded at")
	}
	e.uploadedAt = uploadedAt
	return nil
}
