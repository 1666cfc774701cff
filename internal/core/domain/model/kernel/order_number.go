package kernel

import (
	"fmt"
	"regexp"
	"strconv"

	"serviceops/internal/pkg/errs"
)

const (
	// MinOrderSequence is the lowest sequence a service order number may carry.
	MinOrderSequence = 1

	// MaxOrderSequence is the highest sequence representable in the
	// five-digit "OS-#####" format.
	MaxOrderSequence = 99999

	orderNumberPrefix = "OS-"
)

var orderNumberPattern = regexp.MustCompile(`^OS-(\d{5})$`)

// ErrOrderNumberIsNotConstructed indicates that an OrderNumber was not created
// through NewOrderNumber or ParseOrderNumber.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderNumber must be created via NewOrderNumber or ParseOrderNumber",
)

// OrderNumber is the human-readable sequential identifier printed on service
// orders, formatted as "OS-#####". It complements the opaque UUID identity:
// the UUID is the primary key, the order number is what people quote on the
// phone and write on the physical work sheet.
//
// OrderNumber is immutable; the zero value is invalid and fails Validate.
//
// Example:
//
//	number, err := kernel.NewOrderNumber(42)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(number.String()) // "OS-00042"
type OrderNumber struct {
	sequence int64
}

// NewOrderNumber creates an OrderNumber from a positive sequence value.
// Returns an out-of-range error when the sequence does not fit the
// five-digit format.
func NewOrderNumber(sequence int64) (OrderNumber, error) {
	if sequence < MinOrderSequence || sequence > MaxOrderSequence {
		return OrderNumber{}, errs.NewValueIsOutOfRangeError(
			"order number sequence", sequence, MinOrderSequence, MaxOrderSequence,
		)
	}
	return OrderNumber{sequence: sequence}, nil
}

// ParseOrderNumber parses the canonical "OS-#####" representation.
// Used when reconstructing orders from persistence or parsing user input.
func ParseOrderNumber(s string) (OrderNumber, error) {
	match := orderNumberPattern.FindStringSubmatch(s)
	if match == nil {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"order number", fmt.Errorf("%q does not match the OS-##### format", s),
		)
	}

	sequence, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("order number", err)
	}

	return NewOrderNumber(sequence)
}

// Sequence returns the numeric part of the order number.
func (n OrderNumber) Sequence() int64 {
	return n.sequence
}

// String returns the canonical "OS-#####" representation.
func (n OrderNumber) String() string {
	return fmt.Sprintf("%s%05d", orderNumberPrefix, n.sequence)
}

// IsEqual compares two order numbers by sequence.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.sequence == other.sequence
}

// Validate checks that the order number was constructed through a factory
// function. A zero-value OrderNumber fails with ErrOrderNumberIsNotConstructed.
func (n OrderNumber) Validate() error {
	if n.sequence < MinOrderSequence {
		return ErrOrderNumberIsNotConstructed
	}
	return nil
}
