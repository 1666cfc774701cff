package serviceorder

import (
	"errors"
	"fmt"

	"serviceops/internal/pkg/errs"
)

// ErrPipelineComplete is returned when an order in the final pipeline status
// is asked for its successor. Paid is terminal; there is nothing to advance to.
var ErrPipelineComplete = errors.New("pipeline is complete: order is already in its final status")

// Status represents the lifecycle state of a service order.
// The fifteen valid statuses form one fixed, totally ordered pipeline;
// an order only ever moves to the immediate successor of its current
// status. Backward motion is an administrative override outside this type.
//
// Pipeline (phases in brackets):
//
//	[commercial]      request_received -> quote_sent -> quote_accepted
//	[operational]     technician_assigned -> service_scheduled -> documentation_sent
//	                  -> technician_in_contact -> service_in_progress -> additional_authorization
//	[closing]         service_completed -> evidence_uploaded -> documentation_delivered
//	[administrative]  survey_sent -> invoiced -> paid
//
// Status is a value object that validates itself and provides string
// representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// RequestReceived is the initial status when an order is first created,
	// either directly or at quotation-acceptance time.
	RequestReceived

	// QuoteSent indicates a quotation has been sent to the client.
	QuoteSent

	// QuoteAccepted indicates the client accepted the quotation.
	// Last status of the commercial phase.
	QuoteAccepted

	// TechnicianAssigned is the first operational status; entering it
	// requires a technician, a physical order number, and a before photo.
	TechnicianAssigned

	// ServiceScheduled indicates a visit date has been agreed.
	ServiceScheduled

	// DocumentationSent indicates work documentation was sent ahead of the visit.
	DocumentationSent

	// TechnicianInContact indicates the technician reached the client on site.
	TechnicianInContact

	// ServiceInProgress indicates installation work has started.
	// Entering it reserves the inventory attached to the order.
	ServiceInProgress

	// AdditionalAuthorization indicates extra work awaiting client sign-off.
	AdditionalAuthorization

	// ServiceCompleted indicates the work is finished.
	// Entering it deducts the reserved inventory.
	ServiceCompleted

	// EvidenceUploaded indicates before/after photographic evidence is on file.
	EvidenceUploaded

	// DocumentationDelivered indicates closing paperwork was handed over.
	DocumentationDelivered

	// SurveySent indicates the satisfaction survey was sent.
	// Entering it creates the survey record if one does not exist yet.
	SurveySent

	// Invoiced indicates the invoice was issued.
	Invoiced

	// Paid indicates payment was received. Terminal status.
	Paid
)

// pipeline returns the fixed ordered sequence of valid statuses.
// Index position is the pipeline position; the registry is immutable
// process-wide configuration.
func pipeline() []Status {
	return []Status{
		RequestReceived,
		QuoteSent,
		QuoteAccepted,
		TechnicianAssigned,
		ServiceScheduled,
		DocumentationSent,
		TechnicianInContact,
		ServiceInProgress,
		AdditionalAuthorization,
		ServiceCompleted,
		EvidenceUploaded,
		DocumentationDelivered,
		SurveySent,
		Invoiced,
		Paid,
	}
}

// Pipeline returns a copy of the ordered status registry.
// Callers may not rely on mutating the returned slice.
func Pipeline() []Status {
	return pipeline()
}

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                 "unknown",
		RequestReceived:         "request_received",
		QuoteSent:               "quote_sent",
		QuoteAccepted:           "quote_accepted",
		TechnicianAssigned:      "technician_assigned",
		ServiceScheduled:        "service_scheduled",
		DocumentationSent:       "documentation_sent",
		TechnicianInContact:     "technician_in_contact",
		ServiceInProgress:       "service_in_progress",
		AdditionalAuthorization: "additional_authorization",
		ServiceCompleted:        "service_completed",
		EvidenceUploaded:        "evidence_uploaded",
		DocumentationDelivered:  "documentation_delivered",
		SurveySent:              "survey_sent",
		Invoiced:                "invoiced",
		Paid:                    "paid",
	}
}

// StatusFromString parses the snake_case representation back into a Status.
// Returns an error for unknown or empty input.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a pipeline status", s),
	)
}

// Validate checks if the Status value is a member of the pipeline.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if s < RequestReceived || s > Paid {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the snake_case name of the status.
// Implements fmt.Stringer; safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status is the last one in the pipeline.
func (s Status) IsTerminal() bool {
	return s == Paid
}

// Next returns the immediate successor of the status in the pipeline.
//
// Returns ErrPipelineComplete when called on the terminal status, and a
// validation error when called on a value outside the registry. Next never
// skips: the only reachable status from any position is the one directly
// after it.
func (s Status) Next() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() {
		return Unknown, ErrPipelineComplete
	}
	return s + 1, nil
}

// Phase returns the phase grouping the status belongs to.
// Total over the fifteen valid statuses; Unknown maps to PhaseUnknown.
func (s Status) Phase() Phase {
	switch {
	case s >= RequestReceived && s <= QuoteAccepted:
		return PhaseCommercial
	case s >= TechnicianAssigned && s <= AdditionalAuthorization:
		return PhaseOperational
	case s >= ServiceCompleted && s <= DocumentationDelivered:
		return PhaseClosing
	case s >= SurveySent && s <= Paid:
		return PhaseAdministrative
	default:
		return PhaseUnknown
	}
}
