// Package survey contains the customer-satisfaction Survey entity created
// when an order enters the survey_sent status. Surveys are keyed by order id
// and created idempotently: asking twice for the same order yields the same
// survey record.
package survey

import (
	"errors"
	"time"

	"serviceops/internal/core/domain/model/kernel"
	"serviceops/internal/pkg/errs"
)

var (
	// ErrSurveyIsNotConstructed is returned when a Survey instance was not
	// created through the NewSurvey or RestoreSurvey factory methods.
	ErrSurveyIsNotConstructed = errors.New("Survey must be created via NewSurvey or RestoreSurvey")

	// ErrSurveyAlreadyCompleted is returned when completing or reminding an
	// already answered survey.
	ErrSurveyAlreadyCompleted = errors.New("survey is already completed")
)

// Survey tracks the satisfaction questionnaire sent to a client after the
// closing phase. One survey exists per order at most.
type Survey struct {
	id            kernel.UUID
	orderID       kernel.UUID
	createdAt     time.Time
	remindedAt    *time.Time
	completedAt   *time.Time
	isConstructed bool
}

// NewSurvey creates a Survey for an order.
func NewSurvey(id kernel.UUID, orderID kernel.UUID, createdAt time.Time) (*Survey, error) {
	record := &Survey{isConstructed: true}

	if err := errors.Join(
		record.setID(id),
		record.setOrderID(orderID),
		record.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return record, nil
}

// RestoreSurvey reconstructs a Survey from persistence.
func RestoreSurvey(
	id kernel.UUID,
	orderID kernel.UUID,
	createdAt time.Time,
	remindedAt *time.Time,
	completedAt *time.Time,
) (*Survey, error) {
	record, err := NewSurvey(id, orderID, createdAt)
	if err != nil {
		return nil, err
	}

	record.remindedAt = remindedAt
	record.completedAt = completedAt
	return record, nil
}

// Validate ensures the Survey instance was properly constructed.
func (s *Survey) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSurveyIsNotConstructed
	}
	return nil
}

// ID returns the survey's unique identifier.
func (s *Survey) ID() kernel.UUID {
	return s.id
}

// OrderID returns the identifier of the order the survey belongs to.
func (s *Survey) OrderID() kernel.UUID {
	return s.orderID
}

// CreatedAt returns when the survey was first sent.
func (s *Survey) CreatedAt() time.Time {
	return s.createdAt
}

// RemindedAt returns when the last reminder was sent, nil if never.
func (s *Survey) RemindedAt() *time.Time {
	return s.remindedAt
}

// CompletedAt returns when the client answered, nil while pending.
func (s *Survey) CompletedAt() *time.Time {
	return s.completedAt
}

// IsCompleted reports whether the client has answered the survey.
func (s *Survey) IsCompleted() bool {
	return s.completedAt != nil
}

// MarkReminded stamps a reminder time on a pending survey.
func (s *Survey) MarkReminded(at time.Time) error {
	if s.IsCompleted() {
		return ErrSurveyAlreadyCompleted
	}
	s.remindedAt = &at
	return nil
}

// Complete records the client's answer time.
func (s *Survey) Complete(at time.Time) error {
	if s.IsCompleted() {
		return ErrSurveyAlreadyCompleted
	}
	s.completedAt = &at
	return nil
}

func (s *Survey) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Survey) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	s.orderID = orderID
	return nil
}

func (s *Survey) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	s.createdAt = createdAt
	return nil
}
