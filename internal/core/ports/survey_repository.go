package ports

import (
	"context"

	"serviceops/internal/core/domain/model/kernel"
	"serviceops/internal/core/domain/model/survey"
)

// SurveyRepository defines the persistence contract for satisfaction surveys.
type SurveyRepository interface {
	// GetOrCreate returns the survey for an order, creating it when none
	// exists yet. At most one survey exists per order, so dispatching the
	// survey side effect twice for the same order is harmless.
	GetOrCreate(ctx context.Context, orderID kernel.UUID) (*survey.Survey, error)

	// ListAwaitingCompletion retrieves surveys that have not been answered
	// yet, oldest first. Used by the reminder job.
	ListAwaitingCompletion(ctx context.Context) ([]*survey.Survey, error)

	// Update persists reminder and completion stamps on an existing survey.
	Update(ctx context.Context, record *survey.Survey) error
}
