package commands

import (
	"errors"

	"serviceops/internal/pkg/guard"
)

var ErrSendSurveyRemindersCommandIsNotConstructed = errors.New(
	"SendSurveyRemindersCommand must be created via NewSendSurveyRemindersCommand constructor",
)

// SendSurveyRemindersCommand triggers a reminder sweep over all surveys still
// awaiting an answer. This is a parameterless batch command driven by the
// reminder cron job.
type SendSurveyRemindersCommand struct {
	guard guard.ConstructorGuard
}

// NewSendSurveyRemindersCommand creates a command to run a reminder sweep.
func NewSendSurveyRemindersCommand() SendSurveyRemindersCommand {
	return SendSurveyRemindersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrSendSurveyRemindersCommandIsNotConstructed if validation fails.
func (c *SendSurveyRemindersCommand) Validate() error {
	return c.guard.Validate(ErrSendSurveyRemindersCommandIsNotConstructed)
}
