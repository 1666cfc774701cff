package commands

import (
	"context"
	"time"
)

// SendSurveyRemindersCommandHandler stamps a reminder on every survey still
// awaiting completion. Completed surveys are never touched; an empty sweep is
// a successful no-op.
type SendSurveyRemindersCommandHandler struct {
	uowFactory SurveyUoWFactory
}

// NewSendSurveyRemindersCommandHandler creates a handler for reminder sweeps.
func NewSendSurveyRemindersCommandHandler(uowFactory SurveyUoWFactory) SendSurveyRemindersCommandHandler {
	return SendSurveyRemindersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reminder sweep and returns how many surveys were
// stamped.
func (h SendSurveyRemindersCommandHandler) Handle(ctx context.Context, cmd SendSurveyRemindersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	surveyRepo := uow.SurveyRepository()

	pending, err := surveyRepo.ListAwaitingCompletion(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	reminded := 0
	for _, record := range pending {
		if err = record.MarkReminded(now); err != nil {
			return 0, err
		}

		if err = surveyRepo.Update(ctx, record); err != nil {
			return 0, err
		}

		reminded++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return reminded, nil
}
