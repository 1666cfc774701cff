package jobs

import (
	"context"
	"log/slog"

	"serviceops/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// SurveyReminderJob periodically sweeps surveys still awaiting completion and
// stamps a reminder on each. An empty sweep is normal and is not logged as an
// error.
type SurveyReminderJob struct {
	handler  commands.SendSurveyRemindersCommandHandler
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewSurveyReminderJob creates a job that runs reminder sweeps on the given
// cron schedule.
func NewSurveyReminderJob(
	handler commands.SendSurveyRemindersCommandHandler,
	schedule string,
	logger *slog.Logger,
) *SurveyReminderJob {
	return &SurveyReminderJob{
		handler:  handler,
		cron:     cron.New(),
		schedule: schedule,
		logger:   logger.With("component", "survey_reminder_job"),
	}
}

// Start schedules the reminder sweep.
func (j *SurveyReminderJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewSendSurveyRemindersCommand()

		reminded, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Survey reminder sweep failed", "error", handleErr)
			return
		}

		if reminded > 0 {
			j.logger.InfoContext(ctx, "Survey reminders sent", "count", reminded)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Survey reminder job started", "schedule", j.schedule)
	return nil
}

// Stop stops the reminder job.
func (j *SurveyReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Survey reminder job stopped")
}
