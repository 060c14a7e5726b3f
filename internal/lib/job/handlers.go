package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deppfellow/bluewave/internal/model"

	"github.com/hibiken/asynq"
)

// WelcomeSender delivers the registration email.
type WelcomeSender interface {
	SendWelcomeEmail(to, name string) error
}

// ActivityWriter persists one audit entry.
type ActivityWriter interface {
	Insert(ctx context.Context, entry model.ActivityEntry) error
}

// Handlers are the dependencies of the task handlers.
type Handlers struct {
	Email      WelcomeSender
	Activities ActivityWriter
}

// InitHandlers wires the dependencies used by the task handlers.
func (j *JobService) InitHandlers(h Handlers) {
	j.handlers = h
}

func (j *JobService) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal welcome email payload: %w: %w", err, asynq.SkipRetry)
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("Processing welcome email task")

	if err := j.handlers.Email.SendWelcomeEmail(p.To, p.Name); err != nil {
		j.logger.Error().
			Str("type", "welcome").
			Str("to", p.To).
			Err(err).
			Msg("Failed to send welcome email")
		return err
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("Successfully sent welcome email")

	return nil
}

func (j *JobService) handleAuditRecordTask(ctx context.Context, t *asynq.Task) error {
	var entry model.ActivityEntry
	if err := json.Unmarshal(t.Payload(), &entry); err != nil {
		return fmt.Errorf("failed to unmarshal audit payload: %w: %w", err, asynq.SkipRetry)
	}

	if err := j.handlers.Activities.Insert(ctx, entry); err != nil {
		j.logger.Error().
			Err(err).
			Int64("actor_id", entry.ActorID).
			Str("action", entry.Action).
			Msg("Failed to write audit entry")
		return err
	}

	return nil
}
