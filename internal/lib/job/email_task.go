package job

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
)

// TaskWelcome is the Asynq task type of the registration email.
const TaskWelcome = "email:welcome"

type WelcomeEmailPayload struct {
	To   string `json:"to"`
	Name string `json:"name"`
}

// NewWelcomeEmailTask builds the task: 3 retries on the default queue,
// killed after 30s.
func NewWelcomeEmailTask(to, name string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{To: to, Name: name})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}

// WelcomeMailer enqueues welcome emails.
type WelcomeMailer struct {
	client Enqueuer
}

func NewWelcomeMailer(client Enqueuer) *WelcomeMailer {
	return &WelcomeMailer{client: client}
}

func (m *WelcomeMailer) EnqueueWelcome(ctx context.Context, to, name string) error {
	task, err := NewWelcomeEmailTask(to, name)
	if err != nil {
		return errors.Wrap(err, "build welcome task")
	}
	if _, err := m.client.EnqueueContext(ctx, task); err != nil {
		return errors.Wrap(err, "enqueue welcome task")
	}
	return nil
}
