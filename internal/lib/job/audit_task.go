package job

import (
	"context"
	"encoding/json"
	"time"

	"github.com/deppfellow/bluewave/internal/lib/metrics"
	"github.com/deppfellow/bluewave/internal/model"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// TaskAuditRecord is the Asynq task type of an audit entry.
const TaskAuditRecord = "audit:record"

const auditEnqueueTimeout = 2 * time.Second

func NewAuditTask(entry model.ActivityEntry) (*asynq.Task, error) {
	payload, err := json.Marshal(entry)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskAuditRecord,
		payload,
		asynq.MaxRetry(5),
		asynq.Queue("low"),
		asynq.Timeout(10*time.Second),
	), nil
}

// Recorder is the audit sink contract: fire and forget.
type Recorder interface {
	Record(ctx context.Context, entry model.ActivityEntry)
}

// QueueAuditSink enqueues audit entries. When Redis cannot take the task
// the entry goes to fallback instead.
type QueueAuditSink struct {
	client   Enqueuer
	fallback Recorder
	logger   *zerolog.Logger
	metrics  *metrics.Metrics
}

func NewQueueAuditSink(client Enqueuer, fallback Recorder, logger *zerolog.Logger, m *metrics.Metrics) *QueueAuditSink {
	return &QueueAuditSink{client: client, fallback: fallback, logger: logger, metrics: m}
}

// Record never blocks the caller for longer than the enqueue timeout and
// never reports failure.
func (s *QueueAuditSink) Record(ctx context.Context, entry model.ActivityEntry) {
	task, err := NewAuditTask(entry)
	if err != nil {
		s.logger.Error().Err(err).Str("action", entry.Action).Msg("failed to build audit task")
		s.metrics.ObserveAudit("queue", "error")
		return
	}

	enqCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), auditEnqueueTimeout)
	defer cancel()

	if _, err := s.client.EnqueueContext(enqCtx, task); err != nil {
		s.logger.Warn().Err(err).Str("action", entry.Action).Msg("audit enqueue failed, writing directly")
		s.metrics.ObserveAudit("queue", "fallback")
		if s.fallback != nil {
			s.fallback.Record(ctx, entry)
		}
		return
	}

	s.metrics.ObserveAudit("queue", "ok")
}
