package service

import (
	"context"
	"sync"
	"time"

	"github.com/deppfellow/bluewave/internal/lib/metrics"
	"github.com/deppfellow/bluewave/internal/model"

	"github.com/rs/zerolog"
)

const auditWriteTimeout = 5 * time.Second

// ActivityStore persists audit entries.
type ActivityStore interface {
	Insert(ctx context.Context, entry model.ActivityEntry) error
	Recent(ctx context.Context, limit int) ([]model.Activity, error)
}

// DirectAuditSink writes entries on a background goroutine with a context
// detached from the request, so a finished request cannot cancel the
// insert.
type DirectAuditSink struct {
	store   ActivityStore
	logger  *zerolog.Logger
	metrics *metrics.Metrics
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewDirectAuditSink(store ActivityStore, logger *zerolog.Logger, m *metrics.Metrics) *DirectAuditSink {
	return &DirectAuditSink{
		store:   store,
		logger:  logger,
		metrics: m,
		timeout: auditWriteTimeout,
	}
}

func (s *DirectAuditSink) Record(ctx context.Context, entry model.ActivityEntry) {
	detached := context.WithoutCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		writeCtx, cancel := context.WithTimeout(detached, s.timeout)
		defer cancel()

		if err := s.store.Insert(writeCtx, entry); err != nil {
			s.logger.Error().
				Err(err).
				Int64("actor_id", entry.ActorID).
				Str("action", entry.Action).
				Msg("failed to write audit entry")
			s.metrics.ObserveAudit("direct", "error")
			return
		}

		s.metrics.ObserveAudit("direct", "ok")
	}()
}

// Wait blocks until every pending write has finished.
func (s *DirectAuditSink) Wait() {
	s.wg.Wait()
}
