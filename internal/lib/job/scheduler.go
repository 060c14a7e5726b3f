package job

import (
	"context"
	"time"

	"github.com/deppfellow/bluewave/internal/lib/utils"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// PromoExpirer flips active promos whose end date is before today.
type PromoExpirer interface {
	ExpireBefore(ctx context.Context, today string) (int64, error)
}

// Scheduler runs periodic maintenance jobs in process.
type Scheduler struct {
	cron   *cron.Cron
	promos PromoExpirer
	logger *zerolog.Logger
	now    func() time.Time
}

// NewScheduler registers the promo expiry sweep on schedule. An empty
// schedule yields a scheduler with no entries.
func NewScheduler(logger *zerolog.Logger, schedule string, promos PromoExpirer) (*Scheduler, error) {
	s := &Scheduler{
		cron:   cron.New(cron.WithLocation(utils.Location)),
		promos: promos,
		logger: logger,
		now:    time.Now,
	}

	if schedule != "" {
		if _, err := s.cron.AddFunc(schedule, s.ExpirePromos); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// ExpirePromos runs one sweep.
func (s *Scheduler) ExpirePromos() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	today := utils.Today(s.now())
	n, err := s.promos.ExpireBefore(ctx, today)
	if err != nil {
		s.logger.Error().Err(err).Msg("promo expiry sweep failed")
		return
	}

	s.logger.Info().Int64("expired", n).Str("today", today).Msg("promo expiry sweep done")
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
