package service

import (
	"github.com/deppfellow/bluewave/internal/lib/job"
	"github.com/deppfellow/bluewave/internal/lib/token"
	"github.com/deppfellow/bluewave/internal/lib/weather"
	"github.com/deppfellow/bluewave/internal/repository"
	"github.com/deppfellow/bluewave/internal/server"
)

type Services struct {
	Auth      *AuthService
	Wisata    *WisataService
	Blog      *BlogService
	Promo     *PromoService
	Tiket     *TiketService
	Mitra     *MitraService
	User      *UserService
	Dashboard *DashboardService
	Weather   *WeatherService

	// Tokens verifies the bearer token of private actions.
	Tokens token.Verifier
	// Audit is the sink every mutating service reports to.
	Audit AuditSink
	// DirectAudit is flushed on shutdown.
	DirectAudit *DirectAuditSink
	Job         *job.JobService
}

// NewService wires every service on the repositories and the shared
// resources of s. Audit entries go through the job queue when
// audit.mode is "queue", falling back to direct inserts.
func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	direct := NewDirectAuditSink(repos.Activity, s.Logger, s.Metrics)

	var sink AuditSink = direct
	var welcome WelcomeNotifier
	if s.Job != nil {
		if s.Config.Audit.Mode == "queue" {
			sink = job.NewQueueAuditSink(s.Job.Client, direct, s.Logger, s.Metrics)
		}
		welcome = job.NewWelcomeMailer(s.Job.Client)
	}

	tokens := token.NewJWTManager(s.Config.Auth)

	return &Services{
		Auth:        NewAuthService(repos.User, repos.Admin, repos.Mitra, tokens, welcome, s.Logger),
		Wisata:      NewWisataService(repos.Wisata, sink),
		Blog:        NewBlogService(repos.Blog, sink),
		Promo:       NewPromoService(repos.Promo, sink),
		Tiket:       NewTiketService(repos.Tiket, sink),
		Mitra:       NewMitraService(repos.Mitra, sink),
		User:        NewUserService(repos.User, repos.Tiket),
		Dashboard:   NewDashboardService(repos.Dashboard, repos.Activity, repos.Wisata),
		Weather:     NewWeatherService(weather.NewClient(s.Config.Weather), s.Logger, s.Metrics),
		Tokens:      tokens,
		Audit:       sink,
		DirectAudit: direct,
		Job:         s.Job,
	}, nil
}
