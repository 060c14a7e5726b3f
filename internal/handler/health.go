package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/deppfellow/bluewave/internal/config"
	"github.com/deppfellow/bluewave/internal/middleware"
	"github.com/deppfellow/bluewave/internal/server"

	"github.com/labstack/echo/v4"
)

const defaultHealthCheckTimeout = 5 * time.Second

// HealthHandler serves /status for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

type healthCheck struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

type healthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]healthCheck `json:"checks"`
}

// CheckHealth pings the database and Redis.
//
// The database is required: when it is down the answer is 503. Redis only
// backs the job queue, whose callers fall back to direct writes, so a
// Redis failure is reported but keeps the 200.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := healthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      make(map[string]healthCheck),
	}

	ctx := c.Request().Context()
	checks, timeout := h.checks()

	var dbErr string
	if checks.Has("database") {
		dbCheck := h.probe(ctx, "database", timeout, func(ctx context.Context) error {
			return h.server.DB.Pool.Ping(ctx)
		})
		response.Checks["database"] = dbCheck
		dbErr = dbCheck.Error
	}

	if h.server.Redis != nil && checks.Has("redis") {
		response.Checks["redis"] = h.probe(ctx, "redis", timeout, func(ctx context.Context) error {
			return h.server.Redis.Ping(ctx).Err()
		})
	}

	if dbErr != "" {
		response.Status = "unhealthy"
		logger.Warn().Dur("total_duration", time.Since(start)).Msg("health check failed")
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().Dur("total_duration", time.Since(start)).Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}

// checks falls back to pinging both dependencies when observability is
// not configured.
func (h *HealthHandler) checks() (config.HealthChecksConfig, time.Duration) {
	obs := h.server.Config.Observability
	if obs == nil {
		return config.HealthChecksConfig{Enabled: true, Checks: []string{"database", "redis"}}, defaultHealthCheckTimeout
	}

	timeout := obs.HealthChecks.Timeout
	if timeout <= 0 {
		timeout = defaultHealthCheckTimeout
	}
	return obs.HealthChecks, timeout
}

// probe runs one dependency check under its own timeout.
func (h *HealthHandler) probe(ctx context.Context, name string, timeout time.Duration, ping func(context.Context) error) healthCheck {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	err := ping(ctx)
	elapsed := time.Since(start)

	if err == nil {
		return healthCheck{Status: "healthy", ResponseTime: elapsed.String()}
	}

	h.server.Logger.Error().
		Err(err).
		Str("check", name).
		Dur("response_time", elapsed).
		Msg("health check failed")

	if app := h.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("HealthCheckError", map[string]any{
			"check_type":       name,
			"operation":        "health_check",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		})
	}

	return healthCheck{Status: "unhealthy", ResponseTime: elapsed.String(), Error: err.Error()}
}
