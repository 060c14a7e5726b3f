package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/deppfellow/bluewave/internal/errs"
	"github.com/deppfellow/bluewave/internal/middleware"
	"github.com/deppfellow/bluewave/internal/model"
	"github.com/deppfellow/bluewave/internal/server"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Handler is the base handler type that holds shared application dependencies.
//
// It is embedded by concrete handlers so they can reach the config, logger
// and metrics through *server.Server.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// ActionFunc implements one action. Expected failures are returned as
// *errs.HTTPError and rendered by the global error handler.
type ActionFunc func(ctx context.Context, req ActionRequest) (Result, error)

// Result is a successful action outcome. Raw, when set, is written as the
// body verbatim; otherwise Body is encoded as JSON.
type Result struct {
	Status int
	Body   any
	Raw    json.RawMessage
}

func ok(data any) Result {
	return Result{Body: model.OK(data)}
}

func message(msg string) Result {
	return Result{Body: model.Message(msg)}
}

func messageData(msg string, data any) Result {
	return Result{Body: model.Response{Success: true, Message: msg, Data: data}}
}

func raw(body json.RawMessage) Result {
	return Result{Raw: body}
}

// write sends a Result.
func (r Result) write(c echo.Context) error {
	status := r.Status
	if status == 0 {
		status = http.StatusOK
	}
	if r.Raw != nil {
		return c.JSONBlob(status, r.Raw)
	}
	return c.JSON(status, r.Body)
}

// runAction is the shared execution pipeline for every action:
// structured logging, New Relic attributes, metrics and response writing.
// Errors are returned so the global error handler renders the envelope.
func (h Handler) runAction(c echo.Context, class string, req ActionRequest, fn ActionFunc) error {
	start := time.Now()

	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("action.name", req.Action)
		txn.AddAttribute("action.class", class)
	}

	logger := middleware.GetLogger(c).With().
		Str("operation", "action").
		Str("action", req.Action).
		Str("class", class).
		Logger()

	logger.Debug().Msg("handling action")

	result, err := fn(c.Request().Context(), req)
	duration := time.Since(start)

	if err != nil {
		status := statusOf(err)
		h.server.Metrics.ObserveAction(class, req.Action, true, status, duration)

		event := logger.Warn()
		if status >= http.StatusInternalServerError {
			event = logger.Error()
		}
		event.Err(err).Int("status", status).Dur("duration", duration).Msg("action failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("action.status", "error")
			txn.AddAttribute("action.duration_ms", duration.Milliseconds())
		}
		return err
	}

	status := result.Status
	if status == 0 {
		status = http.StatusOK
	}
	h.server.Metrics.ObserveAction(class, req.Action, true, status, duration)

	if txn != nil {
		txn.AddAttribute("action.status", "success")
		txn.AddAttribute("action.duration_ms", duration.Milliseconds())
	}

	logger.Info().Dur("duration", duration).Msg("action completed")

	return result.write(c)
}

// statusOf is the HTTP status err will be rendered with.
func statusOf(err error) int {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return errs.ClampStatus(httpErr.Status)
	}
	return http.StatusInternalServerError
}
