// Package router builds the echo instance: global middleware, the action
// endpoints and the system routes.
package router

import (
	"net/http"

	"github.com/deppfellow/bluewave/internal/errs"
	"github.com/deppfellow/bluewave/internal/handler"
	"github.com/deppfellow/bluewave/internal/middleware"
	"github.com/deppfellow/bluewave/internal/server"

	"github.com/labstack/echo/v4"
)

// actionMethods are the methods the action endpoints answer. Reads come as
// GET with query parameters, writes as POST with a JSON body.
var actionMethods = []string{http.MethodGet, http.MethodPost}

func NewRouter(s *server.Server, h *handler.Handlers, mw *middleware.Middlewares) *echo.Echo {
	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	// Order matters: the request id feeds the tracing attributes and the
	// request logger, and Recover must see panics of everything after it.
	router.Use(
		middleware.RequestID(),
		mw.Tracing.NewRelicMiddleware(),
		mw.Tracing.EnhanceTracing(),
		mw.ContextEnhancer.EnhanceContext(),
		mw.Global.RequestLogger(),
		mw.Global.Recover(),
		mw.Global.CORS(),
		mw.Global.Secure(),
	)

	registerSystemRoutes(router, s, h)
	registerActionRoutes(router, h, mw)

	router.RouteNotFound("/*", func(c echo.Context) error {
		return errs.NewNotFoundError("Endpoint tidak ditemukan", true, nil)
	})

	return router
}

// registerActionRoutes mounts the dispatchers. The .php paths keep
// existing frontends working unchanged.
func registerActionRoutes(r *echo.Echo, h *handler.Handlers, mw *middleware.Middlewares) {
	api := r.Group("/api", mw.RateLimit.Limit())

	api.Match(actionMethods, "", h.Action.Dispatch)
	api.Match(actionMethods, "/api.php", h.Action.Dispatch)

	api.Match(actionMethods, "/auth", h.Auth.Dispatch)
	api.Match(actionMethods, "/auth.php", h.Auth.Dispatch)
}
