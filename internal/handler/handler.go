// Package handler is the HTTP layer between the router and the services.
//
// The /api endpoint is a single action dispatcher: ?action= selects a
// handler from one of four registries (public, admin, mitra, user) after
// the bearer token has been verified. Handlers read an ActionRequest,
// call one service and return a Result; failures are *errs.HTTPError
// values rendered by the global error handler.
package handler
