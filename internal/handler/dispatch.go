package handler

import (
	"strconv"

	"github.com/deppfellow/bluewave/internal/errs"
	"github.com/deppfellow/bluewave/internal/lib/token"
	"github.com/deppfellow/bluewave/internal/middleware"
	"github.com/deppfellow/bluewave/internal/model"

	"github.com/labstack/echo/v4"
)

// Action classes. They name the registry in "Action <class> tidak dikenali".
const (
	ClassPublic = "publik"
	ClassAdmin  = "admin"
	ClassMitra  = "mitra"
	ClassUser   = "user"
	ClassAuth   = "auth"
)

// Registry maps action names of one class to their handlers.
type Registry struct {
	class   string
	actions map[string]ActionFunc
}

func NewRegistry(class string) *Registry {
	return &Registry{class: class, actions: make(map[string]ActionFunc)}
}

// Register adds fn under name and returns r for chaining.
func (r *Registry) Register(name string, fn ActionFunc) *Registry {
	r.actions[name] = fn
	return r
}

func (r *Registry) Lookup(name string) (ActionFunc, bool) {
	fn, ok := r.actions[name]
	return fn, ok
}

// unknown is the 404 for an action missing from r.
func (r *Registry) unknown() error {
	return errs.NewNotFoundError("Action "+r.class+" tidak dikenali", true, nil)
}

// Registries is the action table of the /api endpoint.
type Registries struct {
	Public *Registry
	Admin  *Registry
	Mitra  *Registry
	User   *Registry
}

// ActionHandler serves the single action endpoint.
type ActionHandler struct {
	Handler
	verifier   token.Verifier
	registries Registries
}

func NewActionHandler(h Handler, verifier token.Verifier, registries Registries) *ActionHandler {
	return &ActionHandler{Handler: h, verifier: verifier, registries: registries}
}

// Dispatch routes ?action= to a handler.
//
// Public actions run without a token. Every other action needs a token
// that the verifier accepts; the caller's role then picks the registry.
// No handler or store is reached before the token has been checked.
func (h *ActionHandler) Dispatch(c echo.Context) error {
	payload, err := decodePayload(c)
	if err != nil {
		return err
	}

	req := ActionRequest{
		Action:  c.QueryParam("action"),
		Payload: payload,
		Query:   c.QueryParams(),
	}

	if fn, ok := h.registries.Public.Lookup(req.Action); ok {
		return h.runAction(c, ClassPublic, req, fn)
	}

	raw := bearerToken(c, payload)
	if raw == "" {
		return errs.NewUnauthorizedError("Token otorisasi diperlukan", true)
	}

	auth := h.verifier.Verify(c.Request().Context(), raw)
	if !auth.Authenticated {
		return errs.NewUnauthorizedError("Unauthorized: "+auth.Message, true)
	}
	req.Auth = auth

	middleware.WithUser(c, strconv.FormatInt(auth.UserID, 10), string(auth.Role))

	var registry *Registry
	switch auth.Role {
	case model.RoleAdmin, model.RoleSuperadmin:
		registry = h.registries.Admin
	case model.RoleMitra:
		if auth.WisataID == 0 {
			return errs.NewForbiddenError("Mitra tidak terhubung dengan wisata", true)
		}
		registry = h.registries.Mitra
	case model.RoleUser:
		registry = h.registries.User
	default:
		return errs.NewForbiddenError("Role tidak dikenali", true)
	}

	fn, ok := registry.Lookup(req.Action)
	if !ok {
		h.server.Metrics.ObserveAction(registry.class, req.Action, false, 404, 0)
		return registry.unknown()
	}

	return h.runAction(c, registry.class, req, fn)
}
