package handler

import (
	"context"
	"net/http"

	"github.com/deppfellow/bluewave/internal/errs"
	"github.com/deppfellow/bluewave/internal/model"
	"github.com/deppfellow/bluewave/internal/service"
	"github.com/deppfellow/bluewave/internal/validation"

	"github.com/labstack/echo/v4"
)

type emailLoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (p *emailLoginPayload) Validate() error {
	return validation.Struct(p)
}

type usernameLoginPayload struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (p *usernameLoginPayload) Validate() error {
	return validation.Struct(p)
}

type registerPayload model.RegisterInput

func (p *registerPayload) Validate() error {
	return validation.Struct(p)
}

// AuthHandler serves /api/auth. Unlike the action endpoint every payload
// here is typed, so it is bound and validated before the action runs.
type AuthHandler struct {
	Handler
	auth *service.AuthService
}

func NewAuthHandler(h Handler, auth *service.AuthService) *AuthHandler {
	return &AuthHandler{Handler: h, auth: auth}
}

func (h *AuthHandler) Dispatch(c echo.Context) error {
	req := ActionRequest{Action: c.QueryParam("action"), Query: c.QueryParams()}

	var fn ActionFunc
	switch req.Action {
	case "user_login":
		var p emailLoginPayload
		if err := validation.BindAndValidate(c, &p); err != nil {
			return err
		}
		fn = func(ctx context.Context, _ ActionRequest) (Result, error) {
			return login(h.auth.UserLogin(ctx, p.Email, p.Password))
		}

	case "admin_login", "mitra_login":
		var p usernameLoginPayload
		if err := validation.BindAndValidate(c, &p); err != nil {
			return err
		}
		loginFn := h.auth.AdminLogin
		if req.Action == "mitra_login" {
			loginFn = h.auth.MitraLogin
		}
		fn = func(ctx context.Context, _ ActionRequest) (Result, error) {
			return login(loginFn(ctx, p.Username, p.Password))
		}

	case "register":
		var p registerPayload
		if err := validation.BindAndValidate(c, &p); err != nil {
			return err
		}
		fn = func(ctx context.Context, _ ActionRequest) (Result, error) {
			msg, err := h.auth.Register(ctx, model.RegisterInput(p))
			if err != nil {
				return Result{}, err
			}
			return Result{Status: http.StatusCreated, Body: model.Message(msg)}, nil
		}

	default:
		h.server.Metrics.ObserveAction(ClassAuth, req.Action, false, http.StatusNotFound, 0)
		return errs.NewNotFoundError("Action "+ClassAuth+" tidak dikenali", true, nil)
	}

	return h.runAction(c, ClassAuth, req, fn)
}

// login writes the login response as is; it already carries success.
func login(resp model.LoginResponse, err error) (Result, error) {
	if err != nil {
		return Result{}, err
	}
	return Result{Body: resp}, nil
}
