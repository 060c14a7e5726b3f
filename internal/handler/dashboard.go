package handler

import (
	"context"

	"github.com/deppfellow/bluewave/internal/service"
)

type DashboardHandler struct {
	Handler
	dashboard *service.DashboardService
}

func NewDashboardHandler(h Handler, dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{Handler: h, dashboard: dashboard}
}

func (h *DashboardHandler) Admin(ctx context.Context, _ ActionRequest) (Result, error) {
	d, err := h.dashboard.Admin(ctx)
	if err != nil {
		return Result{}, err
	}
	return ok(d), nil
}

func (h *DashboardHandler) Activities(ctx context.Context, _ ActionRequest) (Result, error) {
	items, err := h.dashboard.Activities(ctx)
	if err != nil {
		return Result{}, err
	}
	return ok(items), nil
}

func (h *DashboardHandler) Mitra(ctx context.Context, req ActionRequest) (Result, error) {
	d, err := h.dashboard.Mitra(ctx, req.Actor())
	if err != nil {
		return Result{}, err
	}
	return ok(d), nil
}

func (h *DashboardHandler) User(ctx context.Context, req ActionRequest) (Result, error) {
	d, err := h.dashboard.User(ctx, req.Actor())
	if err != nil {
		return Result{}, err
	}
	return ok(d), nil
}
