package handler

import (
	"context"

	"github.com/deppfellow/bluewave/internal/model"
	"github.com/deppfellow/bluewave/internal/service"
)

type UserHandler struct {
	Handler
	user *service.UserService
}

func NewUserHandler(h Handler, user *service.UserService) *UserHandler {
	return &UserHandler{Handler: h, user: user}
}

func (h *UserHandler) Profile(ctx context.Context, req ActionRequest) (Result, error) {
	p, err := h.user.Profile(ctx, req.Actor())
	if err != nil {
		return Result{}, err
	}
	return ok(p), nil
}

func (h *UserHandler) SaveProfile(ctx context.Context, req ActionRequest) (Result, error) {
	if err := req.Require("name"); err != nil {
		return Result{}, err
	}

	err := h.user.SaveProfile(ctx, req.Actor(), model.UserProfileInput{
		Name:    req.String("name"),
		Phone:   req.String("phone"),
		Address: req.String("address"),
	})
	if err != nil {
		return Result{}, err
	}
	return message("Profil berhasil diperbarui"), nil
}

func (h *UserHandler) Tickets(ctx context.Context, req ActionRequest) (Result, error) {
	items, err := h.user.Tickets(ctx, req.Actor())
	if err != nil {
		return Result{}, err
	}
	return ok(items), nil
}

func (h *UserHandler) Reviews(ctx context.Context, req ActionRequest) (Result, error) {
	items, err := h.user.Reviews(ctx, req.Actor())
	if err != nil {
		return Result{}, err
	}
	return ok(items), nil
}

func (h *UserHandler) Favorites(ctx context.Context, req ActionRequest) (Result, error) {
	items, err := h.user.Favorites(ctx, req.Actor())
	if err != nil {
		return Result{}, err
	}
	return ok(items), nil
}

func (h *UserHandler) AddFavorite(ctx context.Context, req ActionRequest) (Result, error) {
	if err := req.Require("wisata_id"); err != nil {
		return Result{}, err
	}
	if err := h.user.AddFavorite(ctx, req.Actor(), req.Int64("wisata_id")); err != nil {
		return Result{}, err
	}
	return message("Ditambahkan ke favorit"), nil
}

func (h *UserHandler) RemoveFavorite(ctx context.Context, req ActionRequest) (Result, error) {
	if err := req.Require("wisata_id"); err != nil {
		return Result{}, err
	}
	if err := h.user.RemoveFavorite(ctx, req.Actor(), req.Int64("wisata_id")); err != nil {
		return Result{}, err
	}
	return message("Dihapus dari favorit"), nil
}
