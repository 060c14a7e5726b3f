package handler

import (
	"context"

	"github.com/deppfellow/bluewave/internal/errs"
	"github.com/deppfellow/bluewave/internal/model"
	"github.com/deppfellow/bluewave/internal/service"
)

// MitraHandler manages partner accounts on behalf of admins.
type MitraHandler struct {
	Handler
	mitra *service.MitraService
}

func NewMitraHandler(h Handler, mitra *service.MitraService) *MitraHandler {
	return &MitraHandler{Handler: h, mitra: mitra}
}

func (h *MitraHandler) Get(ctx context.Context, req ActionRequest) (Result, error) {
	if id := req.ID(); id != 0 {
		m, err := h.mitra.Get(ctx, id)
		if err != nil {
			return Result{}, err
		}
		return ok(m), nil
	}

	items, err := h.mitra.List(ctx)
	if err != nil {
		return Result{}, err
	}
	return ok(items), nil
}

func (h *MitraHandler) Save(ctx context.Context, req ActionRequest) (Result, error) {
	msg, err := h.mitra.Save(ctx, req.Actor(), model.MitraInput{
		ID:        req.ID(),
		NamaMitra: req.String("nama_mitra"),
		Username:  req.String("username"),
		Password:  req.String("password"),
		WisataID:  req.Int64("wisata_id"),
		IsActive:  req.Bool("is_active", false),
	})
	if err != nil {
		return Result{}, err
	}
	return message(msg), nil
}

func (h *MitraHandler) Delete(ctx context.Context, req ActionRequest) (Result, error) {
	id := req.ID()
	if id == 0 {
		return Result{}, errs.NewBadRequestError("ID Mitra diperlukan", true, nil, nil)
	}
	if err := h.mitra.Delete(ctx, req.Actor(), id); err != nil {
		return Result{}, err
	}
	return message("Mitra berhasil dihapus"), nil
}
