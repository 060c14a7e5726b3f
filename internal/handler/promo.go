package handler

import (
	"context"

	"github.com/deppfellow/bluewave/internal/errs"
	"github.com/deppfellow/bluewave/internal/model"
	"github.com/deppfellow/bluewave/internal/service"
)

type PromoHandler struct {
	Handler
	promo *service.PromoService
}

func NewPromoHandler(h Handler, promo *service.PromoService) *PromoHandler {
	return &PromoHandler{Handler: h, promo: promo}
}

func (h *PromoHandler) GetPublic(ctx context.Context, _ ActionRequest) (Result, error) {
	items, err := h.promo.ListPublic(ctx)
	if err != nil {
		return Result{}, err
	}
	return ok(items), nil
}

// get serves get_admin_promo (wisataID 0) and get_my_promo.
func (h *PromoHandler) get(ctx context.Context, req ActionRequest, wisataID int64) (Result, error) {
	if id := req.ID(); id != 0 {
		p, err := h.promo.Get(ctx, id, wisataID)
		if err != nil {
			return Result{}, err
		}
		return ok(p), nil
	}

	items, err := h.promo.List(ctx, wisataID)
	if err != nil {
		return Result{}, err
	}
	return ok(items), nil
}

func (h *PromoHandler) GetAdmin(ctx context.Context, req ActionRequest) (Result, error) {
	return h.get(ctx, req, 0)
}

func (h *PromoHandler) GetMine(ctx context.Context, req ActionRequest) (Result, error) {
	return h.get(ctx, req, req.Auth.WisataID)
}

func promoInput(req ActionRequest) (model.PromoInput, error) {
	nilai, err := req.Decimal("nilai_diskon")
	if err != nil {
		return model.PromoInput{}, err
	}

	return model.PromoInput{
		ID:              req.ID(),
		NamaPromo:       req.String("nama_promo"),
		WisataID:        req.Int64("wisata_id"),
		JenisDiskon:     req.String("jenis_diskon"),
		NilaiDiskon:     nilai,
		TanggalBerakhir: req.String("tanggal_berakhir"),
		Status:          req.String("status"),
	}, nil
}

func (h *PromoHandler) Save(ctx context.Context, req ActionRequest) (Result, error) {
	in, err := promoInput(req)
	if err != nil {
		return Result{}, err
	}

	msg, err := h.promo.Save(ctx, req.Actor(), in)
	if err != nil {
		return Result{}, err
	}
	return message(msg), nil
}

// SaveMine ignores any wisata_id in the payload.
func (h *PromoHandler) SaveMine(ctx context.Context, req ActionRequest) (Result, error) {
	if err := req.Require("nama_promo", "jenis_diskon", "nilai_diskon", "tanggal_berakhir", "status"); err != nil {
		return Result{}, err
	}

	in, err := promoInput(req)
	if err != nil {
		return Result{}, err
	}

	msg, err := h.promo.SaveMine(ctx, req.Actor(), in)
	if err != nil {
		return Result{}, err
	}
	return message(msg), nil
}

func (h *PromoHandler) Delete(ctx context.Context, req ActionRequest) (Result, error) {
	id := req.ID()
	if id == 0 {
		return Result{}, errs.NewBadRequestError("ID Promo diperlukan", true, nil, nil)
	}
	if err := h.promo.Delete(ctx, req.Actor(), id); err != nil {
		return Result{}, err
	}
	return message("Promo berhasil dihapus"), nil
}

func (h *PromoHandler) DeleteMine(ctx context.Context, req ActionRequest) (Result, error) {
	id := req.ID()
	if id == 0 {
		return Result{}, errs.NewBadRequestError("ID Promo diperlukan", true, nil, nil)
	}
	if err := h.promo.DeleteMine(ctx, req.Actor(), id); err != nil {
		return Result{}, err
	}
	return message("Promo berhasil dihapus"), nil
}
