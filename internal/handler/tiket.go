package handler

import (
	"context"

	"github.com/deppfellow/bluewave/internal/errs"
	"github.com/deppfellow/bluewave/internal/model"
	"github.com/deppfellow/bluewave/internal/service"
)

type TiketHandler struct {
	Handler
	tiket *service.TiketService
}

func NewTiketHandler(h Handler, tiket *service.TiketService) *TiketHandler {
	return &TiketHandler{Handler: h, tiket: tiket}
}

func (h *TiketHandler) List(ctx context.Context, req ActionRequest) (Result, error) {
	items, err := h.tiket.List(ctx, model.TiketFilter{
		Tanggal: req.Param("tanggal"),
		Status:  req.Param("status"),
	})
	if err != nil {
		return Result{}, err
	}
	return ok(items), nil
}

// ListMine serves get_my_tiket; tanggal defaults to today.
func (h *TiketHandler) ListMine(ctx context.Context, req ActionRequest) (Result, error) {
	items, err := h.tiket.ListMine(ctx, req.Actor(), req.Param("tanggal"))
	if err != nil {
		return Result{}, err
	}
	return ok(items), nil
}

// Validate serves validate_tiket for both admins and partners. The service
// scopes a partner to its own attraction.
func (h *TiketHandler) Validate(ctx context.Context, req ActionRequest) (Result, error) {
	kode := req.Param("kode_tiket")
	if kode == "" {
		return Result{}, errs.NewBadRequestError("Kode tiket diperlukan", true, nil,
			[]errs.FieldError{{Field: "kode_tiket", Error: "wajib diisi"}})
	}

	t, err := h.tiket.Validate(ctx, req.Actor(), kode)
	if err != nil {
		return Result{}, err
	}
	return messageData("Tiket berhasil divalidasi", t), nil
}

func (h *TiketHandler) SalesReport(ctx context.Context, req ActionRequest) (Result, error) {
	report, err := h.tiket.SalesReport(ctx, req.Param("bulan"), req.Int64("wisata_id"))
	if err != nil {
		return Result{}, err
	}
	return ok(report), nil
}

func (h *TiketHandler) MonthlyReport(ctx context.Context, req ActionRequest) (Result, error) {
	bulan := req.Param("bulan")
	if bulan == "" {
		return Result{}, errs.NewBadRequestError("Parameter bulan diperlukan (YYYY-MM)", true, nil, nil)
	}

	rows, err := h.tiket.MonthlyReport(ctx, req.Actor(), bulan)
	if err != nil {
		return Result{}, err
	}
	return ok(rows), nil
}
