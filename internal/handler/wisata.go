package handler

import (
	"context"

	"github.com/deppfellow/bluewave/internal/errs"
	"github.com/deppfellow/bluewave/internal/model"
	"github.com/deppfellow/bluewave/internal/service"
)

type WisataHandler struct {
	Handler
	wisata *service.WisataService
}

func NewWisataHandler(h Handler, wisata *service.WisataService) *WisataHandler {
	return &WisataHandler{Handler: h, wisata: wisata}
}

// GetPublic serves get_wisata: one active attraction by ?id=, or the list.
func (h *WisataHandler) GetPublic(ctx context.Context, req ActionRequest) (Result, error) {
	if id := req.ID(); id != 0 {
		w, err := h.wisata.GetPublic(ctx, id)
		if err != nil {
			return Result{}, err
		}
		return ok(w), nil
	}

	items, err := h.wisata.ListPublic(ctx)
	if err != nil {
		return Result{}, err
	}
	return ok(items), nil
}

// GetAdmin serves get_admin_wisata, including inactive attractions.
func (h *WisataHandler) GetAdmin(ctx context.Context, req ActionRequest) (Result, error) {
	if id := req.ID(); id != 0 {
		w, err := h.wisata.Get(ctx, id)
		if err != nil {
			return Result{}, err
		}
		return ok(w), nil
	}

	items, err := h.wisata.List(ctx)
	if err != nil {
		return Result{}, err
	}
	return ok(items), nil
}

func (h *WisataHandler) Save(ctx context.Context, req ActionRequest) (Result, error) {
	if err := req.Require("nama", "kategori", "lokasi", "harga_tiket"); err != nil {
		return Result{}, err
	}

	harga, err := req.Decimal("harga_tiket")
	if err != nil {
		return Result{}, err
	}
	lat, err := req.Float("latitude")
	if err != nil {
		return Result{}, err
	}
	lon, err := req.Float("longitude")
	if err != nil {
		return Result{}, err
	}

	msg, err := h.wisata.Save(ctx, req.Actor(), model.WisataInput{
		ID:         req.ID(),
		Nama:       req.String("nama"),
		Kategori:   req.String("kategori"),
		Lokasi:     req.String("lokasi"),
		HargaTiket: harga,
		GambarURL:  req.String("gambar_url"),
		Deskripsi:  req.String("deskripsi"),
		Latitude:   lat,
		Longitude:  lon,
		Fasilitas:  req.String("fasilitas"),
		Tips:       req.String("tips"),
		IsActive:   req.Bool("is_active", true),
	})
	if err != nil {
		return Result{}, err
	}
	return message(msg), nil
}

func (h *WisataHandler) Delete(ctx context.Context, req ActionRequest) (Result, error) {
	id := req.ID()
	if id == 0 {
		return Result{}, errs.NewBadRequestError("ID Wisata diperlukan", true, nil, nil)
	}
	if err := h.wisata.Delete(ctx, req.Actor(), id); err != nil {
		return Result{}, err
	}
	return message("Wisata berhasil dihapus"), nil
}

// GetMine serves get_my_wisata.
func (h *WisataHandler) GetMine(ctx context.Context, req ActionRequest) (Result, error) {
	w, err := h.wisata.Mine(ctx, req.Actor())
	if err != nil {
		return Result{}, err
	}
	return ok(w), nil
}

// SaveMine serves save_my_wisata. Only the partner-editable columns are
// read from the payload.
func (h *WisataHandler) SaveMine(ctx context.Context, req ActionRequest) (Result, error) {
	harga, err := req.Decimal("harga_tiket")
	if err != nil {
		return Result{}, err
	}

	err = h.wisata.SaveMine(ctx, req.Actor(), model.WisataProfileInput{
		HargaTiket: harga,
		GambarURL:  req.String("gambar_url"),
		Deskripsi:  req.String("deskripsi"),
		Fasilitas:  req.String("fasilitas"),
		Tips:       req.String("tips"),
	})
	if err != nil {
		return Result{}, err
	}
	return message("Profil wisata berhasil diperbarui"), nil
}
