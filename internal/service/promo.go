package service

import (
	"context"
	"fmt"
	"time"

	"github.com/deppfellow/bluewave/internal/errs"
	"github.com/deppfellow/bluewave/internal/lib/utils"
	"github.com/deppfellow/bluewave/internal/model"
)

type PromoStore interface {
	ListPublic(ctx context.Context, today string, limit int) ([]model.PublicPromo, error)
	List(ctx context.Context, wisataID int64) ([]model.Promo, error)
	Get(ctx context.Context, id, wisataID int64) (model.Promo, error)
	Create(ctx context.Context, in model.PromoInput) (int64, error)
	Update(ctx context.Context, in model.PromoInput) error
	UpdateOwned(ctx context.Context, in model.PromoInput, wisataID int64) error
	Delete(ctx context.Context, id int64) error
	DeleteOwned(ctx context.Context, id, wisataID int64) error
}

const (
	msgPromoNotFound = "Promo tidak ditemukan"
	publicPromoLimit = 5
)

type PromoService struct {
	store PromoStore
	audit auditor
	now   func() time.Time
}

func NewPromoService(store PromoStore, sink AuditSink) *PromoService {
	return &PromoService{store: store, audit: auditor{sink: sink, now: time.Now}, now: time.Now}
}

// ListPublic returns the five newest running promos.
func (s *PromoService) ListPublic(ctx context.Context) ([]model.PublicPromo, error) {
	items, err := s.store.ListPublic(ctx, utils.Today(s.now()), publicPromoLimit)
	if err != nil {
		return nil, storeError("Gagal memuat promo", err)
	}
	return items, nil
}

// List returns every promo of wisataID, or all promos when it is 0.
func (s *PromoService) List(ctx context.Context, wisataID int64) ([]model.Promo, error) {
	items, err := s.store.List(ctx, wisataID)
	if err != nil {
		return nil, storeError("Gagal memuat promo", err)
	}
	return items, nil
}

// Get returns a promo. A non-zero wisataID restricts the lookup to that
// attraction.
func (s *PromoService) Get(ctx context.Context, id, wisataID int64) (model.Promo, error) {
	p, err := s.store.Get(ctx, id, wisataID)
	if err != nil {
		return model.Promo{}, lookupError(err, msgPromoNotFound, "Gagal memuat promo")
	}
	return p, nil
}

func (s *PromoService) Save(ctx context.Context, actor Actor, in model.PromoInput) (string, error) {
	if err := normalizePromo(&in); err != nil {
		return "", err
	}

	if in.ID != 0 {
		if err := s.store.Update(ctx, in); err != nil {
			return "", lookupError(err, msgPromoNotFound, "Gagal menyimpan promo")
		}
		s.audit.record(ctx, actor, "Update Promo", fmt.Sprintf("Update promo: %s", in.NamaPromo))
		return "Promo berhasil diperbarui", nil
	}

	if _, err := s.store.Create(ctx, in); err != nil {
		return "", storeError("Gagal menyimpan promo", err)
	}
	s.audit.record(ctx, actor, "Create Promo", fmt.Sprintf("Tambah promo: %s", in.NamaPromo))
	return "Promo berhasil ditambahkan", nil
}

func (s *PromoService) Delete(ctx context.Context, actor Actor, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return lookupError(err, msgPromoNotFound, "Gagal menghapus promo")
	}
	s.audit.record(ctx, actor, "Delete Promo", fmt.Sprintf("Hapus promo ID: %d", id))
	return nil
}

// SaveMine upserts a promo of the partner's attraction. Updating a promo
// that belongs to another attraction is reported as not found.
func (s *PromoService) SaveMine(ctx context.Context, actor Actor, in model.PromoInput) (string, error) {
	in.WisataID = actor.WisataID
	if err := normalizePromo(&in); err != nil {
		return "", err
	}

	if in.ID != 0 {
		if err := s.store.UpdateOwned(ctx, in, actor.WisataID); err != nil {
			return "", lookupError(err, msgPromoNotFound, "Gagal menyimpan promo")
		}
		s.audit.record(ctx, actor, "Update Promo", fmt.Sprintf("Update promo: %s", in.NamaPromo))
		return "Promo berhasil diperbarui", nil
	}

	if _, err := s.store.Create(ctx, in); err != nil {
		return "", storeError("Gagal menyimpan promo", err)
	}
	s.audit.record(ctx, actor, "Create Promo", fmt.Sprintf("Tambah promo: %s", in.NamaPromo))
	return "Promo berhasil ditambahkan", nil
}

func (s *PromoService) DeleteMine(ctx context.Context, actor Actor, id int64) error {
	if err := s.store.DeleteOwned(ctx, id, actor.WisataID); err != nil {
		return lookupError(err, msgPromoNotFound, "Gagal menghapus promo")
	}
	s.audit.record(ctx, actor, "Delete Promo", fmt.Sprintf("Hapus promo ID: %d", id))
	return nil
}

func normalizePromo(in *model.PromoInput) error {
	if in.Status == "" {
		in.Status = model.PromoActive
	}

	switch in.Status {
	case model.PromoActive, model.PromoInactive, model.PromoExpired:
	default:
		return errs.NewBadRequestError("Status promo tidak valid", true, nil,
			[]errs.FieldError{{Field: "status", Error: "harus salah satu dari: active inactive expired"}})
	}

	if in.TanggalBerakhir != "" {
		d, err := utils.ParseDate(in.TanggalBerakhir)
		if err != nil {
			return errs.NewBadRequestError("Format tanggal tidak valid (YYYY-MM-DD)", true, nil,
				[]errs.FieldError{{Field: "tanggal_berakhir", Error: "format YYYY-MM-DD"}})
		}
		in.TanggalBerakhir = d
	}

	return nil
}
