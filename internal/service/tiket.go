package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/deppfellow/bluewave/internal/errs"
	"github.com/deppfellow/bluewave/internal/lib/utils"
	"github.com/deppfellow/bluewave/internal/model"
	"github.com/deppfellow/bluewave/internal/repository"

	"github.com/shopspring/decimal"
)

type TiketStore interface {
	List(ctx context.Context, f model.TiketFilter) ([]model.Tiket, error)
	ListForVisitDate(ctx context.Context, wisataID int64, date string) ([]model.Tiket, error)
	MarkUsed(ctx context.Context, kode string, wisataID int64) (model.Tiket, bool, error)
	Status(ctx context.Context, kode string, wisataID int64) (model.TicketStatus, error)
	DailySales(ctx context.Context, wisataID int64, from, to string) ([]model.LaporanHarian, error)
}

const (
	msgTiketNotFound       = "Tiket tidak ditemukan"
	msgTiketNotFoundScoped = "Tiket tidak ditemukan atau bukan untuk wisata Anda"
	msgTiketUsed           = "Tiket sudah digunakan"
	msgTiketUnpaid         = "Tiket belum dibayar"
	msgInvalidDate         = "Format tanggal tidak valid (YYYY-MM-DD)"
	msgInvalidMonth        = "Format bulan tidak valid (YYYY-MM)"
)

type TiketService struct {
	store TiketStore
	audit auditor
	now   func() time.Time
}

func NewTiketService(store TiketStore, sink AuditSink) *TiketService {
	return &TiketService{store: store, audit: auditor{sink: sink, now: time.Now}, now: time.Now}
}

// List returns tickets for the admin view, optionally filtered by visit
// date and status.
func (s *TiketService) List(ctx context.Context, f model.TiketFilter) ([]model.Tiket, error) {
	if f.Tanggal != "" {
		d, err := utils.ParseDate(f.Tanggal)
		if err != nil {
			return nil, errs.NewBadRequestError(msgInvalidDate, true, nil, nil)
		}
		f.Tanggal = d
	}

	if f.Status != "" {
		switch model.TicketStatus(f.Status) {
		case model.TicketPending, model.TicketPaid, model.TicketUsed, model.TicketCancelled:
		default:
			return nil, errs.NewBadRequestError("Status tiket tidak valid", true, nil, nil)
		}
	}

	items, err := s.store.List(ctx, f)
	if err != nil {
		return nil, storeError("Gagal memuat tiket", err)
	}
	return items, nil
}

// ListMine returns the partner's tickets for a visit date, today when
// tanggal is empty.
func (s *TiketService) ListMine(ctx context.Context, actor Actor, tanggal string) ([]model.Tiket, error) {
	if tanggal == "" {
		tanggal = utils.Today(s.now())
	} else {
		d, err := utils.ParseDate(tanggal)
		if err != nil {
			return nil, errs.NewBadRequestError(msgInvalidDate, true, nil, nil)
		}
		tanggal = d
	}

	items, err := s.store.ListForVisitDate(ctx, actor.WisataID, tanggal)
	if err != nil {
		return nil, storeError("Gagal memuat tiket", err)
	}
	return items, nil
}

// Validate checks a ticket in. A partner may only validate tickets of its
// own attraction; admins are unscoped.
//
// The paid -> used transition is one conditional update, so of two
// concurrent validations exactly one succeeds. The returned record is the
// ticket as it was before the transition.
func (s *TiketService) Validate(ctx context.Context, actor Actor, kode string) (model.Tiket, error) {
	var scope int64
	notFoundMsg := msgTiketNotFound
	if actor.Role == model.RoleMitra {
		scope = actor.WisataID
		notFoundMsg = msgTiketNotFoundScoped
	}

	t, ok, err := s.store.MarkUsed(ctx, kode, scope)
	if err != nil {
		return model.Tiket{}, storeError("Gagal memvalidasi tiket", err)
	}

	if !ok {
		status, err := s.store.Status(ctx, kode, scope)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return model.Tiket{}, errs.NewNotFoundError(notFoundMsg, true, nil)
		case err != nil:
			return model.Tiket{}, storeError("Gagal memvalidasi tiket", err)
		case status == model.TicketUsed:
			return model.Tiket{}, errs.NewConflictError(msgTiketUsed, true)
		default:
			return model.Tiket{}, errs.NewBadRequestError(msgTiketUnpaid, true, nil, nil)
		}
	}

	s.audit.record(ctx, actor, "Validate Tiket", fmt.Sprintf("Kode: %s", kode))
	return t, nil
}

// SalesReport aggregates paid and used tickets of bulan (YYYY-MM, current
// month when empty) per visit day. wisataID 0 covers every attraction.
func (s *TiketService) SalesReport(ctx context.Context, bulan string, wisataID int64) (model.LaporanPenjualan, error) {
	if bulan == "" {
		bulan = utils.CurrentMonth(s.now())
	}

	harian, err := s.daily(ctx, bulan, wisataID)
	if err != nil {
		return model.LaporanPenjualan{}, err
	}

	report := model.LaporanPenjualan{
		Bulan:           bulan,
		WisataID:        wisataID,
		TotalPendapatan: decimal.Zero,
		Harian:          harian,
	}
	for _, h := range harian {
		report.TotalTiket += h.Jumlah
		report.TotalPendapatan = report.TotalPendapatan.Add(h.Total)
	}

	return report, nil
}

// MonthlyReport is the partner's per-day sales for bulan.
func (s *TiketService) MonthlyReport(ctx context.Context, actor Actor, bulan string) ([]model.LaporanHarian, error) {
	return s.daily(ctx, bulan, actor.WisataID)
}

func (s *TiketService) daily(ctx context.Context, bulan string, wisataID int64) ([]model.LaporanHarian, error) {
	from, to, err := utils.MonthBounds(bulan)
	if err != nil {
		return nil, errs.NewBadRequestError(msgInvalidMonth, true, nil, nil)
	}

	rows, err := s.store.DailySales(ctx, wisataID, from, to)
	if err != nil {
		return nil, storeError("Gagal memuat laporan", err)
	}
	return rows, nil
}
