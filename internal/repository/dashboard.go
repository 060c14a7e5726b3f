package repository

import (
	"context"

	"github.com/deppfellow/bluewave/internal/model"
)

// DashboardRepository computes the aggregate cards. Each aggregate is one
// statement; COALESCE keeps empty sums at zero.
type DashboardRepository struct {
	db DBTX
}

func NewDashboardRepository(db DBTX) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// Admin counts across the whole site. Revenue covers tickets created in
// [monthStart, nextMonth).
func (r *DashboardRepository) Admin(ctx context.Context, today, monthStart, nextMonth string) (model.AdminDashboard, error) {
	var d model.AdminDashboard
	err := r.db.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM wisata),
			(SELECT COUNT(*) FROM mitra WHERE layanan = $1),
			(SELECT COUNT(*) FROM blog_posts),
			(SELECT COUNT(*) FROM tiket WHERE tanggal_berkunjung = $2::date),
			(SELECT COALESCE(SUM(total_harga), 0) FROM tiket
				WHERE status IN ($3, $4) AND created_at >= $5::date AND created_at < $6::date)`,
		model.LayananActive, today, string(model.TicketPaid), string(model.TicketUsed), monthStart, nextMonth,
	).Scan(&d.WisataCount, &d.MitraCount, &d.BlogCount, &d.TiketHariIni, &d.PendapatanBulanIni)
	return d, err
}

// Mitra counts for one attraction. WisataInfo is left for the caller.
func (r *DashboardRepository) Mitra(ctx context.Context, wisataID int64, today, monthStart, nextMonth string) (model.MitraDashboard, error) {
	var d model.MitraDashboard
	err := r.db.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM tiket WHERE wisata_id = $1 AND tanggal_berkunjung = $2::date),
			(SELECT COUNT(*) FROM tiket WHERE wisata_id = $1 AND tanggal_berkunjung = $2::date AND status = $3),
			(SELECT COALESCE(SUM(total_harga), 0) FROM tiket
				WHERE wisata_id = $1 AND status IN ($4, $3) AND created_at >= $5::date AND created_at < $6::date)`,
		wisataID, today, string(model.TicketUsed), string(model.TicketPaid), monthStart, nextMonth,
	).Scan(&d.TiketHariIni, &d.TamuCheckin, &d.PendapatanBulanIni)
	return d, err
}

func (r *DashboardRepository) User(ctx context.Context, userID int64) (model.UserDashboard, error) {
	var d model.UserDashboard
	err := r.db.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM tiket WHERE user_id = $1),
			(SELECT COUNT(*) FROM tiket WHERE user_id = $1 AND status = $2),
			(SELECT COALESCE(SUM(total_harga), 0) FROM tiket WHERE user_id = $1 AND status IN ($2, $3)),
			(SELECT COUNT(*) FROM favorit WHERE user_id = $1)`,
		userID, string(model.TicketPaid), string(model.TicketUsed),
	).Scan(&d.TotalTiket, &d.ActiveTiket, &d.TotalSpent, &d.FavoriteCount)
	return d, err
}
