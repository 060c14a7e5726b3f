package repository

import (
	"context"
	"errors"

	"github.com/deppfellow/bluewave/internal/model"

	"github.com/jackc/pgx/v5"
)

type TiketRepository struct {
	db DBTX
}

func NewTiketRepository(db DBTX) *TiketRepository {
	return &TiketRepository{db: db}
}

const tiketColumns = `t.id, t.kode_tiket, COALESCE(t.user_id, 0), t.wisata_id, COALESCE(w.nama, ''),
	t.nama_pemesan, t.jumlah_tiket, t.total_harga, t.tanggal_berkunjung::text, t.status,
	t.used_at, t.created_at`

func scanTiket(row pgx.CollectableRow) (model.Tiket, error) {
	var (
		t      model.Tiket
		status string
	)
	err := row.Scan(&t.ID, &t.KodeTiket, &t.UserID, &t.WisataID, &t.WisataNama,
		&t.NamaPemesan, &t.JumlahTiket, &t.TotalHarga, &t.TanggalBerkunjung, &status,
		&t.UsedAt, &t.CreatedAt)
	t.Status = model.TicketStatus(status)
	return t, err
}

// List returns tickets newest first, narrowed by the non-empty filter fields.
func (r *TiketRepository) List(ctx context.Context, f model.TiketFilter) ([]model.Tiket, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+tiketColumns+`
		FROM tiket t
		LEFT JOIN wisata w ON t.wisata_id = w.id
		WHERE ($1 = '' OR t.tanggal_berkunjung = NULLIF($1, '')::date)
			AND ($2 = '' OR t.status = $2)
		ORDER BY t.created_at DESC`, f.Tanggal, f.Status)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanTiket)
}

// ListForVisitDate returns one attraction's tickets for a visit date.
func (r *TiketRepository) ListForVisitDate(ctx context.Context, wisataID int64, date string) ([]model.Tiket, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+tiketColumns+`
		FROM tiket t
		LEFT JOIN wisata w ON t.wisata_id = w.id
		WHERE t.wisata_id = $1 AND t.tanggal_berkunjung = $2::date
		ORDER BY t.created_at DESC`, wisataID, date)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanTiket)
}

func (r *TiketRepository) ListByUser(ctx context.Context, userID int64) ([]model.UserTiket, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+tiketColumns+`
		FROM tiket t
		LEFT JOIN wisata w ON t.wisata_id = w.id
		WHERE t.user_id = $1
		ORDER BY t.tanggal_berkunjung DESC`, userID)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(row pgx.CollectableRow) (model.UserTiket, error) {
		t, err := scanTiket(row)
		// Owners see the attraction as wisata_name.
		name := t.WisataNama
		t.WisataNama = ""
		return model.UserTiket{Tiket: t, WisataName: name}, err
	})
}

// MarkUsed flips a paid ticket to used in one conditional write and
// returns the row as it was before. ok is false when no paid ticket with
// that code (and, for a non-zero wisataID, that attraction) exists.
func (r *TiketRepository) MarkUsed(ctx context.Context, kode string, wisataID int64) (t model.Tiket, ok bool, err error) {
	var status string
	err = r.db.QueryRow(ctx, `
		UPDATE tiket SET status = $1, used_at = NOW()
		WHERE kode_tiket = $2 AND status = $3 AND ($4::bigint = 0 OR wisata_id = $4)
		RETURNING id, kode_tiket, COALESCE(user_id, 0), wisata_id, nama_pemesan, jumlah_tiket,
			total_harga, tanggal_berkunjung::text, status, created_at`,
		string(model.TicketUsed), kode, string(model.TicketPaid), wisataID,
	).Scan(&t.ID, &t.KodeTiket, &t.UserID, &t.WisataID, &t.NamaPemesan, &t.JumlahTiket,
		&t.TotalHarga, &t.TanggalBerkunjung, &status, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Tiket{}, false, nil
		}
		return model.Tiket{}, false, err
	}

	// The row matched status = paid, so that is its state before the write.
	t.Status = model.TicketPaid
	return t, true, nil
}

// Status reads the current state of a ticket, ErrNotFound when the code
// does not exist for the given (non-zero) attraction.
func (r *TiketRepository) Status(ctx context.Context, kode string, wisataID int64) (model.TicketStatus, error) {
	var status string
	err := r.db.QueryRow(ctx, `
		SELECT status FROM tiket
		WHERE kode_tiket = $1 AND ($2::bigint = 0 OR wisata_id = $2)`, kode, wisataID,
	).Scan(&status)
	if err != nil {
		return "", notFound(err)
	}
	return model.TicketStatus(status), nil
}

// DailySales aggregates paid and used tickets per visit day in [from, to).
// A zero wisataID covers every attraction.
func (r *TiketRepository) DailySales(ctx context.Context, wisataID int64, from, to string) ([]model.LaporanHarian, error) {
	rows, err := r.db.Query(ctx, `
		SELECT tanggal_berkunjung::text, COALESCE(SUM(jumlah_tiket), 0), COALESCE(SUM(total_harga), 0)
		FROM tiket
		WHERE status IN ($1, $2)
			AND tanggal_berkunjung >= $3::date AND tanggal_berkunjung < $4::date
			AND ($5::bigint = 0 OR wisata_id = $5)
		GROUP BY tanggal_berkunjung
		ORDER BY tanggal_berkunjung ASC`,
		string(model.TicketPaid), string(model.TicketUsed), from, to, wisataID)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(row pgx.CollectableRow) (model.LaporanHarian, error) {
		var l model.LaporanHarian
		err := row.Scan(&l.Tanggal, &l.Jumlah, &l.Total)
		return l, err
	})
}
