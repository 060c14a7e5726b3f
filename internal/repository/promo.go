package repository

import (
	"context"

	"github.com/deppfellow/bluewave/internal/model"

	"github.com/jackc/pgx/v5"
)

type PromoRepository struct {
	db DBTX
}

func NewPromoRepository(db DBTX) *PromoRepository {
	return &PromoRepository{db: db}
}

const promoColumns = `p.id, p.nama_promo, p.wisata_id, COALESCE(w.nama, ''), p.jenis_diskon, p.nilai_diskon,
	COALESCE(p.tanggal_berakhir::text, ''), p.status, p.created_at`

func scanPromo(row pgx.CollectableRow) (model.Promo, error) {
	var p model.Promo
	err := row.Scan(&p.ID, &p.NamaPromo, &p.WisataID, &p.WisataNama, &p.JenisDiskon, &p.NilaiDiskon,
		&p.TanggalBerakhir, &p.Status, &p.CreatedAt)
	return p, err
}

// ListPublic returns running promos: active and ending on or after today.
func (r *PromoRepository) ListPublic(ctx context.Context, today string, limit int) ([]model.PublicPromo, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.id, p.nama_promo, p.nilai_diskon, p.jenis_diskon, COALESCE(p.tanggal_berakhir::text, ''),
			COALESCE(w.nama, ''), COALESCE(w.gambar_url, '')
		FROM promo p
		LEFT JOIN wisata w ON p.wisata_id = w.id
		WHERE p.status = $1 AND p.tanggal_berakhir >= $2::date
		ORDER BY p.created_at DESC
		LIMIT $3`, model.PromoActive, today, limit)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(row pgx.CollectableRow) (model.PublicPromo, error) {
		var p model.PublicPromo
		err := row.Scan(&p.ID, &p.NamaPromo, &p.NilaiDiskon, &p.JenisDiskon, &p.TanggalBerakhir,
			&p.NamaWisata, &p.GambarURL)
		return p, err
	})
}

// List returns promos newest first. A non-zero wisataID restricts the list
// to that attraction.
func (r *PromoRepository) List(ctx context.Context, wisataID int64) ([]model.Promo, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+promoColumns+`
		FROM promo p
		LEFT JOIN wisata w ON p.wisata_id = w.id
		WHERE ($1::bigint = 0 OR p.wisata_id = $1)
		ORDER BY p.created_at DESC`, wisataID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanPromo)
}

// Get returns one promo. A non-zero wisataID must own it, otherwise the
// promo is reported missing.
func (r *PromoRepository) Get(ctx context.Context, id, wisataID int64) (model.Promo, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+promoColumns+`
		FROM promo p
		LEFT JOIN wisata w ON p.wisata_id = w.id
		WHERE p.id = $1 AND ($2::bigint = 0 OR p.wisata_id = $2)`, id, wisataID)
	if err != nil {
		return model.Promo{}, err
	}
	p, err := pgx.CollectExactlyOneRow(rows, scanPromo)
	return p, notFound(err)
}

func (r *PromoRepository) Create(ctx context.Context, in model.PromoInput) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO promo (nama_promo, wisata_id, jenis_diskon, nilai_diskon, tanggal_berakhir, status)
		VALUES ($1, $2, $3, $4, $5::date, $6)
		RETURNING id`,
		in.NamaPromo, nullID(in.WisataID), in.JenisDiskon, in.NilaiDiskon, nullDate(in.TanggalBerakhir), in.Status,
	).Scan(&id)
	return id, err
}

// Update rewrites every column including wisata_id.
func (r *PromoRepository) Update(ctx context.Context, in model.PromoInput) error {
	return affected(r.db.Exec(ctx, `
		UPDATE promo SET nama_promo = $1, wisata_id = $2, jenis_diskon = $3, nilai_diskon = $4,
			tanggal_berakhir = $5::date, status = $6, updated_at = NOW()
		WHERE id = $7`,
		in.NamaPromo, nullID(in.WisataID), in.JenisDiskon, in.NilaiDiskon, nullDate(in.TanggalBerakhir), in.Status, in.ID,
	))
}

// UpdateOwned updates a promo only when it belongs to wisataID. The owner
// itself cannot be changed this way.
func (r *PromoRepository) UpdateOwned(ctx context.Context, in model.PromoInput, wisataID int64) error {
	return affected(r.db.Exec(ctx, `
		UPDATE promo SET nama_promo = $1, jenis_diskon = $2, nilai_diskon = $3,
			tanggal_berakhir = $4::date, status = $5, updated_at = NOW()
		WHERE id = $6 AND wisata_id = $7`,
		in.NamaPromo, in.JenisDiskon, in.NilaiDiskon, nullDate(in.TanggalBerakhir), in.Status, in.ID, wisataID,
	))
}

func (r *PromoRepository) Delete(ctx context.Context, id int64) error {
	return affected(r.db.Exec(ctx, `DELETE FROM promo WHERE id = $1`, id))
}

func (r *PromoRepository) DeleteOwned(ctx context.Context, id, wisataID int64) error {
	return affected(r.db.Exec(ctx, `DELETE FROM promo WHERE id = $1 AND wisata_id = $2`, id, wisataID))
}

// ExpireBefore marks active promos that ended before today as expired.
func (r *PromoRepository) ExpireBefore(ctx context.Context, today string) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE promo SET status = $1, updated_at = NOW()
		WHERE status = $2 AND tanggal_berakhir < $3::date`,
		model.PromoExpired, model.PromoActive, today)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
