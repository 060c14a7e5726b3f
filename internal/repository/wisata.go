package repository

import (
	"context"

	"github.com/deppfellow/bluewave/internal/model"

	"github.com/jackc/pgx/v5"
)

type WisataRepository struct {
	db DBTX
}

func NewWisataRepository(db DBTX) *WisataRepository {
	return &WisataRepository{db: db}
}

const wisataColumns = `id, nama, kategori, lokasi, harga_tiket, gambar_url, deskripsi,
	latitude, longitude, fasilitas, tips, is_active, created_at, updated_at`

func scanWisata(row pgx.CollectableRow) (model.Wisata, error) {
	var w model.Wisata
	err := row.Scan(
		&w.ID, &w.Nama, &w.Kategori, &w.Lokasi, &w.HargaTiket, &w.GambarURL, &w.Deskripsi,
		&w.Latitude, &w.Longitude, &w.Fasilitas, &w.Tips, &w.IsActive, &w.CreatedAt, &w.UpdatedAt,
	)
	return w, err
}

// ListActive is the public catalogue, by name.
func (r *WisataRepository) ListActive(ctx context.Context) ([]model.WisataSummary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, nama, kategori, lokasi, harga_tiket, gambar_url
		FROM wisata
		WHERE is_active
		ORDER BY nama ASC`)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(row pgx.CollectableRow) (model.WisataSummary, error) {
		var w model.WisataSummary
		err := row.Scan(&w.ID, &w.Nama, &w.Kategori, &w.Lokasi, &w.HargaTiket, &w.GambarURL)
		return w, err
	})
}

// GetActive returns an active attraction or ErrNotFound.
func (r *WisataRepository) GetActive(ctx context.Context, id int64) (model.Wisata, error) {
	rows, err := r.db.Query(ctx, `SELECT `+wisataColumns+` FROM wisata WHERE id = $1 AND is_active`, id)
	if err != nil {
		return model.Wisata{}, err
	}
	w, err := pgx.CollectExactlyOneRow(rows, scanWisata)
	return w, notFound(err)
}

func (r *WisataRepository) ListAll(ctx context.Context) ([]model.Wisata, error) {
	rows, err := r.db.Query(ctx, `SELECT `+wisataColumns+` FROM wisata ORDER BY nama ASC`)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanWisata)
}

func (r *WisataRepository) Get(ctx context.Context, id int64) (model.Wisata, error) {
	rows, err := r.db.Query(ctx, `SELECT `+wisataColumns+` FROM wisata WHERE id = $1`, id)
	if err != nil {
		return model.Wisata{}, err
	}
	w, err := pgx.CollectExactlyOneRow(rows, scanWisata)
	return w, notFound(err)
}

func (r *WisataRepository) Create(ctx context.Context, in model.WisataInput) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO wisata (nama, kategori, lokasi, harga_tiket, gambar_url, deskripsi,
			latitude, longitude, fasilitas, tips, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`,
		in.Nama, in.Kategori, in.Lokasi, in.HargaTiket, in.GambarURL, in.Deskripsi,
		in.Latitude, in.Longitude, in.Fasilitas, in.Tips, in.IsActive,
	).Scan(&id)
	return id, err
}

func (r *WisataRepository) Update(ctx context.Context, in model.WisataInput) error {
	return affected(r.db.Exec(ctx, `
		UPDATE wisata SET nama = $1, kategori = $2, lokasi = $3, harga_tiket = $4,
			gambar_url = $5, deskripsi = $6, latitude = $7, longitude = $8,
			fasilitas = $9, tips = $10, is_active = $11, updated_at = NOW()
		WHERE id = $12`,
		in.Nama, in.Kategori, in.Lokasi, in.HargaTiket, in.GambarURL, in.Deskripsi,
		in.Latitude, in.Longitude, in.Fasilitas, in.Tips, in.IsActive, in.ID,
	))
}

// UpdateProfile changes only the columns a partner may edit.
func (r *WisataRepository) UpdateProfile(ctx context.Context, id int64, in model.WisataProfileInput) error {
	return affected(r.db.Exec(ctx, `
		UPDATE wisata SET harga_tiket = $1, gambar_url = $2, deskripsi = $3,
			fasilitas = $4, tips = $5, updated_at = NOW()
		WHERE id = $6`,
		in.HargaTiket, in.GambarURL, in.Deskripsi, in.Fasilitas, in.Tips, id,
	))
}

func (r *WisataRepository) Delete(ctx context.Context, id int64) error {
	return affected(r.db.Exec(ctx, `DELETE FROM wisata WHERE id = $1`, id))
}

func (r *WisataRepository) Location(ctx context.Context, id int64) (*model.WisataLocation, error) {
	var loc model.WisataLocation
	err := r.db.QueryRow(ctx, `SELECT nama, latitude, longitude FROM wisata WHERE id = $1`, id).
		Scan(&loc.Nama, &loc.Latitude, &loc.Longitude)
	if err != nil {
		return nil, notFound(err)
	}
	return &loc, nil
}
