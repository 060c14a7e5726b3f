package repository

import (
	"context"

	"github.com/deppfellow/bluewave/internal/model"

	"github.com/jackc/pgx/v5"
)

type MitraRepository struct {
	db DBTX
}

func NewMitraRepository(db DBTX) *MitraRepository {
	return &MitraRepository{db: db}
}

const mitraColumns = `m.id, m.nama_mitra, m.username, m.wisata_id, COALESCE(w.nama, ''), m.layanan,
	m.status_kontrak, m.created_at`

func scanMitra(row pgx.CollectableRow) (model.Mitra, error) {
	var m model.Mitra
	err := row.Scan(&m.ID, &m.NamaMitra, &m.Username, &m.WisataID, &m.WisataNama, &m.Layanan,
		&m.StatusKontrak, &m.CreatedAt)
	return m, err
}

func (r *MitraRepository) List(ctx context.Context) ([]model.Mitra, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+mitraColumns+`
		FROM mitra m
		LEFT JOIN wisata w ON m.wisata_id = w.id
		ORDER BY m.nama_mitra ASC`)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanMitra)
}

func (r *MitraRepository) Get(ctx context.Context, id int64) (model.Mitra, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+mitraColumns+`
		FROM mitra m
		LEFT JOIN wisata w ON m.wisata_id = w.id
		WHERE m.id = $1`, id)
	if err != nil {
		return model.Mitra{}, err
	}
	m, err := pgx.CollectExactlyOneRow(rows, scanMitra)
	return m, notFound(err)
}

func (r *MitraRepository) Create(ctx context.Context, in model.MitraInput, layanan, passwordHash string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO mitra (nama_mitra, username, password_hash, wisata_id, layanan)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		in.NamaMitra, in.Username, passwordHash, nullID(in.WisataID), layanan,
	).Scan(&id)
	return id, err
}

// Update saves the account. An empty passwordHash keeps the stored one.
func (r *MitraRepository) Update(ctx context.Context, in model.MitraInput, layanan, passwordHash string) error {
	return affected(r.db.Exec(ctx, `
		UPDATE mitra SET nama_mitra = $1, username = $2, wisata_id = $3, layanan = $4,
			password_hash = COALESCE(NULLIF($5, ''), password_hash), updated_at = NOW()
		WHERE id = $6`,
		in.NamaMitra, in.Username, nullID(in.WisataID), layanan, passwordHash, in.ID,
	))
}

func (r *MitraRepository) Delete(ctx context.Context, id int64) error {
	return affected(r.db.Exec(ctx, `DELETE FROM mitra WHERE id = $1`, id))
}

// Credentials looks a partner up by username for login. Partners whose
// service is switched off are reported missing.
func (r *MitraRepository) Credentials(ctx context.Context, username string) (model.Credentials, error) {
	var c model.Credentials
	err := r.db.QueryRow(ctx, `
		SELECT id, nama_mitra, username, COALESCE(wisata_id, 0), password_hash
		FROM mitra
		WHERE username = $1 AND layanan = $2`, username, model.LayananActive,
	).Scan(&c.ID, &c.Nama, &c.Username, &c.WisataID, &c.PasswordHash)
	if err != nil {
		return model.Credentials{}, notFound(err)
	}
	c.Role = model.RoleMitra
	return c, nil
}
