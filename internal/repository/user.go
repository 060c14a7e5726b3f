package repository

import (
	"context"

	"github.com/deppfellow/bluewave/internal/model"

	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Profile(ctx context.Context, id int64) (model.UserProfile, error) {
	var p model.UserProfile
	err := r.db.QueryRow(ctx, `
		SELECT id, nama, email, telepon, alamat FROM users WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.Address)
	if err != nil {
		return model.UserProfile{}, notFound(err)
	}
	return p, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id int64, in model.UserProfileInput) error {
	return affected(r.db.Exec(ctx, `
		UPDATE users SET nama = $1, telepon = $2, alamat = $3, updated_at = NOW()
		WHERE id = $4`, in.Name, in.Phone, in.Address, id))
}

func (r *UserRepository) Create(ctx context.Context, in model.RegisterInput, passwordHash string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (nama, email, telepon, alamat, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`, in.Nama, in.Email, in.Telepon, in.Alamat, passwordHash,
	).Scan(&id)
	return id, err
}

func (r *UserRepository) Credentials(ctx context.Context, email string) (model.Credentials, error) {
	var c model.Credentials
	err := r.db.QueryRow(ctx, `
		SELECT id, nama, email, password_hash FROM users WHERE LOWER(email) = LOWER($1)`, email,
	).Scan(&c.ID, &c.Nama, &c.Email, &c.PasswordHash)
	if err != nil {
		return model.Credentials{}, notFound(err)
	}
	c.Role = model.RoleUser
	return c, nil
}

func (r *UserRepository) Reviews(ctx context.Context, userID int64) ([]model.Review, error) {
	rows, err := r.db.Query(ctx, `
		SELECT r.id, r.wisata_id, COALESCE(w.nama, ''), r.rating, r.komentar, r.created_at
		FROM reviews r
		LEFT JOIN wisata w ON r.wisata_id = w.id
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(row pgx.CollectableRow) (model.Review, error) {
		var rv model.Review
		err := row.Scan(&rv.ID, &rv.WisataID, &rv.WisataName, &rv.Rating, &rv.Komentar, &rv.CreatedAt)
		return rv, err
	})
}

func (r *UserRepository) Favorites(ctx context.Context, userID int64) ([]model.Favorit, error) {
	rows, err := r.db.Query(ctx, `
		SELECT f.wisata_id, COALESCE(w.nama, ''), COALESCE(w.gambar_url, ''), f.created_at
		FROM favorit f
		LEFT JOIN wisata w ON f.wisata_id = w.id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(row pgx.CollectableRow) (model.Favorit, error) {
		var f model.Favorit
		err := row.Scan(&f.WisataID, &f.WisataName, &f.GambarURL, &f.CreatedAt)
		return f, err
	})
}

// AddFavorite is idempotent.
func (r *UserRepository) AddFavorite(ctx context.Context, userID, wisataID int64) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO favorit (user_id, wisata_id) VALUES ($1, $2)
		ON CONFLICT (user_id, wisata_id) DO NOTHING`, userID, wisataID)
	return err
}

// RemoveFavorite is idempotent.
func (r *UserRepository) RemoveFavorite(ctx context.Context, userID, wisataID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM favorit WHERE user_id = $1 AND wisata_id = $2`, userID, wisataID)
	return err
}
