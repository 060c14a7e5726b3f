package repository

import (
	"context"

	"github.com/deppfellow/bluewave/internal/model"
)

type AdminRepository struct {
	db DBTX
}

func NewAdminRepository(db DBTX) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) Credentials(ctx context.Context, username string) (model.Credentials, error) {
	var (
		c    model.Credentials
		role string
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, nama, username, email, role, password_hash
		FROM admin_users
		WHERE username = $1`, username,
	).Scan(&c.ID, &c.Nama, &c.Username, &c.Email, &role, &c.PasswordHash)
	if err != nil {
		return model.Credentials{}, notFound(err)
	}
	c.Role = model.Role(role)
	return c, nil
}

// Upsert creates the admin or resets its name, role and password.
func (r *AdminRepository) Upsert(ctx context.Context, acc model.Account, passwordHash string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO admin_users (nama, username, email, role, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (username) DO UPDATE
			SET nama = EXCLUDED.nama, email = EXCLUDED.email, role = EXCLUDED.role,
				password_hash = EXCLUDED.password_hash, updated_at = NOW()
		RETURNING id`,
		acc.Nama, acc.Username, acc.Email, string(acc.Role), passwordHash,
	).Scan(&id)
	return id, err
}
