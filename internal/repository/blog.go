package repository

import (
	"context"

	"github.com/deppfellow/bluewave/internal/model"

	"github.com/jackc/pgx/v5"
)

type BlogRepository struct {
	db DBTX
}

func NewBlogRepository(db DBTX) *BlogRepository {
	return &BlogRepository{db: db}
}

const blogColumns = `bp.id, bp.judul, bp.konten, bp.excerpt, bp.kategori, bp.gambar_url, bp.status,
	bp.penulis_id, COALESCE(au.nama, ''), bp.created_at, bp.updated_at`

func scanBlog(row pgx.CollectableRow) (model.BlogPost, error) {
	var b model.BlogPost
	err := row.Scan(&b.ID, &b.Judul, &b.Konten, &b.Excerpt, &b.Kategori, &b.GambarURL, &b.Status,
		&b.PenulisID, &b.PenulisName, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

// ListPublished returns the latest published posts, newest first.
func (r *BlogRepository) ListPublished(ctx context.Context, limit int) ([]model.BlogSummary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT bp.id, bp.judul, bp.excerpt, bp.gambar_url, bp.created_at, COALESCE(au.nama, '')
		FROM blog_posts bp
		LEFT JOIN admin_users au ON bp.penulis_id = au.id
		WHERE bp.status = $1
		ORDER BY bp.created_at DESC
		LIMIT $2`, model.BlogPublished, limit)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(row pgx.CollectableRow) (model.BlogSummary, error) {
		var b model.BlogSummary
		err := row.Scan(&b.ID, &b.Judul, &b.Excerpt, &b.GambarURL, &b.CreatedAt, &b.PenulisName)
		return b, err
	})
}

func (r *BlogRepository) GetPublished(ctx context.Context, id int64) (model.BlogPost, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+blogColumns+`
		FROM blog_posts bp
		LEFT JOIN admin_users au ON bp.penulis_id = au.id
		WHERE bp.id = $1 AND bp.status = $2`, id, model.BlogPublished)
	if err != nil {
		return model.BlogPost{}, err
	}
	b, err := pgx.CollectExactlyOneRow(rows, scanBlog)
	return b, notFound(err)
}

// ListAll returns every post in any status, newest first.
func (r *BlogRepository) ListAll(ctx context.Context) ([]model.BlogSummary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT bp.id, bp.judul, bp.status, bp.created_at, COALESCE(au.nama, '')
		FROM blog_posts bp
		LEFT JOIN admin_users au ON bp.penulis_id = au.id
		ORDER BY bp.created_at DESC`)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(row pgx.CollectableRow) (model.BlogSummary, error) {
		var b model.BlogSummary
		err := row.Scan(&b.ID, &b.Judul, &b.Status, &b.CreatedAt, &b.PenulisName)
		return b, err
	})
}

func (r *BlogRepository) Get(ctx context.Context, id int64) (model.BlogPost, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+blogColumns+`
		FROM blog_posts bp
		LEFT JOIN admin_users au ON bp.penulis_id = au.id
		WHERE bp.id = $1`, id)
	if err != nil {
		return model.BlogPost{}, err
	}
	b, err := pgx.CollectExactlyOneRow(rows, scanBlog)
	return b, notFound(err)
}

func (r *BlogRepository) Create(ctx context.Context, in model.BlogInput) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO blog_posts (judul, konten, status, gambar_url, excerpt, penulis_id, kategori)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		in.Judul, in.Konten, in.Status, in.GambarURL, in.Excerpt, nullID(in.PenulisID), in.Kategori,
	).Scan(&id)
	return id, err
}

// Update keeps the original author.
func (r *BlogRepository) Update(ctx context.Context, in model.BlogInput) error {
	return affected(r.db.Exec(ctx, `
		UPDATE blog_posts SET judul = $1, konten = $2, status = $3, gambar_url = $4,
			excerpt = $5, kategori = $6, updated_at = NOW()
		WHERE id = $7`,
		in.Judul, in.Konten, in.Status, in.GambarURL, in.Excerpt, in.Kategori, in.ID,
	))
}

func (r *BlogRepository) Delete(ctx context.Context, id int64) error {
	return affected(r.db.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id))
}
