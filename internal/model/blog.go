package model

import "time"

const (
	BlogDraft     = "draft"
	BlogPublished = "published"
)

type BlogPost struct {
	ID          int64     `json:"id"`
	Judul       string    `json:"judul"`
	Konten      string    `json:"konten"`
	Excerpt     string    `json:"excerpt"`
	Kategori    string    `json:"kategori"`
	GambarURL   string    `json:"gambar_url"`
	Status      string    `json:"status"`
	PenulisID   *int64    `json:"penulis_id"`
	PenulisName string    `json:"penulis_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BlogSummary is a list row. Public lists carry the excerpt and image,
// admin lists carry the status.
type BlogSummary struct {
	ID          int64     `json:"id"`
	Judul       string    `json:"judul"`
	Excerpt     string    `json:"excerpt,omitempty"`
	GambarURL   string    `json:"gambar_url,omitempty"`
	Status      string    `json:"status,omitempty"`
	PenulisName string    `json:"penulis_name"`
	CreatedAt   time.Time `json:"created_at"`
}

type BlogInput struct {
	ID        int64
	Judul     string
	Konten    string
	Status    string
	GambarURL string
	Excerpt   string
	Kategori  string
	PenulisID int64
}
