package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wisata is a tourist attraction.
type Wisata struct {
	ID         int64           `json:"id"`
	Nama       string          `json:"nama"`
	Kategori   string          `json:"kategori"`
	Lokasi     string          `json:"lokasi"`
	HargaTiket decimal.Decimal `json:"harga_tiket"`
	GambarURL  string          `json:"gambar_url"`
	Deskripsi  string          `json:"deskripsi"`
	Latitude   *float64        `json:"latitude"`
	Longitude  *float64        `json:"longitude"`
	Fasilitas  string          `json:"fasilitas"`
	Tips       string          `json:"tips"`
	IsActive   bool            `json:"is_active"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// WisataSummary is one row of the public attraction list.
type WisataSummary struct {
	ID         int64           `json:"id"`
	Nama       string          `json:"nama"`
	Kategori   string          `json:"kategori"`
	Lokasi     string          `json:"lokasi"`
	HargaTiket decimal.Decimal `json:"harga_tiket"`
	GambarURL  string          `json:"gambar_url"`
}

// WisataLocation feeds the map and weather widgets of the partner dashboard.
type WisataLocation struct {
	Nama      string   `json:"nama"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type WisataInput struct {
	ID         int64
	Nama       string
	Kategori   string
	Lokasi     string
	HargaTiket decimal.Decimal
	GambarURL  string
	Deskripsi  string
	Latitude   *float64
	Longitude  *float64
	Fasilitas  string
	Tips       string
	IsActive   bool
}

// WisataProfileInput is the subset of columns a partner may edit.
type WisataProfileInput struct {
	HargaTiket decimal.Decimal
	GambarURL  string
	Deskripsi  string
	Fasilitas  string
	Tips       string
}
