package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PromoActive   = "active"
	PromoInactive = "inactive"
	PromoExpired  = "expired"
)

// Promo is a discount campaign. TanggalBerakhir is a YYYY-MM-DD date or
// empty when the campaign has no end.
type Promo struct {
	ID              int64           `json:"id"`
	NamaPromo       string          `json:"nama_promo"`
	WisataID        *int64          `json:"wisata_id"`
	WisataNama      string          `json:"wisata_nama,omitempty"`
	JenisDiskon     string          `json:"jenis_diskon"`
	NilaiDiskon     decimal.Decimal `json:"nilai_diskon"`
	TanggalBerakhir string          `json:"tanggal_berakhir"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

// PublicPromo is one card of the landing page promo strip.
type PublicPromo struct {
	ID              int64           `json:"id"`
	NamaPromo       string          `json:"nama_promo"`
	NilaiDiskon     decimal.Decimal `json:"nilai_diskon"`
	JenisDiskon     string          `json:"jenis_diskon"`
	TanggalBerakhir string          `json:"tanggal_berakhir"`
	NamaWisata      string          `json:"nama_wisata"`
	GambarURL       string          `json:"gambar_url"`
}

// PromoInput saves a promo. WisataID 0 means "not tied to an attraction".
type PromoInput struct {
	ID              int64
	NamaPromo       string
	WisataID        int64
	JenisDiskon     string
	NilaiDiskon     decimal.Decimal
	TanggalBerakhir string
	Status          string
}
