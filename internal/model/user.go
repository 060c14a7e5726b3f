package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type UserProfile struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type UserProfileInput struct {
	Name    string
	Phone   string
	Address string
}

// RegisterInput is the self-registration payload.
type RegisterInput struct {
	Nama     string `json:"nama" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Telepon  string `json:"telepon" validate:"max=30"`
	Alamat   string `json:"alamat" validate:"max=255"`
	Password string `json:"password" validate:"required,min=6"`
}

type Review struct {
	ID         int64     `json:"id"`
	WisataID   int64     `json:"wisata_id"`
	WisataName string    `json:"wisata_name"`
	Rating     int       `json:"rating"`
	Komentar   string    `json:"komentar"`
	CreatedAt  time.Time `json:"created_at"`
}

type Favorit struct {
	WisataID   int64     `json:"wisata_id"`
	WisataName string    `json:"wisata_name"`
	GambarURL  string    `json:"gambar_url"`
	CreatedAt  time.Time `json:"created_at"`
}

// UserTiket is a ticket as seen by its owner.
type UserTiket struct {
	Tiket
	WisataName string `json:"wisata_name"`
}

type UserDashboard struct {
	TotalTiket    int64           `json:"total_tiket"`
	ActiveTiket   int64           `json:"active_tiket"`
	TotalSpent    decimal.Decimal `json:"total_spent"`
	FavoriteCount int64           `json:"favorite_count"`
}
