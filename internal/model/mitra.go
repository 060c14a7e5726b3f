package model

import "time"

// LayananActive marks a partner whose service is switched on.
const LayananActive = "active"

type Mitra struct {
	ID            int64     `json:"id"`
	NamaMitra     string    `json:"nama_mitra"`
	Username      string    `json:"username"`
	WisataID      *int64    `json:"wisata_id"`
	WisataNama    string    `json:"wisata_nama,omitempty"`
	Layanan       string    `json:"layanan"`
	StatusKontrak string    `json:"status_kontrak"`
	CreatedAt     time.Time `json:"created_at"`
}

// MitraInput saves a partner account. An empty Password keeps the current
// hash on update and is rejected on create.
type MitraInput struct {
	ID        int64
	NamaMitra string
	Username  string
	Password  string
	WisataID  int64
	IsActive  bool
}
