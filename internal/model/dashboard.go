package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type AdminDashboard struct {
	WisataCount        int64           `json:"wisata_count"`
	MitraCount         int64           `json:"mitra_count"`
	BlogCount          int64           `json:"blog_count"`
	TiketHariIni       int64           `json:"tiket_hari_ini"`
	PendapatanBulanIni decimal.Decimal `json:"pendapatan_bulan_ini"`
}

type MitraDashboard struct {
	TiketHariIni       int64           `json:"tiket_hari_ini"`
	TamuCheckin        int64           `json:"tamu_checkin"`
	PendapatanBulanIni decimal.Decimal `json:"pendapatan_bulan_ini"`
	WisataInfo         *WisataLocation `json:"wisata_info"`
}

// Activity is an audit row shown on the admin dashboard.
type Activity struct {
	ID          int64     `json:"id"`
	ActorID     int64     `json:"actor_id"`
	ActorRole   Role      `json:"actor_role"`
	ActorName   string    `json:"user_name"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// ActivityEntry is what mutating actions hand to the audit sink.
type ActivityEntry struct {
	ActorID     int64     `json:"actor_id"`
	ActorRole   Role      `json:"actor_role"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}
