package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TicketStatus is the lifecycle state of a ticket. Payment moves a ticket
// from pending to paid elsewhere; validation is the only paid -> used step.
type TicketStatus string

const (
	TicketPending   TicketStatus = "pending"
	TicketPaid      TicketStatus = "paid"
	TicketUsed      TicketStatus = "used"
	TicketCancelled TicketStatus = "cancelled"
)

// CanValidate reports whether a ticket in this state may be checked in.
func (s TicketStatus) CanValidate() bool {
	return s == TicketPaid
}

type Tiket struct {
	ID                int64           `json:"id"`
	KodeTiket         string          `json:"kode_tiket"`
	UserID            int64           `json:"user_id,omitempty"`
	WisataID          int64           `json:"wisata_id"`
	WisataNama        string          `json:"wisata_nama,omitempty"`
	NamaPemesan       string          `json:"nama_pemesan"`
	JumlahTiket       int             `json:"jumlah_tiket"`
	TotalHarga        decimal.Decimal `json:"total_harga"`
	TanggalBerkunjung string          `json:"tanggal_berkunjung"`
	Status            TicketStatus    `json:"status"`
	UsedAt            *time.Time      `json:"used_at"`
	CreatedAt         time.Time       `json:"created_at"`
}

// TiketFilter narrows the admin ticket list. Empty fields are ignored.
type TiketFilter struct {
	Tanggal string
	Status  string
}

// LaporanHarian is one day of a sales report.
type LaporanHarian struct {
	Tanggal string          `json:"tanggal"`
	Jumlah  int64           `json:"jumlah"`
	Total   decimal.Decimal `json:"total"`
}

// LaporanPenjualan is the admin monthly sales report.
type LaporanPenjualan struct {
	Bulan           string          `json:"bulan"`
	WisataID        int64           `json:"wisata_id,omitempty"`
	TotalTiket      int64           `json:"total_tiket"`
	TotalPendapatan decimal.Decimal `json:"total_pendapatan"`
	Harian          []LaporanHarian `json:"harian"`
}
