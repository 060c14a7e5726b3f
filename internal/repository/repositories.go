package repository

import (
	"github.com/deppfellow/bluewave/internal/server"
)

// Repositories is the container handed to the services.
type Repositories struct {
	Wisata    *WisataRepository
	Blog      *BlogRepository
	Promo     *PromoRepository
	Tiket     *TiketRepository
	Mitra     *MitraRepository
	User      *UserRepository
	Admin     *AdminRepository
	Activity  *ActivityRepository
	Dashboard *DashboardRepository
}

// NewRepositories builds every repository on the shared pool.
func NewRepositories(s *server.Server) *Repositories {
	return New(s.DB.Pool)
}

// New builds every repository on db.
func New(db DBTX) *Repositories {
	return &Repositories{
		Wisata:    NewWisataRepository(db),
		Blog:      NewBlogRepository(db),
		Promo:     NewPromoRepository(db),
		Tiket:     NewTiketRepository(db),
		Mitra:     NewMitraRepository(db),
		User:      NewUserRepository(db),
		Admin:     NewAdminRepository(db),
		Activity:  NewActivityRepository(db),
		Dashboard: NewDashboardRepository(db),
	}
}
