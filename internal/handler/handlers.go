package handler

import (
	"github.com/deppfellow/bluewave/internal/server"
	"github.com/deppfellow/bluewave/internal/service"
)

// Handlers groups the echo handlers the router mounts.
type Handlers struct {
	Health *HealthHandler
	Action *ActionHandler
	Auth   *AuthHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	base := NewHandler(s)

	return &Handlers{
		Health: NewHealthHandler(s),
		Action: NewActionHandler(base, services.Tokens, NewRegistries(base, services)),
		Auth:   NewAuthHandler(base, services.Auth),
	}
}

// NewRegistries builds the action table of the /api endpoint.
func NewRegistries(base Handler, services *service.Services) Registries {
	wisata := NewWisataHandler(base, services.Wisata)
	blog := NewBlogHandler(base, services.Blog)
	promo := NewPromoHandler(base, services.Promo)
	tiket := NewTiketHandler(base, services.Tiket)
	mitra := NewMitraHandler(base, services.Mitra)
	user := NewUserHandler(base, services.User)
	dashboard := NewDashboardHandler(base, services.Dashboard)
	weather := NewWeatherHandler(base, services.Weather)

	return Registries{
		Public: NewRegistry(ClassPublic).
			Register("get_wisata", wisata.GetPublic).
			Register("get_blog", blog.GetPublic).
			Register("get_weather", weather.Current).
			Register("get_promo", promo.GetPublic),

		Admin: NewRegistry(ClassAdmin).
			Register("get_dashboard_summary", dashboard.Admin).
			Register("get_activities", dashboard.Activities).
			Register("get_admin_wisata", wisata.GetAdmin).
			Register("save_wisata", wisata.Save).
			Register("delete_wisata", wisata.Delete).
			Register("get_tiket", tiket.List).
			Register("validate_tiket", tiket.Validate).
			Register("get_admin_blog", blog.GetAdmin).
			Register("save_blog", blog.Save).
			Register("delete_blog", blog.Delete).
			Register("get_mitra", mitra.Get).
			Register("save_mitra", mitra.Save).
			Register("delete_mitra", mitra.Delete).
			Register("get_admin_promo", promo.GetAdmin).
			Register("save_promo", promo.Save).
			Register("delete_promo", promo.Delete).
			Register("get_laporan_penjualan", tiket.SalesReport),

		Mitra: NewRegistry(ClassMitra).
			Register("get_mitra_dashboard", dashboard.Mitra).
			Register("get_my_tiket", tiket.ListMine).
			Register("validate_tiket", tiket.Validate).
			Register("get_my_laporan_bulanan", tiket.MonthlyReport).
			Register("get_my_wisata", wisata.GetMine).
			Register("save_my_wisata", wisata.SaveMine).
			Register("get_my_promo", promo.GetMine).
			Register("save_my_promo", promo.SaveMine).
			Register("delete_my_promo", promo.DeleteMine),

		User: NewRegistry(ClassUser).
			Register("get_user_dashboard", dashboard.User).
			Register("get_user_profile", user.Profile).
			Register("save_user_profile", user.SaveProfile).
			Register("get_user_tickets", user.Tickets).
			Register("get_user_reviews", user.Reviews).
			Register("get_user_favorites", user.Favorites).
			Register("add_favorite", user.AddFavorite).
			Register("remove_favorite", user.RemoveFavorite),
	}
}
