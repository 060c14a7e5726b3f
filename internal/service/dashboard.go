package service

import (
	"context"
	"errors"
	"time"

	"github.com/deppfellow/bluewave/internal/lib/utils"
	"github.com/deppfellow/bluewave/internal/model"
	"github.com/deppfellow/bluewave/internal/repository"
)

type DashboardStore interface {
	Admin(ctx context.Context, today, monthStart, nextMonth string) (model.AdminDashboard, error)
	Mitra(ctx context.Context, wisataID int64, today, monthStart, nextMonth string) (model.MitraDashboard, error)
	User(ctx context.Context, userID int64) (model.UserDashboard, error)
}

type ActivityReader interface {
	Recent(ctx context.Context, limit int) ([]model.Activity, error)
}

type LocationStore interface {
	Location(ctx context.Context, id int64) (*model.WisataLocation, error)
}

const recentActivities = 10

type DashboardService struct {
	store      DashboardStore
	activities ActivityReader
	locations  LocationStore
	now        func() time.Time
}

func NewDashboardService(store DashboardStore, activities ActivityReader, locations LocationStore) *DashboardService {
	return &DashboardService{store: store, activities: activities, locations: locations, now: time.Now}
}

func (s *DashboardService) Admin(ctx context.Context) (model.AdminDashboard, error) {
	today, start, next := s.window()
	d, err := s.store.Admin(ctx, today, start, next)
	if err != nil {
		return model.AdminDashboard{}, storeError("Gagal memuat ringkasan dashboard", err)
	}
	return d, nil
}

// Activities returns the latest audit entries, newest first.
func (s *DashboardService) Activities(ctx context.Context) ([]model.Activity, error) {
	items, err := s.activities.Recent(ctx, recentActivities)
	if err != nil {
		return nil, storeError("Gagal memuat aktivitas", err)
	}
	return items, nil
}

func (s *DashboardService) Mitra(ctx context.Context, actor Actor) (model.MitraDashboard, error) {
	today, start, next := s.window()
	d, err := s.store.Mitra(ctx, actor.WisataID, today, start, next)
	if err != nil {
		return model.MitraDashboard{}, storeError("Gagal memuat dashboard mitra", err)
	}

	// A missing attraction leaves wisata_info null.
	loc, err := s.locations.Location(ctx, actor.WisataID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return model.MitraDashboard{}, storeError("Gagal memuat dashboard mitra", err)
	}
	d.WisataInfo = loc
	return d, nil
}

func (s *DashboardService) User(ctx context.Context, actor Actor) (model.UserDashboard, error) {
	d, err := s.store.User(ctx, actor.ID)
	if err != nil {
		return model.UserDashboard{}, storeError("Gagal memuat dashboard", err)
	}
	return d, nil
}

// window is today plus the bounds of the current month.
func (s *DashboardService) window() (today, monthStart, nextMonth string) {
	now := s.now()
	start := utils.StartOfMonth(now)
	return utils.Today(now), start.Format(utils.DateLayout), start.AddDate(0, 1, 0).Format(utils.DateLayout)
}
