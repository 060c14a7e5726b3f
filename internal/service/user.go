package service

import (
	"context"

	"github.com/deppfellow/bluewave/internal/model"
)

type UserStore interface {
	Profile(ctx context.Context, id int64) (model.UserProfile, error)
	UpdateProfile(ctx context.Context, id int64, in model.UserProfileInput) error
	Reviews(ctx context.Context, userID int64) ([]model.Review, error)
	Favorites(ctx context.Context, userID int64) ([]model.Favorit, error)
	AddFavorite(ctx context.Context, userID, wisataID int64) error
	RemoveFavorite(ctx context.Context, userID, wisataID int64) error
}

type UserTiketStore interface {
	ListByUser(ctx context.Context, userID int64) ([]model.UserTiket, error)
}

const msgProfileNotFound = "Profil tidak ditemukan"

// UserService serves the visitor's own data. Every method is keyed by the
// actor, never by a payload id.
type UserService struct {
	users   UserStore
	tickets UserTiketStore
}

func NewUserService(users UserStore, tickets UserTiketStore) *UserService {
	return &UserService{users: users, tickets: tickets}
}

func (s *UserService) Profile(ctx context.Context, actor Actor) (model.UserProfile, error) {
	p, err := s.users.Profile(ctx, actor.ID)
	if err != nil {
		return model.UserProfile{}, lookupError(err, msgProfileNotFound, "Gagal memuat profil")
	}
	return p, nil
}

func (s *UserService) SaveProfile(ctx context.Context, actor Actor, in model.UserProfileInput) error {
	if err := s.users.UpdateProfile(ctx, actor.ID, in); err != nil {
		return lookupError(err, msgProfileNotFound, "Gagal menyimpan profil")
	}
	return nil
}

func (s *UserService) Tickets(ctx context.Context, actor Actor) ([]model.UserTiket, error) {
	items, err := s.tickets.ListByUser(ctx, actor.ID)
	if err != nil {
		return nil, storeError("Gagal memuat tiket", err)
	}
	return items, nil
}

func (s *UserService) Reviews(ctx context.Context, actor Actor) ([]model.Review, error) {
	items, err := s.users.Reviews(ctx, actor.ID)
	if err != nil {
		return nil, storeError("Gagal memuat ulasan", err)
	}
	return items, nil
}

func (s *UserService) Favorites(ctx context.Context, actor Actor) ([]model.Favorit, error) {
	items, err := s.users.Favorites(ctx, actor.ID)
	if err != nil {
		return nil, storeError("Gagal memuat favorit", err)
	}
	return items, nil
}

// AddFavorite is idempotent. An unknown attraction is a 400 from the
// foreign key.
func (s *UserService) AddFavorite(ctx context.Context, actor Actor, wisataID int64) error {
	if err := s.users.AddFavorite(ctx, actor.ID, wisataID); err != nil {
		return storeError("Gagal menambahkan favorit", err)
	}
	return nil
}

// RemoveFavorite is idempotent.
func (s *UserService) RemoveFavorite(ctx context.Context, actor Actor, wisataID int64) error {
	if err := s.users.RemoveFavorite(ctx, actor.ID, wisataID); err != nil {
		return storeError("Gagal menghapus favorit", err)
	}
	return nil
}
