package service

import (
	"context"
	"fmt"
	"time"

	"github.com/deppfellow/bluewave/internal/errs"
	"github.com/deppfellow/bluewave/internal/lib/token"
	"github.com/deppfellow/bluewave/internal/model"
	"github.com/deppfellow/bluewave/internal/validation"
)

type MitraStore interface {
	List(ctx context.Context) ([]model.Mitra, error)
	Get(ctx context.Context, id int64) (model.Mitra, error)
	Create(ctx context.Context, in model.MitraInput, layanan, passwordHash string) (int64, error)
	Update(ctx context.Context, in model.MitraInput, layanan, passwordHash string) error
	Delete(ctx context.Context, id int64) error
}

const (
	msgMitraNotFound     = "Data mitra tidak ditemukan"
	msgMitraPasswordNeed = "Password wajib diisi untuk mitra baru"
)

type MitraService struct {
	store MitraStore
	audit auditor
	hash  func(string) (string, error)
}

func NewMitraService(store MitraStore, sink AuditSink) *MitraService {
	return &MitraService{
		store: store,
		audit: auditor{sink: sink, now: time.Now},
		hash:  token.HashPassword,
	}
}

func (s *MitraService) List(ctx context.Context) ([]model.Mitra, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return nil, storeError("Gagal memuat data mitra", err)
	}
	return items, nil
}

func (s *MitraService) Get(ctx context.Context, id int64) (model.Mitra, error) {
	m, err := s.store.Get(ctx, id)
	if err != nil {
		return model.Mitra{}, lookupError(err, msgMitraNotFound, "Gagal memuat data mitra")
	}
	return m, nil
}

// Save upserts a partner account. A new account needs a password; on
// update an empty password keeps the stored hash.
func (s *MitraService) Save(ctx context.Context, actor Actor, in model.MitraInput) (string, error) {
	if in.ID == 0 && in.Password == "" {
		return "", errs.NewBadRequestError(msgMitraPasswordNeed, true, nil,
			[]errs.FieldError{{Field: "password", Error: "wajib diisi"}})
	}
	if err := validation.RequireFields(map[string]any{"username": in.Username}, "username"); err != nil {
		return "", err
	}

	var hash string
	if in.Password != "" {
		h, err := s.hash(in.Password)
		if err != nil {
			return "", errs.NewStoreError("Gagal menyimpan mitra", err)
		}
		hash = h
	}

	layanan := ""
	if in.IsActive {
		layanan = model.LayananActive
	}

	msg := "Mitra berhasil ditambahkan"
	if in.ID != 0 {
		if err := s.store.Update(ctx, in, layanan, hash); err != nil {
			return "", lookupError(err, msgMitraNotFound, "Gagal menyimpan mitra")
		}
		msg = "Mitra berhasil diperbarui"
	} else if _, err := s.store.Create(ctx, in, layanan, hash); err != nil {
		return "", storeError("Gagal menyimpan mitra", err)
	}

	s.audit.record(ctx, actor, "Save Mitra", fmt.Sprintf("Username: %s", in.Username))
	return msg, nil
}

func (s *MitraService) Delete(ctx context.Context, actor Actor, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return lookupError(err, msgMitraNotFound, "Gagal menghapus mitra")
	}
	s.audit.record(ctx, actor, "Delete Mitra", fmt.Sprintf("Hapus mitra ID: %d", id))
	return nil
}
