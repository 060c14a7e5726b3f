package service

import (
	"context"
	"fmt"
	"time"

	"github.com/deppfellow/bluewave/internal/model"
)

type WisataStore interface {
	ListActive(ctx context.Context) ([]model.WisataSummary, error)
	GetActive(ctx context.Context, id int64) (model.Wisata, error)
	ListAll(ctx context.Context) ([]model.Wisata, error)
	Get(ctx context.Context, id int64) (model.Wisata, error)
	Create(ctx context.Context, in model.WisataInput) (int64, error)
	Update(ctx context.Context, in model.WisataInput) error
	UpdateProfile(ctx context.Context, id int64, in model.WisataProfileInput) error
	Delete(ctx context.Context, id int64) error
}

const msgWisataNotFound = "Data wisata tidak ditemukan"

type WisataService struct {
	store WisataStore
	audit auditor
}

func NewWisataService(store WisataStore, sink AuditSink) *WisataService {
	return &WisataService{store: store, audit: auditor{sink: sink, now: time.Now}}
}

// ListPublic lists active attractions by name.
func (s *WisataService) ListPublic(ctx context.Context) ([]model.WisataSummary, error) {
	items, err := s.store.ListActive(ctx)
	if err != nil {
		return nil, storeError("Gagal memuat data wisata", err)
	}
	return items, nil
}

// GetPublic returns an active attraction.
func (s *WisataService) GetPublic(ctx context.Context, id int64) (model.Wisata, error) {
	w, err := s.store.GetActive(ctx, id)
	if err != nil {
		return model.Wisata{}, lookupError(err, msgWisataNotFound, "Gagal memuat data wisata")
	}
	return w, nil
}

func (s *WisataService) List(ctx context.Context) ([]model.Wisata, error) {
	items, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, storeError("Gagal memuat data wisata", err)
	}
	return items, nil
}

func (s *WisataService) Get(ctx context.Context, id int64) (model.Wisata, error) {
	w, err := s.store.Get(ctx, id)
	if err != nil {
		return model.Wisata{}, lookupError(err, msgWisataNotFound, "Gagal memuat data wisata")
	}
	return w, nil
}

// Save creates the attraction when in.ID is 0 and updates it otherwise.
// It returns the success message.
func (s *WisataService) Save(ctx context.Context, actor Actor, in model.WisataInput) (string, error) {
	if in.ID != 0 {
		if err := s.store.Update(ctx, in); err != nil {
			return "", lookupError(err, msgWisataNotFound, "Gagal menyimpan wisata")
		}
		s.audit.record(ctx, actor, "Update Wisata", fmt.Sprintf("Update wisata: %s", in.Nama))
		return "Wisata berhasil diperbarui", nil
	}

	if _, err := s.store.Create(ctx, in); err != nil {
		return "", storeError("Gagal menyimpan wisata", err)
	}
	s.audit.record(ctx, actor, "Create Wisata", fmt.Sprintf("Tambah wisata: %s", in.Nama))
	return "Wisata berhasil ditambahkan", nil
}

func (s *WisataService) Delete(ctx context.Context, actor Actor, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return lookupError(err, msgWisataNotFound, "Gagal menghapus wisata")
	}
	s.audit.record(ctx, actor, "Delete Wisata", fmt.Sprintf("Hapus wisata ID: %d", id))
	return nil
}

// Mine returns the partner's own attraction regardless of its state.
func (s *WisataService) Mine(ctx context.Context, actor Actor) (model.Wisata, error) {
	return s.Get(ctx, actor.WisataID)
}

// SaveMine updates the partner-editable columns of the caller's attraction.
func (s *WisataService) SaveMine(ctx context.Context, actor Actor, in model.WisataProfileInput) error {
	if err := s.store.UpdateProfile(ctx, actor.WisataID, in); err != nil {
		return lookupError(err, msgWisataNotFound, "Gagal menyimpan profil wisata")
	}
	s.audit.record(ctx, actor, "Update Profil Wisata", fmt.Sprintf("Update profil wisata ID: %d", actor.WisataID))
	return nil
}
