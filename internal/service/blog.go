package service

import (
	"context"
	"fmt"
	"time"

	"github.com/deppfellow/bluewave/internal/model"
)

type BlogStore interface {
	ListPublished(ctx context.Context, limit int) ([]model.BlogSummary, error)
	GetPublished(ctx context.Context, id int64) (model.BlogPost, error)
	ListAll(ctx context.Context) ([]model.BlogSummary, error)
	Get(ctx context.Context, id int64) (model.BlogPost, error)
	Create(ctx context.Context, in model.BlogInput) (int64, error)
	Update(ctx context.Context, in model.BlogInput) error
	Delete(ctx context.Context, id int64) error
}

const (
	msgBlogNotFound = "Artikel tidak ditemukan"
	publicBlogLimit = 10
)

type BlogService struct {
	store BlogStore
	audit auditor
}

func NewBlogService(store BlogStore, sink AuditSink) *BlogService {
	return &BlogService{store: store, audit: auditor{sink: sink, now: time.Now}}
}

// ListPublic returns the ten newest published posts.
func (s *BlogService) ListPublic(ctx context.Context) ([]model.BlogSummary, error) {
	items, err := s.store.ListPublished(ctx, publicBlogLimit)
	if err != nil {
		return nil, storeError("Gagal memuat artikel", err)
	}
	return items, nil
}

func (s *BlogService) GetPublic(ctx context.Context, id int64) (model.BlogPost, error) {
	p, err := s.store.GetPublished(ctx, id)
	if err != nil {
		return model.BlogPost{}, lookupError(err, msgBlogNotFound, "Gagal memuat artikel")
	}
	return p, nil
}

func (s *BlogService) List(ctx context.Context) ([]model.BlogSummary, error) {
	items, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, storeError("Gagal memuat artikel", err)
	}
	return items, nil
}

func (s *BlogService) Get(ctx context.Context, id int64) (model.BlogPost, error) {
	p, err := s.store.Get(ctx, id)
	if err != nil {
		return model.BlogPost{}, lookupError(err, msgBlogNotFound, "Gagal memuat artikel")
	}
	return p, nil
}

// Save upserts a post. A new post is authored by the caller; an empty
// status means draft.
func (s *BlogService) Save(ctx context.Context, actor Actor, in model.BlogInput) (string, error) {
	if in.Status == "" {
		in.Status = model.BlogDraft
	}

	if in.ID != 0 {
		if err := s.store.Update(ctx, in); err != nil {
			return "", lookupError(err, msgBlogNotFound, "Gagal menyimpan artikel")
		}
		s.audit.record(ctx, actor, "Update Blog", fmt.Sprintf("Update artikel: %s", in.Judul))
		return "Artikel berhasil diperbarui", nil
	}

	in.PenulisID = actor.ID
	if _, err := s.store.Create(ctx, in); err != nil {
		return "", storeError("Gagal menyimpan artikel", err)
	}
	s.audit.record(ctx, actor, "Create Blog", fmt.Sprintf("Tambah artikel: %s", in.Judul))
	return "Artikel berhasil disimpan", nil
}

func (s *BlogService) Delete(ctx context.Context, actor Actor, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return lookupError(err, msgBlogNotFound, "Gagal menghapus artikel")
	}
	s.audit.record(ctx, actor, "Delete Blog", fmt.Sprintf("Hapus artikel ID: %d", id))
	return nil
}
