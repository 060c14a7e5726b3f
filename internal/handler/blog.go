package handler

import (
	"context"

	"github.com/deppfellow/bluewave/internal/errs"
	"github.com/deppfellow/bluewave/internal/model"
	"github.com/deppfellow/bluewave/internal/service"
)

type BlogHandler struct {
	Handler
	blog *service.BlogService
}

func NewBlogHandler(h Handler, blog *service.BlogService) *BlogHandler {
	return &BlogHandler{Handler: h, blog: blog}
}

func (h *BlogHandler) GetPublic(ctx context.Context, req ActionRequest) (Result, error) {
	if id := req.ID(); id != 0 {
		p, err := h.blog.GetPublic(ctx, id)
		if err != nil {
			return Result{}, err
		}
		return ok(p), nil
	}

	items, err := h.blog.ListPublic(ctx)
	if err != nil {
		return Result{}, err
	}
	return ok(items), nil
}

func (h *BlogHandler) GetAdmin(ctx context.Context, req ActionRequest) (Result, error) {
	if id := req.ID(); id != 0 {
		p, err := h.blog.Get(ctx, id)
		if err != nil {
			return Result{}, err
		}
		return ok(p), nil
	}

	items, err := h.blog.List(ctx)
	if err != nil {
		return Result{}, err
	}
	return ok(items), nil
}

func (h *BlogHandler) Save(ctx context.Context, req ActionRequest) (Result, error) {
	msg, err := h.blog.Save(ctx, req.Actor(), model.BlogInput{
		ID:        req.ID(),
		Judul:     req.String("judul"),
		Konten:    req.String("konten"),
		Status:    req.String("status"),
		GambarURL: req.String("gambar_url"),
		Excerpt:   req.String("excerpt"),
		Kategori:  req.String("kategori"),
	})
	if err != nil {
		return Result{}, err
	}
	return message(msg), nil
}

func (h *BlogHandler) Delete(ctx context.Context, req ActionRequest) (Result, error) {
	id := req.ID()
	if id == 0 {
		return Result{}, errs.NewBadRequestError("ID Artikel diperlukan", true, nil, nil)
	}
	if err := h.blog.Delete(ctx, req.Actor(), id); err != nil {
		return Result{}, err
	}
	return message("Artikel berhasil dihapus"), nil
}
