// Package service contains the business logic.
//
// It sits between the handler and repository layers. Handlers pass in
// typed inputs and the caller's Actor; services enforce the rules, call
// the stores they declare as interfaces, report mutations to the audit
// sink and return *errs.HTTPError values for every expected failure.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/deppfellow/bluewave/internal/errs"
	"github.com/deppfellow/bluewave/internal/model"
	"github.com/deppfellow/bluewave/internal/repository"
	"github.com/deppfellow/bluewave/internal/sqlerr"
)

// Actor is the authenticated caller of a private action.
type Actor struct {
	ID       int64
	Role     model.Role
	WisataID int64
}

// AuditSink receives one entry per mutating admin or partner action.
// Record must not block the caller and never reports failure.
type AuditSink interface {
	Record(ctx context.Context, entry model.ActivityEntry)
}

// NopAuditSink drops every entry.
type NopAuditSink struct{}

func (NopAuditSink) Record(context.Context, model.ActivityEntry) {}

type auditor struct {
	sink AuditSink
	now  func() time.Time
}

func (a auditor) record(ctx context.Context, actor Actor, action, description string) {
	if a.sink == nil {
		return
	}
	a.sink.Record(ctx, model.ActivityEntry{
		ActorID:     actor.ID,
		ActorRole:   actor.Role,
		Action:      action,
		Description: description,
		Timestamp:   a.now(),
	})
}

// storeError classifies a repository failure. Constraint violations are
// the caller's fault and become 400s; anything else is a 500 carrying
// message and the driver error.
func storeError(message string, err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	switch sqlerr.ErrCode(err) {
	case sqlerr.UniqueViolation, sqlerr.ForeignKeyViolation, sqlerr.NotNullViolation, sqlerr.CheckViolation:
		return sqlerr.HandleError(err)
	}

	return errs.NewStoreError(message, err)
}

// lookupError maps repository.ErrNotFound to a 404 with notFoundMsg.
func lookupError(err error, notFoundMsg, storeMsg string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return errs.NewNotFoundError(notFoundMsg, true, nil)
	}
	return storeError(storeMsg, err)
}
