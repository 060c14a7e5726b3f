package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/bluewave/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapCode(t *testing.T) {
	assert.Equal(t, UniqueViolation, MapCode("23505"))
	assert.Equal(t, ForeignKeyViolation, MapCode("23503"))
	assert.Equal(t, NotNullViolation, MapCode("23502"))
	assert.Equal(t, Other, MapCode("XX999"))
}

func TestHandleErrorUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		TableName:      "mitra",
		ConstraintName: "mitra_username_key",
	}

	err := HandleError(fmt.Errorf("insert mitra: %w", pgErr))

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "MITRA_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "Mitra dengan Username tersebut sudah ada", httpErr.Message)
	assert.True(t, IsUniqueViolation(pgErr))
}

func TestHandleErrorNotNull(t *testing.T) {
	err := HandleError(&pgconn.PgError{Code: "23502", TableName: "wisata", ColumnName: "nama"})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, "WISATA_REQUIRED", httpErr.Code)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "nama", httpErr.Errors[0].Field)
}

func TestHandleErrorNoRows(t *testing.T) {
	err := HandleError(pgx.ErrNoRows)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestHandleErrorPassesHTTPErrorThrough(t *testing.T) {
	orig := errs.NewConflictError("Tiket sudah digunakan", true)
	assert.Same(t, orig, HandleError(orig))
}

func TestHandleErrorUnknown(t *testing.T) {
	err := HandleError(errors.New("boom"))

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.False(t, IsUniqueViolation(err))
}

func TestHandleErrorNamesEntities(t *testing.T) {
	cases := []struct {
		name    string
		pgErr   *pgconn.PgError
		code    string
		message string
	}{
		{
			name:    "multi word unique column",
			pgErr:   &pgconn.PgError{Code: "23505", TableName: "tiket", ConstraintName: "tiket_kode_tiket_key"},
			code:    "TIKET_ALREADY_EXISTS",
			message: "Tiket dengan Kode Tiket tersebut sudah ada",
		},
		{
			name:    "foreign key names the referenced entity",
			pgErr:   &pgconn.PgError{Code: "23503", TableName: "promo", ColumnName: "wisata_id"},
			code:    "PROMO_NOT_FOUND",
			message: "Data Wisata yang dirujuk tidak ditemukan",
		},
		{
			name:    "table alias",
			pgErr:   &pgconn.PgError{Code: "23514", TableName: "blog_posts"},
			code:    "ARTIKEL_INVALID",
			message: "Satu atau lebih nilai tidak memenuhi syarat",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var httpErr *errs.HTTPError
			require.True(t, errors.As(HandleError(tc.pgErr), &httpErr))
			assert.Equal(t, http.StatusBadRequest, httpErr.Status)
			assert.Equal(t, tc.code, httpErr.Code)
			assert.Equal(t, tc.message, httpErr.Message)
		})
	}
}
