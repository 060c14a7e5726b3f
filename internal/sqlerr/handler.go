package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/deppfellow/bluewave/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrCode reports the Code of err, or Other when err is not a PostgreSQL error.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return MapCode(pgerr.Code)
	}

	return Other
}

func IsUniqueViolation(err error) bool {
	return ErrCode(err) == UniqueViolation
}

// ConvertPgError converts a pgconn.PgError into an *Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// entities names each table the way users talk about it.
var entities = map[string]string{
	"admin_users":      "admin",
	"wisata":           "wisata",
	"mitra":            "mitra",
	"users":            "user",
	"blog_posts":       "artikel",
	"promo":            "promo",
	"tiket":            "tiket",
	"favorit":          "favorit",
	"reviews":          "ulasan",
	"admin_activities": "aktivitas",
}

func entityOf(table string) string {
	if table == "" {
		return "data"
	}
	if name, ok := entities[table]; ok {
		return name
	}
	return table
}

var actions = map[Code]string{
	ForeignKeyViolation: "NOT_FOUND",
	UniqueViolation:     "ALREADY_EXISTS",
	NotNullViolation:    "REQUIRED",
	CheckViolation:      "INVALID",
}

// errorCode builds codes like WISATA_REQUIRED or MITRA_ALREADY_EXISTS.
func errorCode(sqlErr *Error) string {
	action, ok := actions[sqlErr.Code]
	if !ok {
		action = "ERROR"
	}
	return fmt.Sprintf("%s_%s", strings.ToUpper(entityOf(sqlErr.TableName)), action)
}

// humanize turns "nama_mitra" into "Nama Mitra".
func humanize(text string) string {
	return cases.Title(language.Indonesian).String(strings.ReplaceAll(text, "_", " "))
}

// uniqueColumn recovers the column from Postgres' default constraint
// name, e.g. "mitra_username_key" or "tiket_kode_tiket_key".
func uniqueColumn(sqlErr *Error) string {
	if sqlErr.ColumnName != "" {
		return sqlErr.ColumnName
	}
	name, ok := strings.CutSuffix(sqlErr.ConstraintName, "_key")
	if !ok {
		return ""
	}
	if col, ok := strings.CutPrefix(name, sqlErr.TableName+"_"); ok && sqlErr.TableName != "" {
		return col
	}
	if i := strings.LastIndex(name, "_"); i >= 0 {
		return name[i+1:]
	}
	return ""
}

// HandleError converts a database error into an *errs.HTTPError.
// Constraint violations become 400, a missing row 404 and anything else
// a bare 500. An *errs.HTTPError passes through unchanged.
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("Data tidak ditemukan", false, nil)
	}

	var pgerr *pgconn.PgError
	if !errors.As(err, &pgerr) {
		return errs.NewInternalServerError()
	}

	sqlErr := ConvertPgError(pgerr)
	code := errorCode(sqlErr)
	entity := humanize(entityOf(sqlErr.TableName))

	switch sqlErr.Code {
	case ForeignKeyViolation:
		referenced := entity
		if col := strings.TrimSuffix(strings.ToLower(sqlErr.ColumnName), "_id"); col != strings.ToLower(sqlErr.ColumnName) {
			referenced = humanize(col)
		}
		return errs.NewBadRequestError(fmt.Sprintf("Data %s yang dirujuk tidak ditemukan", referenced), false, &code, nil)

	case UniqueViolation:
		what := "identifier"
		if col := uniqueColumn(sqlErr); col != "" {
			what = humanize(col)
		}
		return errs.NewBadRequestError(fmt.Sprintf("%s dengan %s tersebut sudah ada", entity, what), true, &code, nil)

	case NotNullViolation:
		field := strings.ToLower(sqlErr.ColumnName)
		label := "Field"
		if field != "" {
			label = humanize(field)
		}
		return errs.NewBadRequestError(label+" wajib diisi", true, &code,
			[]errs.FieldError{{Field: field, Error: "wajib diisi"}})

	case CheckViolation:
		msg := "Satu atau lebih nilai tidak memenuhi syarat"
		if sqlErr.ColumnName != "" {
			msg = fmt.Sprintf("Nilai %s tidak memenuhi syarat", humanize(sqlErr.ColumnName))
		}
		return errs.NewBadRequestError(msg, true, &code, nil)
	}

	return errs.NewInternalServerError()
}
