// Package validation checks request data before it reaches a service.
//
// Typed payloads (login, registration) carry validator tags and are
// checked with BindAndValidate. Action payloads are loose JSON objects;
// RequireFields enforces their required-field sets.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/deppfellow/bluewave/internal/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate = validator.New()

// Validatable is implemented by request payload types that know how to
// validate themselves, usually by calling Struct.
type Validatable interface {
	Validate() error
}

// CustomValidationError is a failure that a validator tag cannot express.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors satisfies error so Validate can return it.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validasi gagal"
}

// Struct runs the shared validator over v.
func Struct(v any) error {
	return validate.Struct(v)
}

// BindAndValidate binds the request into payload, which must be a pointer,
// and validates it. Failures come back as a 400 *errs.HTTPError.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError(bindMessage(err), true, nil, nil)
	}

	return Check(payload)
}

// Check validates an already decoded payload, reporting failures the same
// way BindAndValidate does.
func Check(payload Validatable) error {
	if err := payload.Validate(); err != nil {
		msg, fieldErrors := extractValidationError(err)
		return errs.NewBadRequestError(msg, true, nil, fieldErrors)
	}
	return nil
}

func bindMessage(err error) string {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if msg, ok := he.Message.(string); ok && msg != "" {
			return msg
		}
	}
	return "Format request tidak valid"
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var custom CustomValidationErrors
	if errors.As(err, &custom) {
		for _, e := range custom {
			fieldErrors = append(fieldErrors, errs.FieldError{Field: e.Field, Error: e.Message})
		}
		return "Validasi gagal", fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error(), nil
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		var msg string

		switch e.Tag() {
		case "required":
			msg = "wajib diisi"
		case "min":
			if e.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("minimal %s karakter", e.Param())
			} else {
				msg = fmt.Sprintf("minimal %s", e.Param())
			}
		case "max":
			if e.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("maksimal %s karakter", e.Param())
			} else {
				msg = fmt.Sprintf("maksimal %s", e.Param())
			}
		case "oneof":
			msg = fmt.Sprintf("harus salah satu dari: %s", e.Param())
		case "email":
			msg = "format email tidak valid"
		case "latitude", "longitude":
			msg = "koordinat tidak valid"
		default:
			if e.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, e.Tag(), e.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, e.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{Field: field, Error: msg})
	}

	return "Validasi gagal", fieldErrors
}

// RequireFields reports, as a single 400, every name in fields whose value
// in data is absent, null or a blank string. Missing names keep the order
// they were declared in.
func RequireFields(data map[string]any, fields ...string) error {
	var missing []string
	for _, f := range fields {
		if IsBlank(data[f]) {
			missing = append(missing, f)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	fieldErrors := make([]errs.FieldError, 0, len(missing))
	for _, f := range missing {
		fieldErrors = append(fieldErrors, errs.FieldError{Field: f, Error: "wajib diisi"})
	}

	code := "MISSING_FIELDS"
	return errs.NewBadRequestError(
		"Field berikut harus diisi: "+strings.Join(missing, ", "),
		true, &code, fieldErrors,
	)
}

// IsBlank reports whether a decoded JSON value counts as "not supplied".
func IsBlank(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	default:
		return false
	}
}
