package errs

import (
	"net/http"
)

func statusCode(status int) string {
	return MakeUpperCaseWithUnderscores(http.StatusText(status))
}

func newHTTPError(status int, message string, override bool) *HTTPError {
	return &HTTPError{
		Code:     statusCode(status),
		Message:  message,
		Status:   status,
		Override: override,
	}
}

// NewUnauthorizedError creates a 401. override marks the message as safe
// to show as-is.
func NewUnauthorizedError(message string, override bool) *HTTPError {
	return newHTTPError(http.StatusUnauthorized, message, override)
}

func NewForbiddenError(message string, override bool) *HTTPError {
	return newHTTPError(http.StatusForbidden, message, override)
}

// NewBadRequestError creates a 400. code defaults to BAD_REQUEST when nil;
// errors lists every failing field.
func NewBadRequestError(message string, override bool, code *string, errors []FieldError) *HTTPError {
	err := newHTTPError(http.StatusBadRequest, message, override)
	if code != nil {
		err.Code = *code
	}
	err.Errors = errors
	return err
}

func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	err := newHTTPError(http.StatusNotFound, message, override)
	if code != nil {
		err.Code = *code
	}
	return err
}

// NewConflictError is for a state transition that already happened, like
// validating a used ticket.
func NewConflictError(message string, override bool) *HTTPError {
	return newHTTPError(http.StatusConflict, message, override)
}

// NewServiceUnavailableError is for a failing upstream.
func NewServiceUnavailableError(message string, override bool) *HTTPError {
	return newHTTPError(http.StatusServiceUnavailable, message, override)
}

// NewInternalServerError carries only the status text.
func NewInternalServerError() *HTTPError {
	return newHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), false)
}

// NewStoreError creates a 500 for a failed persistence call. message names
// the operation ("Gagal menyimpan wisata"); the error handler appends the
// cause unless store errors are hidden.
func NewStoreError(message string, cause error) *HTTPError {
	err := newHTTPError(http.StatusInternalServerError, message, true)
	err.Cause = cause
	return err
}
