// Package model holds the entities read from the store, the inputs the
// services accept and the JSON envelope every action answers with.
package model

import (
	"github.com/deppfellow/bluewave/internal/errs"

	"github.com/shopspring/decimal"
)

func init() {
	// Money goes out as a JSON number, not a quoted string.
	decimal.MarshalJSONWithoutQuotes = true
}

// Response is the envelope of every /api answer.
//
// Data is omitted only when nil, so an empty list still renders as [].
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`

	Code   string            `json:"code,omitempty"`
	Errors []errs.FieldError `json:"errors,omitempty"`
}

// OK wraps data in a success envelope.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// Message is a success envelope without data.
func Message(msg string) Response {
	return Response{Success: true, Message: msg}
}

// Fail builds the envelope for err.
func Fail(err *errs.HTTPError, message string) Response {
	return Response{
		Success: false,
		Message: message,
		Code:    err.Code,
		Errors:  err.Errors,
	}
}

// LoginResponse is returned by the auth endpoint.
type LoginResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Token   string   `json:"token,omitempty"`
	User    *Account `json:"user,omitempty"`
}
