package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/deppfellow/bluewave/internal/errs"
	"github.com/deppfellow/bluewave/internal/lib/token"
	"github.com/deppfellow/bluewave/internal/service"
	"github.com/deppfellow/bluewave/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const maxBodyBytes = 1 << 20

// ActionRequest is everything an action handler may read. It is built once
// per request and passed by value.
type ActionRequest struct {
	Action  string
	Payload map[string]any
	Query   url.Values
	Auth    token.Result
}

// Actor is the authenticated caller.
func (r ActionRequest) Actor() service.Actor {
	return service.Actor{ID: r.Auth.UserID, Role: r.Auth.Role, WisataID: r.Auth.WisataID}
}

// Require reports every blank field of the payload as one 400.
func (r ActionRequest) Require(fields ...string) error {
	return validation.RequireFields(r.Payload, fields...)
}

// Has reports whether the payload carries key, even as null.
func (r ActionRequest) Has(key string) bool {
	_, ok := r.Payload[key]
	return ok
}

// String is a payload field as text. Numbers keep their JSON spelling.
func (r ActionRequest) String(key string) string {
	return stringify(r.Payload[key])
}

// Param reads key from the payload, falling back to the query string.
func (r ActionRequest) Param(key string) string {
	if v := strings.TrimSpace(r.String(key)); v != "" {
		return v
	}
	return strings.TrimSpace(r.Query.Get(key))
}

// Int64 parses Param(key). Anything that is not an integer reads as 0.
func (r ActionRequest) Int64(key string) int64 {
	n, err := strconv.ParseInt(r.Param(key), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// ID is the "id" parameter, 0 when absent.
func (r ActionRequest) ID() int64 {
	return r.Int64("id")
}

// Bool accepts true, 1, "1" and "true". def is used when key is absent.
func (r ActionRequest) Bool(key string, def bool) bool {
	v, ok := r.Payload[key]
	if !ok || v == nil {
		return def
	}
	switch t := v.(type) {
	case bool:
		return t
	default:
		s := strings.ToLower(strings.TrimSpace(stringify(t)))
		return s == "1" || s == "true"
	}
}

// Decimal parses a money field. A blank value is zero.
func (r ActionRequest) Decimal(key string) (decimal.Decimal, error) {
	s := strings.TrimSpace(r.String(key))
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, invalidField(key)
	}
	return d, nil
}

// Float parses an optional number; nil when blank.
func (r ActionRequest) Float(key string) (*float64, error) {
	s := strings.TrimSpace(r.String(key))
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, invalidField(key)
	}
	return &f, nil
}

func invalidField(key string) error {
	return errs.NewBadRequestError("Nilai "+key+" tidak valid", true, nil,
		[]errs.FieldError{{Field: key, Error: "format tidak valid"}})
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// decodePayload reads the body as a JSON object. An empty body is an empty
// payload; numbers stay json.Number so ids and money keep full precision.
func decodePayload(c echo.Context) (map[string]any, error) {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxBodyBytes))
	if err != nil {
		return nil, errs.NewBadRequestError("Format request tidak valid", true, nil, nil)
	}

	payload := map[string]any{}
	if len(bytes.TrimSpace(body)) == 0 {
		return payload, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		return nil, errs.NewBadRequestError("Format request tidak valid", true, nil, nil)
	}
	if payload == nil {
		payload = map[string]any{}
	}

	return payload, nil
}

// bearerToken takes the token from the payload, then from the
// Authorization header.
func bearerToken(c echo.Context, payload map[string]any) string {
	if t, ok := payload["token"].(string); ok && strings.TrimSpace(t) != "" {
		return strings.TrimSpace(t)
	}

	h := c.Request().Header.Get(echo.HeaderAuthorization)
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}
