package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWith(t *testing.T, body, query string) ActionRequest {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api?"+query, strings.NewReader(body))
	c := e.NewContext(req, httptest.NewRecorder())

	payload, err := decodePayload(c)
	require.NoError(t, err)

	return ActionRequest{Payload: payload, Query: c.QueryParams()}
}

func TestActionRequestParams(t *testing.T) {
	req := requestWith(t,
		`{"id": 12, "harga_tiket": "15000.50", "is_active": "1", "latitude": -8.65, "nama": " Pantai "}`,
		"id=99&tanggal=2026-10-16")

	assert.Equal(t, int64(12), req.ID(), "payload wins over query")
	assert.Equal(t, "2026-10-16", req.Param("tanggal"))
	assert.Equal(t, " Pantai ", req.String("nama"))
	assert.Equal(t, "Pantai", req.Param("nama"))
	assert.True(t, req.Bool("is_active", false))
	assert.True(t, req.Bool("missing", true))
	assert.Zero(t, req.Int64("nama"))

	harga, err := req.Decimal("harga_tiket")
	require.NoError(t, err)
	assert.True(t, harga.Equal(decimal.RequireFromString("15000.5")))

	lat, err := req.Float("latitude")
	require.NoError(t, err)
	require.NotNil(t, lat)
	assert.InDelta(t, -8.65, *lat, 1e-9)

	lon, err := req.Float("longitude")
	require.NoError(t, err)
	assert.Nil(t, lon)
}

func TestActionRequestInvalidNumber(t *testing.T) {
	req := ActionRequest{Payload: map[string]any{"nilai_diskon": "sepuluh"}, Query: url.Values{}}

	_, err := req.Decimal("nilai_diskon")

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, statusOf(err))
}

func TestDecodePayloadKeepsLargeIDs(t *testing.T) {
	req := requestWith(t, `{"id": 9007199254740993}`, "")

	assert.Equal(t, json.Number("9007199254740993"), req.Payload["id"])
	assert.Equal(t, int64(9007199254740993), req.ID())
}

func TestDecodePayloadEmptyBody(t *testing.T) {
	req := requestWith(t, "", "id=4")

	assert.Empty(t, req.Payload)
	assert.Equal(t, int64(4), req.ID())
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(ClassPublic)
	_, ok := r.Lookup("get_wisata")
	assert.False(t, ok)

	assert.Equal(t, http.StatusNotFound, statusOf(r.unknown()))
	assert.EqualError(t, r.unknown(), "Action publik tidak dikenali")
}
