package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/deppfellow/bluewave/internal/config"
	"github.com/deppfellow/bluewave/internal/lib/token"
	"github.com/deppfellow/bluewave/internal/lib/weather"
	"github.com/deppfellow/bluewave/internal/middleware"
	"github.com/deppfellow/bluewave/internal/model"
	"github.com/deppfellow/bluewave/internal/repository"
	"github.com/deppfellow/bluewave/internal/server"
	"github.com/deppfellow/bluewave/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const upstreamWeather = `{"weather":[{"main":"Clouds"}],"main":{"temp":29.5},"name":"Denpasar"}`

// stubVerifier answers every token with result and remembers what it saw.
type stubVerifier struct {
	mu     sync.Mutex
	result token.Result
	seen   []string
}

func (v *stubVerifier) Verify(_ context.Context, raw string) token.Result {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.seen = append(v.seen, raw)
	return v.result
}

func (v *stubVerifier) calls() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.seen...)
}

type testAPI struct {
	echo     *echo.Echo
	server   *server.Server
	mock     pgxmock.PgxPoolIface
	verifier *stubVerifier
	upstream *atomic.Int32
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})

	hits := &atomic.Int32{}
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(upstreamWeather))
	}))
	t.Cleanup(upstream.Close)

	log := zerolog.Nop()
	s := &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server:  config.ServerConfig{ExposeStoreErrors: true},
		},
		Logger: &log,
	}

	repos := repository.New(mock)
	verifier := &stubVerifier{}
	sink := service.NopAuditSink{}

	services := &service.Services{
		Auth:      service.NewAuthService(repos.User, repos.Admin, repos.Mitra, nil, nil, &log),
		Wisata:    service.NewWisataService(repos.Wisata, sink),
		Blog:      service.NewBlogService(repos.Blog, sink),
		Promo:     service.NewPromoService(repos.Promo, sink),
		Tiket:     service.NewTiketService(repos.Tiket, sink),
		Mitra:     service.NewMitraService(repos.Mitra, sink),
		User:      service.NewUserService(repos.User, repos.Tiket),
		Dashboard: service.NewDashboardService(repos.Dashboard, repos.Activity, repos.Wisata),
		Weather: service.NewWeatherService(
			weather.NewClient(config.WeatherConfig{BaseURL: upstream.URL, APIKey: "k", Timeout: time.Second}),
			&log, nil,
		),
		Tokens: verifier,
	}

	h := NewHandlers(s, services)

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewGlobalMiddlewares(s).GlobalErrorHandler
	e.Match([]string{http.MethodGet, http.MethodPost}, "/api", h.Action.Dispatch)
	e.Match([]string{http.MethodGet, http.MethodPost}, "/api/auth", h.Auth.Dispatch)

	return &testAPI{echo: e, server: s, mock: mock, verifier: verifier, upstream: hits}
}

func (a *testAPI) as(role model.Role, wisataID int64) {
	a.verifier.result = token.Result{Authenticated: true, UserID: 9, Role: role, WisataID: wisataID}
}

func (a *testAPI) do(t *testing.T, method, target, body string, header ...string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}

	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) model.Response {
	t.Helper()
	var resp model.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp
}

func TestGetWisataOnEmptyStore(t *testing.T) {
	api := newTestAPI(t)
	api.mock.ExpectQuery("FROM wisata").
		WillReturnRows(pgxmock.NewRows([]string{"id", "nama", "kategori", "lokasi", "harga_tiket", "gambar_url"}))

	rec := api.do(t, http.MethodGet, "/api?action=get_wisata", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":[]}`, rec.Body.String())
	assert.Empty(t, api.verifier.calls(), "public actions never verify a token")
}

func TestPrivateActionWithoutToken(t *testing.T) {
	api := newTestAPI(t)

	for _, action := range []string{"get_admin_wisata", "save_mitra", "get_my_tiket", "get_user_profile", "no_such_action"} {
		t.Run(action, func(t *testing.T) {
			rec := api.do(t, http.MethodPost, "/api?action="+action, `{"id": 1}`)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			resp := decode(t, rec)
			assert.False(t, resp.Success)
			assert.Equal(t, "Token otorisasi diperlukan", resp.Message)
		})
	}

	assert.Empty(t, api.verifier.calls())
}

func TestVerifierRejection(t *testing.T) {
	api := newTestAPI(t)
	api.verifier.result = token.Result{Authenticated: false, Message: "token kedaluwarsa"}

	rec := api.do(t, http.MethodPost, "/api?action=get_admin_wisata", `{"token":"old"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized: token kedaluwarsa", decode(t, rec).Message)
	assert.Equal(t, []string{"old"}, api.verifier.calls())
}

func TestBearerHeaderFallback(t *testing.T) {
	api := newTestAPI(t)
	api.verifier.result = token.Result{Authenticated: false, Message: "x"}

	api.do(t, http.MethodGet, "/api?action=get_tiket", "", echo.HeaderAuthorization, "Bearer abc.def")
	api.do(t, http.MethodPost, "/api?action=get_tiket", `{"token":"from-body"}`, echo.HeaderAuthorization, "Bearer ignored")

	assert.Equal(t, []string{"abc.def", "from-body"}, api.verifier.calls())
}

func TestRoleRouting(t *testing.T) {
	tests := []struct {
		name     string
		role     model.Role
		wisataID int64
		status   int
		message  string
	}{
		{"mitra without attraction", model.RoleMitra, 0, http.StatusForbidden, "Mitra tidak terhubung dengan wisata"},
		{"unknown role", model.Role("tamu"), 0, http.StatusForbidden, "Role tidak dikenali"},
		{"admin unknown action", model.RoleAdmin, 0, http.StatusNotFound, "Action admin tidak dikenali"},
		{"superadmin unknown action", model.RoleSuperadmin, 0, http.StatusNotFound, "Action admin tidak dikenali"},
		{"mitra unknown action", model.RoleMitra, 3, http.StatusNotFound, "Action mitra tidak dikenali"},
		{"user unknown action", model.RoleUser, 0, http.StatusNotFound, "Action user tidak dikenali"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			api.as(tt.role, tt.wisataID)

			rec := api.do(t, http.MethodPost, "/api?action=no_such_action", `{"token":"t"}`)

			assert.Equal(t, tt.status, rec.Code)
			resp := decode(t, rec)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.message, resp.Message)
		})
	}
}

func TestActionsAreScopedToTheirRole(t *testing.T) {
	api := newTestAPI(t)
	api.as(model.RoleUser, 0)

	rec := api.do(t, http.MethodPost, "/api?action=get_admin_wisata", `{"token":"t"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Action user tidak dikenali", decode(t, rec).Message)
}

func TestSaveMitraWithoutPassword(t *testing.T) {
	api := newTestAPI(t)
	api.as(model.RoleAdmin, 0)

	rec := api.do(t, http.MethodPost, "/api?action=save_mitra",
		`{"token":"t","nama_mitra":"Pantai Biru","username":"biru","wisata_id":3,"is_active":1}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "Password wajib diisi untuk mitra baru", resp.Message)
}

func TestRequiredFields(t *testing.T) {
	api := newTestAPI(t)
	api.as(model.RoleAdmin, 0)

	rec := api.do(t, http.MethodPost, "/api?action=save_wisata",
		`{"token":"t","nama":"Pantai Biru","kategori":null,"lokasi":"  "}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, "Field berikut harus diisi: kategori, lokasi, harga_tiket", resp.Message)
	require.Len(t, resp.Errors, 3)
	assert.Equal(t, "kategori", resp.Errors[0].Field)
}

func TestValidateTiketNeedsCode(t *testing.T) {
	api := newTestAPI(t)
	api.as(model.RoleMitra, 3)

	rec := api.do(t, http.MethodPost, "/api?action=validate_tiket", `{"token":"t","kode_tiket":" "}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Kode tiket diperlukan", decode(t, rec).Message)
}

func TestMonthlyReportNeedsMonth(t *testing.T) {
	api := newTestAPI(t)
	api.as(model.RoleMitra, 3)

	rec := api.do(t, http.MethodPost, "/api?action=get_my_laporan_bulanan", `{"token":"t"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Parameter bulan diperlukan (YYYY-MM)", decode(t, rec).Message)
}

func TestWeather(t *testing.T) {
	t.Run("invalid coordinates never reach upstream", func(t *testing.T) {
		api := newTestAPI(t)

		for _, target := range []string{
			"/api?action=get_weather&lat=abc&lon=115.2",
			"/api?action=get_weather&lat=-8.6",
			"/api?action=get_weather&lat=91&lon=0",
			"/api?action=get_weather&lat=NaN&lon=0",
		} {
			rec := api.do(t, http.MethodGet, target, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code, target)
			assert.Equal(t, "Koordinat tidak valid", decode(t, rec).Message, target)
		}

		assert.Zero(t, api.upstream.Load())
	})

	t.Run("relays upstream body without envelope", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(t, http.MethodGet, "/api?action=get_weather&lat=-8.65&lon=115.21", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, upstreamWeather, rec.Body.String())
		assert.Equal(t, int32(1), api.upstream.Load())
	})
}

func TestStoreFailureMessage(t *testing.T) {
	t.Run("driver error is appended", func(t *testing.T) {
		api := newTestAPI(t)
		api.mock.ExpectQuery("FROM wisata").WillReturnError(errors.New("connection refused"))

		rec := api.do(t, http.MethodGet, "/api?action=get_wisata", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Gagal memuat data wisata: connection refused", decode(t, rec).Message)
	})

	t.Run("driver error hidden", func(t *testing.T) {
		api := newTestAPI(t)
		api.server.Config.Server.ExposeStoreErrors = false
		api.mock.ExpectQuery("FROM wisata").WillReturnError(errors.New("connection refused"))

		rec := api.do(t, http.MethodGet, "/api?action=get_wisata", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Gagal memuat data wisata", decode(t, rec).Message)
	})
}

func TestMalformedBody(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/api?action=get_admin_wisata", `{"token":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Format request tidak valid", decode(t, rec).Message)
	assert.Empty(t, api.verifier.calls())
}
