package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/deppfellow/bluewave/internal/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string, timeout time.Duration) *Client {
	return NewClient(config.WeatherConfig{BaseURL: url, APIKey: "k3y", Timeout: timeout})
}

func TestCurrentRelaysBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "-6.1754", r.URL.Query().Get("lat"))
		assert.Equal(t, "106.8272", r.URL.Query().Get("lon"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "k3y", r.URL.Query().Get("appid"))
		_, _ = w.Write([]byte(`{"name":"Jakarta","main":{"temp":31.2}}`))
	}))
	defer srv.Close()

	body, err := newTestClient(srv.URL, time.Second).Current(context.Background(), -6.1754, 106.8272)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Jakarta","main":{"temp":31.2}}`, string(body))
}

func TestCurrentUnavailable(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"server error": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
		"unauthorized": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"cod":401}`))
		},
		"empty body": func(w http.ResponseWriter, r *http.Request) {},
		"not json": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>"))
		},
	}

	for name, h := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(h)
			defer srv.Close()

			_, err := newTestClient(srv.URL, time.Second).Current(context.Background(), 1, 1)
			assert.True(t, errors.Is(err, ErrUnavailable))
		})
	}
}

func TestCurrentTimeout(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := newTestClient(srv.URL, 50*time.Millisecond).Current(context.Background(), 1, 1)
	assert.True(t, errors.Is(err, ErrUnavailable))
	assert.Equal(t, int32(1), calls.Load())
}
