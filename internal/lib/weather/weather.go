// Package weather relays current conditions from the OpenWeatherMap API.
package weather

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/deppfellow/bluewave/internal/config"

	"github.com/pkg/errors"
)

// ErrUnavailable wraps every upstream failure: transport errors, non-200
// answers and bodies that are empty or not JSON.
var ErrUnavailable = errors.New("weather upstream unavailable")

// maxBody bounds how much of an upstream answer is read.
const maxBody = 1 << 20

type Client struct {
	baseURL string
	apiKey  string
	timeout time.Duration
	http    *http.Client
}

func NewClient(cfg config.WeatherConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		timeout: cfg.Timeout,
		http: &http.Client{
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Current fetches the current weather at lat/lon and returns the upstream
// JSON untouched.
func (c *Client) Current(ctx context.Context, lat, lon float64) (json.RawMessage, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, errors.Wrap(ErrUnavailable, err.Error())
	}

	q := u.Query()
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("units", "metric")
	q.Set("lang", "id")
	q.Set("appid", c.apiKey)
	u.RawQuery = q.Encode()

	reqCtx := ctx
	cancel := func() {}
	if c.timeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, c.timeout)
	}
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.Wrap(ErrUnavailable, err.Error())
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(ErrUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(ErrUnavailable, "status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, errors.Wrap(ErrUnavailable, err.Error())
	}
	if len(body) == 0 || !json.Valid(body) {
		return nil, errors.Wrap(ErrUnavailable, "empty or malformed body")
	}

	return json.RawMessage(body), nil
}
