package service

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/deppfellow/bluewave/internal/errs"
	"github.com/deppfellow/bluewave/internal/lib/metrics"

	"github.com/rs/zerolog"
)

// WeatherProvider fetches current conditions as raw JSON.
type WeatherProvider interface {
	Current(ctx context.Context, lat, lon float64) (json.RawMessage, error)
}

const (
	msgInvalidCoordinates = "Koordinat tidak valid"
	msgWeatherUnavailable = "Gagal memuat data cuaca"
)

type WeatherService struct {
	provider WeatherProvider
	logger   *zerolog.Logger
	metrics  *metrics.Metrics
}

func NewWeatherService(provider WeatherProvider, logger *zerolog.Logger, m *metrics.Metrics) *WeatherService {
	return &WeatherService{provider: provider, logger: logger, metrics: m}
}

// Current validates the raw coordinates and relays the provider's answer.
// Invalid coordinates never reach the provider.
func (s *WeatherService) Current(ctx context.Context, rawLat, rawLon string) (json.RawMessage, error) {
	lat, lon, ok := ParseCoordinates(rawLat, rawLon)
	if !ok {
		s.metrics.ObserveWeather("invalid")
		return nil, errs.NewBadRequestError(msgInvalidCoordinates, true, nil, nil)
	}

	body, err := s.provider.Current(ctx, lat, lon)
	if err != nil {
		s.logger.Warn().Err(err).Float64("lat", lat).Float64("lon", lon).Msg("weather upstream failed")
		s.metrics.ObserveWeather("error")
		return nil, errs.NewServiceUnavailableError(msgWeatherUnavailable, true)
	}

	s.metrics.ObserveWeather("ok")
	return body, nil
}

// ParseCoordinates parses a latitude/longitude pair. Both must be finite
// and within [-90, 90] and [-180, 180].
func ParseCoordinates(rawLat, rawLon string) (lat, lon float64, ok bool) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(rawLat), 64)
	if err != nil || !finite(lat) || lat < -90 || lat > 90 {
		return 0, 0, false
	}

	lon, err = strconv.ParseFloat(strings.TrimSpace(rawLon), 64)
	if err != nil || !finite(lon) || lon < -180 || lon > 180 {
		return 0, 0, false
	}

	return lat, lon, true
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
