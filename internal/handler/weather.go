package handler

import (
	"context"

	"github.com/deppfellow/bluewave/internal/service"
)

type WeatherHandler struct {
	Handler
	weather *service.WeatherService
}

func NewWeatherHandler(h Handler, weather *service.WeatherService) *WeatherHandler {
	return &WeatherHandler{Handler: h, weather: weather}
}

// Current relays the provider's JSON as is, without the envelope.
func (h *WeatherHandler) Current(ctx context.Context, req ActionRequest) (Result, error) {
	body, err := h.weather.Current(ctx, req.Param("lat"), req.Param("lon"))
	if err != nil {
		return Result{}, err
	}
	return raw(body), nil
}
