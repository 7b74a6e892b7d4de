package contract

//go:generate mockgen -source=weather.go -destination=../../../mocks/weather.go -package=mocks

import (
	"context"

	"github.com/diegoclair/forecast-bot/internal/domain/entity"
)

// WeatherGateway fetches weather for a free-text location query.
// An unknown location is reported as a *domain.ProviderError with code 1006.
type WeatherGateway interface {
	FetchCurrent(ctx context.Context, query string) (*entity.CurrentWeather, error)
	FetchForecast(ctx context.Context, query string) (*entity.ForecastWeather, error)
}
