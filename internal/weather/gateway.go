package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/diegoclair/forecast-bot/internal/domain"
	"github.com/diegoclair/forecast-bot/internal/domain/contract"
	"github.com/diegoclair/forecast-bot/internal/domain/entity"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

const (
	endpointCurrent  = "current"
	endpointForecast = "forecast"

	maxBodyBytes = 1 << 20
)

var errMissingAPIKey = errors.New("weather api key is not configured")

// Gateway talks to WeatherAPI.com. Every call reaches the network; nothing is cached
// and nothing is retried.
type Gateway struct {
	client  *http.Client
	baseURL string
	apiKey  string
	circuit *gobreaker.CircuitBreaker
	log     *zap.Logger
}

var _ contract.WeatherGateway = (*Gateway)(nil)

func New(client *http.Client, baseURL, apiKey string, log *zap.Logger) *Gateway {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "weatherapi",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &Gateway{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		circuit: cb,
		log:     log,
	}
}

func (g *Gateway) FetchCurrent(ctx context.Context, query string) (*entity.CurrentWeather, error) {
	var payload currentPayload
	if err := g.call(ctx, endpointCurrent, query, &payload); err != nil {
		return nil, err
	}
	return payload.toEntity(), nil
}

func (g *Gateway) FetchForecast(ctx context.Context, query string) (*entity.ForecastWeather, error) {
	var payload forecastPayload
	if err := g.call(ctx, endpointForecast, query, &payload); err != nil {
		return nil, err
	}
	return payload.toEntity(), nil
}

// call issues one GET and decodes the body into out. The body is decoded whatever the
// HTTP status, since the provider reports errors in the JSON body.
func (g *Gateway) call(ctx context.Context, endpoint, query string, out errorCarrier) error {
	if g.apiKey == "" {
		return fmt.Errorf("%w: %w", domain.ErrProviderFault, errMissingAPIKey)
	}

	body, err := g.circuit.Execute(func() (interface{}, error) {
		return g.get(ctx, endpoint, query)
	})
	if err != nil {
		return fmt.Errorf("%w: %s %q: %w", domain.ErrProviderFault, endpoint, query, err)
	}

	if err := json.Unmarshal(body.([]byte), out); err != nil {
		return fmt.Errorf("%w: failed to decode %s response: %w", domain.ErrProviderFault, endpoint, err)
	}

	if e := out.providerError(); e != nil {
		pe := &domain.ProviderError{Code: e.Code, Message: e.Message}
		if pe.Code == domain.LocationNotFoundCode {
			return pe
		}
		return fmt.Errorf("%w: %w", domain.ErrProviderFault, pe)
	}

	return nil
}

// get returns the raw body. Only transport failures and non-JSON bodies count against
// the circuit breaker.
func (g *Gateway) get(ctx context.Context, endpoint, query string) ([]byte, error) {
	values := url.Values{}
	values.Set("key", g.apiKey)
	values.Set("q", query)

	u := fmt.Sprintf("%s/%s.json?%s", g.baseURL, endpoint, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	if len(body) == 0 || !json.Valid(body) {
		return nil, fmt.Errorf("unexpected response (status %d)", resp.StatusCode)
	}

	g.log.Debug("weather api response",
		zap.String("endpoint", endpoint),
		zap.String("query", query),
		zap.Int("status", resp.StatusCode),
	)

	return body, nil
}
