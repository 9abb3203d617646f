package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	apperrors "siska-gateway/internal/common/errors"
	"siska-gateway/internal/common/httpx"
	"siska-gateway/internal/common/logger"
	"siska-gateway/internal/common/metrics"
)

const Name = "openweather"

// Client fetches current conditions by coordinate from OpenWeather.
type Client struct {
	config *Config
	http   *httpx.Client
	logger logger.Logger
}

func NewClient(config *Config, log logger.Logger) *Client {
	return &Client{
		config: config,
		http:   httpx.NewClient(config.Timeout),
		logger: log.WithFields(map[string]interface{}{"provider": Name}),
	}
}

// Fetch returns the normalized observation for the given coordinate, or a
// ProviderUnavailable reply error. The renderer owns the apology text, so
// the error carries no reply of its own.
func (c *Client) Fetch(ctx context.Context, lat, lon float64) (*Observation, error) {
	start := time.Now()
	defer func() {
		metrics.ProviderDuration.WithLabelValues(Name).Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildURL(lat, lon), nil)
	if err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues(Name, "error").Inc()
		return nil, apperrors.NewProviderUnavailable(Name, "", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues(Name, "error").Inc()
		c.logger.WithError(err).Warn("weather request failed", nil)
		return nil, apperrors.NewProviderUnavailable(Name, "", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.ProviderRequestsTotal.WithLabelValues(Name, "error").Inc()
		c.logger.Warn("weather request returned non-2xx", map[string]interface{}{
			"status": resp.StatusCode,
		})
		return nil, apperrors.NewProviderUnavailable(Name, "", fmt.Errorf("openweather returned %d", resp.StatusCode))
	}

	var payload currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues(Name, "error").Inc()
		return nil, apperrors.NewProviderUnavailable(Name, "", fmt.Errorf("decode openweather response: %w", err))
	}

	metrics.ProviderRequestsTotal.WithLabelValues(Name, "ok").Inc()

	condition := "Cerah"
	if len(payload.Weather) > 0 {
		condition = payload.Weather[0].Description
	}

	return &Observation{
		City:      payload.Name,
		Temp:      int(math.Round(payload.Main.Temp)),
		Condition: condition,
		Humidity:  payload.Main.Humidity,
		Wind:      payload.Wind.Speed,
	}, nil
}

func (c *Client) buildURL(lat, lon float64) string {
	baseURL, _ := url.Parse(c.config.BaseURL)
	params := url.Values{}
	params.Add("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Add("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Add("appid", c.config.APIKey)
	params.Add("units", "metric")
	params.Add("lang", "id")
	baseURL.RawQuery = params.Encode()
	return baseURL.String()
}
