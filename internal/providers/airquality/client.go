package airquality

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	apperrors "siska-gateway/internal/common/errors"
	"siska-gateway/internal/common/httpx"
	"siska-gateway/internal/common/logger"
	"siska-gateway/internal/common/metrics"
)

const Name = "waqi"

// Client fetches the nearest-station air-quality reading from WAQI.
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

// ClassifyLevel maps an AQI index onto the Indonesian banding used in
// replies. Thresholds are exclusive: 51-100 is Sedang, 101-150 is the
// sensitive-group band, above 150 is Tidak Sehat.
func ClassifyLevel(aqi int) string {
	switch {
	case aqi > 150:
		return "Tidak Sehat"
	case aqi > 100:
		return "Tidak Sehat bagi Kelompok Sensitif"
	case aqi > 50:
		return "Sedang"
	default:
		return "Baik"
	}
}

// Fetch returns the normalized reading for the given coordinate. A feed
// whose status is not "ok" counts as unavailable, same as a transport
// failure; the weather aggregate degrades rather than fails on it.
func (c *Client) Fetch(ctx context.Context, lat, lon float64) (*Reading, error) {
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
		c.logger.WithError(err).Warn("air quality request failed", nil)
		return nil, apperrors.NewProviderUnavailable(Name, "", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.ProviderRequestsTotal.WithLabelValues(Name, "error").Inc()
		c.logger.Warn("air quality request returned non-2xx", map[string]interface{}{
			"status": resp.StatusCode,
		})
		return nil, apperrors.NewProviderUnavailable(Name, "", fmt.Errorf("waqi returned %d", resp.StatusCode))
	}

	var payload feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues(Name, "error").Inc()
		return nil, apperrors.NewProviderUnavailable(Name, "", fmt.Errorf("decode waqi response: %w", err))
	}

	if payload.Status != "ok" {
		metrics.ProviderRequestsTotal.WithLabelValues(Name, "error").Inc()
		c.logger.Warn("air quality feed not ok", map[string]interface{}{
			"feedStatus": payload.Status,
		})
		return nil, apperrors.NewProviderUnavailable(Name, "", fmt.Errorf("waqi feed status %q", payload.Status))
	}

	metrics.ProviderRequestsTotal.WithLabelValues(Name, "ok").Inc()

	pollutant := payload.Data.DominantPollutant
	if pollutant == "" {
		pollutant = "PM2.5"
	}

	return &Reading{
		AQI:       payload.Data.AQI,
		Level:     ClassifyLevel(payload.Data.AQI),
		Pollutant: pollutant,
	}, nil
}

func (c *Client) buildURL(lat, lon float64) string {
	feed := fmt.Sprintf("%s/feed/geo:%s;%s/",
		c.config.BaseURL,
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lon, 'f', -1, 64),
	)
	params := url.Values{}
	params.Add("token", c.config.Token)
	return feed + "?" + params.Encode()
}
