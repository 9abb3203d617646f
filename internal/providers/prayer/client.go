package prayer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	apperrors "siska-gateway/internal/common/errors"
	"siska-gateway/internal/common/httpx"
	"siska-gateway/internal/common/logger"
	"siska-gateway/internal/common/metrics"
)

const Name = "aladhan"

// Client fetches daily prayer timings by coordinate from Al-Adhan.
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

// Fetch returns the normalized schedule for the given coordinate, or a
// ProviderUnavailable reply error on any transport or non-2xx failure.
func (c *Client) Fetch(ctx context.Context, lat, lon float64) (*Schedule, error) {
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
		c.logger.WithError(err).Warn("prayer times request failed", nil)
		return nil, apperrors.NewProviderUnavailable(Name, "", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.ProviderRequestsTotal.WithLabelValues(Name, "error").Inc()
		c.logger.Warn("prayer times request returned non-2xx", map[string]interface{}{
			"status": resp.StatusCode,
		})
		return nil, apperrors.NewProviderUnavailable(Name, "", fmt.Errorf("aladhan returned %d", resp.StatusCode))
	}

	var payload timingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues(Name, "error").Inc()
		return nil, apperrors.NewProviderUnavailable(Name, "", fmt.Errorf("decode aladhan response: %w", err))
	}

	metrics.ProviderRequestsTotal.WithLabelValues(Name, "ok").Inc()

	return &Schedule{
		City: cityFromTimezone(payload.Data.Meta.Timezone),
		Date: payload.Data.Date.Readable,
		Times: map[string]string{
			"subuh":   payload.Data.Timings.Fajr,
			"dzuhur":  payload.Data.Timings.Dhuhr,
			"ashar":   payload.Data.Timings.Asr,
			"maghrib": payload.Data.Timings.Maghrib,
			"isya":    payload.Data.Timings.Isha,
		},
	}, nil
}

func (c *Client) buildURL(lat, lon float64) string {
	baseURL, _ := url.Parse(c.config.BaseURL)
	params := url.Values{}
	params.Add("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Add("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Add("method", strconv.Itoa(c.config.Method))
	params.Add("school", strconv.Itoa(c.config.School))
	baseURL.RawQuery = params.Encode()
	return baseURL.String()
}

// cityFromTimezone derives a city label from an IANA-style zone string:
// the last path segment with underscores replaced by spaces
// ("Asia/Jakarta" -> "Jakarta", "America/New_York" -> "New York").
func cityFromTimezone(tz string) string {
	segments := strings.Split(tz, "/")
	return strings.ReplaceAll(segments[len(segments)-1], "_", " ")
}
