package places

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

const Name = "foursquare"

// categoryIDs maps place kinds onto Foursquare v3 category ids.
var categoryIDs = map[string]string{
	"kuliner": "13065",
	"wisata":  "19000",
	"masjid":  "12048",
}

// CategoryFor returns the Foursquare category id for a place kind.
func CategoryFor(kind string) (string, bool) {
	id, ok := categoryIDs[kind]
	return id, ok
}

// Client searches nearby venues through the Foursquare v3 place search.
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

// Search returns up to the configured limit of venues of the given kind,
// nearest first. A missing API key or unknown kind is reported as
// unavailable without an outbound call.
func (c *Client) Search(ctx context.Context, lat, lon float64, kind string) ([]Place, error) {
	if c.config.APIKey == "" {
		c.logger.Warn("place search skipped, API key not configured", nil)
		return nil, apperrors.NewProviderUnavailable(Name, "", fmt.Errorf("foursquare api key not configured"))
	}

	category, ok := CategoryFor(kind)
	if !ok {
		return nil, apperrors.NewProviderUnavailable(Name, "", fmt.Errorf("no category mapping for kind %q", kind))
	}

	start := time.Now()
	defer func() {
		metrics.ProviderDuration.WithLabelValues(Name).Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildURL(lat, lon, category), nil)
	if err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues(Name, "error").Inc()
		return nil, apperrors.NewProviderUnavailable(Name, "", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", c.config.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues(Name, "error").Inc()
		c.logger.WithError(err).Warn("place search failed", nil)
		return nil, apperrors.NewProviderUnavailable(Name, "", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.ProviderRequestsTotal.WithLabelValues(Name, "error").Inc()
		c.logger.Warn("place search returned non-2xx", map[string]interface{}{
			"status": resp.StatusCode,
		})
		return nil, apperrors.NewProviderUnavailable(Name, "", fmt.Errorf("foursquare returned %d", resp.StatusCode))
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues(Name, "error").Inc()
		return nil, apperrors.NewProviderUnavailable(Name, "", fmt.Errorf("decode foursquare response: %w", err))
	}

	metrics.ProviderRequestsTotal.WithLabelValues(Name, "ok").Inc()

	results := make([]Place, 0, len(payload.Results))
	for _, raw := range payload.Results {
		place := Place{
			Name:     raw.Name,
			Distance: raw.Distance,
			Address:  raw.Location.FormattedAddress,
			Type:     "Tempat",
		}
		if place.Address == "" {
			place.Address = "Alamat tidak tersedia"
		}
		if len(raw.Categories) > 0 {
			place.Type = raw.Categories[0].Name
		}
		results = append(results, place)
	}
	return results, nil
}

func (c *Client) buildURL(lat, lon float64, category string) string {
	baseURL, _ := url.Parse(c.config.BaseURL)
	params := url.Values{}
	params.Add("ll", fmt.Sprintf("%s,%s",
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lon, 'f', -1, 64),
	))
	params.Add("categories", category)
	params.Add("limit", strconv.Itoa(c.config.Limit))
	params.Add("sort", "DISTANCE")
	baseURL.RawQuery = params.Encode()
	return baseURL.String()
}
