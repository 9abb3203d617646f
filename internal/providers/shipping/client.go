package shipping

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	apperrors "siska-gateway/internal/common/errors"
	"siska-gateway/internal/common/httpx"
	"siska-gateway/internal/common/logger"
	"siska-gateway/internal/common/metrics"
)

const Name = "rajaongkir"

// Client quotes shipping tariffs through the RajaOngkir starter cost API.
// Unlike the other adapters, its errors carry user-facing reply text: the
// shipping renderer surfaces provider failures verbatim.
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

// Quote returns the tariff table for the given route. originID and destID
// are resolved provider city ids; weightGrams is the parcel weight.
func (c *Client) Quote(ctx context.Context, originID, destID string, weightGrams int) (*Result, error) {
	if c.config.APIKey == "" {
		c.logger.Warn("shipping quote skipped, API key not configured", nil)
		return nil, apperrors.NewProviderUnavailable(Name,
			"API Key RajaOngkir tidak disetel di server.",
			fmt.Errorf("rajaongkir api key not configured"))
	}

	start := time.Now()
	defer func() {
		metrics.ProviderDuration.WithLabelValues(Name).Observe(time.Since(start).Seconds())
	}()

	body, err := json.Marshal(costRequest{
		Origin:      originID,
		Destination: destID,
		Weight:      weightGrams,
		Courier:     c.config.Couriers,
	})
	if err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues(Name, "error").Inc()
		return nil, apperrors.NewProviderUnavailable(Name, "Gagal terhubung ke API RajaOngkir.", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL, bytes.NewReader(body))
	if err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues(Name, "error").Inc()
		return nil, apperrors.NewProviderUnavailable(Name, "Gagal terhubung ke API RajaOngkir.", err)
	}
	req.Header.Set("key", c.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues(Name, "error").Inc()
		c.logger.WithError(err).Warn("shipping quote failed", nil)
		return nil, apperrors.NewProviderUnavailable(Name, "Gagal terhubung ke API RajaOngkir.", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.ProviderRequestsTotal.WithLabelValues(Name, "error").Inc()

		// The provider explains rejections in the status description.
		description := "Unknown error"
		var errPayload costResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errPayload); decodeErr == nil &&
			errPayload.RajaOngkir.Status.Description != "" {
			description = errPayload.RajaOngkir.Status.Description
		}
		c.logger.Warn("shipping quote rejected", map[string]interface{}{
			"status":      resp.StatusCode,
			"description": description,
		})
		return nil, apperrors.NewProviderUnavailable(Name,
			fmt.Sprintf("API RajaOngkir error: %s", description),
			fmt.Errorf("rajaongkir returned %d: %s", resp.StatusCode, description))
	}

	var payload costResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues(Name, "error").Inc()
		return nil, apperrors.NewProviderUnavailable(Name, "Gagal terhubung ke API RajaOngkir.",
			fmt.Errorf("decode rajaongkir response: %w", err))
	}

	metrics.ProviderRequestsTotal.WithLabelValues(Name, "ok").Inc()

	result := &Result{
		OriginCity: payload.RajaOngkir.Query.OriginDetails.CityName,
		DestCity:   payload.RajaOngkir.Query.DestinationDetails.CityName,
	}
	for _, raw := range payload.RajaOngkir.Results {
		courier := Courier{Code: raw.Code}
		for _, cost := range raw.Costs {
			service := Service{
				Service:     cost.Service,
				Description: cost.Description,
			}
			for _, option := range cost.Cost {
				service.Cost = append(service.Cost, CostOption{
					Value: option.Value,
					Etd:   option.Etd,
				})
			}
			courier.Costs = append(courier.Costs, service)
		}
		result.Couriers = append(result.Couriers, courier)
	}
	return result, nil
}
