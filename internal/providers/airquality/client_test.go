package airquality

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "siska-gateway/internal/common/errors"
	"siska-gateway/internal/common/logger"
)

func testConfig(baseURL string) *Config {
	cfg := DefaultConfig()
	cfg.BaseURL = baseURL
	cfg.Token = "test-token"
	cfg.Timeout = 2 * time.Second
	return cfg
}

func TestClassifyLevel(t *testing.T) {
	tests := []struct {
		aqi  int
		want string
	}{
		{0, "Baik"},
		{50, "Baik"},
		{51, "Sedang"},
		{100, "Sedang"},
		{101, "Tidak Sehat bagi Kelompok Sensitif"},
		{150, "Tidak Sehat bagi Kelompok Sensitif"},
		{151, "Tidak Sehat"},
		{300, "Tidak Sehat"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyLevel(tt.aqi), "aqi=%d", tt.aqi)
	}
}

func TestClient_Fetch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/feed/geo:-6.2;106.8/")
		assert.Equal(t, "test-token", r.URL.Query().Get("token"))

		w.Write([]byte(`{"status": "ok", "data": {"aqi": 155, "dominantPollutant": "pm25"}}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), logger.NewTestLogger(t))

	reading, err := client.Fetch(context.Background(), -6.2, 106.8)
	require.NoError(t, err)

	assert.Equal(t, 155, reading.AQI)
	assert.Equal(t, "Tidak Sehat", reading.Level)
	assert.Equal(t, "pm25", reading.Pollutant)
}

func TestClient_Fetch_DefaultPollutant(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ok", "data": {"aqi": 42}}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), logger.NewTestLogger(t))

	reading, err := client.Fetch(context.Background(), -6.2, 106.8)
	require.NoError(t, err)
	assert.Equal(t, "PM2.5", reading.Pollutant)
	assert.Equal(t, "Baik", reading.Level)
}

func TestClient_Fetch_FeedNotOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "error", "data": null}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), logger.NewTestLogger(t))

	_, err := client.Fetch(context.Background(), -6.2, 106.8)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeProviderUnavailable, apperrors.CodeOf(err))
}

func TestClient_Fetch_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), logger.NewTestLogger(t))

	_, err := client.Fetch(context.Background(), -6.2, 106.8)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeProviderUnavailable, apperrors.CodeOf(err))
}
