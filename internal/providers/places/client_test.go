package places

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

const searchPayload = `{
	"results": [
		{
			"name": "Sate Khas Senayan",
			"distance": 120,
			"location": {"formatted_address": "Jl. Kebon Sirih No. 31A, Jakarta"},
			"categories": [{"name": "Indonesian Restaurant"}]
		},
		{
			"name": "Warung Tanpa Nama",
			"distance": 450,
			"location": {},
			"categories": []
		}
	]
}`

func testConfig(baseURL string) *Config {
	cfg := DefaultConfig()
	cfg.BaseURL = baseURL
	cfg.APIKey = "fsq-test-key"
	cfg.Timeout = 2 * time.Second
	return cfg
}

func TestCategoryFor(t *testing.T) {
	tests := []struct {
		kind   string
		wantID string
		wantOK bool
	}{
		{"kuliner", "13065", true},
		{"wisata", "19000", true},
		{"masjid", "12048", true},
		{"ongkir", "", false},
	}

	for _, tt := range tests {
		id, ok := CategoryFor(tt.kind)
		assert.Equal(t, tt.wantOK, ok)
		assert.Equal(t, tt.wantID, id)
	}
}

func TestClient_Search_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "fsq-test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		q := r.URL.Query()
		assert.Equal(t, "-6.2,106.8", q.Get("ll"))
		assert.Equal(t, "13065", q.Get("categories"))
		assert.Equal(t, "5", q.Get("limit"))
		assert.Equal(t, "DISTANCE", q.Get("sort"))

		w.Write([]byte(searchPayload))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), logger.NewTestLogger(t))

	results, err := client.Search(context.Background(), -6.2, 106.8, "kuliner")
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "Sate Khas Senayan", results[0].Name)
	assert.Equal(t, 120, results[0].Distance)
	assert.Equal(t, "Indonesian Restaurant", results[0].Type)

	assert.Equal(t, "Alamat tidak tersedia", results[1].Address)
	assert.Equal(t, "Tempat", results[1].Type)
}

func TestClient_Search_MissingAPIKey(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.APIKey = ""
	client := NewClient(cfg, logger.NewTestLogger(t))

	_, err := client.Search(context.Background(), -6.2, 106.8, "wisata")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeProviderUnavailable, apperrors.CodeOf(err))
	assert.False(t, called, "no outbound call without a key")
}

func TestClient_Search_UnknownKind(t *testing.T) {
	client := NewClient(testConfig("http://unused"), logger.NewTestLogger(t))

	_, err := client.Search(context.Background(), -6.2, 106.8, "bengkel")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeProviderUnavailable, apperrors.CodeOf(err))
}

func TestClient_Search_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), logger.NewTestLogger(t))

	_, err := client.Search(context.Background(), -6.2, 106.8, "masjid")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeProviderUnavailable, apperrors.CodeOf(err))
}

func TestClient_Search_EmptyResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": []}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), logger.NewTestLogger(t))

	results, err := client.Search(context.Background(), -6.2, 106.8, "kuliner")
	require.NoError(t, err)
	assert.Empty(t, results, "empty result set is not an error at the adapter level")
}
