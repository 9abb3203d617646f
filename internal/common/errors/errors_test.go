package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplyError_WrapsCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewProviderUnavailable("openweather", "", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "PROVIDER_UNAVAILABLE")
	assert.Contains(t, err.Error(), "openweather")
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeInputMissing, CodeOf(NewInputMissing("weather")))
	assert.Equal(t, CodeCityUnresolved, CodeOf(NewCityUnresolved("atlantis")))
	assert.Equal(t, CodeEmptyResult, CodeOf(NewEmptyResult("foursquare", "")))
	assert.Equal(t, CodeInternalFailure, CodeOf(fmt.Errorf("plain error")))
}

func TestCodeOf_Wrapped(t *testing.T) {
	inner := NewProviderUnavailable("waqi", "", nil)
	wrapped := fmt.Errorf("fetching reading: %w", inner)

	assert.Equal(t, CodeProviderUnavailable, CodeOf(wrapped))
	assert.True(t, Is(wrapped, CodeProviderUnavailable))
	assert.False(t, Is(wrapped, CodeEmptyResult))
}

func TestReplyText(t *testing.T) {
	err := NewProviderUnavailable("rajaongkir", "API Key RajaOngkir tidak disetel di server.", nil)
	assert.Equal(t, "API Key RajaOngkir tidak disetel di server.", ReplyText(err))

	assert.Empty(t, ReplyText(fmt.Errorf("plain error")))
	assert.Empty(t, ReplyText(NewProviderUnavailable("openweather", "", nil)))
}

func TestNewCityUnresolved_NamesCity(t *testing.T) {
	err := NewCityUnresolved("atlantis")
	require.Contains(t, err.Reply, `"atlantis"`)
	assert.Contains(t, err.Reply, "Database kota saya masih terbatas")
}
