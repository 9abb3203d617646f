package assistant

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siska-gateway/internal/providers/airquality"
	"siska-gateway/internal/providers/shipping"
	"siska-gateway/internal/providers/weather"
)

type stubWeather struct {
	obs   *weather.Observation
	err   error
	delay time.Duration
}

func (s *stubWeather) Fetch(ctx context.Context, lat, lon float64) (*weather.Observation, error) {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	return s.obs, s.err
}

type stubAQI struct {
	reading *airquality.Reading
	err     error
}

func (s *stubAQI) Fetch(ctx context.Context, lat, lon float64) (*airquality.Reading, error) {
	return s.reading, s.err
}

func TestFetchWeatherBundle_BothSucceed(t *testing.T) {
	bundle := FetchWeatherBundle(context.Background(),
		&stubWeather{obs: &weather.Observation{City: "Jakarta"}},
		&stubAQI{reading: &airquality.Reading{AQI: 80, Level: "Sedang"}},
		-6.2, 106.8)

	require.NotNil(t, bundle.Weather)
	require.NotNil(t, bundle.AQI)
	assert.Equal(t, "Jakarta", bundle.Weather.City)
	assert.Equal(t, 80, bundle.AQI.AQI)
}

func TestFetchWeatherBundle_WeatherFailsAQISucceeds(t *testing.T) {
	bundle := FetchWeatherBundle(context.Background(),
		&stubWeather{err: fmt.Errorf("connection refused")},
		&stubAQI{reading: &airquality.Reading{AQI: 120}},
		-6.2, 106.8)

	assert.Nil(t, bundle.Weather)
	require.NotNil(t, bundle.AQI, "weather failure must not suppress the AQI result")
	assert.Equal(t, 120, bundle.AQI.AQI)
}

func TestFetchWeatherBundle_AQIFailsWeatherSucceeds(t *testing.T) {
	bundle := FetchWeatherBundle(context.Background(),
		&stubWeather{obs: &weather.Observation{City: "Bandung"}},
		&stubAQI{err: fmt.Errorf("feed status error")},
		-6.9, 107.6)

	require.NotNil(t, bundle.Weather)
	assert.Nil(t, bundle.AQI)
}

func TestFetchWeatherBundle_BothFail(t *testing.T) {
	bundle := FetchWeatherBundle(context.Background(),
		&stubWeather{err: fmt.Errorf("down")},
		&stubAQI{err: fmt.Errorf("down")},
		0, 0)

	assert.Nil(t, bundle.Weather)
	assert.Nil(t, bundle.AQI)
}

func TestFetchWeatherBundle_SlowWeatherDoesNotDropAQI(t *testing.T) {
	bundle := FetchWeatherBundle(context.Background(),
		&stubWeather{obs: &weather.Observation{City: "Jakarta"}, delay: 50 * time.Millisecond},
		&stubAQI{reading: &airquality.Reading{AQI: 40}},
		-6.2, 106.8)

	require.NotNil(t, bundle.Weather)
	require.NotNil(t, bundle.AQI)
}

func TestFlattenOffers(t *testing.T) {
	result := &shipping.Result{
		Couriers: []shipping.Courier{
			{
				Code: "jne",
				Costs: []shipping.Service{
					{Service: "OKE", Cost: []shipping.CostOption{{Value: 20000, Etd: "3-4 HARI"}}},
					{Service: "REG", Cost: []shipping.CostOption{{Value: 15000, Etd: "2-3 HARI"}}},
				},
			},
			{
				Code: "tiki",
				Costs: []shipping.Service{
					{Service: "ECO", Cost: []shipping.CostOption{{Value: 9000, Etd: "4"}}},
				},
			},
		},
	}

	offers := FlattenOffers(result)
	require.Len(t, offers, 3)

	assert.Equal(t, []int{9000, 15000, 20000}, []int{offers[0].Cost, offers[1].Cost, offers[2].Cost},
		"offers sort ascending by cost")
	assert.Equal(t, "TIKI", offers[0].Courier, "courier codes are upper-cased")
	assert.Equal(t, "2-3", offers[1].Etd, "unit suffix is stripped")
	assert.Equal(t, "4", offers[0].Etd)
}

func TestFlattenOffers_SkipsServicesWithoutTariffs(t *testing.T) {
	result := &shipping.Result{
		Couriers: []shipping.Courier{
			{Code: "sicepat", Costs: []shipping.Service{{Service: "BEST", Cost: nil}}},
		},
	}

	assert.Empty(t, FlattenOffers(result))
}
