package assistant

import (
	"context"
	"sort"
	"strings"
	"sync"

	"siska-gateway/internal/providers/airquality"
	"siska-gateway/internal/providers/shipping"
	"siska-gateway/internal/providers/weather"
)

// WeatherBundle is the joined outcome of the weather and air-quality
// adapters. Either side may be nil; both nil is a valid state that the
// renderer turns into a full failure message.
type WeatherBundle struct {
	Weather *weather.Observation
	AQI     *airquality.Reading
}

// WeatherFetcher and AQIFetcher are the adapter surfaces the aggregator
// fans out to.
type WeatherFetcher interface {
	Fetch(ctx context.Context, lat, lon float64) (*weather.Observation, error)
}

type AQIFetcher interface {
	Fetch(ctx context.Context, lat, lon float64) (*airquality.Reading, error)
}

// FetchWeatherBundle runs both adapters concurrently and joins the
// results. Each side's failure is absorbed into a nil slot; one adapter's
// timeout never blocks or fails the other.
func FetchWeatherBundle(ctx context.Context, wf WeatherFetcher, af AQIFetcher, lat, lon float64) WeatherBundle {
	var bundle WeatherBundle
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		if obs, err := wf.Fetch(ctx, lat, lon); err == nil {
			bundle.Weather = obs
		}
	}()
	go func() {
		defer wg.Done()
		if reading, err := af.Fetch(ctx, lat, lon); err == nil {
			bundle.AQI = reading
		}
	}()
	wg.Wait()

	return bundle
}

// ShippingOffer is one flattened courier-service tariff row, ready for
// rendering.
type ShippingOffer struct {
	Courier string
	Service string
	Cost    int
	Etd     string
}

// FlattenOffers turns the per-courier tariff table into one list sorted
// ascending by cost. Courier codes are upper-cased and the " HARI" unit
// suffix is stripped from the delivery estimate. Only the first cost
// option of each service is offered.
func FlattenOffers(result *shipping.Result) []ShippingOffer {
	var offers []ShippingOffer
	for _, courier := range result.Couriers {
		for _, service := range courier.Costs {
			if len(service.Cost) == 0 {
				continue
			}
			offers = append(offers, ShippingOffer{
				Courier: strings.ToUpper(courier.Code),
				Service: service.Service,
				Cost:    service.Cost[0].Value,
				Etd:     strings.Replace(service.Cost[0].Etd, " HARI", "", 1),
			})
		}
	}

	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].Cost < offers[j].Cost
	})
	return offers
}
